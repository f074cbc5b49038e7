package score

import (
	"math"
	"testing"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

func TestFoodWeightsSumToOne(t *testing.T) {
	w := DefaultConfig().FoodWeights
	sum := w.Calories + w.Protein + w.Fat + w.Carbs + w.AminoAcid + w.FattyAcid +
		w.GlycemicLoad + w.Fiber + w.Vitamin + w.Mineral
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("food sub-weights sum to %.4f, want 1.0", sum)
	}
}

func TestFoodScoreNoMealsIsExplicitZero(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	out := calc.FoodScoreFor(NutritionTotals{}, model.NutritionTarget{Calories: 2000, ProteinG: 120}, model.StyleGeneral, false)
	if out.Score != 0 {
		t.Fatalf("food score = %d, want 0", out.Score)
	}
	for name, sub := range map[string]float64{
		"calorie": out.Calorie, "protein": out.Protein, "fat": out.Fat, "carb": out.Carb,
		"amino": out.AminoAcid, "fatty": out.FattyAcid, "gl": out.GlycemicLoad,
		"fiber": out.Fiber, "vitamin": out.Vitamin, "mineral": out.Mineral,
	} {
		if sub != 0 {
			t.Errorf("%s sub-score = %.1f, want 0 with no meals", name, sub)
		}
	}
}

func TestDeviationScoreProtein(t *testing.T) {
	if got := deviationScore(120, 120, 150); got != 100 {
		t.Fatalf("exact target should score 100, got %.1f", got)
	}
	// |0-120|/120 = 1.0 deviation, 100 - 1.0*150 clamps to 0.
	if got := deviationScore(0, 120, 150); got != 0 {
		t.Fatalf("zero intake against 120g target should score 0, got %.1f", got)
	}
	if got := deviationScore(100, 0, 200); got != 100 {
		t.Fatalf("zero target should yield full credit, got %.1f", got)
	}
}

func TestAminoBandScores(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		avg  float64
		want float64
	}{
		{1.05, 100},
		{1.00, 100},
		{0.92, 80},
		{0.80, 60},
		{0.60, 40},
		{0.30, 20},
	}
	for _, tc := range cases {
		if got := floorScore(tc.avg, cfg.AminoBands, cfg.AminoFallback); got != tc.want {
			t.Errorf("amino band for %.2f = %.0f, want %.0f", tc.avg, got, tc.want)
		}
	}
}

func TestFoodScoreStaysInRange(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	totals := AggregateMeals([]model.Meal{
		{Calories: 5000, Items: []model.MealItem{{ProteinG: 400, FatG: 300, CarbsG: 600, SugarG: 500, GlycemicIndex: 95, AminoAcidScore: 0.2}}},
	})
	out := calc.FoodScoreFor(totals, model.NutritionTarget{Calories: 1800, ProteinG: 100, FatG: 50, CarbsG: 200}, model.StyleGeneral, true)
	if out.Score < 0 || out.Score > 100 {
		t.Fatalf("food score %d out of range", out.Score)
	}
	for _, sub := range []float64{out.Calorie, out.Protein, out.Fat, out.Carb, out.AminoAcid, out.FattyAcid, out.GlycemicLoad, out.Fiber, out.Vitamin, out.Mineral} {
		if sub < 0 || sub > 100 {
			t.Fatalf("sub-score %.1f out of range: %+v", sub, out)
		}
	}
}

func TestFoodScoreOnTargetDayScoresHigh(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	meals := []model.Meal{{
		Calories: 2000,
		Items: []model.MealItem{{
			ProteinG: 120, FatG: 60, CarbsG: 250, FiberG: 25, SugarG: 30,
			SaturatedFatG: 19, MonounsaturatedFatG: 24, PolyunsaturatedFatG: 15,
			GlycemicIndex: 30, AminoAcidScore: 1.0,
			Vitamins: map[string]float64{"a": 800, "b1": 1.2, "b2": 1.4, "b6": 1.4, "b12": 2.4, "c": 100, "d": 8.5, "e": 6.5, "folate": 240},
			Minerals: map[string]float64{"calcium": 800, "iron": 7.5, "magnesium": 340, "zinc": 10, "potassium": 2600, "sodium": 2500},
		}},
	}}
	totals := AggregateMeals(meals)
	out := calc.FoodScoreFor(totals, model.NutritionTarget{Calories: 2000, ProteinG: 120, FatG: 60, CarbsG: 250}, model.StyleGeneral, true)
	if out.Score < 95 {
		t.Fatalf("on-target day should score near 100, got %d (%+v)", out.Score, out)
	}
}
