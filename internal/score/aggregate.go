package score

import "github.com/kongou411-oss/your-coach-plus-sub015/internal/model"

// NutritionTotals is the day-level fold of every logged meal item.
type NutritionTotals struct {
	Calories        int                `json:"calories"`
	ProteinG        float64            `json:"protein_g"`
	FatG            float64            `json:"fat_g"`
	CarbsG          float64            `json:"carbs_g"`
	FiberG          float64            `json:"fiber_g"`
	SolubleFiberG   float64            `json:"soluble_fiber_g"`
	InsolubleFiberG float64            `json:"insoluble_fiber_g"`
	SugarG          float64            `json:"sugar_g"`
	SaturatedFatG   float64            `json:"saturated_fat_g"`
	MonoFatG        float64            `json:"monounsaturated_fat_g"`
	PolyFatG        float64            `json:"polyunsaturated_fat_g"`
	GlycemicLoad    float64            `json:"glycemic_load"`
	AminoAcidAvg    float64            `json:"amino_acid_avg"`
	Vitamins        map[string]float64 `json:"vitamins"`
	Minerals        map[string]float64 `json:"minerals"`
	ItemCount       int                `json:"item_count"`
}

// AggregateMeals folds meals into day totals. Amino-acid quality is
// protein-weighted, not item-count-weighted. An item contributes glycemic
// load only when both its GI and carbs are positive; its carbs still count
// toward the carb total either way.
func AggregateMeals(meals []model.Meal) NutritionTotals {
	totals := NutritionTotals{
		Vitamins: map[string]float64{},
		Minerals: map[string]float64{},
	}
	aminoWeighted := 0.0

	for _, meal := range meals {
		totals.Calories += meal.Calories
		for _, item := range meal.Items {
			totals.ItemCount++
			totals.ProteinG += item.ProteinG
			totals.FatG += item.FatG
			totals.CarbsG += item.CarbsG
			totals.FiberG += item.FiberG
			totals.SolubleFiberG += item.SolubleFiberG
			totals.InsolubleFiberG += item.InsolubleFiberG
			totals.SugarG += item.SugarG
			totals.SaturatedFatG += item.SaturatedFatG
			totals.MonoFatG += item.MonounsaturatedFatG
			totals.PolyFatG += item.PolyunsaturatedFatG

			aminoWeighted += item.AminoAcidScore * item.ProteinG

			if item.GlycemicIndex > 0 && item.CarbsG > 0 {
				totals.GlycemicLoad += item.GlycemicIndex * item.CarbsG / 100
			}

			for name, amount := range item.Vitamins {
				totals.Vitamins[name] += amount
			}
			for name, amount := range item.Minerals {
				totals.Minerals[name] += amount
			}
		}
	}

	if totals.ProteinG > 0 {
		totals.AminoAcidAvg = aminoWeighted / totals.ProteinG
	}
	return totals
}
