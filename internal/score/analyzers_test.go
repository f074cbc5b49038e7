package score

import (
	"testing"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

func TestFattyAcidScoreZeroFatIsNeutral(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	if got := calc.fattyAcidScore(NutritionTotals{}); got != 50 {
		t.Fatalf("zero fat should score neutral 50, got %.1f", got)
	}
}

func TestFattyAcidScoreIdealBalance(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	totals := NutritionTotals{FatG: 100, SaturatedFatG: 32, MonoFatG: 40, PolyFatG: 25}
	if got := calc.fattyAcidScore(totals); got != 100 {
		t.Fatalf("ideal ratios should score 100, got %.1f", got)
	}
}

func TestFattyAcidScoreSkewedBalance(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	// All saturated: sat ratio 1.0 (0.65 beyond ideal), mono/poly at zero.
	totals := NutritionTotals{FatG: 50, SaturatedFatG: 50}
	got := calc.fattyAcidScore(totals)
	if got != 20 {
		t.Fatalf("fully skewed fat should hit the fallback band everywhere, got %.1f", got)
	}
}

func TestAnalyzeFattyAcidsStars(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	out := calc.AnalyzeFattyAcids(NutritionTotals{FatG: 100, SaturatedFatG: 32, MonoFatG: 40, PolyFatG: 25})
	if out.Stars != 5 || out.Rating != "excellent" {
		t.Fatalf("ideal breakdown should rate 5 stars: %+v", out)
	}
	if out.SaturatedPct != 32 || out.MonoPct != 40 || out.PolyPct != 25 {
		t.Fatalf("percentages wrong: %+v", out)
	}
}

func TestGlycemicLoadScoreBands(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	// General daily limit: 40 * 3 = 120.
	cases := []struct {
		gl   float64
		want float64
	}{
		{60, 100},  // 50%
		{90, 90},   // 75%
		{115, 75},  // ~96%
		{140, 60},  // ~117%
		{175, 40},  // ~146%
		{240, 0},   // 200%: decayed to zero
	}
	for _, tc := range cases {
		if got := calc.glycemicLoadScore(tc.gl, model.StyleGeneral); got != tc.want {
			t.Errorf("glycemicLoadScore(%.0f) = %.1f, want %.1f", tc.gl, got, tc.want)
		}
	}
}

func TestGlycemicLoadStyleLimits(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	// 120 GL maxes out the general limit but sits at 57% of bodymaker's 210.
	if got := calc.glycemicLoadScore(120, model.StyleGeneral); got != 75 {
		t.Fatalf("general style at limit should score 75, got %.1f", got)
	}
	if got := calc.glycemicLoadScore(120, model.StyleBodymaker); got != 100 {
		t.Fatalf("bodymaker style should band the same load at 100, got %.1f", got)
	}
}

func TestAnalyzeGlycemicLoadAppliesReductionFactors(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	totals := NutritionTotals{GlycemicLoad: 100, CarbsG: 200, FiberG: 15, ProteinG: 40}
	out := calc.AnalyzeGlycemicLoad(totals, model.StyleGeneral, 3)
	if len(out.Factors) != 2 {
		t.Fatalf("expected fiber and protein factors, got %+v", out.Factors)
	}
	// 100 * 0.90 * 0.95 = 85.5
	if out.Adjusted != 85.5 {
		t.Fatalf("adjusted GL = %.1f, want 85.5", out.Adjusted)
	}
	if out.DailyLimit != 120 {
		t.Fatalf("daily limit = %.0f, want 120", out.DailyLimit)
	}
}

func TestFiberScoreIdealDay(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	// 25g fiber (ideal band) and carb:fiber ratio 250/25 = 10 (ideal).
	if got := calc.fiberScore(NutritionTotals{FiberG: 25, CarbsG: 250}); got != 100 {
		t.Fatalf("ideal fiber day should score 100, got %.1f", got)
	}
}

func TestFiberScoreNoFiberWithCarbs(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	// Amount 0g is 20 below ideal (fallback 20); ratio band bottoms out at 20.
	got := calc.fiberScore(NutritionTotals{CarbsG: 200})
	if got != 20 {
		t.Fatalf("fiberless day = %.1f, want 20", got)
	}
}

func TestFiberScoreNoCarbsUsesNeutralRatio(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	// Amount band: 25g scores 100; ratio has nothing to evaluate: 50.
	got := calc.fiberScore(NutritionTotals{FiberG: 25})
	if got != 80 {
		t.Fatalf("carb-free day = %.1f, want 80 (0.6*100 + 0.4*50)", got)
	}
}

func TestAnalyzeFiberTargetScaling(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	out := calc.AnalyzeFiber(NutritionTotals{FiberG: 20, CarbsG: 200}, 60, false)
	if out.TargetG != 19.8 {
		t.Fatalf("target for 60kg LBM = %.1f, want 19.8", out.TargetG)
	}
	cut := calc.AnalyzeFiber(NutritionTotals{FiberG: 20, CarbsG: 200}, 60, true)
	if cut.TargetG != 22.8 {
		t.Fatalf("cut target = %.1f, want 22.8", cut.TargetG)
	}
	floor := calc.AnalyzeFiber(NutritionTotals{}, 30, false)
	if floor.TargetG != 18 {
		t.Fatalf("light LBM should floor at 18g, got %.1f", floor.TargetG)
	}
}

func TestVitaminScoreEmptyMapIsNeutral(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	if got := calc.vitaminScore(NutritionTotals{}, model.StyleGeneral); got != 50 {
		t.Fatalf("no vitamin data should score neutral 50, got %.1f", got)
	}
}

func TestVitaminScorePartialDataUsesLowBands(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	totals := NutritionTotals{Vitamins: map[string]float64{"c": 100}}
	got := calc.vitaminScore(totals, model.StyleGeneral)
	// One vitamin at target (100), eight absent at the 20 fallback: (100+8*20)/9.
	want := (100.0 + 8*20) / 9
	if got != want {
		t.Fatalf("vitamin score = %.2f, want %.2f", got, want)
	}
}

func TestSodiumScoreIsStyleDependent(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	cfg := DefaultConfig()

	general := calc.sodiumScore(3000, cfg.Styles[model.StyleGeneral])
	if general != 100 {
		t.Fatalf("3000mg at the general recommendation should score 100, got %.1f", general)
	}
	// The band is centered on the recommendation, so the same 3000mg is a
	// 7000mg shortfall under bodymaker's 10000mg and lands in a low band.
	bodymaker := calc.sodiumScore(3000, cfg.Styles[model.StyleBodymaker])
	if bodymaker >= general {
		t.Fatalf("3000mg bodymaker = %.1f, want below general's %.1f", bodymaker, general)
	}
	if bodymaker != 25 {
		t.Fatalf("3000mg bodymaker = %.1f, want 25", bodymaker)
	}
	if got := calc.sodiumScore(10000, cfg.Styles[model.StyleBodymaker]); got != 100 {
		t.Fatalf("10000mg at the bodymaker recommendation should score 100, got %.1f", got)
	}

	// Excess walks the same bands: 6000mg is past the general ceiling but
	// only a partial deviation for bodymaker.
	if got := calc.sodiumScore(6000, cfg.Styles[model.StyleGeneral]); got != 25 {
		t.Fatalf("6000mg general = %.1f, want 25", got)
	}
	if got := calc.sodiumScore(6000, cfg.Styles[model.StyleBodymaker]); got != 50 {
		t.Fatalf("6000mg bodymaker = %.1f, want 50", got)
	}
}

func TestMineralScoreIncludesSodiumBand(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	totals := NutritionTotals{Minerals: map[string]float64{
		"calcium": 800, "iron": 7.5, "magnesium": 340, "zinc": 10, "potassium": 2600, "sodium": 3000,
	}}
	if got := calc.mineralScore(totals, model.StyleGeneral); got != 100 {
		t.Fatalf("on-target minerals should score 100, got %.1f", got)
	}

	// Blow out sodium only: five minerals at 100, sodium at 0.
	totals.Minerals["sodium"] = 9000
	want := (5*100.0 + 0) / 6
	if got := calc.mineralScore(totals, model.StyleGeneral); got != want {
		t.Fatalf("excess sodium day = %.2f, want %.2f", got, want)
	}
}

func TestNutrientRatioExcessBandsComeFromConfig(t *testing.T) {
	calc := NewCalculator(DefaultConfig())
	if got := calc.nutrientRatioScore(1.8); got != 80 {
		t.Fatalf("mild over-intake = %.1f, want 80", got)
	}
	if got := calc.nutrientRatioScore(2.5); got != 60 {
		t.Fatalf("heavy over-intake = %.1f, want 60", got)
	}

	cfg := DefaultConfig()
	cfg.RatioExcessBands = []band{{limit: 3.0, score: 90}}
	cfg.RatioExcessDefault = 10
	custom := NewCalculator(cfg)
	if got := custom.nutrientRatioScore(2.5); got != 90 {
		t.Fatalf("injected excess band = %.1f, want 90", got)
	}
	if got := custom.nutrientRatioScore(3.5); got != 10 {
		t.Fatalf("injected excess fallback = %.1f, want 10", got)
	}
}
