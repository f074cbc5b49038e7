package score

import (
	"math"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

// FoodScore is the food axis with its ten weighted sub-scores.
type FoodScore struct {
	Score        int     `json:"score"`
	Calorie      float64 `json:"calorie"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carb         float64 `json:"carb"`
	AminoAcid    float64 `json:"amino_acid"`
	FattyAcid    float64 `json:"fatty_acid"`
	GlycemicLoad float64 `json:"glycemic_load"`
	Fiber        float64 `json:"fiber"`
	Vitamin      float64 `json:"vitamin"`
	Mineral      float64 `json:"mineral"`
}

// deviationScore is the shared target-deviation formula: full credit at the
// target, losing penalty points per unit of relative deviation. A target of
// zero or less means there is nothing to deviate from.
func deviationScore(actual, target, penalty float64) float64 {
	if target <= 0 {
		return 100
	}
	deviation := math.Abs(actual-target) / target
	return clampScore(100 - deviation*penalty)
}

// FoodScoreFor combines the ten sub-scores into the food axis. A day with
// no meals logged scores explicit zeros everywhere, not "unscored".
func (c *Calculator) FoodScoreFor(totals NutritionTotals, target model.NutritionTarget, style model.Style, hasMeals bool) FoodScore {
	if !hasMeals {
		return FoodScore{}
	}

	out := FoodScore{
		Calorie:      deviationScore(float64(totals.Calories), float64(target.Calories), c.cfg.CaloriePenalty),
		Protein:      deviationScore(totals.ProteinG, target.ProteinG, c.cfg.ProteinPenalty),
		Fat:          deviationScore(totals.FatG, target.FatG, c.cfg.FatPenalty),
		Carb:         deviationScore(totals.CarbsG, target.CarbsG, c.cfg.CarbPenalty),
		AminoAcid:    floorScore(totals.AminoAcidAvg, c.cfg.AminoBands, c.cfg.AminoFallback),
		FattyAcid:    c.fattyAcidScore(totals),
		GlycemicLoad: c.glycemicLoadScore(totals.GlycemicLoad, style),
		Fiber:        c.fiberScore(totals),
		Vitamin:      c.vitaminScore(totals, style),
		Mineral:      c.mineralScore(totals, style),
	}

	w := c.cfg.FoodWeights
	weighted := out.Calorie*w.Calories +
		out.Protein*w.Protein +
		out.Fat*w.Fat +
		out.Carb*w.Carbs +
		out.AminoAcid*w.AminoAcid +
		out.FattyAcid*w.FattyAcid +
		out.GlycemicLoad*w.GlycemicLoad +
		out.Fiber*w.Fiber +
		out.Vitamin*w.Vitamin +
		out.Mineral*w.Mineral
	out.Score = int(math.Round(clampScore(weighted)))
	return out
}
