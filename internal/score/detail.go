package score

import "github.com/kongou411-oss/your-coach-plus-sub015/internal/model"

// DetailInput parameterizes the advisory analysis. Unlike the gamified
// food score, its protein and fiber targets scale from lean body mass.
type DetailInput struct {
	Meals          []model.Meal
	Style          model.Style
	LeanBodyMassKg float64
	MealsPerDay    int
	Goal           model.Goal
}

// DetailedNutrition is the advisory report used to drive coaching text.
type DetailedNutrition struct {
	Totals        NutritionTotals     `json:"totals"`
	AminoAcidAvg  float64             `json:"amino_acid_avg"`
	AminoRating   string              `json:"amino_rating"`
	ProteinTarget float64             `json:"protein_target_g"`
	FattyAcids    FattyAcidBreakdown  `json:"fatty_acids"`
	GlycemicLoad  GlycemicLoadDetail  `json:"glycemic_load"`
	Fiber         FiberDetail         `json:"fiber"`
	Micronutrient MicronutrientDetail `json:"micronutrients"`
}

// CalculateDetailedNutrition builds the advisory report from a meal
// snapshot. Empty input degrades to zero totals and neutral sub-reports;
// it never fails.
func (c *Calculator) CalculateDetailedNutrition(in DetailInput) DetailedNutrition {
	totals := AggregateMeals(in.Meals)
	return DetailedNutrition{
		Totals:        totals,
		AminoAcidAvg:  round2(totals.AminoAcidAvg),
		AminoRating:   aminoRatingLabel(totals.AminoAcidAvg),
		ProteinTarget: round1(proteinTargetG(in.LeanBodyMassKg, in.Style, in.Goal)),
		FattyAcids:    c.AnalyzeFattyAcids(totals),
		GlycemicLoad:  c.AnalyzeGlycemicLoad(totals, in.Style, in.MealsPerDay),
		Fiber:         c.AnalyzeFiber(totals, in.LeanBodyMassKg, in.Goal == model.GoalCut),
		Micronutrient: c.AnalyzeMicronutrients(totals, in.Style),
	}
}

// proteinTargetG is the advisory protein target per kg of lean mass:
// heavier for the strength style, nudged up on a cut to spare muscle.
func proteinTargetG(leanBodyMassKg float64, style model.Style, goal model.Goal) float64 {
	perKg := 1.6
	if style == model.StyleBodymaker {
		perKg = 2.2
	}
	if goal == model.GoalCut {
		perKg += 0.2
	}
	return leanBodyMassKg * perKg
}

func aminoRatingLabel(avg float64) string {
	switch {
	case avg >= 1.0:
		return "complete"
	case avg >= 0.9:
		return "high"
	case avg >= 0.75:
		return "moderate"
	case avg > 0:
		return "low"
	default:
		return "none"
	}
}
