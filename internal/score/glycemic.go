package score

import (
	"math"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

// ReductionFactor names one property of the day's intake that blunts the
// effective glycemic response, with the multiplier it applies.
type ReductionFactor struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

// GlycemicLoadDetail is the advisory view of the day's glycemic load.
type GlycemicLoadDetail struct {
	Total      float64           `json:"total"`
	Adjusted   float64           `json:"adjusted"`
	DailyLimit float64           `json:"daily_limit"`
	Score      float64           `json:"score"`
	Rating     string            `json:"rating"`
	Factors    []ReductionFactor `json:"factors"`
}

// glycemicLoadScore bands the day's raw glycemic load against the
// style-scaled daily limit. Beyond 150% of the limit the score decays
// linearly below the lowest band.
func (c *Calculator) glycemicLoadScore(gl float64, style model.Style) float64 {
	return c.glScoreAgainstLimit(gl, c.dailyGLLimit(style, c.cfg.GLMealsPerDay))
}

func (c *Calculator) dailyGLLimit(style model.Style, mealsPerDay float64) float64 {
	if mealsPerDay <= 0 {
		mealsPerDay = c.cfg.GLMealsPerDay
	}
	return c.cfg.styleTargets(style).GLPerMealLimit * mealsPerDay
}

func (c *Calculator) glScoreAgainstLimit(gl, limit float64) float64 {
	if limit <= 0 {
		return 100
	}
	fraction := gl / limit
	decay := clampScore(c.cfg.GLDecayBase - (fraction-1.5)*c.cfg.GLDecayPerUnit)
	return bandScore(fraction, c.cfg.GLBands, decay)
}

// glycemicReductionFactors lists what the day's intake composition does to
// the effective glycemic response. Fiber and protein eaten alongside carbs
// slow absorption; a high sugar share works against that.
func glycemicReductionFactors(totals NutritionTotals) []ReductionFactor {
	factors := make([]ReductionFactor, 0, 3)
	if totals.CarbsG <= 0 {
		return factors
	}
	if totals.FiberG >= 10 {
		factors = append(factors, ReductionFactor{Name: "fiber slows glucose absorption", Factor: 0.90})
	}
	if totals.ProteinG >= 20 {
		factors = append(factors, ReductionFactor{Name: "protein moderates glycemic response", Factor: 0.95})
	}
	if totals.SugarG > 0 && totals.SugarG/totals.CarbsG > 0.5 {
		factors = append(factors, ReductionFactor{Name: "high sugar share of carbohydrate", Factor: 1.10})
	}
	return factors
}

// AnalyzeGlycemicLoad applies the reduction factors to the raw load and
// rates the adjusted value against a limit scaled by the user's meal count.
func (c *Calculator) AnalyzeGlycemicLoad(totals NutritionTotals, style model.Style, mealsPerDay int) GlycemicLoadDetail {
	limit := c.dailyGLLimit(style, float64(mealsPerDay))
	factors := glycemicReductionFactors(totals)

	adjusted := totals.GlycemicLoad
	for _, f := range factors {
		adjusted *= f.Factor
	}
	adjusted = math.Round(adjusted*10) / 10

	scoreVal := c.glScoreAgainstLimit(adjusted, limit)
	return GlycemicLoadDetail{
		Total:      totals.GlycemicLoad,
		Adjusted:   adjusted,
		DailyLimit: limit,
		Score:      scoreVal,
		Rating:     glRatingLabel(scoreVal),
		Factors:    factors,
	}
}

func glRatingLabel(score float64) string {
	switch {
	case score >= 90:
		return "low"
	case score >= 70:
		return "moderate"
	case score >= 40:
		return "high"
	default:
		return "very high"
	}
}
