package score

import "math"

// FattyAcidBreakdown is the advisory view of the day's fat composition.
type FattyAcidBreakdown struct {
	TotalFatG    float64 `json:"total_fat_g"`
	SaturatedG   float64 `json:"saturated_g"`
	MonoG        float64 `json:"monounsaturated_g"`
	PolyG        float64 `json:"polyunsaturated_g"`
	SaturatedPct float64 `json:"saturated_pct"`
	MonoPct      float64 `json:"monounsaturated_pct"`
	PolyPct      float64 `json:"polyunsaturated_pct"`
	Score        float64 `json:"score"`
	Stars        int     `json:"stars"`
	Rating       string  `json:"rating"`
}

// fattyAcidScore scores the balance of saturated, monounsaturated, and
// polyunsaturated fat against their ideal shares of total fat. Zero total
// fat means there is nothing to evaluate and scores a neutral default.
func (c *Calculator) fattyAcidScore(totals NutritionTotals) float64 {
	if totals.FatG <= 0 {
		return c.cfg.NeutralFattyDefault
	}
	satScore := rangeBandScore(totals.SaturatedFatG/totals.FatG,
		c.cfg.SaturatedIdealLow, c.cfg.SaturatedIdealHigh, c.cfg.FattyRatioBands, c.cfg.FattyRatioDefault)
	monoScore := rangeBandScore(totals.MonoFatG/totals.FatG,
		c.cfg.MonoIdealLow, c.cfg.MonoIdealHigh, c.cfg.FattyRatioBands, c.cfg.FattyRatioDefault)
	polyScore := rangeBandScore(totals.PolyFatG/totals.FatG,
		c.cfg.PolyIdealLow, c.cfg.PolyIdealHigh, c.cfg.FattyRatioBands, c.cfg.FattyRatioDefault)

	return clampScore(c.cfg.SaturatedWeight*satScore + c.cfg.MonoWeight*monoScore + c.cfg.PolyWeight*polyScore)
}

// AnalyzeFattyAcids returns the full breakdown with a 1–5 star rating.
func (c *Calculator) AnalyzeFattyAcids(totals NutritionTotals) FattyAcidBreakdown {
	out := FattyAcidBreakdown{
		TotalFatG:  totals.FatG,
		SaturatedG: totals.SaturatedFatG,
		MonoG:      totals.MonoFatG,
		PolyG:      totals.PolyFatG,
	}
	if totals.FatG > 0 {
		out.SaturatedPct = totals.SaturatedFatG / totals.FatG * 100
		out.MonoPct = totals.MonoFatG / totals.FatG * 100
		out.PolyPct = totals.PolyFatG / totals.FatG * 100
	}
	out.Score = c.fattyAcidScore(totals)
	out.Stars = fattyStars(out.Score)
	out.Rating = starRatingLabel(out.Stars)
	return out
}

func fattyStars(score float64) int {
	switch {
	case score >= 90:
		return 5
	case score >= 75:
		return 4
	case score >= 60:
		return 3
	case score >= 40:
		return 2
	default:
		return 1
	}
}

func starRatingLabel(stars int) string {
	switch stars {
	case 5:
		return "excellent"
	case 4:
		return "good"
	case 3:
		return "fair"
	case 2:
		return "needs work"
	default:
		return "poor"
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
