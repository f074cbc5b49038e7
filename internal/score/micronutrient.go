package score

import (
	"math"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

// MicronutrientDetail reports per-nutrient sufficiency ratios against the
// style-scaled daily targets. Ratios are on a 0–1+ scale (1.0 = target met).
type MicronutrientDetail struct {
	VitaminRatios map[string]float64 `json:"vitamin_ratios"`
	MineralRatios map[string]float64 `json:"mineral_ratios"`
	SodiumMg      float64            `json:"sodium_mg"`
	SodiumTarget  float64            `json:"sodium_target_mg"`
	SodiumLimit   float64            `json:"sodium_limit_mg"`
	VitaminScore  float64            `json:"vitamin_score"`
	MineralScore  float64            `json:"mineral_score"`
}

// nutrientRatioScore bands an intake/target ratio. The sufficient window
// scores full marks; over-intake walks the excess bands, shortfalls walk
// down the floor bands.
func (c *Calculator) nutrientRatioScore(ratio float64) float64 {
	if ratio >= c.cfg.RatioSufficientLow && ratio <= c.cfg.RatioSufficientHigh {
		return 100
	}
	if ratio > c.cfg.RatioSufficientHigh {
		return bandScore(ratio, c.cfg.RatioExcessBands, c.cfg.RatioExcessDefault)
	}
	return floorScore(ratio, c.cfg.NutrientRatioBands, c.cfg.NutrientRatioDefault)
}

// vitaminScore averages the ratio bands across the nine tracked vitamins.
// A day with meals but no vitamin data at all scores the neutral default
// per vitamin; once any vitamin data exists, absent nutrients score through
// the low bands rather than being skipped.
func (c *Calculator) vitaminScore(totals NutritionTotals, style model.Style) float64 {
	if len(totals.Vitamins) == 0 {
		return c.cfg.MissingNutrientScore
	}
	factor := c.cfg.styleTargets(style).VitaminFactor
	sum := 0.0
	for _, name := range TrackedVitamins {
		target := c.cfg.VitaminTargets[name] * factor
		ratio := 0.0
		if target > 0 {
			ratio = totals.Vitamins[name] / target
		}
		sum += c.nutrientRatioScore(ratio)
	}
	return clampScore(sum / float64(len(TrackedVitamins)))
}

// mineralScore averages the five general minerals plus sodium, which is
// scored against the style's recommended/upper-limit pair instead of a
// plain ratio band.
func (c *Calculator) mineralScore(totals NutritionTotals, style model.Style) float64 {
	targets := c.cfg.styleTargets(style)
	if len(totals.Minerals) == 0 {
		return c.cfg.MissingNutrientScore
	}
	factor := targets.MineralFactor
	sum := 0.0
	for _, name := range TrackedMinerals {
		target := c.cfg.MineralTargets[name] * factor
		ratio := 0.0
		if target > 0 {
			ratio = totals.Minerals[name] / target
		}
		sum += c.nutrientRatioScore(ratio)
	}
	sum += c.sodiumScore(totals.Minerals["sodium"], targets)
	return clampScore(sum / float64(len(TrackedMinerals)+1))
}

// sodiumScore is a band centered on the style's recommended intake: a
// shortfall walks the same bands as an excess. The spread between the
// recommendation and the ceiling sets the band width, so hitting the
// ceiling halves the score and twice the spread out nothing is left.
func (c *Calculator) sodiumScore(sodiumMg float64, targets StyleTargets) float64 {
	spread := targets.SodiumLimitMg - targets.SodiumRecommendedMg
	dist := math.Abs(sodiumMg - targets.SodiumRecommendedMg)
	bands := []band{
		{limit: spread * 0.25, score: 100},
		{limit: spread * 0.5, score: 75},
		{limit: spread, score: 50},
		{limit: spread * 2, score: 25},
	}
	return bandScore(dist, bands, 0)
}

// AnalyzeMicronutrients reports sufficiency ratios for the advisory view.
func (c *Calculator) AnalyzeMicronutrients(totals NutritionTotals, style model.Style) MicronutrientDetail {
	targets := c.cfg.styleTargets(style)
	out := MicronutrientDetail{
		VitaminRatios: map[string]float64{},
		MineralRatios: map[string]float64{},
		SodiumMg:      totals.Minerals["sodium"],
		SodiumTarget:  targets.SodiumRecommendedMg,
		SodiumLimit:   targets.SodiumLimitMg,
		VitaminScore:  c.vitaminScore(totals, style),
		MineralScore:  c.mineralScore(totals, style),
	}
	for _, name := range TrackedVitamins {
		target := c.cfg.VitaminTargets[name] * targets.VitaminFactor
		if target > 0 {
			out.VitaminRatios[name] = round2(totals.Vitamins[name] / target)
		}
	}
	for _, name := range TrackedMinerals {
		target := c.cfg.MineralTargets[name] * targets.MineralFactor
		if target > 0 {
			out.MineralRatios[name] = round2(totals.Minerals[name] / target)
		}
	}
	return out
}
