package score

// FiberDetail is the advisory view of the day's fiber intake against an
// LBM-scaled target.
type FiberDetail struct {
	TotalG         float64 `json:"total_g"`
	SolubleG       float64 `json:"soluble_g"`
	InsolubleG     float64 `json:"insoluble_g"`
	TargetG        float64 `json:"target_g"`
	CarbFiberRatio float64 `json:"carb_fiber_ratio"`
	SufficiencyPct float64 `json:"sufficiency_pct"`
	Score          float64 `json:"score"`
	Rating         string  `json:"rating"`
}

// fiberScore blends an absolute-amount band with a carb:fiber ratio band.
// Zero carbs means the ratio has nothing to evaluate and takes a neutral
// default; zero fiber with carbs present scores through the worst band.
func (c *Calculator) fiberScore(totals NutritionTotals) float64 {
	amountScore := rangeBandScore(totals.FiberG,
		c.cfg.FiberIdealLowG, c.cfg.FiberIdealHighG, c.cfg.FiberAmountBands, c.cfg.FiberAmountFallback)

	ratioScore := c.cfg.NeutralFiberDefault
	if totals.CarbsG > 0 {
		ratioScore = bandScore(carbFiberRatio(totals), c.cfg.CarbFiberRatioBands, c.cfg.CarbFiberFallback)
	}
	return clampScore(c.cfg.FiberAmountWeight*amountScore + c.cfg.FiberRatioWeight*ratioScore)
}

func carbFiberRatio(totals NutritionTotals) float64 {
	if totals.FiberG <= 0 {
		// No fiber at all: treat the ratio as beyond every band.
		return 1e9
	}
	return totals.CarbsG / totals.FiberG
}

// fiberTargetG is the advisory target: LBM-scaled with a floor, nudged up
// on a cut where satiety matters more.
func fiberTargetG(leanBodyMassKg float64, cut bool) float64 {
	target := leanBodyMassKg * 0.33
	if target < 18 {
		target = 18
	}
	if cut {
		target += 3
	}
	return target
}

// AnalyzeFiber compares the day's fiber to the goal-adjusted target.
func (c *Calculator) AnalyzeFiber(totals NutritionTotals, leanBodyMassKg float64, cut bool) FiberDetail {
	target := fiberTargetG(leanBodyMassKg, cut)
	out := FiberDetail{
		TotalG:     totals.FiberG,
		SolubleG:   totals.SolubleFiberG,
		InsolubleG: totals.InsolubleFiberG,
		TargetG:    round1(target),
		Score:      c.fiberScore(totals),
	}
	if totals.CarbsG > 0 && totals.FiberG > 0 {
		out.CarbFiberRatio = round1(totals.CarbsG / totals.FiberG)
	}
	if target > 0 {
		out.SufficiencyPct = round1(totals.FiberG / target * 100)
	}
	out.Rating = fiberRatingLabel(out.SufficiencyPct)
	return out
}

func fiberRatingLabel(sufficiencyPct float64) string {
	switch {
	case sufficiencyPct >= 100:
		return "sufficient"
	case sufficiencyPct >= 70:
		return "close"
	case sufficiencyPct >= 40:
		return "low"
	default:
		return "very low"
	}
}
