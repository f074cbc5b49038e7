package score

import "math"

// band pairs a boundary with the score awarded on its side of the boundary.
type band struct {
	limit float64
	score float64
}

// bandScore returns the score of the first band whose limit the value does
// not exceed. Bands must be sorted by ascending limit.
func bandScore(v float64, bands []band, fallback float64) float64 {
	for _, b := range bands {
		if v <= b.limit {
			return b.score
		}
	}
	return fallback
}

// floorScore returns the score of the first band whose limit the value meets
// or exceeds. Bands must be sorted by descending limit.
func floorScore(v float64, bands []band, fallback float64) float64 {
	for _, b := range bands {
		if v >= b.limit {
			return b.score
		}
	}
	return fallback
}

// rangeBandScore scores a value against an ideal [lo, hi] range: zero
// distance inside the range, otherwise the shortfall or excess, banded.
func rangeBandScore(v, lo, hi float64, bands []band, fallback float64) float64 {
	dist := 0.0
	if v < lo {
		dist = lo - v
	} else if v > hi {
		dist = v - hi
	}
	return bandScore(dist, bands, fallback)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
