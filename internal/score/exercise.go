package score

import (
	"math"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

// ExerciseScore is the exercise axis with its duration and set sub-scores.
type ExerciseScore struct {
	Score            int     `json:"score"`
	Duration         float64 `json:"duration"`
	Sets             float64 `json:"sets"`
	TotalDurationMin int     `json:"total_duration_min"`
	TotalSets        int     `json:"total_sets"`
}

// derivedSets converts one exercise record to a set count using the
// category's conversion rule. Strength records count logged sets and
// default to one; timed categories convert duration, with a minimum of one
// set once any duration is logged.
func (c *Calculator) derivedSets(rec model.ExerciseRecord) int {
	conv, ok := c.cfg.SetConversions[rec.Category]
	if !ok {
		return 0
	}
	switch conv.kind {
	case setsLogged:
		if rec.Sets != nil && *rec.Sets > 0 {
			return *rec.Sets
		}
		return 1
	case setsPerDuration:
		if rec.DurationMin == nil || *rec.DurationMin <= 0 {
			return 0
		}
		sets := *rec.DurationMin / conv.minutesPerSet
		if sets < 1 {
			sets = 1
		}
		return sets
	}
	return 0
}

// ExerciseScoreFor scores the day's workouts against the style's duration
// and set targets. A rest day cannot be scored down: both sub-scores are
// forced to full credit regardless of logged activity.
func (c *Calculator) ExerciseScoreFor(workouts []model.Workout, style model.Style, restDay bool) ExerciseScore {
	out := ExerciseScore{}
	for _, w := range workouts {
		out.TotalDurationMin += w.DurationMin
		for _, rec := range w.Records {
			out.TotalSets += c.derivedSets(rec)
		}
	}

	if restDay {
		out.Duration = 100
		out.Sets = 100
		out.Score = 100
		return out
	}

	targets := c.cfg.styleTargets(style)
	out.Duration = attainmentScore(float64(out.TotalDurationMin), targets.DurationTargetMin)
	out.Sets = attainmentScore(float64(out.TotalSets), targets.SetTarget)
	out.Score = int(math.Round(c.cfg.DurationWeight*out.Duration + c.cfg.SetWeight*out.Sets))
	return out
}

// attainmentScore is linear up to the target and capped at 100. Zero logged
// activity scores 0 on that axis, with no neutral default.
func attainmentScore(actual, target float64) float64 {
	if target <= 0 || actual <= 0 {
		return 0
	}
	return math.Min(100, actual/target*100)
}
