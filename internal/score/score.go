package score

import (
	"math"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

// Calculator evaluates daily scores from a read-only snapshot of logged
// data. It holds no state beyond its injected Config and is safe for
// concurrent use.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// ScoreInput is the snapshot for one user-day, assembled by the caller.
type ScoreInput struct {
	Style     model.Style
	Meals     []model.Meal
	Workouts  []model.Workout
	Condition *model.ConditionRecord
	Target    model.NutritionTarget
	RestDay   bool
}

// CalculatedScores is the daily score record: three axes and their
// 60/30/10 combination.
type CalculatedScores struct {
	Food      FoodScore      `json:"food"`
	Exercise  ExerciseScore  `json:"exercise"`
	Condition ConditionScore `json:"condition"`
	Total     int            `json:"total"`
}

// CalculateScores runs the full pipeline: aggregate, score each axis,
// combine. Pure; identical input yields identical output.
func (c *Calculator) CalculateScores(in ScoreInput) CalculatedScores {
	totals := AggregateMeals(in.Meals)
	out := CalculatedScores{
		Food:      c.FoodScoreFor(totals, in.Target, in.Style, len(in.Meals) > 0),
		Exercise:  c.ExerciseScoreFor(in.Workouts, in.Style, in.RestDay),
		Condition: c.ConditionScoreFor(in.Condition),
	}
	out.Total = c.CombineAxes(out.Food.Score, out.Exercise.Score, out.Condition.Score)
	return out
}

// CombineAxes folds the three axis scores into the single daily score.
func (c *Calculator) CombineAxes(food, exercise, condition int) int {
	w := c.cfg.AxisWeights
	total := float64(food)*w.Food + float64(exercise)*w.Exercise + float64(condition)*w.Condition
	return int(math.Round(total))
}
