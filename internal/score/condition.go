package score

import (
	"math"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

// ConditionScore is the condition axis: five 1–5 ratings rescaled to 0–100.
type ConditionScore struct {
	Score        int     `json:"score"`
	SleepHours   float64 `json:"sleep_hours"`
	SleepQuality float64 `json:"sleep_quality"`
	Digestion    float64 `json:"digestion"`
	Focus        float64 `json:"focus"`
	Stress       float64 `json:"stress"`
}

// ConditionScoreFor rescales each rating to a 0–100 component and averages
// them. An absent record scores explicit zeros.
func (c *Calculator) ConditionScoreFor(record *model.ConditionRecord) ConditionScore {
	if record == nil {
		return ConditionScore{}
	}
	out := ConditionScore{
		SleepHours:   ratingComponent(record.SleepHours),
		SleepQuality: ratingComponent(record.SleepQuality),
		Digestion:    ratingComponent(record.Digestion),
		Focus:        ratingComponent(record.Focus),
		Stress:       ratingComponent(record.Stress),
	}
	sum := record.SleepHours + record.SleepQuality + record.Digestion + record.Focus + record.Stress
	out.Score = int(math.Round(float64(sum) / 5 * 20))
	return out
}

func ratingComponent(rating int) float64 {
	if rating < 0 {
		return 0
	}
	if rating > 5 {
		rating = 5
	}
	return float64(rating) / 5 * 100
}
