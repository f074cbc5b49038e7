package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
	"github.com/kongou411-oss/your-coach-plus-sub015/internal/score"
)

type ScoreRecord struct {
	Day        string                 `json:"day"`
	Food       int                    `json:"food_score"`
	Exercise   int                    `json:"exercise_score"`
	Condition  int                    `json:"condition_score"`
	Total      int                    `json:"total_score"`
	Breakdown  score.CalculatedScores `json:"breakdown"`
	ComputedAt time.Time              `json:"computed_at"`
}

// ComputeDailyScore assembles the day's snapshot, runs the calculator,
// and upserts the result so a recompute after late logging replaces the
// stale row.
func ComputeDailyScore(db *sql.DB, calc *score.Calculator, date string) (ScoreRecord, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return ScoreRecord{}, err
	}
	profile, err := CurrentProfile(db, date)
	if err != nil {
		return ScoreRecord{}, err
	}
	if profile == nil {
		return ScoreRecord{}, fmt.Errorf("no profile set; run 'profile set' first")
	}
	snap, err := LoadDaySnapshot(db, date)
	if err != nil {
		return ScoreRecord{}, err
	}
	target := model.NutritionTarget{}
	if record, err := CurrentTarget(db, date); err != nil {
		return ScoreRecord{}, err
	} else if record != nil {
		target = record.NutritionTarget
	}

	result := calc.CalculateScores(score.ScoreInput{
		Style:     profile.Style,
		Meals:     snap.Meals,
		Workouts:  snap.Workouts,
		Condition: snap.Condition,
		Target:    target,
		RestDay:   snap.RestDay,
	})

	breakdown, err := json.Marshal(result)
	if err != nil {
		return ScoreRecord{}, fmt.Errorf("marshal score breakdown: %w", err)
	}
	if _, err := db.Exec(`
INSERT INTO daily_scores(day, food_score, exercise_score, condition_score, total_score, breakdown_json, computed_at)
VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(day) DO UPDATE SET
  food_score=excluded.food_score,
  exercise_score=excluded.exercise_score,
  condition_score=excluded.condition_score,
  total_score=excluded.total_score,
  breakdown_json=excluded.breakdown_json,
  computed_at=excluded.computed_at
`, date, result.Food.Score, result.Exercise.Score, result.Condition.Score, result.Total, string(breakdown)); err != nil {
		return ScoreRecord{}, fmt.Errorf("store daily score for %s: %w", date, err)
	}

	return ScoreRecord{
		Day:        date,
		Food:       result.Food.Score,
		Exercise:   result.Exercise.Score,
		Condition:  result.Condition.Score,
		Total:      result.Total,
		Breakdown:  result,
		ComputedAt: time.Now(),
	}, nil
}

// GetDailyScore returns the stored score row, or nil when the day was
// never scored.
func GetDailyScore(db *sql.DB, date string) (*ScoreRecord, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	var rec ScoreRecord
	var breakdownRaw string
	var computedRaw string
	err = db.QueryRow(`
SELECT day, food_score, exercise_score, condition_score, total_score, breakdown_json, computed_at
FROM daily_scores
WHERE day = ?
`, date).Scan(&rec.Day, &rec.Food, &rec.Exercise, &rec.Condition, &rec.Total, &breakdownRaw, &computedRaw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load daily score for %s: %w", date, err)
	}
	if breakdownRaw != "" {
		if err := json.Unmarshal([]byte(breakdownRaw), &rec.Breakdown); err != nil {
			return nil, fmt.Errorf("decode score breakdown for %s: %w", date, err)
		}
	}
	rec.ComputedAt, _ = time.Parse(time.RFC3339, computedRaw)
	return &rec, nil
}

// ScoreHistory lists stored scores between two dates, oldest first.
func ScoreHistory(db *sql.DB, from, to string) ([]ScoreRecord, error) {
	from, err := normalizeDate(from)
	if err != nil {
		return nil, err
	}
	to, err = normalizeDate(to)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(`
SELECT day, food_score, exercise_score, condition_score, total_score
FROM daily_scores
WHERE day >= ? AND day <= ?
ORDER BY day ASC
`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list score history: %w", err)
	}
	defer rows.Close()

	records := make([]ScoreRecord, 0)
	for rows.Next() {
		var rec ScoreRecord
		if err := rows.Scan(&rec.Day, &rec.Food, &rec.Exercise, &rec.Condition, &rec.Total); err != nil {
			return nil, fmt.Errorf("scan score history: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score history: %w", err)
	}
	return records, nil
}

// DetailedNutritionFor runs the advisory analysis over one day's meals.
func DetailedNutritionFor(db *sql.DB, calc *score.Calculator, date string) (score.DetailedNutrition, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return score.DetailedNutrition{}, err
	}
	profile, err := CurrentProfile(db, date)
	if err != nil {
		return score.DetailedNutrition{}, err
	}
	if profile == nil {
		return score.DetailedNutrition{}, fmt.Errorf("no profile set; run 'profile set' first")
	}
	meals, err := ListMeals(db, date)
	if err != nil {
		return score.DetailedNutrition{}, err
	}
	return calc.CalculateDetailedNutrition(score.DetailInput{
		Meals:          meals,
		Style:          profile.Style,
		LeanBodyMassKg: profile.LeanBodyMassKg,
		MealsPerDay:    profile.MealsPerDay,
		Goal:           profile.Goal,
	}), nil
}
