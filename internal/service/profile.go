package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

type SetProfileInput struct {
	Style          string
	LeanBodyMassKg float64
	MealsPerDay    int
	Goal           string
	EffectiveDate  string
}

// SetProfile records a profile revision effective from the given date.
// Revisions never overwrite history; score computation picks the latest
// revision at or before the scored day.
func SetProfile(db *sql.DB, in SetProfileInput) error {
	style, ok := model.ParseStyle(normalizeName(in.Style))
	if !ok {
		return fmt.Errorf("invalid style %q (use general or bodymaker)", in.Style)
	}
	if in.LeanBodyMassKg <= 0 {
		return fmt.Errorf("lean body mass must be > 0")
	}
	if in.MealsPerDay <= 0 {
		return fmt.Errorf("meals per day must be > 0")
	}
	goal := model.Goal(normalizeName(in.Goal))
	if goal == "" {
		goal = model.GoalMaintain
	}
	switch goal {
	case model.GoalMaintain, model.GoalCut, model.GoalBulk:
	default:
		return fmt.Errorf("invalid goal %q (use maintain, cut, or bulk)", in.Goal)
	}
	effective, err := normalizeDate(in.EffectiveDate)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
INSERT INTO profiles(style, lean_body_mass_kg, meals_per_day, goal, effective_date)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(effective_date) DO UPDATE SET
  style=excluded.style,
  lean_body_mass_kg=excluded.lean_body_mass_kg,
  meals_per_day=excluded.meals_per_day,
  goal=excluded.goal
`, string(style), in.LeanBodyMassKg, in.MealsPerDay, string(goal), effective)
	if err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

func CurrentProfile(db *sql.DB, date string) (*model.Profile, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	var p model.Profile
	var style, goal string
	err = db.QueryRow(`
SELECT id, style, lean_body_mass_kg, meals_per_day, goal, effective_date, created_at
FROM profiles
WHERE effective_date <= ?
ORDER BY effective_date DESC
LIMIT 1
`, date).Scan(&p.ID, &style, &p.LeanBodyMassKg, &p.MealsPerDay, &goal, &p.EffectiveDate, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("current profile for %s: %w", date, err)
	}
	p.Style = model.Style(style)
	p.Goal = model.Goal(goal)
	return &p, nil
}

type SetTargetInput struct {
	Calories      int
	ProteinG      float64
	FatG          float64
	CarbsG        float64
	EffectiveDate string
}

type TargetRecord struct {
	ID int64 `json:"id"`
	model.NutritionTarget
	EffectiveDate string    `json:"effective_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func SetTarget(db *sql.DB, in SetTargetInput) error {
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("protein", in.ProteinG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("fat", in.FatG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("carbs", in.CarbsG); err != nil {
		return err
	}
	effective, err := normalizeDate(in.EffectiveDate)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
INSERT INTO nutrition_targets(calories, protein_g, fat_g, carbs_g, effective_date)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(effective_date) DO UPDATE SET
  calories=excluded.calories,
  protein_g=excluded.protein_g,
  fat_g=excluded.fat_g,
  carbs_g=excluded.carbs_g
`, in.Calories, in.ProteinG, in.FatG, in.CarbsG, effective)
	if err != nil {
		return fmt.Errorf("set target: %w", err)
	}
	return nil
}

func CurrentTarget(db *sql.DB, date string) (*TargetRecord, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	var t TargetRecord
	err = db.QueryRow(`
SELECT id, calories, protein_g, fat_g, carbs_g, effective_date, created_at
FROM nutrition_targets
WHERE effective_date <= ?
ORDER BY effective_date DESC
LIMIT 1
`, date).Scan(&t.ID, &t.Calories, &t.ProteinG, &t.FatG, &t.CarbsG, &t.EffectiveDate, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("current target for %s: %w", date, err)
	}
	return &t, nil
}

func TargetHistory(db *sql.DB) ([]TargetRecord, error) {
	rows, err := db.Query(`
SELECT id, calories, protein_g, fat_g, carbs_g, effective_date, created_at
FROM nutrition_targets
ORDER BY effective_date DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list target history: %w", err)
	}
	defer rows.Close()

	targets := make([]TargetRecord, 0)
	for rows.Next() {
		var t TargetRecord
		if err := rows.Scan(&t.ID, &t.Calories, &t.ProteinG, &t.FatG, &t.CarbsG, &t.EffectiveDate, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan target history: %w", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate target history: %w", err)
	}
	return targets, nil
}
