package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/model"
)

type MealItemInput struct {
	Name                string
	Calories            int
	ProteinG            float64
	FatG                float64
	CarbsG              float64
	FiberG              float64
	SolubleFiberG       float64
	InsolubleFiberG     float64
	SugarG              float64
	SaturatedFatG       float64
	MonounsaturatedFatG float64
	PolyunsaturatedFatG float64
	GlycemicIndex       float64
	AminoAcidScore      float64
	Vitamins            map[string]float64
	Minerals            map[string]float64
}

type AddMealInput struct {
	Name     string
	LoggedAt time.Time
	Notes    string
	Items    []MealItemInput
}

// AddMeal inserts the meal with its items in one transaction and marks the
// day active for the streak.
func AddMeal(db *sql.DB, in AddMealInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("meal name is required")
	}
	if len(in.Items) == 0 {
		return 0, fmt.Errorf("meal needs at least one item")
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}
	calories := 0
	for i, item := range in.Items {
		if strings.TrimSpace(item.Name) == "" {
			return 0, fmt.Errorf("item %d: name is required", i+1)
		}
		if err := validateNonNegativeInt("calories", item.Calories); err != nil {
			return 0, fmt.Errorf("item %q: %w", item.Name, err)
		}
		for _, v := range []struct {
			name  string
			value float64
		}{
			{"protein", item.ProteinG}, {"fat", item.FatG}, {"carbs", item.CarbsG},
			{"fiber", item.FiberG}, {"sugar", item.SugarG},
			{"saturated fat", item.SaturatedFatG},
			{"monounsaturated fat", item.MonounsaturatedFatG},
			{"polyunsaturated fat", item.PolyunsaturatedFatG},
			{"glycemic index", item.GlycemicIndex},
			{"amino acid score", item.AminoAcidScore},
		} {
			if err := validateNonNegativeFloat(v.name, v.value); err != nil {
				return 0, fmt.Errorf("item %q: %w", item.Name, err)
			}
		}
		calories += item.Calories
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin meal tx: %w", err)
	}
	res, err := tx.Exec(`
INSERT INTO meals(name, calories, logged_at, notes)
VALUES(?, ?, ?, ?)
`, in.Name, calories, in.LoggedAt.Format(time.RFC3339), strings.TrimSpace(in.Notes))
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert meal: %w", err)
	}
	mealID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("resolve meal id: %w", err)
	}
	for _, item := range in.Items {
		vitamins, err := encodeNutrientMap(item.Vitamins)
		if err != nil {
			_ = tx.Rollback()
			return 0, err
		}
		minerals, err := encodeNutrientMap(item.Minerals)
		if err != nil {
			_ = tx.Rollback()
			return 0, err
		}
		if _, err := tx.Exec(`
INSERT INTO meal_items(
  meal_id, name, calories, protein_g, fat_g, carbs_g,
  fiber_g, soluble_fiber_g, insoluble_fiber_g, sugar_g,
  saturated_fat_g, monounsaturated_fat_g, polyunsaturated_fat_g,
  glycemic_index, amino_acid_score, vitamins_json, minerals_json)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, mealID, strings.TrimSpace(item.Name), item.Calories, item.ProteinG, item.FatG, item.CarbsG,
			item.FiberG, item.SolubleFiberG, item.InsolubleFiberG, item.SugarG,
			item.SaturatedFatG, item.MonounsaturatedFatG, item.PolyunsaturatedFatG,
			item.GlycemicIndex, item.AminoAcidScore, vitamins, minerals); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert meal item %q: %w", item.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit meal: %w", err)
	}

	if err := MarkActive(db, in.LoggedAt.Format("2006-01-02")); err != nil {
		return mealID, err
	}
	return mealID, nil
}

func ListMeals(db *sql.DB, date string) ([]model.Meal, error) {
	start, end, err := dayBounds(date)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
SELECT id, name, calories, logged_at
FROM meals
WHERE logged_at >= ? AND logged_at < ?
ORDER BY logged_at ASC
`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	meals := make([]model.Meal, 0)
	for rows.Next() {
		var m model.Meal
		var loggedRaw string
		if err := rows.Scan(&m.ID, &m.Name, &m.Calories, &loggedRaw); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		m.LoggedAt, err = time.Parse(time.RFC3339, loggedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for meal %d: %w", m.ID, err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}

	for i := range meals {
		items, err := mealItems(db, meals[i].ID)
		if err != nil {
			return nil, err
		}
		meals[i].Items = items
	}
	return meals, nil
}

func mealItems(db *sql.DB, mealID int64) ([]model.MealItem, error) {
	rows, err := db.Query(`
SELECT name, calories, protein_g, fat_g, carbs_g,
  fiber_g, soluble_fiber_g, insoluble_fiber_g, sugar_g,
  saturated_fat_g, monounsaturated_fat_g, polyunsaturated_fat_g,
  glycemic_index, amino_acid_score, vitamins_json, minerals_json
FROM meal_items
WHERE meal_id = ?
ORDER BY id ASC
`, mealID)
	if err != nil {
		return nil, fmt.Errorf("list meal items for %d: %w", mealID, err)
	}
	defer rows.Close()

	items := make([]model.MealItem, 0)
	for rows.Next() {
		var it model.MealItem
		var vitaminsRaw, mineralsRaw string
		if err := rows.Scan(&it.Name, &it.Calories, &it.ProteinG, &it.FatG, &it.CarbsG,
			&it.FiberG, &it.SolubleFiberG, &it.InsolubleFiberG, &it.SugarG,
			&it.SaturatedFatG, &it.MonounsaturatedFatG, &it.PolyunsaturatedFatG,
			&it.GlycemicIndex, &it.AminoAcidScore, &vitaminsRaw, &mineralsRaw); err != nil {
			return nil, fmt.Errorf("scan meal item: %w", err)
		}
		if it.Vitamins, err = decodeNutrientMap(vitaminsRaw); err != nil {
			return nil, fmt.Errorf("meal %d item %q: %w", mealID, it.Name, err)
		}
		if it.Minerals, err = decodeNutrientMap(mineralsRaw); err != nil {
			return nil, fmt.Errorf("meal %d item %q: %w", mealID, it.Name, err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal items: %w", err)
	}
	return items, nil
}

func DeleteMeal(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("meal id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM meals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete meal %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for meal %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("meal %d not found", id)
	}
	return nil
}

type ExerciseInput struct {
	Category    string
	Sets        *int
	DurationMin *int
}

type AddWorkoutInput struct {
	PerformedAt    time.Time
	DurationMin    int
	CaloriesBurned int
	Notes          string
	Exercises      []ExerciseInput
}

func AddWorkout(db *sql.DB, in AddWorkoutInput) (int64, error) {
	if len(in.Exercises) == 0 {
		return 0, fmt.Errorf("workout needs at least one exercise")
	}
	if err := validateNonNegativeInt("duration", in.DurationMin); err != nil {
		return 0, err
	}
	if err := validateNonNegativeInt("calories burned", in.CaloriesBurned); err != nil {
		return 0, err
	}
	if in.PerformedAt.IsZero() {
		in.PerformedAt = time.Now()
	}
	categories := make([]model.ExerciseCategory, len(in.Exercises))
	for i, ex := range in.Exercises {
		cat, ok := model.ParseExerciseCategory(normalizeName(ex.Category))
		if !ok {
			return 0, fmt.Errorf("invalid exercise category %q", ex.Category)
		}
		if ex.Sets != nil && *ex.Sets <= 0 {
			return 0, fmt.Errorf("sets must be > 0")
		}
		if ex.DurationMin != nil && *ex.DurationMin <= 0 {
			return 0, fmt.Errorf("exercise duration must be > 0")
		}
		categories[i] = cat
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin workout tx: %w", err)
	}
	res, err := tx.Exec(`
INSERT INTO workouts(duration_min, calories_burned, performed_at, notes)
VALUES(?, ?, ?, ?)
`, in.DurationMin, in.CaloriesBurned, in.PerformedAt.Format(time.RFC3339), strings.TrimSpace(in.Notes))
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert workout: %w", err)
	}
	workoutID, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("resolve workout id: %w", err)
	}
	for i, ex := range in.Exercises {
		if _, err := tx.Exec(`
INSERT INTO workout_exercises(workout_id, category, sets, duration_min)
VALUES(?, ?, ?, ?)
`, workoutID, string(categories[i]), nullableInt(ex.Sets), nullableInt(ex.DurationMin)); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert workout exercise %s: %w", categories[i], err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit workout: %w", err)
	}

	if err := MarkActive(db, in.PerformedAt.Format("2006-01-02")); err != nil {
		return workoutID, err
	}
	return workoutID, nil
}

func ListWorkouts(db *sql.DB, date string) ([]model.Workout, error) {
	start, end, err := dayBounds(date)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
SELECT id, duration_min, calories_burned, performed_at
FROM workouts
WHERE performed_at >= ? AND performed_at < ?
ORDER BY performed_at ASC
`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	workouts := make([]model.Workout, 0)
	for rows.Next() {
		var w model.Workout
		var performedRaw string
		if err := rows.Scan(&w.ID, &w.DurationMin, &w.CaloriesBurned, &performedRaw); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		w.PerformedAt, err = time.Parse(time.RFC3339, performedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse performed_at for workout %d: %w", w.ID, err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}

	for i := range workouts {
		records, err := workoutExercises(db, workouts[i].ID)
		if err != nil {
			return nil, err
		}
		workouts[i].Records = records
	}
	return workouts, nil
}

func workoutExercises(db *sql.DB, workoutID int64) ([]model.ExerciseRecord, error) {
	rows, err := db.Query(`
SELECT category, sets, duration_min
FROM workout_exercises
WHERE workout_id = ?
ORDER BY id ASC
`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list exercises for workout %d: %w", workoutID, err)
	}
	defer rows.Close()

	records := make([]model.ExerciseRecord, 0)
	for rows.Next() {
		var r model.ExerciseRecord
		var category string
		var sets, duration sql.NullInt64
		if err := rows.Scan(&category, &sets, &duration); err != nil {
			return nil, fmt.Errorf("scan workout exercise: %w", err)
		}
		r.Category = model.ExerciseCategory(category)
		if sets.Valid {
			v := int(sets.Int64)
			r.Sets = &v
		}
		if duration.Valid {
			v := int(duration.Int64)
			r.DurationMin = &v
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout exercises: %w", err)
	}
	return records, nil
}

type SetConditionInput struct {
	Date         string
	SleepHours   int
	SleepQuality int
	Digestion    int
	Focus        int
	Stress       int
}

func SetCondition(db *sql.DB, in SetConditionInput) error {
	date, err := normalizeDate(in.Date)
	if err != nil {
		return err
	}
	for _, r := range []struct {
		name  string
		value int
	}{
		{"sleep hours", in.SleepHours}, {"sleep quality", in.SleepQuality},
		{"digestion", in.Digestion}, {"focus", in.Focus}, {"stress", in.Stress},
	} {
		if err := validateRating(r.name, r.value); err != nil {
			return err
		}
	}

	_, err = db.Exec(`
INSERT INTO condition_logs(log_date, sleep_hours, sleep_quality, digestion, focus, stress)
VALUES(?, ?, ?, ?, ?, ?)
ON CONFLICT(log_date) DO UPDATE SET
  sleep_hours=excluded.sleep_hours,
  sleep_quality=excluded.sleep_quality,
  digestion=excluded.digestion,
  focus=excluded.focus,
  stress=excluded.stress,
  updated_at=CURRENT_TIMESTAMP
`, date, in.SleepHours, in.SleepQuality, in.Digestion, in.Focus, in.Stress)
	if err != nil {
		return fmt.Errorf("set condition for %s: %w", date, err)
	}
	return MarkActive(db, date)
}

func ConditionFor(db *sql.DB, date string) (*model.ConditionRecord, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	var c model.ConditionRecord
	err = db.QueryRow(`
SELECT sleep_hours, sleep_quality, digestion, focus, stress
FROM condition_logs
WHERE log_date = ?
`, date).Scan(&c.SleepHours, &c.SleepQuality, &c.Digestion, &c.Focus, &c.Stress)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("condition for %s: %w", date, err)
	}
	return &c, nil
}

func SetRestDay(db *sql.DB, date string) error {
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO rest_days(log_date) VALUES(?)`, date); err != nil {
		return fmt.Errorf("set rest day %s: %w", date, err)
	}
	return MarkActive(db, date)
}

func IsRestDay(db *sql.DB, date string) (bool, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return false, err
	}
	var one int
	err = db.QueryRow(`SELECT 1 FROM rest_days WHERE log_date = ?`, date).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check rest day %s: %w", date, err)
	}
	return true, nil
}

type DaySnapshot struct {
	Date      string                 `json:"date"`
	Meals     []model.Meal           `json:"meals"`
	Workouts  []model.Workout        `json:"workouts"`
	Condition *model.ConditionRecord `json:"condition,omitempty"`
	RestDay   bool                   `json:"rest_day"`
}

func LoadDaySnapshot(db *sql.DB, date string) (DaySnapshot, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return DaySnapshot{}, err
	}
	snap := DaySnapshot{Date: date}
	if snap.Meals, err = ListMeals(db, date); err != nil {
		return DaySnapshot{}, err
	}
	if snap.Workouts, err = ListWorkouts(db, date); err != nil {
		return DaySnapshot{}, err
	}
	if snap.Condition, err = ConditionFor(db, date); err != nil {
		return DaySnapshot{}, err
	}
	if snap.RestDay, err = IsRestDay(db, date); err != nil {
		return DaySnapshot{}, err
	}
	return snap, nil
}
