package model

import "time"

type Style string

const (
	StyleGeneral   Style = "general"
	StyleBodymaker Style = "bodymaker"
)

func ParseStyle(s string) (Style, bool) {
	switch Style(s) {
	case StyleGeneral, StyleBodymaker:
		return Style(s), true
	}
	return "", false
}

type Goal string

const (
	GoalMaintain Goal = "maintain"
	GoalCut      Goal = "cut"
	GoalBulk     Goal = "bulk"
)

// MealItem holds the nutrient record for one consumed item. Values are
// already scaled to the consumed quantity; the engine never re-scales.
type MealItem struct {
	Name                string             `json:"name"`
	Calories            int                `json:"calories"`
	ProteinG            float64            `json:"protein_g"`
	FatG                float64            `json:"fat_g"`
	CarbsG              float64            `json:"carbs_g"`
	FiberG              float64            `json:"fiber_g"`
	SolubleFiberG       float64            `json:"soluble_fiber_g"`
	InsolubleFiberG     float64            `json:"insoluble_fiber_g"`
	SugarG              float64            `json:"sugar_g"`
	SaturatedFatG       float64            `json:"saturated_fat_g"`
	MonounsaturatedFatG float64            `json:"monounsaturated_fat_g"`
	PolyunsaturatedFatG float64            `json:"polyunsaturated_fat_g"`
	GlycemicIndex       float64            `json:"glycemic_index"`
	AminoAcidScore      float64            `json:"amino_acid_score"`
	Vitamins            map[string]float64 `json:"vitamins,omitempty"`
	Minerals            map[string]float64 `json:"minerals,omitempty"`
}

type Meal struct {
	ID       int64      `json:"id,omitempty"`
	Name     string     `json:"name"`
	Calories int        `json:"calories"`
	Items    []MealItem `json:"items"`
	LoggedAt time.Time  `json:"logged_at,omitempty"`
}

type ExerciseCategory string

const (
	CategoryWeightTraining ExerciseCategory = "weight_training"
	CategoryBodyweight     ExerciseCategory = "bodyweight"
	CategoryRunning        ExerciseCategory = "running"
	CategoryCycling        ExerciseCategory = "cycling"
	CategorySwimming       ExerciseCategory = "swimming"
	CategoryWalking        ExerciseCategory = "walking"
	CategoryYoga           ExerciseCategory = "yoga"
	CategoryStretching     ExerciseCategory = "stretching"
)

func ParseExerciseCategory(s string) (ExerciseCategory, bool) {
	switch ExerciseCategory(s) {
	case CategoryWeightTraining, CategoryBodyweight, CategoryRunning, CategoryCycling,
		CategorySwimming, CategoryWalking, CategoryYoga, CategoryStretching:
		return ExerciseCategory(s), true
	}
	return "", false
}

type ExerciseRecord struct {
	Category    ExerciseCategory `json:"category"`
	Sets        *int             `json:"sets,omitempty"`
	DurationMin *int             `json:"duration_min,omitempty"`
}

type Workout struct {
	ID             int64            `json:"id,omitempty"`
	Records        []ExerciseRecord `json:"records"`
	DurationMin    int              `json:"duration_min"`
	CaloriesBurned int              `json:"calories_burned"`
	PerformedAt    time.Time        `json:"performed_at,omitempty"`
}

// ConditionRecord holds the five subjective ratings, each in [1,5].
type ConditionRecord struct {
	SleepHours   int `json:"sleep_hours"`
	SleepQuality int `json:"sleep_quality"`
	Digestion    int `json:"digestion"`
	Focus        int `json:"focus"`
	Stress       int `json:"stress"`
}

type NutritionTarget struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
}

type Profile struct {
	ID             int64     `json:"id,omitempty"`
	Style          Style     `json:"style"`
	LeanBodyMassKg float64   `json:"lean_body_mass_kg"`
	MealsPerDay    int       `json:"meals_per_day"`
	Goal           Goal      `json:"goal"`
	EffectiveDate  string    `json:"effective_date"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}
