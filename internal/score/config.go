package score

import "github.com/kongou411-oss/your-coach-plus-sub015/internal/model"

// StyleTargets holds every threshold that differs between the two training
// styles. Scoring formulas never branch on style; they read from the table
// selected once per calculation.
type StyleTargets struct {
	GLPerMealLimit      float64
	SodiumRecommendedMg float64
	SodiumLimitMg       float64
	DurationTargetMin   float64
	SetTarget           float64
	VitaminFactor       float64
	MineralFactor       float64
}

type FoodWeights struct {
	Calories     float64
	Protein      float64
	Fat          float64
	Carbs        float64
	AminoAcid    float64
	FattyAcid    float64
	GlycemicLoad float64
	Fiber        float64
	Vitamin      float64
	Mineral      float64
}

type AxisWeights struct {
	Food      float64
	Exercise  float64
	Condition float64
}

type setConversionKind int

const (
	setsLogged setConversionKind = iota
	setsPerDuration
)

// setConversion maps an exercise category to its derived-set rule: strength
// work counts logged sets, timed work converts duration at a fixed rate.
type setConversion struct {
	kind          setConversionKind
	minutesPerSet int
}

// Config is the immutable constant table the whole engine reads from.
// Construct once (DefaultConfig) and never mutate after initialization.
type Config struct {
	Styles map[model.Style]StyleTargets

	FoodWeights FoodWeights
	AxisWeights AxisWeights

	CaloriePenalty float64
	ProteinPenalty float64
	FatPenalty     float64
	CarbPenalty    float64

	// Descending lower bounds; fallback is the floor score.
	AminoBands        []band
	AminoFallback     float64
	FattyRatioBands   []band
	FattyRatioDefault float64

	SaturatedIdealLow   float64
	SaturatedIdealHigh  float64
	MonoIdealLow        float64
	MonoIdealHigh       float64
	PolyIdealLow        float64
	PolyIdealHigh       float64
	SaturatedWeight     float64
	MonoWeight          float64
	PolyWeight          float64
	NeutralFattyDefault float64

	// Ascending fractions of the style's daily GL limit.
	GLBands        []band
	GLMealsPerDay  float64
	GLDecayPerUnit float64
	GLDecayBase    float64

	FiberIdealLowG       float64
	FiberIdealHighG      float64
	FiberAmountBands     []band
	FiberAmountFallback  float64
	CarbFiberRatioBands  []band
	CarbFiberFallback    float64
	FiberAmountWeight    float64
	FiberRatioWeight     float64
	NeutralFiberDefault  float64
	RatioSufficientLow   float64
	RatioSufficientHigh  float64
	NutrientRatioBands   []band
	NutrientRatioDefault float64
	// Ascending ratio bounds above the sufficient window.
	RatioExcessBands     []band
	RatioExcessDefault   float64
	MissingNutrientScore float64

	VitaminTargets map[string]float64
	MineralTargets map[string]float64

	DurationWeight float64
	SetWeight      float64
	SetConversions map[model.ExerciseCategory]setConversion
}

// TrackedVitamins lists the nine vitamins the mineral/vitamin sub-scores and
// the sufficiency report evaluate, in display order.
var TrackedVitamins = []string{"a", "b1", "b2", "b6", "b12", "c", "d", "e", "folate"}

// TrackedMinerals lists the five general minerals; sodium is scored
// separately against the style's recommended/upper pair.
var TrackedMinerals = []string{"calcium", "iron", "magnesium", "zinc", "potassium"}

func DefaultConfig() Config {
	return Config{
		Styles: map[model.Style]StyleTargets{
			model.StyleGeneral: {
				GLPerMealLimit:      40,
				SodiumRecommendedMg: 3000,
				SodiumLimitMg:       5000,
				DurationTargetMin:   60,
				SetTarget:           12,
				VitaminFactor:       1.0,
				MineralFactor:       1.0,
			},
			model.StyleBodymaker: {
				GLPerMealLimit:      70,
				SodiumRecommendedMg: 10000,
				SodiumLimitMg:       15000,
				DurationTargetMin:   90,
				SetTarget:           20,
				VitaminFactor:       1.5,
				MineralFactor:       1.3,
			},
		},

		FoodWeights: FoodWeights{
			Calories:     0.10,
			Protein:      0.20,
			Fat:          0.20,
			Carbs:        0.20,
			AminoAcid:    0.05,
			FattyAcid:    0.05,
			GlycemicLoad: 0.05,
			Fiber:        0.05,
			Vitamin:      0.05,
			Mineral:      0.05,
		},
		AxisWeights: AxisWeights{Food: 0.60, Exercise: 0.30, Condition: 0.10},

		CaloriePenalty: 200,
		ProteinPenalty: 150,
		FatPenalty:     200,
		CarbPenalty:    200,

		AminoBands: []band{
			{limit: 1.00, score: 100},
			{limit: 0.90, score: 80},
			{limit: 0.75, score: 60},
			{limit: 0.50, score: 40},
		},
		AminoFallback: 20,

		FattyRatioBands: []band{
			{limit: 0.00, score: 100},
			{limit: 0.05, score: 80},
			{limit: 0.10, score: 60},
			{limit: 0.15, score: 40},
		},
		FattyRatioDefault: 20,

		SaturatedIdealLow:   0.30,
		SaturatedIdealHigh:  0.35,
		MonoIdealLow:        0.35,
		MonoIdealHigh:       0.45,
		PolyIdealLow:        0.20,
		PolyIdealHigh:       0.30,
		SaturatedWeight:     0.40,
		MonoWeight:          0.30,
		PolyWeight:          0.30,
		NeutralFattyDefault: 50,

		GLBands: []band{
			{limit: 0.60, score: 100},
			{limit: 0.80, score: 90},
			{limit: 1.00, score: 75},
			{limit: 1.25, score: 60},
			{limit: 1.50, score: 40},
		},
		GLMealsPerDay:  3,
		GLDecayPerUnit: 80,
		GLDecayBase:    40,

		FiberIdealLowG:  20,
		FiberIdealHighG: 30,
		FiberAmountBands: []band{
			{limit: 0, score: 100},
			{limit: 5, score: 80},
			{limit: 10, score: 60},
			{limit: 15, score: 40},
		},
		FiberAmountFallback: 20,
		CarbFiberRatioBands: []band{
			{limit: 10, score: 100},
			{limit: 15, score: 80},
			{limit: 20, score: 60},
			{limit: 30, score: 40},
		},
		CarbFiberFallback:   20,
		FiberAmountWeight:   0.60,
		FiberRatioWeight:    0.40,
		NeutralFiberDefault: 50,

		RatioSufficientLow:  0.7,
		RatioSufficientHigh: 1.5,
		NutrientRatioBands: []band{
			{limit: 0.5, score: 80},
			{limit: 0.3, score: 60},
			{limit: 0.1, score: 40},
		},
		NutrientRatioDefault: 20,
		RatioExcessBands: []band{
			{limit: 2.0, score: 80},
		},
		RatioExcessDefault:   60,
		MissingNutrientScore: 50,

		VitaminTargets: map[string]float64{
			"a":      800,
			"b1":     1.2,
			"b2":     1.4,
			"b6":     1.4,
			"b12":    2.4,
			"c":      100,
			"d":      8.5,
			"e":      6.5,
			"folate": 240,
		},
		MineralTargets: map[string]float64{
			"calcium":   800,
			"iron":      7.5,
			"magnesium": 340,
			"zinc":      10,
			"potassium": 2600,
		},

		DurationWeight: 0.30,
		SetWeight:      0.70,
		SetConversions: map[model.ExerciseCategory]setConversion{
			model.CategoryWeightTraining: {kind: setsLogged},
			model.CategoryBodyweight:     {kind: setsLogged},
			model.CategoryRunning:        {kind: setsPerDuration, minutesPerSet: 15},
			model.CategoryCycling:        {kind: setsPerDuration, minutesPerSet: 15},
			model.CategorySwimming:       {kind: setsPerDuration, minutesPerSet: 15},
			model.CategoryWalking:        {kind: setsPerDuration, minutesPerSet: 15},
			model.CategoryYoga:           {kind: setsPerDuration, minutesPerSet: 10},
			model.CategoryStretching:     {kind: setsPerDuration, minutesPerSet: 10},
		},
	}
}

func (c Config) styleTargets(style model.Style) StyleTargets {
	if t, ok := c.Styles[style]; ok {
		return t
	}
	return c.Styles[model.StyleGeneral]
}
