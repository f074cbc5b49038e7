package service_test

import (
	"testing"
	"time"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/service"
)

func TestRunDoctorCleanDatabase(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	report, err := service.RunDoctor(db, false)
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.OrphanMealItems != 0 || report.InvalidNutrientJSON != 0 || report.MalformedActivityDays != 0 {
		t.Fatalf("fresh database should be clean: %+v", report)
	}
}

func TestRunDoctorFindsAndFixesBadRows(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.AddMeal(db, service.AddMealInput{
		Name:     "lunch",
		LoggedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local),
		Items:    []service.MealItemInput{{Name: "rice", Calories: 300, CarbsG: 60}},
	}); err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if _, err := db.Exec(`UPDATE meal_items SET vitamins_json = '{broken'`); err != nil {
		t.Fatalf("corrupt nutrient json: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO activity_days(day) VALUES('03/10/2026')`); err != nil {
		t.Fatalf("insert malformed day: %v", err)
	}

	report, err := service.RunDoctor(db, false)
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.InvalidNutrientJSON != 1 {
		t.Fatalf("expected 1 invalid nutrient row, got %d", report.InvalidNutrientJSON)
	}
	if report.MalformedActivityDays != 1 {
		t.Fatalf("expected 1 malformed activity day, got %d", report.MalformedActivityDays)
	}
	if report.FixedNutrientRows != 0 || report.RemovedActivityDays != 0 {
		t.Fatalf("dry run must not fix anything: %+v", report)
	}

	fixed, err := service.RunDoctor(db, true)
	if err != nil {
		t.Fatalf("run doctor with fix: %v", err)
	}
	if fixed.FixedNutrientRows != 1 || fixed.RemovedActivityDays != 1 {
		t.Fatalf("fix pass did not repair rows: %+v", fixed)
	}

	clean, err := service.RunDoctor(db, false)
	if err != nil {
		t.Fatalf("run doctor after fix: %v", err)
	}
	if clean.InvalidNutrientJSON != 0 || clean.MalformedActivityDays != 0 {
		t.Fatalf("database should be clean after fixing: %+v", clean)
	}
}
