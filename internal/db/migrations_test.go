package db_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/db"
)

func TestApplyMigrationsIdempotentAndSeedsDefaults(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "yourcoach.db")
	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("first apply migrations: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("second apply migrations: %v", err)
	}

	var migrationCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM schema_migrations`).Scan(&migrationCount); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if migrationCount != 3 {
		t.Fatalf("expected 3 migration versions, got %d", migrationCount)
	}

	for _, table := range []string{
		"profiles", "nutrition_targets", "meals", "meal_items",
		"workouts", "workout_exercises", "condition_logs", "rest_days",
		"activity_days", "daily_scores", "app_config",
	} {
		var count int
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&count); err != nil {
			t.Fatalf("check %s table: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected %s table to exist", table)
		}
	}

	var itemVitaminColCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM pragma_table_info('meal_items') WHERE name = 'vitamins_json'`).Scan(&itemVitaminColCount); err != nil {
		t.Fatalf("check meal_items vitamins column: %v", err)
	}
	if itemVitaminColCount != 1 {
		t.Fatalf("expected vitamins_json column in meal_items table")
	}

	var freezeCredits string
	if err := sqldb.QueryRow(`SELECT value FROM app_config WHERE key = 'streak_freeze_credits'`).Scan(&freezeCredits); err != nil {
		t.Fatalf("read seeded freeze credits: %v", err)
	}
	if freezeCredits != "2" {
		t.Fatalf("expected 2 seeded freeze credits, got %s", freezeCredits)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected db file to exist: %v", err)
	}
}

func TestMealItemsCascadeDeleteWithMeal(t *testing.T) {
	t.Parallel()

	sqldb, err := db.Open(filepath.Join(t.TempDir(), "yourcoach.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	res, err := sqldb.Exec(`INSERT INTO meals(name, calories, logged_at) VALUES('lunch', 600, '2026-03-01T12:00:00Z')`)
	if err != nil {
		t.Fatalf("insert meal: %v", err)
	}
	mealID, _ := res.LastInsertId()
	if _, err := sqldb.Exec(`INSERT INTO meal_items(meal_id, name, protein_g) VALUES(?, 'chicken', 30)`, mealID); err != nil {
		t.Fatalf("insert item: %v", err)
	}

	if _, err := sqldb.Exec(`DELETE FROM meals WHERE id = ?`, mealID); err != nil {
		t.Fatalf("delete meal: %v", err)
	}
	var itemCount int
	if err := sqldb.QueryRow(`SELECT COUNT(1) FROM meal_items WHERE meal_id = ?`, mealID).Scan(&itemCount); err != nil {
		t.Fatalf("count orphaned items: %v", err)
	}
	if itemCount != 0 {
		t.Fatalf("expected items to cascade with their meal, got %d", itemCount)
	}
}
