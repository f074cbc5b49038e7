package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS profiles (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  style TEXT NOT NULL CHECK(style IN ('general', 'bodymaker')),
  lean_body_mass_kg REAL NOT NULL CHECK(lean_body_mass_kg > 0),
  meals_per_day INTEGER NOT NULL CHECK(meals_per_day > 0),
  goal TEXT NOT NULL CHECK(goal IN ('maintain', 'cut', 'bulk')),
  effective_date TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(effective_date)
);

CREATE TABLE IF NOT EXISTS nutrition_targets (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  protein_g REAL NOT NULL CHECK(protein_g >= 0),
  fat_g REAL NOT NULL CHECK(fat_g >= 0),
  carbs_g REAL NOT NULL CHECK(carbs_g >= 0),
  effective_date TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE(effective_date)
);

CREATE TABLE IF NOT EXISTS meals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  logged_at DATETIME NOT NULL,
  notes TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_meals_logged_at ON meals(logged_at);

CREATE TABLE IF NOT EXISTS meal_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  meal_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  calories INTEGER NOT NULL DEFAULT 0 CHECK(calories >= 0),
  protein_g REAL NOT NULL DEFAULT 0 CHECK(protein_g >= 0),
  fat_g REAL NOT NULL DEFAULT 0 CHECK(fat_g >= 0),
  carbs_g REAL NOT NULL DEFAULT 0 CHECK(carbs_g >= 0),
  fiber_g REAL NOT NULL DEFAULT 0 CHECK(fiber_g >= 0),
  soluble_fiber_g REAL NOT NULL DEFAULT 0 CHECK(soluble_fiber_g >= 0),
  insoluble_fiber_g REAL NOT NULL DEFAULT 0 CHECK(insoluble_fiber_g >= 0),
  sugar_g REAL NOT NULL DEFAULT 0 CHECK(sugar_g >= 0),
  saturated_fat_g REAL NOT NULL DEFAULT 0 CHECK(saturated_fat_g >= 0),
  monounsaturated_fat_g REAL NOT NULL DEFAULT 0 CHECK(monounsaturated_fat_g >= 0),
  polyunsaturated_fat_g REAL NOT NULL DEFAULT 0 CHECK(polyunsaturated_fat_g >= 0),
  glycemic_index REAL NOT NULL DEFAULT 0 CHECK(glycemic_index >= 0),
  amino_acid_score REAL NOT NULL DEFAULT 0 CHECK(amino_acid_score >= 0),
  vitamins_json TEXT NOT NULL DEFAULT '',
  minerals_json TEXT NOT NULL DEFAULT '',
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(meal_id) REFERENCES meals(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_meal_items_meal_id ON meal_items(meal_id);

CREATE TABLE IF NOT EXISTS workouts (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  duration_min INTEGER NOT NULL DEFAULT 0 CHECK(duration_min >= 0),
  calories_burned INTEGER NOT NULL DEFAULT 0 CHECK(calories_burned >= 0),
  performed_at DATETIME NOT NULL,
  notes TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_workouts_performed_at ON workouts(performed_at);

CREATE TABLE IF NOT EXISTS workout_exercises (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  workout_id INTEGER NOT NULL,
  category TEXT NOT NULL,
  sets INTEGER CHECK(sets > 0),
  duration_min INTEGER CHECK(duration_min > 0),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(workout_id) REFERENCES workouts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout_id ON workout_exercises(workout_id);

CREATE TABLE IF NOT EXISTS condition_logs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  log_date TEXT NOT NULL UNIQUE,
  sleep_hours INTEGER NOT NULL CHECK(sleep_hours BETWEEN 1 AND 5),
  sleep_quality INTEGER NOT NULL CHECK(sleep_quality BETWEEN 1 AND 5),
  digestion INTEGER NOT NULL CHECK(digestion BETWEEN 1 AND 5),
  focus INTEGER NOT NULL CHECK(focus BETWEEN 1 AND 5),
  stress INTEGER NOT NULL CHECK(stress BETWEEN 1 AND 5),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS rest_days (
  log_date TEXT PRIMARY KEY,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 2,
		name:    "activity_and_scores",
		sql: `
CREATE TABLE IF NOT EXISTS activity_days (
  day TEXT PRIMARY KEY,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS daily_scores (
  day TEXT PRIMARY KEY,
  food_score INTEGER NOT NULL CHECK(food_score BETWEEN 0 AND 100),
  exercise_score INTEGER NOT NULL CHECK(exercise_score BETWEEN 0 AND 100),
  condition_score INTEGER NOT NULL CHECK(condition_score BETWEEN 0 AND 100),
  total_score INTEGER NOT NULL CHECK(total_score BETWEEN 0 AND 100),
  breakdown_json TEXT NOT NULL DEFAULT '',
  computed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
	{
		version: 3,
		name:    "app_config",
		sql: `
CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`,
	},
}

var defaultConfig = map[string]string{
	"streak_freeze_credits": "2",
	"longest_streak":        "0",
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	for key, value := range defaultConfig {
		if _, err := db.Exec(`INSERT OR IGNORE INTO app_config(key, value) VALUES(?, ?)`, key, value); err != nil {
			return fmt.Errorf("seed config key %s: %w", key, err)
		}
	}

	return nil
}
