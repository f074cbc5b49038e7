package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

type DoctorReport struct {
	OrphanMealItems        int `json:"orphan_meal_items"`
	OrphanWorkoutExercises int `json:"orphan_workout_exercises"`
	InvalidNutrientJSON    int `json:"invalid_nutrient_json"`
	MalformedActivityDays  int `json:"malformed_activity_days"`
	FixedNutrientRows      int `json:"fixed_nutrient_rows,omitempty"`
	RemovedActivityDays    int `json:"removed_activity_days,omitempty"`
}

func CreateBackup(dbPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dbPath) == "" {
		return BackupInfo{}, fmt.Errorf("db path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(dbPath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

func ListBackups(dir string) ([]BackupInfo, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}
	out := make([]BackupInfo, 0)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".db") {
			continue
		}
		full := filepath.Join(dir, f.Name())
		st, err := os.Stat(full)
		if err != nil {
			continue
		}
		checksum := ""
		if b, err := os.ReadFile(full + ".sha256"); err == nil {
			checksum = strings.TrimSpace(string(b))
		}
		out = append(out, BackupInfo{Path: full, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func RunDoctor(db *sql.DB, fix bool) (DoctorReport, error) {
	report := DoctorReport{}
	if err := db.QueryRow(`SELECT COUNT(1) FROM meal_items i LEFT JOIN meals m ON m.id = i.meal_id WHERE m.id IS NULL`).Scan(&report.OrphanMealItems); err != nil {
		return report, fmt.Errorf("doctor orphan meal item check: %w", err)
	}
	if err := db.QueryRow(`SELECT COUNT(1) FROM workout_exercises e LEFT JOIN workouts w ON w.id = e.workout_id WHERE w.id IS NULL`).Scan(&report.OrphanWorkoutExercises); err != nil {
		return report, fmt.Errorf("doctor orphan exercise check: %w", err)
	}

	rows, err := db.Query(`SELECT id, IFNULL(vitamins_json,''), IFNULL(minerals_json,'') FROM meal_items`)
	if err != nil {
		return report, fmt.Errorf("doctor nutrient json query: %w", err)
	}
	invalidIDs := make([]int64, 0)
	for rows.Next() {
		var id int64
		var vitamins, minerals string
		if err := rows.Scan(&id, &vitamins, &minerals); err != nil {
			_ = rows.Close()
			return report, fmt.Errorf("doctor nutrient json scan: %w", err)
		}
		if !validNutrientJSON(vitamins) || !validNutrientJSON(minerals) {
			report.InvalidNutrientJSON++
			invalidIDs = append(invalidIDs, id)
		}
	}
	_ = rows.Close()

	dayRows, err := db.Query(`SELECT day FROM activity_days`)
	if err != nil {
		return report, fmt.Errorf("doctor activity day query: %w", err)
	}
	malformedDays := make([]string, 0)
	for dayRows.Next() {
		var day string
		if err := dayRows.Scan(&day); err != nil {
			_ = dayRows.Close()
			return report, fmt.Errorf("doctor activity day scan: %w", err)
		}
		if _, err := time.Parse("2006-01-02", day); err != nil {
			report.MalformedActivityDays++
			malformedDays = append(malformedDays, day)
		}
	}
	_ = dayRows.Close()

	if fix && (len(invalidIDs) > 0 || len(malformedDays) > 0) {
		tx, err := db.Begin()
		if err != nil {
			return report, fmt.Errorf("doctor fix begin tx: %w", err)
		}
		for _, id := range invalidIDs {
			if _, err := tx.Exec(`UPDATE meal_items SET vitamins_json = '', minerals_json = '' WHERE id = ?`, id); err != nil {
				_ = tx.Rollback()
				return report, fmt.Errorf("doctor fix nutrient row %d: %w", id, err)
			}
			report.FixedNutrientRows++
		}
		for _, day := range malformedDays {
			if _, err := tx.Exec(`DELETE FROM activity_days WHERE day = ?`, day); err != nil {
				_ = tx.Rollback()
				return report, fmt.Errorf("doctor fix activity day %q: %w", day, err)
			}
			report.RemovedActivityDays++
		}
		if err := tx.Commit(); err != nil {
			return report, fmt.Errorf("doctor fix commit: %w", err)
		}
	}

	return report, nil
}

func validNutrientJSON(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	var m map[string]float64
	return json.Unmarshal([]byte(raw), &m) == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("sync destination file: %w", err)
	}
	return nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
