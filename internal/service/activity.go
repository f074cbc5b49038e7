package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/kongou411-oss/your-coach-plus-sub015/internal/streak"
)

const (
	ConfigFreezeCredits = "streak_freeze_credits"
	ConfigLongestStreak = "longest_streak"
	ConfigRegisteredAt  = "registered_at"
)

// MarkActive records the day in the activity set and rolls the longest
// streak high-water mark forward. Safe to call repeatedly for one day.
func MarkActive(db *sql.DB, date string) error {
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return fmt.Errorf("parse activity day %s: %w", date, err)
	}
	days, err := ActiveDays(db)
	if err != nil {
		return err
	}
	longest, err := configInt(db, ConfigLongestStreak, 0)
	if err != nil {
		return err
	}

	update := streak.RecordActivity(days, streak.CalculateStreak(days, day), longest, day)
	if !update.IsNewActivity {
		return nil
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO activity_days(day) VALUES(?)`, date); err != nil {
		return fmt.Errorf("mark day %s active: %w", date, err)
	}
	if update.LongestStreak > longest {
		if err := SetConfig(db, ConfigLongestStreak, strconv.Itoa(update.LongestStreak)); err != nil {
			return err
		}
	}
	return nil
}

func ActiveDays(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(`SELECT day FROM activity_days`)
	if err != nil {
		return nil, fmt.Errorf("list active days: %w", err)
	}
	defer rows.Close()

	days := make(map[string]bool)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan active day: %w", err)
		}
		days[day] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active days: %w", err)
	}
	return days, nil
}

type StreakStatus struct {
	CurrentStreak int  `json:"current_streak"`
	LongestStreak int  `json:"longest_streak"`
	FreezeCredits int  `json:"freeze_credits"`
	FreezeUsable  bool `json:"freeze_usable"`
	ActiveToday   bool `json:"active_today"`
}

func CurrentStreakStatus(db *sql.DB, today time.Time) (StreakStatus, error) {
	days, err := ActiveDays(db)
	if err != nil {
		return StreakStatus{}, err
	}
	credits, err := configInt(db, ConfigFreezeCredits, 0)
	if err != nil {
		return StreakStatus{}, err
	}
	longest, err := configInt(db, ConfigLongestStreak, 0)
	if err != nil {
		return StreakStatus{}, err
	}
	current := streak.CalculateStreak(days, today)
	if current > longest {
		longest = current
	}
	return StreakStatus{
		CurrentStreak: current,
		LongestStreak: longest,
		FreezeCredits: credits,
		FreezeUsable:  streak.CanUseFreeze(days, credits, today),
		ActiveToday:   days[streak.DayKey(today)],
	}, nil
}

// UseFreeze spends one credit to back-fill yesterday so the streak
// survives a single missed day. Fails when ineligible.
func UseFreeze(db *sql.DB, today time.Time) (StreakStatus, error) {
	days, err := ActiveDays(db)
	if err != nil {
		return StreakStatus{}, err
	}
	credits, err := configInt(db, ConfigFreezeCredits, 0)
	if err != nil {
		return StreakStatus{}, err
	}
	updated, remaining, ok := streak.ApplyFreeze(days, credits, today)
	if !ok {
		return StreakStatus{}, fmt.Errorf("streak freeze is not usable right now (credits: %d)", credits)
	}
	yesterday := streak.DayKey(today.AddDate(0, 0, -1))
	if !updated[yesterday] {
		return StreakStatus{}, fmt.Errorf("freeze did not cover yesterday")
	}
	if _, err := db.Exec(`INSERT OR IGNORE INTO activity_days(day) VALUES(?)`, yesterday); err != nil {
		return StreakStatus{}, fmt.Errorf("record frozen day %s: %w", yesterday, err)
	}
	if err := SetConfig(db, ConfigFreezeCredits, strconv.Itoa(remaining)); err != nil {
		return StreakStatus{}, err
	}
	return CurrentStreakStatus(db, today)
}

// EnsureRegistered stores the registration date on first use; later calls
// keep the original date.
func EnsureRegistered(db *sql.DB, today time.Time) error {
	_, found, err := GetConfig(db, ConfigRegisteredAt)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	return SetConfig(db, ConfigRegisteredAt, streak.DayKey(today))
}

func RetentionReport(db *sql.DB) (streak.RetentionStats, string, error) {
	registeredRaw, found, err := GetConfig(db, ConfigRegisteredAt)
	if err != nil {
		return streak.RetentionStats{}, "", err
	}
	if !found {
		return streak.RetentionStats{}, "", fmt.Errorf("no registration date recorded; run init first")
	}
	registered, err := time.ParseInLocation("2006-01-02", registeredRaw, time.Local)
	if err != nil {
		return streak.RetentionStats{}, "", fmt.Errorf("invalid registration date %q: %w", registeredRaw, err)
	}
	days, err := ActiveDays(db)
	if err != nil {
		return streak.RetentionStats{}, "", err
	}
	return streak.CalculateRetentionStats(registered, days), registeredRaw, nil
}

func configInt(db *sql.DB, key string, fallback int) (int, error) {
	raw, found, err := GetConfig(db, key)
	if err != nil {
		return 0, err
	}
	if !found {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config %q is not an integer: %w", key, err)
	}
	return value, nil
}
