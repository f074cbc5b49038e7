// Package streak computes consecutive-day streaks, streak freezes, and
// registration retention from sets of active calendar dates. Dates are
// compared by calendar day, never by timestamp, and malformed date strings
// are silently discarded.
package streak

import (
	"sort"
	"time"
)

const dayFormat = "2006-01-02"

// DayKey formats a time as the calendar-day key used in active-day sets.
func DayKey(t time.Time) string {
	return t.Format(dayFormat)
}

// CalculateStreak walks the active-day set backward from its most recent
// day, counting while consecutive days are at most one apart. A gap of more
// than one day before today ends the streak immediately: if neither today
// nor yesterday is active, the streak is zero.
func CalculateStreak(activeDays map[string]bool, today time.Time) int {
	todayKey := DayKey(today)
	yesterdayKey := DayKey(today.AddDate(0, 0, -1))
	if !activeDays[todayKey] && !activeDays[yesterdayKey] {
		return 0
	}

	days := parseDays(activeDays)
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	count := 1
	for i := 1; i < len(days); i++ {
		if dayDiff(days[i-1], days[i]) > 1 {
			break
		}
		count++
	}
	return count
}

// UpdateResult is the outcome of recording one day of activity.
type UpdateResult struct {
	ActiveDays    map[string]bool `json:"-"`
	CurrentStreak int             `json:"current_streak"`
	LongestStreak int             `json:"longest_streak"`
	IsNewActivity bool            `json:"is_new_activity"`
}

// RecordActivity marks today active and recomputes the streak. Recording
// twice on the same day is a no-op: the set and counters come back
// unchanged with IsNewActivity false.
func RecordActivity(activeDays map[string]bool, currentStreak, longestStreak int, today time.Time) UpdateResult {
	todayKey := DayKey(today)
	if activeDays[todayKey] {
		return UpdateResult{
			ActiveDays:    activeDays,
			CurrentStreak: currentStreak,
			LongestStreak: longestStreak,
			IsNewActivity: false,
		}
	}

	updated := make(map[string]bool, len(activeDays)+1)
	for k, v := range activeDays {
		updated[k] = v
	}
	updated[todayKey] = true

	streak := CalculateStreak(updated, today)
	if streak > longestStreak {
		longestStreak = streak
	}
	return UpdateResult{
		ActiveDays:    updated,
		CurrentStreak: streak,
		LongestStreak: longestStreak,
		IsNewActivity: true,
	}
}

// CanUseFreeze reports whether a streak freeze applies: both yesterday and
// today must be inactive, and a credit must remain.
func CanUseFreeze(activeDays map[string]bool, credits int, today time.Time) bool {
	if credits <= 0 {
		return false
	}
	return !activeDays[DayKey(today)] && !activeDays[DayKey(today.AddDate(0, 0, -1))]
}

// ApplyFreeze back-fills yesterday as active so the next streak
// calculation bridges the gap, consuming one credit. Returns the updated
// set, the remaining credits, and whether the freeze was applied.
func ApplyFreeze(activeDays map[string]bool, credits int, today time.Time) (map[string]bool, int, bool) {
	if !CanUseFreeze(activeDays, credits, today) {
		return activeDays, credits, false
	}
	updated := make(map[string]bool, len(activeDays)+1)
	for k, v := range activeDays {
		updated[k] = v
	}
	updated[DayKey(today.AddDate(0, 0, -1))] = true
	return updated, credits - 1, true
}

func parseDays(activeDays map[string]bool) []time.Time {
	days := make([]time.Time, 0, len(activeDays))
	for key, active := range activeDays {
		if !active {
			continue
		}
		t, err := time.Parse(dayFormat, key)
		if err != nil {
			continue
		}
		days = append(days, t)
	}
	return days
}

// dayDiff is the whole-day difference between two parsed calendar days,
// newer first.
func dayDiff(newer, older time.Time) int {
	return int(newer.Sub(older).Hours() / 24)
}
