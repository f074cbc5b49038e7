package streak

import "time"

// RetentionStats flags whether the user came back after registration:
// day-1 means the day immediately after registration was active, day-7 and
// day-30 mean any day at or beyond that milestone was ever active.
type RetentionStats struct {
	Day1Retained  bool `json:"day1_retained"`
	Day7Retained  bool `json:"day7_retained"`
	Day30Retained bool `json:"day30_retained"`
}

// CalculateRetentionStats evaluates the active-day set against a
// registration date. Malformed dates are skipped.
func CalculateRetentionStats(registeredAt time.Time, activeDays map[string]bool) RetentionStats {
	registered, err := time.Parse(dayFormat, DayKey(registeredAt))
	if err != nil {
		return RetentionStats{}
	}

	out := RetentionStats{
		Day1Retained: activeDays[DayKey(registered.AddDate(0, 0, 1))],
	}
	for _, day := range parseDays(activeDays) {
		diff := dayDiff(day, registered)
		if diff >= 7 {
			out.Day7Retained = true
		}
		if diff >= 30 {
			out.Day30Retained = true
		}
	}
	return out
}
