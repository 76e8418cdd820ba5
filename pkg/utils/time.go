package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseUserTime parses a time string that can be either RFC3339 or YYYY-MM-DD format.
// For YYYY-MM-DD format, if isEndTime is true, it will set the time to end of day (23:59:59).
func ParseUserTime(timeStr string, isEndTime bool) (time.Time, error) {
	return ParseUserTimeIn(timeStr, isEndTime, time.UTC)
}

// ParseUserTimeIn is ParseUserTime with YYYY-MM-DD values taken as midnight in loc.
// RFC3339 values carry their own offset and ignore loc.
func ParseUserTimeIn(timeStr string, isEndTime bool, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	t, err = time.ParseInLocation(DateLayout, timeStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}

	if isEndTime {
		t = t.Add(24*time.Hour - time.Second)
	}

	return t, nil
}

// NormalizeDate reduces an RFC3339 or YYYY-MM-DD string to its calendar date (YYYY-MM-DD).
// RFC3339 values keep the date as written in their own offset.
func NormalizeDate(dateStr string) (string, error) {
	t, err := ParseUserTime(dateStr, false)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

// MonthBounds returns [start, end) of the given month in loc.
func MonthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// PreviousMonth returns the month before t, rolling the year over in January.
func PreviousMonth(t time.Time) (int, time.Month) {
	prev := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, -1, 0)
	return prev.Year(), prev.Month()
}
