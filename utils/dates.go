package utils

import (
	"fmt"
	"strings"
	"time"
)

// DayFormat is the canonical key for calendar-day comparisons. All
// availability bookkeeping happens at day granularity: a date submitted as
// "2024-06-01" and one submitted as "2024-06-01T23:59:00Z" are the same day.
const DayFormat = "2006-01-02"

var dateLayouts = []string{
	DayFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseBookingDate parses a client-submitted date string and truncates it to
// day granularity in UTC.
func ParseBookingDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TruncateToDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// TruncateToDay drops the time-of-day component, keeping the calendar date.
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey formats a time as its canonical day key.
func DayKey(t time.Time) string {
	return TruncateToDay(t).Format(DayFormat)
}

// DayKeys parses each date string into its canonical day key, preserving
// order and duplicates so the caller can detect repeats.
func DayKeys(dates []string) ([]string, error) {
	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		t, err := ParseBookingDate(d)
		if err != nil {
			return nil, err
		}
		keys = append(keys, DayKey(t))
	}
	return keys, nil
}

// Today returns the current date truncated to day granularity.
func Today() time.Time {
	return TruncateToDay(time.Now())
}
