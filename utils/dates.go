package utils

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var ErrBadDate = errors.New("date must be in YYYY-MM-DD format")

// ParseDate parses a calendar date in the API's wire format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrBadDate
	}
	return t, nil
}

// DateKey renders a date the way the API serializes calendar keys.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// MonthKey renders the year-month bucket a booking's earnings fall into.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
