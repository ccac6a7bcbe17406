package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

const (
	// DateLayout is the ISO-8601 calendar date used on the wire.
	DateLayout = "2006-01-02"
	// ClockLayout is the ISO-8601 time of day used on the wire.
	ClockLayout = "15:04:05"
)

// ParseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp and keeps the calendar day.
func ParseDate(s string) (datatypes.Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return datatypes.Date(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)), nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// FormatDatePtr renders an optional date, nil stays nil.
func FormatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := FormatDate(*d)
	return &s
}

// ParseClock accepts HH:MM or HH:MM:SS.
func ParseClock(s string) (datatypes.Time, error) {
	for _, layout := range []string{ClockLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q, want HH:MM or HH:MM:SS", s)
}

// FormatClock renders a time of day as HH:MM:SS.
func FormatClock(t datatypes.Time) string {
	d := time.Duration(t)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
