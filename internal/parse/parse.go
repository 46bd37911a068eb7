// Package parse validates the date and time strings typed into the shell.
package parse

import (
	"errors"
	"fmt"
	"time"

	"tripclock/internal/clock"
	"tripclock/internal/timezone"
)

var ErrInvalidDateFormat = errors.New("invalid date, expected YYYY-MM-DD")
var ErrInvalidTimeFormat = errors.New("invalid time, expected HH:MM (24-hour)")

// Date parses a YYYY-MM-DD calendar date. Out-of-range components such as
// "2025-13-40" are rejected, not normalized.
func Date(input string) (time.Time, error) {
	t, err := time.Parse(clock.Date, input)

	if err != nil {
		return time.Time{}, fmt.Errorf("parse: %q: %w", input, ErrInvalidDateFormat)
	}

	return t, nil
}

// Clock parses a HH:MM 24-hour wall time.
func Clock(input string) (hour, minute int, err error) {
	t, err := time.Parse(clock.TimeHM, input)

	if err != nil {
		return 0, 0, fmt.Errorf("parse: %q: %w", input, ErrInvalidTimeFormat)
	}

	return t.Hour(), t.Minute(), nil
}

// Wall combines a date string, a time string and a zone identifier into a
// zoned instant.
func Wall(dateInput, timeInput, zoneName string) (timezone.Instant, error) {
	date, err := Date(dateInput)

	if err != nil {
		return timezone.Instant{}, err
	}

	hour, minute, err := Clock(timeInput)

	if err != nil {
		return timezone.Instant{}, err
	}

	zone, err := timezone.LoadZone(zoneName)

	if err != nil {
		return timezone.Instant{}, err
	}

	return timezone.FromWall(date.Year(), date.Month(), date.Day(), hour, minute, zone), nil
}
