package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date form used by the dataset.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Date is a calendar date ("2006-01-02") or an RFC 3339 timestamp kept in its
// source form. Parsing is deferred so that a malformed value only degrades the
// record that carries it.
type Date string

func (d Date) IsZero() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Time parses the date. Calendar dates resolve to midnight UTC.
func (d Date) Time() (time.Time, error) {
	s := strings.TrimSpace(string(d))
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func (d Date) String() string {
	return string(d)
}

// DateOf formats t as a calendar date in UTC.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// TimestampOf formats t as an RFC 3339 timestamp in UTC.
func TimestampOf(t time.Time) Date {
	return Date(t.UTC().Format(time.RFC3339))
}
