package model

import (
	"fmt"
	"time"
)

// Date is a civil calendar day with no time-of-day component. The zero
// value is not a valid date; construct one with NewDate, DateOf or ParseDate.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

// NewDate normalizes out-of-range components the same way time.Date does,
// so NewDate(2024, time.February, 30) is March 1st.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time to the calendar day it falls on in its location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today is the current calendar day in local time.
func Today() Date {
	return DateOf(time.Now())
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("model: parse date %q: %w", value, err)
	}
	return DateOf(t), nil
}

// Time places the date at midnight UTC, for arithmetic and formatting.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays walks the calendar forward (or backward for negative n), rolling
// over month and year boundaries.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Next() Date { return d.AddDays(1) }

func (d Date) Prev() Date { return d.AddDays(-1) }

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// String renders the date as YYYY-MM-DD, the form used as a storage key.
func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) Format(layout string) string {
	return d.Time().Format(layout)
}
