package reminder

import (
	"fmt"
	"time"
)

const DATE_LAYOUT = "2006-01-02"

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DATE_LAYOUT, value)
	if err != nil {
		return Date{}, ErrParseDate
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Contains reports whether the wall clock date of t is d.
func (d Date) Contains(t time.Time) bool {
	return DateOf(t) == d
}
