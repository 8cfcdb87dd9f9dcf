package reminder

import (
	"strings"
	"time"
)

type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayAbbreviations = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) Abbreviation() string {
	if !d.IsValid() {
		return ""
	}
	return weekdayAbbreviations[d-1]
}

// WeekdayOf returns the weekday of t's wall clock date.
func WeekdayOf(t time.Time) Weekday {
	if t.Weekday() == time.Sunday {
		return Sunday
	}
	return Weekday(t.Weekday())
}

// RepeatDays is the set of weekdays a reminder recurs on.
// Bit d-1 is set when weekday d is in the set.
type RepeatDays uint8

const (
	NoRepeatDays RepeatDays = 0
	AllDays      RepeatDays = 1<<7 - 1
)

func NewRepeatDays(days ...Weekday) (RepeatDays, error) {
	s := NoRepeatDays
	for _, d := range days {
		if !d.IsValid() {
			return NoRepeatDays, ErrInvalidRepeatDay
		}
		s |= bit(d)
	}
	return s, nil
}

func ParseRepeatDays(values []int) (RepeatDays, error) {
	days := make([]Weekday, 0, len(values))
	for _, v := range values {
		days = append(days, Weekday(v))
	}
	return NewRepeatDays(days...)
}

// Toggle adds d when absent and removes it when present.
// Invalid weekdays leave the set unchanged.
func (s RepeatDays) Toggle(d Weekday) RepeatDays {
	if !d.IsValid() {
		return s
	}
	return s ^ bit(d)
}

func (s RepeatDays) SelectAll() RepeatDays {
	return AllDays
}

func (s RepeatDays) Clear() RepeatDays {
	return NoRepeatDays
}

func (s RepeatDays) Has(d Weekday) bool {
	return d.IsValid() && s&bit(d) != 0
}

func (s RepeatDays) IsEmpty() bool {
	return s&AllDays == 0
}

func (s RepeatDays) Len() int {
	n := 0
	for d := Monday; d <= Sunday; d++ {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Days returns the weekdays of the set in ascending order.
func (s RepeatDays) Days() []Weekday {
	days := make([]Weekday, 0, 7)
	for d := Monday; d <= Sunday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s RepeatDays) Ints() []int {
	values := make([]int, 0, 7)
	for _, d := range s.Days() {
		values = append(values, int(d))
	}
	return values
}

// Summary renders the set for display: "Every Day" for all seven days,
// an empty string for no days, otherwise abbreviations in weekday order.
func (s RepeatDays) Summary() string {
	if s&AllDays == AllDays {
		return "Every Day"
	}
	days := s.Days()
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.Abbreviation())
	}
	return strings.Join(names, ", ")
}

func (s RepeatDays) String() string {
	return s.Summary()
}

func bit(d Weekday) RepeatDays {
	return 1 << (d - 1)
}
