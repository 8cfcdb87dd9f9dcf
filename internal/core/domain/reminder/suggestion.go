package reminder

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

type SuggestionKind struct {
	v string
}

func (k SuggestionKind) String() string {
	return k.v
}

var (
	SuggestionToday     = SuggestionKind{v: "today"}
	SuggestionTomorrow  = SuggestionKind{v: "tomorrow"}
	SuggestionWeekend   = SuggestionKind{v: "weekend"}
	SuggestionNextWeek  = SuggestionKind{v: "next_week"}
	SuggestionInOneHour = SuggestionKind{v: "in_one_hour"}
)

// Suggestion is a quick pick offered before a date and time is chosen.
type Suggestion struct {
	Kind    SuggestionKind
	Label   string
	At      time.Time
	Caption string
}

const (
	TODAY_HOUR     = 18
	TOMORROW_HOUR  = 9
	WEEKEND_HOUR   = 10
	NEXT_WEEK_HOUR = 9
)

// Suggest computes the five quick picks relative to now:
// today, tomorrow, weekend, next week and in one hour.
func Suggest(now time.Time) []Suggestion {
	n := carbon.Time2Carbon(WallClock(now)).SetTimezone(carbon.UTC)
	return []Suggestion{
		suggestToday(n),
		suggestTomorrow(n),
		suggestWeekend(n),
		suggestNextWeek(n),
		suggestInOneHour(n),
	}
}

func suggestToday(now carbon.Carbon) Suggestion {
	at := now.StartOfDay().AddHours(TODAY_HOUR)
	if now.Gt(at) {
		at = now.AddHour()
	}
	return newSuggestion(SuggestionToday, "TODAY", at, "3:04 PM")
}

func suggestTomorrow(now carbon.Carbon) Suggestion {
	at := now.AddDay().StartOfDay().AddHours(TOMORROW_HOUR)
	return newSuggestion(SuggestionTomorrow, "TOMORROW", at, "3:04 PM")
}

func suggestWeekend(now carbon.Carbon) Suggestion {
	at := nextWeekdayAt(now, Saturday, WEEKEND_HOUR)
	return newSuggestion(SuggestionWeekend, "WEEKEND", at, "Mon 3:04 PM")
}

func suggestNextWeek(now carbon.Carbon) Suggestion {
	at := nextWeekdayAt(now, Monday, NEXT_WEEK_HOUR)
	return newSuggestion(SuggestionNextWeek, "NEXT WEEK", at, "Mon 3:04 PM")
}

func suggestInOneHour(now carbon.Carbon) Suggestion {
	return newSuggestion(SuggestionInOneHour, "IN 1 HOUR", now.AddHour(), "3:04 PM")
}

// nextWeekdayAt walks forward from today at the given hour until the weekday
// matches. A result that is not strictly after now moves one week ahead.
func nextWeekdayAt(now carbon.Carbon, day Weekday, hour int) carbon.Carbon {
	at := now.StartOfDay().AddHours(hour)
	for Weekday(at.DayOfWeek()) != day {
		at = at.AddDay()
	}
	if at.Lte(now) {
		at = at.AddWeek()
	}
	return at
}

func newSuggestion(kind SuggestionKind, label string, at carbon.Carbon, captionLayout string) Suggestion {
	t := WallClock(at.Carbon2Time())
	return Suggestion{
		Kind:    kind,
		Label:   label,
		At:      t,
		Caption: t.Format(captionLayout),
	}
}
