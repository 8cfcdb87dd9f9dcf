package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatDaysToggleTwiceIsIdentity(t *testing.T) {
	sets := []RepeatDays{NoRepeatDays, AllDays, mustRepeatDays(t, Monday, Friday), mustRepeatDays(t, Sunday)}

	for _, s := range sets {
		for d := Monday; d <= Sunday; d++ {
			assert.Equal(t, s, s.Toggle(d).Toggle(d), "set %v day %d", s.Ints(), d)
		}
	}
}

func TestRepeatDaysToggle(t *testing.T) {
	s := NoRepeatDays.Toggle(Wednesday)
	assert.True(t, s.Has(Wednesday))
	assert.Equal(t, 1, s.Len())

	s = s.Toggle(Wednesday)
	assert.True(t, s.IsEmpty())
}

func TestRepeatDaysToggleInvalidDay(t *testing.T) {
	s := mustRepeatDays(t, Monday)

	assert.Equal(t, s, s.Toggle(Weekday(0)))
	assert.Equal(t, s, s.Toggle(Weekday(8)))
}

func TestRepeatDaysSummary(t *testing.T) {
	cases := []struct {
		id       string
		days     []int
		expected string
	}{
		{id: "all", days: []int{1, 2, 3, 4, 5, 6, 7}, expected: "Every Day"},
		{id: "empty", days: []int{}, expected: ""},
		{id: "unordered", days: []int{3, 1}, expected: "Mon, Wed"},
		{id: "weekend", days: []int{7, 6}, expected: "Sat, Sun"},
		{id: "workdays", days: []int{1, 2, 3, 4, 5}, expected: "Mon, Tue, Wed, Thu, Fri"},
		{id: "duplicates", days: []int{2, 2}, expected: "Tue"},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			s, err := ParseRepeatDays(tc.days)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, s.Summary())
		})
	}
}

func TestRepeatDaysSelectAllAndClear(t *testing.T) {
	s := mustRepeatDays(t, Tuesday).SelectAll()
	assert.Equal(t, AllDays, s)
	assert.Equal(t, 7, s.Len())

	s = s.Clear()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, []int{}, s.Ints())
}

func TestParseRepeatDaysInvalid(t *testing.T) {
	for _, days := range [][]int{{0}, {8}, {1, -1}} {
		_, err := ParseRepeatDays(days)
		assert.ErrorIs(t, err, ErrInvalidRepeatDay)
	}
}

func TestRepeatDaysDaysAscending(t *testing.T) {
	s := mustRepeatDays(t, Sunday, Monday, Thursday)

	assert.Equal(t, []Weekday{Monday, Thursday, Sunday}, s.Days())
	assert.Equal(t, []int{1, 4, 7}, s.Ints())
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(at(2024, 1, 15, 0, 0)))
	assert.Equal(t, Saturday, WeekdayOf(at(2024, 1, 13, 0, 0)))
	assert.Equal(t, Sunday, WeekdayOf(at(2024, 1, 14, 0, 0)))
}

func mustRepeatDays(t *testing.T, days ...Weekday) RepeatDays {
	t.Helper()
	s, err := NewRepeatDays(days...)
	require.NoError(t, err)
	return s
}
