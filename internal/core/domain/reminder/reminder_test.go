package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	e "remindu/internal/core/domain/errors"
)

func TestParseType(t *testing.T) {
	for _, tp := range []Type{TypeNotification, TypeAlarm, TypeVoice} {
		parsed, err := ParseType(tp.String())
		require.NoError(t, err)
		assert.Equal(t, tp, parsed)
	}

	_, err := ParseType("voice")
	assert.ErrorIs(t, err, ErrParseType)
	assert.True(t, e.IsValidationError(err))
}

func TestDefaultTypeIsVoice(t *testing.T) {
	assert.Equal(t, TypeVoice, DefaultType)
}

func TestParseDateTime(t *testing.T) {
	cases := []struct {
		id       string
		value    string
		expected time.Time
	}{
		{id: "seconds", value: "2024-01-10T14:30:15", expected: time.Date(2024, 1, 10, 14, 30, 15, 0, time.UTC)},
		{id: "minutes", value: "2024-01-10T14:30", expected: at(2024, 1, 10, 14, 30)},
		{id: "fraction", value: "2024-01-10T14:30:15.5", expected: time.Date(2024, 1, 10, 14, 30, 15, 500_000_000, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.id, func(t *testing.T) {
			parsed, err := ParseDateTime(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}

	for _, value := range []string{"", "2024-01-10", "2024-01-10T14:30:15Z", "tomorrow"} {
		_, err := ParseDateTime(value)
		assert.ErrorIs(t, err, ErrParseDateTime, value)
	}
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "2024-01-10T14:30:00", FormatDateTime(at(2024, 1, 10, 14, 30)))

	zone := time.FixedZone("UTC-3", -3*60*60)
	assert.Equal(t, "2024-01-10T14:30:00", FormatDateTime(time.Date(2024, 1, 10, 14, 30, 0, 0, zone)))
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", d.String())
	assert.True(t, d.Contains(at(2024, 1, 10, 0, 0)))
	assert.True(t, d.Contains(at(2024, 1, 10, 23, 59)))
	assert.False(t, d.Contains(at(2024, 1, 11, 0, 0)))

	_, err = ParseDate("10.01.2024")
	assert.ErrorIs(t, err, ErrParseDate)
}

func TestReminderValidate(t *testing.T) {
	valid := Reminder{
		ID:          "1",
		Description: "Buy milk",
		DateTime:    at(2024, 1, 10, 18, 0),
		Type:        TypeVoice,
	}
	require.NoError(t, valid.Validate())

	noID := valid
	noID.ID = ""
	assert.Error(t, noID.Validate())

	noType := valid
	noType.Type = TypeUnknown
	assert.Error(t, noType.Validate())

	noCategoryID := valid
	noCategoryID.Category = c.NewOptional(category.Category{Name: "Gym"}, true)
	assert.Error(t, noCategoryID.Validate())
}

func TestReadOptionsMatch(t *testing.T) {
	r := Reminder{ID: "1", DateTime: at(2024, 1, 10, 9, 0)}

	assert.True(t, ReadOptions{}.Match(r))
	assert.True(t, ReadOptions{DateEquals: c.NewOptional(Date{2024, 1, 10}, true)}.Match(r))
	assert.False(t, ReadOptions{DateEquals: c.NewOptional(Date{2024, 1, 11}, true)}.Match(r))
	assert.True(t, ReadOptions{IsCompletedEquals: c.NewOptional(false, true)}.Match(r))
	assert.False(t, ReadOptions{IsCompletedEquals: c.NewOptional(true, true)}.Match(r))
}
