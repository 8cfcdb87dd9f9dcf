package views

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/reminder"
)

var gym = category.Category{ID: "gym", Name: "Gym", Icon: category.IconFitnessCenter, Color: category.MatteMint}

func TestFromReminder(t *testing.T) {
	r := reminder.Reminder{
		ID:          "1",
		Title:       "Buy milk",
		Description: "Buy milk",
		DateTime:    time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC),
		Type:        reminder.TypeVoice,
		Category:    c.NewOptional(gym, true),
		RepeatDays:  reminder.NoRepeatDays.Toggle(reminder.Monday),
	}

	encoded, err := json.Marshal(FromReminder(r))

	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "1",
		"title": "Buy milk",
		"description": "Buy milk",
		"dateTime": "2024-01-10T18:00:00",
		"type": "Voice",
		"category": {"id": "gym", "name": "Gym", "icon": "fitness_center", "color": "#E0F2F1"},
		"isCompleted": false,
		"repeatDays": [1],
		"repeatSummary": "Mon"
	}`, string(encoded))
}

func TestFromReminderWithoutCategory(t *testing.T) {
	v := FromReminder(reminder.Reminder{ID: "1", Type: reminder.TypeAlarm})

	assert.Nil(t, v.Category)
	assert.Equal(t, []int{}, v.RepeatDays)
}

func TestFromForm(t *testing.T) {
	now := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)
	registry, err := category.NewRegistry([]category.Category{gym}, c.Optional[category.ID]{}).Select(gym.ID)
	require.NoError(t, err)
	state := form.NewState(registry)

	v := FromForm(state, now)

	assert.Equal(t, "editing", v.Phase)
	assert.Nil(t, v.DateTime)
	assert.Nil(t, v.RepeatDialog)
	assert.Len(t, v.Suggestions, 5)
	require.NotNil(t, v.Categories.Selected)
	assert.Equal(t, "gym", *v.Categories.Selected)

	state.DateTime = c.NewOptional(now, true)
	state.RepeatDialog = c.NewOptional(reminder.AllDays, true)
	v = FromForm(state, now)

	require.NotNil(t, v.DateTime)
	assert.Equal(t, "2024-01-10T14:30:00", *v.DateTime)
	assert.Empty(t, v.Suggestions)
	require.NotNil(t, v.RepeatDialog)
	assert.Equal(t, "Every Day", v.RepeatDialog.Summary)
}
