package codec

import (
	"encoding/json"
	"fmt"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	"remindu/internal/core/domain/reminder"
)

type reminderRecord struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	DateTime    string          `json:"dateTime"`
	Type        string          `json:"type"`
	Category    *categoryRecord `json:"category"`
	IsCompleted bool            `json:"isCompleted"`
	RepeatDays  []int           `json:"repeatDays"`
}

type remindersEnvelope struct {
	Version   int              `json:"version"`
	Reminders []reminderRecord `json:"reminders"`
}

func encodeReminder(r reminder.Reminder) reminderRecord {
	record := reminderRecord{
		ID:          string(r.ID),
		Title:       r.Title,
		Description: r.Description,
		DateTime:    reminder.FormatDateTime(r.DateTime),
		Type:        r.Type.String(),
		IsCompleted: r.IsCompleted,
		RepeatDays:  r.RepeatDays.Ints(),
	}
	if cat, ok := r.Category.Get(); ok {
		encoded := encodeCategory(cat)
		record.Category = &encoded
	}
	return record
}

func decodeReminder(record reminderRecord) (r reminder.Reminder, err error) {
	dateTime, err := reminder.ParseDateTime(record.DateTime)
	if err != nil {
		return r, decodeError(err)
	}
	reminderType, err := reminder.ParseType(record.Type)
	if err != nil {
		return r, decodeError(err)
	}
	repeatDays, err := reminder.ParseRepeatDays(record.RepeatDays)
	if err != nil {
		return r, decodeError(err)
	}
	r = reminder.Reminder{
		ID:          reminder.ID(record.ID),
		Title:       record.Title,
		Description: record.Description,
		DateTime:    dateTime,
		Type:        reminderType,
		IsCompleted: record.IsCompleted,
		RepeatDays:  repeatDays,
	}
	if record.Category != nil {
		cat, err := decodeCategory(*record.Category)
		if err != nil {
			return r, err
		}
		r.Category = c.NewOptional(cat, true)
	}
	if err := r.Validate(); err != nil {
		return r, decodeError(err)
	}
	return r, nil
}

func EncodeReminders(reminders []reminder.Reminder) (string, error) {
	envelope := remindersEnvelope{
		Version:   VERSION,
		Reminders: make([]reminderRecord, 0, len(reminders)),
	}
	for _, r := range reminders {
		envelope.Reminders = append(envelope.Reminders, encodeReminder(r))
	}
	return encode(envelope)
}

// DecodeReminders reads a versioned document or a legacy bare array.
// Any malformed record fails the whole document.
func DecodeReminders(data string) ([]reminder.Reminder, error) {
	if isLegacyArray([]byte(data)) {
		return decodeLegacyReminders([]byte(data))
	}
	var envelope remindersEnvelope
	if err := json.Unmarshal([]byte(data), &envelope); err != nil {
		return nil, decodeError(err)
	}
	if err := checkVersion(envelope.Version); err != nil {
		return nil, err
	}
	reminders := make([]reminder.Reminder, 0, len(envelope.Reminders))
	for ix, record := range envelope.Reminders {
		r, err := decodeReminder(record)
		if err != nil {
			return nil, fmt.Errorf("reminder %d: %w", ix, err)
		}
		reminders = append(reminders, r)
	}
	return reminders, nil
}

// Legacy records carry the category without an identifier and with icon
// and color in whatever shape the old client wrote them.
type legacyCategoryRecord struct {
	Name  string          `json:"name"`
	Icon  json.RawMessage `json:"icon"`
	Color json.RawMessage `json:"color"`
}

const LEGACY_CATEGORY_ID = category.ID("legacy")

type legacyReminderRecord struct {
	reminderRecord
	Category *legacyCategoryRecord `json:"category"`
}

func decodeLegacyReminders(data []byte) ([]reminder.Reminder, error) {
	var records []legacyReminderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, decodeError(err)
	}
	reminders := make([]reminder.Reminder, 0, len(records))
	for ix, record := range records {
		base := record.reminderRecord
		base.Category = nil
		r, err := decodeReminder(base)
		if err != nil {
			return nil, fmt.Errorf("reminder %d: %w", ix, err)
		}
		if record.Category != nil {
			r.Category = c.NewOptional(decodeLegacyCategory(*record.Category), true)
		}
		reminders = append(reminders, r)
	}
	return reminders, nil
}

// decodeLegacyCategory keeps what can be recovered. The name doubles as
// the identifier since old categories had none.
func decodeLegacyCategory(record legacyCategoryRecord) category.Category {
	cat := category.Category{ID: category.ID(record.Name), Name: record.Name}
	if cat.ID == "" {
		cat.ID = LEGACY_CATEGORY_ID
	}
	var icon string
	if json.Unmarshal(record.Icon, &icon) == nil {
		if parsed, err := category.ParseIcon(icon); err == nil {
			cat.Icon = parsed
		}
	}
	var color string
	if json.Unmarshal(record.Color, &color) == nil {
		if parsed, err := category.ParseColor(color); err == nil {
			cat.Color = parsed
		}
	}
	return cat
}
