package identity

import (
	"github.com/google/uuid"

	"remindu/internal/core/domain/category"
	"remindu/internal/core/domain/reminder"
)

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateReminderID() reminder.ID {
	return reminder.ID(uuid.NewString())
}

func (g *UUID) GenerateCategoryID() category.ID {
	return category.ID(uuid.NewString())
}
