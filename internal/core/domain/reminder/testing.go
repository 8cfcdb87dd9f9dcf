package reminder

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Reminders     []Reminder
	CreateError   error
	ReadError     error
	ReadWith      []ReadOptions
	NotPersisting bool
	lock          sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (rem Reminder, err error) {
	if r.CreateError != nil {
		return rem, r.CreateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem = Reminder{
		ID:          ID(fmt.Sprintf("reminder-%d", len(r.Reminders)+1)),
		Title:       input.Title,
		Description: input.Description,
		DateTime:    input.DateTime,
		Type:        input.Type,
		Category:    input.Category,
		RepeatDays:  input.RepeatDays,
	}
	r.Reminders = append(r.Reminders, rem)
	if r.NotPersisting {
		return rem, ErrNotPersisted
	}
	return rem, nil
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	result := make([]Reminder, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		if options.Match(rem) {
			result = append(result, rem)
		}
	}
	return result, nil
}

func (r *FakeRepository) Count(ctx context.Context, options ReadOptions) (uint, error) {
	reminders, err := r.Read(ctx, options)
	return uint(len(reminders)), err
}

type FakeIdentityGenerator struct {
	counter int
	lock    sync.Mutex
}

func NewFakeIdentityGenerator() *FakeIdentityGenerator {
	return &FakeIdentityGenerator{}
}

func (g *FakeIdentityGenerator) GenerateReminderID() ID {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.counter++
	return ID(fmt.Sprintf("reminder-%d", g.counter))
}
