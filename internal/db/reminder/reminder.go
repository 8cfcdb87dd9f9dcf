package reminder

import (
	"context"
	"errors"
	"fmt"
	"sync"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/domain/storage"
	"remindu/internal/db/codec"
)

// KVReminderRepository keeps the reminder collection in memory and writes
// all of it under a single key after every change. Other processes may
// share the key: writes merge with the stored collection and reads pick
// up reminders stored since the last access.
type KVReminderRepository struct {
	store     storage.KeyValueStore
	identity  reminder.IdentityGenerator
	log       logging.Logger
	reminders []reminder.Reminder
	lock      sync.Mutex
}

// NewKVReminderRepository restores the collection from store. A missing
// key starts an empty collection, and so does a document that can not be
// read, after logging why.
func NewKVReminderRepository(
	ctx context.Context,
	store storage.KeyValueStore,
	identity reminder.IdentityGenerator,
	log logging.Logger,
) *KVReminderRepository {
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if identity == nil {
		panic(e.NewNilArgumentError("identity"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	r := &KVReminderRepository{store: store, identity: identity, log: log}
	r.restore(ctx)
	return r
}

func (r *KVReminderRepository) restore(ctx context.Context) {
	r.reminders = make([]reminder.Reminder, 0)
	data, err := r.store.Get(ctx, storage.REMINDERS_KEY)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return
	}
	if err != nil {
		r.log.Error(ctx, "Could not read stored reminders, starting empty.", logging.Entry("err", err))
		return
	}
	reminders, err := codec.DecodeReminders(data)
	if err != nil {
		r.log.Error(ctx, "Could not decode stored reminders, starting empty.", logging.Entry("err", err))
		return
	}
	r.reminders = reminders
	r.log.Info(ctx, "Reminders restored.", logging.Entry("count", len(reminders)))
}

func (r *KVReminderRepository) Create(ctx context.Context, input reminder.CreateInput) (created reminder.Reminder, err error) {
	created = reminder.Reminder{
		ID:          r.identity.GenerateReminderID(),
		Title:       input.Title,
		Description: input.Description,
		DateTime:    reminder.WallClock(input.DateTime),
		Type:        input.Type,
		Category:    input.Category,
		RepeatDays:  input.RepeatDays,
	}
	if err := created.Validate(); err != nil {
		return created, err
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.reminders = append(r.reminders, created)
	if err := r.persist(ctx); err != nil {
		return created, fmt.Errorf("%w: %v", reminder.ErrNotPersisted, err)
	}
	return created, nil
}

// persist merges the collection into the stored one and writes the
// result, retrying a failed write once.
func (r *KVReminderRepository) persist(ctx context.Context) error {
	err := r.store.Update(ctx, storage.REMINDERS_KEY, r.merge(ctx))
	if err == nil {
		return nil
	}
	r.log.Debug(ctx, "Could not write reminders, retrying.", logging.Entry("err", err))
	return r.store.Update(ctx, storage.REMINDERS_KEY, r.merge(ctx))
}

func (r *KVReminderRepository) merge(ctx context.Context) storage.UpdateFunc {
	return func(current string, found bool) (string, error) {
		if found {
			stored, err := codec.DecodeReminders(current)
			if err != nil {
				r.log.Warning(ctx, "Overwriting stored reminders that can not be read.", logging.Entry("err", err))
			} else {
				r.reminders = union(stored, r.reminders)
			}
		}
		return codec.EncodeReminders(r.reminders)
	}
}

// refresh adds reminders other processes stored. The in-memory collection
// is served unchanged when the store can not be read.
func (r *KVReminderRepository) refresh(ctx context.Context) {
	data, err := r.store.Get(ctx, storage.REMINDERS_KEY)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return
	}
	if err != nil {
		r.log.Debug(ctx, "Could not read stored reminders.", logging.Entry("err", err))
		return
	}
	stored, err := codec.DecodeReminders(data)
	if err != nil {
		r.log.Debug(ctx, "Could not decode stored reminders.", logging.Entry("err", err))
		return
	}
	r.reminders = union(stored, r.reminders)
}

// union returns stored followed by the local reminders it is missing.
func union(stored []reminder.Reminder, local []reminder.Reminder) []reminder.Reminder {
	known := make(map[reminder.ID]struct{}, len(stored))
	result := make([]reminder.Reminder, 0, len(stored)+len(local))
	for _, rem := range stored {
		known[rem.ID] = struct{}{}
		result = append(result, rem)
	}
	for _, rem := range local {
		if _, ok := known[rem.ID]; !ok {
			result = append(result, rem)
		}
	}
	return result
}

func (r *KVReminderRepository) Read(ctx context.Context, options reminder.ReadOptions) ([]reminder.Reminder, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.refresh(ctx)
	result := make([]reminder.Reminder, 0, len(r.reminders))
	for _, rem := range r.reminders {
		if options.Match(rem) {
			result = append(result, rem)
		}
	}
	return result, nil
}

func (r *KVReminderRepository) Count(ctx context.Context, options reminder.ReadOptions) (uint, error) {
	reminders, err := r.Read(ctx, options)
	return uint(len(reminders)), err
}
