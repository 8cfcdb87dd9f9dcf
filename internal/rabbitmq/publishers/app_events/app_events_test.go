package appevents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/logging"
	"remindu/internal/rabbitmq/schema"
)

type publishCall struct {
	exchange   string
	routingKey string
	msg        amqp091.Publishing
}

type fakeChannel struct {
	calls []publishCall
	err   error
}

func (c *fakeChannel) PublishWithContext(
	ctx context.Context,
	exchange, routingKey string,
	msg amqp091.Publishing,
) error {
	c.calls = append(c.calls, publishCall{exchange: exchange, routingKey: routingKey, msg: msg})
	return c.err
}

func now() time.Time {
	return time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
}

func TestPublishRoutesByEventName(t *testing.T) {
	channel := &fakeChannel{}
	publisher := NewRabbitMQ(logging.NewFakeLogger(), channel, "remindu.events", now)

	err := publisher.Publish(context.Background(), events.Event{
		Name:    events.REMINDER_CREATED,
		Payload: map[string]string{"id": "r-1"},
	})

	require.NoError(t, err)
	require.Len(t, channel.calls, 1)
	call := channel.calls[0]
	assert.Equal(t, "remindu.events", call.exchange)
	assert.Equal(t, events.REMINDER_CREATED, call.routingKey)
	assert.Equal(t, "application/json", call.msg.ContentType)

	message := schema.Event{}
	require.NoError(t, message.Unmarshal(call.msg.Body))
	assert.Equal(t, events.REMINDER_CREATED, message.Name)
	assert.True(t, now().Equal(message.OccurredAt))
	assert.JSONEq(t, `{"id":"r-1"}`, string(message.Payload))
}

func TestPublishReturnsChannelError(t *testing.T) {
	channel := &fakeChannel{err: errors.New("channel closed")}
	publisher := NewRabbitMQ(logging.NewFakeLogger(), channel, "remindu.events", now)

	err := publisher.Publish(context.Background(), events.Event{Name: events.FORM_CHANGED})

	assert.Error(t, err)
}

func TestPublishRejectsUnserializablePayload(t *testing.T) {
	channel := &fakeChannel{}
	publisher := NewRabbitMQ(logging.NewFakeLogger(), channel, "remindu.events", now)

	err := publisher.Publish(context.Background(), events.Event{Name: events.FORM_CHANGED, Payload: make(chan int)})

	assert.Error(t, err)
	assert.Empty(t, channel.calls)
}
