package appevents

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rabbitmq/amqp091-go"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/logging"
	"remindu/internal/rabbitmq/schema"
)

// Channel is the part of an AMQP channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, routingKey string, msg amqp091.Publishing) error
}

type RabbitMQ struct {
	log      logging.Logger
	channel  Channel
	exchange string
	now      func() time.Time
}

func NewRabbitMQ(log logging.Logger, channel Channel, exchange string, now func() time.Time) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, now: now}
}

func (p *RabbitMQ) Publish(ctx context.Context, event events.Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}
	message := schema.Event{Name: event.Name, OccurredAt: p.now().UTC(), Payload: payload}
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, event.Name, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    message.OccurredAt,
		Body:         body,
	})
	if err != nil {
		logging.Error(p.log, ctx, err, logging.Entry("exchange", p.exchange), logging.Entry("event", event.Name))
		return err
	}
	p.log.Debug(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", event.Name),
	)
	return nil
}
