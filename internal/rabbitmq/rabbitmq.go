package rabbitmq

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	e "remindu/internal/core/domain/errors"
	"remindu/internal/core/domain/logging"
)

const reconnectDelay = 3 * time.Second

// Connection keeps an AMQP connection alive, redialing the broker whenever
// the server closes it.
type Connection struct {
	url  string
	log  logging.Logger
	lock sync.RWMutex
	conn *amqp.Connection
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	connection := &Connection{url: url, log: log, conn: conn}
	go connection.watch(conn)
	return connection, nil
}

func (c *Connection) current() *amqp.Connection {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.conn
}

func (c *Connection) watch(conn *amqp.Connection) {
	reason, ok := <-conn.NotifyClose(make(chan *amqp.Error, 1))
	if !ok {
		c.log.Info(context.Background(), "RabbitMQ connection closed.")
		return
	}
	c.log.Warning(context.Background(), "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
	for {
		time.Sleep(reconnectDelay)
		next, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Error(context.Background(), "RabbitMQ reconnect failed.", logging.Entry("err", err))
			continue
		}
		c.lock.Lock()
		c.conn = next
		c.lock.Unlock()
		c.log.Info(context.Background(), "RabbitMQ reconnected.")
		go c.watch(next)
		return
	}
}

func (c *Connection) Close() error {
	return c.current().Close()
}

// Channel opens a channel that is recreated after unexpected closes.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.current().Channel()
	if err != nil {
		return nil, err
	}
	channel := &Channel{conn: c, ch: ch}
	go channel.watch(ch)
	return channel, nil
}

type Channel struct {
	conn   *Connection
	lock   sync.RWMutex
	ch     *amqp.Channel
	closed int32
}

func (ch *Channel) current() *amqp.Channel {
	ch.lock.RLock()
	defer ch.lock.RUnlock()
	return ch.ch
}

func (ch *Channel) watch(current *amqp.Channel) {
	log := ch.conn.log
	reason, ok := <-current.NotifyClose(make(chan *amqp.Error, 1))
	if !ok || ch.IsClosed() {
		return
	}
	log.Warning(context.Background(), "RabbitMQ channel closed.", logging.Entry("reason", reason.Error()))
	for {
		time.Sleep(reconnectDelay)
		if ch.IsClosed() {
			return
		}
		next, err := ch.conn.current().Channel()
		if err != nil {
			log.Error(context.Background(), "RabbitMQ channel recreate failed.", logging.Entry("err", err))
			continue
		}
		ch.lock.Lock()
		ch.ch = next
		ch.lock.Unlock()
		log.Info(context.Background(), "RabbitMQ channel recreated.")
		go ch.watch(next)
		return
	}
}

// IsClosed reports whether Close was called.
func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if !atomic.CompareAndSwapInt32(&ch.closed, 0, 1) {
		return amqp.ErrClosed
	}
	return ch.current().Close()
}

// DeclareTopicExchange declares a durable topic exchange.
func (ch *Channel) DeclareTopicExchange(name string) error {
	return ch.current().ExchangeDeclare(name, amqp.ExchangeTopic, true, false, false, false, nil)
}

func (ch *Channel) PublishWithContext(
	ctx context.Context,
	exchange, routingKey string,
	msg amqp.Publishing,
) error {
	return ch.current().PublishWithContext(ctx, exchange, routingKey, false, false, msg)
}
