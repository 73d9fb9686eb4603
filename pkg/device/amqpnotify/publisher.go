// Package amqpnotify delivers reservation notifications by publishing them
// to a RabbitMQ queue, for a companion process to present.
package amqpnotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"tableflip.dev/confusion/pkg/device"
)

// DefaultQueue is used when no queue name is configured.
const DefaultQueue = "reservation.notifications"

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher implements device.Notifier. Each Schedule call dials the broker,
// declares the durable queue and publishes one persistent JSON message.
type Publisher struct {
	URL   string
	Queue string

	open func(url string) (channel, func(), error)
	now  func() time.Time
}

// New returns a Publisher for the broker at url.
func New(url, queue string) *Publisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Publisher{URL: url, Queue: queue, open: dial, now: time.Now}
}

func dial(url string) (channel, func(), error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("amqpnotify: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("amqpnotify: open channel: %w", err)
	}
	return ch, func() {
		_ = ch.Close()
		_ = conn.Close()
	}, nil
}

// Schedule implements device.Notifier.
func (p *Publisher) Schedule(ctx context.Context, n device.Notification) error {
	if p == nil || p.open == nil {
		return errors.New("amqpnotify: publisher not initialized")
	}
	ch, closeFn, err := p.open(p.URL)
	if err != nil {
		log.Printf("rabbitmq: %v", err)
		return err
	}
	defer closeFn()

	if _, err := ch.QueueDeclare(
		p.Queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return fmt.Errorf("amqpnotify: declare %s: %w", p.Queue, err)
	}

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("amqpnotify: marshal notification: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    n.ID,
		Timestamp:    p.now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return fmt.Errorf("amqpnotify: publish: %w", err)
	}
	return nil
}
