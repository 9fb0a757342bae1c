package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Queue names. Durable, declared idempotently by both sides.
const (
	QueueInquiryReceived = "inquiry.received"
	QueueSessionSignup   = "session.signup"
)

// Publisher sends lead events to RabbitMQ. A publish failure is logged and
// returned but never interrupts the request that triggered it; callers are
// expected to drop the error after recording it.
type Publisher struct {
	url    string
	logger *zap.Logger
}

func NewPublisher(url string, logger *zap.Logger) *Publisher {
	return &Publisher{url: url, logger: logger}
}

// PublishInquiryReceived enqueues an inquiry event.
func (p *Publisher) PublishInquiryReceived(ctx context.Context, ev InquiryReceivedEvent) error {
	return p.publish(ctx, QueueInquiryReceived, ev)
}

// PublishSessionSignup enqueues a session signup event.
func (p *Publisher) PublishSessionSignup(ctx context.Context, ev SessionSignupEvent) error {
	return p.publish(ctx, QueueSessionSignup, ev)
}

// publish dials, declares the queue and sends one persistent JSON message.
// Connections are short-lived; lead submissions are rare enough that the
// dial cost does not matter.
func (p *Publisher) publish(ctx context.Context, queueName string, payload interface{}) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.logger.Warn("rabbitmq dial failed", zap.String("queue", queueName), zap.Error(err))
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.Warn("rabbitmq channel open failed", zap.Error(err))
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.logger.Warn("rabbitmq queue declare failed", zap.String("queue", queueName), zap.Error(err))
		return fmt.Errorf("queue declare: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.logger.Warn("rabbitmq publish failed", zap.String("queue", queueName), zap.Error(err))
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
