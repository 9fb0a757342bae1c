package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Mailer is satisfied by notify.Mailer. Nil means email is disabled and
// events are only appended to the lead log.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// Consumer drains the lead queues, appends each event to logs/leads.log and
// fires an email notification when a mailer is configured.
type Consumer struct {
	url    string
	logger *zap.Logger
	mailer Mailer
}

func NewConsumer(url string, logger *zap.Logger, mailer Mailer) *Consumer {
	return &Consumer{url: url, logger: logger, mailer: mailer}
}

// Run connects to the broker and consumes until ctx is cancelled. Broker
// outages are retried with exponential backoff; a processing failure rejects
// the single offending message without requeue so the loop never spins.
func (c *Consumer) Run(ctx context.Context) {
	backoff := time.Second
	for {
		if ctx.Err() != nil {
			return
		}
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.logger.Warn("lead consumer: dial failed", zap.Error(err), zap.Duration("retry_in", backoff))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := c.consume(ctx, conn); err != nil {
			c.logger.Warn("lead consumer: loop ended", zap.Error(err))
			_ = conn.Close()
			select {
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
				return
			}
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(20, 0, false); err != nil {
		c.logger.Warn("lead consumer: set qos failed", zap.Error(err))
	}

	for _, name := range []string{QueueInquiryReceived, QueueSessionSignup} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return fmt.Errorf("queue declare %s: %w", name, err)
		}
	}

	inquiries, err := ch.Consume(QueueInquiryReceived, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", QueueInquiryReceived, err)
	}
	signups, err := ch.Consume(QueueSessionSignup, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", QueueSessionSignup, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-inquiries:
			if !ok {
				return errors.New("inquiry deliveries channel closed")
			}
			c.settle(ctx, d, c.handleInquiry)
		case d, ok := <-signups:
			if !ok {
				return errors.New("signup deliveries channel closed")
			}
			c.settle(ctx, d, c.handleSignup)
		}
	}
}

func (c *Consumer) settle(ctx context.Context, d amqp.Delivery, handle func(context.Context, []byte) error) {
	if err := handle(ctx, d.Body); err != nil {
		c.logger.Error("lead consumer: handle message failed", zap.Error(err))
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func (c *Consumer) handleInquiry(ctx context.Context, body []byte) error {
	var ev InquiryReceivedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal inquiry event: %w", err)
	}
	line := fmt.Sprintf("[%s] Franchise inquiry | inquiry_id=%d | name=%q | phone=%s | email=%s | region=%s\n",
		ev.ReceivedAt, ev.InquiryID, ev.Name, ev.Phone, ev.Email, ev.Region)
	if err := appendLeadLog(line); err != nil {
		return err
	}
	c.mail(ctx, fmt.Sprintf("New franchise inquiry from %s", ev.Name),
		fmt.Sprintf("Inquiry #%d\nName: %s\nPhone: %s\nEmail: %s\nRegion: %s\n\n%s",
			ev.InquiryID, ev.Name, ev.Phone, ev.Email, ev.Region, ev.Message))
	return nil
}

func (c *Consumer) handleSignup(ctx context.Context, body []byte) error {
	var ev SessionSignupEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal signup event: %w", err)
	}
	line := fmt.Sprintf("[%s] Session signup | applicant_id=%d | session_id=%d | round=%d | name=%q | email=%s | participants=%d\n",
		ev.ReceivedAt, ev.ApplicantID, ev.SessionID, ev.Round, ev.Name, ev.Email, ev.Participants)
	if err := appendLeadLog(line); err != nil {
		return err
	}
	c.mail(ctx, fmt.Sprintf("Session round %d signup from %s", ev.Round, ev.Name),
		fmt.Sprintf("Applicant #%d for session #%d (round %d)\nName: %s\nEmail: %s\nParticipants: %d",
			ev.ApplicantID, ev.SessionID, ev.Round, ev.Name, ev.Email, ev.Participants))
	return nil
}

// mail is best-effort. A delivery failure is logged; the message is still
// acked because the lead log already has it.
func (c *Consumer) mail(ctx context.Context, subject, body string) {
	if c.mailer == nil {
		return
	}
	if err := c.mailer.Send(ctx, subject, body); err != nil {
		c.logger.Warn("lead consumer: email failed", zap.String("subject", subject), zap.Error(err))
	}
}

func appendLeadLog(line string) error {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "leads.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open lead log: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write lead log: %w", err)
	}
	return nil
}
