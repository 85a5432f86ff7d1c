// Package notify delivers booking confirmations to the surrounding
// platform over RabbitMQ. Publishing is best-effort: errors are logged and
// returned so callers can ignore them without interrupting the booking
// flow.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cineseat/internal/pkg/config"
	"cineseat/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes BookingConfirmedEvents to a durable queue. It
// dials per publish; confirmations are rare enough that holding a channel
// open buys nothing and reconnect handling would.
type AMQPPublisher struct {
	url    string
	queue  string
	logger *slog.Logger
}

func NewAMQPPublisher(cfg config.AMQPConfig, logger *slog.Logger) *AMQPPublisher {
	return &AMQPPublisher{url: cfg.URL, queue: cfg.Queue, logger: logger}
}

// Enabled reports whether a broker URL was configured at all.
func (p *AMQPPublisher) Enabled() bool {
	return p.url != ""
}

func (p *AMQPPublisher) PublishBookingConfirmed(ctx context.Context, ev commands.BookingConfirmedEvent) error {
	if !p.Enabled() {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.logger.Warn("amqp dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.Warn("amqp channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts; declare is idempotent.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		p.logger.Warn("amqp queue declare failed", "queue", p.queue, "error", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.logger.Warn("amqp publish failed", "queue", p.queue, "error", err)
		return err
	}
	return nil
}
