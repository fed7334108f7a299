// Package queue fans marketplace change notifications out to RabbitMQ so
// external consumers (dashboards, audit trails) can follow mutations without
// polling the document. Publishing is best-effort: failures are logged and
// never interrupt the store cycle that triggered them.
package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
)

const publishTimeout = 5 * time.Second

// ChangeEvent is the message published after every store save.
type ChangeEvent struct {
	OccurredAt time.Time `json:"occurred_at"`
	LoggedIn   bool      `json:"logged_in"`
	UserID     string    `json:"user_id,omitempty"`
	Role       string    `json:"role,omitempty"`
}

// ChangePublisher publishes ChangeEvents to a durable queue. A connection is
// dialed per publish; the change rate of a single-document store does not
// justify a managed long-lived channel.
type ChangePublisher struct {
	url   string
	queue string
	log   zerolog.Logger
}

func NewChangePublisher(url, queueName string, log zerolog.Logger) *ChangePublisher {
	return &ChangePublisher{url: url, queue: queueName, log: log}
}

// Observer adapts the publisher to the store's notification bus.
func (p *ChangePublisher) Observer() ports.Observer {
	return func(session *domain.Session) {
		if err := p.publish(session); err != nil {
			p.log.Warn().Err(err).Msg("change event publish failed")
		}
	}
}

func (p *ChangePublisher) publish(session *domain.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return err
	}

	event := ChangeEvent{OccurredAt: time.Now().UTC()}
	if session != nil {
		event.LoggedIn = true
		event.UserID = session.User.ID
		event.Role = session.User.Role
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
}
