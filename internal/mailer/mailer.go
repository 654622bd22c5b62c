// Package mailer delivers itinerary share messages. The API never talks SMTP
// itself: messages are either published to NATS for a delivery worker or, when
// no broker is configured, logged.
package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// ShareSubject is the NATS subject share messages are published on.
const ShareSubject = "itinerary.share"

// Message is one outbound share email.
type Message struct {
	ItineraryID uuid.UUID `json:"itinerary_id"`
	SenderID    uuid.UUID `json:"sender_id"`
	To          string    `json:"to"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	QueuedAt    time.Time `json:"queued_at"`
}

// Mailer hands off a message for delivery.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer only records the message. It is used in development.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer constructs a LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.logger.InfoContext(ctx, "share email queued",
		"to", msg.To,
		"itinerary_id", msg.ItineraryID.String(),
		"subject", msg.Subject,
	)
	return nil
}

// Publisher is the subset of *nats.Conn the NATS mailer needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSMailer publishes messages as JSON on ShareSubject.
type NATSMailer struct {
	pub Publisher
}

// NewNATSMailer constructs a NATSMailer.
func NewNATSMailer(pub Publisher) *NATSMailer {
	return &NATSMailer{pub: pub}
}

func (m *NATSMailer) Send(_ context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("mailer.NATSMailer.Send: encode: %w", err)
	}
	if err := m.pub.Publish(ShareSubject, data); err != nil {
		return fmt.Errorf("mailer.NATSMailer.Send: publish: %w", err)
	}
	return nil
}

// DialNATS connects to the broker at url.
func DialNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("trip-planner-api"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(3),
	)
	if err != nil {
		return nil, fmt.Errorf("mailer.DialNATS: %w", err)
	}
	return nc, nil
}
