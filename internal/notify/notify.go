package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ds124wfegd/eventease/config"
	"github.com/sirupsen/logrus"
)

type EventType string

const (
	BookingCreated EventType = "booking.created"
	BookingDeleted EventType = "booking.deleted"
	ContactCreated EventType = "contact.created"
)

// Event is a copy of a record change handed to an outside system.
type Event struct {
	Type       EventType   `json:"type"`
	ID         int         `json:"id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

var ErrUnknownDriver = errors.New("unknown notify driver")

// New builds the publisher selected by cfg.Driver.
func New(cfg config.NotifyConfig) (Publisher, error) {
	switch cfg.Driver {
	case "", "log":
		return NewLogPublisher(), nil
	case "redis":
		p, err := NewRedisPublisher(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "rabbitmq":
		p, err := NewRabbitMQ(&cfg.Rabbit)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "kafka":
		p, err := NewKafkaProducer(&cfg.Kafka)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "telegram":
		p, err := NewTelegramBot(&cfg.Telegram, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func encode(event Event) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return body, nil
}

// LogPublisher only writes events to the application log.
type LogPublisher struct {
	log *logrus.Entry
}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{log: logrus.WithField("component", "notify")}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.log.WithFields(logrus.Fields{
		"type": event.Type,
		"id":   event.ID,
	}).Debug("record event")
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
