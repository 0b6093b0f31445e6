package consumer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/Eursukkul/travel-listings/internal/events"
	amqp "github.com/rabbitmq/amqp091-go"
)

var errUnknownKey = errors.New("unknown routing key")

type NotificationConsumer struct {
	notify func(format string, args ...any)
}

func NewNotificationConsumer() *NotificationConsumer {
	return &NotificationConsumer{notify: log.Printf}
}

// Start handles deliveries in the background. The returned channel closes once msgs does.
func (nc *NotificationConsumer) Start(msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			nc.handleMessage(msg)
		}
		log.Println("[Notifier] channel closed, stopping consumer")
	}()
	return done
}

func (nc *NotificationConsumer) handleMessage(msg amqp.Delivery) {
	if err := nc.dispatch(msg.RoutingKey, msg.Body); err != nil {
		log.Printf("[Notifier] dropping message %q: %v", msg.RoutingKey, err)
		msg.Nack(false, false)
		return
	}
	msg.Ack(false)
}

func (nc *NotificationConsumer) dispatch(key string, body []byte) error {
	switch key {
	case events.BookingCreated:
		var p events.BookingCreatedPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return fmt.Errorf("unmarshal booking: %w", err)
		}
		nc.notify("[Notifier] booking %d confirmed for %s at %q: %s to %s, total %s",
			p.BookingID, p.User, p.ListingTitle, p.StartDate, p.EndDate, p.TotalPrice)
	case events.ReviewCreated:
		var p events.ReviewCreatedPayload
		if err := json.Unmarshal(body, &p); err != nil {
			return fmt.Errorf("unmarshal review: %w", err)
		}
		nc.notify("[Notifier] new %d-star review %d on listing %d by %s",
			p.Rating, p.ReviewID, p.ListingID, p.User)
	default:
		return errUnknownKey
	}
	return nil
}
