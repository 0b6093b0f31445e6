package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	appID          = "travel-listings"
	publishTimeout = 5 * time.Second
)

// Publisher sends domain events to the travel exchange as persistent JSON messages.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	now     func() time.Time
}

func NewPublisher(url string) (*Publisher, error) {
	conn, ch, err := openChannel(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch, now: time.Now}, nil
}

func (p *Publisher) Publish(routingKey string, payload any) error {
	msg, err := newMessage(routingKey, payload, p.now())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := p.channel.PublishWithContext(ctx, ExchangeName, routingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	log.Printf("[RabbitMQ] published %s (message %s)", routingKey, msg.MessageId)
	return nil
}

// newMessage wraps payload as a persistent JSON message typed by its routing key.
func newMessage(routingKey string, payload any, at time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal %s payload: %w", routingKey, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    at.UTC(),
		Type:         routingKey,
		AppId:        appID,
		Body:         body,
	}, nil
}

func (p *Publisher) Close() {
	closeAll(p.channel, p.conn)
}
