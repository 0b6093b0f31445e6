package service

import "log"

// EventPublisher delivers domain events; *rabbitmq.Publisher satisfies it.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// publish is fire-and-forget: a broker failure is logged and never fails the write
// that already committed.
func publish(p EventPublisher, routingKey string, payload any) {
	if p == nil {
		return
	}
	if err := p.Publish(routingKey, payload); err != nil {
		log.Printf("[Events] failed to publish %s: %v", routingKey, err)
	}
}
