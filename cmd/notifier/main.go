package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Eursukkul/travel-listings/config"
	"github.com/Eursukkul/travel-listings/internal/consumer"
	"github.com/Eursukkul/travel-listings/pkg/rabbitmq"
)

const queueName = "notifier.bookings"

func main() {
	cfg := config.Load()

	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, queueName, "booking.*", "review.*")
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	done := consumer.NewNotificationConsumer().Start(msgs)
	log.Printf("Notifier listening on queue %s", queueName)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("Notifier shutting down (%s)", sig)
	case <-done:
		log.Println("Notifier: broker closed the delivery channel")
	}
}
