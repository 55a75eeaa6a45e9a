package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ostrikov/airbooking/config"
	"github.com/ostrikov/airbooking/internal/email"
	"github.com/ostrikov/airbooking/internal/kafka"

	_ "github.com/joho/godotenv/autoload"
)

// The worker tails the reservation event stream and fans each event out
// to the notification channel.
func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingTopic)
	defer consumer.Close()

	sender := email.NewSender()

	err = consumer.Consume(ctx, func(ctx context.Context, event kafka.ReservationEvent) error {
		if err := sender.Send(ctx, event); err != nil {
			log.Printf("send notification for %s: %v", event.ID, err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Println("worker shut down")
}
