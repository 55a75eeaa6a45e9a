package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrikov/airbooking/config"
	"github.com/ostrikov/airbooking/internal/bootstrap"
	"github.com/ostrikov/airbooking/internal/cache"
	"github.com/ostrikov/airbooking/internal/database"
	"github.com/ostrikov/airbooking/internal/kafka"
	"github.com/ostrikov/airbooking/internal/repository"
	"github.com/ostrikov/airbooking/internal/service/booking"
	"github.com/ostrikov/airbooking/internal/service/flights"
	"github.com/ostrikov/airbooking/internal/service/passenger"
	"github.com/ostrikov/airbooking/internal/service/review"
	"github.com/ostrikov/airbooking/internal/service/routes"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := database.Migrate(cfg.Migrations.Dir, cfg.Database.URL()); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.SearchCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	passengerRepo := repository.NewPassengerRepository(pool)
	airlineRepo := repository.NewAirlineRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)

	holdTTL := time.Duration(cfg.Booking.HoldTTLSeconds) * time.Second
	svcs := bootstrap.Services{
		Passengers: passenger.NewPassengerService(passengerRepo),
		Bookings: booking.NewBookingService(
			passengerRepo,
			flightRepo,
			bookingRepo,
			booking.WithCache(redisCache, holdTTL),
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
		),
		Reviews: review.NewReviewService(
			passengerRepo,
			flightRepo,
			bookingRepo,
			ratingRepo,
			review.WithProducer(producer, cfg.Kafka.BookingTopic),
		),
		Routes: routes.NewRouteService(
			airlineRepo,
			flightRepo,
			routes.WithCache(redisCache),
			routes.WithProducer(producer, cfg.Kafka.BookingTopic),
		),
		Flights: flights.NewFlightService(flightRepo, redisCache),
	}

	if err := bootstrap.Run(ctx, cfg, svcs); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
