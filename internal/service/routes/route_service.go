// Package routes owns the flight-route upsert: airline resolution, range
// validation, then an explicit insert or update keyed by the mode flag.
package routes

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ostrikov/airbooking/internal/domain"
	"github.com/ostrikov/airbooking/internal/kafka"
	"github.com/ostrikov/airbooking/internal/repository"
)

type RouteUseCase interface {
	UpsertRoute(ctx context.Context, input UpsertRouteInput) (*domain.Flight, error)
}

type SearchInvalidator interface {
	InvalidateSearch(ctx context.Context, origin, destination string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type RouteService struct {
	airlines repository.AirlineRepository
	flights  repository.FlightRepository
	cache    SearchInvalidator
	producer Producer
	topic    string
}

type UpsertRouteInput struct {
	AirlineID    int64             `json:"airline_id"`
	FlightNumber string            `json:"flight_number"`
	Origin       string            `json:"origin"`
	Destination  string            `json:"destination"`
	Plane        string            `json:"plane"`
	Seats        int               `json:"seats"`
	Duration     int               `json:"duration"`
	Mode         domain.UpsertMode `json:"mode"`
}

type RouteServiceOption func(*RouteService)

func WithCache(cache SearchInvalidator) RouteServiceOption {
	return func(s *RouteService) { s.cache = cache }
}

func WithProducer(producer Producer, topic string) RouteServiceOption {
	return func(s *RouteService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewRouteService(airlines repository.AirlineRepository, flights repository.FlightRepository, opts ...RouteServiceOption) *RouteService {
	service := &RouteService{airlines: airlines, flights: flights}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// UpsertRoute inserts or overwrites a flight record. Insert collisions
// racing past the existence check surface as ErrFlightExists from the
// primary key, and an update losing a concurrent delete cannot happen
// because flights are never deleted.
func (s *RouteService) UpsertRoute(ctx context.Context, input UpsertRouteInput) (*domain.Flight, error) {
	if input.Mode != domain.ModeInsert && input.Mode != domain.ModeUpdate {
		return nil, domain.ErrBadUpsertMode
	}
	if input.Seats < domain.MinSeats || input.Seats > domain.MaxSeats {
		return nil, domain.ErrOutOfRange
	}
	if input.Duration < domain.MinDuration || input.Duration > domain.MaxDuration {
		return nil, domain.ErrOutOfRange
	}

	if _, err := s.airlines.GetByID(ctx, input.AirlineID); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		Number:      input.FlightNumber,
		AirlineID:   input.AirlineID,
		Origin:      input.Origin,
		Destination: input.Destination,
		Plane:       input.Plane,
		Seats:       input.Seats,
		Duration:    input.Duration,
	}

	switch input.Mode {
	case domain.ModeInsert:
		exists, err := s.flights.Exists(ctx, flight.Number)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrFlightExists
		}
		if err := s.flights.Insert(ctx, flight); err != nil {
			return nil, err
		}
	case domain.ModeUpdate:
		previous, err := s.flights.GetByNumber(ctx, flight.Number)
		if err != nil {
			return nil, err
		}
		if err := s.flights.Update(ctx, flight); err != nil {
			return nil, err
		}
		if s.cache != nil && (previous.Origin != flight.Origin || previous.Destination != flight.Destination) {
			_ = s.cache.InvalidateSearch(ctx, previous.Origin, previous.Destination)
		}
	}

	if s.cache != nil {
		_ = s.cache.InvalidateSearch(ctx, flight.Origin, flight.Destination)
	}

	if s.producer != nil && s.topic != "" {
		event := kafka.ReservationEvent{
			ID:           uuid.NewString(),
			Type:         kafka.EventRouteUpserted,
			FlightNumber: flight.Number,
			OccurredAt:   time.Now(),
		}
		if err := s.producer.Publish(ctx, s.topic, flight.Number, event); err != nil {
			log.Printf("WARNING: failed to publish %s event for %s: %v", event.Type, flight.Number, err)
		}
	}
	return flight, nil
}

var _ RouteUseCase = (*RouteService)(nil)
