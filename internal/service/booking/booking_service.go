// Package booking implements the reservation guard: it resolves the
// passenger and flight, accounts remaining capacity for the departure
// date, rejects duplicates, mints a booking reference and issues one
// atomic commit.
package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ostrikov/airbooking/internal/domain"
	"github.com/ostrikov/airbooking/internal/kafka"
	"github.com/ostrikov/airbooking/internal/refgen"
	"github.com/ostrikov/airbooking/internal/repository"
)

const refLength = 10

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	RemainingSeats(ctx context.Context, flightNum string, departure time.Time) (int, error)
}

type Cache interface {
	AcquireHold(ctx context.Context, flightNum string, departure time.Time, passport string, ttl time.Duration) (bool, error)
	ReleaseHold(ctx context.Context, flightNum string, departure time.Time, passport string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	passengers   repository.PassengerRepository
	flights      repository.FlightRepository
	bookings     repository.BookingRepository
	gen          *refgen.Generator
	cache        Cache
	producer     Producer
	bookingTopic string
	holdTTL      time.Duration
}

type CreateBookingInput struct {
	Passport     string    `json:"passport"`
	FlightNumber string    `json:"flight_number"`
	Departure    time.Time `json:"departure"`
}

type BookingServiceOption func(*BookingService)

// WithCache wires an advisory hold lock in front of the commit. The
// service works without one; the database stays authoritative either way.
func WithCache(cache Cache, holdTTL time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
		s.holdTTL = holdTTL
	}
}

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func NewBookingService(
	passengers repository.PassengerRepository,
	flights repository.FlightRepository,
	bookings repository.BookingRepository,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		passengers: passengers,
		flights:    flights,
		bookings:   bookings,
		gen:        refgen.New(refgen.Alphabet, refLength),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking walks the guard sequence. The pre-checks give callers
// precise rejections; the repository commit re-checks capacity and
// duplicates under a flight row lock, so a race lost between pre-check
// and commit still comes back as ErrNoSeats or ErrAlreadyBooked.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	passenger, err := s.passengers.GetByPassport(ctx, input.Passport)
	if err != nil {
		return nil, err
	}

	flight, err := s.flights.GetByNumber(ctx, input.FlightNumber)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		ok, err := s.cache.AcquireHold(ctx, flight.Number, input.Departure, passenger.Passport, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrAlreadyBooked
		}
		defer func() {
			_ = s.cache.ReleaseHold(ctx, flight.Number, input.Departure, passenger.Passport)
		}()
	}

	booked, err := s.bookings.CountForDeparture(ctx, flight.Number, input.Departure)
	if err != nil {
		return nil, err
	}
	if flight.Seats-booked <= 0 {
		return nil, domain.ErrNoSeats
	}

	duplicate, err := s.bookings.ExistsForDeparture(ctx, flight.Number, passenger.ID, input.Departure)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, domain.ErrAlreadyBooked
	}

	ref, err := s.gen.Generate(ctx, s.bookings.RefExists)
	if err != nil {
		if errors.Is(err, refgen.ErrExhausted) {
			return nil, domain.ErrRefsExhausted
		}
		return nil, err
	}

	booking := &domain.Booking{
		Ref:          ref,
		FlightNumber: flight.Number,
		PassengerID:  passenger.ID,
		Departure:    input.Departure,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.ReservationEvent{
		ID:           uuid.NewString(),
		Type:         kafka.EventBookingCreated,
		BookRef:      booking.Ref,
		FlightNumber: booking.FlightNumber,
		Passport:     passenger.Passport,
		Departure:    booking.Departure.Format("2006-01-02"),
		OccurredAt:   time.Now(),
	})
	return booking, nil
}

// RemainingSeats reports total seats minus booked seats for the flight on
// that departure date. With no booking rows yet the booked count is zero
// and the full capacity is open.
func (s *BookingService) RemainingSeats(ctx context.Context, flightNum string, departure time.Time) (int, error) {
	flight, err := s.flights.GetByNumber(ctx, flightNum)
	if err != nil {
		return 0, err
	}

	booked, err := s.bookings.CountForDeparture(ctx, flightNum, departure)
	if err != nil {
		return 0, err
	}

	remaining := flight.Seats - booked
	if remaining < 0 {
		// Constraint-guarded commits should make this unreachable.
		log.Printf("invariant violation: flight %s on %s oversold by %d", flightNum, departure.Format("2006-01-02"), -remaining)
		remaining = 0
	}
	return remaining, nil
}

func (s *BookingService) publish(ctx context.Context, event kafka.ReservationEvent) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, event.BookRef, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for %s: %v", event.Type, event.BookRef, err)
	}
}

var _ BookingUseCase = (*BookingService)(nil)
