// Package review enforces the rating preconditions: the passenger must
// have booked the flight, must not have rated it yet, and the score must
// be in range.
package review

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ostrikov/airbooking/internal/domain"
	"github.com/ostrikov/airbooking/internal/kafka"
	"github.com/ostrikov/airbooking/internal/repository"
)

type ReviewUseCase interface {
	SubmitReview(ctx context.Context, input SubmitReviewInput) (*domain.Rating, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReviewService struct {
	passengers repository.PassengerRepository
	flights    repository.FlightRepository
	bookings   repository.BookingRepository
	ratings    repository.RatingRepository
	producer   Producer
	topic      string
}

type SubmitReviewInput struct {
	Passport     string `json:"passport"`
	FlightNumber string `json:"flight_number"`
	Score        int    `json:"score"`
	Comment      string `json:"comment"`
}

type ReviewServiceOption func(*ReviewService)

func WithProducer(producer Producer, topic string) ReviewServiceOption {
	return func(s *ReviewService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewReviewService(
	passengers repository.PassengerRepository,
	flights repository.FlightRepository,
	bookings repository.BookingRepository,
	ratings repository.RatingRepository,
	opts ...ReviewServiceOption,
) *ReviewService {
	service := &ReviewService{
		passengers: passengers,
		flights:    flights,
		bookings:   bookings,
		ratings:    ratings,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// SubmitReview checks preconditions in order, short-circuiting on the
// first failure. A concurrent duplicate that slips past the existence
// check is caught by the (pid, flightnum) unique constraint and comes
// back as ErrAlreadyRated from the insert.
func (s *ReviewService) SubmitReview(ctx context.Context, input SubmitReviewInput) (*domain.Rating, error) {
	passenger, err := s.passengers.GetByPassport(ctx, input.Passport)
	if err != nil {
		return nil, err
	}

	flight, err := s.flights.GetByNumber(ctx, input.FlightNumber)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookings.ExistsForFlight(ctx, flight.Number, passenger.ID)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, domain.ErrNotBooked
	}

	rated, err := s.ratings.Exists(ctx, passenger.ID, flight.Number)
	if err != nil {
		return nil, err
	}
	if rated {
		return nil, domain.ErrAlreadyRated
	}

	if input.Score < domain.MinScore || input.Score > domain.MaxScore {
		return nil, domain.ErrScoreOutOfRange
	}

	rating := &domain.Rating{
		PassengerID:  passenger.ID,
		FlightNumber: flight.Number,
		Score:        input.Score,
		Comment:      input.Comment,
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}

	if s.producer != nil && s.topic != "" {
		event := kafka.ReservationEvent{
			ID:           uuid.NewString(),
			Type:         kafka.EventReviewSubmitted,
			FlightNumber: flight.Number,
			Passport:     passenger.Passport,
			Score:        rating.Score,
			OccurredAt:   time.Now(),
		}
		if err := s.producer.Publish(ctx, s.topic, flight.Number, event); err != nil {
			log.Printf("WARNING: failed to publish %s event for %s: %v", event.Type, flight.Number, err)
		}
	}
	return rating, nil
}

var _ ReviewUseCase = (*ReviewService)(nil)
