package email

import (
	"context"
	"log"

	"github.com/ostrikov/airbooking/internal/kafka"
)

// Sender is a stand-in notification channel: it logs what a real mailer
// would send for each reservation event.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	switch event.Type {
	case kafka.EventBookingCreated:
		log.Printf("notify %s: booking %s confirmed for flight %s on %s", event.Passport, event.BookRef, event.FlightNumber, event.Departure)
	case kafka.EventReviewSubmitted:
		log.Printf("notify %s: review for flight %s recorded (score %d)", event.Passport, event.FlightNumber, event.Score)
	default:
		log.Printf("notify: %s event for flight %s", event.Type, event.FlightNumber)
	}
	return nil
}
