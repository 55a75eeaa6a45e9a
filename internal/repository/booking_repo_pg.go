package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrikov/airbooking/internal/domain"
)

type BookingRepository interface {
	// Create commits a booking atomically: it re-checks capacity under a
	// row lock on the flight and relies on the schema's unique
	// constraints as a backstop.
	Create(ctx context.Context, b *domain.Booking) error
	CountForDeparture(ctx context.Context, flightNum string, departure time.Time) (int, error)
	ExistsForDeparture(ctx context.Context, flightNum string, passengerID int64, departure time.Time) (bool, error)
	ExistsForFlight(ctx context.Context, flightNum string, passengerID int64) (bool, error)
	RefExists(ctx context.Context, ref string) (bool, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

// Create holds FOR UPDATE on the flight row across the capacity re-check
// and the insert, so two concurrent commits for the same flight serialize
// and the loser sees the winner's row. A duplicate (flight, passenger,
// departure) or reference collision that slips past the service's
// pre-checks surfaces as a typed rejection via the unique constraints,
// never as an oversell.
func (r *PGBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var seats int
	if err := tx.QueryRow(ctx, `SELECT seats FROM flight WHERE flightnum=$1 FOR UPDATE`, b.FlightNumber).Scan(&seats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrFlightNotFound
		}
		return err
	}

	var booked int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM booking WHERE flightnum=$1 AND departure=$2`,
		b.FlightNumber, b.Departure).Scan(&booked); err != nil {
		return err
	}
	if booked >= seats {
		return domain.ErrNoSeats
	}

	if _, err := tx.Exec(ctx, `INSERT INTO booking (bookref, departure, flightnum, pid)
		VALUES ($1, $2, $3, $4)`, b.Ref, b.Departure, b.FlightNumber, b.PassengerID); err != nil {
		switch {
		case isUniqueViolation(err, "booking_flightnum_pid_departure_key"):
			return domain.ErrAlreadyBooked
		case isUniqueViolation(err, "booking_bookref_key"):
			return domain.ErrRefsExhausted
		}
		return err
	}

	return tx.Commit(ctx)
}

// CountForDeparture returns the number of seats already booked for the
// flight on that date. No rows means zero booked, not zero available.
func (r *PGBookingRepository) CountForDeparture(ctx context.Context, flightNum string, departure time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM booking WHERE flightnum=$1 AND departure=$2`,
		flightNum, departure).Scan(&n)
	return n, err
}

func (r *PGBookingRepository) ExistsForDeparture(ctx context.Context, flightNum string, passengerID int64, departure time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM booking WHERE flightnum=$1 AND pid=$2 AND departure=$3)`,
		flightNum, passengerID, departure).Scan(&exists)
	return exists, err
}

func (r *PGBookingRepository) ExistsForFlight(ctx context.Context, flightNum string, passengerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM booking WHERE flightnum=$1 AND pid=$2)`,
		flightNum, passengerID).Scan(&exists)
	return exists, err
}

func (r *PGBookingRepository) RefExists(ctx context.Context, ref string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM booking WHERE bookref=$1)`, ref).Scan(&exists)
	return exists, err
}

var _ BookingRepository = (*PGBookingRepository)(nil)
