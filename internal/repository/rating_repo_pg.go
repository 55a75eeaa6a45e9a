package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrikov/airbooking/internal/domain"
)

type RatingRepository interface {
	Create(ctx context.Context, rt *domain.Rating) error
	Exists(ctx context.Context, passengerID int64, flightNum string) (bool, error)
}

type PGRatingRepository struct {
	db *pgxpool.Pool
}

func NewRatingRepository(db *pgxpool.Pool) RatingRepository {
	return &PGRatingRepository{db: db}
}

func (r *PGRatingRepository) Create(ctx context.Context, rt *domain.Rating) error {
	_, err := r.db.Exec(ctx, `INSERT INTO rating (pid, flightnum, score, comment)
		VALUES ($1, $2, $3, $4)`, rt.PassengerID, rt.FlightNumber, rt.Score, rt.Comment)
	if isUniqueViolation(err, "rating_pid_flightnum_key") {
		return domain.ErrAlreadyRated
	}
	return err
}

func (r *PGRatingRepository) Exists(ctx context.Context, passengerID int64, flightNum string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM rating WHERE pid=$1 AND flightnum=$2)`,
		passengerID, flightNum).Scan(&exists)
	return exists, err
}

var _ RatingRepository = (*PGRatingRepository)(nil)
