package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrikov/airbooking/internal/domain"
)

type PassengerRepository interface {
	Create(ctx context.Context, p *domain.Passenger) error
	GetByPassport(ctx context.Context, passport string) (*domain.Passenger, error)
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	err := r.db.QueryRow(ctx, `INSERT INTO passenger (passnum, fullname, bdate, country)
		VALUES ($1, $2, $3, $4)
		RETURNING pid`, p.Passport, p.FullName, p.BirthDate, p.Country).Scan(&p.ID)
	if isUniqueViolation(err, "passenger_passnum_key") {
		return domain.ErrPassportTaken
	}
	return err
}

func (r *PGPassengerRepository) GetByPassport(ctx context.Context, passport string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT pid, passnum, fullname, bdate, country FROM passenger WHERE passnum=$1`, passport)
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.Passport, &p.FullName, &p.BirthDate, &p.Country); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPassengerNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
