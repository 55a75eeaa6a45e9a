package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrikov/airbooking/internal/domain"
)

type AirlineRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Airline, error)
}

type PGAirlineRepository struct {
	db *pgxpool.Pool
}

func NewAirlineRepository(db *pgxpool.Pool) AirlineRepository {
	return &PGAirlineRepository{db: db}
}

func (r *PGAirlineRepository) GetByID(ctx context.Context, id int64) (*domain.Airline, error) {
	row := r.db.QueryRow(ctx, `SELECT airid, name, founded, country FROM airline WHERE airid=$1`, id)
	var a domain.Airline
	if err := row.Scan(&a.ID, &a.Name, &a.Founded, &a.Country); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAirlineNotFound
		}
		return nil, err
	}
	return &a, nil
}

var _ AirlineRepository = (*PGAirlineRepository)(nil)
