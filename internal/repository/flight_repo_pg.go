package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ostrikov/airbooking/internal/domain"
)

type FlightRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	Exists(ctx context.Context, number string) (bool, error)
	Insert(ctx context.Context, f *domain.Flight) error
	Update(ctx context.Context, f *domain.Flight) error
	Search(ctx context.Context, origin, destination string) ([]domain.Flight, error)
	ByDestination(ctx context.Context, destination string) ([]domain.Flight, error)
	PopularDestinations(ctx context.Context, k int) ([]domain.DestinationCount, error)
	TopRated(ctx context.Context, k int) ([]domain.RatedRoute, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `flightnum, airid, origin, destination, plane, seats, duration`

func (r *PGFlightRepository) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flight WHERE flightnum=$1`, number)
	var f domain.Flight
	if err := row.Scan(&f.Number, &f.AirlineID, &f.Origin, &f.Destination, &f.Plane, &f.Seats, &f.Duration); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Exists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM flight WHERE flightnum=$1)`, number).Scan(&exists)
	return exists, err
}

func (r *PGFlightRepository) Insert(ctx context.Context, f *domain.Flight) error {
	_, err := r.db.Exec(ctx, `INSERT INTO flight (flightnum, airid, origin, destination, plane, seats, duration)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.Number, f.AirlineID, f.Origin, f.Destination, f.Plane, f.Seats, f.Duration)
	if isUniqueViolation(err, "flight_pkey") {
		return domain.ErrFlightExists
	}
	return err
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	cmd, err := r.db.Exec(ctx, `UPDATE flight SET airid=$2, origin=$3, destination=$4, plane=$5, seats=$6, duration=$7
		WHERE flightnum=$1`,
		f.Number, f.AirlineID, f.Origin, f.Destination, f.Plane, f.Seats, f.Duration)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func (r *PGFlightRepository) Search(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flight
		WHERE origin=$1 AND destination=$2 ORDER BY flightnum`, origin, destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) ByDestination(ctx context.Context, destination string) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flight
		WHERE destination=$1 ORDER BY duration, flightnum`, destination)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFlights(rows)
}

func (r *PGFlightRepository) PopularDestinations(ctx context.Context, k int) ([]domain.DestinationCount, error) {
	rows, err := r.db.Query(ctx, `SELECT destination, COUNT(*) AS routes FROM flight
		GROUP BY destination ORDER BY routes DESC, destination LIMIT $1`, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.DestinationCount, 0)
	for rows.Next() {
		var c domain.DestinationCount
		if err := rows.Scan(&c.Destination, &c.Routes); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *PGFlightRepository) TopRated(ctx context.Context, k int) ([]domain.RatedRoute, error) {
	rows, err := r.db.Query(ctx, `SELECT a.name, f.flightnum, f.origin, f.destination, f.plane, AVG(rt.score) AS avg_score
		FROM flight f
		JOIN airline a ON a.airid = f.airid
		JOIN rating rt ON rt.flightnum = f.flightnum
		GROUP BY a.name, f.flightnum, f.origin, f.destination, f.plane
		ORDER BY avg_score DESC, f.flightnum LIMIT $1`, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.RatedRoute, 0)
	for rows.Next() {
		var rr domain.RatedRoute
		if err := rows.Scan(&rr.Airline, &rr.Number, &rr.Origin, &rr.Destination, &rr.Plane, &rr.AvgScore); err != nil {
			return nil, err
		}
		routes = append(routes, rr)
	}
	return routes, rows.Err()
}

func scanFlights(rows pgx.Rows) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.Number, &f.AirlineID, &f.Origin, &f.Destination, &f.Plane, &f.Seats, &f.Duration); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

var _ FlightRepository = (*PGFlightRepository)(nil)
