package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewRepositories(t *testing.T) {
	pool := &pgxpool.Pool{}
	assert.NotNil(t, NewPassengerRepository(pool))
	assert.NotNil(t, NewAirlineRepository(pool))
	assert.NotNil(t, NewFlightRepository(pool))
	assert.NotNil(t, NewBookingRepository(pool))
	assert.NotNil(t, NewRatingRepository(pool))
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "booking_bookref_key"}

	assert.True(t, isUniqueViolation(dup, "booking_bookref_key"))
	assert.True(t, isUniqueViolation(dup, ""))
	assert.False(t, isUniqueViolation(dup, "rating_pid_flightnum_key"))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, isUniqueViolation(errors.New("store down"), ""))
	assert.False(t, isUniqueViolation(nil, ""))
}
