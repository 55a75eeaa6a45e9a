package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ostrikov/airbooking/internal/domain"
)

// writeError maps typed rejections to 4xx responses with a stable
// machine-readable reason; anything else is a persistence error and
// surfaces as 500.
func writeError(c *gin.Context, err error) {
	reason := domain.ReasonOf(err)
	if reason == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(statusFor(err), gin.H{"error": err.Error(), "reason": reason})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrPassengerNotFound),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrAirlineNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrAlreadyRated),
		errors.Is(err, domain.ErrFlightExists),
		errors.Is(err, domain.ErrPassportTaken),
		errors.Is(err, domain.ErrNoSeats):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRefsExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnprocessableEntity
	}
}
