package domain

import "errors"

// Rejections are expected, user-correctable outcomes. Handlers branch on
// them with errors.Is; anything outside this set is a persistence error
// and surfaces as-is.
var (
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrFlightNotFound    = errors.New("flight not found")
	ErrAirlineNotFound   = errors.New("airline not found")
	ErrNoSeats           = errors.New("no seats left on this departure")
	ErrAlreadyBooked     = errors.New("passenger already booked on this departure")
	ErrNotBooked         = errors.New("passenger has no booking on this flight")
	ErrAlreadyRated      = errors.New("passenger already rated this flight")
	ErrScoreOutOfRange   = errors.New("score must be between 0 and 5")
	ErrFlightExists      = errors.New("flight number already in use")
	ErrPassportTaken     = errors.New("passport number already in use")
	ErrInvalidPassport   = errors.New("passport must be 1-10 alphanumeric characters")
	ErrOutOfRange        = errors.New("seats or duration out of range")
	ErrBadUpsertMode     = errors.New("mode must be insert or update")
	ErrRefsExhausted     = errors.New("booking reference space exhausted")
)

var reasons = map[error]string{
	ErrPassengerNotFound: "no_such_passenger",
	ErrFlightNotFound:    "no_such_flight",
	ErrAirlineNotFound:   "no_such_airline",
	ErrNoSeats:           "no_seats",
	ErrAlreadyBooked:     "already_booked",
	ErrNotBooked:         "not_booked",
	ErrAlreadyRated:      "already_rated",
	ErrScoreOutOfRange:   "score_out_of_range",
	ErrFlightExists:      "flight_exists",
	ErrPassportTaken:     "passport_taken",
	ErrInvalidPassport:   "invalid_passport",
	ErrOutOfRange:        "out_of_range",
	ErrBadUpsertMode:     "bad_mode",
	ErrRefsExhausted:     "exhausted",
}

// ReasonOf returns the machine-readable rejection code for err, or ""
// when err is not a known rejection.
func ReasonOf(err error) string {
	for sentinel, reason := range reasons {
		if errors.Is(err, sentinel) {
			return reason
		}
	}
	return ""
}

// IsRejection reports whether err is a validation rejection rather than
// a persistence error.
func IsRejection(err error) bool {
	return ReasonOf(err) != ""
}
