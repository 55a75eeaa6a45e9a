package domain

import "time"

// Booking is a dated seat hold: one passenger on one flight for one
// departure date. The (flight, passenger, departure) triple is unique.
type Booking struct {
	Ref          string
	FlightNumber string
	PassengerID  int64
	Departure    time.Time
}

type Rating struct {
	PassengerID  int64
	FlightNumber string
	Score        int
	Comment      string
}

const (
	MinScore = 0
	MaxScore = 5
)

type UpsertMode string

const (
	ModeInsert UpsertMode = "insert"
	ModeUpdate UpsertMode = "update"
)
