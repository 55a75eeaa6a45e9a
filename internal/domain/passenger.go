package domain

import "time"

type Passenger struct {
	ID        int64
	Passport  string
	FullName  string
	BirthDate time.Time
	Country   string
}
