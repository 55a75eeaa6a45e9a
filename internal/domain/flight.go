package domain

const (
	MinSeats = 1
	MaxSeats = 499

	MinDuration = 1
	MaxDuration = 24
)

type Airline struct {
	ID      int64
	Name    string
	Founded int
	Country string
}

// Flight is the static route definition: carrier, endpoints, plane and
// capacity. Per-date seat availability is derived from bookings, never
// stored on the flight itself.
type Flight struct {
	Number      string
	AirlineID   int64
	Origin      string
	Destination string
	Plane       string
	Seats       int
	Duration    int
}

// RatedRoute is a flight joined with its airline name and average score.
type RatedRoute struct {
	Airline     string
	Number      string
	Origin      string
	Destination string
	Plane       string
	AvgScore    float64
}

type DestinationCount struct {
	Destination string
	Routes      int
}
