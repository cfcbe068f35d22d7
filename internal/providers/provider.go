package providers

import (
	"context"
	"errors"
)

var ErrMissingCredential = errors.New("provider credential missing")

// Leg is one flight segment of an itinerary.
type Leg struct {
	FlyFrom  string `json:"fly_from"`
	FlyTo    string `json:"fly_to"`
	CityFrom string `json:"city_from"`
	CityTo   string `json:"city_to"`
}

// Itinerary is a priced origin to destination journey. A single leg means a
// direct flight; more legs mean a connection.
type Itinerary struct {
	Price       float64 `json:"price"`
	DurationSec int     `json:"duration_sec"`
	CityFrom    string  `json:"city_from"`
	CityTo      string  `json:"city_to"`
	Legs        []Leg   `json:"legs"`
}

type FlightProvider interface {
	Name() string
	// Configured reports whether a usable credential is present.
	Configured() bool
	// Search returns the itineraries for date, formatted DD/MM/YYYY.
	Search(ctx context.Context, origin, destination, date string) ([]Itinerary, error)
}
