package service

import (
	"context"

	"vivaha/internal/errors"
)

// ErrNoGeocodeResult is returned when a query resolves to no location.
var ErrNoGeocodeResult = errors.New("no geocoding result")

// GeoPoint is a resolved location.
type GeoPoint struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// Geocoder defines the interface for forward geocoding of venue and
// vendor addresses.
type Geocoder interface {
	// Geocode resolves a free-form query to a location.
	// Returns ErrNoGeocodeResult when nothing matches.
	Geocode(ctx context.Context, query string) (*GeoPoint, error)
}
