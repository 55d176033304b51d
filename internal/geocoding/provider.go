package geocoding

import (
	"context"

	"github.com/UnknownOlympus/geocoord/internal/models"
)

// Provider is an interface that defines a method for geocoding an address.
// The Geocode method takes a context and an address string as input,
// and returns the corresponding latitude and longitude or an error.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.LatLng, error)
}
