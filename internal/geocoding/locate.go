package geocoding

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/UnknownOlympus/geocoord/internal/geometry"
	"github.com/UnknownOlympus/geocoord/internal/models"
)

// ErrInvalidLatLng is returned for a latitude outside [-90, 90] or a
// non-finite longitude.
var ErrInvalidLatLng = errors.New("invalid latitude/longitude")

// FromLatLng places ll on a sphere of the given radius. Latitude 90 is the
// polar axis (polar angle 0) and longitude is measured eastwards as the
// azimuth. The south pole has no representation with a polar angle below
// 180 and fails with geometry.ErrConversionFailed.
func FromLatLng(f *geometry.Factory, radius float64, ll models.LatLng) (*geometry.Spheric, error) {
	lat, lon := ll.Latitude, ll.Longitude
	if math.IsNaN(lat) || lat < -90 || lat > 90 || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return nil, fmt.Errorf("%w: %w: (%v, %v)", geometry.ErrInvalidArgument, ErrInvalidLatLng, lat, lon)
	}

	polar := 90 - lat
	if polar >= 180 {
		return nil, fmt.Errorf("%w: latitude %v has no spheric form", geometry.ErrConversionFailed, lat)
	}

	return f.NewSpheric(radius, polar, geometry.PositiveModulus(lon, 360))
}

// Locate geocodes address with p and returns it as a Location on a sphere
// of the given radius.
func Locate(
	ctx context.Context,
	p Provider,
	f *geometry.Factory,
	radius float64,
	address string,
) (*models.Location, error) {
	ll, err := p.Geocode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", address, err)
	}

	s, err := FromLatLng(f, radius, *ll)
	if err != nil {
		return nil, fmt.Errorf("locate %q: %w", address, err)
	}

	return models.NewLocation(address, s)
}
