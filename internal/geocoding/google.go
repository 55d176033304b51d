package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/geocoord/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider resolves addresses through the Google Maps Geocoding API.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

// GoogleAPIClient is the subset of *maps.Client used by GoogleProvider.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// Errors reported by the Google provider.
var (
	ErrEmptyResponse       = errors.New("get empty response from Google Maps API")
	ErrGoogleInvalidCoords = errors.New("google maps API returned invalid coordinates")
)

// NewGoogleProvider wraps an initialized Google Maps client.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Geocode returns the location of the best (first) result Google Maps reports
// for address. Partial matches are accepted and logged; out-of-range
// coordinates fail with ErrGoogleInvalidCoords.
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*models.LatLng, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "address", address)

	req := maps.GeocodingRequest{Address: address}
	results, err := gp.client.Geocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrEmptyResponse
	}

	best := results[0]
	if best.PartialMatch {
		gp.log.InfoContext(ctx, "Google Maps returned a partial match",
			"address", address, "matched", best.FormattedAddress, "location_type", best.Geometry.LocationType)
	}

	loc := best.Geometry.Location
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrGoogleInvalidCoords, loc.Lat, loc.Lng)
	}

	return &models.LatLng{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}
