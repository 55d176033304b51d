package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/geocoord/internal/geocoding"
	"github.com/UnknownOlympus/geocoord/internal/geometry"
	"github.com/UnknownOlympus/geocoord/internal/metrics"
	"github.com/UnknownOlympus/geocoord/internal/models"
	"golang.org/x/sync/errgroup"
)

// Surveyor resolves addresses into coordinates on a sphere and measures
// the legs between them.
type Surveyor struct {
	log          *slog.Logger       // Logger for logging survey activities
	provider     geocoding.Provider // Geocoding provider for external geocoding services
	providerName string             // Name of the provider for metrics labeling
	factory      *geometry.Factory  // Factory that canonicalizes the resolved coordinates
	metrics      *metrics.Metrics   // Metrics for tracking survey performance
	numWorkers   int                // Number of concurrent geocoding requests
	radius       float64            // Radius of the sphere addresses are placed on
}

// Leg is the measured path between two consecutive locations.
type Leg struct {
	From         *models.Location
	To           *models.Location
	Distance     float64 // straight-line distance, in units of the radius
	CentralAngle float64 // radians
}

// NewSurveyor creates a new Surveyor. A numWorkers below one is treated as one.
func NewSurveyor(
	log *slog.Logger,
	provider geocoding.Provider,
	providerName string,
	factory *geometry.Factory,
	metrics *metrics.Metrics,
	numWorkers int,
	radius float64,
) *Surveyor {
	return &Surveyor{
		log:          log,
		provider:     provider,
		providerName: providerName,
		factory:      factory,
		metrics:      metrics,
		numWorkers:   max(1, numWorkers),
		radius:       radius,
	}
}

// Locate geocodes addresses concurrently and returns their locations in the
// order of addresses. The first failure cancels the remaining requests and
// is returned.
func (s *Surveyor) Locate(ctx context.Context, addresses []string) ([]*models.Location, error) {
	s.log.InfoContext(ctx, "Starting survey", "addresses", len(addresses), "num_workers", s.numWorkers)

	locations := make([]*models.Location, len(addresses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.numWorkers)

	for idx, address := range addresses {
		g.Go(func() error {
			loc, err := s.locate(gctx, address)
			if err != nil {
				return err
			}
			locations[idx] = loc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Survey finished", "addresses", len(addresses))
	return locations, nil
}

func (s *Surveyor) locate(ctx context.Context, address string) (*models.Location, error) {
	s.metrics.ActiveWorkers.Inc()
	defer s.metrics.ActiveWorkers.Dec()

	s.log.DebugContext(ctx, "Locating address", "address", address)

	startTime := time.Now()
	loc, err := geocoding.Locate(ctx, s.timedProvider(), s.factory, s.radius, address)
	s.log.DebugContext(ctx, "Address processed", "address", address, "elapsed", time.Since(startTime))

	if err != nil {
		s.log.ErrorContext(ctx, "Failed to locate address", "address", address, "error", err)
		s.metrics.AddressesProcessed.WithLabelValues("failure").Inc()
		return nil, err
	}

	s.metrics.AddressesProcessed.WithLabelValues("success").Inc()
	return loc, nil
}

// Legs measures every pair of consecutive locations. Fewer than two
// locations yield no legs.
func (s *Surveyor) Legs(locations []*models.Location) ([]Leg, error) {
	if len(locations) < 2 {
		return nil, nil
	}

	legs := make([]Leg, 0, len(locations)-1)
	for i := 1; i < len(locations); i++ {
		from, to := locations[i-1], locations[i]

		distance, err := from.Coordinate().CartesianDistance(to.Coordinate())
		if err != nil {
			return nil, fmt.Errorf("leg %d (%s -> %s): %w", i, from.Label, to.Label, err)
		}
		angle, err := from.Coordinate().CentralAngle(to.Coordinate())
		if err != nil {
			return nil, fmt.Errorf("leg %d (%s -> %s): %w", i, from.Label, to.Label, err)
		}

		legs = append(legs, Leg{From: from, To: to, Distance: distance, CentralAngle: angle})
	}

	return legs, nil
}

// timedProvider records request duration and errors of the wrapped provider.
func (s *Surveyor) timedProvider() geocoding.Provider {
	return providerFunc(func(ctx context.Context, address string) (*models.LatLng, error) {
		startTime := time.Now()
		ll, err := s.provider.Geocode(ctx, address)
		s.metrics.RequestSeconds.WithLabelValues(s.providerName).Observe(time.Since(startTime).Seconds())
		if err != nil {
			s.metrics.ProviderErrors.WithLabelValues(s.providerName).Inc()
		}
		return ll, err
	})
}

type providerFunc func(ctx context.Context, address string) (*models.LatLng, error)

func (f providerFunc) Geocode(ctx context.Context, address string) (*models.LatLng, error) {
	return f(ctx, address)
}
