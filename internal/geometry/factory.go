package geometry

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/UnknownOlympus/geocoord/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Representation labels used in logs and metrics.
const (
	kindCartesian = "cartesian"
	kindSpheric   = "spheric"
)

// Lookup results used in metrics.
const (
	resultHit      = "hit"
	resultMiss     = "miss"
	resultRejected = "rejected"
)

// Factory validates and canonicalizes coordinates. Every distinct parameter
// tuple is constructed once and shared by all later requests for the
// lifetime of the Factory. Conversions of a coordinate go through the
// Factory that created it.
//
// A Factory is safe for concurrent use.
type Factory struct {
	log        *slog.Logger
	metrics    *metrics.Metrics
	cartesians *canonicalCache[*Cartesian]
	spherics   *canonicalCache[*Spheric]
}

// NewFactory creates an empty Factory. A nil logger falls back to
// slog.Default; nil metrics are registered on a private registry.
func NewFactory(log *slog.Logger, m *metrics.Metrics) *Factory {
	if log == nil {
		log = slog.Default()
	}
	if m == nil {
		m = metrics.NewMetrics(prometheus.NewRegistry())
	}

	return &Factory{
		log:        log,
		metrics:    m,
		cartesians: newCanonicalCache[*Cartesian](),
		spherics:   newCanonicalCache[*Spheric](),
	}
}

var defaultFactory = sync.OnceValue(func() *Factory {
	return NewFactory(slog.Default(), metrics.NewMetrics(prometheus.DefaultRegisterer))
})

// Default returns the process-wide Factory. Its metrics are registered on
// prometheus.DefaultRegisterer.
func Default() *Factory {
	return defaultFactory()
}

// NewCartesian returns the canonical Cartesian coordinate for (x, y, z).
// It fails with ErrInvalidArgument if any component is NaN or infinite.
func (f *Factory) NewCartesian(x, y, z float64) (*Cartesian, error) {
	if err := validateCartesian(x, y, z); err != nil {
		f.metrics.CacheLookups.WithLabelValues(kindCartesian, resultRejected).Inc()
		return nil, fmt.Errorf("%w: cartesian(%v, %v, %v): %w", ErrInvalidArgument, x, y, z, err)
	}

	key := newTripleKey(x, y, z)
	c, hit := f.cartesians.getOrCreate(key, func() *Cartesian {
		return &Cartesian{x: key[0], y: key[1], z: key[2], factory: f}
	})
	f.observe(kindCartesian, hit, c)

	return c, nil
}

// NewSpheric returns the canonical spherical coordinate for the given
// parameters. It fails with ErrInvalidArgument unless radius >= 0,
// polarAngle is in [0, 180) and azimuthalAngle is in [0, 360), all finite.
func (f *Factory) NewSpheric(radius, polarAngle, azimuthalAngle float64) (*Spheric, error) {
	if err := validateSpheric(radius, polarAngle, azimuthalAngle); err != nil {
		f.metrics.CacheLookups.WithLabelValues(kindSpheric, resultRejected).Inc()
		return nil, fmt.Errorf("%w: spheric(%v, %v, %v): %w",
			ErrInvalidArgument, radius, polarAngle, azimuthalAngle, err)
	}

	key := newTripleKey(radius, polarAngle, azimuthalAngle)
	s, hit := f.spherics.getOrCreate(key, func() *Spheric {
		return &Spheric{radius: key[0], polar: key[1], azimuth: key[2], factory: f}
	})
	f.observe(kindSpheric, hit, s)

	return s, nil
}

// Len returns the number of canonical Cartesian and spherical instances.
func (f *Factory) Len() (cartesians, spherics int) {
	return f.cartesians.Len(), f.spherics.Len()
}

func (f *Factory) observe(kind string, hit bool, c fmt.Stringer) {
	if hit {
		f.metrics.CacheLookups.WithLabelValues(kind, resultHit).Inc()
		return
	}
	f.metrics.CacheLookups.WithLabelValues(kind, resultMiss).Inc()
	f.metrics.CacheInstances.WithLabelValues(kind).Inc()
	f.log.Debug("Canonical coordinate created", "kind", kind, "coordinate", c.String())
}

// conversionFailed wraps the constructor's rejection of a derived value.
func (f *Factory) conversionFailed(target string, from fmt.Stringer, err error) error {
	f.metrics.ConversionFailures.WithLabelValues(target).Inc()
	f.log.Debug("Conversion rejected by target constructor",
		"from", from.String(), "target", target, "error", err)

	return fmt.Errorf("%w: %s to %s: %v", ErrConversionFailed, from, target, err)
}

// internalFailure records a broken invariant or postcondition and returns err
// unchanged. These never stem from caller input.
func (f *Factory) internalFailure(op, check string, err error) error {
	f.metrics.ContractFailures.WithLabelValues(check).Inc()
	f.log.Error("Coordinate contract violated", "operation", op, "check", check, "error", err)

	return err
}
