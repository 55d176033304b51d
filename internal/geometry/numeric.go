package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"go.uber.org/multierr"
)

const (
	// DefaultEpsilon is the comparison tolerance of both representations.
	DefaultEpsilon = 1e-5

	fullTurn   = 360.0 // degrees
	polarLimit = 180.0 // degrees, exclusive
)

// IsDoubleEqual reports whether a and b differ by less than eps.
func IsDoubleEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// IsAngleEqual reports whether the angles a and b, in degrees, point in the
// same direction within eps. Both are reduced into [0, 360) first, and the
// comparison wraps, so 359.999999 and 0 are equal.
func IsAngleEqual(a, b, eps float64) bool {
	d := math.Abs(PositiveModulus(a, fullTurn) - PositiveModulus(b, fullTurn))
	return d < eps || fullTurn-d < eps
}

// PositiveModulus returns value mod m in [0, m) for m > 0.
func PositiveModulus(value, m float64) float64 {
	r := math.Mod(value, m)
	if r < 0 {
		r += m
	}
	// -tiny + m rounds to m
	if r >= m {
		r = 0
	}
	return r
}

// hypot3 returns sqrt(x²+y²+z²) without overflow for finite components
// whose true norm is representable.
func hypot3(x, y, z float64) float64 {
	return math.Hypot(math.Hypot(x, y), z)
}

func toRadians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

func toDegrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

func requireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be finite, got %v", name, v)
	}
	return nil
}

func requireNonNegative(name string, v float64) error {
	if err := requireFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%s must be >= 0, got %v", name, v)
	}
	return nil
}

// requireHalfOpen checks v against [lo, hi).
func requireHalfOpen(name string, v, lo, hi float64) error {
	if err := requireFinite(name, v); err != nil {
		return err
	}
	if v < lo || v >= hi {
		return fmt.Errorf("%s must be in [%g, %g), got %v", name, lo, hi, v)
	}
	return nil
}

// validateCartesian reports every non-finite component at once.
func validateCartesian(x, y, z float64) error {
	return multierr.Combine(
		requireFinite("x", x),
		requireFinite("y", y),
		requireFinite("z", z),
	)
}

// validateSpheric reports every out-of-range parameter at once.
func validateSpheric(radius, polar, azimuth float64) error {
	return multierr.Combine(
		requireNonNegative("radius", radius),
		requireHalfOpen("polar angle", polar, 0, polarLimit),
		requireHalfOpen("azimuthal angle", azimuth, 0, fullTurn),
	)
}
