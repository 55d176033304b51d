package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Cartesian is a point given by its offsets along three orthogonal axes.
// Obtain values through a Factory; the zero value is the origin.
type Cartesian struct {
	x, y, z float64
	factory *Factory
}

// NewCartesian returns the canonical Cartesian coordinate for (x, y, z) from
// the Default factory.
func NewCartesian(x, y, z float64) (*Cartesian, error) {
	return Default().NewCartesian(x, y, z)
}

// X returns the position on the x-axis.
func (c *Cartesian) X() float64 { return c.x }

// Y returns the position on the y-axis.
func (c *Cartesian) Y() float64 { return c.y }

// Z returns the position on the z-axis.
func (c *Cartesian) Z() float64 { return c.z }

// Position returns x, y and z in that order.
func (c *Cartesian) Position() [3]float64 {
	return [3]float64{c.x, c.y, c.z}
}

func (c *Cartesian) String() string {
	return fmt.Sprintf("cartesian(%g, %g, %g)", c.x, c.y, c.z)
}

// Epsilon returns the tolerance used by Cartesian comparisons.
func (c *Cartesian) Epsilon() float64 { return DefaultEpsilon }

// AsCartesian returns c itself.
func (c *Cartesian) AsCartesian() (*Cartesian, error) { return asCartesian(c) }

// AsSpheric converts c to spherical form. A point on the negative z-axis has
// a polar angle of exactly 180°, which Spheric rejects; that case fails with
// ErrConversionFailed.
func (c *Cartesian) AsSpheric() (*Spheric, error) { return asSpheric(c) }

// IsEqual compares componentwise against the Cartesian projection of other.
func (c *Cartesian) IsEqual(other Coordinate) (bool, error) { return isEqual(c, other) }

// CartesianDistance returns the Euclidean distance between c and other.
func (c *Cartesian) CartesianDistance(other Coordinate) (float64, error) {
	return cartesianDistance(c, other)
}

// CentralAngle returns the angular separation between c and other in radians.
// A Cartesian on the negative z-axis on either side has no spheric form, so
// the call fails with ErrConversionFailed.
func (c *Cartesian) CentralAngle(other Coordinate) (float64, error) {
	return centralAngle(c, other)
}

func (c *Cartesian) doAsCartesian() (*Cartesian, error) { return c, nil }

func (c *Cartesian) doAsSpheric() (*Spheric, error) {
	eps := c.Epsilon()
	radius := hypot3(c.x, c.y, c.z)

	polar := 90.0
	if !IsDoubleEqual(c.z, 0, eps) {
		polar = toDegrees(math.Atan2(math.Hypot(c.x, c.y), c.z))
	}

	// on the z-axis the azimuth is undefined
	azimuth := 90.0
	if !IsDoubleEqual(c.x, 0, eps) || !IsDoubleEqual(c.y, 0, eps) {
		azimuth = PositiveModulus(toDegrees(math.Atan2(c.y, c.x)), fullTurn)
	}

	s, err := c.owner().NewSpheric(radius, polar, azimuth)
	if err != nil {
		return nil, c.owner().conversionFailed(kindSpheric, c, err)
	}
	return s, nil
}

func (c *Cartesian) doIsEqual(other Coordinate) (bool, error) {
	o, err := other.AsCartesian()
	if err != nil {
		return false, err
	}

	eps := c.Epsilon()
	return IsDoubleEqual(c.x, o.x, eps) &&
		IsDoubleEqual(c.y, o.y, eps) &&
		IsDoubleEqual(c.z, o.z, eps), nil
}

func (c *Cartesian) checkInvariants() error {
	if err := validateCartesian(c.x, c.y, c.z); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvariantViolated, c, err)
	}
	return nil
}

func (c *Cartesian) owner() *Factory {
	if c.factory == nil {
		return Default()
	}
	return c.factory
}

func (c *Cartesian) isNil() bool { return c == nil }

func (c *Cartesian) vector() r3.Vector {
	return r3.Vector{X: c.x, Y: c.y, Z: c.z}
}
