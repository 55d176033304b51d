package geometry

import (
	"fmt"
	"math"
)

// Spheric is a point given by its distance from the origin, its polar angle
// from the z-axis in [0, 180) and its azimuthal angle in the xy-plane in
// [0, 360). Angles are in degrees.
type Spheric struct {
	radius  float64
	polar   float64
	azimuth float64
	factory *Factory
}

// NewSpheric returns the canonical spherical coordinate for the given
// parameters from the Default factory.
func NewSpheric(radius, polarAngle, azimuthalAngle float64) (*Spheric, error) {
	return Default().NewSpheric(radius, polarAngle, azimuthalAngle)
}

// Radius returns the distance from the origin.
func (s *Spheric) Radius() float64 { return s.radius }

// PolarAngle returns the angle from the z-axis in degrees.
func (s *Spheric) PolarAngle() float64 { return s.polar }

// AzimuthalAngle returns the angle around the z-axis in degrees.
func (s *Spheric) AzimuthalAngle() float64 { return s.azimuth }

func (s *Spheric) String() string {
	return fmt.Sprintf("spheric(r=%g, polar=%g°, azimuth=%g°)", s.radius, s.polar, s.azimuth)
}

// Epsilon returns the tolerance used by spherical comparisons.
func (s *Spheric) Epsilon() float64 { return DefaultEpsilon }

// AsCartesian converts s to Cartesian form.
func (s *Spheric) AsCartesian() (*Cartesian, error) { return asCartesian(s) }

// AsSpheric returns s itself.
func (s *Spheric) AsSpheric() (*Spheric, error) { return asSpheric(s) }

// IsEqual compares radius and angles against another Spheric. Two points with
// a radius of about zero are equal whatever their angles. Against a
// Cartesian peer the comparison happens in Cartesian space.
func (s *Spheric) IsEqual(other Coordinate) (bool, error) { return isEqual(s, other) }

// CartesianDistance returns the Euclidean distance between s and other.
func (s *Spheric) CartesianDistance(other Coordinate) (float64, error) {
	return cartesianDistance(s, other)
}

// CentralAngle returns the angular separation between s and other in radians.
// A Cartesian on the negative z-axis on either side has no spheric form, so
// the call fails with ErrConversionFailed.
func (s *Spheric) CentralAngle(other Coordinate) (float64, error) {
	return centralAngle(s, other)
}

func (s *Spheric) doAsCartesian() (*Cartesian, error) {
	polar := toRadians(s.polar)
	azimuth := toRadians(s.azimuth)

	x := s.radius * math.Sin(polar) * math.Cos(azimuth)
	y := s.radius * math.Sin(polar) * math.Sin(azimuth)
	z := s.radius * math.Cos(polar)

	c, err := s.owner().NewCartesian(x, y, z)
	if err != nil {
		return nil, s.owner().conversionFailed(kindCartesian, s, err)
	}
	return c, nil
}

func (s *Spheric) doAsSpheric() (*Spheric, error) { return s, nil }

func (s *Spheric) doIsEqual(other Coordinate) (bool, error) {
	o, ok := other.(*Spheric)
	if !ok {
		// mixed representations compare in Cartesian space so that
		// a.IsEqual(b) == b.IsEqual(a)
		self, err := s.doAsCartesian()
		if err != nil {
			return false, err
		}
		return self.doIsEqual(other)
	}

	if err := o.checkInvariants(); err != nil {
		return false, o.owner().internalFailure("is equal", checkInvariant, err)
	}

	eps := s.Epsilon()
	if !IsDoubleEqual(s.radius, o.radius, eps) {
		return false, nil
	}
	if IsDoubleEqual(s.radius, 0, eps) || IsDoubleEqual(o.radius, 0, eps) {
		return true, nil
	}
	return IsAngleEqual(s.polar, o.polar, eps) && IsAngleEqual(s.azimuth, o.azimuth, eps), nil
}

func (s *Spheric) checkInvariants() error {
	if err := validateSpheric(s.radius, s.polar, s.azimuth); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvariantViolated, s, err)
	}
	return nil
}

func (s *Spheric) owner() *Factory {
	if s.factory == nil {
		return Default()
	}
	return s.factory
}

func (s *Spheric) isNil() bool { return s == nil }
