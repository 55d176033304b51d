package geometry

import (
	"fmt"
	"math"
)

// Labels for the contract checks that can fail.
const (
	checkInvariant     = "invariant"
	checkPostcondition = "postcondition"
)

// requirePeer is the precondition shared by every binary operation.
func requirePeer(other Coordinate) error {
	if IsNil(other) {
		return fmt.Errorf("%w: peer coordinate is nil", ErrInvalidArgument)
	}
	return nil
}

// guarded runs fn between two invariant checks of self. The invariants can
// only fail when a value was built without going through a Factory.
func guarded[T any](self Coordinate, op string, fn func() (T, error)) (T, error) {
	var zero T
	if IsNil(self) {
		return zero, fmt.Errorf("%w: %s on nil coordinate", ErrInvalidArgument, op)
	}

	if err := self.checkInvariants(); err != nil {
		return zero, self.owner().internalFailure(op, checkInvariant, err)
	}

	res, err := fn()
	if err != nil {
		return zero, err
	}

	if err = self.checkInvariants(); err != nil {
		return zero, self.owner().internalFailure(op, checkInvariant, err)
	}

	return res, nil
}

func asCartesian(self Coordinate) (*Cartesian, error) {
	const op = "as cartesian"
	return guarded(self, op, func() (*Cartesian, error) {
		c, err := self.doAsCartesian()
		if err != nil {
			return nil, err
		}
		if err = ensureConverted(c); err != nil {
			return nil, self.owner().internalFailure(op, checkPostcondition, err)
		}
		return c, nil
	})
}

func asSpheric(self Coordinate) (*Spheric, error) {
	const op = "as spheric"
	return guarded(self, op, func() (*Spheric, error) {
		s, err := self.doAsSpheric()
		if err != nil {
			return nil, err
		}
		if err = ensureConverted(s); err != nil {
			return nil, self.owner().internalFailure(op, checkPostcondition, err)
		}
		return s, nil
	})
}

// ensureConverted is the postcondition of both conversions.
func ensureConverted(c Coordinate) error {
	if IsNil(c) {
		return fmt.Errorf("%w: conversion returned nil", ErrContractViolated)
	}
	if err := c.checkInvariants(); err != nil {
		return fmt.Errorf("%w: conversion result: %v", ErrContractViolated, err)
	}
	return nil
}

func isEqual(self, other Coordinate) (bool, error) {
	if err := requirePeer(other); err != nil {
		return false, err
	}
	return guarded(self, "is equal", func() (bool, error) {
		return self.doIsEqual(other)
	})
}

func cartesianDistance(self, other Coordinate) (float64, error) {
	const op = "cartesian distance"
	if err := requirePeer(other); err != nil {
		return 0, err
	}
	return guarded(self, op, func() (float64, error) {
		a, err := self.doAsCartesian()
		if err != nil {
			return 0, err
		}
		b, err := other.AsCartesian()
		if err != nil {
			return 0, err
		}

		diff := a.vector().Sub(b.vector())
		d := hypot3(diff.X, diff.Y, diff.Z)
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return 0, self.owner().internalFailure(op, checkPostcondition,
				fmt.Errorf("%w: distance %v is not a finite non-negative number", ErrContractViolated, d))
		}
		return d, nil
	})
}

func centralAngle(self, other Coordinate) (float64, error) {
	const op = "central angle"
	if err := requirePeer(other); err != nil {
		return 0, err
	}
	return guarded(self, op, func() (float64, error) {
		a, err := self.doAsSpheric()
		if err != nil {
			return 0, err
		}
		b, err := other.AsSpheric()
		if err != nil {
			return 0, err
		}

		angle := 2 * math.Asin(math.Sqrt(haversine(a, b)))
		if math.IsNaN(angle) || angle < 0 || angle > math.Pi {
			return 0, self.owner().internalFailure(op, checkPostcondition,
				fmt.Errorf("%w: central angle %v is outside [0, π]", ErrContractViolated, angle))
		}
		return angle, nil
	})
}

// haversine returns the haversine of the central angle between a and b,
// clamped into [0, 1]. The azimuth difference takes the latitude slot of
// the textbook formula and the polar angles the longitude slot.
func haversine(a, b *Spheric) float64 {
	halfPolar := toRadians(math.Abs(a.polar-b.polar)) / 2
	halfAzimuth := toRadians(math.Abs(a.azimuth-b.azimuth)) / 2

	h := math.Pow(math.Sin(halfAzimuth), 2) +
		math.Cos(toRadians(a.polar))*math.Cos(toRadians(b.polar))*math.Pow(math.Sin(halfPolar), 2)

	// cos(polar) goes negative past 90°, so h can leave [0, 1]
	return math.Max(0, math.Min(1, h))
}
