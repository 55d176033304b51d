package models

import (
	"fmt"

	"github.com/UnknownOlympus/geocoord/internal/geometry"
)

// Location associates a label, such as the address it was resolved from, with
// exactly one coordinate. The coordinate is shared by reference and never
// modified through the Location.
type Location struct {
	Label      string
	coordinate geometry.Coordinate
}

// NewLocation returns a Location for c. It fails with
// geometry.ErrInvalidArgument if c is nil.
func NewLocation(label string, c geometry.Coordinate) (*Location, error) {
	if geometry.IsNil(c) {
		return nil, fmt.Errorf("%w: location %q has no coordinate", geometry.ErrInvalidArgument, label)
	}
	return &Location{Label: label, coordinate: c}, nil
}

// Coordinate returns the coordinate of the location.
func (l *Location) Coordinate() geometry.Coordinate {
	return l.coordinate
}
