package geometry

// Coordinate is an immutable point in 3-D Euclidean space. The set of
// implementations is closed: *Cartesian and *Spheric.
type Coordinate interface {
	// AsCartesian returns the Cartesian representation of the point.
	AsCartesian() (*Cartesian, error)
	// AsSpheric returns the spherical representation of the point.
	AsSpheric() (*Spheric, error)
	// IsEqual reports whether both coordinates denote the same point within
	// epsilon.
	IsEqual(other Coordinate) (bool, error)
	// CartesianDistance returns the Euclidean distance between both points.
	CartesianDistance(other Coordinate) (float64, error)
	// CentralAngle returns the haversine angular separation, in radians, in
	// [0, π]. It fails with ErrConversionFailed when either point lies on
	// the negative z-axis.
	CentralAngle(other Coordinate) (float64, error)
	// Epsilon returns the tolerance used by the representation's comparisons.
	Epsilon() float64

	doAsCartesian() (*Cartesian, error)
	doAsSpheric() (*Spheric, error)
	doIsEqual(other Coordinate) (bool, error)
	checkInvariants() error
	owner() *Factory
	isNil() bool
}

// IsNil reports whether c is nil or a typed nil pointer.
func IsNil(c Coordinate) bool {
	return c == nil || c.isNil()
}
