// Package geometry implements immutable points in 3-D space in two
// interchangeable representations: Cartesian (x, y, z) and spherical
// (radius, polar angle, azimuthal angle, in degrees).
//
// Every representation satisfies the sealed Coordinate interface. Distance,
// central angle and equality are implemented once, in the shared contract
// layer, on top of two per-representation conversion primitives. Each
// public operation checks its arguments, the receiver's invariants before
// and after the call, and its own numeric result.
//
// Values are obtained through a Factory, which canonicalizes them: two
// requests for the same parameter tuple return the same pointer. The
// package-level NewCartesian and NewSpheric use the process-wide Default
// factory.
//
// Errors fall in two groups. ErrInvalidArgument and ErrConversionFailed are
// caller-facing and recoverable. ErrInvariantViolated and
// ErrContractViolated mean the package itself is broken; they are logged at
// error level, counted, and reported by IsInternal.
package geometry
