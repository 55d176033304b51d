package geometry

import "errors"

// Sentinel errors for geometry operations. Match them with errors.Is.
var (
	// ErrInvalidArgument indicates a nil peer coordinate, a non-finite scalar,
	// or an out-of-range spherical parameter supplied by the caller.
	ErrInvalidArgument = errors.New("geometry: invalid argument")
	// ErrConversionFailed indicates that a derived representation was rejected
	// by the target constructor, typically at a range boundary.
	ErrConversionFailed = errors.New("geometry: conversion failed")
	// ErrInvariantViolated indicates that a coordinate's stored fields are out
	// of range or non-finite. It is never caused by caller input.
	ErrInvariantViolated = errors.New("geometry: class invariant violated")
	// ErrContractViolated indicates that an operation produced a result
	// outside its documented range. It is never caused by caller input.
	ErrContractViolated = errors.New("geometry: postcondition violated")
)

// IsInternal reports whether err signals a broken invariant or postcondition
// rather than a caller mistake.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInvariantViolated) || errors.Is(err, ErrContractViolated)
}
