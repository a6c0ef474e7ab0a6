package array

import "errors"

var (
	// ErrContract indicates an argument lacks a required capability.
	ErrContract = errors.New("array: required capability not satisfied")
	// ErrLengthMismatch indicates slice or array counts disagree where equality is required.
	ErrLengthMismatch = errors.New("array: element counts differ")
	// ErrRange indicates a slice addresses indices outside its container's valid range.
	ErrRange = errors.New("array: slice exceeds container bounds")
	// ErrDomain indicates a numerically undefined operation, such as
	// normalizing a zero vector.
	ErrDomain = errors.New("array: operation undefined for input")
)
