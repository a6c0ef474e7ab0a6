// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array defines the capability contracts and slice descriptors
// at the heart of the varray library.
//
// There is no common base container type. Any object satisfying the
// needed capability for a given call qualifies:
//   - Readable[T]: bounded indexed read plus a valid-range query
//   - Writable[T]: Readable plus bounded indexed write
//   - Resizable[T]: Writable plus append
//
// Kernels address sub-ranges uniformly through Slice descriptors and
// materialize basic-form results through an injected Allocator, the
// single interface a custom backend must implement.
//
// Example:
//
//	alloc := native.Alloc[float32]()
//	a := native.FromSlice([]float32{1, 2, 3})
//	b := native.FromSlice([]float32{3, 4, 5})
//	sum, err := kernels.Add[float32](alloc, a, b) // {4, 6, 8}
package array

import (
	"github.com/varray-dev/varray/internal/array"
)

// Element type constraints.

// Elem is a constraint for supported element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type Elem = array.Elem

// Number is the subset of Elem that supports arithmetic kernels.
type Number = array.Number

// Float is the subset of Number with a meaningful Euclidean norm.
type Float = array.Float

// Capability contracts.

// Readable is the minimal capability a kernel source must satisfy.
type Readable[T Elem] = array.Readable[T]

// Writable is the capability required of any kernel destination.
type Writable[T Elem] = array.Writable[T]

// Resizable is the optional grow capability. Views never satisfy it.
type Resizable[T Elem] = array.Resizable[T]

// Allocator is the construction hook invoked by basic-form kernels.
type Allocator[T Elem] = array.Allocator[T]

// Slice is a (container, start, count) descriptor addressing a
// sub-range of any Readable container.
type Slice[T Elem] = array.Slice[T]

// Rest as a slice count means "every remaining valid index from Start".
const Rest = array.Rest

// Error kinds. All errors returned by varray wrap exactly one of these.
var (
	ErrContract       = array.ErrContract
	ErrLengthMismatch = array.ErrLengthMismatch
	ErrRange          = array.ErrRange
	ErrDomain         = array.ErrDomain
)

// All describes every valid index of src.
func All[T Elem](src Readable[T]) Slice[T] {
	return array.All(src)
}

// From describes the range of src from start to the end of its valid range.
func From[T Elem](src Readable[T], start int) Slice[T] {
	return array.From(src, start)
}

// Span describes exactly count indices of src beginning at start.
func Span[T Elem](src Readable[T], start, count int) Slice[T] {
	return array.Span(src, start, count)
}

// Len returns the number of valid indices of r.
func Len[T Elem](r Readable[T]) int {
	return array.Len(r)
}

// AsWritable checks that r satisfies the Writable capability; arg is
// the 1-based argument position reported in the error on failure.
func AsWritable[T Elem](r Readable[T], arg int) (Writable[T], error) {
	return array.AsWritable(r, arg)
}

// AsResizable checks that r satisfies the Resizable capability.
func AsResizable[T Elem](r Readable[T], arg int) (Resizable[T], error) {
	return array.AsResizable(r, arg)
}

// Nest converts a flattened slice into rows × cols nested rows.
func Nest[T Elem](flat []T, rows, cols int) ([][]T, error) {
	return array.Nest(flat, rows, cols)
}

// Flatten converts nested rows back into a single flattened slice.
func Flatten[T Elem](nested [][]T) ([]T, error) {
	return array.Flatten(nested)
}
