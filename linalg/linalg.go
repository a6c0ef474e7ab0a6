// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides vector and matrix kernels over flattened
// containers, plus fixed-size fast paths and thin Vec/Mat façade
// types for the common 2-, 3- and 4-element cases.
//
// Matrices are flattened in column-major order: an R×C matrix occupies
// C*R contiguous slots with column c's elements at slots c*R .. c*R+R-1.
//
// Every kernel has a basic form that allocates its result through an
// injected array.Allocator and an extended "Ex" form that writes into
// a caller-supplied destination slice without allocating.
package linalg

import (
	"github.com/varray-dev/varray/array"
	"github.com/varray-dev/varray/internal/linalg"
)

// Dot returns the inner product of a and b, accumulated left to right.
func Dot[T array.Number](a, b array.Slice[T]) (T, error) {
	return linalg.Dot(a, b)
}

// Norm returns the Euclidean length of s.
func Norm[T array.Float](s array.Slice[T]) (T, error) {
	return linalg.Norm(s)
}

// Normalize divides src by its Euclidean length, allocating the result.
// Normalizing a zero vector fails with array.ErrDomain.
func Normalize[T array.Float](alloc array.Allocator[T], src array.Readable[T]) (array.Writable[T], error) {
	return linalg.Normalize(alloc, src)
}

// NormalizeEx writes src divided by its Euclidean length into dst.
func NormalizeEx[T array.Float](dst, src array.Slice[T]) error {
	return linalg.NormalizeEx(dst, src)
}

// Cross allocates the cross product of a and b, which must both have
// exactly 3 elements.
func Cross[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	return linalg.Cross(alloc, a, b)
}

// CrossEx writes the cross product of a and b into dst. Any count
// other than 3 fails with array.ErrDomain.
func CrossEx[T array.Number](dst, a, b array.Slice[T]) error {
	return linalg.CrossEx(dst, a, b)
}

// Transpose allocates the transpose of the rows × cols matrix src.
func Transpose[T array.Elem](alloc array.Allocator[T], src array.Readable[T], rows, cols int) (array.Writable[T], error) {
	return linalg.Transpose(alloc, src, rows, cols)
}

// TransposeEx writes the transpose of the rows × cols matrix src into
// dst, a cols × rows matrix.
func TransposeEx[T array.Elem](dst, src array.Slice[T], rows, cols int) error {
	return linalg.TransposeEx(dst, src, rows, cols)
}

// MatMul allocates the product of a (r × k) and b (k × c).
func MatMul[T array.Number](alloc array.Allocator[T], a, b array.Readable[T], r, k, c int) (array.Writable[T], error) {
	return linalg.MatMul(alloc, a, b, r, k, c)
}

// MatMulEx writes the product of a (r × k) and b (k × c) into dst (r × c).
func MatMulEx[T array.Number](dst, a, b array.Slice[T], r, k, c int) error {
	return linalg.MatMulEx(dst, a, b, r, k, c)
}
