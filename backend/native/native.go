// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package native provides the default container backend: Go-slice
// backed arrays and sequences, and the allocator that materializes
// basic-form kernel results as Dense containers.
//
// Example:
//
//	alloc := native.Alloc[float32]()
//	a := native.FromSlice([]float32{1, 2, 3})
//	out, err := kernels.Copy[float32](alloc, a)
package native

import (
	"github.com/varray-dev/varray/array"
	"github.com/varray-dev/varray/internal/backend/native"
)

// Dense is the default concrete container: valid indices [0, n),
// Readable, Writable and Resizable.
type Dense[T array.Elem] = native.Dense[T]

// Seq is a sequence container valid over an arbitrary half-open index
// range fixed at creation.
type Seq[T array.Elem] = native.Seq[T]

// Allocator is the native construction hook.
type Allocator[T array.Elem] = native.Allocator[T]

// NewDense creates a zeroed Dense of length n.
func NewDense[T array.Elem](n int) *Dense[T] {
	return native.NewDense[T](n)
}

// FromSlice creates a Dense that adopts data without copying.
func FromSlice[T array.Elem](data []T) *Dense[T] {
	return native.FromSlice(data)
}

// NewSeq creates a zeroed sequence valid over [lo, hi).
func NewSeq[T array.Elem](lo, hi int) (*Seq[T], error) {
	return native.NewSeq[T](lo, hi)
}

// SeqFromSlice creates a sequence over [lo, lo+len(data)) adopting data.
func SeqFromSlice[T array.Elem](lo int, data []T) *Seq[T] {
	return native.SeqFromSlice(lo, data)
}

// Alloc returns the native allocator.
func Alloc[T array.Elem]() Allocator[T] {
	return native.Alloc[T]()
}
