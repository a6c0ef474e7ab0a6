// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package views provides zero-copy adapters that remap index access
// over underlying containers: reversed, strided, constant and joined
// views. A view satisfies the same capability contracts as any other
// container, so views compose with each other and flow through every
// kernel unchanged: copy through a Reverse view is a reversal copy.
//
// All views are fixed-length. A view over a writable source is itself
// writable (except Const); no view is ever Resizable. The source must
// outlive the view, and mutating a source through another alias while
// a kernel iterates the view is undefined.
package views

import (
	"github.com/varray-dev/varray/array"
	"github.com/varray-dev/varray/internal/views"
)

// Reverse returns a view presenting src in reverse index order.
func Reverse[T array.Elem](src array.Readable[T]) array.Readable[T] {
	return views.Reverse(src)
}

// Stride returns a view of count elements of src at source indices
// base, base+stride, base+2*stride, and so on.
func Stride[T array.Elem](src array.Readable[T], base, stride, count int) array.Readable[T] {
	return views.Stride(src, base, stride, count)
}

// Const returns a read-only view of n elements that all read as value.
func Const[T array.Elem](value T, n int) array.Readable[T] {
	return views.Const(value, n)
}

// Join returns a view concatenating sources in order; its length is
// the sum of the source lengths.
func Join[T array.Elem](sources ...array.Readable[T]) array.Readable[T] {
	return views.Join(sources...)
}
