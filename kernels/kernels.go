// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernels provides the generic array operations: copy, fill,
// element-wise maps and reductions.
//
// Each operation has a basic form that takes whole containers and
// allocates its result through an injected array.Allocator, and an
// extended "Ex" form that takes explicit slice descriptors for every
// source and destination and writes into the destination without
// allocating. Ex kernels validate every slice before the first write,
// so a failed call leaves the destination untouched.
//
// Kernels are pure, synchronous functions; elements are processed
// strictly left to right in index order, so floating-point reductions
// are reproducible. Callers sharing one mutable destination across
// concurrent Ex calls provide their own synchronization.
package kernels

import (
	"github.com/varray-dev/varray/array"
	"github.com/varray-dev/varray/internal/kernels"
)

// Copy allocates a new container and copies every valid element of src
// into it.
func Copy[T array.Elem](alloc array.Allocator[T], src array.Readable[T]) (array.Writable[T], error) {
	return kernels.Copy(alloc, src)
}

// CopyEx copies src into dst element by element; the slices must
// denote equal counts.
func CopyEx[T array.Elem](dst, src array.Slice[T]) error {
	return kernels.CopyEx(dst, src)
}

// Fill allocates a new container of n elements, all set to value.
func Fill[T array.Elem](alloc array.Allocator[T], n int, value T) (array.Writable[T], error) {
	return kernels.Fill(alloc, n, value)
}

// FillEx sets every element of dst to value.
func FillEx[T array.Elem](dst array.Slice[T], value T) error {
	return kernels.FillEx(dst, value)
}

// Reversed allocates a reversed copy of src.
func Reversed[T array.Elem](alloc array.Allocator[T], src array.Readable[T]) (array.Writable[T], error) {
	return kernels.Reversed(alloc, src)
}

// Map allocates a new container holding f applied to every element of src.
func Map[T array.Elem](alloc array.Allocator[T], src array.Readable[T], f func(T) T) (array.Writable[T], error) {
	return kernels.Map(alloc, src, f)
}

// MapEx writes f applied to every element of src into dst.
func MapEx[T array.Elem](dst, src array.Slice[T], f func(T) T) error {
	return kernels.MapEx(dst, src, f)
}

// Zip allocates a new container holding f applied pairwise to a and b.
func Zip[T array.Elem](alloc array.Allocator[T], a, b array.Readable[T], f func(T, T) T) (array.Writable[T], error) {
	return kernels.Zip(alloc, a, b, f)
}

// ZipEx writes f applied pairwise to a and b into dst.
func ZipEx[T array.Elem](dst, a, b array.Slice[T], f func(T, T) T) error {
	return kernels.ZipEx(dst, a, b, f)
}

// Add performs element-wise addition, allocating the result.
func Add[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	return kernels.Add(alloc, a, b)
}

// Sub performs element-wise subtraction, allocating the result.
func Sub[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	return kernels.Sub(alloc, a, b)
}

// Mul performs element-wise multiplication, allocating the result.
func Mul[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	return kernels.Mul(alloc, a, b)
}

// Div performs element-wise division, allocating the result.
func Div[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	return kernels.Div(alloc, a, b)
}

// AddEx performs element-wise addition into dst.
func AddEx[T array.Number](dst, a, b array.Slice[T]) error {
	return kernels.AddEx(dst, a, b)
}

// SubEx performs element-wise subtraction into dst.
func SubEx[T array.Number](dst, a, b array.Slice[T]) error {
	return kernels.SubEx(dst, a, b)
}

// MulEx performs element-wise multiplication into dst.
func MulEx[T array.Number](dst, a, b array.Slice[T]) error {
	return kernels.MulEx(dst, a, b)
}

// DivEx performs element-wise division into dst.
func DivEx[T array.Number](dst, a, b array.Slice[T]) error {
	return kernels.DivEx(dst, a, b)
}

// Scale multiplies every element of a by c, allocating the result.
func Scale[T array.Number](alloc array.Allocator[T], a array.Readable[T], c T) (array.Writable[T], error) {
	return kernels.Scale(alloc, a, c)
}

// ScaleEx multiplies every element of a by c into dst.
func ScaleEx[T array.Number](dst, a array.Slice[T], c T) error {
	return kernels.ScaleEx(dst, a, c)
}

// Sum returns the sum of every valid element of a; an empty container
// sums to zero.
func Sum[T array.Number](a array.Readable[T]) T {
	return kernels.Sum(a)
}

// SumEx returns the sum over the slice.
func SumEx[T array.Number](s array.Slice[T]) (T, error) {
	return kernels.SumEx(s)
}

// Prod returns the product of every valid element of a; an empty
// container multiplies to one.
func Prod[T array.Number](a array.Readable[T]) T {
	return kernels.Prod(a)
}

// ProdEx returns the product over the slice.
func ProdEx[T array.Number](s array.Slice[T]) (T, error) {
	return kernels.ProdEx(s)
}

// Min returns the smallest element of a; empty input is an array.ErrDomain.
func Min[T array.Number](a array.Readable[T]) (T, error) {
	return kernels.Min(a)
}

// MinEx returns the smallest element over the slice.
func MinEx[T array.Number](s array.Slice[T]) (T, error) {
	return kernels.MinEx(s)
}

// Max returns the largest element of a; empty input is an array.ErrDomain.
func Max[T array.Number](a array.Readable[T]) (T, error) {
	return kernels.Max(a)
}

// MaxEx returns the largest element over the slice.
func MaxEx[T array.Number](s array.Slice[T]) (T, error) {
	return kernels.MaxEx(s)
}
