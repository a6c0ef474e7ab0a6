// Package linalg implements vector and matrix kernels over slice
// descriptors. Vectors are flattened numeric containers; matrices are
// flattened containers in column-major order. The package introduces
// no storage model of its own; it is layered strictly on the array
// kernels and the fixed-arity fast paths.
package linalg

import (
	"fmt"
	"math"

	"github.com/varray-dev/varray/internal/array"
	"github.com/varray-dev/varray/internal/kernels"
)

// Dot returns the inner product of a and b, accumulated left to right.
// The slices must denote equal counts.
func Dot[T array.Number](a, b array.Slice[T]) (T, error) {
	aStart, aCount, err := a.Resolve()
	if err != nil {
		return 0, fmt.Errorf("linalg: dot: %w", err)
	}
	bStart, bCount, err := b.Resolve()
	if err != nil {
		return 0, fmt.Errorf("linalg: dot: %w", err)
	}
	if aCount != bCount {
		return 0, fmt.Errorf("linalg: dot: counts %d and %d: %w", aCount, bCount, array.ErrLengthMismatch)
	}
	var acc T
	for k := 0; k < aCount; k++ {
		acc += a.Source.At(aStart+k) * b.Source.At(bStart+k)
	}
	return acc, nil
}

// Norm returns the Euclidean length of s.
func Norm[T array.Float](s array.Slice[T]) (T, error) {
	sq, err := Dot(s, s)
	if err != nil {
		return 0, fmt.Errorf("linalg: norm: %w", err)
	}
	return T(math.Sqrt(float64(sq))), nil
}

// Normalize divides src by its Euclidean length, allocating the
// result. Normalizing a zero vector is an ErrDomain, never a silent
// division.
func Normalize[T array.Float](alloc array.Allocator[T], src array.Readable[T]) (array.Writable[T], error) {
	dst, err := alloc.NewArray(array.Len(src))
	if err != nil {
		return nil, fmt.Errorf("linalg: normalize: %w", err)
	}
	if err := NormalizeEx(array.All[T](dst), array.All(src)); err != nil {
		return nil, err
	}
	return dst, nil
}

// NormalizeEx writes src divided by its Euclidean length into dst.
func NormalizeEx[T array.Float](dst, src array.Slice[T]) error {
	n, err := Norm(src)
	if err != nil {
		return fmt.Errorf("linalg: normalize: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("linalg: normalize of zero vector: %w", array.ErrDomain)
	}
	if err := kernels.ScaleEx(dst, src, 1/n); err != nil {
		return fmt.Errorf("linalg: normalize: %w", err)
	}
	return nil
}

// Cross allocates the cross product of a and b, which must both have
// exactly 3 elements.
func Cross[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	dst, err := alloc.NewArray(3)
	if err != nil {
		return nil, fmt.Errorf("linalg: cross: %w", err)
	}
	if err := CrossEx(array.All[T](dst), array.All(a), array.All(b)); err != nil {
		return nil, err
	}
	return dst, nil
}

// CrossEx writes the cross product of a and b into dst. All three
// slices must denote exactly 3 elements; the cross product is not
// defined for any other count.
func CrossEx[T array.Number](dst, a, b array.Slice[T]) error {
	w, dstStart, dstCount, err := dst.ResolveWritable(1)
	if err != nil {
		return fmt.Errorf("linalg: cross: %w", err)
	}
	aStart, aCount, err := a.Resolve()
	if err != nil {
		return fmt.Errorf("linalg: cross: %w", err)
	}
	bStart, bCount, err := b.Resolve()
	if err != nil {
		return fmt.Errorf("linalg: cross: %w", err)
	}
	if dstCount != 3 || aCount != 3 || bCount != 3 {
		return fmt.Errorf("linalg: cross requires count 3, got %d, %d, %d: %w",
			dstCount, aCount, bCount, array.ErrDomain)
	}
	a0, a1, a2 := a.Source.At(aStart), a.Source.At(aStart+1), a.Source.At(aStart+2)
	b0, b1, b2 := b.Source.At(bStart), b.Source.At(bStart+1), b.Source.At(bStart+2)
	w.SetAt(dstStart, a1*b2-a2*b1)
	w.SetAt(dstStart+1, a2*b0-a0*b2)
	w.SetAt(dstStart+2, a0*b1-a1*b0)
	return nil
}
