package kernels

import (
	"fmt"

	"github.com/varray-dev/varray/internal/array"
)

// Reductions fold strictly left to right in index order. For floating
// point elements the accumulation order is therefore part of the
// contract, not an implementation detail.

// Sum returns the sum of every valid element of a. The sum of an empty
// container is zero.
func Sum[T array.Number](a array.Readable[T]) T {
	s, _ := SumEx(array.All(a))
	return s
}

// SumEx returns the sum over the slice.
func SumEx[T array.Number](s array.Slice[T]) (T, error) {
	start, count, err := s.Resolve()
	if err != nil {
		return 0, fmt.Errorf("kernels: sum: %w", err)
	}
	var acc T
	for k := 0; k < count; k++ {
		acc += s.Source.At(start + k)
	}
	return acc, nil
}

// Prod returns the product of every valid element of a. The product of
// an empty container is one.
func Prod[T array.Number](a array.Readable[T]) T {
	p, _ := ProdEx(array.All(a))
	return p
}

// ProdEx returns the product over the slice.
func ProdEx[T array.Number](s array.Slice[T]) (T, error) {
	start, count, err := s.Resolve()
	if err != nil {
		return 0, fmt.Errorf("kernels: prod: %w", err)
	}
	acc := T(1)
	for k := 0; k < count; k++ {
		acc *= s.Source.At(start + k)
	}
	return acc, nil
}

// Min returns the smallest element of a. The minimum of an empty
// container is undefined.
func Min[T array.Number](a array.Readable[T]) (T, error) {
	return MinEx(array.All(a))
}

// MinEx returns the smallest element over the slice.
func MinEx[T array.Number](s array.Slice[T]) (T, error) {
	start, count, err := s.Resolve()
	if err != nil {
		return 0, fmt.Errorf("kernels: min: %w", err)
	}
	if count == 0 {
		return 0, fmt.Errorf("kernels: min of empty slice: %w", array.ErrDomain)
	}
	acc := s.Source.At(start)
	for k := 1; k < count; k++ {
		if v := s.Source.At(start + k); v < acc {
			acc = v
		}
	}
	return acc, nil
}

// Max returns the largest element of a. The maximum of an empty
// container is undefined.
func Max[T array.Number](a array.Readable[T]) (T, error) {
	return MaxEx(array.All(a))
}

// MaxEx returns the largest element over the slice.
func MaxEx[T array.Number](s array.Slice[T]) (T, error) {
	start, count, err := s.Resolve()
	if err != nil {
		return 0, fmt.Errorf("kernels: max: %w", err)
	}
	if count == 0 {
		return 0, fmt.Errorf("kernels: max of empty slice: %w", array.ErrDomain)
	}
	acc := s.Source.At(start)
	for k := 1; k < count; k++ {
		if v := s.Source.At(start + k); v > acc {
			acc = v
		}
	}
	return acc, nil
}
