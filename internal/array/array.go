// Package array provides the core container contracts and slice descriptors
// for the varray library.
package array

import "fmt"

// Elem is a constraint for supported element types.
// It uses Go generics to ensure compile-time type safety.
type Elem interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// Number is the subset of Elem that supports arithmetic kernels.
type Number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Float is the subset of Number with a meaningful Euclidean norm.
type Float interface {
	~float32 | ~float64
}

// Readable is the minimal capability a container must expose to be read
// by a kernel: bounded element access and a valid index range.
//
// Bounds returns the half-open range [lo, hi) of valid indices. A plain
// array has lo == 0; a sequence may start anywhere. At panics if i is
// outside [lo, hi); out-of-range element access is a programming error,
// the same contract Go slices have. Kernels validate slice bounds up
// front and return ErrRange instead of panicking.
type Readable[T Elem] interface {
	At(i int) T
	Bounds() (lo, hi int)
}

// Writable is the capability required of any kernel destination.
type Writable[T Elem] interface {
	Readable[T]
	SetAt(i int, v T)
}

// Resizable is an optional capability: containers that can grow.
// Views never satisfy it: their index mapping is defined over a fixed
// declared range.
type Resizable[T Elem] interface {
	Writable[T]
	Append(v T)
}

// Allocator is the construction hook invoked by every basic-form kernel
// that materializes a result. A custom backend (foreign-memory buffer,
// non-default collection type) implements this single interface to
// receive results from basic-form kernels.
//
// Allocators are configuration: pick one before use and pass it
// explicitly. Swapping an allocator while kernels run on it is the
// caller's race to lose.
type Allocator[T Elem] interface {
	NewArray(n int) (Writable[T], error)
}

// Len returns the number of valid indices of r.
func Len[T Elem](r Readable[T]) int {
	lo, hi := r.Bounds()
	return hi - lo
}

// AsWritable checks at the call boundary that r satisfies the Writable
// capability. arg is the 1-based argument position, reported on failure.
func AsWritable[T Elem](r Readable[T], arg int) (Writable[T], error) {
	w, ok := r.(Writable[T])
	if !ok {
		return nil, fmt.Errorf("array: argument %d lacks Writable: %w", arg, ErrContract)
	}
	return w, nil
}

// AsResizable checks at the call boundary that r satisfies the Resizable
// capability. arg is the 1-based argument position, reported on failure.
func AsResizable[T Elem](r Readable[T], arg int) (Resizable[T], error) {
	a, ok := r.(Resizable[T])
	if !ok {
		return nil, fmt.Errorf("array: argument %d lacks Resizable: %w", arg, ErrContract)
	}
	return a, nil
}
