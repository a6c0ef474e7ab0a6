// Package native implements the default container backend: Go-slice
// backed arrays and sequences, and the allocator basic-form kernels use
// unless the caller injects another backend.
package native

import (
	"fmt"

	"github.com/varray-dev/varray/internal/array"
)

// Verify capability conformance.
var (
	_ array.Resizable[float32] = (*Dense[float32])(nil)
	_ array.Writable[float32]  = (*Seq[float32])(nil)
	_ array.Allocator[float32] = Allocator[float32]{}
)

// Dense is the default concrete container: a Go slice with valid
// indices [0, n). It satisfies Readable, Writable and Resizable.
type Dense[T array.Elem] struct {
	data []T
}

// NewDense creates a zeroed Dense of length n.
func NewDense[T array.Elem](n int) *Dense[T] {
	return &Dense[T]{data: make([]T, n)}
}

// FromSlice creates a Dense that adopts data without copying.
func FromSlice[T array.Elem](data []T) *Dense[T] {
	return &Dense[T]{data: data}
}

// At returns the element at index i.
func (d *Dense[T]) At(i int) T { return d.data[i] }

// SetAt sets the element at index i.
func (d *Dense[T]) SetAt(i int, v T) { d.data[i] = v }

// Bounds returns the valid index range [0, n).
func (d *Dense[T]) Bounds() (lo, hi int) { return 0, len(d.data) }

// Append grows the container by one element.
func (d *Dense[T]) Append(v T) { d.data = append(d.data, v) }

// Data returns the underlying slice without copying.
// Modifications to the returned slice modify the container.
func (d *Dense[T]) Data() []T { return d.data }

// Seq is a sequence container: valid over an arbitrary half-open index
// range [lo, hi) fixed at creation. It is Writable but never Resizable;
// the range is part of its identity.
type Seq[T array.Elem] struct {
	lo   int
	data []T
}

// NewSeq creates a zeroed sequence valid over [lo, hi).
func NewSeq[T array.Elem](lo, hi int) (*Seq[T], error) {
	if hi < lo {
		return nil, fmt.Errorf("native: sequence range [%d, %d) is inverted: %w", lo, hi, array.ErrRange)
	}
	return &Seq[T]{lo: lo, data: make([]T, hi-lo)}, nil
}

// SeqFromSlice creates a sequence over [lo, lo+len(data)) adopting data.
func SeqFromSlice[T array.Elem](lo int, data []T) *Seq[T] {
	return &Seq[T]{lo: lo, data: data}
}

// At returns the element at index i.
func (s *Seq[T]) At(i int) T { return s.data[i-s.lo] }

// SetAt sets the element at index i.
func (s *Seq[T]) SetAt(i int, v T) { s.data[i-s.lo] = v }

// Bounds returns the valid index range [lo, hi).
func (s *Seq[T]) Bounds() (lo, hi int) { return s.lo, s.lo + len(s.data) }

// Allocator is the native construction hook: basic-form kernels handed
// this allocator materialize their results as Dense containers.
type Allocator[T array.Elem] struct{}

// Alloc returns the native allocator.
func Alloc[T array.Elem]() Allocator[T] { return Allocator[T]{} }

// NewArray returns a zeroed Dense of length n.
func (Allocator[T]) NewArray(n int) (array.Writable[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("native: negative length %d: %w", n, array.ErrRange)
	}
	return NewDense[T](n), nil
}
