// Package kernels implements the generic array operations: copy, fill,
// element-wise maps, and reductions, each in a basic form that
// allocates its result through the injected allocator and an extended
// "Ex" form that writes into a caller-supplied destination slice
// without allocating.
//
// Every Ex kernel resolves and validates all of its slices before
// touching a single element, so a failed call leaves the destination
// untouched. Kernels process elements strictly left to right in index
// order, which makes floating-point accumulation reproducible.
package kernels

import (
	"fmt"

	"github.com/varray-dev/varray/internal/array"
	"github.com/varray-dev/varray/internal/views"
)

// Copy allocates a new container via alloc and copies every valid
// element of src into it.
func Copy[T array.Elem](alloc array.Allocator[T], src array.Readable[T]) (array.Writable[T], error) {
	dst, err := alloc.NewArray(array.Len(src))
	if err != nil {
		return nil, fmt.Errorf("kernels: copy: %w", err)
	}
	if err := CopyEx(array.All[T](dst), array.All(src)); err != nil {
		return nil, err
	}
	return dst, nil
}

// CopyEx copies src into dst element by element, in index order. The
// two slices must denote equal counts. If dst and src overlap in the
// same container, elements are copied in increasing index order.
func CopyEx[T array.Elem](dst, src array.Slice[T]) error {
	w, dstStart, dstCount, err := dst.ResolveWritable(1)
	if err != nil {
		return fmt.Errorf("kernels: copy: %w", err)
	}
	srcStart, srcCount, err := src.Resolve()
	if err != nil {
		return fmt.Errorf("kernels: copy: %w", err)
	}
	if dstCount != srcCount {
		return fmt.Errorf("kernels: copy: dst count %d, src count %d: %w",
			dstCount, srcCount, array.ErrLengthMismatch)
	}
	for k := 0; k < srcCount; k++ {
		w.SetAt(dstStart+k, src.Source.At(srcStart+k))
	}
	return nil
}

// Fill allocates a new container of n elements, all set to value.
func Fill[T array.Elem](alloc array.Allocator[T], n int, value T) (array.Writable[T], error) {
	dst, err := alloc.NewArray(n)
	if err != nil {
		return nil, fmt.Errorf("kernels: fill: %w", err)
	}
	if err := FillEx(array.All[T](dst), value); err != nil {
		return nil, err
	}
	return dst, nil
}

// FillEx sets every element of dst to value.
func FillEx[T array.Elem](dst array.Slice[T], value T) error {
	w, start, count, err := dst.ResolveWritable(1)
	if err != nil {
		return fmt.Errorf("kernels: fill: %w", err)
	}
	for k := 0; k < count; k++ {
		w.SetAt(start+k, value)
	}
	return nil
}

// Reversed allocates a reversed copy of src. It is Copy through a
// Reverse view: new access shapes are added by writing a view, not by
// duplicating kernels.
func Reversed[T array.Elem](alloc array.Allocator[T], src array.Readable[T]) (array.Writable[T], error) {
	return Copy(alloc, views.Reverse(src))
}
