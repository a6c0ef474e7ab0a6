package linalg

import (
	"fmt"

	"github.com/varray-dev/varray/internal/array"
)

// Matrices are flattened in column-major order: an R×C matrix occupies
// C*R contiguous slots, element (row r, col c) at slot c*R + r, both
// zero-based relative to the start of the slice.

// Transpose allocates the transpose of the rows × cols matrix src.
func Transpose[T array.Elem](alloc array.Allocator[T], src array.Readable[T], rows, cols int) (array.Writable[T], error) {
	dst, err := alloc.NewArray(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("linalg: transpose: %w", err)
	}
	if err := TransposeEx(array.All[T](dst), array.All(src), rows, cols); err != nil {
		return nil, err
	}
	return dst, nil
}

// TransposeEx writes the transpose of the rows × cols matrix src into
// dst, a cols × rows matrix. dst must not alias src.
func TransposeEx[T array.Elem](dst, src array.Slice[T], rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("linalg: transpose: %d x %d matrix: %w", rows, cols, array.ErrDomain)
	}
	w, dstStart, dstCount, err := dst.ResolveWritable(1)
	if err != nil {
		return fmt.Errorf("linalg: transpose: %w", err)
	}
	srcStart, srcCount, err := src.Resolve()
	if err != nil {
		return fmt.Errorf("linalg: transpose: %w", err)
	}
	if srcCount != rows*cols || dstCount != rows*cols {
		return fmt.Errorf("linalg: transpose: %d x %d needs %d elements, got src %d, dst %d: %w",
			rows, cols, rows*cols, srcCount, dstCount, array.ErrLengthMismatch)
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			// dst is cols x rows: element (c, r) at slot r*cols + c.
			w.SetAt(dstStart+r*cols+c, src.Source.At(srcStart+c*rows+r))
		}
	}
	return nil
}

// MatMul allocates the product of a (r × k) and b (k × c).
func MatMul[T array.Number](alloc array.Allocator[T], a, b array.Readable[T], r, k, c int) (array.Writable[T], error) {
	dst, err := alloc.NewArray(r * c)
	if err != nil {
		return nil, fmt.Errorf("linalg: matmul: %w", err)
	}
	if err := MatMulEx(array.All[T](dst), array.All(a), array.All(b), r, k, c); err != nil {
		return nil, err
	}
	return dst, nil
}

// MatMulEx writes the product of a (r × k) and b (k × c) into dst
// (r × c), the standard row-by-column inner product. dst must not
// alias a or b.
func MatMulEx[T array.Number](dst, a, b array.Slice[T], r, k, c int) error {
	if r < 0 || k < 0 || c < 0 {
		return fmt.Errorf("linalg: matmul: %d x %d by %d x %d: %w", r, k, k, c, array.ErrDomain)
	}
	w, dstStart, dstCount, err := dst.ResolveWritable(1)
	if err != nil {
		return fmt.Errorf("linalg: matmul: %w", err)
	}
	aStart, aCount, err := a.Resolve()
	if err != nil {
		return fmt.Errorf("linalg: matmul: %w", err)
	}
	bStart, bCount, err := b.Resolve()
	if err != nil {
		return fmt.Errorf("linalg: matmul: %w", err)
	}
	if aCount != r*k || bCount != k*c || dstCount != r*c {
		return fmt.Errorf("linalg: matmul: %d x %d by %d x %d needs %d, %d, %d elements, got %d, %d, %d: %w",
			r, k, k, c, r*k, k*c, r*c, aCount, bCount, dstCount, array.ErrLengthMismatch)
	}
	for cc := 0; cc < c; cc++ {
		for rr := 0; rr < r; rr++ {
			var acc T
			for kk := 0; kk < k; kk++ {
				acc += a.Source.At(aStart+kk*r+rr) * b.Source.At(bStart+cc*k+kk)
			}
			w.SetAt(dstStart+cc*r+rr, acc)
		}
	}
	return nil
}
