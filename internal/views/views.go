// Package views implements zero-copy adapters that remap index access
// over one or more underlying containers while satisfying the same
// capability contracts, so they compose transparently with kernels.
//
// Every view is fixed-length: its mapping is defined over the range the
// source had at construction, even when the source is resizable, so no
// view satisfies Resizable. A view presents its own valid range as
// [0, n) regardless of where the source range starts. Writable view
// kinds forward writes only when every underlying source is itself
// Writable; otherwise the constructor returns a read-only view and the
// capability check at the kernel boundary reports the missing Writable.
//
// Mutating a view's source through another alias while a kernel
// iterates the view is undefined.
package views

import (
	"fmt"

	"github.com/varray-dev/varray/internal/array"
)

// Reverse returns a view presenting src in reverse index order:
// index k of a range of size n maps to source index hi-1-k (view
// indices counted from 0). The view is writable iff src is.
func Reverse[T array.Elem](src array.Readable[T]) array.Readable[T] {
	lo, hi := src.Bounds()
	v := reversed[T]{src: src, lo: lo, n: hi - lo}
	if w, ok := src.(array.Writable[T]); ok {
		return &reversedW[T]{reversed: v, w: w}
	}
	return &v
}

type reversed[T array.Elem] struct {
	src array.Readable[T]
	lo  int
	n   int
}

func (v *reversed[T]) At(k int) T           { return v.src.At(v.lo + v.n - 1 - k) }
func (v *reversed[T]) Bounds() (lo, hi int) { return 0, v.n }

type reversedW[T array.Elem] struct {
	reversed[T]
	w array.Writable[T]
}

func (v *reversedW[T]) SetAt(k int, val T) { v.w.SetAt(v.lo + v.n - 1 - k, val) }

// Stride returns an interleaved view of count elements of src at source
// indices base, base+stride, base+2*stride, ... The view is writable
// iff src is. Stride may be negative. A zero stride broadcasts the
// element at base: every view index reads it, and every write lands
// on it.
func Stride[T array.Elem](src array.Readable[T], base, stride, count int) array.Readable[T] {
	v := strided[T]{src: src, base: base, stride: stride, n: count}
	if w, ok := src.(array.Writable[T]); ok {
		return &stridedW[T]{strided: v, w: w}
	}
	return &v
}

type strided[T array.Elem] struct {
	src    array.Readable[T]
	base   int
	stride int
	n      int
}

func (v *strided[T]) At(k int) T           { return v.src.At(v.base + k*v.stride) }
func (v *strided[T]) Bounds() (lo, hi int) { return 0, v.n }

type stridedW[T array.Elem] struct {
	strided[T]
	w array.Writable[T]
}

func (v *stridedW[T]) SetAt(k int, val T) { v.w.SetAt(v.base + k*v.stride, val) }

// Const returns a view of n elements that all read as value. It is
// Readable only; there is nothing to write to.
func Const[T array.Elem](value T, n int) array.Readable[T] {
	return &constant[T]{value: value, n: n}
}

type constant[T array.Elem] struct {
	value T
	n     int
}

func (v *constant[T]) At(int) T             { return v.value }
func (v *constant[T]) Bounds() (lo, hi int) { return 0, v.n }

// Join returns a view concatenating sources in order: index k maps into
// the first source whose cumulative length exceeds k. Its length is the
// sum of the source lengths at construction. The view is writable iff
// every source is; with no sources it is an empty read-only view.
func Join[T array.Elem](sources ...array.Readable[T]) array.Readable[T] {
	v := joined[T]{sources: sources, offsets: make([]int, len(sources)+1)}
	writable := len(sources) > 0
	for i, s := range sources {
		v.offsets[i+1] = v.offsets[i] + array.Len(s)
		if _, ok := s.(array.Writable[T]); !ok {
			writable = false
		}
	}
	if writable {
		return &joinedW[T]{joined: v}
	}
	return &v
}

type joined[T array.Elem] struct {
	sources []array.Readable[T]
	offsets []int // offsets[i] is the view index where source i begins
}

func (v *joined[T]) locate(k int) (src array.Readable[T], i int) {
	if len(v.sources) == 0 {
		panic(fmt.Sprintf("views: index %d out of range [0, 0)", k))
	}
	for s := 0; s < len(v.sources); s++ {
		if k < v.offsets[s+1] {
			lo, _ := v.sources[s].Bounds()
			return v.sources[s], lo + k - v.offsets[s]
		}
	}
	// Out of range: defer to the last source's own bounds check.
	lo, _ := v.sources[len(v.sources)-1].Bounds()
	return v.sources[len(v.sources)-1], lo + k - v.offsets[len(v.sources)-1]
}

func (v *joined[T]) At(k int) T {
	src, i := v.locate(k)
	return src.At(i)
}

func (v *joined[T]) Bounds() (lo, hi int) { return 0, v.offsets[len(v.offsets)-1] }

type joinedW[T array.Elem] struct {
	joined[T]
}

func (v *joinedW[T]) SetAt(k int, val T) {
	src, i := v.locate(k)
	src.(array.Writable[T]).SetAt(i, val)
}
