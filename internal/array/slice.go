package array

import "fmt"

// Rest as a slice count means "every remaining valid index from Start".
const Rest = -1

// Slice is the uniform way every kernel addresses a sub-range: a
// non-owning (container, start, count) triple. Construction never
// validates; the cost is deferred to Resolve, which kernels call before
// touching any element so that extended-form kernels are all-or-nothing.
type Slice[T Elem] struct {
	Source Readable[T]
	Start  int
	Count  int
}

// All describes every valid index of src.
func All[T Elem](src Readable[T]) Slice[T] {
	lo, _ := src.Bounds()
	return Slice[T]{Source: src, Start: lo, Count: Rest}
}

// From describes the range of src from start to the end of its valid range.
func From[T Elem](src Readable[T], start int) Slice[T] {
	return Slice[T]{Source: src, Start: start, Count: Rest}
}

// Span describes exactly count indices of src beginning at start.
func Span[T Elem](src Readable[T], start, count int) Slice[T] {
	return Slice[T]{Source: src, Start: start, Count: count}
}

// Resolve validates the descriptor against the container's current
// bounds and returns the concrete (start, count). A Count of Rest
// resolves to the remaining valid range. Any addressed index outside
// [lo, hi) is an ErrRange.
func (s Slice[T]) Resolve() (start, count int, err error) {
	if s.Source == nil {
		return 0, 0, fmt.Errorf("array: slice has no source container: %w", ErrContract)
	}
	lo, hi := s.Source.Bounds()
	count = s.Count
	if count == Rest {
		count = hi - s.Start
	}
	if count < 0 || s.Start < lo || s.Start+count > hi {
		return 0, 0, fmt.Errorf("array: [%d, %d) outside bounds [%d, %d): %w",
			s.Start, s.Start+count, lo, hi, ErrRange)
	}
	return s.Start, count, nil
}

// ResolveWritable is Resolve plus a Writable capability check on the
// source, for destination slices. arg is the 1-based argument position
// reported on a capability failure.
func (s Slice[T]) ResolveWritable(arg int) (dst Writable[T], start, count int, err error) {
	start, count, err = s.Resolve()
	if err != nil {
		return nil, 0, 0, err
	}
	dst, err = AsWritable(s.Source, arg)
	if err != nil {
		return nil, 0, 0, err
	}
	return dst, start, count, nil
}
