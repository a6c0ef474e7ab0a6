package kernels

import (
	"fmt"

	"github.com/varray-dev/varray/internal/array"
)

// Map allocates a new container holding f applied to every element of src.
func Map[T array.Elem](alloc array.Allocator[T], src array.Readable[T], f func(T) T) (array.Writable[T], error) {
	dst, err := alloc.NewArray(array.Len(src))
	if err != nil {
		return nil, fmt.Errorf("kernels: map: %w", err)
	}
	if err := MapEx(array.All[T](dst), array.All(src), f); err != nil {
		return nil, err
	}
	return dst, nil
}

// MapEx writes f applied to every element of src into dst. The slices
// must denote equal counts.
func MapEx[T array.Elem](dst, src array.Slice[T], f func(T) T) error {
	w, dstStart, dstCount, err := dst.ResolveWritable(1)
	if err != nil {
		return fmt.Errorf("kernels: map: %w", err)
	}
	srcStart, srcCount, err := src.Resolve()
	if err != nil {
		return fmt.Errorf("kernels: map: %w", err)
	}
	if dstCount != srcCount {
		return fmt.Errorf("kernels: map: dst count %d, src count %d: %w",
			dstCount, srcCount, array.ErrLengthMismatch)
	}
	for k := 0; k < srcCount; k++ {
		w.SetAt(dstStart+k, f(src.Source.At(srcStart+k)))
	}
	return nil
}

// Zip allocates a new container holding f applied pairwise to a and b,
// which must have equal lengths.
func Zip[T array.Elem](alloc array.Allocator[T], a, b array.Readable[T], f func(T, T) T) (array.Writable[T], error) {
	if array.Len(a) != array.Len(b) {
		return nil, fmt.Errorf("kernels: zip: lengths %d and %d: %w",
			array.Len(a), array.Len(b), array.ErrLengthMismatch)
	}
	dst, err := alloc.NewArray(array.Len(a))
	if err != nil {
		return nil, fmt.Errorf("kernels: zip: %w", err)
	}
	if err := ZipEx(array.All[T](dst), array.All(a), array.All(b), f); err != nil {
		return nil, err
	}
	return dst, nil
}

// ZipEx writes f applied pairwise to a and b into dst. All three slices
// must denote equal counts; nothing is written on a mismatch.
func ZipEx[T array.Elem](dst, a, b array.Slice[T], f func(T, T) T) error {
	w, dstStart, dstCount, err := dst.ResolveWritable(1)
	if err != nil {
		return fmt.Errorf("kernels: zip: %w", err)
	}
	aStart, aCount, err := a.Resolve()
	if err != nil {
		return fmt.Errorf("kernels: zip: %w", err)
	}
	bStart, bCount, err := b.Resolve()
	if err != nil {
		return fmt.Errorf("kernels: zip: %w", err)
	}
	if aCount != bCount || dstCount != aCount {
		return fmt.Errorf("kernels: zip: counts %d, %d, %d: %w",
			dstCount, aCount, bCount, array.ErrLengthMismatch)
	}
	for k := 0; k < aCount; k++ {
		w.SetAt(dstStart+k, f(a.Source.At(aStart+k), b.Source.At(bStart+k)))
	}
	return nil
}

// Add performs element-wise addition, allocating the result.
func Add[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	return Zip(alloc, a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction, allocating the result.
func Sub[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	return Zip(alloc, a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication, allocating the result.
func Mul[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	return Zip(alloc, a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division, allocating the result.
func Div[T array.Number](alloc array.Allocator[T], a, b array.Readable[T]) (array.Writable[T], error) {
	return Zip(alloc, a, b, func(x, y T) T { return x / y })
}

// AddEx performs element-wise addition into dst.
func AddEx[T array.Number](dst, a, b array.Slice[T]) error {
	return ZipEx(dst, a, b, func(x, y T) T { return x + y })
}

// SubEx performs element-wise subtraction into dst.
func SubEx[T array.Number](dst, a, b array.Slice[T]) error {
	return ZipEx(dst, a, b, func(x, y T) T { return x - y })
}

// MulEx performs element-wise multiplication into dst.
func MulEx[T array.Number](dst, a, b array.Slice[T]) error {
	return ZipEx(dst, a, b, func(x, y T) T { return x * y })
}

// DivEx performs element-wise division into dst.
func DivEx[T array.Number](dst, a, b array.Slice[T]) error {
	return ZipEx(dst, a, b, func(x, y T) T { return x / y })
}

// Scale multiplies every element of a by c, allocating the result.
func Scale[T array.Number](alloc array.Allocator[T], a array.Readable[T], c T) (array.Writable[T], error) {
	return Map(alloc, a, func(x T) T { return x * c })
}

// ScaleEx multiplies every element of a by c into dst.
func ScaleEx[T array.Number](dst, a array.Slice[T], c T) error {
	return MapEx(dst, a, func(x T) T { return x * c })
}
