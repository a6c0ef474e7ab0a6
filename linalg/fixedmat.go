// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"fmt"
	"math"

	"github.com/varray-dev/varray/array"
	"github.com/varray-dev/varray/fixed"
)

// Fixed-size fast paths for the 2-, 3- and 4-element vector and matrix
// cases. Value arrays carry the count in the type, so the count checks
// the slice-based kernels perform at run time happen at compile time
// here; semantics are otherwise identical.

// Dot2 returns the inner product of two 2-vectors.
func Dot2[T array.Number](a, b [2]T) T { return fixed.Dot2(a, b) }

// Dot3 returns the inner product of two 3-vectors.
func Dot3[T array.Number](a, b [3]T) T { return fixed.Dot3(a, b) }

// Dot4 returns the inner product of two 4-vectors.
func Dot4[T array.Number](a, b [4]T) T { return fixed.Dot4(a, b) }

// Cross3 returns the cross product of two 3-vectors.
func Cross3[T array.Number](a, b [3]T) [3]T {
	return [3]T{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Norm2 returns the Euclidean length of a 2-vector.
func Norm2[T array.Float](v [2]T) T { return T(math.Sqrt(float64(fixed.Dot2(v, v)))) }

// Norm3 returns the Euclidean length of a 3-vector.
func Norm3[T array.Float](v [3]T) T { return T(math.Sqrt(float64(fixed.Dot3(v, v)))) }

// Norm4 returns the Euclidean length of a 4-vector.
func Norm4[T array.Float](v [4]T) T { return T(math.Sqrt(float64(fixed.Dot4(v, v)))) }

// Normalize2 divides a 2-vector by its length.
func Normalize2[T array.Float](v [2]T) ([2]T, error) {
	n := Norm2(v)
	if n == 0 {
		return v, fmt.Errorf("linalg: normalize of zero vector: %w", array.ErrDomain)
	}
	return fixed.Scale2(v, 1/n), nil
}

// Normalize3 divides a 3-vector by its length.
func Normalize3[T array.Float](v [3]T) ([3]T, error) {
	n := Norm3(v)
	if n == 0 {
		return v, fmt.Errorf("linalg: normalize of zero vector: %w", array.ErrDomain)
	}
	return fixed.Scale3(v, 1/n), nil
}

// Normalize4 divides a 4-vector by its length.
func Normalize4[T array.Float](v [4]T) ([4]T, error) {
	n := Norm4(v)
	if n == 0 {
		return v, fmt.Errorf("linalg: normalize of zero vector: %w", array.ErrDomain)
	}
	return fixed.Scale4(v, 1/n), nil
}

// Identity2 returns the 2×2 identity matrix, column-major.
func Identity2[T array.Number]() [4]T {
	return [4]T{1, 0, 0, 1}
}

// Identity3 returns the 3×3 identity matrix, column-major.
func Identity3[T array.Number]() [9]T {
	return [9]T{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Identity4 returns the 4×4 identity matrix, column-major.
func Identity4[T array.Number]() [16]T {
	return [16]T{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

// Transpose2 transposes a column-major 2×2 matrix.
func Transpose2[T array.Number](m [4]T) [4]T {
	return [4]T{m[0], m[2], m[1], m[3]}
}

// Transpose3 transposes a column-major 3×3 matrix.
func Transpose3[T array.Number](m [9]T) [9]T {
	return [9]T{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Transpose4 transposes a column-major 4×4 matrix.
func Transpose4[T array.Number](m [16]T) [16]T {
	return [16]T{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// MatMul2 multiplies two column-major 2×2 matrices.
func MatMul2[T array.Number](a, b [4]T) (out [4]T) {
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			out[c*2+r] = a[r]*b[c*2] + a[2+r]*b[c*2+1]
		}
	}
	return out
}

// MatMul3 multiplies two column-major 3×3 matrices.
func MatMul3[T array.Number](a, b [9]T) (out [9]T) {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c*3+r] = a[r]*b[c*3] + a[3+r]*b[c*3+1] + a[6+r]*b[c*3+2]
		}
	}
	return out
}

// MatMul4 multiplies two column-major 4×4 matrices.
func MatMul4[T array.Number](a, b [16]T) (out [16]T) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = a[r]*b[c*4] + a[4+r]*b[c*4+1] + a[8+r]*b[c*4+2] + a[12+r]*b[c*4+3]
		}
	}
	return out
}

// MulVec2 multiplies a column-major 2×2 matrix by a 2-vector.
func MulVec2[T array.Number](m [4]T, v [2]T) [2]T {
	return [2]T{
		m[0]*v[0] + m[2]*v[1],
		m[1]*v[0] + m[3]*v[1],
	}
}

// MulVec3 multiplies a column-major 3×3 matrix by a 3-vector.
func MulVec3[T array.Number](m [9]T, v [3]T) [3]T {
	return [3]T{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// MulVec4 multiplies a column-major 4×4 matrix by a 4-vector.
func MulVec4[T array.Number](m [16]T, v [4]T) [4]T {
	return [4]T{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}
