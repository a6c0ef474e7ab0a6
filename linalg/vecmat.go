// Copyright 2025 The varray Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package linalg

import (
	"github.com/varray-dev/varray/array"
	"github.com/varray-dev/varray/fixed"
)

// Vec2, Vec3, Vec4, Mat2, Mat3 and Mat4 are thin façades over the
// fixed-size kernels for ergonomic call sites. They hold no logic of
// their own: every method delegates to the corresponding kernel.

// Vec2 is a 2-vector façade.
type Vec2[T array.Float] [2]T

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T](fixed.Add2([2]T(v), [2]T(o))) }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T](fixed.Sub2([2]T(v), [2]T(o))) }

// Scale returns v with every element multiplied by c.
func (v Vec2[T]) Scale(c T) Vec2[T] { return Vec2[T](fixed.Scale2([2]T(v), c)) }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T](fixed.Neg2([2]T(v))) }

// Dot returns the inner product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return Dot2([2]T(v), [2]T(o)) }

// Norm returns the Euclidean length of v.
func (v Vec2[T]) Norm() T { return Norm2([2]T(v)) }

// Normalize returns v divided by its length.
func (v Vec2[T]) Normalize() (Vec2[T], error) {
	out, err := Normalize2([2]T(v))
	return Vec2[T](out), err
}

// Vec3 is a 3-vector façade.
type Vec3[T array.Float] [3]T

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T](fixed.Add3([3]T(v), [3]T(o))) }

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T](fixed.Sub3([3]T(v), [3]T(o))) }

// Scale returns v with every element multiplied by c.
func (v Vec3[T]) Scale(c T) Vec3[T] { return Vec3[T](fixed.Scale3([3]T(v), c)) }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T](fixed.Neg3([3]T(v))) }

// Dot returns the inner product of v and o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return Dot3([3]T(v), [3]T(o)) }

// Cross returns the cross product of v and o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] { return Vec3[T](Cross3([3]T(v), [3]T(o))) }

// Norm returns the Euclidean length of v.
func (v Vec3[T]) Norm() T { return Norm3([3]T(v)) }

// Normalize returns v divided by its length.
func (v Vec3[T]) Normalize() (Vec3[T], error) {
	out, err := Normalize3([3]T(v))
	return Vec3[T](out), err
}

// Vec4 is a 4-vector façade.
type Vec4[T array.Float] [4]T

// Add returns v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { return Vec4[T](fixed.Add4([4]T(v), [4]T(o))) }

// Sub returns v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { return Vec4[T](fixed.Sub4([4]T(v), [4]T(o))) }

// Scale returns v with every element multiplied by c.
func (v Vec4[T]) Scale(c T) Vec4[T] { return Vec4[T](fixed.Scale4([4]T(v), c)) }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T](fixed.Neg4([4]T(v))) }

// Dot returns the inner product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T { return Dot4([4]T(v), [4]T(o)) }

// Norm returns the Euclidean length of v.
func (v Vec4[T]) Norm() T { return Norm4([4]T(v)) }

// Normalize returns v divided by its length.
func (v Vec4[T]) Normalize() (Vec4[T], error) {
	out, err := Normalize4([4]T(v))
	return Vec4[T](out), err
}

// Mat2 is a column-major 2×2 matrix façade.
type Mat2[T array.Float] [4]T

// At returns the element at row r, column c, zero-based.
func (m Mat2[T]) At(r, c int) T { return m[c*2+r] }

// Mul returns the matrix product m × o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] { return Mat2[T](MatMul2([4]T(m), [4]T(o))) }

// MulVec returns m applied to v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] { return Vec2[T](MulVec2([4]T(m), [2]T(v))) }

// Transposed returns the transpose of m.
func (m Mat2[T]) Transposed() Mat2[T] { return Mat2[T](Transpose2([4]T(m))) }

// Mat3 is a column-major 3×3 matrix façade.
type Mat3[T array.Float] [9]T

// At returns the element at row r, column c, zero-based.
func (m Mat3[T]) At(r, c int) T { return m[c*3+r] }

// Mul returns the matrix product m × o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] { return Mat3[T](MatMul3([9]T(m), [9]T(o))) }

// MulVec returns m applied to v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] { return Vec3[T](MulVec3([9]T(m), [3]T(v))) }

// Transposed returns the transpose of m.
func (m Mat3[T]) Transposed() Mat3[T] { return Mat3[T](Transpose3([9]T(m))) }

// Mat4 is a column-major 4×4 matrix façade.
type Mat4[T array.Float] [16]T

// At returns the element at row r, column c, zero-based.
func (m Mat4[T]) At(r, c int) T { return m[c*4+r] }

// Mul returns the matrix product m × o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] { return Mat4[T](MatMul4([16]T(m), [16]T(o))) }

// MulVec returns m applied to v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] { return Vec4[T](MulVec4([16]T(m), [4]T(v))) }

// Transposed returns the transpose of m.
func (m Mat4[T]) Transposed() Mat4[T] { return Mat4[T](Transpose4([16]T(m))) }
