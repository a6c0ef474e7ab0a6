package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varray-dev/varray/array"
	"github.com/varray-dev/varray/backend/native"
)

func TestDot3Orthogonal(t *testing.T) {
	assert.Equal(t, float64(0), Dot3([3]float64{1, 0, 0}, [3]float64{0, 1, 0}))
}

func TestFixedMatchesGeneral(t *testing.T) {
	alloc := native.Alloc[float32]()
	aData := []float32{1.5, -2.25, 3.75, 0.1, 7.3, -0.6, 2.2, 9.9, -4.4}
	bData := []float32{0.3, 4.1, -1.75, 2.2, -6.6, 0.9, 3.25, -0.125, 7.7}

	t.Run("dot", func(t *testing.T) {
		general, err := Dot(array.All[float32](native.FromSlice(aData[:4])),
			array.All[float32](native.FromSlice(bData[:4])))
		require.NoError(t, err)
		assert.Equal(t, general, Dot4([4]float32(aData[:4]), [4]float32(bData[:4])))
	})

	t.Run("matmul 3x3", func(t *testing.T) {
		general, err := MatMul[float32](alloc, native.FromSlice(aData), native.FromSlice(bData), 3, 3, 3)
		require.NoError(t, err)

		fast := MatMul3([9]float32(aData), [9]float32(bData))
		for i := range fast {
			assert.Equal(t, general.At(i), fast[i], "index %d", i)
		}
	})

	t.Run("transpose 3x3", func(t *testing.T) {
		general, err := Transpose[float32](alloc, native.FromSlice(aData), 3, 3)
		require.NoError(t, err)

		fast := Transpose3([9]float32(aData))
		for i := range fast {
			assert.Equal(t, general.At(i), fast[i], "index %d", i)
		}
	})

	t.Run("cross", func(t *testing.T) {
		general, err := Cross[float32](alloc, native.FromSlice(aData[:3]), native.FromSlice(bData[:3]))
		require.NoError(t, err)

		fast := Cross3([3]float32(aData[:3]), [3]float32(bData[:3]))
		for i := range fast {
			assert.Equal(t, general.At(i), fast[i], "index %d", i)
		}
	})
}

func TestMatMul3Identity(t *testing.T) {
	id := Identity3[float64]()
	m := [9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}

	assert.Equal(t, m, MatMul3(id, m))
	assert.Equal(t, m, MatMul3(m, id))
	assert.Equal(t, id, MatMul3(id, id))
}

func TestTranspose3Involution(t *testing.T) {
	m := [9]float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, m, Transpose3(Transpose3(m)))
}

func TestTranspose4Involution(t *testing.T) {
	var m [16]float64
	for i := range m {
		m[i] = float64(i)
	}
	assert.Equal(t, m, Transpose4(Transpose4(m)))
}

func TestNormalize3ZeroVector(t *testing.T) {
	_, err := Normalize3([3]float64{0, 0, 0})
	require.ErrorIs(t, err, array.ErrDomain)
}

func TestNormalize3(t *testing.T) {
	out, err := Normalize3([3]float64{3, 0, 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, out[0], 1e-15)
	assert.InDelta(t, 0.0, out[1], 1e-15)
	assert.InDelta(t, 0.8, out[2], 1e-15)
}

func TestMulVec3(t *testing.T) {
	// Column-major rotation-like matrix: swap x and y.
	m := [9]float64{0, 1, 0, 1, 0, 0, 0, 0, 1}
	assert.Equal(t, [3]float64{2, 1, 3}, MulVec3(m, [3]float64{1, 2, 3}))

	assert.Equal(t, [3]float64{1, 2, 3}, MulVec3(Identity3[float64](), [3]float64{1, 2, 3}))
}

func TestVec3Facade(t *testing.T) {
	a := Vec3[float64]{1, 2, 3}
	b := Vec3[float64]{4, 5, 6}

	assert.Equal(t, Vec3[float64]{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3[float64]{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3[float64]{2, 4, 6}, a.Scale(2))
	assert.Equal(t, float64(32), a.Dot(b))
	assert.Equal(t, Vec3[float64]{-3, 6, -3}, a.Cross(b))
	assert.Equal(t, float64(5), Vec3[float64]{3, 4, 0}.Norm())

	n, err := Vec3[float64]{2, 0, 0}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, Vec3[float64]{1, 0, 0}, n)

	_, err = Vec3[float64]{}.Normalize()
	require.ErrorIs(t, err, array.ErrDomain)
}

func TestVec2Vec4Facades(t *testing.T) {
	assert.Equal(t, Vec2[float32]{4, 6}, Vec2[float32]{1, 2}.Add(Vec2[float32]{3, 4}))
	assert.Equal(t, float32(11), Vec2[float32]{1, 2}.Dot(Vec2[float32]{3, 4}))
	assert.Equal(t, Vec4[float64]{-1, -2, -3, -4}, Vec4[float64]{1, 2, 3, 4}.Neg())
	assert.Equal(t, float64(2), Vec4[float64]{1, 1, 1, 1}.Norm())
}

func TestMat3Facade(t *testing.T) {
	id := Mat3[float64](Identity3[float64]())
	m := Mat3[float64]{1, 2, 3, 4, 5, 6, 7, 8, 9}

	assert.Equal(t, m, id.Mul(m))
	assert.Equal(t, m, m.Transposed().Transposed())
	assert.Equal(t, Vec3[float64]{1, 2, 3}, id.MulVec(Vec3[float64]{1, 2, 3}))

	// At is (row, col) into column-major storage.
	assert.Equal(t, float64(4), m.At(0, 1))
	assert.Equal(t, float64(2), m.At(1, 0))
}

func TestMat2Mat4Facades(t *testing.T) {
	id2 := Mat2[float64](Identity2[float64]())
	assert.Equal(t, Vec2[float64]{3, 4}, id2.MulVec(Vec2[float64]{3, 4}))

	id4 := Mat4[float64](Identity4[float64]())
	m := Mat4[float64]{}
	for i := range m {
		m[i] = float64(i + 1)
	}
	assert.Equal(t, m, id4.Mul(m))
	assert.Equal(t, m, m.Mul(id4))
}
