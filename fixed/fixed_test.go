package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varray-dev/varray/array"
	"github.com/varray-dev/varray/backend/native"
	"github.com/varray-dev/varray/kernels"
	"github.com/varray-dev/varray/views"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	src := native.FromSlice([]float32{1, 2, 3})

	v, err := Load3(array.All[float32](src))
	require.NoError(t, err)
	assert.Equal(t, [3]float32{1, 2, 3}, v)

	dst := native.NewDense[float32](3)
	require.NoError(t, Store3(array.All[float32](dst), v))
	assert.Equal(t, []float32{1, 2, 3}, dst.Data())
}

func TestLoadCountMismatch(t *testing.T) {
	src := native.FromSlice([]float32{1, 2, 3, 4})

	_, err := Load3(array.All[float32](src))
	require.ErrorIs(t, err, array.ErrLengthMismatch)

	_, err = Load4(array.Span[float32](src, 1, 3))
	require.ErrorIs(t, err, array.ErrLengthMismatch)
}

func TestLoadFromSequence(t *testing.T) {
	seq := native.SeqFromSlice(6, []float32{10, 20, 30})

	v, err := Load2(array.Span[float32](seq, 7, 2))
	require.NoError(t, err)
	assert.Equal(t, [2]float32{20, 30}, v)

	_, err = Load2(array.Span[float32](seq, 2, 2))
	require.ErrorIs(t, err, array.ErrRange)
}

func TestStoreContract(t *testing.T) {
	// A constant view is not writable; storing into it is a contract error.
	err := Store3(array.All[float32](views.Const(float32(0), 3)), [3]float32{1, 2, 3})
	require.ErrorIs(t, err, array.ErrContract)
}

func TestFill(t *testing.T) {
	assert.Equal(t, [4]float64{2.5, 2.5, 2.5, 2.5}, Fill4(2.5))
	assert.Equal(t, [16]int32{7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7}, Fill16(int32(7)))
}

// TestFastPathMatchesGeneralKernel verifies the core equivalence: the
// arity-specialized variants agree bit for bit with the general kernels
// at the same count.
func TestFastPathMatchesGeneralKernel(t *testing.T) {
	alloc := native.Alloc[float32]()
	aData := []float32{1.5, -2.25, 3.75, 0.1, 7.3, -0.6, 2.2, 9.9, -4.4, 0.25, 1.125, 6.5, -8.875, 3.3, 5.5, -1.75}
	bData := []float32{0.3, 4.1, -1.75, 2.2, -6.6, 0.9, 3.25, -0.125, 7.7, 2.5, -3.375, 1.1, 4.4, -9.9, 0.625, 8.25}

	t.Run("count 3", func(t *testing.T) {
		a := native.FromSlice(aData[:3])
		b := native.FromSlice(bData[:3])

		fast := Add3([3]float32(aData[:3]), [3]float32(bData[:3]))
		general, err := kernels.Add[float32](alloc, a, b)
		require.NoError(t, err)
		for i := range fast {
			assert.Equal(t, general.At(i), fast[i], "index %d", i)
		}
	})

	t.Run("count 8", func(t *testing.T) {
		a := native.FromSlice(aData[:8])
		b := native.FromSlice(bData[:8])

		fast := Mul8([8]float32(aData[:8]), [8]float32(bData[:8]))
		general, err := kernels.Mul[float32](alloc, a, b)
		require.NoError(t, err)
		for i := range fast {
			assert.Equal(t, general.At(i), fast[i], "index %d", i)
		}
	})

	t.Run("count 16", func(t *testing.T) {
		a := native.FromSlice(aData)
		b := native.FromSlice(bData)

		fast := Sub16([16]float32(aData), [16]float32(bData))
		general, err := kernels.Sub[float32](alloc, a, b)
		require.NoError(t, err)
		for i := range fast {
			assert.Equal(t, general.At(i), fast[i], "index %d", i)
		}
	})

	t.Run("sum order", func(t *testing.T) {
		// Left-to-right folding makes the float accumulation identical.
		a := native.FromSlice(aData)
		assert.Equal(t, kernels.Sum[float32](a), Sum16([16]float32(aData)))
	})

	t.Run("min max", func(t *testing.T) {
		a := native.FromSlice(aData[:7])

		generalMin, err := kernels.Min[float32](a)
		require.NoError(t, err)
		assert.Equal(t, generalMin, Min7([7]float32(aData[:7])))

		generalMax, err := kernels.Max[float32](a)
		require.NoError(t, err)
		assert.Equal(t, generalMax, Max7([7]float32(aData[:7])))
	})
}

func TestScaleNeg(t *testing.T) {
	v := [3]float64{1, -2, 3}
	assert.Equal(t, [3]float64{2, -4, 6}, Scale3(v, 2))
	assert.Equal(t, [3]float64{-1, 2, -3}, Neg3(v))
}

func TestDot(t *testing.T) {
	assert.Equal(t, float64(0), Dot3([3]float64{1, 0, 0}, [3]float64{0, 1, 0}))
	assert.Equal(t, float64(32), Dot3([3]float64{1, 2, 3}, [3]float64{4, 5, 6}))
}

func TestDiv(t *testing.T) {
	out := Div2([2]float32{10, 9}, [2]float32{2, 3})
	assert.Equal(t, [2]float32{5, 3}, out)
}
