package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varray-dev/varray/internal/array"
	"github.com/varray-dev/varray/internal/backend/native"
)

func TestReverse(t *testing.T) {
	src := array.NewMockSeq(0, []float32{1, 2, 3, 4})
	v := Reverse[float32](src)

	lo, hi := v.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 4, hi)
	assert.Equal(t, float32(4), v.At(0))
	assert.Equal(t, float32(1), v.At(3))
}

func TestReverseOfSequence(t *testing.T) {
	// A sequence starting at 6: the view still presents [0, n).
	src := array.NewMockSeq(6, []float32{10, 20, 30})
	v := Reverse[float32](src)

	lo, hi := v.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)
	assert.Equal(t, float32(30), v.At(0))
	assert.Equal(t, float32(10), v.At(2))
}

func TestReverseComposition(t *testing.T) {
	src := array.NewMockSeq(0, []float32{1, 2, 3, 4, 5})
	vv := Reverse(Reverse[float32](src))

	for k := 0; k < 5; k++ {
		assert.Equal(t, src.At(k), vv.At(k), "index %d", k)
	}
}

func TestReverseWritable(t *testing.T) {
	src := array.NewMockSeq(0, []float32{1, 2, 3})
	v := Reverse[float32](src)

	w, err := array.AsWritable[float32](v, 1)
	require.NoError(t, err)
	w.SetAt(0, 9)
	assert.Equal(t, float32(9), src.At(2))
}

func TestReverseReadOnlySource(t *testing.T) {
	src := array.ReadOnly[float32]{R: array.NewMockSeq(0, []float32{1, 2, 3})}
	v := Reverse[float32](src)

	_, err := array.AsWritable[float32](v, 1)
	require.ErrorIs(t, err, array.ErrContract)
}

func TestStride(t *testing.T) {
	src := array.NewMockSeq(0, []float32{0, 1, 2, 3, 4, 5, 6, 7})
	v := Stride[float32](src, 1, 2, 3) // indices 1, 3, 5

	assert.Equal(t, 3, array.Len[float32](v))
	assert.Equal(t, float32(1), v.At(0))
	assert.Equal(t, float32(3), v.At(1))
	assert.Equal(t, float32(5), v.At(2))
}

func TestStrideNegative(t *testing.T) {
	src := array.NewMockSeq(0, []float32{0, 1, 2, 3})
	v := Stride[float32](src, 3, -1, 4)

	assert.Equal(t, float32(3), v.At(0))
	assert.Equal(t, float32(0), v.At(3))
}

func TestStrideWrite(t *testing.T) {
	src := array.NewMockSeq(0, []float32{0, 0, 0, 0, 0, 0})
	v := Stride[float32](src, 0, 3, 2) // indices 0, 3

	w, err := array.AsWritable[float32](v, 1)
	require.NoError(t, err)
	w.SetAt(1, 5)
	assert.Equal(t, float32(5), src.At(3))
	assert.Equal(t, float32(0), src.At(1))
}

func TestConst(t *testing.T) {
	v := Const(float32(7), 4)

	assert.Equal(t, 4, array.Len[float32](v))
	assert.Equal(t, float32(7), v.At(0))
	assert.Equal(t, float32(7), v.At(3))

	_, err := array.AsWritable[float32](v, 1)
	require.ErrorIs(t, err, array.ErrContract)
}

func TestJoin(t *testing.T) {
	a := array.NewMockSeq(0, []float32{1, 2})
	b := array.NewMockSeq(6, []float32{3, 4, 5}) // offset source
	v := Join[float32](a, b)

	assert.Equal(t, 5, array.Len[float32](v))
	for k, want := range []float32{1, 2, 3, 4, 5} {
		assert.Equal(t, want, v.At(k), "index %d", k)
	}
}

func TestJoinWritable(t *testing.T) {
	a := array.NewMockSeq(0, []float32{1, 2})
	b := array.NewMockSeq(0, []float32{3, 4})
	v := Join[float32](a, b)

	w, err := array.AsWritable[float32](v, 1)
	require.NoError(t, err)
	w.SetAt(3, 9)
	assert.Equal(t, float32(9), b.At(1))
}

func TestJoinEmpty(t *testing.T) {
	v := Join[float32]()

	assert.Equal(t, 0, array.Len[float32](v))
	_, err := array.AsWritable[float32](v, 1)
	require.ErrorIs(t, err, array.ErrContract)
	assert.Panics(t, func() { v.At(0) })
}

func TestStrideZeroBroadcasts(t *testing.T) {
	src := array.NewMockSeq(0, []float32{1, 2, 3})
	v := Stride[float32](src, 1, 0, 4)

	assert.Equal(t, 4, array.Len[float32](v))
	for k := 0; k < 4; k++ {
		assert.Equal(t, float32(2), v.At(k), "index %d", k)
	}

	w, err := array.AsWritable[float32](v, 1)
	require.NoError(t, err)
	w.SetAt(3, 9)
	assert.Equal(t, float32(9), src.At(1))
}

func TestJoinMixedWritability(t *testing.T) {
	a := array.NewMockSeq(0, []float32{1, 2})
	v := Join[float32](a, Const(float32(0), 2))

	_, err := array.AsWritable[float32](v, 1)
	require.ErrorIs(t, err, array.ErrContract)
}

func TestViewsAreNotResizable(t *testing.T) {
	src := array.NewMockSeq(0, []float32{1, 2, 3})
	for name, v := range map[string]array.Readable[float32]{
		"reverse": Reverse[float32](src),
		"stride":  Stride[float32](src, 0, 1, 3),
		"const":   Const(float32(1), 3),
		"join":    Join[float32](src, src),
	} {
		_, err := array.AsResizable[float32](v, 1)
		assert.ErrorIs(t, err, array.ErrContract, "%s view must not be resizable", name)
	}
}

func TestViewComposition(t *testing.T) {
	// Stride over a reverse view over a join.
	a := array.NewMockSeq(0, []float32{1, 2, 3})
	b := array.NewMockSeq(0, []float32{4, 5, 6})
	v := Stride(Reverse(Join[float32](a, b)), 0, 2, 3) // {6,5,4,3,2,1} at 0,2,4

	assert.Equal(t, float32(6), v.At(0))
	assert.Equal(t, float32(4), v.At(1))
	assert.Equal(t, float32(2), v.At(2))
}

func TestViewLengthFixedAtCreation(t *testing.T) {
	// Growing the source after view creation must not grow the view.
	src := native.FromSlice([]float32{1, 2, 3})
	v := Reverse[float32](src)

	src.Append(4)
	assert.Equal(t, 3, array.Len[float32](v))
	assert.Equal(t, float32(3), v.At(0))
}
