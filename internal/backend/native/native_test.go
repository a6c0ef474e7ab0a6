package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varray-dev/varray/internal/array"
)

func TestDense(t *testing.T) {
	d := NewDense[float32](3)

	lo, hi := d.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)

	d.SetAt(1, 5)
	assert.Equal(t, float32(5), d.At(1))
	assert.Equal(t, []float32{0, 5, 0}, d.Data())
}

func TestDenseAppend(t *testing.T) {
	d := FromSlice([]int32{1, 2})
	d.Append(3)

	_, hi := d.Bounds()
	assert.Equal(t, 3, hi)
	assert.Equal(t, int32(3), d.At(2))

	// Dense satisfies the full capability set.
	_, err := array.AsResizable[int32](d, 1)
	require.NoError(t, err)
}

func TestSeqBounds(t *testing.T) {
	s, err := NewSeq[float32](6, 9)
	require.NoError(t, err)

	lo, hi := s.Bounds()
	assert.Equal(t, 6, lo)
	assert.Equal(t, 9, hi)

	s.SetAt(7, 2.5)
	assert.Equal(t, float32(2.5), s.At(7))
}

func TestSeqInvertedRange(t *testing.T) {
	_, err := NewSeq[float32](5, 3)
	require.ErrorIs(t, err, array.ErrRange)
}

func TestSeqNotResizable(t *testing.T) {
	s := SeqFromSlice(1, []float32{1, 2})
	_, err := array.AsResizable[float32](s, 1)
	require.ErrorIs(t, err, array.ErrContract)
}

func TestAllocator(t *testing.T) {
	alloc := Alloc[float64]()

	w, err := alloc.NewArray(4)
	require.NoError(t, err)
	assert.Equal(t, 4, array.Len[float64](w))

	_, err = alloc.NewArray(-1)
	require.ErrorIs(t, err, array.ErrRange)
}
