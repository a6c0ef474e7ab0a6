package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceResolve(t *testing.T) {
	seq := NewMockSeq(0, []float32{1, 2, 3, 4, 5})

	tests := []struct {
		name      string
		slice     Slice[float32]
		wantStart int
		wantCount int
		wantErr   error
	}{
		{"all", All[float32](seq), 0, 5, nil},
		{"from", From[float32](seq, 2), 2, 3, nil},
		{"span", Span[float32](seq, 1, 3), 1, 3, nil},
		{"empty span", Span[float32](seq, 5, 0), 5, 0, nil},
		{"past end", Span[float32](seq, 3, 3), 0, 0, ErrRange},
		{"negative count", Span[float32](seq, 1, -2), 0, 0, ErrRange},
		{"start below range", Span[float32](seq, -1, 2), 0, 0, ErrRange},
		{"rest from past end", From[float32](seq, 6), 0, 0, ErrRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, count, err := tt.slice.Resolve()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestSliceResolveSequenceRange(t *testing.T) {
	// A sequence valid over [6, 9): addressing index 2 is a range violation
	// even though a zero-based container of the same size would accept it.
	seq := NewMockSeq(6, []float32{10, 20, 30})

	_, _, err := Span[float32](seq, 2, 3).Resolve()
	require.ErrorIs(t, err, ErrRange)

	start, count, err := Span[float32](seq, 6, 3).Resolve()
	require.NoError(t, err)
	assert.Equal(t, 6, start)
	assert.Equal(t, 3, count)
	assert.Equal(t, float32(10), seq.At(start))
}

func TestSliceResolveNilSource(t *testing.T) {
	_, _, err := Slice[float32]{}.Resolve()
	require.ErrorIs(t, err, ErrContract)
}

func TestAsWritableContract(t *testing.T) {
	seq := NewMockSeq(0, []float32{1, 2, 3})

	w, err := AsWritable[float32](seq, 1)
	require.NoError(t, err)
	w.SetAt(0, 9)
	assert.Equal(t, float32(9), seq.At(0))

	_, err = AsWritable[float32](ReadOnly[float32]{R: seq}, 2)
	require.ErrorIs(t, err, ErrContract)
	assert.Contains(t, err.Error(), "argument 2")
}

func TestAsResizableContract(t *testing.T) {
	seq := NewMockSeq(0, []float32{1})
	_, err := AsResizable[float32](seq, 1)
	require.ErrorIs(t, err, ErrContract)
}

func TestResolveWritable(t *testing.T) {
	seq := NewMockSeq(0, []float32{1, 2, 3})

	_, _, _, err := All[float32](ReadOnly[float32]{R: seq}).ResolveWritable(1)
	require.ErrorIs(t, err, ErrContract)

	w, start, count, err := From[float32](seq, 1).ResolveWritable(1)
	require.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 2, count)
	w.SetAt(2, 7)
	assert.Equal(t, float32(7), seq.At(2))
}

func TestNestFlattenRoundTrip(t *testing.T) {
	flat := []float64{1, 2, 3, 4, 5, 6}

	nested, err := Nest(flat, 2, 3)
	require.NoError(t, err)
	require.Len(t, nested, 2)
	assert.Equal(t, []float64{1, 2, 3}, nested[0])
	assert.Equal(t, []float64{4, 5, 6}, nested[1])

	back, err := Flatten(nested)
	require.NoError(t, err)
	assert.Equal(t, flat, back)
}

func TestNestCountMismatch(t *testing.T) {
	_, err := Nest([]float64{1, 2, 3}, 2, 2)
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Nest([]float64{1, 2, 3, 4}, -2, -2)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFlattenRagged(t *testing.T) {
	_, err := Flatten([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFlattenEmpty(t *testing.T) {
	flat, err := Flatten([][]float64{})
	require.NoError(t, err)
	assert.Empty(t, flat)
}

func TestLen(t *testing.T) {
	assert.Equal(t, 3, Len[float32](NewMockSeq(6, []float32{1, 2, 3})))
	assert.Equal(t, 0, Len[float32](NewMockSeq[float32](0, nil)))
}
