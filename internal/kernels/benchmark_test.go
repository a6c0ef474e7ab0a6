package kernels

import (
	"testing"

	"github.com/varray-dev/varray/internal/array"
	"github.com/varray-dev/varray/internal/backend/native"
)

func BenchmarkAddEx(b *testing.B) {
	n := 1024
	x := native.NewDense[float32](n)
	y := native.NewDense[float32](n)
	dst := native.NewDense[float32](n)
	for i := 0; i < n; i++ {
		x.SetAt(i, float32(i))
		y.SetAt(i, float32(n-i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := AddEx(array.All[float32](dst), array.All[float32](x), array.All[float32](y)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSum(b *testing.B) {
	n := 1024
	x := native.NewDense[float64](n)
	for i := 0; i < n; i++ {
		x.SetAt(i, float64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sum[float64](x)
	}
}
