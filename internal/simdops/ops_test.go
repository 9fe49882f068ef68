package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat64Ops(t *testing.T) {
	ops := Float64Ops()
	assert.Same(t, ops, Float64Ops())

	a := []float64{1, 2, 3, 4, 5, 6}
	b := []float64{0.5, -1, 2, 0, 1, -0.5}
	assert.InDelta(t, 0.5-2+6+0+5-3, ops.DotProductUnsafe(a, b), 1e-12)
	assert.InDelta(t, 21.0, ops.Sum(a), 1e-12)
}

// BenchmarkIndirectF64DotProduct measures the indirect call at wavelet filter lengths.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	ops := Float64Ops()
	a := make([]float64, 8)
	c := make([]float64, 8)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}
