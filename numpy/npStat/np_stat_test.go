package npStat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

func TestQuantileR7(t *testing.T) {
	x := []float64{4, 1, 3, 2}
	// numpy.quantile([1,2,3,4], [0, .25, .5, .75, 1]) -> 1, 1.75, 2.5, 3.25, 4
	got := Quantiles(x, 0, 0.25, 0.5, 0.75, 1)
	assert.InDeltaSlice(t, []float64{1, 1.75, 2.5, 3.25, 4}, got, 1e-12)
	assert.Equal(t, []float64{4, 1, 3, 2}, x, "input must not be reordered")
	assert.InDelta(t, 1.5, IQR(x), 1e-12)
}

func TestVarianceRange(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 32.0/7.0, Variance(x), 1e-12)
	assert.InDelta(t, 5.0, Mean(x), 1e-12)
	lo, hi := Range(x)
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 9.0, hi)
	assert.Equal(t, 8, ElementCount(x))
	assert.Equal(t, 0.0, Variance([]float64{3}))
}

func TestEmptySamplePanics(t *testing.T) {
	defer func() {
		r := recover()
		assert.True(t, errorx.HasCode(r, errCode.EMPTY_VALUE), "got %v", r)
	}()
	Variance(nil)
}

func TestQuantileOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Quantile([]float64{1, 2}, 1.5) })
}
