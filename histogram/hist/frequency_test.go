package hist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"histStat/histogram/axis"
)

func TestFrequency(t *testing.T) {
	f := NewFrequency(Regular[int](5, 2.0, 12.0, axis.WithOverflowUnderflow()))
	f.PutSlice([]float64{1, 3, 5, 13})

	assert.Equal(t, uint64(4), f.Total())
	assert.Equal(t, f.Accumulator().Total(), f.Total())
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0, 0, 0}, f.Frequencies(), 1e-12)
	assert.InDelta(t, 0.25, f.OverflowFrequency(), 1e-12)
	assert.InDelta(t, 0.25, f.UnderflowFrequency(), 1e-12)

	density, err := f.Density()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.125, 0.125, 0, 0, 0}, density, 1e-12)
}

func TestFrequencyMerge(t *testing.T) {
	a := NewFrequency(Integral[int](3, 0))
	b := NewFrequency(Integral[int](3, 0))
	a.PutSlice([]int{0, 1})
	b.PutSlice([]int{1, 2, 2})
	a.Merge(b)
	assert.Equal(t, uint64(5), a.Total())
	assert.InDeltaSlice(t, []float64{0.2, 0.4, 0.4}, a.Frequencies(), 1e-12)
}

func TestFrequencyEmptyAndEnum(t *testing.T) {
	f := NewFrequency(Enum[int]("x", "y"))
	assert.Equal(t, []float64{0, 0}, f.Frequencies())
	assert.Equal(t, 0.0, f.OverflowFrequency())

	_, err := f.Density()
	assert.Error(t, err)
}

func TestFrequencyFromFilledAccumulator(t *testing.T) {
	acc := Regular[int](2, 0.0, 1.0, axis.WithOverflow())
	acc.PutAll(0.1, 0.7, 3)
	f := NewFrequency(acc)
	assert.Equal(t, uint64(3), f.Total())
}
