package hist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"histStat/histogram/axis"
	"histStat/histogram/breaks"
)

func TestHeuristicOverloads(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	r := RegularFrom[int](breaks.SturgesSample, sample, 0, 10)
	assert.Equal(t, 4, r.Axis().BinCount())

	i := IntegralFrom[int](breaks.SturgesSample, sample, 1)
	assert.Equal(t, 4, i.Axis().BinCount())

	tr := TransformFrom[int](breaks.FreedmanDiaconis, sample, 1, 8, math.Sqrt, func(x float64) float64 { return x * x })
	assert.Equal(t, breaks.FreedmanDiaconis(sample), tr.Axis().BinCount())

	b := BuiltinFrom[int](breaks.Scott, sample, axis.Log, 1, 8)
	assert.Equal(t, breaks.Scott(sample), b.Axis().BinCount())
}

func TestAutoRegular(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	acc := AutoRegular[int](breaks.SturgesSample, sample, axis.WithOverflowUnderflow())
	assert.Equal(t, 4, acc.Axis().BinCount())
	assert.Equal(t, []int{2, 2, 2, 2}, acc.Counts())
	assert.Equal(t, 0, acc.Overflow())
}

func TestAutoRegularRightClosed(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	acc := AutoRegular[int](breaks.SturgesSample, sample, axis.RightClosed())
	assert.Equal(t, []int{2, 2, 2, 2}, acc.Counts())
	assert.Equal(t, 8.0, acc.Axis().Bin(3).High)
	assert.Less(t, acc.Axis().Bin(0).Low, 1.0)

	flat := AutoRegular[int](breaks.SturgesSample, []float64{3, 3, 3}, axis.RightClosed())
	assert.Equal(t, uint64(3), flat.Total())
}

func TestBuiltinConstructor(t *testing.T) {
	acc := Builtin[int](axis.Log2, 4, 1.0, 16.0)
	acc.PutAll(1, 3, 5, 15)
	assert.Equal(t, []int{1, 1, 1, 1}, acc.Counts())

	tr := Transform[int](2, 1.0, 100.0, math.Log10, func(x float64) float64 { return math.Pow(10, x) })
	tr.PutAll(2, 20)
	assert.Equal(t, []int{1, 1}, tr.Counts())
}
