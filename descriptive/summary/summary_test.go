package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

func TestRunningMatchesDescribe(t *testing.T) {
	dist := distuv.Normal{Mu: 3, Sigma: 0.5}
	sample := make([]float64, 2000)
	for i := range sample {
		sample[i] = dist.Rand()
	}

	var r Running
	r.AddSlice(sample)
	s, err := Describe(sample)
	require.NoError(t, err)

	assert.Equal(t, int64(s.N), r.Count())
	assert.InDelta(t, s.Mean, r.Mean(), 1e-9)
	assert.InDelta(t, s.Variance, r.Variance(), 1e-9)
	assert.Equal(t, s.Min, r.Min())
	assert.Equal(t, s.Max, r.Max())
}

func TestRunningMerge(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	var whole, left, right Running
	whole.AddSlice(xs)
	left.AddSlice(xs[:3])
	right.AddSlice(xs[3:])
	left.Merge(&right)

	assert.Equal(t, whole.Count(), left.Count())
	assert.InDelta(t, whole.Mean(), left.Mean(), 1e-12)
	assert.InDelta(t, 32.0/7.0, left.Variance(), 1e-12)
	assert.Equal(t, 2.0, left.Min())
	assert.Equal(t, 9.0, left.Max())

	var empty Running
	empty.Merge(&whole)
	assert.Equal(t, whole, empty)
	assert.Equal(t, 0.0, (&Running{}).Variance())
}

func TestDescribe(t *testing.T) {
	s, err := Describe([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, s.N)
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.InDelta(t, 1.5, s.IQR(), 1e-12)
	assert.Contains(t, s.String(), "median 2.5")

	_, err = Describe(nil)
	assert.Equal(t, errCode.EMPTY_VALUE, errorx.CodeOf(err))
}
