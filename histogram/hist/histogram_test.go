package hist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHist(t *testing.T) {
	got := Hist([]float64{5, 1, 2, 3, 4}, 2)
	assert.Equal(t, []HistogramBin{
		{From: 1, To: 3, Count: 2},
		{From: 3, To: 5, Count: 3},
	}, got)
}

func TestHistDegenerate(t *testing.T) {
	assert.Nil(t, Hist(nil, 3))
	assert.Nil(t, Hist([]float64{1}, 0))

	got := Hist([]float64{7, 7, 7}, 4)
	assert.Len(t, got, 4)
	assert.Equal(t, 3, got[0].Count)
}

func TestHistDegenerateLarge(t *testing.T) {
	got := Hist([]float64{1e10, 1e10}, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, 1e10, got[0].From)
}
