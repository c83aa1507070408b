package hist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"histStat/histogram/axis"
	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

func TestIntegralScenario(t *testing.T) {
	acc := Integral[uint64](5, 2.0)
	acc.PutSlice([]float64{2.0, 2.5, 3.0, 3.5})
	assert.Equal(t, []uint64{2, 2, 0, 0, 0}, acc.Counts())

	acc.Put(4.0)
	assert.Equal(t, []uint64{2, 2, 1, 0, 0}, acc.Counts())
	assert.False(t, acc.HasOverflow())
	assert.Equal(t, uint64(5), acc.Total())
}

func TestRegularOverflowUnderflow(t *testing.T) {
	acc := Regular[int](5, 2.0, 12.0, axis.WithOverflowUnderflow())
	acc.Put(13.0)
	assert.Equal(t, 1, acc.Overflow())
	assert.Equal(t, []int{0, 0, 0, 0, 0}, acc.Counts())

	acc.Put(1.0)
	assert.Equal(t, 1, acc.Underflow())
	assert.Equal(t, 1, acc.Overflow())

	acc.PutAll(2.0, 11.99, 12.0)
	assert.Equal(t, []int{1, 0, 0, 0, 1}, acc.Counts())
	assert.Equal(t, 2, acc.Overflow())
	assert.Equal(t, uint64(5), acc.Total())
}

func TestLogAxisUnderflowOutsideDomain(t *testing.T) {
	acc := Builtin[int](axis.Log10, 3, 1.0, 1000.0, axis.WithOverflowUnderflow())
	acc.PutAll(-1, 0, 0.5, 5, 50, 5000)
	assert.Equal(t, 3, acc.Underflow())
	assert.Equal(t, 1, acc.Overflow())
	assert.Equal(t, []int{1, 1, 0}, acc.Counts())
}

func TestCheck(t *testing.T) {
	acc := Regular[int](5, 2.0, 12.0)
	require.NoError(t, acc.Check(2))
	require.NoError(t, acc.Check(11.9))
	err := acc.Check(42)
	assert.Equal(t, errCode.OUT_OF_RANGE, errorx.CodeOf(err))
	assert.Error(t, acc.Check(1))
	assert.Equal(t, uint64(0), acc.Total())

	tallied := Regular[int](5, 2.0, 12.0, axis.WithOverflowUnderflow())
	assert.NoError(t, tallied.Check(42))
	assert.NoError(t, tallied.Check(-42))

	enum := Enum[int](1, 2, 3)
	assert.NoError(t, enum.Check(2))
	assert.Equal(t, errCode.OUT_OF_RANGE, errorx.CodeOf(enum.Check(9)))
}

func TestUnderflowOnly(t *testing.T) {
	acc := Regular[int](5, 2.0, 12.0, axis.WithUnderflow())
	assert.False(t, acc.HasOverflow())
	assert.True(t, acc.HasUnderflow())
	acc.Put(1.0)
	assert.Equal(t, 1, acc.Underflow())

	defer func() {
		assert.True(t, errorx.HasCode(recover(), errCode.OUT_OF_RANGE))
	}()
	acc.Put(13.0)
}

type letter int

const (
	letterA letter = iota
	letterB
)

func (l letter) String() string { return [...]string{"A", "B"}[l] }

func TestCategoryScenario(t *testing.T) {
	acc := Category[uint32](letterA, letterB)
	assert.True(t, acc.HasOverflow())
	assert.False(t, acc.HasUnderflow())

	acc.Put("B")
	assert.Equal(t, []uint32{0, 1}, acc.Counts())
	acc.Put("C")
	assert.Equal(t, []uint32{0, 1}, acc.Counts())
	assert.Equal(t, uint32(1), acc.Overflow())
	assert.Equal(t, axis.Slot[letter]{Value: letterB}, acc.Bins()[1].Bin)
}

func TestEnumAccumulator(t *testing.T) {
	acc := Enum[int]("tcp", "udp", "icmp")
	acc.PutAll("udp", "udp", "icmp")
	assert.Equal(t, []int{0, 2, 1}, acc.Counts())
	assert.False(t, acc.HasOverflow())
	assert.Panics(t, func() { acc.Put("sctp") })
}

func TestVariableAccumulator(t *testing.T) {
	edges := []float64{0, 1, 10, 100}
	acc := Variable[int](edges, axis.WithOverflow())
	acc.PutAll(0.5, 5, 50, 99.9, 100, 1000)
	assert.Equal(t, []int{1, 1, 2}, acc.Counts())
	assert.Equal(t, 2, acc.Overflow())
	assert.Equal(t, axis.Edges[float64]{10, 100}, acc.Bins()[2].Bin)
}

func TestMergeDoubles(t *testing.T) {
	data := []float64{0.1, 0.4, 0.45, 0.9, 1.5, -2}
	a := Regular[int](4, 0.0, 1.0, axis.WithOverflowUnderflow())
	b := Regular[int](4, 0.0, 1.0, axis.WithOverflowUnderflow())
	a.PutSlice(data)
	b.PutSlice(data)
	original := append([]int(nil), a.Counts()...)

	a.Merge(b)
	for i := range original {
		assert.Equal(t, 2*original[i], a.Count(i))
	}
	assert.Equal(t, 2, a.Overflow())
	assert.Equal(t, 2, a.Underflow())
	assert.Equal(t, uint64(12), a.Total())
}

func TestMergeMismatch(t *testing.T) {
	a := Regular[int](4, 0.0, 1.0)
	b := Regular[int](4, 0.0, 2.0)
	defer func() {
		assert.True(t, errorx.HasCode(recover(), errCode.AXIS_MISMATCH))
	}()
	a.Merge(b)
}

func TestSharedAxis(t *testing.T) {
	ax := axis.NewLog10Axis(3, 1.0, 1000.0)
	a := New[float64, axis.Interval[float64], uint16](ax)
	b := New[float64, axis.Interval[float64], uint16](ax)
	a.Put(5)
	b.Put(50)
	MergeAll(a, b)
	assert.Equal(t, []uint16{1, 1, 0}, a.Counts())
}

func TestNewAccumulatorStorage(t *testing.T) {
	ax := axis.NewRegularAxis(3, 0.0, 3.0)
	assert.Panics(t, func() { NewAccumulator[float64, axis.Interval[float64], int](ax, make([]int, 2)) })

	storage := Allocate[int64](3)
	acc := NewAccumulator[float64, axis.Interval[float64], int64](ax, storage)
	acc.Put(2.5)
	assert.Equal(t, int64(1), storage[2], "put mutates the caller's storage")
	assert.Panics(t, func() { acc.Count(3) })
}

func TestOccupied(t *testing.T) {
	acc := Integral[int](6, 0)
	acc.PutAll(0, 2, 2, 5)
	bs := acc.Occupied()
	assert.Equal(t, uint(3), bs.Count())
	assert.True(t, bs.Test(2))
	assert.False(t, bs.Test(1))
}

func TestPutParallel(t *testing.T) {
	data := make([]float64, 10000)
	for i := range data {
		data[i] = float64(i%137) - 10
	}
	newAcc := func() *Accumulator[float64, axis.Interval[float64], int] {
		return Regular[int](12, 0.0, 120.0, axis.WithOverflowUnderflow())
	}
	serial := newAcc()
	serial.PutSlice(data)

	parallel := newAcc()
	PutParallel(parallel, newAcc, data, 4)
	require.Equal(t, serial.Counts(), parallel.Counts())
	assert.Equal(t, serial.Overflow(), parallel.Overflow())
	assert.Equal(t, serial.Underflow(), parallel.Underflow())
	assert.Equal(t, uint64(len(data)), parallel.Total())
}
