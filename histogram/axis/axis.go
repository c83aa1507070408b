// Package axis maps values to histogram bin indices.
//
// Every axis implements Axis; the overflow/underflow capabilities are separate
// interfaces so that an accumulator only checks what an axis can answer.
// Geometry is fixed at construction and never mutated, so one axis may be
// shared by any number of accumulators.
package axis

import (
	"golang.org/x/exp/constraints"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// Number 连续/整数轴的取值域
type Number interface {
	constraints.Integer | constraints.Float
}

// Axis maps values of type T to bins described by B.
type Axis[T, B any] interface {
	// Index returns the bin of v. The result is only meaningful for values
	// that are neither overflow nor underflow.
	Index(v T) int
	Bin(i int) B
	BinCount() int
}

type Overflower[T any] interface {
	IsOverflow(v T) bool
}

type Underflower[T any] interface {
	IsUnderflow(v T) bool
}

// Configured is implemented by axes built with Options. Axes that implement
// Overflower without Configured always report overflow.
type Configured interface {
	Options() Options
}

func checkBin(i, n int) {
	if i < 0 || i >= n {
		panic(errorx.Newf(errCode.OUT_OF_RANGE, "bin %d outside [0, %d)", i, n))
	}
}

func checkCount(n int) {
	if n <= 0 {
		panic(errorx.Newf(errCode.INVALID_VALUE, "bin count must be > 0, got %d", n))
	}
}
