package axis

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// RegularAxis has n equal-width bins over [low, high) or (low, high].
type RegularAxis[T constraints.Float] struct {
	n         int
	low, high T
	opts      Options
}

func NewRegularAxis[T constraints.Float](n int, low, high T, opts ...Option) *RegularAxis[T] {
	checkCount(n)
	// !(high > low) 同时拦截 NaN
	if !(high > low) {
		panic(errorx.Newf(errCode.INVALID_VALUE, "regular axis needs low < high, got [%v, %v]", low, high))
	}
	return &RegularAxis[T]{n: n, low: low, high: high, opts: buildOptions(opts)}
}

func (a *RegularAxis[T]) BinCount() int    { return a.n }
func (a *RegularAxis[T]) Low() T           { return a.low }
func (a *RegularAxis[T]) High() T          { return a.high }
func (a *RegularAxis[T]) Options() Options { return a.opts }

func (a *RegularAxis[T]) StepSize() T { return (a.high - a.low) / T(a.n) }

// Value is the fractional position of x in the axis range.
func (a *RegularAxis[T]) Value(x T) T { return (x - a.low) / (a.high - a.low) }

func (a *RegularAxis[T]) IsOverflow(x T) bool  { return isOverflow(x, a.high, a.opts) }
func (a *RegularAxis[T]) IsUnderflow(x T) bool { return isUnderflow(x, a.low, a.opts) }

func (a *RegularAxis[T]) Index(x T) int {
	if idx, ok := wrapIndex(x, a.low, a.high, a.n, a.opts); ok {
		return idx
	}
	return scaledIndex(float64(x), float64(a.low), float64(a.high), a.n, a.opts.RightClosed)
}

func (a *RegularAxis[T]) Bin(i int) Interval[T] {
	checkBin(i, a.n)
	step := a.StepSize()
	hi := a.low + T(i+1)*step
	if i == a.n-1 {
		hi = a.high
	}
	return Interval[T]{Low: a.low + T(i)*step, High: hi}
}

func (a *RegularAxis[T]) Equal(other Axis[T, Interval[T]]) bool {
	b, ok := other.(*RegularAxis[T])
	return ok && *a == *b
}

func (a *RegularAxis[T]) String() string {
	return fmt.Sprintf("regular(%d, %v, %v)", a.n, a.low, a.high)
}
