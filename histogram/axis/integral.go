package axis

import (
	"fmt"
	"math"
)

// IntegralAxis has n unit-width bins starting at low. For integer T the
// index is computed without floating point.
type IntegralAxis[T Number] struct {
	n        int
	low      T
	opts     Options
	integral bool
}

func NewIntegralAxis[T Number](n int, low T, opts ...Option) *IntegralAxis[T] {
	checkCount(n)
	half := 0.5
	return &IntegralAxis[T]{n: n, low: low, opts: buildOptions(opts), integral: T(half) == 0}
}

func (a *IntegralAxis[T]) BinCount() int    { return a.n }
func (a *IntegralAxis[T]) Low() T           { return a.low }
func (a *IntegralAxis[T]) High() T          { return a.low + T(a.n) }
func (a *IntegralAxis[T]) Options() Options { return a.opts }

func (a *IntegralAxis[T]) IsOverflow(x T) bool  { return isOverflow(x, a.High(), a.opts) }
func (a *IntegralAxis[T]) IsUnderflow(x T) bool { return isUnderflow(x, a.low, a.opts) }

func (a *IntegralAxis[T]) Index(x T) int {
	if idx, ok := wrapIndex(x, a.low, a.High(), a.n, a.opts); ok {
		return idx
	}
	if a.integral {
		if a.opts.RightClosed {
			return int(x - a.low - 1)
		}
		return int(x - a.low)
	}
	pos := float64(x) - float64(a.low)
	f := math.Floor(pos)
	idx := int(f)
	if a.opts.RightClosed && pos == f {
		idx--
	}
	return idx
}

func (a *IntegralAxis[T]) Bin(i int) Interval[T] {
	checkBin(i, a.n)
	lo := a.low + T(i)
	return Interval[T]{Low: lo, High: lo + 1}
}

func (a *IntegralAxis[T]) Equal(other Axis[T, Interval[T]]) bool {
	b, ok := other.(*IntegralAxis[T])
	return ok && *a == *b
}

func (a *IntegralAxis[T]) String() string {
	return fmt.Sprintf("integral(%d, %v)", a.n, a.low)
}
