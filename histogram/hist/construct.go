package hist

import (
	"math"

	"golang.org/x/exp/constraints"

	"histStat/histogram/axis"
	"histStat/histogram/breaks"
	"histStat/numpy/npStat"
)

// 各轴的构造入口: 建轴 + 分配清零的计数存储.

func Integral[C constraints.Integer, T axis.Number](n int, low T, opts ...axis.Option) *Accumulator[T, axis.Interval[T], C] {
	return New[T, axis.Interval[T], C](axis.NewIntegralAxis(n, low, opts...))
}

func Regular[C constraints.Integer, T constraints.Float](n int, low, high T, opts ...axis.Option) *Accumulator[T, axis.Interval[T], C] {
	return New[T, axis.Interval[T], C](axis.NewRegularAxis(n, low, high, opts...))
}

func Transform[C constraints.Integer, T constraints.Float](n int, low, high T, forward, inverse func(T) T, opts ...axis.Option) *Accumulator[T, axis.Interval[T], C] {
	return New[T, axis.Interval[T], C](axis.NewTransformAxis(n, low, high, forward, inverse, opts...))
}

// Builtin uses a registered transform such as axis.Log10.
func Builtin[C constraints.Integer, T constraints.Float](kind axis.TransformKind, n int, low, high T, opts ...axis.Option) *Accumulator[T, axis.Interval[T], C] {
	return New[T, axis.Interval[T], C](axis.NewBuiltinAxis(kind, n, low, high, opts...))
}

func Enum[C constraints.Integer, E comparable](members ...E) *Accumulator[E, axis.Slot[E], C] {
	return New[E, axis.Slot[E], C](axis.NewEnumAxis(members...))
}

// Category accepts string labels; unknown labels are counted as overflow.
func Category[C constraints.Integer, E comparable](members ...E) *Accumulator[string, axis.Slot[E], C] {
	return New[string, axis.Slot[E], C](axis.NewCategoryAxis(members...))
}

// Variable borrows edges for the lifetime of the accumulator.
func Variable[C constraints.Integer, T axis.Number](edges []T, opts ...axis.Option) *Accumulator[T, axis.Edges[T], C] {
	return New[T, axis.Edges[T], C](axis.NewVariableAxis(edges, opts...))
}

// 以下重载用 breaks 启发式替代显式 bin 数

func IntegralFrom[C constraints.Integer](fn breaks.Func, sample []float64, low float64, opts ...axis.Option) *Accumulator[float64, axis.Interval[float64], C] {
	return Integral[C](fn(sample), low, opts...)
}

func RegularFrom[C constraints.Integer](fn breaks.Func, sample []float64, low, high float64, opts ...axis.Option) *Accumulator[float64, axis.Interval[float64], C] {
	return Regular[C](fn(sample), low, high, opts...)
}

func TransformFrom[C constraints.Integer](fn breaks.Func, sample []float64, low, high float64, forward, inverse func(float64) float64, opts ...axis.Option) *Accumulator[float64, axis.Interval[float64], C] {
	return Transform[C](fn(sample), low, high, forward, inverse, opts...)
}

func BuiltinFrom[C constraints.Integer](fn breaks.Func, sample []float64, kind axis.TransformKind, low, high float64, opts ...axis.Option) *Accumulator[float64, axis.Interval[float64], C] {
	return Builtin[C](kind, fn(sample), low, high, opts...)
}

// AutoRegular sizes a regular axis from sample so that every sample value
// lands in a bin, and puts the sample. The open end of the interval is moved
// one ulp past the sample: above max for right-open axes, below min for
// right-closed ones.
func AutoRegular[C constraints.Integer](fn breaks.Func, sample []float64, opts ...axis.Option) *Accumulator[float64, axis.Interval[float64], C] {
	lo, hi := npStat.Range(sample)
	if hi == lo {
		hi = lo + 1
	}
	if axis.Resolve(opts...).RightClosed {
		lo = math.Nextafter(lo, math.Inf(-1))
	} else {
		hi = math.Nextafter(hi, math.Inf(1))
	}
	acc := Regular[C](fn(sample), lo, hi, opts...)
	acc.PutSlice(sample)
	return acc
}
