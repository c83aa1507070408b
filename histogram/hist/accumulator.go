// Package hist 直方图累加器: 按轴把数值路由到各 bin 计数, 并记录 overflow/underflow.
package hist

import (
	"reflect"
	"sync"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"

	"histStat/histogram/axis"
	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// Accumulator counts values of type T over an axis with bins of type B.
// sum(Counts()) + Overflow() + Underflow() always equals the number of values
// put. Put and Merge are the only mutators.
type Accumulator[T, B any, C constraints.Integer] struct {
	axis   axis.Axis[T, B]
	counts []C

	overflow   axis.Overflower[T]
	underflow  axis.Underflower[T]
	nOverflow  C
	nUnderflow C
}

// BinCount pairs a bin with its count.
type BinCount[B any, C constraints.Integer] struct {
	Bin   B
	Count C
}

// Allocate returns zeroed counter storage.
func Allocate[C constraints.Integer](n int) []C {
	return make([]C, n)
}

// NewAccumulator binds ax to counts, which must have ax.BinCount() elements.
// Overflow/underflow tallies are kept when the axis implements the capability
// and, for axes with Options, the capability is enabled.
func NewAccumulator[T, B any, C constraints.Integer](ax axis.Axis[T, B], counts []C) *Accumulator[T, B, C] {
	if len(counts) != ax.BinCount() {
		panic(errorx.Newf(errCode.INVALID_VALUE, "counter storage has %d slots, axis has %d bins", len(counts), ax.BinCount()))
	}
	a := &Accumulator[T, B, C]{axis: ax, counts: counts}

	cfg, configured := ax.(axis.Configured)
	if o, ok := ax.(axis.Overflower[T]); ok && (!configured || cfg.Options().EnableOverflow) {
		a.overflow = o
	}
	if u, ok := ax.(axis.Underflower[T]); ok && (!configured || cfg.Options().EnableUnderflow) {
		a.underflow = u
	}
	return a
}

// New allocates zeroed storage for ax.
func New[T, B any, C constraints.Integer](ax axis.Axis[T, B]) *Accumulator[T, B, C] {
	return NewAccumulator[T, B, C](ax, Allocate[C](ax.BinCount()))
}

func (a *Accumulator[T, B, C]) Put(v T) {
	if a.overflow != nil && a.overflow.IsOverflow(v) {
		a.nOverflow++
		return
	}
	if a.underflow != nil && a.underflow.IsUnderflow(v) {
		a.nUnderflow++
		return
	}
	i := a.axis.Index(v)
	if i < 0 || i >= len(a.counts) {
		panic(errorx.Newf(errCode.OUT_OF_RANGE, "value %v maps to bin %d outside [0, %d)", v, i, len(a.counts)))
	}
	a.counts[i]++
}

// Check reports whether Put(v) would succeed, without counting v. Values that
// are neither tallied nor mapped to a bin give an OUT_OF_RANGE error.
func (a *Accumulator[T, B, C]) Check(v T) (err error) {
	if a.overflow != nil && a.overflow.IsOverflow(v) {
		return nil
	}
	if a.underflow != nil && a.underflow.IsUnderflow(v) {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = errorx.Newf(errCode.OUT_OF_RANGE, "value %v: %v", v, r)
		}
	}()
	if i := a.axis.Index(v); i < 0 || i >= len(a.counts) {
		return errorx.Newf(errCode.OUT_OF_RANGE, "value %v maps to bin %d outside [0, %d)", v, i, len(a.counts))
	}
	return nil
}

func (a *Accumulator[T, B, C]) PutAll(vs ...T) { a.PutSlice(vs) }

// PutSlice puts each element in order.
func (a *Accumulator[T, B, C]) PutSlice(vs []T) {
	for _, v := range vs {
		a.Put(v)
	}
}

// Merge adds other's counts into a. Both axes must be equal.
func (a *Accumulator[T, B, C]) Merge(other *Accumulator[T, B, C]) {
	if !sameAxis(a.axis, other.axis) || len(a.counts) != len(other.counts) {
		panic(errorx.Newf(errCode.AXIS_MISMATCH, "cannot merge histograms over %v and %v", a.axis, other.axis))
	}
	for i, c := range other.counts {
		a.counts[i] += c
	}
	if a.overflow != nil && other.overflow != nil {
		a.nOverflow += other.nOverflow
	}
	if a.underflow != nil && other.underflow != nil {
		a.nUnderflow += other.nUnderflow
	}
}

func sameAxis[T, B any](a, b axis.Axis[T, B]) bool {
	if eq, ok := a.(interface{ Equal(axis.Axis[T, B]) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

func (a *Accumulator[T, B, C]) Axis() axis.Axis[T, B] { return a.axis }

// Counts is the live counter storage; callers must not modify it.
func (a *Accumulator[T, B, C]) Counts() []C { return a.counts }

func (a *Accumulator[T, B, C]) Count(i int) C {
	if i < 0 || i >= len(a.counts) {
		panic(errorx.Newf(errCode.OUT_OF_RANGE, "bin %d outside [0, %d)", i, len(a.counts)))
	}
	return a.counts[i]
}

func (a *Accumulator[T, B, C]) HasOverflow() bool  { return a.overflow != nil }
func (a *Accumulator[T, B, C]) HasUnderflow() bool { return a.underflow != nil }
func (a *Accumulator[T, B, C]) Overflow() C        { return a.nOverflow }
func (a *Accumulator[T, B, C]) Underflow() C       { return a.nUnderflow }

// Total is the number of values put, overflow and underflow included.
func (a *Accumulator[T, B, C]) Total() uint64 {
	total := uint64(a.nOverflow) + uint64(a.nUnderflow)
	for _, c := range a.counts {
		total += uint64(c)
	}
	return total
}

// Occupied marks the bins with a non-zero count.
func (a *Accumulator[T, B, C]) Occupied() *bitset.BitSet {
	bs := bitset.New(uint(len(a.counts)))
	for i, c := range a.counts {
		if c != 0 {
			bs.Set(uint(i))
		}
	}
	return bs
}

func (a *Accumulator[T, B, C]) Bins() []BinCount[B, C] {
	out := make([]BinCount[B, C], len(a.counts))
	for i, c := range a.counts {
		out[i] = BinCount[B, C]{Bin: a.axis.Bin(i), Count: c}
	}
	return out
}

// MergeAll folds parts into dst.
func MergeAll[T, B any, C constraints.Integer](dst *Accumulator[T, B, C], parts ...*Accumulator[T, B, C]) *Accumulator[T, B, C] {
	for _, p := range parts {
		dst.Merge(p)
	}
	return dst
}

// PutParallel splits data into shards, fills one accumulator per goroutine
// from newAcc and merges them into dst at the end.
func PutParallel[T, B any, C constraints.Integer](dst *Accumulator[T, B, C], newAcc func() *Accumulator[T, B, C], data []T, workers int) {
	if workers <= 1 || len(data) < 2*workers {
		dst.PutSlice(data)
		return
	}
	shard := (len(data) + workers - 1) / workers
	parts := make([]*Accumulator[T, B, C], 0, workers)
	for lo := 0; lo < len(data); lo += shard {
		parts = append(parts, newAcc())
	}

	var wg sync.WaitGroup
	for i, part := range parts {
		part := part
		lo := i * shard
		hi := min(lo+shard, len(data))
		wg.Add(1)
		go func() {
			defer wg.Done()
			part.PutSlice(data[lo:hi])
		}()
	}
	wg.Wait()
	MergeAll(dst, parts...)
}
