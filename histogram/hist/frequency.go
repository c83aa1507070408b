package hist

import (
	"golang.org/x/exp/constraints"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// Frequency tracks the number of observations alongside an Accumulator so
// counts can be turned into relative frequencies.
type Frequency[T, B any, C constraints.Integer] struct {
	acc   *Accumulator[T, B, C]
	total uint64
}

func NewFrequency[T, B any, C constraints.Integer](acc *Accumulator[T, B, C]) *Frequency[T, B, C] {
	return &Frequency[T, B, C]{acc: acc, total: acc.Total()}
}

// Put counts one observation, whichever bin (or overflow/underflow) it lands in.
func (f *Frequency[T, B, C]) Put(v T) {
	f.acc.Put(v)
	f.total++
}

func (f *Frequency[T, B, C]) PutSlice(vs []T) {
	for _, v := range vs {
		f.Put(v)
	}
}

func (f *Frequency[T, B, C]) Merge(other *Frequency[T, B, C]) {
	f.acc.Merge(other.acc)
	f.total += other.total
}

func (f *Frequency[T, B, C]) Accumulator() *Accumulator[T, B, C] { return f.acc }

func (f *Frequency[T, B, C]) Total() uint64 { return f.total }

// Frequencies 各 bin 计数 / 总观测数, 无观测时全为 0
func (f *Frequency[T, B, C]) Frequencies() []float64 {
	out := make([]float64, len(f.acc.counts))
	if f.total == 0 {
		return out
	}
	for i, c := range f.acc.counts {
		out[i] = float64(c) / float64(f.total)
	}
	return out
}

func (f *Frequency[T, B, C]) OverflowFrequency() float64 {
	return f.ratio(uint64(f.acc.nOverflow))
}

func (f *Frequency[T, B, C]) UnderflowFrequency() float64 {
	return f.ratio(uint64(f.acc.nUnderflow))
}

func (f *Frequency[T, B, C]) ratio(n uint64) float64 {
	if f.total == 0 {
		return 0
	}
	return float64(n) / float64(f.total)
}

// Density divides each frequency by its bin width. Only axes whose bins
// report a width (Interval, Edges) support it.
func (f *Frequency[T, B, C]) Density() ([]float64, error) {
	freq := f.Frequencies()
	for i := range freq {
		b, ok := any(f.acc.axis.Bin(i)).(interface{ Span() float64 })
		if !ok {
			return nil, errorx.New(errCode.INVALID_VALUE, "density needs bins with a width")
		}
		freq[i] /= b.Span()
	}
	return freq, nil
}
