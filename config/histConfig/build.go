package histConfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"histStat/histogram/axis"
	"histStat/histogram/breaks"
	"histStat/histogram/hist"
	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
	"histStat/infra/observe/log/staticLog"
	"histStat/numpy/npStat"
)

type (
	intervalAcc = hist.Accumulator[float64, axis.Interval[float64], uint64]
	edgesAcc    = hist.Accumulator[float64, axis.Edges[float64], uint64]
	categoryAcc = hist.Accumulator[string, axis.Slot[string], uint64]
)

// Histogram is a configured accumulator over float64 values or string labels.
// Exactly one of the accumulators is set.
type Histogram struct {
	spec     Spec
	interval *intervalAcc
	edges    *edgesAcc
	category *categoryAcc
}

// Row is one reported bin.
type Row struct {
	Label     string
	Low       float64
	High      float64
	Count     uint64
	Frequency float64
	Density   float64
}

// Build resolves bin count and range against sample, which may be nil when
// the spec fixes both.
func Build(s Spec, sample []float64) (h *Histogram, err error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			h, err = nil, errorx.Wrap(errCode.INVALID_VALUE, e, "build "+s.Name)
		}
	}()

	h = &Histogram{spec: s}
	opts := []axis.Option{axis.With(s.Options)}

	switch s.Axis {
	case KindVariable:
		h.edges = hist.Variable[uint64](s.Edges, opts...)
	case KindCategory:
		h.category = hist.Category[uint64](s.Categories...)
	case KindIntegral:
		n, err := binCount(s, sample)
		if err != nil {
			return nil, err
		}
		low, err := integralLow(s, sample)
		if err != nil {
			return nil, err
		}
		h.interval = hist.Integral[uint64](n, low, opts...)
	default:
		n, err := binCount(s, sample)
		if err != nil {
			return nil, err
		}
		low, high, err := bounds(s, sample)
		if err != nil {
			return nil, err
		}
		if s.Axis == KindTransform {
			h.interval = hist.Builtin[uint64](axis.TransformKind(s.Transform), n, low, high, opts...)
		} else {
			h.interval = hist.Regular[uint64](n, low, high, opts...)
		}
	}
	staticLog.Debugf("histConfig: built %s over %v", s.Name, h.axisString())
	return h, nil
}

func binCount(s Spec, sample []float64) (int, error) {
	if s.Bins > 0 {
		return s.Bins, nil
	}
	fn, err := breaks.ByName(s.Breaks)
	if err != nil {
		return 0, err
	}
	if len(sample) == 0 {
		return 0, errorx.Newf(errCode.EMPTY_VALUE, "%s: breaks %q needs a sample", s.Name, s.Breaks)
	}
	return fn(sample), nil
}

func integralLow(s Spec, sample []float64) (float64, error) {
	if s.Low != nil {
		return *s.Low, nil
	}
	if len(sample) == 0 {
		return 0, errorx.Newf(errCode.EMPTY_VALUE, "%s: low missing and no sample", s.Name)
	}
	lo, _ := npStat.Range(sample)
	return math.Floor(lo), nil
}

// bounds 缺省的上下界取样本范围, 开端外移一个 ulp 使样本全部落入 bin:
// 左闭右开时上界右移, 左开右闭时下界左移
func bounds(s Spec, sample []float64) (low, high float64, err error) {
	if s.Low != nil && s.High != nil {
		return *s.Low, *s.High, nil
	}
	if len(sample) == 0 {
		return 0, 0, errorx.Newf(errCode.EMPTY_VALUE, "%s: low/high missing and no sample", s.Name)
	}
	lo, hi := npStat.Range(sample)
	if s.RightClosed {
		low, high = math.Nextafter(lo, math.Inf(-1)), hi
	} else {
		low, high = lo, math.Nextafter(hi, math.Inf(1))
	}
	if s.Low != nil {
		low = *s.Low
	}
	if s.High != nil {
		high = *s.High
	}
	if !(high > low) {
		return 0, 0, errorx.Newf(errCode.DEGENERATE_VALUE, "%s: empty range [%v, %v]", s.Name, low, high)
	}
	return low, high, nil
}

func (h *Histogram) Spec() Spec   { return h.spec }
func (h *Histogram) Name() string { return h.spec.Name }

// IsCategory reports whether the histogram takes labels instead of numbers.
func (h *Histogram) IsCategory() bool { return h.category != nil }

// check 预检 x, 区间外且未开启 overflow/underflow 统计时返回 OUT_OF_RANGE
func (h *Histogram) check(x float64) error {
	if math.IsNaN(x) {
		return errorx.Newf(errCode.INVALID_VALUE, "%s: NaN", h.spec.Name)
	}
	var err error
	switch {
	case h.interval != nil:
		err = h.interval.Check(x)
	case h.edges != nil:
		err = h.edges.Check(x)
	}
	return errorx.Wrap(errCode.OUT_OF_RANGE, err, h.spec.Name)
}

// PutFloat counts x, or returns an error and counts nothing when x has no
// bin and no tally on this axis.
func (h *Histogram) PutFloat(x float64) error {
	if h.category != nil {
		h.category.Put(strconv.FormatFloat(x, 'g', -1, 64))
		return nil
	}
	if err := h.check(x); err != nil {
		return err
	}
	if h.interval != nil {
		h.interval.Put(x)
	} else {
		h.edges.Put(x)
	}
	return nil
}

// PutFloats fills the histogram with up to workers goroutines. All values are
// checked first; on error nothing is counted.
func (h *Histogram) PutFloats(xs []float64, workers int) error {
	if h.category != nil {
		for _, x := range xs {
			if err := h.PutFloat(x); err != nil {
				return err
			}
		}
		return nil
	}
	for i, x := range xs {
		if err := h.check(x); err != nil {
			return errorx.Wrap(errorx.CodeOf(err), err, fmt.Sprintf("value #%d", i+1))
		}
	}
	switch {
	case h.interval != nil:
		ax := h.interval.Axis()
		hist.PutParallel(h.interval, func() *intervalAcc { return hist.New[float64, axis.Interval[float64], uint64](ax) }, xs, workers)
	default:
		ax := h.edges.Axis()
		hist.PutParallel(h.edges, func() *edgesAcc { return hist.New[float64, axis.Edges[float64], uint64](ax) }, xs, workers)
	}
	return nil
}

// PutText parses s as a number for numeric axes and uses it verbatim as a
// label for category axes.
func (h *Histogram) PutText(s string) error {
	if h.category != nil {
		h.category.Put(s)
		return nil
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errorx.Wrap(errCode.INVALID_VALUE, err, h.spec.Name)
	}
	return h.PutFloat(x)
}

func (h *Histogram) Overflow() uint64 {
	switch {
	case h.interval != nil:
		return h.interval.Overflow()
	case h.edges != nil:
		return h.edges.Overflow()
	}
	return h.category.Overflow()
}

func (h *Histogram) Underflow() uint64 {
	switch {
	case h.interval != nil:
		return h.interval.Underflow()
	case h.edges != nil:
		return h.edges.Underflow()
	}
	return h.category.Underflow()
}

func (h *Histogram) Total() uint64 {
	switch {
	case h.interval != nil:
		return h.interval.Total()
	case h.edges != nil:
		return h.edges.Total()
	}
	return h.category.Total()
}

// Rows reports every bin with its count, frequency and density. Category
// bins have no width and report zero density.
func (h *Histogram) Rows() []Row {
	switch {
	case h.interval != nil:
		return intervalRows(h.interval, func(b axis.Interval[float64]) (float64, float64) { return b.Low, b.High })
	case h.edges != nil:
		return intervalRows(h.edges, func(b axis.Edges[float64]) (float64, float64) { return b.Low(), b.High() })
	}
	freq := hist.NewFrequency(h.category).Frequencies()
	rows := make([]Row, 0, len(freq))
	for i, bc := range h.category.Bins() {
		rows = append(rows, Row{Label: bc.Bin.Value, Count: bc.Count, Frequency: freq[i]})
	}
	return rows
}

func intervalRows[B any](acc *hist.Accumulator[float64, B, uint64], edges func(B) (float64, float64)) []Row {
	f := hist.NewFrequency(acc)
	freq := f.Frequencies()
	density, _ := f.Density()
	rows := make([]Row, 0, len(freq))
	for i, bc := range acc.Bins() {
		lo, hi := edges(bc.Bin)
		r := Row{Low: lo, High: hi, Count: bc.Count, Frequency: freq[i]}
		if density != nil {
			r.Density = density[i]
		}
		rows = append(rows, r)
	}
	return rows
}

func (h *Histogram) axisString() string {
	switch {
	case h.interval != nil:
		return fmt.Sprint(h.interval.Axis())
	case h.edges != nil:
		return fmt.Sprint(h.edges.Axis())
	}
	return fmt.Sprint(h.category.Axis())
}
