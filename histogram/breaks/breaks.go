// Package breaks 从样本估计直方图分箱数.
//
// All heuristics assume a non-degenerate sample: an empty sample or a zero
// bin width panics with a coded errorx value.
package breaks

import (
	"math"
	"slices"
	"strings"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
	"histStat/infra/observe/log/staticLog"
	"histStat/numpy/npStat"
)

// Func computes a bin count from a sample.
type Func func(sample []float64) int

// scottFactor 3.49 ≈ (24*sqrt(pi))^(1/3)
const scottFactor = 3.49

// Freedman–Diaconis 退化样本时分位窗口 [1/d, 1-1/d], d = 8 ... 512
const (
	fdFirstDivisor = 8
	fdLastDivisor  = 512
)

// Sturges returns ceil(log2(n)) + 1.
func Sturges(n int) int {
	if n <= 0 {
		panic(errorx.Newf(errCode.EMPTY_VALUE, "sturges needs n > 0, got %d", n))
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// SturgesSample adapts Sturges to Func.
func SturgesSample(sample []float64) int {
	return Sturges(npStat.ElementCount(sample))
}

// BinsFromWidth returns ceil((max-min)/width), and at least one bin.
func BinsFromWidth(sample []float64, width float64) int {
	if !(width > 0) {
		panic(errorx.Newf(errCode.DEGENERATE_VALUE, "bin width must be > 0, got %v", width))
	}
	lo, hi := npStat.Range(sample)
	return max(1, int(math.Ceil((hi-lo)/width)))
}

// Scott uses width 3.49*stddev/cbrt(n).
func Scott(sample []float64) int {
	n := npStat.ElementCount(sample)
	if n == 0 {
		panic(errorx.New(errCode.EMPTY_VALUE, "scott: input sample empty"))
	}
	width := scottFactor * npStat.StdDev(sample) / math.Cbrt(float64(n))
	if !(width > 0) {
		panic(errorx.New(errCode.DEGENERATE_VALUE, "scott: sample has zero variance"))
	}
	return BinsFromWidth(sample, width)
}

// FreedmanDiaconis uses width 2*IQR/cbrt(n). When the IQR is zero the
// quantile window widens from [1/8, 7/8] to [1/512, 511/512] and the width
// becomes spread/(1-2q)/cbrt(n). A sample whose spread stays zero gets one bin.
func FreedmanDiaconis(sample []float64) int {
	n := npStat.ElementCount(sample)
	if n == 0 {
		panic(errorx.New(errCode.EMPTY_VALUE, "freedman-diaconis: input sample empty"))
	}
	sorted := slices.Clone(sample)
	slices.Sort(sorted)
	cbrtN := math.Cbrt(float64(n))

	iqr := npStat.IQR(sorted)
	if iqr > 0 {
		return BinsFromWidth(sorted, 2*iqr/cbrtN)
	}

	for d := fdFirstDivisor; d <= fdLastDivisor; d *= 2 {
		q := 1 / float64(d)
		qs := npStat.Quantiles(sorted, q, 1-q)
		if spread := qs[1] - qs[0]; spread > 0 {
			staticLog.Debugf("freedman-diaconis: zero IQR, using quantiles [1/%d, %d/%d]", d, d-1, d)
			return BinsFromWidth(sorted, spread/(1-2*q)/cbrtN)
		}
	}
	staticLog.Warnf("freedman-diaconis: sample of %d has no spread up to 1/%d quantiles, using 1 bin", n, fdLastDivisor)
	return 1
}

// ByName resolves "sturges", "scott" or "fd" / "freedman-diaconis".
func ByName(name string) (Func, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sturges":
		return SturgesSample, nil
	case "scott":
		return Scott, nil
	case "fd", "freedman-diaconis", "freedmandiaconis":
		return FreedmanDiaconis, nil
	}
	return nil, errorx.Newf(errCode.NOT_FOUND, "unknown break heuristic %q", name)
}
