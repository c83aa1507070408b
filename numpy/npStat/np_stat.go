// Package npStat 直方图分箱启发式所依赖的样本统计量.
//
// Variance and StdDev are the unbiased (n-1) estimators from gonum; Quantile
// uses the Hyndman–Fan R-7 definition (numpy's and R's default), which gonum
// does not offer.
package npStat

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// ElementCount 样本元素个数
func ElementCount(x []float64) int {
	return len(x)
}

// Variance returns the sample variance of x. A single element has variance 0.
func Variance(x []float64) float64 {
	mustNotEmpty(x)
	if len(x) == 1 {
		return 0
	}
	return stat.Variance(x, nil)
}

func StdDev(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

func Mean(x []float64) float64 {
	mustNotEmpty(x)
	return stat.Mean(x, nil)
}

// Range 返回样本最小值和最大值
func Range(x []float64) (lo, hi float64) {
	mustNotEmpty(x)
	return floats.Min(x), floats.Max(x)
}

// Quantile returns the p-quantile of x (R-7). x is not modified.
func Quantile(x []float64, p float64) float64 {
	return Quantiles(x, p)[0]
}

// Quantiles computes several quantiles with a single sort.
func Quantiles(x []float64, ps ...float64) []float64 {
	mustNotEmpty(x)
	sorted := x
	if !slices.IsSorted(x) {
		sorted = slices.Clone(x)
		slices.Sort(sorted)
	}
	out := make([]float64, len(ps))
	for i, p := range ps {
		if p < 0 || p > 1 || math.IsNaN(p) {
			panic(errorx.Newf(errCode.OUT_OF_RANGE, "quantile p=%v outside [0, 1]", p))
		}
		out[i] = quantileR7(sorted, p)
	}
	return out
}

// IQR 四分位距 Q(0.75) - Q(0.25)
func IQR(x []float64) float64 {
	q := Quantiles(x, 0.25, 0.75)
	return q[1] - q[0]
}

// quantileR7 在已排序样本上做线性插值
func quantileR7(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}

func mustNotEmpty(x []float64) {
	if len(x) == 0 {
		panic(errorx.New(errCode.EMPTY_VALUE, "input sample empty"))
	}
}
