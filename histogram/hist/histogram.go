package hist

import (
	"math"

	"histStat/histogram/axis"
	"histStat/numpy/npStat"
)

// HistogramBin 每个分箱的结构
type HistogramBin struct {
	From  float64
	To    float64
	Count int
}

// Hist 按指定 bins 对 data 在 [min, max] 上等宽分箱, max 计入最后一个 bin
func Hist(data []float64, bins int) []HistogramBin {
	if len(data) == 0 || bins <= 0 {
		return nil
	}

	// 1. 求最小值最大值
	minV, maxV := npStat.Range(data)

	// 避免 max == min 导致除0
	if maxV == minV {
		maxV = math.Nextafter(minV, math.Inf(1))
	}

	// 2. 右端点走 overflow, 再并入最后一个 bin
	ax := axis.NewRegularAxis(bins, minV, maxV, axis.WithOverflow())
	acc := New[float64, axis.Interval[float64], int](ax)
	acc.PutSlice(data)

	// 3. 输出
	result := make([]HistogramBin, bins)
	for i, bc := range acc.Bins() {
		result[i] = HistogramBin{From: bc.Bin.Low, To: bc.Bin.High, Count: bc.Count}
	}
	result[bins-1].Count += acc.Overflow()

	return result
}
