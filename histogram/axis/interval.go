package axis

import "math"

// 区间判定, Integral/Regular/Transform/Variable 共用
//
// right-open:   [low, high), underflow x < low,  overflow x >= high
// right-closed: (low, high], underflow x <= low, overflow x > high
// circular 时边界值回绕到首/末 bin, 不计入 overflow/underflow.

func isOverflow[T Number](x, high T, o Options) bool {
	if o.RightClosed || o.Circular {
		return x > high
	}
	return x >= high
}

func isUnderflow[T Number](x, low T, o Options) bool {
	if o.RightClosed && !o.Circular {
		return x <= low
	}
	return x < low
}

// wrapIndex handles the circular boundary value. ok is false when x is not a
// wrap point.
func wrapIndex[T Number](x, low, high T, n int, o Options) (idx int, ok bool) {
	if !o.Circular {
		return 0, false
	}
	if !o.RightClosed && x == high {
		return 0, true
	}
	if o.RightClosed && x == low {
		return n - 1, true
	}
	return 0, false
}

// scaledIndex computes floor(n*(x-low)/(high-low)). For right-closed bins a
// position landing exactly on a bin boundary belongs to the bin below it.
func scaledIndex(x, low, high float64, n int, rightClosed bool) int {
	pos := float64(n) * (x - low) / (high - low)
	f := math.Floor(pos)
	idx := int(f)
	if rightClosed && pos == f {
		idx--
	}
	// n*(x-low)/(high-low) may round up to n for x just below high
	if idx == n && x < high {
		idx = n - 1
	}
	if idx < 0 && x > low {
		idx = 0
	}
	return idx
}
