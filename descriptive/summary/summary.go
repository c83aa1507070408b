// Package summary 描述性统计: 流式 Welford 累加器与批量 Describe.
package summary

import (
	"fmt"
	"math"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
	"histStat/numpy/npStat"
)

// Running maintains count, mean, variance and range of a stream using
// Welford's algorithm. The zero value is ready to use.
type Running struct {
	count    int64
	mean     float64
	m2       float64
	min, max float64
}

func (r *Running) Add(x float64) {
	if r.count == 0 {
		r.min, r.max = x, x
	} else {
		r.min = math.Min(r.min, x)
		r.max = math.Max(r.max, x)
	}
	r.count++
	delta := x - r.mean
	r.mean += delta / float64(r.count)
	r.m2 += delta * (x - r.mean)
}

func (r *Running) AddSlice(xs []float64) {
	for _, x := range xs {
		r.Add(x)
	}
}

// Merge combines two streams (Chan et al. parallel update).
func (r *Running) Merge(o *Running) {
	if o.count == 0 {
		return
	}
	if r.count == 0 {
		*r = *o
		return
	}
	n := r.count + o.count
	delta := o.mean - r.mean
	r.m2 += o.m2 + delta*delta*float64(r.count)*float64(o.count)/float64(n)
	r.mean += delta * float64(o.count) / float64(n)
	r.min = math.Min(r.min, o.min)
	r.max = math.Max(r.max, o.max)
	r.count = n
}

func (r *Running) Count() int64  { return r.count }
func (r *Running) Mean() float64 { return r.mean }
func (r *Running) Min() float64  { return r.min }
func (r *Running) Max() float64  { return r.max }

// Variance is the sample variance, 0 for fewer than two values.
func (r *Running) Variance() float64 {
	if r.count < 2 {
		return 0
	}
	return r.m2 / float64(r.count-1)
}

func (r *Running) StdDev() float64 { return math.Sqrt(r.Variance()) }

// Summary 样本概要, 分位数采用 R-7
type Summary struct {
	N        int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64
}

func Describe(sample []float64) (Summary, error) {
	if len(sample) == 0 {
		return Summary{}, errorx.New(errCode.EMPTY_VALUE, "input sample empty")
	}
	q := npStat.Quantiles(sample, 0, 0.25, 0.5, 0.75, 1)
	v := npStat.Variance(sample)
	return Summary{
		N:        npStat.ElementCount(sample),
		Mean:     npStat.Mean(sample),
		Variance: v,
		StdDev:   math.Sqrt(v),
		Min:      q[0],
		Q1:       q[1],
		Median:   q[2],
		Q3:       q[3],
		Max:      q[4],
	}, nil
}

func (s Summary) IQR() float64 { return s.Q3 - s.Q1 }

func (s Summary) String() string {
	return fmt.Sprintf("N %d  mean %.6g  std dev %.6g  min %.6g  q1 %.6g  median %.6g  q3 %.6g  max %.6g",
		s.N, s.Mean, s.StdDev, s.Min, s.Q1, s.Median, s.Q3, s.Max)
}
