package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"histStat/config/histConfig"
	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// writeCSV 输出每个 bin 一行, overflow/underflow 启用时追加两行
func writeCSV(w io.Writer, h *histConfig.Histogram, digits int) error {
	spec := h.Spec()
	round := func(x float64) string {
		return decimal.NewFromFloat(x).Round(int32(digits)).String()
	}

	var out [][]string
	if h.IsCategory() {
		out = append(out, []string{"bin", "label", "count", "frequency"})
		for i, r := range h.Rows() {
			out = append(out, []string{strconv.Itoa(i), r.Label, strconv.FormatUint(r.Count, 10), round(r.Frequency)})
		}
		out = append(out, []string{"overflow", "", strconv.FormatUint(h.Overflow(), 10), ""})
	} else {
		out = append(out, []string{"bin", "low", "high", "count", "frequency", "density"})
		for i, r := range h.Rows() {
			out = append(out, []string{
				strconv.Itoa(i),
				round(r.Low),
				round(r.High),
				strconv.FormatUint(r.Count, 10),
				round(r.Frequency),
				round(r.Density),
			})
		}
		if spec.UnderflowEnabled() {
			out = append(out, []string{"underflow", "", "", strconv.FormatUint(h.Underflow(), 10), "", ""})
		}
		if spec.OverflowEnabled() {
			out = append(out, []string{"overflow", "", "", strconv.FormatUint(h.Overflow(), 10), "", ""})
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(out); err != nil {
		return errorx.Wrap(errCode.INVALID_VALUE, err, "write csv")
	}
	return nil
}
