package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/tidwall/gjson"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// textValues splits the input on whitespace.
func textValues(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, errorx.Wrap(errCode.INVALID_VALUE, sc.Err(), "scan input")
}

// jsonValues selects values with a gjson path. An array result contributes
// each element; numbers keep their literal text.
func jsonValues(doc []byte, path string) ([]string, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errorx.New(errCode.INVALID_VALUE, "input is not valid JSON")
	}
	res := gjson.GetBytes(doc, path)
	if !res.Exists() {
		return nil, errorx.Newf(errCode.NOT_FOUND, "json path %q matched nothing", path)
	}
	var out []string
	collect := func(v gjson.Result) {
		switch v.Type {
		case gjson.Null:
		case gjson.Number:
			out = append(out, v.Raw)
		default:
			out = append(out, v.String())
		}
	}
	if res.IsArray() {
		for _, v := range res.Array() {
			collect(v)
		}
	} else {
		collect(res)
	}
	return out, nil
}

func parseFloats(tokens []string) ([]float64, error) {
	out := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		x, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errorx.Wrap(errCode.INVALID_VALUE, err, "value #"+strconv.Itoa(i+1))
		}
		out = append(out, x)
	}
	return out, nil
}
