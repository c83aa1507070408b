// Command histo bins a sample according to a YAML histogram specification
// and writes the bins as CSV.
//
//	histo -config hist.yaml -name latency -input data.txt
//	histo -config hist.yaml -input events.json -json-path "events.#.ms"
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"histStat/config/histConfig"
	"histStat/descriptive/summary"
	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
	"histStat/infra/observe/log/staticLog"
)

type options struct {
	config   string
	name     string
	input    string
	jsonPath string
	out      string
	digits   int
	workers  int
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		staticLog.Errorf("histo: %v", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("histo", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "hist.yaml", "histogram specification file")
	fs.StringVar(&o.name, "name", "", "histogram to build (optional when the file has one)")
	fs.StringVar(&o.input, "input", "-", "sample file, - for stdin")
	fs.StringVar(&o.jsonPath, "json-path", "", "gjson path selecting values from a JSON input")
	fs.StringVar(&o.out, "out", "-", "CSV output file, - for stdout")
	fs.IntVar(&o.digits, "digits", 6, "decimal places for bin edges and frequencies")
	fs.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "goroutines used to fill numeric histograms")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, errorx.Newf(errCode.INVALID_VALUE, "unexpected arguments %v", fs.Args())
	}
	return o, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := histConfig.Load(o.config)
	if err != nil {
		return err
	}
	staticLog.Init(cfg.Log)

	spec, err := selectSpec(cfg, o.name)
	if err != nil {
		return err
	}

	raw, err := readAll(o.input, stdin)
	if err != nil {
		return err
	}
	var tokens []string
	if o.jsonPath != "" {
		tokens, err = jsonValues(raw, o.jsonPath)
	} else {
		tokens, err = textValues(bytes.NewReader(raw))
	}
	if err != nil {
		return err
	}

	h, err := fill(spec, tokens, o.workers)
	if err != nil {
		return err
	}

	w := stdout
	if o.out != "-" {
		f, err := os.Create(o.out)
		if err != nil {
			return errorx.Wrap(errCode.INVALID_VALUE, err, "create output")
		}
		defer f.Close()
		w = f
	}
	return writeCSV(w, h, o.digits)
}

func selectSpec(cfg *histConfig.Config, name string) (histConfig.Spec, error) {
	if name == "" {
		if len(cfg.Histograms) == 1 {
			return cfg.Histograms[0], nil
		}
		return histConfig.Spec{}, errorx.Newf(errCode.INVALID_VALUE, "%d histograms configured, pick one with -name", len(cfg.Histograms))
	}
	spec, ok := cfg.Lookup(name)
	if !ok {
		return spec, errorx.Newf(errCode.NOT_FOUND, "no histogram named %q", name)
	}
	return spec, nil
}

// fill 数值轴先解析全部样本(供 breaks 启发式与缺省范围使用), 再并行装箱
func fill(spec histConfig.Spec, tokens []string, workers int) (*histConfig.Histogram, error) {
	if spec.Axis == histConfig.KindCategory {
		h, err := histConfig.Build(spec, nil)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			if err := h.PutText(tok); err != nil {
				return nil, err
			}
		}
		staticLog.Infof("%s: %d labels, %d unmatched", spec.Name, h.Total(), h.Overflow())
		return h, nil
	}

	sample, err := parseFloats(tokens)
	if err != nil {
		return nil, err
	}
	h, err := histConfig.Build(spec, sample)
	if err != nil {
		return nil, err
	}
	if err := h.PutFloats(sample, workers); err != nil {
		return nil, err
	}

	if s, err := summary.Describe(sample); err == nil {
		staticLog.Infof("%s: %v", spec.Name, s)
	}
	return h, nil
}

func readAll(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		return b, errorx.Wrap(errCode.INVALID_VALUE, err, "read stdin")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errorx.Wrap(errCode.NOT_FOUND, err, fmt.Sprintf("read %s", path))
	}
	return b, nil
}
