package axis

import (
	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// Options controls interval closedness, wraparound and overflow/underflow
// tallies. The zero value is a right-open axis without tallies.
type Options struct {
	RightClosed     bool `yaml:"rightClosed"`
	EnableOverflow  bool `yaml:"overflow"`
	EnableUnderflow bool `yaml:"underflow"`
	Circular        bool `yaml:"circular"`
}

// NewOptions sets flags in the order RightClosed, EnableOverflow,
// EnableUnderflow, Circular. Missing trailing flags are false.
func NewOptions(flags ...bool) Options {
	if len(flags) > 4 {
		panic(errorx.Newf(errCode.INVALID_VALUE, "axis options take at most 4 flags, got %d", len(flags)))
	}
	var o Options
	dst := []*bool{&o.RightClosed, &o.EnableOverflow, &o.EnableUnderflow, &o.Circular}
	for i, f := range flags {
		*dst[i] = f
	}
	return o
}

func (o Options) IsRightClosed() bool    { return o.RightClosed }
func (o Options) OverflowEnabled() bool  { return o.EnableOverflow }
func (o Options) UnderflowEnabled() bool { return o.EnableUnderflow }
func (o Options) IsCircular() bool       { return o.Circular }

// Option 构造轴时的可选项
type Option func(*Options)

func RightClosed() Option { return func(o *Options) { o.RightClosed = true } }

func WithOverflow() Option { return func(o *Options) { o.EnableOverflow = true } }

func WithUnderflow() Option { return func(o *Options) { o.EnableUnderflow = true } }

func WithOverflowUnderflow() Option {
	return func(o *Options) {
		o.EnableOverflow = true
		o.EnableUnderflow = true
	}
}

func Circular() Option { return func(o *Options) { o.Circular = true } }

// With replaces all flags with o.
func With(o Options) Option { return func(dst *Options) { *dst = o } }

// Resolve applies opts to the zero Options.
func Resolve(opts ...Option) Options { return buildOptions(opts) }

func buildOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
