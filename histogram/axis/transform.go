package axis

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"golang.org/x/exp/constraints"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// TransformKind names a built-in forward transform.
type TransformKind string

const (
	Exp   TransformKind = "exp"
	Log   TransformKind = "log"
	Log2  TransformKind = "log2"
	Log10 TransformKind = "log10"
	Sqrt  TransformKind = "sqrt"
)

// Transform is a monotonically increasing forward function and its inverse.
// Inverse(Forward(x)) must return x for every x on the axis; this is not
// checked.
type Transform[T constraints.Float] struct {
	Name    string
	Forward func(T) T
	Inverse func(T) T
}

// 内置正变换 -> 反变换
var builtinTransforms = map[TransformKind][2]func(float64) float64{
	Exp:   {math.Exp, math.Log},
	Log:   {math.Log, math.Exp},
	Log2:  {math.Log2, math.Exp2},
	Log10: {math.Log10, func(x float64) float64 { return math.Pow(10, x) }},
	Sqrt:  {math.Sqrt, func(x float64) float64 { return x * x }},
}

// BuiltinTransform returns the registered transform for kind.
func BuiltinTransform[T constraints.Float](kind TransformKind) (Transform[T], bool) {
	fns, ok := builtinTransforms[kind]
	if !ok {
		return Transform[T]{}, false
	}
	fwd, inv := fns[0], fns[1]
	return Transform[T]{
		Name:    string(kind),
		Forward: func(x T) T { return T(fwd(float64(x))) },
		Inverse: func(x T) T { return T(inv(float64(x))) },
	}, true
}

// LookupTransform resolves a case-insensitive transform name such as "log10".
func LookupTransform[T constraints.Float](name string) (Transform[T], error) {
	kind := TransformKind(strings.ToLower(strings.TrimSpace(name)))
	t, ok := BuiltinTransform[T](kind)
	if !ok {
		return t, errorx.Newf(errCode.NOT_FOUND, "unknown transform %q", name)
	}
	return t, nil
}

// TransformAxis is a RegularAxis laid out in transformed coordinates. Bin
// edges are reported back in original units.
type TransformAxis[T constraints.Float] struct {
	low, high T
	tf        Transform[T]
	inner     *RegularAxis[T]
}

// NewTransformAxis builds n bins equally spaced in forward-space between
// low and high.
func NewTransformAxis[T constraints.Float](n int, low, high T, forward, inverse func(T) T, opts ...Option) *TransformAxis[T] {
	return NewTransformAxisOf(n, low, high, Transform[T]{Forward: forward, Inverse: inverse}, opts...)
}

func NewTransformAxisOf[T constraints.Float](n int, low, high T, tf Transform[T], opts ...Option) *TransformAxis[T] {
	if tf.Forward == nil || tf.Inverse == nil {
		panic(errorx.New(errCode.INVALID_VALUE, "transform axis needs forward and inverse functions"))
	}
	return &TransformAxis[T]{
		low:   low,
		high:  high,
		tf:    tf,
		inner: NewRegularAxis(n, tf.Forward(low), tf.Forward(high), opts...),
	}
}

// NewBuiltinAxis builds a transform axis from the registry.
func NewBuiltinAxis[T constraints.Float](kind TransformKind, n int, low, high T, opts ...Option) *TransformAxis[T] {
	tf, ok := BuiltinTransform[T](kind)
	if !ok {
		panic(errorx.Newf(errCode.NOT_FOUND, "unknown transform %q", kind))
	}
	return NewTransformAxisOf(n, low, high, tf, opts...)
}

func NewLogAxis[T constraints.Float](n int, low, high T, opts ...Option) *TransformAxis[T] {
	return NewBuiltinAxis(Log, n, low, high, opts...)
}

func NewLog2Axis[T constraints.Float](n int, low, high T, opts ...Option) *TransformAxis[T] {
	return NewBuiltinAxis(Log2, n, low, high, opts...)
}

func NewLog10Axis[T constraints.Float](n int, low, high T, opts ...Option) *TransformAxis[T] {
	return NewBuiltinAxis(Log10, n, low, high, opts...)
}

func NewSqrtAxis[T constraints.Float](n int, low, high T, opts ...Option) *TransformAxis[T] {
	return NewBuiltinAxis(Sqrt, n, low, high, opts...)
}

func NewExpAxis[T constraints.Float](n int, low, high T, opts ...Option) *TransformAxis[T] {
	return NewBuiltinAxis(Exp, n, low, high, opts...)
}

func (a *TransformAxis[T]) BinCount() int    { return a.inner.BinCount() }
func (a *TransformAxis[T]) Low() T           { return a.low }
func (a *TransformAxis[T]) High() T          { return a.high }
func (a *TransformAxis[T]) Options() Options { return a.inner.Options() }
func (a *TransformAxis[T]) Name() string     { return a.tf.Name }

// Inner is the regular axis in transformed coordinates.
func (a *TransformAxis[T]) Inner() *RegularAxis[T] { return a.inner }

func (a *TransformAxis[T]) Index(x T) int        { return a.inner.Index(a.tf.Forward(x)) }
func (a *TransformAxis[T]) IsOverflow(x T) bool  { return a.inner.IsOverflow(a.tf.Forward(x)) }
// IsUnderflow also holds for values outside the forward function's domain,
// such as x <= 0 on a log axis.
func (a *TransformAxis[T]) IsUnderflow(x T) bool {
	y := a.tf.Forward(x)
	return math.IsNaN(float64(y)) || a.inner.IsUnderflow(y)
}

func (a *TransformAxis[T]) Bin(i int) Interval[T] {
	b := a.inner.Bin(i)
	return Interval[T]{Low: a.tf.Inverse(b.Low), High: a.tf.Inverse(b.High)}
}

// Equal compares geometry and the transform. Built-in transforms match by
// name, user transforms by function identity.
func (a *TransformAxis[T]) Equal(other Axis[T, Interval[T]]) bool {
	b, ok := other.(*TransformAxis[T])
	if !ok || a.low != b.low || a.high != b.high || *a.inner != *b.inner {
		return false
	}
	if a.tf.Name != "" || b.tf.Name != "" {
		return a.tf.Name == b.tf.Name
	}
	return sameFunc(a.tf.Forward, b.tf.Forward) && sameFunc(a.tf.Inverse, b.tf.Inverse)
}

func sameFunc[F any](f, g F) bool {
	return reflect.ValueOf(f).Pointer() == reflect.ValueOf(g).Pointer()
}

func (a *TransformAxis[T]) String() string {
	name := a.tf.Name
	if name == "" {
		name = "custom"
	}
	return fmt.Sprintf("transform[%s](%d, %v, %v)", name, a.inner.BinCount(), a.low, a.high)
}
