package axis

// Interval is a continuous bin. Whether Low or High belongs to the bin
// depends on the axis options.
type Interval[T Number] struct {
	Low  T
	High T
}

func (b Interval[T]) Width() T { return b.High - b.Low }

// Span is the width as float64, used for densities.
func (b Interval[T]) Span() float64 { return float64(b.High) - float64(b.Low) }

func (b Interval[T]) Contains(x T, rightClosed bool) bool {
	if rightClosed {
		return x > b.Low && x <= b.High
	}
	return x >= b.Low && x < b.High
}

// Slot is the single categorical value of an enum bin.
type Slot[E comparable] struct {
	Value E
}

// Edges is a two-element view into a VariableAxis break sequence. It aliases
// the axis' edge slice and must not be modified.
type Edges[T Number] []T

func (e Edges[T]) Low() T  { return e[0] }
func (e Edges[T]) High() T { return e[1] }

func (e Edges[T]) Span() float64 { return float64(e[1]) - float64(e[0]) }

func (e Edges[T]) Interval() Interval[T] { return Interval[T]{Low: e[0], High: e[1]} }
