package axis

import (
	"fmt"
	"slices"
	"sort"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// VariableAxis has len(edges)-1 bins between consecutive break points.
// The edge slice is borrowed, not copied: callers keep it alive and
// unmodified. Edges must be strictly increasing; this is not verified.
type VariableAxis[T Number] struct {
	edges []T
	opts  Options
}

func NewVariableAxis[T Number](edges []T, opts ...Option) *VariableAxis[T] {
	if len(edges) < 2 {
		panic(errorx.Newf(errCode.INVALID_VALUE, "variable axis needs at least 2 edges, got %d", len(edges)))
	}
	return &VariableAxis[T]{edges: edges, opts: buildOptions(opts)}
}

func (a *VariableAxis[T]) BinCount() int    { return len(a.edges) - 1 }
func (a *VariableAxis[T]) Low() T           { return a.edges[0] }
func (a *VariableAxis[T]) High() T          { return a.edges[len(a.edges)-1] }
func (a *VariableAxis[T]) Options() Options { return a.opts }
func (a *VariableAxis[T]) Breaks() []T      { return a.edges }

func (a *VariableAxis[T]) IsOverflow(x T) bool  { return isOverflow(x, a.High(), a.opts) }
func (a *VariableAxis[T]) IsUnderflow(x T) bool { return isUnderflow(x, a.Low(), a.opts) }

// Index finds the rightmost edge <= x (right-open) or < x (right-closed).
func (a *VariableAxis[T]) Index(x T) int {
	n := a.BinCount()
	if idx, ok := wrapIndex(x, a.Low(), a.High(), n, a.opts); ok {
		return idx
	}
	if a.opts.RightClosed {
		return sort.Search(len(a.edges), func(i int) bool { return a.edges[i] >= x }) - 1
	}
	return sort.Search(len(a.edges), func(i int) bool { return a.edges[i] > x }) - 1
}

// Bin returns a view of edges[i:i+2] without copying.
func (a *VariableAxis[T]) Bin(i int) Edges[T] {
	checkBin(i, a.BinCount())
	return Edges[T](a.edges[i : i+2 : i+2])
}

func (a *VariableAxis[T]) Equal(other Axis[T, Edges[T]]) bool {
	b, ok := other.(*VariableAxis[T])
	return ok && a.opts == b.opts && slices.Equal(a.edges, b.edges)
}

func (a *VariableAxis[T]) String() string {
	return fmt.Sprintf("variable%v", a.edges)
}
