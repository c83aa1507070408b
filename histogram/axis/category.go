package axis

import (
	"fmt"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// CategoryConversionError reports a label that names no member.
type CategoryConversionError struct {
	Label string
}

func (e *CategoryConversionError) Error() string {
	return fmt.Sprintf("category %q matches no member", e.Label)
}

// ErrCategoryConversion matches any *CategoryConversionError under errors.Is.
var ErrCategoryConversion = &CategoryConversionError{}

// Is matches other conversion errors only: the same label, or any label when
// target is ErrCategoryConversion.
func (e *CategoryConversionError) Is(target error) bool {
	t, ok := target.(*CategoryConversionError)
	return ok && (t.Label == "" || t.Label == e.Label)
}

// CategoryAxis is an EnumAxis indexed by string labels. Labels that convert
// to no member are overflow.
type CategoryAxis[E comparable] struct {
	enum   *EnumAxis[E]
	labels map[string]E
	names  []string
}

// NewCategoryAxis labels each member with fmt.Sprint(member).
func NewCategoryAxis[E comparable](members ...E) *CategoryAxis[E] {
	labels := make([]string, len(members))
	for i, m := range members {
		labels[i] = fmt.Sprint(m)
	}
	return NewCategoryAxisLabels(members, labels)
}

func NewCategoryAxisLabels[E comparable](members []E, labels []string) *CategoryAxis[E] {
	if len(members) != len(labels) {
		panic(errorx.Newf(errCode.INVALID_VALUE, "%d members but %d labels", len(members), len(labels)))
	}
	enum := NewEnumAxis(members...)
	byLabel := make(map[string]E, len(labels))
	for i, l := range labels {
		if _, dup := byLabel[l]; dup {
			panic(errorx.Newf(errCode.INVALID_VALUE, "duplicate category label %q", l))
		}
		byLabel[l] = members[i]
	}
	return &CategoryAxis[E]{enum: enum, labels: byLabel, names: append([]string(nil), labels...)}
}

func (a *CategoryAxis[E]) BinCount() int { return a.enum.BinCount() }

// Enum is the underlying member-typed axis.
func (a *CategoryAxis[E]) Enum() *EnumAxis[E] { return a.enum }

func (a *CategoryAxis[E]) Labels() []string { return append([]string(nil), a.names...) }

// Member converts a label to its member.
func (a *CategoryAxis[E]) Member(label string) (E, bool) {
	m, ok := a.labels[label]
	return m, ok
}

// IndexOf is the checked form of Index.
func (a *CategoryAxis[E]) IndexOf(label string) (int, error) {
	m, ok := a.labels[label]
	if !ok {
		return -1, &CategoryConversionError{Label: label}
	}
	return a.enum.Index(m), nil
}

// Index panics with *CategoryConversionError for unconvertible labels; call
// IsOverflow first or use IndexOf.
func (a *CategoryAxis[E]) Index(label string) int {
	i, err := a.IndexOf(label)
	if err != nil {
		panic(err)
	}
	return i
}

func (a *CategoryAxis[E]) IndexMember(v E) int { return a.enum.Index(v) }

func (a *CategoryAxis[E]) IsOverflow(label string) bool {
	_, ok := a.labels[label]
	return !ok
}

func (a *CategoryAxis[E]) Bin(i int) Slot[E] { return a.enum.Bin(i) }

func (a *CategoryAxis[E]) Equal(other Axis[string, Slot[E]]) bool {
	b, ok := other.(*CategoryAxis[E])
	if !ok || !a.enum.Equal(b.enum) {
		return false
	}
	for i := range a.names {
		if a.names[i] != b.names[i] {
			return false
		}
	}
	return true
}

func (a *CategoryAxis[E]) String() string {
	return fmt.Sprintf("category%v", a.names)
}
