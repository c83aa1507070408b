package axis

import (
	"fmt"

	"histStat/infra/errorx"
	"histStat/infra/errorx/errCode"
)

// EnumAxis has one bin per member, in declaration order. It cannot overflow:
// indexing a value that is not a member panics.
type EnumAxis[E comparable] struct {
	members []E
	index   map[E]int
}

func NewEnumAxis[E comparable](members ...E) *EnumAxis[E] {
	if len(members) == 0 {
		panic(errorx.New(errCode.EMPTY_VALUE, "enum axis needs at least one member"))
	}
	index := make(map[E]int, len(members))
	for i, m := range members {
		if _, dup := index[m]; dup {
			panic(errorx.Newf(errCode.INVALID_VALUE, "duplicate enum member %v", m))
		}
		index[m] = i
	}
	return &EnumAxis[E]{members: append([]E(nil), members...), index: index}
}

func (a *EnumAxis[E]) BinCount() int { return len(a.members) }

func (a *EnumAxis[E]) Members() []E { return append([]E(nil), a.members...) }

// Lookup returns the bin of v and whether v is a member.
func (a *EnumAxis[E]) Lookup(v E) (int, bool) {
	i, ok := a.index[v]
	return i, ok
}

func (a *EnumAxis[E]) Index(v E) int {
	i, ok := a.index[v]
	if !ok {
		panic(errorx.Newf(errCode.NOT_FOUND, "%v is not an enum member", v))
	}
	return i
}

func (a *EnumAxis[E]) Bin(i int) Slot[E] {
	checkBin(i, len(a.members))
	return Slot[E]{Value: a.members[i]}
}

func (a *EnumAxis[E]) Equal(other Axis[E, Slot[E]]) bool {
	b, ok := other.(*EnumAxis[E])
	if !ok || len(a.members) != len(b.members) {
		return false
	}
	for i := range a.members {
		if a.members[i] != b.members[i] {
			return false
		}
	}
	return true
}

func (a *EnumAxis[E]) String() string {
	return fmt.Sprintf("enum%v", a.members)
}
