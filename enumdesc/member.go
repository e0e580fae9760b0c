package enumdesc

import (
	"fmt"
	"slices"
)

// Member is one declared value of an enum type.
type Member[V comparable] struct {
	// Name is the declared identifier, unique within the enum.
	Name string
	// Value is the underlying value. Several members may share it.
	Value V
	// Descriptions are the declared aliases in declaration order.
	Descriptions []string
	// Obsolete members parse but have no forward name.
	Obsolete bool
}

// Keys returns the description keys the member contributes to a table.
// A member without descriptions is described by its name.
func (m Member[V]) Keys() []string {
	if len(m.Descriptions) == 0 {
		return []string{m.Name}
	}
	return m.Descriptions
}

func (m Member[V]) clone() Member[V] {
	m.Descriptions = slices.Clone(m.Descriptions)
	return m
}

// FromStringer builds members for an enum type that only exposes String(),
// using the string form as both name and sole description.
func FromStringer[T interface {
	comparable
	fmt.Stringer
}](values ...T) []Member[T] {
	members := make([]Member[T], 0, len(values))
	for _, v := range values {
		members = append(members, Member[T]{Name: v.String(), Value: v})
	}
	return members
}
