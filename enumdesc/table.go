package enumdesc

import (
	"fmt"
	"slices"
)

// Conflict records a description claimed by two members with different values.
// First keeps the binding.
type Conflict[V comparable] struct {
	Description string
	First       Member[V]
	Conflicting Member[V]
}

func (c Conflict[V]) String() string {
	return fmt.Sprintf("description %q of %s is already used by %s", c.Description, c.Conflicting.Name, c.First.Name)
}

// Entry is one description binding, as returned by Table.Entries.
type Entry[V comparable] struct {
	Description string
	Member      Member[V]
}

// Option configures Build.
type Option func(*options)

type options struct {
	typeName string
}

// WithTypeName sets the type name used in lookup errors.
func WithTypeName(name string) Option {
	return func(o *options) {
		o.typeName = name
	}
}

// Table is the immutable description table of one enum type.
type Table[V comparable] struct {
	typeName string
	members  []Member[V]
	// entries maps a description to the index of the member it resolves to.
	entries map[string]int
	order   []string
	// registered lists, per member index, the descriptions it declared that
	// resolve to its value.
	registered [][]string
	// forward maps a value to its first non-obsolete member index.
	forward map[V]int
	defined map[V]struct{}
}

// Build constructs the table for members given in declaration order.
//
// Descriptions are inserted member by member, in order. Text already bound to
// another member with a different value is rejected and reported; text bound
// to the same member, or to a member with the same value, keeps its first
// binding but still counts as a description of the later member for
// Description.
// Build never fails: the table is complete apart from rejected insertions.
func Build[V comparable](members []Member[V], opts ...Option) (*Table[V], []Conflict[V]) {
	o := options{typeName: "enum"}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table[V]{
		typeName:   o.typeName,
		members:    make([]Member[V], len(members)),
		entries:    make(map[string]int),
		registered: make([][]string, len(members)),
		forward:    make(map[V]int),
		defined:    make(map[V]struct{}),
	}

	var conflicts []Conflict[V]
	for i, m := range members {
		m = m.clone()
		t.members[i] = m
		t.defined[m.Value] = struct{}{}
		if !m.Obsolete {
			if _, ok := t.forward[m.Value]; !ok {
				t.forward[m.Value] = i
			}
		}

		for _, key := range m.Keys() {
			j, ok := t.entries[key]
			if !ok {
				t.entries[key] = i
				t.order = append(t.order, key)
				t.registered[i] = append(t.registered[i], key)
				continue
			}
			if j == i {
				continue
			}
			if t.members[j].Value == m.Value {
				// The parse binding stays with j; i still needs the text for
				// its forward description.
				if !slices.Contains(t.registered[i], key) {
					t.registered[i] = append(t.registered[i], key)
				}
				continue
			}
			conflicts = append(conflicts, Conflict[V]{
				Description: key,
				First:       t.members[j],
				Conflicting: m,
			})
		}
	}
	return t, conflicts
}

// TypeName returns the name used in lookup errors.
func (t *Table[V]) TypeName() string {
	return t.typeName
}

// Len returns the number of description entries.
func (t *Table[V]) Len() int {
	return len(t.order)
}

// Members returns the members in declaration order.
func (t *Table[V]) Members() []Member[V] {
	out := make([]Member[V], len(t.members))
	for i, m := range t.members {
		out[i] = m.clone()
	}
	return out
}

// Entries returns the description bindings in insertion order.
func (t *Table[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, len(t.order))
	for _, key := range t.order {
		out = append(out, Entry[V]{Description: key, Member: t.members[t.entries[key]].clone()})
	}
	return out
}

// Lookup returns the member text resolves to. Matching is exact.
func (t *Table[V]) Lookup(text string) (Member[V], bool) {
	i, ok := t.entries[text]
	if !ok {
		return Member[V]{}, false
	}
	return t.members[i].clone(), true
}

// Parse returns the value text resolves to, or an *UnreachableError.
func (t *Table[V]) Parse(text string) (V, error) {
	i, ok := t.entries[text]
	if !ok {
		var zero V
		return zero, UnknownDescription(t.typeName, text)
	}
	return t.members[i].Value, nil
}

// MustParse is like Parse but panics with the *UnreachableError.
func (t *Table[V]) MustParse(text string) V {
	v, err := t.Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// Name returns the name of the first non-obsolete member declared with v.
func (t *Table[V]) Name(v V) (string, bool) {
	i, ok := t.forward[v]
	if !ok {
		return "", false
	}
	return t.members[i].Name, true
}

// Description returns the first description of the member Name resolves to
// whose parse binding yields v, so that Parse(Description(v)) == v.
func (t *Table[V]) Description(v V) (string, bool) {
	i, ok := t.forward[v]
	if !ok || len(t.registered[i]) == 0 {
		return "", false
	}
	return t.registered[i][0], true
}

// IsDefined reports whether any member, obsolete or not, is declared with v.
func (t *Table[V]) IsDefined(v V) bool {
	_, ok := t.defined[v]
	return ok
}
