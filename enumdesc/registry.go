package enumdesc

import (
	"fmt"
	"reflect"
	"sync"
)

// registry holds one *definition per enum type, keyed by reflect.Type.
var registry sync.Map

type definition struct {
	once  sync.Once
	load  func() (any, error)
	table any
	err   error
}

// Define registers the members of an enum type the generator does not own.
// members is called once, on first use of the table.
// Defining the same type twice panics.
func Define[T comparable](members func() []Member[T]) {
	typ := reflect.TypeFor[T]()
	d := &definition{
		load: func() (any, error) {
			t, conflicts := Build(members(), WithTypeName(typ.String()))
			if len(conflicts) > 0 {
				return nil, fmt.Errorf("enumdesc: %s: %s", typ, conflicts[0])
			}
			return t, nil
		},
	}
	if _, loaded := registry.LoadOrStore(typ, d); loaded {
		panic(fmt.Sprintf("enumdesc: %s defined twice", typ))
	}
}

// TableFor returns the table registered for T, building it on first use.
// It panics if the registered members conflict.
func TableFor[T comparable]() (*Table[T], bool) {
	v, ok := registry.Load(reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	d := v.(*definition)
	d.once.Do(func() {
		d.table, d.err = d.load()
	})
	if d.err != nil {
		panic(d.err)
	}
	return d.table.(*Table[T]), true
}

// ParseFromDescription resolves text against the table registered for T.
// It panics with an *UnreachableError when nothing matches, and with a plain
// message when T was never defined.
func ParseFromDescription[T comparable](text string) T {
	t, ok := TableFor[T]()
	if !ok {
		panic(fmt.Sprintf("enumdesc: no descriptions defined for %s", reflect.TypeFor[T]()))
	}
	return t.MustParse(text)
}
