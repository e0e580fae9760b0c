package analyzer

import (
	"go/types"
)

// EnumType reports whether t is an enum: a defined type whose underlying
// type is an integer and which has at least one constant of that type in its
// package scope. Pointers are not dereferenced.
func EnumType(t types.Type) (*types.Named, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || !IsIntegerType(named) {
		return nil, false
	}
	obj := named.Obj()
	if obj.Pkg() == nil {
		return nil, false
	}
	scope := obj.Pkg().Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if ok && types.Identical(c.Type(), named) {
			return named, true
		}
	}
	return nil, false
}

// IsIntegerType reports whether the underlying type of t is an integer.
func IsIntegerType(t types.Type) bool {
	basic, ok := t.Underlying().(*types.Basic)
	return ok && basic.Info()&types.IsInteger != 0
}

// EnumCache memoizes EnumType per named type. It is not safe for
// concurrent use.
type EnumCache struct {
	known map[*types.Named]bool
}

// NewEnumCache creates an empty cache.
func NewEnumCache() *EnumCache {
	return &EnumCache{known: make(map[*types.Named]bool)}
}

// Lookup is EnumType with memoization.
func (c *EnumCache) Lookup(t types.Type) (*types.Named, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}
	if is, seen := c.known[named]; seen {
		return named, is
	}
	_, is := EnumType(named)
	c.known[named] = is
	return named, is
}
