// Package model holds the inspector's view of enum declarations.
package model

import (
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"github.com/origadmin/enumgen/enumdesc"
)

// Enum is an enum type: a defined integer type with typed constants in its
// package.
type Enum struct {
	Name        string
	PackageName string
	ImportPath  string
	// Underlying is the name of the basic underlying type, e.g. "int32".
	Underlying string
	// Generate is set for types marked with //enumgen:generate.
	Generate bool
	Members  []*Member
	Pos      token.Position
	Original *types.TypeName
}

// Member is one constant of an Enum.
type Member struct {
	Name         string
	Value        constant.Value
	Descriptions []*Description
	Obsolete     bool
	Pos          token.Position
}

// Description is one description literal of a Member.
type Description struct {
	Text string
	Pos  token.Position
}

// FQN returns the fully qualified name of the enum type.
func (e *Enum) FQN() string {
	if e == nil {
		return ""
	}
	return e.ImportPath + "." + e.Name
}

// FileName returns the generated file name for the enum with suffix appended.
func (e *Enum) FileName(suffix string) string {
	return strings.ToLower(e.Name) + suffix
}

// Key converts a constant value to the table key. Members with equal
// integer values share a key.
func Key(v constant.Value) string {
	if v == nil {
		return ""
	}
	return v.ExactString()
}

// TableMembers converts the members for enumdesc.Build.
func (e *Enum) TableMembers() []enumdesc.Member[string] {
	out := make([]enumdesc.Member[string], 0, len(e.Members))
	for _, m := range e.Members {
		descriptions := make([]string, 0, len(m.Descriptions))
		for _, d := range m.Descriptions {
			descriptions = append(descriptions, d.Text)
		}
		out = append(out, enumdesc.Member[string]{
			Name:         m.Name,
			Value:        Key(m.Value),
			Descriptions: descriptions,
			Obsolete:     m.Obsolete,
		})
	}
	return out
}

// Member returns the member called name, or nil.
func (e *Enum) Member(name string) *Member {
	for _, m := range e.Members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// DescriptionPos returns the position of the first description equal to
// text, falling back to the member position.
func (m *Member) DescriptionPos(text string) token.Position {
	for _, d := range m.Descriptions {
		if d.Text == text {
			return d.Pos
		}
	}
	return m.Pos
}
