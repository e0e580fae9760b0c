package diag

import (
	"github.com/origadmin/enumgen/enumdesc"
	"github.com/origadmin/enumgen/internal/model"
)

// Conflict converts a table conflict of e into an ENUM002 diagnostic placed
// at the conflicting description.
func Conflict(e *model.Enum, c enumdesc.Conflict[string]) Diagnostic {
	d := Diagnostic{
		Rule:    ENUM002DuplicateDescription,
		Message: e.Name + ": " + c.String(),
		Pos:     e.Pos,
	}
	if m := e.Member(c.Conflicting.Name); m != nil {
		d.Pos = m.DescriptionPos(c.Description)
	}
	return d
}
