// Package enumdesc maps human-readable descriptions to enum values.
//
// A Table is built once from the ordered member list of an enum type. Every
// member contributes its descriptions (or its name when it declares none) as
// exact, case-sensitive keys. The first member to claim a description keeps
// it; a later member with a different value claiming the same text is
// reported as a Conflict.
//
// Generated code (see cmd/enumgen) embeds the same table as a map literal.
// Enum types the generator does not own are registered at run time:
//
//	enumdesc.Define(func() []enumdesc.Member[time.Weekday] {
//		return enumdesc.FromStringer(time.Sunday, time.Monday, time.Tuesday)
//	})
//
//	day := enumdesc.ParseFromDescription[time.Weekday]("Monday")
//
// Input without a table entry is a programming error. Lookups either panic or
// return an *UnreachableError, which matches ErrUnreachable.
package enumdesc
