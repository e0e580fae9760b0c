// Package diag defines the ENUM-series diagnostic codes and collects
// diagnostics raised while inspecting and generating enum types.
//
// Codes are stable; never renumber an existing rule.
//
//	ENUM001  stringification of an enum value
//	ENUM002  duplicate description within one enum type
//	ENUM003  malformed enumgen directive
//	ENUM004  empty description literal
package diag

import "fmt"

// Rule is an ENUM-series rule.
type Rule int

const (
	ruleInvalid Rule = iota

	ENUM001ForbiddenStringification
	ENUM002DuplicateDescription
	ENUM003MalformedAnnotation
	ENUM004EmptyDescription
)

// Severity of a rule.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Code returns the stable code, e.g. "ENUM002".
func (r Rule) Code() string {
	switch r {
	case ENUM001ForbiddenStringification:
		return "ENUM001"
	case ENUM002DuplicateDescription:
		return "ENUM002"
	case ENUM003MalformedAnnotation:
		return "ENUM003"
	case ENUM004EmptyDescription:
		return "ENUM004"
	default:
		return fmt.Sprintf("ENUM-unknown(%d)", int(r))
	}
}

// Title returns the short name of the rule.
func (r Rule) Title() string {
	switch r {
	case ENUM001ForbiddenStringification:
		return "ForbiddenStringification"
	case ENUM002DuplicateDescription:
		return "DuplicateDescription"
	case ENUM003MalformedAnnotation:
		return "MalformedAnnotation"
	case ENUM004EmptyDescription:
		return "EmptyDescription"
	default:
		return "Unknown"
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case ENUM001ForbiddenStringification:
		return "Do not call String() on an enum value; use the generated GetName or GetDescription instead."
	case ENUM002DuplicateDescription:
		return "Two members with different values declare the same description."
	case ENUM003MalformedAnnotation:
		return "An enumgen directive must be a known key followed by string literals."
	case ENUM004EmptyDescription:
		return "A description must not be empty."
	default:
		return fmt.Sprintf("unknown rule (%d)", int(r))
	}
}

// Severity returns the severity the rule is reported with.
func (r Rule) Severity() Severity {
	if r == ENUM001ForbiddenStringification {
		return SeverityWarning
	}
	return SeverityError
}

