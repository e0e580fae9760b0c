// Package directive parses enumgen directives from Go comments.
//
// Directives are line comments without a space after the slashes:
//
//	//enumgen:generate
//	//enumgen:description "Two but one better!" `legacy alias`
//	//enumgen:obsolete
//
// generate marks a type declaration; description and obsolete apply to the
// constant they document. description takes one or more string literals,
// interpreted as in Go source. A trailing // comment is ignored.
package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/origadmin/enumgen/internal/config"
)

// Kind is the key of a directive.
type Kind string

const (
	KindGenerate    Kind = "generate"
	KindDescription Kind = "description"
	KindObsolete    Kind = "obsolete"
)

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("malformed directive")

// Directive is one parsed directive comment.
type Directive struct {
	Kind Kind
	Args []string
	// ArgPos holds the position of each argument.
	ArgPos []token.Pos
	Pos    token.Pos
}

type syntax struct {
	Tool string `parser:"@Ident ':'"`
	Key  string `parser:"@Ident"`
	Args []*arg `parser:"@@*"`
}

type arg struct {
	Pos   lexer.Position
	Value string `parser:"@(String | RawString)"`
}

var (
	directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "RawString", Pattern: "`[^`]*`"},
		{Name: "Comment", Pattern: `//.*`},
		{Name: "Punct", Pattern: `:`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	})
	directiveParser = participle.MustBuild[syntax](
		participle.Lexer(directiveLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String", "RawString"),
	)
)

// IsDirective reports whether the comment text is an enumgen directive.
func IsDirective(text string) bool {
	return strings.HasPrefix(text, config.DirectivePrefix)
}

// Parse parses a single comment. pos is the position of the comment's first
// slash. Errors wrap ErrMalformed.
func Parse(text string, pos token.Pos) (*Directive, error) {
	if !IsDirective(text) {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrMalformed, config.DirectivePrefix)
	}

	// Skip the slashes so that offsets stay relative to the comment start.
	body := text[2:]
	parsed, err := directiveParser.ParseString("", body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	d := &Directive{Kind: Kind(parsed.Key), Pos: pos}
	for _, a := range parsed.Args {
		d.Args = append(d.Args, a.Value)
		d.ArgPos = append(d.ArgPos, pos+token.Pos(2+a.Pos.Offset))
	}

	switch d.Kind {
	case KindDescription:
		if len(d.Args) == 0 {
			return nil, fmt.Errorf("%w: %s needs at least one string literal", ErrMalformed, d.Kind)
		}
	case KindGenerate, KindObsolete:
		if len(d.Args) > 0 {
			return nil, fmt.Errorf("%w: %s takes no arguments", ErrMalformed, d.Kind)
		}
	default:
		return nil, fmt.Errorf("%w: unknown key %q", ErrMalformed, parsed.Key)
	}
	return d, nil
}

// Failure is a directive comment that did not parse.
type Failure struct {
	Pos token.Pos
	Err error
}

// Scan parses every directive in the given comment groups, in order.
// Nil groups are skipped.
func Scan(groups ...*ast.CommentGroup) ([]*Directive, []Failure) {
	var (
		directives []*Directive
		failures   []Failure
	)
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			if !IsDirective(c.Text) {
				continue
			}
			d, err := Parse(c.Text, c.Slash)
			if err != nil {
				failures = append(failures, Failure{Pos: c.Slash, Err: err})
				continue
			}
			directives = append(directives, d)
		}
	}
	return directives, failures
}

// Has reports whether directives contains one of kind.
func Has(directives []*Directive, kind Kind) bool {
	for _, d := range directives {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
