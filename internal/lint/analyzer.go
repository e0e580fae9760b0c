package lint

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/origadmin/enumgen/internal/config"
	"github.com/origadmin/enumgen/internal/diag"
)

const stringifyDoc = `report enum values that are turned into strings

An enum is a defined integer type with constants of that type in its package.
Calling String on an enum value, or formatting one with %v, %s, %q, %x or %X
through the fmt and log print families, is reported. Use the generated
GetName or GetDescription methods instead.`

const descriptionDoc = `check enumgen description directives

Reports descriptions shared by members with different values, malformed
//enumgen: directives and empty description literals.`

// StringifyAnalyzer reports ENUM001 with the default print families.
var StringifyAnalyzer = NewStringifyAnalyzer(config.DefaultLint())

// DescriptionAnalyzer reports ENUM002, ENUM003 and ENUM004.
var DescriptionAnalyzer = &analysis.Analyzer{
	Name: "enumdescription",
	Doc:  descriptionDoc,
	Run:  runDescription,
}

// NewStringifyAnalyzer creates the ENUM001 analyzer for cfg.
func NewStringifyAnalyzer(cfg config.Lint) *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:     "enumstringify",
		Doc:      stringifyDoc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run: func(pass *analysis.Pass) (any, error) {
			return runStringify(pass, cfg)
		},
	}
}

func runStringify(pass *analysis.Pass, cfg config.Lint) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	generated := make(map[*token.File]bool)
	for _, f := range pass.Files {
		if ast.IsGenerated(f) {
			generated[pass.Fset.File(f.Pos())] = true
		}
	}

	c := newChecker(cfg, pass.TypesInfo, pass.Pkg, func(pos token.Pos, message string) {
		if generated[pass.Fset.File(pos)] {
			return
		}
		code := diag.ENUM001ForbiddenStringification.Code()
		pass.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: code,
			Message:  code + ": " + message,
		})
	})

	nodeFilter := []ast.Node{
		(*ast.SelectorExpr)(nil),
		(*ast.CallExpr)(nil),
	}
	pector.Preorder(nodeFilter, c.check)
	return nil, nil
}

func runDescription(pass *analysis.Pass) (any, error) {
	for _, d := range describe(pass.Fset, pass.Files, pass.TypesInfo, pass.Pkg) {
		pos := posOf(pass, d.Pos)
		if !pos.IsValid() {
			continue
		}
		pass.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: d.Code(),
			Message:  d.Code() + ": " + d.Message,
		})
	}
	return nil, nil
}

// posOf maps a resolved position back into the pass's file set.
func posOf(pass *analysis.Pass, p token.Position) token.Pos {
	for _, f := range pass.Files {
		tf := pass.Fset.File(f.Pos())
		if tf != nil && tf.Name() == p.Filename && p.Offset <= tf.Size() {
			return tf.Pos(p.Offset)
		}
	}
	return token.NoPos
}
