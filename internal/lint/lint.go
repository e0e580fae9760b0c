// Package lint reports enum values that are turned into strings, and
// problems with enum description directives.
package lint

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"

	"github.com/origadmin/enumgen/enumdesc"
	"github.com/origadmin/enumgen/internal/analyzer"
	"github.com/origadmin/enumgen/internal/config"
	"github.com/origadmin/enumgen/internal/diag"
)

// stringer is the fmt.Stringer method set.
var stringer = types.NewInterfaceType([]*types.Func{
	types.NewFunc(token.NoPos, nil, "String", types.NewSignatureType(nil, nil, nil, nil,
		types.NewTuple(types.NewVar(token.NoPos, nil, "", types.Typ[types.String])), false)),
}, nil).Complete()

// checker finds stringification of enum values in type-checked syntax.
type checker struct {
	info   *types.Info
	pkg    *types.Package
	enums  *analyzer.EnumCache
	printf map[string]bool
	print  map[string]bool
	ignore map[string]bool
	report func(pos token.Pos, message string)
}

func newChecker(cfg config.Lint, info *types.Info, pkg *types.Package, report func(token.Pos, string)) *checker {
	return &checker{
		info:   info,
		pkg:    pkg,
		enums:  analyzer.NewEnumCache(),
		printf: set(cfg.PrintfFuncs),
		print:  set(cfg.PrintFuncs),
		ignore: set(cfg.IgnoreTypes),
		report: report,
	}
}

func set(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// check inspects one node; it is called for every *ast.SelectorExpr and
// *ast.CallExpr.
func (c *checker) check(n ast.Node) {
	switch n := n.(type) {
	case *ast.SelectorExpr:
		c.checkSelector(n)
	case *ast.CallExpr:
		c.checkCall(n)
	}
}

func (c *checker) checkSelector(sel *ast.SelectorExpr) {
	if sel.Sel.Name != "String" {
		return
	}
	selection := c.info.Selections[sel]
	if selection == nil || selection.Kind() == types.FieldVal {
		return
	}
	recv := selection.Recv()
	if ptr, ok := recv.Underlying().(*types.Pointer); ok {
		recv = ptr.Elem()
	}
	if named, ok := c.enum(recv); ok {
		c.report(sel.Sel.Pos(), "String called on "+c.typeString(named)+
			"; use GetName or GetDescription")
	}
}

func (c *checker) checkCall(call *ast.CallExpr) {
	if call.Ellipsis.IsValid() {
		return
	}
	fn, ok := typeutil.Callee(c.info, call).(*types.Func)
	if !ok {
		return
	}
	sig, ok := fn.Type().(*types.Signature)
	if !ok || !sig.Variadic() {
		return
	}
	first := sig.Params().Len() - 1

	name := fn.FullName()
	switch {
	case c.print[name]:
		for i := first; i < len(call.Args); i++ {
			c.checkOperand(call.Args[i], name, 'v')
		}
	case c.printf[name] && first > 0:
		tv, ok := c.info.Types[call.Args[first-1]]
		if !ok || tv.Value == nil {
			return
		}
		for _, op := range operands(constantString(tv)) {
			i := first + op.arg
			if !stringifies(op.verb) || i >= len(call.Args) {
				continue
			}
			c.checkOperand(call.Args[i], name, op.verb)
		}
	}
}

func constantString(tv types.TypeAndValue) string {
	if tv.Value.Kind() != constant.String {
		return ""
	}
	return constant.StringVal(tv.Value)
}

func (c *checker) checkOperand(arg ast.Expr, fn string, verb rune) {
	t := c.info.TypeOf(arg)
	if t == nil {
		return
	}
	named, ok := c.enum(t)
	if !ok || !types.Implements(named, stringer) {
		return
	}
	c.report(arg.Pos(), c.typeString(named)+" formatted with %"+string(verb)+
		" by "+fn+" calls String; use GetName or GetDescription")
}

func (c *checker) enum(t types.Type) (*types.Named, bool) {
	named, ok := c.enums.Lookup(t)
	if !ok {
		return nil, false
	}
	obj := named.Obj()
	if c.ignore[obj.Pkg().Path()+"."+obj.Name()] {
		return nil, false
	}
	return named, true
}

func (c *checker) typeString(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(c.pkg))
}

// Lint runs every check over a loaded package and returns the findings
// sorted by position.
func Lint(pkg *packages.Package, cfg config.Lint) []diag.Diagnostic {
	reporter := diag.NewReporter()
	c := newChecker(cfg, pkg.TypesInfo, pkg.Types, func(pos token.Pos, message string) {
		reporter.Report(diag.Diagnostic{
			Rule:    diag.ENUM001ForbiddenStringification,
			Message: message,
			Pos:     pkg.Fset.Position(pos),
		})
	})
	for _, file := range pkg.Syntax {
		if ast.IsGenerated(file) {
			continue
		}
		ast.Inspect(file, func(n ast.Node) bool {
			c.check(n)
			return true
		})
	}

	for _, d := range describe(pkg.Fset, pkg.Syntax, pkg.TypesInfo, pkg.Types) {
		reporter.Report(d)
	}
	return reporter.Diagnostics()
}

// describe returns the directive and table diagnostics of the enums in files.
func describe(fset *token.FileSet, files []*ast.File, info *types.Info, pkg *types.Package) []diag.Diagnostic {
	enums, diagnostics := analyzer.NewInspector().Inspect(fset, files, info, pkg)
	for _, e := range enums {
		_, conflicts := enumdesc.Build(e.TableMembers(), enumdesc.WithTypeName(e.Name))
		for _, c := range conflicts {
			diagnostics = append(diagnostics, diag.Conflict(e, c))
		}
	}
	return diagnostics
}
