// Package analyzer extracts enum declarations from type-checked Go packages.
package analyzer

import (
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/origadmin/enumgen/internal/diag"
	"github.com/origadmin/enumgen/internal/directive"
	"github.com/origadmin/enumgen/internal/model"
)

// Inspector walks the syntax of one package and builds its enum models.
// It only reads; an Inspector may be reused for several packages.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// InspectPackage is Inspect for a loaded package.
func (in *Inspector) InspectPackage(pkg *packages.Package) ([]*model.Enum, []diag.Diagnostic) {
	return in.Inspect(pkg.Fset, pkg.Syntax, pkg.TypesInfo, pkg.Types)
}

// Inspect returns the enums declared in files, in declaration order, with
// their members in declaration order. Problems with directives are returned
// as diagnostics; the offending directive is skipped.
func (in *Inspector) Inspect(fset *token.FileSet, files []*ast.File, info *types.Info, pkg *types.Package) ([]*model.Enum, []diag.Diagnostic) {
	s := &inspection{
		fset:   fset,
		info:   info,
		pkg:    pkg,
		byType: make(map[*types.TypeName]*model.Enum),
	}

	for _, file := range files {
		for _, decl := range file.Decls {
			if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
				s.collectTypes(gd)
			}
		}
	}
	for _, file := range files {
		for _, decl := range file.Decls {
			if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.CONST {
				s.collectMembers(gd)
			}
		}
	}

	enums := make([]*model.Enum, 0, len(s.order))
	for _, e := range s.order {
		if len(e.Members) == 0 {
			continue
		}
		enums = append(enums, e)
	}
	slog.Debug("Inspected package", "pkg", pkgPath(pkg), "enums", len(enums), "diagnostics", len(s.diagnostics))
	return enums, s.diagnostics
}

type inspection struct {
	fset        *token.FileSet
	info        *types.Info
	pkg         *types.Package
	byType      map[*types.TypeName]*model.Enum
	order       []*model.Enum
	diagnostics []diag.Diagnostic
}

func (s *inspection) report(rule diag.Rule, pos token.Pos, message string) {
	s.diagnostics = append(s.diagnostics, diag.Diagnostic{
		Rule:    rule,
		Message: message,
		Pos:     s.fset.Position(pos),
	})
}

// scan parses the directives of a declaration and reports failures and
// directives of kinds not in allowed.
func (s *inspection) scan(groups []*ast.CommentGroup, where string, allowed ...directive.Kind) []*directive.Directive {
	found, failures := directive.Scan(groups...)
	for _, f := range failures {
		s.report(diag.ENUM003MalformedAnnotation, f.Pos, f.Err.Error())
	}

	kept := found[:0]
	for _, d := range found {
		if !kindIn(d.Kind, allowed) {
			s.report(diag.ENUM003MalformedAnnotation, d.Pos,
				"malformed directive: "+string(d.Kind)+" does not apply to "+where)
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

func (s *inspection) collectTypes(gd *ast.GenDecl) {
	for _, spec := range gd.Specs {
		ts, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		obj, _ := s.info.Defs[ts.Name].(*types.TypeName)
		isEnum := obj != nil && ts.Assign == 0 && IsIntegerType(obj.Type())

		where := "type " + ts.Name.Name
		var allowed []directive.Kind
		if isEnum {
			allowed = []directive.Kind{directive.KindGenerate}
		} else {
			where += ", which is not an integer type"
		}
		directives := s.scan(docGroups(gd, ts.Doc, ts.Comment), where, allowed...)
		if !isEnum {
			continue
		}

		e := &model.Enum{
			Name:        obj.Name(),
			PackageName: pkgName(s.pkg),
			ImportPath:  pkgPath(s.pkg),
			Underlying:  obj.Type().Underlying().(*types.Basic).Name(),
			Generate:    directive.Has(directives, directive.KindGenerate),
			Pos:         s.fset.Position(ts.Name.Pos()),
			Original:    obj,
		}
		s.byType[obj] = e
		s.order = append(s.order, e)
	}
}

func (s *inspection) collectMembers(gd *ast.GenDecl) {
	for _, spec := range gd.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		groups := docGroups(gd, vs.Doc, vs.Comment)
		owner := s.ownerOf(vs)
		if owner == nil {
			s.scan(groups, "constant "+vs.Names[0].Name+", which is not an enum member")
			continue
		}

		directives := s.scan(groups, "constants", directive.KindDescription, directive.KindObsolete)
		descriptions := s.descriptions(directives)
		obsolete := directive.Has(directives, directive.KindObsolete) || deprecated(groups)

		for _, name := range vs.Names {
			if name.Name == "_" {
				continue
			}
			c, ok := s.info.Defs[name].(*types.Const)
			if !ok {
				continue
			}
			e := s.byType[namedObj(c.Type())]
			if e == nil {
				continue
			}
			e.Members = append(e.Members, &model.Member{
				Name:         c.Name(),
				Value:        c.Val(),
				Descriptions: descriptions,
				Obsolete:     obsolete,
				Pos:          s.fset.Position(name.Pos()),
			})
		}
	}
}

// ownerOf returns the enum the first constant of vs belongs to.
func (s *inspection) ownerOf(vs *ast.ValueSpec) *model.Enum {
	for _, name := range vs.Names {
		if c, ok := s.info.Defs[name].(*types.Const); ok {
			if e := s.byType[namedObj(c.Type())]; e != nil {
				return e
			}
		}
	}
	return nil
}

func (s *inspection) descriptions(directives []*directive.Directive) []*model.Description {
	var out []*model.Description
	for _, d := range directives {
		if d.Kind != directive.KindDescription {
			continue
		}
		for i, text := range d.Args {
			if text == "" {
				s.report(diag.ENUM004EmptyDescription, d.ArgPos[i], "description must not be empty")
				continue
			}
			out = append(out, &model.Description{Text: text, Pos: s.fset.Position(d.ArgPos[i])})
		}
	}
	return out
}

// docGroups returns the comment groups documenting a spec. The declaration's
// doc comment belongs to the spec when the declaration is not parenthesized.
func docGroups(gd *ast.GenDecl, doc, comment *ast.CommentGroup) []*ast.CommentGroup {
	if doc == nil && !gd.Lparen.IsValid() {
		doc = gd.Doc
	}
	return []*ast.CommentGroup{doc, comment}
}

// deprecated reports whether a doc comment carries a "Deprecated:" paragraph.
func deprecated(groups []*ast.CommentGroup) bool {
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, line := range strings.Split(g.Text(), "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "Deprecated:") {
				return true
			}
		}
	}
	return false
}

func namedObj(t types.Type) *types.TypeName {
	if named, ok := types.Unalias(t).(*types.Named); ok {
		return named.Obj()
	}
	return nil
}

func kindIn(kind directive.Kind, allowed []directive.Kind) bool {
	for _, k := range allowed {
		if k == kind {
			return true
		}
	}
	return false
}

func pkgPath(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}
	return pkg.Path()
}

func pkgName(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}
	return pkg.Name()
}
