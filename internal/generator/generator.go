// Package generator drives lookup generation for the enums of a package.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/origadmin/enumgen/enumdesc"
	"github.com/origadmin/enumgen/internal/analyzer"
	"github.com/origadmin/enumgen/internal/config"
	"github.com/origadmin/enumgen/internal/diag"
	"github.com/origadmin/enumgen/internal/model"
	"github.com/origadmin/enumgen/internal/template"
)

var (
	// ErrDiagnostics is returned when a run reported error diagnostics.
	ErrDiagnostics = errors.New("generation reported errors")
	// ErrDuplicateOutput is returned when two enums map to one file.
	ErrDuplicateOutput = errors.New("duplicate output file")
)

// File is one generated file.
type File struct {
	Enum    *model.Enum
	Path    string
	Content []byte
}

// Result is the outcome of generating one or more packages.
type Result struct {
	Files       []*File
	Diagnostics []diag.Diagnostic
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity() == diag.SeverityError {
			return true
		}
	}
	return false
}

func (r *Result) merge(other *Result) {
	r.Files = append(r.Files, other.Files...)
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
}

// Generator produces lookup files.
type Generator struct {
	cfg       *config.Config
	inspector *analyzer.Inspector
	renderer  *template.Manager
}

// NewGenerator creates a Generator. A nil cfg means the defaults.
func NewGenerator(cfg *config.Config) *Generator {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Generator{
		cfg:       cfg.Clone(),
		inspector: analyzer.NewInspector(),
		renderer:  template.NewManager(),
	}
}

// Run loads the packages matching patterns in dir and generates for each.
func (g *Generator) Run(ctx context.Context, dir string, patterns ...string) (*Result, error) {
	pkgs, err := analyzer.Load(dir, patterns...)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, pkg := range pkgs {
		r, err := g.Generate(ctx, pkg)
		if err != nil {
			return nil, err
		}
		res.merge(r)
	}
	diag.Sort(res.Diagnostics)
	return res, nil
}

// Generate inspects pkg and renders a file for every selected enum.
func (g *Generator) Generate(ctx context.Context, pkg *packages.Package) (*Result, error) {
	if len(pkg.GoFiles) == 0 {
		return nil, fmt.Errorf("package %s has no Go files", pkg.PkgPath)
	}
	enums, diagnostics := g.inspector.InspectPackage(pkg)
	return g.GenerateEnums(ctx, filepath.Dir(pkg.GoFiles[0]), enums, diagnostics)
}

// GenerateEnums renders the selected enums into files under dir. Every type
// is processed even when some report errors; inherited carries diagnostics
// of the inspection into the result.
func (g *Generator) GenerateEnums(ctx context.Context, dir string, enums []*model.Enum, inherited []diag.Diagnostic) (*Result, error) {
	selected := g.selectEnums(enums)

	owners := make(map[string]*model.Enum, len(selected))
	for _, e := range selected {
		path := filepath.Join(dir, e.FileName(g.cfg.OutputSuffix))
		if prev, ok := owners[path]; ok {
			return nil, fmt.Errorf("%w: %s and %s both generate %s", ErrDuplicateOutput, prev.Name, e.Name, path)
		}
		owners[path] = e
	}

	reporter := diag.NewReporter()
	for _, d := range inherited {
		reporter.Report(d)
	}

	files := make([]*File, len(selected))
	eg, ctx := errgroup.WithContext(ctx)
	for i, e := range selected {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			table, conflicts := enumdesc.Build(e.TableMembers(), enumdesc.WithTypeName(e.Name))
			for _, c := range conflicts {
				reporter.Report(diag.Conflict(e, c))
			}

			content, err := g.renderer.RenderEnum(template.NewData(e, table))
			if err != nil {
				return fmt.Errorf("generate %s: %w", e.FQN(), err)
			}
			files[i] = &File{
				Enum:    e,
				Path:    filepath.Join(dir, e.FileName(g.cfg.OutputSuffix)),
				Content: content,
			}
			slog.Debug("Rendered enum", "type", e.FQN(), "members", len(e.Members), "descriptions", table.Len())
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Result{Files: files, Diagnostics: reporter.Diagnostics()}, nil
}

// selectEnums keeps enums marked for generation or requested by name, and
// warns about requested names that are missing.
func (g *Generator) selectEnums(enums []*model.Enum) []*model.Enum {
	var selected []*model.Enum
	found := make(map[string]bool)
	for _, e := range enums {
		found[e.Name] = true
		if e.Generate || g.cfg.WantsType(e.Name) {
			selected = append(selected, e)
		}
	}
	for _, name := range g.cfg.Types {
		if !found[name] {
			slog.Warn("Requested type is not an enum", "type", name)
		}
	}
	return selected
}

// Write writes the files of res. Nothing is written when res has errors.
func Write(res *Result) error {
	if res.HasErrors() {
		return ErrDiagnostics
	}
	for _, f := range res.Files {
		slog.Info("Writing generated code", "file", f.Path)
		if err := os.WriteFile(f.Path, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", f.Path, err)
		}
	}
	return nil
}
