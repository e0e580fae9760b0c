package analyzer

import (
	"fmt"
	"log/slog"

	"golang.org/x/tools/go/packages"
)

// LoadMode is the packages.Load mode needed by the inspector and the lint.
const LoadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports | packages.NeedDeps

// Load loads the packages matching patterns relative to dir.
// Packages with type errors are returned; the errors are logged since a
// stale generated file is a common cause and is about to be replaced.
func Load(dir string, patterns ...string) ([]*packages.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	cfg := &packages.Config{
		Mode:  LoadMode,
		Dir:   dir,
		Tests: false,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages %v in %s: %w", patterns, dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found for %v in %s", patterns, dir)
	}
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			slog.Warn("Package contains errors",
				"pkg", pkg.PkgPath,
				"error", pkgErr,
				"pos", pkgErr.Pos)
		}
		if pkg.Types == nil || pkg.TypesInfo == nil {
			return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
		}
	}
	return pkgs, nil
}
