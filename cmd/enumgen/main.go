package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	goversion "github.com/caarlos0/go-version"

	"github.com/origadmin/enumgen/internal/analyzer"
	"github.com/origadmin/enumgen/internal/config"
	"github.com/origadmin/enumgen/internal/diag"
	"github.com/origadmin/enumgen/internal/generator"
	"github.com/origadmin/enumgen/internal/lint"
)

var (
	version   = "0.0.1"
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

type CLI struct {
	Debug   bool   `help:"Enable debug logging."`
	LogFile string `help:"Path to a file where logs should be written. If empty, logs go to stderr." type:"path"`

	Gen     GenCmd     `cmd:"" help:"Generate description lookups for the enums of a package."`
	Lint    LintCmd    `cmd:"" help:"Report stringified enum values and invalid description directives."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(buildVersion(version, commit, date, builtBy, treeState).String())
	return nil
}

type GenCmd struct {
	Dir    string   `arg:"" optional:"" default:"." help:"Package directory." type:"existingdir"`
	Types  []string `name:"type" short:"t" help:"Generate for the named enum type even without //enumgen:generate."`
	All    bool     `help:"Generate for every enum type in the package."`
	Config string   `short:"c" help:"Configuration file. Defaults to .enumgen.yaml in the package directory." type:"path"`
	DryRun bool     `help:"Print the generated files instead of writing them."`
}

func (c *GenCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(c.Dir, c.Config)
	if err != nil {
		return err
	}
	cfg.Types = append(cfg.Types, c.Types...)
	cfg.GenerateAll = cfg.GenerateAll || c.All
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.Info("Starting enumgen", "dir", c.Dir)
	res, err := generator.NewGenerator(cfg).Run(ctx, c.Dir)
	if err != nil {
		return err
	}
	printDiagnostics(os.Stderr, res.Diagnostics)
	if res.HasErrors() {
		return fmt.Errorf("%d problems found, no file written: %w", len(res.Diagnostics), generator.ErrDiagnostics)
	}

	if c.DryRun {
		for _, f := range res.Files {
			fmt.Printf("// %s\n%s\n", f.Path, f.Content)
		}
		return nil
	}
	if err := generator.Write(res); err != nil {
		return err
	}
	slog.Info("enumgen finished successfully.", "files", len(res.Files))
	return nil
}

type LintCmd struct {
	Patterns []string `arg:"" optional:"" help:"Package patterns." default:"./..."`
	Dir      string   `short:"C" default:"." help:"Directory to run in." type:"existingdir"`
	Config   string   `short:"c" help:"Configuration file. Defaults to .enumgen.yaml in the directory." type:"path"`
}

var errLint = errors.New("lint problems found")

func (c *LintCmd) Run() error {
	cfg, err := config.Load(c.Dir, c.Config)
	if err != nil {
		return err
	}
	pkgs, err := analyzer.Load(c.Dir, c.Patterns...)
	if err != nil {
		return err
	}

	var all []diag.Diagnostic
	for _, pkg := range pkgs {
		all = append(all, lint.Lint(pkg, cfg.Lint)...)
	}
	diag.Sort(all)
	printDiagnostics(os.Stdout, all)
	if len(all) > 0 {
		return fmt.Errorf("%d problems: %w", len(all), errLint)
	}
	return nil
}

func printDiagnostics(w io.Writer, diagnostics []diag.Diagnostic) {
	for _, d := range diagnostics {
		fmt.Fprintln(w, d.String())
	}
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name(config.Application),
		kong.Description(config.Description),
		kong.UsageOnError(),
	)

	// Configure log output
	logWriter := os.Stderr
	if cli.LogFile != "" {
		f, err := os.OpenFile(filepath.Clean(cli.LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		kctx.FatalIfErrorf(err, "failed to open log file")
		defer f.Close()
		logWriter = f
	}

	logLevel := slog.LevelWarn
	if cli.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	})))

	kctx.BindTo(context.Background(), (*context.Context)(nil))
	err := kctx.Run()
	if err != nil {
		slog.Error("enumgen failed", "command", kctx.Command(), "error", err)
	}
	kctx.FatalIfErrorf(err)
}

func buildVersion(version, commit, date, builtBy, treeState string) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(config.Application, config.Description, config.WebSite),
		func(i *goversion.Info) {
			i.ASCIIName = config.UI
			if commit != "" {
				i.GitCommit = commit
			}
			if version != "" {
				i.GitVersion = version
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}
