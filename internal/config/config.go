package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the complete configuration for a generation or lint run.
type Config struct {
	// OutputSuffix is appended to the lower-cased enum type name to form the
	// generated file name.
	OutputSuffix string `yaml:"output_suffix" validate:"required,endswith=.go"`
	// GenerateAll generates lookups for every enum type in the package, not
	// only for those marked with //enumgen:generate.
	GenerateAll bool `yaml:"generate_all"`
	// Types names additional enum types to generate for.
	Types []string `yaml:"types" validate:"dive,required"`
	// Lint configures the stringification check.
	Lint Lint `yaml:"lint"`
}

// Lint configures which calls stringify their arguments.
// Functions are named the way go/types renders them with FullName, for
// example "fmt.Sprintf" or "(*log.Logger).Printf".
type Lint struct {
	// PrintfFuncs take a format string followed by its arguments.
	PrintfFuncs []string `yaml:"printf_funcs" validate:"dive,required"`
	// PrintFuncs format every argument with %v.
	PrintFuncs []string `yaml:"print_funcs" validate:"dive,required"`
	// IgnoreTypes lists enum types, as "import/path.Name", that may be stringified.
	IgnoreTypes []string `yaml:"ignore_types" validate:"dive,required"`
}

// NewConfig creates a configuration with default values.
func NewConfig() *Config {
	return &Config{
		OutputSuffix: DefaultOutputSuffix,
		Types:        []string{},
		Lint:         DefaultLint(),
	}
}

// DefaultLint returns the print families of fmt and log.
func DefaultLint() Lint {
	return Lint{
		PrintfFuncs: []string{
			"fmt.Appendf", "fmt.Errorf", "fmt.Fprintf", "fmt.Printf", "fmt.Sprintf",
			"log.Fatalf", "log.Panicf", "log.Printf",
			"(*log.Logger).Fatalf", "(*log.Logger).Panicf", "(*log.Logger).Printf",
		},
		PrintFuncs: []string{
			"fmt.Append", "fmt.Appendln", "fmt.Fprint", "fmt.Fprintln",
			"fmt.Print", "fmt.Println", "fmt.Sprint", "fmt.Sprintln",
			"log.Fatal", "log.Fatalln", "log.Panic", "log.Panicln", "log.Print", "log.Println",
			"(*log.Logger).Fatal", "(*log.Logger).Fatalln", "(*log.Logger).Panic",
			"(*log.Logger).Panicln", "(*log.Logger).Print", "(*log.Logger).Println",
		},
		IgnoreTypes: []string{},
	}
}

// Load reads the configuration at path. An empty path means FileName inside
// dir; a missing default file yields the defaults.
func Load(dir, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, FileName)
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no configuration file, using defaults", "path", path)
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	slog.Debug("configuration loaded", "path", path)
	return cfg, nil
}

// Decode reads a YAML configuration on top of the defaults and validates it.
// Lists given in the document replace the default lists.
func Decode(r io.Reader) (*Config, error) {
	cfg := NewConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// WantsType reports whether name was requested explicitly or by GenerateAll.
func (c *Config) WantsType(name string) bool {
	return c.GenerateAll || slices.Contains(c.Types, name)
}

// Clone creates a deep copy of the Config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Types = slices.Clone(c.Types)
	clone.Lint = Lint{
		PrintfFuncs: slices.Clone(c.Lint.PrintfFuncs),
		PrintFuncs:  slices.Clone(c.Lint.PrintFuncs),
		IgnoreTypes: slices.Clone(c.Lint.IgnoreTypes),
	}
	return &clone
}
