package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, DefaultOutputSuffix, cfg.OutputSuffix)
	assert.False(t, cfg.GenerateAll)
	assert.Contains(t, cfg.Lint.PrintfFuncs, "fmt.Sprintf")
	assert.Contains(t, cfg.Lint.PrintFuncs, "(*log.Logger).Println")
	require.NoError(t, cfg.Validate())
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
output_suffix: _desc.gen.go
generate_all: true
types: [Color, Shape]
lint:
  printf_funcs: ["github.com/acme/log.Infof"]
  ignore_types: ["time.Weekday"]
`))
	require.NoError(t, err)
	assert.Equal(t, "_desc.gen.go", cfg.OutputSuffix)
	assert.True(t, cfg.GenerateAll)
	assert.Equal(t, []string{"Color", "Shape"}, cfg.Types)
	assert.Equal(t, []string{"github.com/acme/log.Infof"}, cfg.Lint.PrintfFuncs)
	assert.Equal(t, DefaultLint().PrintFuncs, cfg.Lint.PrintFuncs)
	assert.Equal(t, []string{"time.Weekday"}, cfg.Lint.IgnoreTypes)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "suffix without .go", doc: "output_suffix: _gen.txt"},
		{name: "empty type name", doc: `types: [""]`},
		{name: "unknown field", doc: "outptu_suffix: _x.go"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("generate_all: true\n"), 0o644))
	cfg, err = Load(dir, "")
	require.NoError(t, err)
	assert.True(t, cfg.GenerateAll)

	_, err = Load(dir, filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_WantsType(t *testing.T) {
	cfg := NewConfig()
	cfg.Types = []string{"Color"}
	assert.True(t, cfg.WantsType("Color"))
	assert.False(t, cfg.WantsType("Shape"))

	cfg.GenerateAll = true
	assert.True(t, cfg.WantsType("Shape"))
}

func TestConfig_Clone(t *testing.T) {
	cfg := NewConfig()
	cfg.Types = append(cfg.Types, "Color")

	clone := cfg.Clone()
	require.Equal(t, cfg, clone)

	clone.Types[0] = "Shape"
	clone.Lint.PrintfFuncs[0] = "changed"
	assert.Equal(t, "Color", cfg.Types[0])
	assert.Equal(t, "fmt.Appendf", cfg.Lint.PrintfFuncs[0])

	var nilCfg *Config
	assert.Nil(t, nilCfg.Clone())
}
