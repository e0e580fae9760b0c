// Package template renders the generated lookup files.
package template

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/origadmin/enumgen/enumdesc"
	"github.com/origadmin/enumgen/internal/config"
	"github.com/origadmin/enumgen/internal/model"
)

//go:embed *.tpl
var templates embed.FS

// RuntimeImport is the package generated code calls on lookup failure.
const RuntimeImport = "github.com/origadmin/enumgen/enumdesc"

// Renderer is the interface for rendering templates.
type Renderer interface {
	Render(templateName string, data any) ([]byte, error)
}

// Manager is a template manager that holds and renders templates.
type Manager struct {
	tmpl *template.Template
}

// NewManager creates a new template manager and parses the embedded templates.
func NewManager() *Manager {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"quote": strconv.Quote,
		"join":  strings.Join,
	}).ParseFS(templates, "*.tpl"))
	return &Manager{tmpl: tmpl}
}

// Render executes the named template with the given data.
func (m *Manager) Render(templateName string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.tmpl.ExecuteTemplate(&buf, templateName, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderEnum renders and formats the lookup file for one enum.
func (m *Manager) RenderEnum(data *Data) ([]byte, error) {
	src, err := m.Render("enum", data)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", data.Type, err)
	}
	out, err := imports.Process(data.Type+".go", src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w\n%s", data.Type, err, src)
	}
	return out, nil
}

// Data is the top-level struct passed to the enum template.
type Data struct {
	Generator     string
	Package       string
	RuntimeImport string
	Type          string
	Entries       []Entry
	Forward       []Forward
	// Defined holds one constant per distinct value.
	Defined []string
}

// Entry is one description binding.
type Entry struct {
	Description string
	Member      string
}

// Forward is the forward mapping of one distinct value.
type Forward struct {
	Member         string
	Description    string
	HasDescription bool
}

// NewData builds the template data of e from its table.
func NewData(e *model.Enum, table *enumdesc.Table[string]) *Data {
	data := &Data{
		Generator:     config.Application,
		Package:       e.PackageName,
		RuntimeImport: RuntimeImport,
		Type:          e.Name,
	}
	for _, entry := range table.Entries() {
		data.Entries = append(data.Entries, Entry{Description: entry.Description, Member: entry.Member.Name})
	}

	seen := make(map[string]bool)
	for _, m := range table.Members() {
		if seen[m.Value] {
			continue
		}
		seen[m.Value] = true
		data.Defined = append(data.Defined, m.Name)

		name, ok := table.Name(m.Value)
		if !ok {
			continue
		}
		fwd := Forward{Member: name}
		fwd.Description, fwd.HasDescription = table.Description(m.Value)
		data.Forward = append(data.Forward, fwd)
	}
	return data
}
