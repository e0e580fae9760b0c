package diag

import (
	"fmt"
	"go/token"
	"sort"
	"sync"
)

// Diagnostic is a single finding.
type Diagnostic struct {
	Rule    Rule
	Message string
	Pos     token.Position
}

// Code returns the rule code.
func (d Diagnostic) Code() string { return d.Rule.Code() }

// Title returns the rule title.
func (d Diagnostic) Title() string { return d.Rule.Title() }

// Severity returns the rule severity.
func (d Diagnostic) Severity() Severity { return d.Rule.Severity() }

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s %s: %s", d.Pos, d.Rule.Code(), d.Rule.Severity(), d.Message)
}

// Reporter collects diagnostics. It is safe for concurrent use.
type Reporter struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewReporter creates an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records d.
func (r *Reporter) Report(d Diagnostic) {
	r.mu.Lock()
	r.diagnostics = append(r.diagnostics, d)
	r.mu.Unlock()
}

// Reportf records a diagnostic for rule at pos.
func (r *Reporter) Reportf(rule Rule, pos token.Position, format string, args ...any) {
	r.Report(Diagnostic{Rule: rule, Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// Diagnostics returns a snapshot sorted by position, then code.
func (r *Reporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	out := make([]Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	r.mu.Unlock()

	Sort(out)
	return out
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (r *Reporter) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.diagnostics {
		if d.Severity() == SeverityError {
			return true
		}
	}
	return false
}

// Sort orders diagnostics by file, line, column and code.
func Sort(ds []Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i].Pos, ds[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return ds[i].Rule < ds[j].Rule
	})
}
