package model

import "fmt"

// DiagSeverity indicates the importance of a diagnostic finding.
type DiagSeverity string

const (
	DiagInfo    DiagSeverity = "info"
	DiagWarning DiagSeverity = "warning"
	DiagError   DiagSeverity = "error"
)

// Diagnostic is one observable finding from lenient parsing or resolution
// fallbacks. The engine never fails on these; it records them so authoring
// mistakes stay discoverable.
type Diagnostic struct {
	Severity  DiagSeverity `json:"severity"`
	Component string       `json:"component"`     // parser, resolver, places, events, pretranslated, validator
	Key       string       `json:"key,omitempty"` // marker key, when one is involved
	Message   string       `json:"message"`
}

// Diagnostics collects findings during one resolution or validation run.
// Not safe for concurrent use; each run gets its own collector.
type Diagnostics struct {
	items []Diagnostic
}

// Add records a finding. A nil collector silently drops it, so callers that
// do not care can pass nil.
func (d *Diagnostics) Add(sev DiagSeverity, component, key, format string, args ...interface{}) {
	if d == nil {
		return
	}
	d.items = append(d.items, Diagnostic{
		Severity:  sev,
		Component: component,
		Key:       key,
		Message:   fmt.Sprintf(format, args...),
	})
}

// Items returns all findings in the order they were recorded.
func (d *Diagnostics) Items() []Diagnostic {
	if d == nil {
		return nil
	}
	return d.items
}

// HasErrors reports whether any finding has error severity.
func (d *Diagnostics) HasErrors() bool {
	for _, it := range d.Items() {
		if it.Severity == DiagError {
			return true
		}
	}
	return false
}
