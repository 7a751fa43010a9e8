package diagnostic

import (
	"errors"
	"strings"

	"fixturegen/internal/common"
)

// Severity orders findings, higher is worse.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one finding about a scanned type or one of its fields.
type Diagnostic struct {
	Severity Severity
	// Code names the kind of finding, see the Code constants.
	Code    string
	Message string
	// Type is the qualified name of the scanned type.
	Type string
	// Field is the Owner.Field path, empty for findings about the type itself.
	Field string
	// Hints say how to make the type generatable.
	Hints []string
}

// String renders "[pkg.Type] Owner.Field: [code] message".
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = "[" + d.Code + "] " + msg
	}

	if len(prefix) == 0 {
		return msg
	}

	return strings.Join(prefix, " ") + ": " + msg
}

// Diagnostics holds the findings of a scan grouped by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files diag under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every finding, most severe first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)

	return append(out, d.Infos...)
}

// For returns the findings attached to typ, most severe first.
func (d *Diagnostics) For(typ string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Type == typ {
			out = append(out, diag)
		}
	}

	return out
}

// Error joins the error findings, or returns nil when there are none.
func (d *Diagnostics) Error() error {
	errs := make([]error, 0, len(d.Errors))
	for _, diag := range d.Errors {
		errs = append(errs, errors.New(diag.String()))
	}

	return errors.Join(errs...)
}
