package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"measures-generator/internal/common"
	"measures-generator/internal/source"
)

// Diagnostics is the flat list of diagnostics accumulated by a stage.
type Diagnostics []Diagnostic

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Span locates the offending annotation text (may be zero).
	Span source.Span
	// Type names the declaration this relates to (if any).
	Type string
	// Field names the annotation argument this relates to (if any).
	Field string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
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

// Errorf builds an error diagnostic.
func Errorf(code string, span source.Span, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	}
}

// Warningf builds a warning diagnostic.
func Warningf(code string, span source.Span, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Span:     span,
	}
}

// ForType returns a copy of d attributed to the named declaration.
func (d Diagnostic) ForType(name string) Diagnostic {
	d.Type = name
	return d
}

// ForField returns a copy of d attributed to the named argument.
func (d Diagnostic) ForField(name string) Diagnostic {
	d.Field = name
	return d
}

// WithSuggestions returns a copy of d carrying the given alternatives.
func (d Diagnostic) WithSuggestions(s ...string) Diagnostic {
	d.Suggestions = append(append([]string{}, d.Suggestions...), s...)
	return d
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code string, span source.Span, format string, args ...any) {
	*d = append(*d, Errorf(code, span, format, args...))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code string, span source.Span, format string, args ...any) {
	*d = append(*d, Warningf(code, span, format, args...))
}

// Add appends diagnostics.
func (d *Diagnostics) Add(items ...Diagnostic) {
	*d = append(*d, items...)
}

// Merge merges another list into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	*d = append(*d, other...)
}

// HasErrors returns true if there are any error diagnostics.
func (d Diagnostics) HasErrors() bool {
	for i := range d {
		if d[i].Severity == SeverityError {
			return true
		}
	}

	return false
}

// IsValid returns true if there are no errors.
func (d Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// Errors returns only the error diagnostics.
func (d Diagnostics) Errors() Diagnostics {
	return d.filter(SeverityError)
}

// Warnings returns only the warning diagnostics.
func (d Diagnostics) Warnings() Diagnostics {
	return d.filter(SeverityWarning)
}

func (d Diagnostics) filter(sev Severity) Diagnostics {
	var out Diagnostics

	for _, item := range d {
		if item.Severity == sev {
			out = append(out, item)
		}
	}

	return out
}

// Codes returns the code of every diagnostic, in order.
func (d Diagnostics) Codes() []string {
	codes := make([]string, 0, len(d))
	for _, item := range d {
		codes = append(codes, item.Code)
	}

	return codes
}

// Sorted returns a copy ordered by file, offset, severity (errors first) and code.
func (d Diagnostics) Sorted() Diagnostics {
	out := append(Diagnostics{}, d...)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i], out[j]
		if di.Span.File != dj.Span.File {
			return di.Span.File < dj.Span.File
		}

		if di.Span.Offset != dj.Span.Offset {
			return di.Span.Offset < dj.Span.Offset
		}

		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}

		return di.Code < dj.Code
	})

	return out
}

// Dedup drops diagnostics repeating an earlier code, span and message.
func (d Diagnostics) Dedup() Diagnostics {
	seen := make(map[string]bool, len(d))
	out := make(Diagnostics, 0, len(d))

	for _, item := range d {
		key := item.Code + "|" + item.Span.String() + "|" + item.Type + "|" + item.Message
		if seen[key] {
			continue
		}

		seen[key] = true
		out = append(out, item)
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors() {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if !d.Span.IsZero() {
		prefix = append(prefix, d.Span.String())
	}

	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
