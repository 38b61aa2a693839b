package process

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/source"
)

// Context identifies the declaration being processed.
type Context struct {
	ID analyze.TypeID
}

// NewContext creates a context for the declaration id.
func NewContext(id analyze.TypeID) Context {
	return Context{ID: id}
}

func (c Context) errorf(code string, span source.Span, field, format string, args ...any) diagnostic.Diagnostic {
	return diagnostic.Errorf(code, span, format, args...).ForType(c.ID.Short()).ForField(field)
}

func (c Context) warnf(code string, span source.Span, field, format string, args ...any) diagnostic.Diagnostic {
	return diagnostic.Warningf(code, span, format, args...).ForType(c.ID.Short()).ForField(field)
}

// at returns span, or fallback when span is absent.
func at(span, fallback source.Span) source.Span {
	if span.IsZero() {
		return fallback
	}

	return span
}
