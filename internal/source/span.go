package source

import (
	"fmt"
	"go/token"
)

// Span is a half-open byte range in a source file, plus the line and column
// of its first byte.
type Span struct {
	File   string
	Line   int
	Column int
	Offset int // byte offset of the first character
	End    int // byte offset one past the last character
}

// FromPositions builds a span from two go/token positions of the same file.
func FromPositions(start, end token.Position) Span {
	return Span{
		File:   start.Filename,
		Line:   start.Line,
		Column: start.Column,
		Offset: start.Offset,
		End:    end.Offset,
	}
}

// IsZero reports whether the span is absent.
func (s Span) IsZero() bool {
	return s.Line == 0 && s.File == "" && s.Offset == 0 && s.End == 0
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Offset
}

// Cover returns a span running from the start of s to the end of other.
// Absent spans are ignored.
func (s Span) Cover(other Span) Span {
	if s.IsZero() {
		return other
	}

	if other.IsZero() {
		return s
	}

	out := s
	if other.End > out.End {
		out.End = other.End
	}

	return out
}

// String returns "file:line:column".
func (s Span) String() string {
	if s.IsZero() {
		return "-"
	}

	if s.File == "" {
		return fmt.Sprintf("%d:%d", s.Line, s.Column)
	}

	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}

// ArraySpan locates a collection argument: the overall expression and each
// element.
type ArraySpan struct {
	Span     Span
	Elements []Span
}

// IsZero reports whether the collection was not supplied.
func (a ArraySpan) IsZero() bool {
	return a.Span.IsZero()
}

// AnnotationSpan locates an annotation and its name.
type AnnotationSpan struct {
	Span Span
	Name Span
}
