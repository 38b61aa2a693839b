package annotation

import (
	"go/ast"

	"measures-generator/internal/common"
	"measures-generator/internal/source"
)

// Kind classifies an argument value.
type Kind int

const (
	KindError    Kind = iota // expression could not be evaluated
	KindConstant             // bool, string, int64 or float64
	KindType                 // reference to a named type
	KindArray                // collection of values
	KindNull                 // literal nil
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindConstant:
		return "constant"
	case KindType:
		return "type"
	case KindArray:
		return "array"
	case KindNull:
		return "null"
	default:
		return common.UnknownStr
	}
}

// TypeName is a type reference as written in an annotation, qualified with
// the import path it refers to. Nothing guarantees the type exists.
type TypeName struct {
	PkgPath string
	Name    string
}

// String returns "pkgpath.Name", or just the name for unqualified references.
func (t TypeName) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Value is a materialized argument value.
type Value struct {
	Kind  Kind
	Const any      // bool, string, int64 or float64 for KindConstant
	Type  TypeName // for KindType
	Elems []Value  // for KindArray
}

// AsString returns the constant as a string, if it is one.
func (v Value) AsString() (string, bool) {
	s, ok := v.Const.(string)
	return s, ok && v.Kind == KindConstant
}

// AsBool returns the constant as a bool, if it is one.
func (v Value) AsBool() (bool, bool) {
	b, ok := v.Const.(bool)
	return b, ok && v.Kind == KindConstant
}

// AsInt returns the constant as an int64, if it is an integer.
func (v Value) AsInt() (int64, bool) {
	i, ok := v.Const.(int64)
	return i, ok && v.Kind == KindConstant
}

// AsFloat returns the constant as a float64. Integers are widened.
func (v Value) AsFloat() (float64, bool) {
	if v.Kind != KindConstant {
		return 0, false
	}

	switch c := v.Const.(type) {
	case float64:
		return c, true
	case int64:
		return float64(c), true
	default:
		return 0, false
	}
}

// Argument is one syntactic argument of an annotation.
type Argument struct {
	Name  string // empty for positional arguments
	Expr  ast.Expr
	Value Value
	Span  source.Span // span of Expr (the value part of a named argument)
}

// Instance is one parsed annotation.
type Instance struct {
	Name     string
	Span     source.Span
	NameSpan source.Span
	// Args is nil when the annotation was written without parentheses.
	Args *ArgumentList
}

// HasArgumentList reports whether the annotation was written with parentheses.
func (i *Instance) HasArgumentList() bool {
	return i.Args != nil
}

// ArgumentList is the flat syntactic argument list of an annotation:
// positional arguments first, then named ones.
type ArgumentList struct {
	args       []Argument
	positional int
	spanOf     func(ast.Node) source.Span
}

// NewArgumentList builds a list from already-evaluated arguments. The
// positional ones must come first. spanOf locates arbitrary sub-expressions.
func NewArgumentList(args []Argument, positional int, spanOf func(ast.Node) source.Span) *ArgumentList {
	return &ArgumentList{args: args, positional: positional, spanOf: spanOf}
}

// Len returns the number of arguments.
func (l *ArgumentList) Len() int {
	if l == nil {
		return 0
	}

	return len(l.args)
}

// Positional returns the number of positional arguments.
func (l *ArgumentList) Positional() int {
	if l == nil {
		return 0
	}

	return l.positional
}

// Arg returns the i-th argument.
func (l *ArgumentList) Arg(i int) Argument {
	return l.args[i]
}

// Named returns the named arguments, in order.
func (l *ArgumentList) Named() []Argument {
	if l == nil {
		return nil
	}

	return l.args[l.positional:]
}

// Span returns the span of the i-th argument, or a zero span when out of range.
func (l *ArgumentList) Span(i int) source.Span {
	if l == nil || i < 0 || i >= len(l.args) {
		return source.Span{}
	}

	return l.args[i].Span
}

// SpanOf returns the span of any node inside the argument list.
func (l *ArgumentList) SpanOf(n ast.Node) source.Span {
	if l == nil || l.spanOf == nil || n == nil {
		return source.Span{}
	}

	return l.spanOf(n)
}
