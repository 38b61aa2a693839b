package bind

import (
	"measures-generator/internal/annotation"
	"measures-generator/internal/source"
)

// Setter copies an argument value into a definition.
type Setter[D any] func(def D, v annotation.Value) D

// Locator records the location of argument index of args in a definition.
type Locator[D any] func(def D, args *annotation.ArgumentList, index int) D

// Field describes one argument of an annotation.
type Field[D any] struct {
	Name   string
	Set    Setter[D]
	Locate Locator[D]
}

// Definition is implemented by raw definitions; it records the span of the
// annotation itself.
type Definition[D any] interface {
	WithAnnotation(loc source.AnnotationSpan) D
}

// Table is the field descriptor table of one annotation kind. It is
// immutable once built and safe for concurrent use.
type Table[D Definition[D]] struct {
	annotation string
	params     []string
	variadic   bool
	fields     []Field[D]
	byName     map[string]int
}

// NewTable builds a table. params are the positional parameter names in
// order; when variadic is set the last one collects trailing arguments.
// Annotations with positional parameters require an argument list.
func NewTable[D Definition[D]](annotation string, params []string, variadic bool, fields ...Field[D]) *Table[D] {
	t := &Table[D]{
		annotation: annotation,
		params:     append([]string{}, params...),
		variadic:   variadic && len(params) > 0,
		fields:     append([]Field[D]{}, fields...),
		byName:     make(map[string]int, len(fields)),
	}

	for i, f := range t.fields {
		t.byName[f.Name] = i
	}

	return t
}

// Annotation returns the annotation name the table describes.
func (t *Table[D]) Annotation() string {
	return t.annotation
}

// Params returns the positional parameter names.
func (t *Table[D]) Params() []string {
	return append([]string{}, t.params...)
}

// Variadic reports whether the last positional parameter is variadic.
func (t *Table[D]) Variadic() bool {
	return t.variadic
}

// RequiresArguments reports whether an argument list must be present.
func (t *Table[D]) RequiresArguments() bool {
	return len(t.params) > 0
}

// Field returns the descriptor for an argument name.
func (t *Table[D]) Field(name string) (Field[D], bool) {
	i, ok := t.byName[name]
	if !ok {
		return Field[D]{}, false
	}

	return t.fields[i], true
}
