package validation

import "measures-generator/internal/diagnostic"

// Outcome is the result of processing one item: an optional product and
// the diagnostics produced while computing it.
type Outcome[T any] struct {
	Value       T
	OK          bool
	Diagnostics diagnostic.Diagnostics
}

// Success returns an outcome carrying v.
func Success[T any](v T, diags ...diagnostic.Diagnostic) Outcome[T] {
	return Outcome[T]{Value: v, OK: true, Diagnostics: diags}
}

// Failure returns an outcome without a product.
func Failure[T any](diags ...diagnostic.Diagnostic) Outcome[T] {
	return Outcome[T]{Diagnostics: diags}
}

// Get returns the product and whether there is one.
func (o Outcome[T]) Get() (T, bool) {
	return o.Value, o.OK
}

// With returns a copy of o with more diagnostics appended.
func (o Outcome[T]) With(diags ...diagnostic.Diagnostic) Outcome[T] {
	merged := make(diagnostic.Diagnostics, 0, len(o.Diagnostics)+len(diags))
	merged = append(merged, o.Diagnostics...)
	merged = append(merged, diags...)
	o.Diagnostics = merged

	return o
}

// Then runs next on the product of o. When o has no product next is not
// called. Diagnostics of both steps are kept.
func Then[T, U any](o Outcome[T], next func(T) Outcome[U]) Outcome[U] {
	if !o.OK {
		return Failure[U](o.Diagnostics...)
	}

	out := next(o.Value)

	return Outcome[U]{
		Value:       out.Value,
		OK:          out.OK,
		Diagnostics: concat(o.Diagnostics, out.Diagnostics),
	}
}

// Map transforms the product of o.
func Map[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if !o.OK {
		return Failure[U](o.Diagnostics...)
	}

	return Success(f(o.Value), o.Diagnostics...)
}

func concat(a, b diagnostic.Diagnostics) diagnostic.Diagnostics {
	if len(a) == 0 {
		return b
	}

	out := make(diagnostic.Diagnostics, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}
