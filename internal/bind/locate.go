package bind

import (
	"go/ast"

	"measures-generator/internal/annotation"
	"measures-generator/internal/source"
)

// LocateValue records the span of a single-valued argument. Parentheses,
// conversions and the (*T)(nil) / T{} type forms are unwrapped first.
func LocateValue[D any](apply func(D, source.Span) D) Locator[D] {
	return func(def D, args *annotation.ArgumentList, index int) D {
		if index < 0 || index >= args.Len() {
			return def
		}

		expr := annotation.Unwrap(args.Arg(index).Expr)

		return apply(def, args.SpanOf(expr))
	}
}

// LocateArray records the span of a collection argument and of each of its
// elements. The argument may be an array literal, an inline initializer,
// the first of the trailing variadic arguments, or nil.
func LocateArray[D any](apply func(D, source.ArraySpan) D) Locator[D] {
	return func(def D, args *annotation.ArgumentList, index int) D {
		if index < 0 || index >= args.Len() {
			return def
		}

		return apply(def, ArrayLocation(args, index))
	}
}

// ArrayLocation computes the overall and per-element spans of the collection
// argument at index.
func ArrayLocation(args *annotation.ArgumentList, index int) source.ArraySpan {
	expr := annotation.UnwrapCasts(args.Arg(index).Expr)

	if annotation.IsNil(expr) {
		return source.ArraySpan{Span: args.SpanOf(expr), Elements: []source.Span{}}
	}

	if elems, ok := annotation.Elements(expr); ok {
		return source.ArraySpan{Span: args.SpanOf(expr), Elements: elementSpans(args, elems)}
	}

	if index < args.Positional() {
		// Variadic: every remaining positional argument is an element.
		exprs := make([]ast.Expr, 0, args.Positional()-index)
		for i := index; i < args.Positional(); i++ {
			exprs = append(exprs, args.Arg(i).Expr)
		}

		spans := elementSpans(args, exprs)

		return source.ArraySpan{Span: spans[0].Cover(spans[len(spans)-1]), Elements: spans}
	}

	span := args.SpanOf(annotation.Unwrap(expr))

	return source.ArraySpan{Span: span, Elements: []source.Span{span}}
}

func elementSpans(args *annotation.ArgumentList, exprs []ast.Expr) []source.Span {
	spans := make([]source.Span, 0, len(exprs))
	for _, e := range exprs {
		spans = append(spans, args.SpanOf(annotation.Unwrap(e)))
	}

	return spans
}
