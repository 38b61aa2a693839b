package process

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
	"measures-generator/internal/validation"
)

// Conversions flattens every @ConvertibleQuantity of a declaration. Empty
// directives and nil entries are reported; repeated quantities are kept
// once.
func Conversions(ctx Context, raws []quantity.RawConvertible) ([]quantity.Conversion, diagnostic.Diagnostics) {
	lists, diags := validation.Filter(ctx, raws, convertible)

	var (
		out  []quantity.Conversion
		seen = make(map[analyze.TypeID]bool)
	)

	for _, list := range lists {
		for _, c := range list {
			if seen[c.Quantity] {
				diags.Add(ctx.warnf(diagnostic.CodeDuplicateListEntry, c.Span, "Quantities",
					"%s is listed more than once", c.Quantity.Short()))

				continue
			}

			seen[c.Quantity] = true
			out = append(out, c)
		}
	}

	return out, diags
}

func convertible(ctx Context, raw quantity.RawConvertible) validation.Outcome[[]quantity.Conversion] {
	ann := raw.Loc.Annotation.Span

	if len(raw.Quantities) == 0 {
		return validation.Failure[[]quantity.Conversion](ctx.errorf(diagnostic.CodeEmptyList,
			at(raw.Loc.Quantities.Span, ann), "Quantities", "@ConvertibleQuantity lists no quantity"))
	}

	var (
		out   []quantity.Conversion
		diags diagnostic.Diagnostics
	)

	for i, q := range raw.Quantities {
		span := elementSpan(raw.Loc.Quantities, i, ann)

		switch {
		case q == nil:
			diags.Add(ctx.errorf(diagnostic.CodeNullField, span, "Quantities", "convertible quantity must not be nil"))
		case *q == ctx.ID:
			diags.Add(ctx.warnf(diagnostic.CodeInvalidValue, span, "Quantities",
				"%s is trivially convertible to itself", q.Short()))
		default:
			out = append(out, quantity.Conversion{Quantity: *q, Span: span})
		}
	}

	return validation.Success(out, diags...)
}

func elementSpan(a source.ArraySpan, i int, fallback source.Span) source.Span {
	if i < len(a.Elements) {
		return a.Elements[i]
	}

	return at(a.Span, fallback)
}
