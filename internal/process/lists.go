package process

import (
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
	"measures-generator/internal/validation"
)

// Selections folds the include/exclude directives into one list per
// directive. A directive whose fold fails is dropped.
func Selections(ctx Context, lists []quantity.RawUnitList) (units, bases quantity.Selection, diags diagnostic.Diagnostics) {
	fold := func(d quantity.ListDirective) *quantity.UnitList {
		var items []quantity.RawUnitList
		for _, l := range lists {
			if l.Directive == d {
				items = append(items, l)
			}
		}

		if len(items) == 0 {
			return nil
		}

		out := validation.Reprocess(ctx, items, quantity.UnitList{}, appendList)
		diags = append(diags, out.Diagnostics...)

		if !out.OK {
			return nil
		}

		return &out.Value
	}

	units = quantity.Selection{
		Include: fold(quantity.DirectiveIncludeUnits),
		Exclude: fold(quantity.DirectiveExcludeUnits),
	}
	bases = quantity.Selection{
		Include: fold(quantity.DirectiveIncludeBases),
		Exclude: fold(quantity.DirectiveExcludeBases),
	}

	return units, bases, diags
}

// appendList is one fold step: it adds the names of raw to the list built
// so far. An empty directive or an empty name stops the fold.
func appendList(ctx Context, list quantity.UnitList, raw quantity.RawUnitList) validation.Outcome[quantity.UnitList] {
	field := "Names"
	ann := raw.Loc.Annotation.Span

	if len(raw.Names) == 0 && len(raw.Loc.Names.Elements) > 0 {
		// Names were written but did not convert: non-string elements, or a
		// collection mixed with further variadic arguments.
		return validation.Failure[quantity.UnitList](ctx.errorf(diagnostic.CodeInvalidValue,
			at(raw.Loc.Names.Span, ann), field,
			"@%s takes string unit instance names, either as one collection or as separate arguments",
			raw.Directive))
	}

	if len(raw.Names) == 0 {
		return validation.Failure[quantity.UnitList](ctx.errorf(diagnostic.CodeEmptyList,
			at(raw.Loc.Names.Span, ann), field, "@%s lists no unit instances", raw.Directive))
	}

	next := quantity.UnitList{
		Names: append([]string{}, list.Names...),
		Spans: append([]source.Span{}, list.Spans...),
		Span:  list.Span,
	}
	if next.Span.IsZero() {
		next.Span = ann
	}

	var diags diagnostic.Diagnostics

	for i, name := range raw.Names {
		span := ann
		if i < len(raw.Loc.Names.Elements) {
			span = raw.Loc.Names.Elements[i]
		}

		if name == "" {
			diags.Add(ctx.errorf(diagnostic.CodeEmptyName, span, field, "@%s contains an empty name", raw.Directive))
			return validation.Failure[quantity.UnitList](diags...)
		}

		if contains(next.Names, name) {
			diags.Add(ctx.warnf(diagnostic.CodeDuplicateListEntry, span, field,
				"%q is listed more than once in @%s", name, raw.Directive))

			continue
		}

		next.Names = append(next.Names, name)
		next.Spans = append(next.Spans, span)
	}

	return validation.Success(next, diags...)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
