package resolve

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
	"measures-generator/internal/validation"
)

// constantContext is what a constant is checked against.
type constantContext struct {
	typeContext
	unit *quantity.ResolvedUnit
	// dimension is the expected number of values; zero for scalars.
	dimension int
}

func resolveConstant(ctx constantContext, c quantity.Constant) validation.Outcome[quantity.ResolvedConstant] {
	ann := c.Loc.Annotation.Span

	check := validation.All(
		ctx.instance("UnitInstanceName", c.UnitInstanceName, ctx.unit, at(c.Loc.UnitInstanceName, ann)),
		validation.When(ctx.dimension > 0 && len(c.Values) != ctx.dimension, func() validation.Check {
			return validation.Fail(ctx.errorf(diagnostic.CodeConstantDimension, at(c.Loc.Values.Span, ann), "Values",
				"constant %q has %d values, want %d", c.Name, len(c.Values), ctx.dimension))
		}),
	)

	return validation.Into(check, quantity.ResolvedConstant{
		Name:         c.Name,
		UnitInstance: c.UnitInstanceName,
		Values:       c.Values,
		Multiples:    c.Multiples,
	})
}

// constants resolves own constants and merges the inherited ones. An own
// constant replaces an inherited constant of the same name.
func (t typeContext) constants(
	own []quantity.Constant,
	parent []quantity.ResolvedConstant,
	inherit bool,
	unit *quantity.ResolvedUnit,
	dimension int,
) ([]quantity.ResolvedConstant, diagnostic.Diagnostics) {
	ctx := constantContext{typeContext: t, unit: unit, dimension: dimension}
	resolved, diags := validation.Filter(ctx, own, resolveConstant)

	if !inherit {
		return resolved, diags
	}

	out := append([]quantity.ResolvedConstant(nil), parent...)
	index := make(map[string]int, len(out))

	for i, c := range out {
		index[c.Name] = i
	}

	for _, c := range resolved {
		if pos, ok := index[c.Name]; ok {
			diags.Add(t.warnf(diagnostic.CodeInheritedConflict, constantSpan(own, c.Name), "Constants",
				"constant %q overrides the inherited constant of the same name", c.Name))
			out[pos] = c

			continue
		}

		index[c.Name] = len(out)
		out = append(out, c)
	}

	return out, diags
}

func constantSpan(own []quantity.Constant, name string) (span source.Span) {
	for _, c := range own {
		if c.Name == name {
			return at(c.Loc.Name, c.Loc.Annotation.Span)
		}
	}

	return span
}

// conversions resolves own conversions and unions the inherited ones.
func (t typeContext) conversions(own []quantity.Conversion, parent []analyze.TypeID, inherit bool) ([]analyze.TypeID, diagnostic.Diagnostics) {
	var (
		out   []analyze.TypeID
		diags diagnostic.Diagnostics
		seen  = make(map[analyze.TypeID]bool)
	)

	add := func(id analyze.TypeID) {
		if id == t.id || seen[id] {
			return
		}

		seen[id] = true
		out = append(out, id)
	}

	if inherit {
		for _, id := range parent {
			add(id)
		}
	}

	for _, c := range own {
		check := t.reference("Quantities", c.Quantity, c.Span, t.category)
		if check.Failed() {
			diags.Merge(check.Diagnostics)
			continue
		}

		add(c.Quantity)
	}

	return out, diags
}
