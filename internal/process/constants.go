package process

import (
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/validation"
	"measures-generator/utils"
)

// Constants validates constant declarations. Constant names and their
// multiples names share one namespace; the names reserved so far are
// threaded through the traversal.
func Constants(ctx Context, raws []quantity.RawConstant) ([]quantity.Constant, diagnostic.Diagnostics) {
	out, _, diags := validation.FilterActionable(ctx, validation.NewNames(), raws, constant, reserveConstant)
	return out, diags
}

func reserveConstant(names validation.Names, event validation.Event, raw quantity.RawConstant, _ quantity.Constant) validation.Names {
	if event != validation.EventStart {
		return names
	}

	if raw.Name != "" {
		names = names.With(raw.Name)
	}

	if raw.Multiples != "" {
		names = names.With(raw.Multiples)
	}

	return names
}

func constant(ctx Context, reserved validation.Names, raw quantity.RawConstant) validation.Outcome[quantity.Constant] {
	ann := raw.Loc.Annotation.Span

	name := validation.Sequence(
		func() validation.Check {
			if raw.Name == "" {
				return validation.Fail(ctx.errorf(diagnostic.CodeEmptyName, at(raw.Loc.Name, ann), "Name",
					"constant name must not be empty"))
			}

			return validation.Pass()
		},
		func() validation.Check {
			if reserved.Contains(raw.Name) {
				return validation.Fail(ctx.errorf(diagnostic.CodeDuplicateConstant, at(raw.Loc.Name, ann), "Name",
					"constant %q is already defined", raw.Name))
			}

			return validation.Pass()
		},
	)

	multiples := validation.When(!raw.Loc.Multiples.IsZero(), func() validation.Check {
		switch {
		case raw.Multiples == "":
			return validation.Fail(ctx.errorf(diagnostic.CodeEmptyName, raw.Loc.Multiples, "Multiples",
				"Multiples must not be empty"))
		case raw.Multiples == raw.Name || reserved.Contains(raw.Multiples):
			return validation.Fail(ctx.errorf(diagnostic.CodeDuplicateConstant, raw.Loc.Multiples, "Multiples",
				"constant %q is already defined", raw.Multiples))
		default:
			return validation.Pass()
		}
	})

	unit := validation.Pass()
	if raw.UnitInstanceName == "" {
		unit = validation.Fail(ctx.errorf(diagnostic.CodeEmptyName, at(raw.Loc.UnitInstanceName, ann),
			"UnitInstanceName", "constant %q names no unit instance", raw.Name))
	}

	values := validation.Pass()

	switch {
	case len(raw.Values) == 0:
		values = validation.Fail(ctx.errorf(diagnostic.CodeEmptyList, at(raw.Loc.Values.Span, ann), "Values",
			"constant %q has no value", raw.Name))
	default:
		for i, v := range raw.Values {
			if utils.IsFinite(v) {
				continue
			}

			span := raw.Loc.Values.Span
			if i < len(raw.Loc.Values.Elements) {
				span = raw.Loc.Values.Elements[i]
			}

			values = validation.Fail(ctx.errorf(diagnostic.CodeInvalidValue, at(span, ann), "Values",
				"constant %q has a non-finite value", raw.Name))

			break
		}
	}

	return validation.Into(validation.All(name, multiples, unit, values), quantity.Constant{
		Name:             raw.Name,
		UnitInstanceName: raw.UnitInstanceName,
		Values:           raw.Values,
		Multiples:        raw.Multiples,
		Loc:              raw.Loc,
	})
}
