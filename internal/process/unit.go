package process

import (
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/suggest"
	"measures-generator/internal/validation"
	"measures-generator/utils"
)

// PluralSuffix is appended to an instance name when no plural is given.
const PluralSuffix = "s"

// Unit processes a unit declaration. Only a missing quantity aborts it;
// invalid instances and derivations are dropped individually.
func Unit(ctx Context, decl quantity.UnitDeclaration) validation.Outcome[quantity.Unit] {
	raw := decl.Unit

	q, check := required(ctx, "Quantity", raw.Quantity, raw.Loc.Quantity, raw.Loc.Annotation.Span)
	if check.Failed() {
		return validation.Failure[quantity.Unit](check.Diagnostics...)
	}

	instances, _, instanceDiags := validation.FilterActionable(ctx, validation.NewNames(), decl.Instances,
		unitInstance, reserveInstance)
	derivations, _, derivationDiags := validation.FilterActionable(ctx, validation.NewNames(), decl.Derivations,
		derivation, reserveDerivation)

	unit := quantity.Unit{
		ID:          decl.ID,
		Span:        decl.Span,
		Quantity:    q,
		BiasTerm:    raw.BiasTerm,
		Instances:   instances,
		Derivations: derivations,
		Loc:         raw.Loc,
	}

	return validation.Success(unit).With(instanceDiags...).With(derivationDiags...)
}

func reserveInstance(names validation.Names, event validation.Event, raw quantity.RawUnitInstance, _ quantity.UnitInstance) validation.Names {
	if event == validation.EventStart && raw.Name != "" {
		return names.With(raw.Name)
	}

	return names
}

func unitInstance(ctx Context, reserved validation.Names, raw quantity.RawUnitInstance) validation.Outcome[quantity.UnitInstance] {
	ann := raw.Loc.Annotation.Span
	inst := quantity.UnitInstance{
		Kind:         raw.Kind,
		Name:         raw.Name,
		Plural:       raw.Plural,
		Original:     raw.Original,
		Scale:        raw.Scale,
		Bias:         raw.Bias,
		DerivationID: raw.DerivationID,
		Units:        raw.Units,
		Loc:          raw.Loc,
	}

	if inst.Plural == "" {
		inst.Plural = inst.Name + PluralSuffix
	}

	name := validation.Sequence(
		func() validation.Check {
			if raw.Name == "" {
				return validation.Fail(ctx.errorf(diagnostic.CodeEmptyName, at(raw.Loc.Name, ann), "Name",
					"unit instance name must not be empty"))
			}

			return validation.Pass()
		},
		func() validation.Check {
			if reserved.Contains(raw.Name) {
				return validation.Fail(ctx.errorf(diagnostic.CodeDuplicateUnitInstance, at(raw.Loc.Name, ann), "Name",
					"unit instance %q is already defined", raw.Name))
			}

			return validation.Pass()
		},
	)

	original := validation.When(raw.Kind.HasOriginal() && raw.Original == "", func() validation.Check {
		return validation.Fail(ctx.errorf(diagnostic.CodeEmptyName, at(raw.Loc.Original, ann), "Original",
			"unit instance %q must name its original instance", raw.Name))
	})

	var specific validation.Check

	switch raw.Kind {
	case quantity.InstancePrefixed:
		p, ok := quantity.LookupPrefix(raw.Prefix)
		if ok {
			inst.Prefix = p
			break
		}

		specific = validation.Fail(ctx.errorf(diagnostic.CodeUnknownPrefix, at(raw.Loc.Prefix, ann), "Prefix",
			"unknown prefix %q", raw.Prefix).WithSuggestions(suggest.Closest(raw.Prefix, quantity.PrefixNames())...))

	case quantity.InstanceScaled:
		if raw.Scale == 0 || !utils.IsFinite(raw.Scale) {
			specific = validation.Fail(ctx.errorf(diagnostic.CodeInvalidValue, at(raw.Loc.Scale, ann), "Scale",
				"scale of %q must be a non-zero finite number", raw.Name))
		}

	case quantity.InstanceBiased:
		if !utils.IsFinite(raw.Bias) {
			specific = validation.Fail(ctx.errorf(diagnostic.CodeInvalidValue, at(raw.Loc.Bias, ann), "Bias",
				"bias of %q must be finite", raw.Name))
		}

	case quantity.InstanceDerived:
		specific = derivedUnits(ctx, raw)
	}

	return validation.Into(validation.All(name, original, specific), inst)
}

func derivedUnits(ctx Context, raw quantity.RawUnitInstance) validation.Check {
	ann := raw.Loc.Annotation.Span

	if len(raw.Units) == 0 {
		return validation.Fail(ctx.errorf(diagnostic.CodeEmptyList, at(raw.Loc.Units.Span, ann), "Units",
			"derived unit instance %q lists no unit instances", raw.Name))
	}

	for i, u := range raw.Units {
		if u == "" {
			return validation.Fail(ctx.errorf(diagnostic.CodeEmptyName, elementSpan(raw.Loc.Units, i, ann), "Units",
				"derived unit instance %q contains an empty name", raw.Name))
		}
	}

	return validation.Pass()
}

func reserveDerivation(ids validation.Names, event validation.Event, raw quantity.RawDerivation, _ quantity.Derivation) validation.Names {
	if event == validation.EventStart {
		return ids.With(raw.ID)
	}

	return ids
}

func derivation(ctx Context, reserved validation.Names, raw quantity.RawDerivation) validation.Outcome[quantity.Derivation] {
	ann := raw.Loc.Annotation.Span

	id := validation.Pass()
	if reserved.Contains(raw.ID) {
		id = validation.Fail(ctx.errorf(diagnostic.CodeDuplicateDerivation, at(raw.Loc.ID, ann), "DerivationID",
			"derivation %q is already defined", raw.ID))
	}

	expression := validation.Pass()
	if raw.Expression == "" {
		expression = validation.Fail(ctx.errorf(diagnostic.CodeInvalidValue, at(raw.Loc.Expression, ann), "Expression",
			"derivation %q has an empty expression", raw.ID))
	}

	signature, check := signatureOf(ctx, raw.Signature, raw.Loc.Signature, ann)

	return validation.Into(validation.All(id, expression, check), quantity.Derivation{
		ID:         raw.ID,
		Expression: raw.Expression,
		Signature:  signature,
		Loc:        raw.Loc,
	})
}
