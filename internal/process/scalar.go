package process

import (
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/validation"
)

// Scalar processes a scalar declaration. A missing Unit (or Original for a
// specialized scalar) aborts it; every other check is independent.
func Scalar(ctx Context, decl quantity.ScalarDeclaration) validation.Outcome[quantity.Scalar] {
	raw := decl.Scalar
	ann := raw.Loc.Annotation.Span

	s := quantity.Scalar{
		ID:          decl.ID,
		Span:        decl.Span,
		Specialized: raw.Specialized,
		UseUnitBias: raw.UseUnitBias,
		Vector:      raw.Vector,
		Powers:      raw.Powers,
		Inherit:     raw.Inherit,
		Loc:         raw.Loc,
	}

	var reference validation.Check
	if raw.Specialized {
		reference = validation.Sequence(
			func() validation.Check {
				var c validation.Check
				s.Original, c = required(ctx, "Original", raw.Original, raw.Loc.Original, ann)

				return c
			},
			func() validation.Check { return notSelf(ctx, s.Original, raw.Loc.Original) },
		)
	} else {
		s.Unit, reference = required(ctx, "Unit", raw.Unit, raw.Loc.Unit, ann)
	}

	if reference.Failed() {
		return validation.Failure[quantity.Scalar](reference.Diagnostics...)
	}

	features, featureCheck := features(ctx, raw.Features, raw.Loc.Features)
	s.Features = features

	vector := nonNull(ctx, "Vector", raw.Vector, raw.Loc.Vector).Soft()

	var diags diagnostic.Diagnostics

	units, bases, listDiags := Selections(ctx, decl.Lists)
	s.Units, s.Bases = units, bases
	diags.Merge(listDiags)

	constants, constantDiags := Constants(ctx, decl.Constants)
	s.Constants = constants
	diags.Merge(constantDiags)

	conversions, conversionDiags := Conversions(ctx, decl.Convertible)
	s.Conversions = conversions
	diags.Merge(conversionDiags)

	derived, derivedDiags := validation.Filter(ctx, decl.Derived, derivedQuantity)
	s.Derivations = derived
	diags.Merge(derivedDiags)

	check := validation.All(
		reference,
		featureCheck,
		vector,
		powers(ctx, raw.Powers, raw.Loc.Powers),
		validation.Warn(diags...),
	)

	return validation.Into(check, s)
}

func derivedQuantity(ctx Context, raw quantity.RawDerivedQuantity) validation.Outcome[quantity.DerivedQuantity] {
	signature, check := signatureOf(ctx, raw.Signature, raw.Loc.Signature, raw.Loc.Annotation.Span)

	return validation.Into(check, quantity.DerivedQuantity{
		DerivationID: raw.DerivationID,
		Signature:    signature,
		Loc:          raw.Loc,
	})
}
