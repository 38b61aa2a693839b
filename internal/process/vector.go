package process

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
	"measures-generator/internal/validation"
)

// vectorBase holds the parts shared by individual vectors and groups.
type vectorBase struct {
	unit     analyze.TypeID
	original analyze.TypeID
	features quantity.Features
	units    quantity.Selection
	convs    []quantity.Conversion
}

// processVectorBase validates the parts shared by vectors and vector
// groups. The returned check is fatal only when the required reference is
// missing.
func processVectorBase(ctx Context, raw quantity.RawVector, lists []quantity.RawUnitList, convertible []quantity.RawConvertible) (vectorBase, validation.Check) {
	ann := raw.Loc.Annotation.Span

	var (
		b         vectorBase
		reference validation.Check
	)

	if raw.Specialized {
		reference = validation.Sequence(
			func() validation.Check {
				var c validation.Check
				b.original, c = required(ctx, "Original", raw.Original, raw.Loc.Original, ann)

				return c
			},
			func() validation.Check { return notSelf(ctx, b.original, raw.Loc.Original) },
		)
	} else {
		b.unit, reference = required(ctx, "Unit", raw.Unit, raw.Loc.Unit, ann)
	}

	if reference.Failed() {
		return b, reference
	}

	features, featureCheck := features(ctx, raw.Features, raw.Loc.Features)
	b.features = features

	var diags diagnostic.Diagnostics

	units, bases, listDiags := Selections(ctx, lists)
	b.units = units
	diags.Merge(listDiags)

	if !bases.IsEmpty() {
		diags.Add(ctx.warnf(diagnostic.CodeInvalidValue, basesSpan(bases), "",
			"unit bases only apply to scalars and are ignored"))
	}

	b.convs, listDiags = Conversions(ctx, convertible)
	diags.Merge(listDiags)

	return b, validation.All(
		reference,
		featureCheck,
		nonNull(ctx, "Scalar", raw.Scalar, raw.Loc.Scalar).Soft(),
		validation.Warn(diags...),
	)
}

func basesSpan(s quantity.Selection) source.Span {
	if s.Include != nil {
		return s.Include.Span
	}

	return s.Exclude.Span
}

// Vector processes an individual vector declaration. A base vector also
// needs a dimension in range.
func Vector(ctx Context, decl quantity.VectorDeclaration) validation.Outcome[quantity.Vector] {
	raw := decl.Vector

	b, check := processVectorBase(ctx, raw, decl.Lists, decl.Convertible)
	if check.Failed() {
		return validation.Failure[quantity.Vector](check.Diagnostics...)
	}

	v := quantity.Vector{
		ID:          decl.ID,
		Span:        decl.Span,
		Specialized: raw.Specialized,
		Unit:        b.unit,
		Original:    b.original,
		Scalar:      raw.Scalar,
		Features:    b.features,
		Inherit:     raw.Inherit,
		Units:       b.units,
		Conversions: b.convs,
		Loc:         raw.Loc,
	}

	if !raw.Specialized {
		d, dimCheck := dimension(ctx, "Dimension", raw.Dimension, raw.Loc.Dimension, raw.Loc.Annotation.Span)
		if dimCheck.Failed() {
			return validation.Failure[quantity.Vector](append(check.Diagnostics, dimCheck.Diagnostics...)...)
		}

		v.Dimension = d
	}

	constants, constantDiags := Constants(ctx, decl.Constants)
	v.Constants = constants

	return validation.Into(check, v).With(constantDiags...)
}

// VectorGroup processes a vector group declaration.
func VectorGroup(ctx Context, decl quantity.VectorGroupDeclaration) validation.Outcome[quantity.VectorGroup] {
	raw := decl.Group

	b, check := processVectorBase(ctx, raw, decl.Lists, decl.Convertible)

	return validation.Into(check, quantity.VectorGroup{
		ID:          decl.ID,
		Span:        decl.Span,
		Specialized: raw.Specialized,
		Unit:        b.unit,
		Original:    b.original,
		Scalar:      raw.Scalar,
		Features:    b.features,
		Inherit:     raw.Inherit,
		Units:       b.units,
		Conversions: b.convs,
		Loc:         raw.Loc,
	})
}

// Member processes a vector group member declaration.
func Member(ctx Context, decl quantity.MemberDeclaration) validation.Outcome[quantity.VectorGroupMember] {
	raw := decl.Member
	ann := raw.Loc.Annotation.Span

	group, groupCheck := required(ctx, "VectorGroup", raw.Group, raw.Loc.Group, ann)
	dim, dimCheck := dimension(ctx, "Dimension", raw.Dimension, raw.Loc.Dimension, ann)

	return validation.Into(validation.All(groupCheck, dimCheck), quantity.VectorGroupMember{
		ID:        decl.ID,
		Span:      decl.Span,
		Group:     group,
		Dimension: dim,
		Loc:       raw.Loc,
	})
}
