package resolve

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/validation"
)

// Scalar resolves a processed scalar. A specialized scalar needs its
// original in scope.Scalars; a base scalar needs its unit in scope.Units.
func (r *Resolver) Scalar(s quantity.Scalar, scope *Scope) validation.Outcome[quantity.ResolvedScalar] {
	t := r.on(s.ID, quantity.CategoryScalar)
	ann := s.Loc.Annotation.Span

	if c := t.guard(s.Span); c.Failed() {
		return validation.Failure[quantity.ResolvedScalar](c.Diagnostics...)
	}

	out := quantity.ResolvedScalar{ID: s.ID}

	var (
		parent *quantity.ResolvedScalar
		unit   quantity.ResolvedUnit
	)

	if s.Specialized {
		p, c := specialization(t, s.Original, at(s.Loc.Original, ann),
			parentLinks(r.pops.Scalars, (*quantity.Scalar).Parent), scope.Scalars)
		if c.Failed() {
			return validation.Failure[quantity.ResolvedScalar](c.Diagnostics...)
		}

		parent = &p
		original := s.Original
		out.Original = &original
		out.Unit = p.Unit
		out.UseUnitBias = p.UseUnitBias
		unit = scope.Units[p.Unit]
	} else {
		check := validation.Sequence(
			func() validation.Check {
				var c validation.Check
				unit, c = t.unitOf(s.Unit, at(s.Loc.Unit, ann), scope)

				return c
			},
			func() validation.Check { return t.bias(s.UseUnitBias, &unit, at(s.Loc.UseUnitBias, ann)) },
		)
		if check.Failed() {
			return validation.Failure[quantity.ResolvedScalar](check.Diagnostics...)
		}

		out.Unit = s.Unit
		out.UseUnitBias = s.UseUnitBias
	}

	var (
		diags  diagnostic.Diagnostics
		from   *inherited
		powers *quantity.Powers
		inh    = s.Inherit
	)

	if parent != nil {
		from = &inherited{id: parent.ID, features: parent.ResolvedFeatures}
		powers = &parent.Powers
	} else {
		inh = quantity.Inheritance{}
	}

	features, d := t.features(s.Features, s.Loc.Features, from, &unit, 0, ann)
	out.ResolvedFeatures = features
	diags.Merge(d)

	vector := s.Vector
	if parent != nil && s.Loc.Vector.IsZero() {
		vector = parent.Vector
	}

	var vc validation.Check
	out.Vector, vc = t.optional("Vector", vector, at(s.Loc.Vector, ann), quantity.CategoryVectorGroup)
	diags.Merge(vc.Diagnostics)

	out.Powers, d = t.powers(s.Powers, s.Loc.Powers, powers, ann)
	diags.Merge(d)

	var parentUnits, parentBases []string
	if parent != nil {
		parentUnits, parentBases = parent.Units, parent.Bases
	}

	out.Units, d = t.selectNames(selection{concept: "Units", own: s.Units, parent: parentUnits, inherit: inh.Units}, &unit)
	diags.Merge(d)
	diags.Merge(t.selectedDefault(&out.ResolvedFeatures, out.Units, s.Loc.Features, ann))

	out.Bases, d = t.selectNames(selection{concept: "Bases", own: s.Bases, parent: parentBases, inherit: inh.Bases}, &unit)
	diags.Merge(d)

	var (
		parentConstants   []quantity.ResolvedConstant
		parentConversions []analyze.TypeID
		parentDerivations []quantity.ResolvedDerivedQuantity
	)

	if parent != nil {
		parentConstants = parent.Constants
		parentConversions = parent.Conversions
		parentDerivations = parent.Derivations
	}

	out.Constants, d = t.constants(s.Constants, parentConstants, inh.Constants, &unit, 0)
	diags.Merge(d)

	out.Conversions, d = t.conversions(s.Conversions, parentConversions, inh.Conversions)
	diags.Merge(d)

	out.Derivations, d = t.derivedQuantities(s.Derivations, parentDerivations, inh.Derivations, &unit)
	diags.Merge(d)

	return validation.Success(out, diags...)
}

// derivedContext is what a derived quantity is checked against.
type derivedContext struct {
	typeContext
	unit *quantity.ResolvedUnit
}

func resolveDerivedQuantity(ctx derivedContext, dq quantity.DerivedQuantity) validation.Outcome[quantity.ResolvedDerivedQuantity] {
	ann := dq.Loc.Annotation.Span

	d, c := ctx.derivationOf(dq.DerivationID, ctx.unit, at(dq.Loc.DerivationID, ann))
	if c.Failed() {
		return validation.Failure[quantity.ResolvedDerivedQuantity](c.Diagnostics...)
	}

	if len(dq.Signature) != len(d.Signature) {
		return validation.Failure[quantity.ResolvedDerivedQuantity](ctx.errorf(diagnostic.CodeSignatureMismatch,
			at(dq.Loc.Signature.Span, ann), "Signature",
			"derivation %q takes %d quantities, %d given", d.ID, len(d.Signature), len(dq.Signature)))
	}

	checks := make([]validation.Check, 0, len(dq.Signature))

	for i, ref := range dq.Signature {
		span := elementSpan(dq.Loc.Signature, i, ann)

		checks = append(checks, validation.Sequence(
			func() validation.Check { return ctx.reference("Signature", ref, span, quantity.CategoryScalar) },
			func() validation.Check {
				unit, ok := ctx.scalarUnit(ref)
				if !ok || unit == d.Signature[i] {
					return validation.Pass()
				}

				return validation.Fail(ctx.errorf(diagnostic.CodeSignatureMismatch, span, "Signature",
					"%s is measured in %s but derivation %q expects %s", ref.Short(), unit.Short(), d.ID, d.Signature[i].Short()))
			},
		))
	}

	return validation.Into(validation.All(checks...), quantity.ResolvedDerivedQuantity{
		DerivationID: d.ID,
		Expression:   d.Expression,
		Signature:    dq.Signature,
	})
}

// derivedQuantities resolves own derivations and merges the inherited ones.
// An own derivation replaces an inherited one with the same ID.
func (t typeContext) derivedQuantities(
	own []quantity.DerivedQuantity,
	parent []quantity.ResolvedDerivedQuantity,
	inherit bool,
	unit *quantity.ResolvedUnit,
) ([]quantity.ResolvedDerivedQuantity, diagnostic.Diagnostics) {
	resolved, diags := validation.Filter(derivedContext{typeContext: t, unit: unit}, own, resolveDerivedQuantity)
	if !inherit {
		return resolved, diags
	}

	out := append([]quantity.ResolvedDerivedQuantity(nil), parent...)

	for _, dq := range resolved {
		replaced := false

		for i := range out {
			if out[i].DerivationID == dq.DerivationID {
				out[i] = dq
				replaced = true
			}
		}

		if !replaced {
			out = append(out, dq)
		}
	}

	return out, diags
}
