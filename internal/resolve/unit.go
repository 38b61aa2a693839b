package resolve

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/common"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
	"measures-generator/internal/suggest"
	"measures-generator/internal/validation"
)

// Unit resolves a processed unit. Its quantity must be a scalar; a
// derivation or instance that does not resolve is dropped on its own.
func (r *Resolver) Unit(u quantity.Unit) validation.Outcome[quantity.ResolvedUnit] {
	t := r.on(u.ID, quantity.CategoryUnit)
	ann := u.Loc.Annotation.Span

	check := validation.Sequence(
		func() validation.Check { return t.guard(u.Span) },
		func() validation.Check {
			return t.reference("Quantity", u.Quantity, at(u.Loc.Quantity, ann), quantity.CategoryScalar)
		},
	)
	if check.Failed() {
		return validation.Failure[quantity.ResolvedUnit](check.Diagnostics...)
	}

	out := quantity.ResolvedUnit{
		ID:       u.ID,
		Quantity: u.Quantity,
		BiasTerm: u.BiasTerm,
	}

	var diags diagnostic.Diagnostics

	out.Derivations, diags = validation.Filter(t, u.Derivations, resolveDerivation)

	instances, instanceDiags := t.instances(&u, &out)
	out.Instances = instances
	diags.Merge(instanceDiags)

	return validation.Success(out, diags...)
}

func resolveDerivation(t typeContext, d quantity.Derivation) validation.Outcome[quantity.ResolvedDerivation] {
	ann := d.Loc.Annotation.Span

	checks := make([]validation.Check, 0, len(d.Signature))
	for i, ref := range d.Signature {
		checks = append(checks, t.reference("Signature", ref, elementSpan(d.Loc.Signature, i, ann), quantity.CategoryUnit))
	}

	return validation.Into(validation.All(checks...), quantity.ResolvedDerivation{
		ID:         d.ID,
		Expression: d.Expression,
		Signature:  d.Signature,
	})
}

// instances resolves the instances of u. Own checks run first; then every
// instance defined through an original is kept only when its whole chain
// of originals is.
func (t typeContext) instances(u *quantity.Unit, out *quantity.ResolvedUnit) ([]quantity.ResolvedUnitInstance, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	byName := make(map[string]quantity.UnitInstance, len(u.Instances))
	valid := make(map[string]bool, len(u.Instances))
	resolved := make(map[string]quantity.ResolvedUnitInstance, len(u.Instances))

	for _, inst := range u.Instances {
		byName[inst.Name] = inst

		outcome := t.ownInstance(u, out, inst)
		diags.Merge(outcome.Diagnostics)

		ri, ok := outcome.Get()
		if !ok {
			continue
		}

		valid[inst.Name] = true
		resolved[inst.Name] = ri
	}

	originals := func(name string) (string, bool) {
		inst, ok := byName[name]
		if !ok || !inst.Kind.HasOriginal() {
			return "", false
		}

		return inst.Original, true
	}

	names := make([]string, 0, len(u.Instances))
	for _, inst := range u.Instances {
		names = append(names, inst.Name)
	}

	var list []quantity.ResolvedUnitInstance

	for _, inst := range u.Instances {
		if !valid[inst.Name] {
			continue
		}

		if inst.Kind.HasOriginal() {
			if c := t.original(inst, names, byName, valid, originals); c.Failed() {
				diags.Merge(c.Diagnostics)
				continue
			}
		}

		list = append(list, resolved[inst.Name])
	}

	return list, diags
}

// original checks the chain of originals of inst.
func (t typeContext) original(
	inst quantity.UnitInstance,
	names []string,
	byName map[string]quantity.UnitInstance,
	valid map[string]bool,
	originals ParentFunc[string],
) validation.Check {
	span := at(inst.Loc.Original, inst.Loc.Annotation.Span)

	if _, ok := byName[inst.Original]; !ok {
		d := t.errorf(diagnostic.CodeUnknownUnitInstance, span, "Original",
			"original unit instance %q of %q is not declared", inst.Original, inst.Name)

		return validation.Fail(d.WithSuggestions(suggest.Closest(inst.Original, names)...))
	}

	chain, cycle := Chain(inst.Name, originals)
	if cycle {
		return validation.Fail(t.errorf(diagnostic.CodeSpecializationCycle, span, "Original",
			"unit instance %q is defined through a cycle of originals", inst.Name))
	}

	for _, name := range chain[1:] {
		if !valid[name] {
			return validation.Fail(t.errorf(diagnostic.CodeOriginalUnresolved, span, "Original",
				"original unit instance %q of %q could not be resolved", name, inst.Name))
		}
	}

	return validation.Pass()
}

// ownInstance runs the checks that only concern inst itself.
func (t typeContext) ownInstance(u *quantity.Unit, out *quantity.ResolvedUnit, inst quantity.UnitInstance) validation.Outcome[quantity.ResolvedUnitInstance] {
	ann := inst.Loc.Annotation.Span

	ri := quantity.ResolvedUnitInstance{
		Kind:     inst.Kind,
		Name:     inst.Name,
		Plural:   inst.Plural,
		Original: inst.Original,
		Prefix:   inst.Prefix,
		Scale:    inst.Scale,
		Bias:     inst.Bias,
	}

	switch inst.Kind {
	case quantity.InstanceBiased:
		if !u.BiasTerm {
			return validation.Failure[quantity.ResolvedUnitInstance](t.errorf(diagnostic.CodeUnitLacksBias, at(inst.Loc.Bias, ann), "Bias",
				"biased unit instance %q requires a unit with a bias term", inst.Name))
		}

	case quantity.InstanceDerived:
		d, c := t.derivationOf(inst.DerivationID, out, at(inst.Loc.DerivationID, ann))
		if c.Failed() {
			return validation.Failure[quantity.ResolvedUnitInstance](c.Diagnostics...)
		}

		if len(inst.Units) != len(d.Signature) {
			return validation.Failure[quantity.ResolvedUnitInstance](t.errorf(diagnostic.CodeSignatureMismatch, at(inst.Loc.Units.Span, ann), "Units",
				"unit instance %q lists %d unit instances but derivation %q takes %d", inst.Name, len(inst.Units), d.ID, len(d.Signature)))
		}

		ri.Derivation = d.ID

		checks := make([]validation.Check, 0, len(inst.Units))
		for i, name := range inst.Units {
			ri.Units = append(ri.Units, quantity.UnitInstanceRef{Unit: d.Signature[i], Instance: name})
			checks = append(checks, t.signatureInstance(u, d.Signature[i], name, elementSpan(inst.Loc.Units, i, ann)))
		}

		return validation.Into(validation.All(checks...), ri)
	}

	return validation.Success(ri)
}

// signatureInstance checks that name is an instance of unit.
func (t typeContext) signatureInstance(self *quantity.Unit, unit analyze.TypeID, name string, span source.Span) validation.Check {
	u := self
	if unit != self.ID {
		other, ok := t.pops.Units.Lookup(unit)
		if !ok {
			return validation.Fail(t.errorf(diagnostic.CodeUnresolvedReference, span, "Units",
				"unit %s is not declared", unit.Short()))
		}

		u = &other
	}

	if _, ok := u.Instance(name); ok {
		return validation.Pass()
	}

	names := make([]string, 0, len(u.Instances))
	for _, inst := range u.Instances {
		names = append(names, inst.Name)
	}

	return validation.Fail(t.errorf(diagnostic.CodeUnknownUnitInstance, span, "Units",
		"%s has no unit instance %q", unit.Short(), name).WithSuggestions(suggest.Closest(name, names)...))
}

// derivationOf finds a derivation of unit. An empty id selects the only
// derivation when there is exactly one.
func (t typeContext) derivationOf(id string, unit *quantity.ResolvedUnit, span source.Span) (quantity.ResolvedDerivation, validation.Check) {
	if id == "" {
		if d, ok := common.Single(unit.Derivations); ok {
			return d, validation.Pass()
		}

		return quantity.ResolvedDerivation{}, validation.Fail(t.errorf(diagnostic.CodeUnknownDerivation, span, "DerivationID",
			"no derivation named and %s declares %d derivations", unit.ID.Short(), len(unit.Derivations)))
	}

	if d, ok := unit.Derivation(id); ok {
		return d, validation.Pass()
	}

	ids := common.Map(unit.Derivations, func(d quantity.ResolvedDerivation) string { return d.ID })

	return quantity.ResolvedDerivation{}, validation.Fail(t.errorf(diagnostic.CodeUnknownDerivation, span, "DerivationID",
		"%s declares no derivation %q", unit.ID.Short(), id).WithSuggestions(suggest.Closest(id, ids)...))
}

// elementSpan returns the span of element i of arr, falling back to the
// whole array and then to fallback.
func elementSpan(arr source.ArraySpan, i int, fallback source.Span) source.Span {
	if i < len(arr.Elements) && !arr.Elements[i].IsZero() {
		return arr.Elements[i]
	}

	return at(arr.Span, fallback)
}
