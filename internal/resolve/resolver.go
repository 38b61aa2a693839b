package resolve

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/common"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/population"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
	"measures-generator/internal/suggest"
	"measures-generator/internal/validation"
)

// Resolver links processed definitions against the published populations.
type Resolver struct {
	pops   *population.Set
	policy Policy
}

// New creates a resolver over pops.
func New(pops *population.Set, policy Policy) *Resolver {
	return &Resolver{pops: pops, policy: policy}
}

// Populations returns the populations the resolver reads.
func (r *Resolver) Populations() *population.Set {
	return r.pops
}

// typeContext carries the type being resolved.
type typeContext struct {
	*Resolver
	id       analyze.TypeID
	category quantity.Category
}

func (r *Resolver) on(id analyze.TypeID, category quantity.Category) typeContext {
	return typeContext{Resolver: r, id: id, category: category}
}

func (t typeContext) errorf(code string, span source.Span, field, format string, args ...any) diagnostic.Diagnostic {
	return diagnostic.Errorf(code, span, format, args...).ForType(t.id.Short()).ForField(field)
}

func (t typeContext) warnf(code string, span source.Span, field, format string, args ...any) diagnostic.Diagnostic {
	return diagnostic.Warningf(code, span, format, args...).ForType(t.id.Short()).ForField(field)
}

// guard fails when the type is declared in more than one category.
func (t typeContext) guard(span source.Span) validation.Check {
	cats := t.pops.CategoriesOf(t.id)
	for _, c := range cats {
		if c != t.category {
			return validation.Fail(t.errorf(diagnostic.CodeCategoryConflict, span, "",
				"%s is declared as both a %s and a %s", t.id.Short(), t.category, c))
		}
	}

	return validation.Pass()
}

// reference checks that ref is declared in category want. The check is
// fatal; callers soften it when the reference is optional.
func (t typeContext) reference(field string, ref analyze.TypeID, span source.Span, want quantity.Category) validation.Check {
	if t.pops.Contains(want, ref) {
		return validation.Pass()
	}

	if cats := t.pops.CategoriesOf(ref); len(cats) > 0 {
		return validation.Fail(t.errorf(diagnostic.CodeWrongCategory, span, field,
			"%s refers to %s, which is a %s, not a %s", field, ref.Short(), cats[0], want))
	}

	d := t.errorf(diagnostic.CodeUnresolvedReference, span, field,
		"%s refers to %s, which is not declared as a %s", field, ref.Short(), want)

	return validation.Fail(d.WithSuggestions(suggest.Closest(ref.Short(), t.shortNames(want))...))
}

// optional checks an optional reference. It returns nil when ref is nil or
// fails to resolve.
func (t typeContext) optional(field string, ref *analyze.TypeID, span source.Span, want quantity.Category) (*analyze.TypeID, validation.Check) {
	if ref == nil {
		return nil, validation.Pass()
	}

	c := t.reference(field, *ref, span, want)
	if c.Failed() {
		return nil, c.Soft()
	}

	return ref, c
}

func (t typeContext) shortNames(c quantity.Category) []string {
	var ids []analyze.TypeID

	switch c {
	case quantity.CategoryUnit:
		ids = t.pops.Units.IDs()
	case quantity.CategoryScalar:
		ids = t.pops.Scalars.IDs()
	case quantity.CategoryVector:
		ids = t.pops.Vectors.IDs()
	case quantity.CategoryVectorGroup:
		ids = t.pops.VectorGroups.IDs()
	case quantity.CategoryVectorGroupMember:
		ids = t.pops.Members.IDs()
	}

	return common.Map(ids, analyze.TypeID.Short)
}

// instance checks that name is an instance of unit.
func (t typeContext) instance(field, name string, unit *quantity.ResolvedUnit, span source.Span) validation.Check {
	if _, ok := unit.Instance(name); ok {
		return validation.Pass()
	}

	d := t.errorf(diagnostic.CodeUnknownUnitInstance, span, field,
		"%s has no unit instance %q", unit.ID.Short(), name)

	return validation.Fail(d.WithSuggestions(suggest.Closest(name, unit.InstanceNames())...))
}

// specialization walks the original chain of a specialized type and
// returns its resolved parent. The walk uses processed parent links, so a
// cycle is found even when no link of it was resolved.
func specialization[R any](
	t typeContext,
	original analyze.TypeID,
	span source.Span,
	parentOf ParentFunc[analyze.TypeID],
	resolved map[analyze.TypeID]R,
) (R, validation.Check) {
	var zero R

	if _, cycle := Chain(t.id, parentOf); cycle {
		return zero, validation.Fail(t.errorf(diagnostic.CodeSpecializationCycle, span, "Original",
			"specialization of %s through %s forms a cycle", t.id.Short(), original.Short()))
	}

	if c := t.reference("Original", original, span, t.category); c.Failed() {
		return zero, c
	}

	parent, ok := resolved[original]
	if !ok {
		return zero, validation.Fail(t.errorf(diagnostic.CodeOriginalUnresolved, span, "Original",
			"original %s could not be resolved", original.Short()))
	}

	return parent, validation.Pass()
}

// unitOf returns the resolved unit of a base type.
func (t typeContext) unitOf(ref analyze.TypeID, span source.Span, scope *Scope) (quantity.ResolvedUnit, validation.Check) {
	if c := t.reference("Unit", ref, span, quantity.CategoryUnit); c.Failed() {
		return quantity.ResolvedUnit{}, c
	}

	unit, ok := scope.Units[ref]
	if !ok {
		return unit, validation.Fail(t.errorf(diagnostic.CodeUnresolvedReference, span, "Unit",
			"unit %s could not be resolved", ref.Short()))
	}

	return unit, validation.Pass()
}

// at returns span, or fallback when span is absent.
func at(span, fallback source.Span) source.Span {
	if span.IsZero() {
		return fallback
	}

	return span
}

// bias fails when a type wants the unit bias but the unit has none.
func (t typeContext) bias(use bool, unit *quantity.ResolvedUnit, span source.Span) validation.Check {
	if use && !unit.BiasTerm {
		return validation.Fail(t.errorf(diagnostic.CodeUnitLacksBias, span, "UseUnitBias",
			"%s uses the unit bias but %s declares no bias term", t.id.Short(), unit.ID.Short()))
	}

	return validation.Pass()
}

// parentLinks adapts a population of specializable definitions to a
// ParentFunc.
func parentLinks[D any](pop *population.Population[D], parent func(*D) (analyze.TypeID, bool)) ParentFunc[analyze.TypeID] {
	return func(id analyze.TypeID) (analyze.TypeID, bool) {
		d, ok := pop.Lookup(id)
		if !ok {
			return analyze.TypeID{}, false
		}

		return parent(&d)
	}
}
