package resolve

import (
	"sort"

	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
	"measures-generator/internal/validation"
)

// Vector resolves a processed individual vector. Unit and dimension of a
// specialized vector come from its original.
func (r *Resolver) Vector(v quantity.Vector, scope *Scope) validation.Outcome[quantity.ResolvedVector] {
	t := r.on(v.ID, quantity.CategoryVector)
	ann := v.Loc.Annotation.Span

	if c := t.guard(v.Span); c.Failed() {
		return validation.Failure[quantity.ResolvedVector](c.Diagnostics...)
	}

	out := quantity.ResolvedVector{ID: v.ID}

	var (
		parent *quantity.ResolvedVector
		unit   quantity.ResolvedUnit
	)

	if v.Specialized {
		p, c := specialization(t, v.Original, at(v.Loc.Original, ann),
			parentLinks(r.pops.Vectors, (*quantity.Vector).Parent), scope.Vectors)
		if c.Failed() {
			return validation.Failure[quantity.ResolvedVector](c.Diagnostics...)
		}

		parent = &p
		original := v.Original
		out.Original = &original
		out.Unit = p.Unit
		out.Dimension = p.Dimension
		unit = scope.Units[p.Unit]
	} else {
		var c validation.Check
		if unit, c = t.unitOf(v.Unit, at(v.Loc.Unit, ann), scope); c.Failed() {
			return validation.Failure[quantity.ResolvedVector](c.Diagnostics...)
		}

		out.Unit = v.Unit
		out.Dimension = v.Dimension
	}

	var (
		diags diagnostic.Diagnostics
		from  *inherited
		d     diagnostic.Diagnostics
		inh   = v.Inherit
		base  quantity.ResolvedVector
	)

	if parent != nil {
		from = &inherited{id: parent.ID, features: parent.ResolvedFeatures}
		base = *parent
	} else {
		inh = quantity.Inheritance{}
	}

	out.ResolvedFeatures, d = t.features(v.Features, v.Loc.Features, from, &unit, out.Dimension, ann)
	diags.Merge(d)

	scalar := v.Scalar
	if parent != nil && v.Loc.Scalar.IsZero() {
		scalar = parent.Scalar
	}

	var sc validation.Check
	out.Scalar, sc = t.optional("Scalar", scalar, at(v.Loc.Scalar, ann), quantity.CategoryScalar)
	diags.Merge(sc.Diagnostics)

	out.Units, d = t.selectNames(selection{concept: "Units", own: v.Units, parent: base.Units, inherit: inh.Units}, &unit)
	diags.Merge(d)
	diags.Merge(t.selectedDefault(&out.ResolvedFeatures, out.Units, v.Loc.Features, ann))

	out.Constants, d = t.constants(v.Constants, base.Constants, inh.Constants, &unit, out.Dimension)
	diags.Merge(d)

	out.Conversions, d = t.conversions(v.Conversions, base.Conversions, inh.Conversions)
	diags.Merge(d)

	return validation.Success(out, diags...)
}

// VectorGroup resolves a processed vector group. Its members are taken from
// scope.Members; a specialized group without members of its own shares
// the members of its original.
func (r *Resolver) VectorGroup(g quantity.VectorGroup, scope *Scope) validation.Outcome[quantity.ResolvedVectorGroup] {
	t := r.on(g.ID, quantity.CategoryVectorGroup)
	ann := g.Loc.Annotation.Span

	if c := t.guard(g.Span); c.Failed() {
		return validation.Failure[quantity.ResolvedVectorGroup](c.Diagnostics...)
	}

	out := quantity.ResolvedVectorGroup{ID: g.ID}

	var (
		parent *quantity.ResolvedVectorGroup
		unit   quantity.ResolvedUnit
	)

	if g.Specialized {
		p, c := specialization(t, g.Original, at(g.Loc.Original, ann),
			parentLinks(r.pops.VectorGroups, (*quantity.VectorGroup).Parent), scope.Groups)
		if c.Failed() {
			return validation.Failure[quantity.ResolvedVectorGroup](c.Diagnostics...)
		}

		parent = &p
		original := g.Original
		out.Original = &original
		out.Unit = p.Unit
		unit = scope.Units[p.Unit]
	} else {
		var c validation.Check
		if unit, c = t.unitOf(g.Unit, at(g.Loc.Unit, ann), scope); c.Failed() {
			return validation.Failure[quantity.ResolvedVectorGroup](c.Diagnostics...)
		}

		out.Unit = g.Unit
	}

	var (
		diags diagnostic.Diagnostics
		from  *inherited
		d     diagnostic.Diagnostics
		inh   = g.Inherit
		base  quantity.ResolvedVectorGroup
	)

	if parent != nil {
		from = &inherited{id: parent.ID, features: parent.ResolvedFeatures}
		base = *parent
	} else {
		inh = quantity.Inheritance{}
	}

	out.ResolvedFeatures, d = t.features(g.Features, g.Loc.Features, from, &unit, 0, ann)
	diags.Merge(d)

	scalar := g.Scalar
	if parent != nil && g.Loc.Scalar.IsZero() {
		scalar = parent.Scalar
	}

	var sc validation.Check
	out.Scalar, sc = t.optional("Scalar", scalar, at(g.Loc.Scalar, ann), quantity.CategoryScalar)
	diags.Merge(sc.Diagnostics)

	out.Units, d = t.selectNames(selection{concept: "Units", own: g.Units, parent: base.Units, inherit: inh.Units}, &unit)
	diags.Merge(d)
	diags.Merge(t.selectedDefault(&out.ResolvedFeatures, out.Units, g.Loc.Features, ann))

	out.Conversions, d = t.conversions(g.Conversions, base.Conversions, inh.Conversions)
	diags.Merge(d)

	out.Members = membersByDimension(scope.Members[g.ID])
	if len(out.Members) == 0 && parent != nil {
		out.Members = parent.Members
	}

	return validation.Success(out, diags...)
}

func membersByDimension(members []quantity.ResolvedVectorGroupMember) []quantity.ResolvedVectorGroupMember {
	out := append([]quantity.ResolvedVectorGroupMember(nil), members...)
	sort.Slice(out, func(i, j int) bool { return out[i].Dimension < out[j].Dimension })

	return out
}

// Member resolves a vector group member. Dimensions are unique per group;
// the first member in population order keeps a contested dimension.
func (r *Resolver) Member(m quantity.VectorGroupMember) validation.Outcome[quantity.ResolvedVectorGroupMember] {
	t := r.on(m.ID, quantity.CategoryVectorGroupMember)
	ann := m.Loc.Annotation.Span

	check := validation.Sequence(
		func() validation.Check { return t.guard(m.Span) },
		func() validation.Check {
			return t.reference("VectorGroup", m.Group, at(m.Loc.Group, ann), quantity.CategoryVectorGroup)
		},
		func() validation.Check { return t.dimensionTaken(m, at(m.Loc.Dimension, ann)) },
	)

	return validation.Into(check, quantity.ResolvedVectorGroupMember{
		ID:        m.ID,
		Group:     m.Group,
		Dimension: m.Dimension,
	})
}

// dimensionTaken fails when an earlier member of the same group, one that
// is not itself in a category conflict, has the dimension of m.
func (t typeContext) dimensionTaken(m quantity.VectorGroupMember, span source.Span) validation.Check {
	for _, other := range t.pops.MembersOf(m.Group) {
		if other.ID == m.ID {
			break
		}

		if other.Dimension == m.Dimension && len(t.pops.CategoriesOf(other.ID)) == 1 {
			return validation.Fail(t.errorf(diagnostic.CodeDuplicateMemberDim, span, "Dimension",
				"%s already has a member of dimension %d: %s", m.Group.Short(), m.Dimension, other.ID.Short()))
		}
	}

	return validation.Pass()
}
