package pipeline

import (
	"context"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/parse"
	"measures-generator/internal/process"
	"measures-generator/internal/quantity"
	"measures-generator/internal/resolve"
	"measures-generator/internal/validation"
)

// processed holds the products of one declaration.
type processed struct {
	unit   *quantity.Unit
	scalar *quantity.Scalar
	vector *quantity.Vector
	group  *quantity.VectorGroup
	member *quantity.VectorGroupMember
	diags  diagnostic.Diagnostics
}

func keep[T any](o validation.Outcome[T], diags *diagnostic.Diagnostics) *T {
	diags.Merge(o.Diagnostics)

	if v, ok := o.Get(); ok {
		return &v
	}

	return nil
}

func processDeclaration(decl *analyze.Declaration) processed {
	res := parse.Declaration(decl)
	out := processed{diags: res.Diagnostics}
	ctx := process.NewContext(decl.ID)

	if res.Unit != nil {
		out.unit = keep(process.Unit(ctx, *res.Unit), &out.diags)
	}

	if res.Scalar != nil {
		out.scalar = keep(process.Scalar(ctx, *res.Scalar), &out.diags)
	}

	if res.Vector != nil {
		out.vector = keep(process.Vector(ctx, *res.Vector), &out.diags)
	}

	if res.VectorGroup != nil {
		out.group = keep(process.VectorGroup(ctx, *res.VectorGroup), &out.diags)
	}

	if res.Member != nil {
		out.member = keep(process.Member(ctx, *res.Member), &out.diags)
	}

	return out
}

// process binds and processes every declaration, then collects the
// products in declaration order.
func (r *run) process(ctx context.Context, decls []*analyze.Declaration) error {
	results := make([]processed, len(decls))

	err := parallel(ctx, r.jobs, len(decls), func(i int) {
		results[i] = processDeclaration(decls[i])
	})
	if err != nil {
		return err
	}

	for _, p := range results {
		r.diags.Merge(p.diags)

		if p.unit != nil {
			r.units = append(r.units, *p.unit)
		}

		if p.scalar != nil {
			r.scalars = append(r.scalars, *p.scalar)
		}

		if p.vector != nil {
			r.vectors = append(r.vectors, *p.vector)
		}

		if p.group != nil {
			r.groups = append(r.groups, *p.group)
		}

		if p.member != nil {
			r.rawMembers = append(r.rawMembers, *p.member)
		}
	}

	r.log.Debug("declarations processed", "declarations", len(decls), "diagnostics", len(r.diags))

	return nil
}

// resolve runs the resolution stages: units and members first, then
// scalars, vector groups and vectors, each in specialization order.
func (r *run) resolve(ctx context.Context, res *resolve.Resolver) error {
	r.scope = resolve.NewScope()
	r.members = make(map[analyze.TypeID]quantity.ResolvedVectorGroupMember)

	if err := r.resolveLeaves(ctx, res); err != nil {
		return err
	}

	scalars := stage[quantity.Scalar, quantity.ResolvedScalar]{
		name:    "scalars",
		items:   r.pops.Scalars.All(),
		id:      func(s *quantity.Scalar) analyze.TypeID { return s.ID },
		parent:  (*quantity.Scalar).Parent,
		resolve: func(s quantity.Scalar) validation.Outcome[quantity.ResolvedScalar] { return res.Scalar(s, r.scope) },
		publish: func(s quantity.ResolvedScalar) { r.scope.Scalars[s.ID] = s },
	}
	if err := runStage(ctx, r, scalars); err != nil {
		return err
	}

	groups := stage[quantity.VectorGroup, quantity.ResolvedVectorGroup]{
		name:    "vector groups",
		items:   r.pops.VectorGroups.All(),
		id:      func(g *quantity.VectorGroup) analyze.TypeID { return g.ID },
		parent:  (*quantity.VectorGroup).Parent,
		resolve: func(g quantity.VectorGroup) validation.Outcome[quantity.ResolvedVectorGroup] { return res.VectorGroup(g, r.scope) },
		publish: func(g quantity.ResolvedVectorGroup) { r.scope.Groups[g.ID] = g },
	}
	if err := runStage(ctx, r, groups); err != nil {
		return err
	}

	vectors := stage[quantity.Vector, quantity.ResolvedVector]{
		name:    "vectors",
		items:   r.pops.Vectors.All(),
		id:      func(v *quantity.Vector) analyze.TypeID { return v.ID },
		parent:  (*quantity.Vector).Parent,
		resolve: func(v quantity.Vector) validation.Outcome[quantity.ResolvedVector] { return res.Vector(v, r.scope) },
		publish: func(v quantity.ResolvedVector) { r.scope.Vectors[v.ID] = v },
	}

	return runStage(ctx, r, vectors)
}

// resolveLeaves resolves units and group members, which depend on the
// populations only.
func (r *run) resolveLeaves(ctx context.Context, res *resolve.Resolver) error {
	units := r.pops.Units.All()
	members := r.pops.Members.All()

	unitOut := make([]validation.Outcome[quantity.ResolvedUnit], len(units))
	memberOut := make([]validation.Outcome[quantity.ResolvedVectorGroupMember], len(members))

	err := parallel(ctx, r.jobs, len(units)+len(members), func(i int) {
		if i < len(units) {
			unitOut[i] = res.Unit(units[i])
			return
		}

		memberOut[i-len(units)] = res.Member(members[i-len(units)])
	})
	if err != nil {
		return err
	}

	for _, o := range unitOut {
		if u := keep(o, &r.diags); u != nil {
			r.scope.Units[u.ID] = *u
		}
	}

	for _, o := range memberOut {
		if m := keep(o, &r.diags); m != nil {
			r.members[m.ID] = *m
			r.scope.Members[m.Group] = append(r.scope.Members[m.Group], *m)
		}
	}

	r.log.Debug("units and members resolved", "units", len(r.scope.Units), "members", len(r.members))

	return nil
}

// stage describes the resolution of one specializable category.
type stage[D, R any] struct {
	name    string
	items   []D
	id      func(*D) analyze.TypeID
	parent  func(*D) (analyze.TypeID, bool)
	resolve func(D) validation.Outcome[R]
	publish func(R)
}

// runStage resolves items level by level. A level only starts once every
// earlier level is published, so resolvers see their parents in the scope
// and never a map that is being written. Items on or behind a cycle run
// last and fail in their own walk.
func runStage[D, R any](ctx context.Context, r *run, st stage[D, R]) error {
	index := make(map[analyze.TypeID]int, len(st.items))
	for i := range st.items {
		index[st.id(&st.items[i])] = i
	}

	rounds, cyclic, err := levels(len(st.items), func(i int) []int {
		p, ok := st.parent(&st.items[i])
		if !ok {
			return nil
		}

		if j, ok := index[p]; ok {
			return []int{j}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if len(cyclic) > 0 {
		rounds = append(rounds, cyclic)
	}

	outcomes := make([]validation.Outcome[R], len(st.items))

	for _, round := range rounds {
		err := parallel(ctx, r.jobs, len(round), func(k int) {
			i := round[k]
			outcomes[i] = st.resolve(st.items[i])
		})
		if err != nil {
			return err
		}

		for _, i := range round {
			if v := keep(outcomes[i], &r.diags); v != nil {
				st.publish(*v)
			}
		}
	}

	r.log.Debug("resolved", "category", st.name, "items", len(st.items), "levels", len(rounds))

	return nil
}
