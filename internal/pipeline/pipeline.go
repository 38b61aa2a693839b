package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/logger"
	"measures-generator/internal/population"
	"measures-generator/internal/quantity"
	"measures-generator/internal/resolve"
)

// Options configures a run.
type Options struct {
	// Jobs bounds the goroutines of a stage; zero means GOMAXPROCS.
	Jobs int
	// Policy is validated before anything runs; the zero value selects
	// resolve.DefaultPolicy.
	Policy resolve.Policy
	// Logger receives stage boundaries at debug level; nil uses the
	// default logger.
	Logger *slog.Logger
}

// Result holds the resolved descriptors in population order and every
// diagnostic of the run, sorted and deduplicated.
type Result struct {
	Units        []quantity.ResolvedUnit
	Scalars      []quantity.ResolvedScalar
	Vectors      []quantity.ResolvedVector
	VectorGroups []quantity.ResolvedVectorGroup
	Members      []quantity.ResolvedVectorGroupMember
	Diagnostics  diagnostic.Diagnostics
}

// HasErrors reports whether any diagnostic is an error.
func (r *Result) HasErrors() bool {
	return r.Diagnostics.HasErrors()
}

// Run processes and resolves decls. Mistakes in the annotations end up in
// Result.Diagnostics; an error is returned only for an invalid policy or
// when ctx is cancelled, in which case partial results are discarded.
func Run(ctx context.Context, decls []*analyze.Declaration, opts Options) (*Result, error) {
	policy := opts.Policy
	if policy == (resolve.Policy{}) {
		policy = resolve.DefaultPolicy()
	}

	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	log := opts.Logger
	if log == nil {
		log = logger.ForComponent("pipeline")
	}

	r := &run{jobs: jobs, log: log}

	if err := r.process(ctx, decls); err != nil {
		return nil, err
	}

	if err := r.populate(ctx); err != nil {
		return nil, err
	}

	if err := r.resolve(ctx, resolve.New(r.pops, policy)); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// run is the state of one Run. Only the goroutine calling Run touches its
// fields between stages.
type run struct {
	jobs  int
	log   *slog.Logger
	diags diagnostic.Diagnostics

	units      []quantity.Unit
	scalars    []quantity.Scalar
	vectors    []quantity.Vector
	groups     []quantity.VectorGroup
	rawMembers []quantity.VectorGroupMember

	pops    *population.Set
	scope   *resolve.Scope
	members map[analyze.TypeID]quantity.ResolvedVectorGroupMember
}

// parallel calls fn for every index below n with at most jobs goroutines.
// It stops scheduling once ctx is done and returns ctx.Err() then.
func parallel(ctx context.Context, jobs, n int, fn func(i int)) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, n)))

	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fn(i)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

func (r *run) populate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		pops  population.Set
		diags [5]diagnostic.Diagnostics
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		pops.Units, diags[0] = population.Build(quantity.CategoryUnit, r.units, population.UnitIdentity)
		return nil
	})
	g.Go(func() error {
		pops.Scalars, diags[1] = population.Build(quantity.CategoryScalar, r.scalars, population.ScalarIdentity)
		return nil
	})
	g.Go(func() error {
		pops.Vectors, diags[2] = population.Build(quantity.CategoryVector, r.vectors, population.VectorIdentity)
		return nil
	})
	g.Go(func() error {
		pops.VectorGroups, diags[3] = population.Build(quantity.CategoryVectorGroup, r.groups, population.VectorGroupIdentity)
		return nil
	})
	g.Go(func() error {
		pops.Members, diags[4] = population.Build(quantity.CategoryVectorGroupMember, r.rawMembers, population.MemberIdentity)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	for _, d := range diags {
		r.diags.Merge(d)
	}

	r.pops = &pops

	r.log.Debug("populations built",
		"units", pops.Units.Len(),
		"scalars", pops.Scalars.Len(),
		"vectors", pops.Vectors.Len(),
		"vector_groups", pops.VectorGroups.Len(),
		"members", pops.Members.Len())

	return ctx.Err()
}

func (r *run) result() *Result {
	out := &Result{Diagnostics: r.diags.Dedup().Sorted()}

	for _, id := range r.pops.Units.IDs() {
		if u, ok := r.scope.Units[id]; ok {
			out.Units = append(out.Units, u)
		}
	}

	for _, id := range r.pops.Scalars.IDs() {
		if s, ok := r.scope.Scalars[id]; ok {
			out.Scalars = append(out.Scalars, s)
		}
	}

	for _, id := range r.pops.Vectors.IDs() {
		if v, ok := r.scope.Vectors[id]; ok {
			out.Vectors = append(out.Vectors, v)
		}
	}

	for _, id := range r.pops.VectorGroups.IDs() {
		if g, ok := r.scope.Groups[id]; ok {
			out.VectorGroups = append(out.VectorGroups, g)
		}
	}

	for _, id := range r.pops.Members.IDs() {
		if m, ok := r.members[id]; ok {
			out.Members = append(out.Members, m)
		}
	}

	return out
}
