package parse

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/annotation"
	"measures-generator/internal/bind"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/suggest"
)

// Result holds the candidate raw definitions of one declaration. A
// declaration carrying the markers of several categories yields one
// candidate per category; the conflict is reported during resolution.
type Result struct {
	Unit        *quantity.UnitDeclaration
	Scalar      *quantity.ScalarDeclaration
	Vector      *quantity.VectorDeclaration
	VectorGroup *quantity.VectorGroupDeclaration
	Member      *quantity.MemberDeclaration
	Diagnostics diagnostic.Diagnostics
}

// Categories returns the categories the declaration has a candidate for.
func (r *Result) Categories() []quantity.Category {
	var out []quantity.Category

	if r.Unit != nil {
		out = append(out, quantity.CategoryUnit)
	}

	if r.Scalar != nil {
		out = append(out, quantity.CategoryScalar)
	}

	if r.Vector != nil {
		out = append(out, quantity.CategoryVector)
	}

	if r.VectorGroup != nil {
		out = append(out, quantity.CategoryVectorGroup)
	}

	if r.Member != nil {
		out = append(out, quantity.CategoryVectorGroupMember)
	}

	return out
}

var known = func() map[string]bool {
	m := make(map[string]bool)
	for _, name := range Known() {
		m[name] = true
	}

	return m
}()

// Declaration binds every annotation of decl.
func Declaration(decl *analyze.Declaration) Result {
	p := &declParser{decl: decl, name: decl.ID.Short()}
	p.checkUnknown()

	lists := p.lists()
	convertible := bindAll(p, ConvertibleQuantity, convertibleTable, zero[rawConvertible])

	res := Result{
		Unit:        p.unit(),
		Scalar:      p.scalar(lists, convertible),
		Vector:      p.vector(lists, convertible),
		VectorGroup: p.vectorGroup(lists, convertible),
		Member:      p.member(),
	}
	res.Diagnostics = p.diags

	return res
}

type declParser struct {
	decl  *analyze.Declaration
	name  string
	diags diagnostic.Diagnostics
}

func (p *declParser) checkUnknown() {
	for _, a := range p.decl.Annotations {
		if known[a.Name] {
			continue
		}

		d := diagnostic.Warningf(diagnostic.CodeUnknownAnnotation, a.NameSpan, "unknown annotation @%s", a.Name).
			ForType(p.name).
			WithSuggestions(suggest.Closest(a.Name, Known())...)
		p.diags.Add(d)
	}
}

// marker picks the marker of a category. A base marker wins over a
// specialized one; every other occurrence is reported.
func (p *declParser) marker(base, specialized string) (*annotation.Instance, bool) {
	bases := p.decl.All(base)

	var specs []*annotation.Instance
	if specialized != "" {
		specs = p.decl.All(specialized)
	}

	var chosen *annotation.Instance

	switch {
	case len(bases) > 0:
		chosen = bases[0]
		bases = bases[1:]

		for _, s := range specs {
			p.diags.Add(diagnostic.Errorf(diagnostic.CodeDuplicateMarker, s.Span,
				"@%s conflicts with @%s; the declaration is processed as @%s", s.Name, base, base).ForType(p.name))
		}

		specs = nil
	case len(specs) > 0:
		chosen = specs[0]
		specs = specs[1:]
	default:
		return nil, false
	}

	for _, dup := range append(bases, specs...) {
		p.diags.Add(diagnostic.Warningf(diagnostic.CodeDuplicateMarker, dup.Span,
			"@%s is repeated; only the first occurrence is used", dup.Name).ForType(p.name))
	}

	return chosen, chosen.Name == specialized
}

func (p *declParser) unit() *quantity.UnitDeclaration {
	inst, _ := p.marker(Unit, "")
	if inst == nil {
		return nil
	}

	raw, ok := bindOne(p, inst, unitTable, zero[rawUnit])
	if !ok {
		return nil
	}

	out := &quantity.UnitDeclaration{ID: p.decl.ID, Span: p.decl.Span, Unit: raw}

	for _, a := range p.decl.Annotations {
		it, ok := instanceTables[a.Name]
		if !ok {
			continue
		}

		kind := it.kind
		if def, ok := bindOne(p, a, it.table, func() rawInstance { return rawInstance{Kind: kind} }); ok {
			out.Instances = append(out.Instances, def)
		}
	}

	out.Derivations = bindAll(p, DerivableUnit, derivationTable, zero[rawDerivation])

	return out
}

func (p *declParser) scalar(lists []rawList, convertible []rawConvertible) *quantity.ScalarDeclaration {
	inst, specialized := p.marker(Scalar, SpecializedScalar)
	if inst == nil {
		return nil
	}

	table := scalarTable
	if specialized {
		table = specializedScalarTable
	}

	raw, ok := bindOne(p, inst, table, func() rawScalar { return quantity.NewRawScalar(specialized) })
	if !ok {
		return nil
	}

	return &quantity.ScalarDeclaration{
		ID:          p.decl.ID,
		Span:        p.decl.Span,
		Scalar:      raw,
		Constants:   bindAll(p, ScalarConstant, scalarConstantTable, zero[rawConstant]),
		Lists:       lists,
		Convertible: convertible,
		Derived:     bindAll(p, DerivedQuantity, derivedQuantityTable, zero[rawDerived]),
	}
}

func (p *declParser) vector(lists []rawList, convertible []rawConvertible) *quantity.VectorDeclaration {
	inst, specialized := p.marker(Vector, SpecializedVector)
	if inst == nil {
		return nil
	}

	table := vectorTable
	if specialized {
		table = specializedVectorTable
	}

	raw, ok := bindOne(p, inst, table, func() rawVector { return quantity.NewRawVector(specialized) })
	if !ok {
		return nil
	}

	return &quantity.VectorDeclaration{
		ID:          p.decl.ID,
		Span:        p.decl.Span,
		Vector:      raw,
		Constants:   bindAll(p, VectorConstant, vectorConstantTable, zero[rawConstant]),
		Lists:       lists,
		Convertible: convertible,
	}
}

func (p *declParser) vectorGroup(lists []rawList, convertible []rawConvertible) *quantity.VectorGroupDeclaration {
	inst, specialized := p.marker(VectorGroup, SpecializedVectorGroup)
	if inst == nil {
		return nil
	}

	table := vectorGroupTable
	if specialized {
		table = specializedVectorGroupTable
	}

	raw, ok := bindOne(p, inst, table, func() rawVector { return quantity.NewRawVector(specialized) })
	if !ok {
		return nil
	}

	return &quantity.VectorGroupDeclaration{
		ID:          p.decl.ID,
		Span:        p.decl.Span,
		Group:       raw,
		Lists:       lists,
		Convertible: convertible,
	}
}

func (p *declParser) member() *quantity.MemberDeclaration {
	inst, _ := p.marker(VectorGroupMember, "")
	if inst == nil {
		return nil
	}

	raw, ok := bindOne(p, inst, memberTable, zero[rawMember])
	if !ok {
		return nil
	}

	return &quantity.MemberDeclaration{ID: p.decl.ID, Span: p.decl.Span, Member: raw}
}

// lists binds the include/exclude directives in source order.
func (p *declParser) lists() []rawList {
	var out []rawList

	for _, a := range p.decl.Annotations {
		lt, ok := listTables[a.Name]
		if !ok {
			continue
		}

		directive := lt.directive
		if def, ok := bindOne(p, a, lt.table, func() rawList { return rawList{Directive: directive} }); ok {
			out = append(out, def)
		}
	}

	return out
}

func bindOne[D bind.Definition[D]](p *declParser, inst *annotation.Instance, table *bind.Table[D], newDefault func() D) (D, bool) {
	def, ok := bind.Bind(inst, table, newDefault)
	if !ok {
		p.diags.Add(diagnostic.Errorf(diagnostic.CodeMissingArguments, inst.Span,
			"@%s requires an argument list", inst.Name).ForType(p.name))
	}

	return def, ok
}

func bindAll[D bind.Definition[D]](p *declParser, name string, table *bind.Table[D], newDefault func() D) []D {
	var out []D

	for _, inst := range p.decl.All(name) {
		if def, ok := bindOne(p, inst, table, newDefault); ok {
			out = append(out, def)
		}
	}

	return out
}

func zero[D any]() D {
	var d D
	return d
}
