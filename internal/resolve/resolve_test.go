package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/population"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
)

func id(name string) analyze.TypeID {
	return analyze.TypeID{PkgPath: "example.com/si", Name: name}
}

func ref(name string) *analyze.TypeID {
	v := id(name)
	return &v
}

// explicit is a span marking a field as written.
var explicit = source.Span{File: "si.go", Line: 1, Column: 1, Offset: 1, End: 2}

type fixture struct {
	units   []quantity.Unit
	scalars []quantity.Scalar
	vectors []quantity.Vector
	groups  []quantity.VectorGroup
	members []quantity.VectorGroupMember
}

func (f fixture) resolver(policy Policy) *Resolver {
	units, _ := population.Build(quantity.CategoryUnit, f.units, population.UnitIdentity)
	scalars, _ := population.Build(quantity.CategoryScalar, f.scalars, population.ScalarIdentity)
	vectors, _ := population.Build(quantity.CategoryVector, f.vectors, population.VectorIdentity)
	groups, _ := population.Build(quantity.CategoryVectorGroup, f.groups, population.VectorGroupIdentity)
	members, _ := population.Build(quantity.CategoryVectorGroupMember, f.members, population.MemberIdentity)

	return New(&population.Set{
		Units:        units,
		Scalars:      scalars,
		Vectors:      vectors,
		VectorGroups: groups,
		Members:      members,
	}, policy)
}

// scope resolves every unit, then the scalars, vectors and groups in the
// order given, so parents must come first.
func (f fixture) scope(t *testing.T, r *Resolver) *Scope {
	t.Helper()

	scope := NewScope()

	for _, u := range f.units {
		if ru, ok := r.Unit(u).Get(); ok {
			scope.Units[u.ID] = ru
		}
	}

	for _, s := range f.scalars {
		if rs, ok := r.Scalar(s, scope).Get(); ok {
			scope.Scalars[s.ID] = rs
		}
	}

	for _, v := range f.vectors {
		if rv, ok := r.Vector(v, scope).Get(); ok {
			scope.Vectors[v.ID] = rv
		}
	}

	return scope
}

func metre() quantity.Unit {
	return quantity.Unit{
		ID:       id("Metre"),
		Quantity: id("Length"),
		Instances: []quantity.UnitInstance{
			{Kind: quantity.InstanceFixed, Name: "metre", Plural: "metres"},
			{Kind: quantity.InstancePrefixed, Name: "kilometre", Plural: "kilometres", Original: "metre",
				Prefix: quantity.Prefix{Name: "kilo", Symbol: "k", Factor: 1e3}},
			{Kind: quantity.InstancePrefixed, Name: "millimetre", Plural: "millimetres", Original: "metre",
				Prefix: quantity.Prefix{Name: "milli", Symbol: "m", Factor: 1e-3}},
		},
	}
}

func length() quantity.Scalar {
	return quantity.Scalar{ID: id("Length"), Unit: id("Metre")}
}

func specialized(name, original string) quantity.Scalar {
	return quantity.Scalar{ID: id(name), Specialized: true, Original: id(original)}
}

func TestChain(t *testing.T) {
	links := map[string]string{"c": "b", "b": "a", "x": "y", "y": "x"}
	parent := func(n string) (string, bool) {
		p, ok := links[n]
		return p, ok
	}

	chain, cycle := Chain("c", parent)
	assert.False(t, cycle)
	assert.Equal(t, []string{"c", "b", "a"}, chain)

	_, cycle = Chain("x", parent)
	assert.True(t, cycle)
}

func TestPolicy_Validate(t *testing.T) {
	require.NoError(t, DefaultPolicy().Validate())
	assert.Error(t, Policy{Inclusion: "both", Stacking: Union}.Validate())
	assert.Error(t, Policy{Inclusion: ExcludeWins, Stacking: "sum"}.Validate())
}

func TestScalar_MetreLength(t *testing.T) {
	f := fixture{units: []quantity.Unit{metre()}, scalars: []quantity.Scalar{length()}}
	r := f.resolver(DefaultPolicy())

	unit := r.Unit(metre())
	require.True(t, unit.OK)
	assert.Empty(t, unit.Diagnostics)
	assert.Equal(t, []string{"metre", "kilometre", "millimetre"}, unit.Value.InstanceNames())

	scope := NewScope()
	scope.Units[id("Metre")] = unit.Value

	out := r.Scalar(length(), scope)
	require.True(t, out.OK)
	assert.Empty(t, out.Diagnostics)

	s := out.Value
	assert.Equal(t, id("Metre"), s.Unit)
	assert.Nil(t, s.Original)
	assert.False(t, s.ImplementDifference)
	assert.Nil(t, s.Difference)
	assert.Equal(t, []string{"metre", "kilometre", "millimetre"}, s.Units)
	assert.Equal(t, s.Units, s.Bases)
}

func TestScalar_BiasWithoutBiasTerm(t *testing.T) {
	kelvin := quantity.Unit{
		ID:        id("Kelvin"),
		Quantity:  id("Temperature"),
		Instances: []quantity.UnitInstance{{Kind: quantity.InstanceFixed, Name: "kelvin"}},
	}
	temperature := quantity.Scalar{ID: id("Temperature"), Unit: id("Kelvin"), UseUnitBias: true}

	f := fixture{units: []quantity.Unit{kelvin}, scalars: []quantity.Scalar{temperature}}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	_, ok := scope.Scalars[id("Temperature")]
	assert.False(t, ok)

	out := r.Scalar(temperature, scope)
	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeUnitLacksBias}, out.Diagnostics.Codes())
}

func TestScalar_CategoryConflict(t *testing.T) {
	f := fixture{
		units:   []quantity.Unit{metre()},
		scalars: []quantity.Scalar{length()},
		vectors: []quantity.Vector{{ID: id("Length"), Unit: id("Metre"), Dimension: 3}},
	}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	out := r.Scalar(length(), scope)
	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeCategoryConflict}, out.Diagnostics.Codes())

	vec := r.Vector(f.vectors[0], scope)
	assert.False(t, vec.OK)
	assert.Equal(t, []string{diagnostic.CodeCategoryConflict}, vec.Diagnostics.Codes())
}

func TestScalar_UnitReferences(t *testing.T) {
	f := fixture{
		units: []quantity.Unit{metre()},
		scalars: []quantity.Scalar{
			length(),
			{ID: id("Area"), Unit: id("Length")},
			{ID: id("Volume"), Unit: id("Metr")},
		},
	}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	area := r.Scalar(f.scalars[1], scope)
	assert.False(t, area.OK)
	assert.Equal(t, []string{diagnostic.CodeWrongCategory}, area.Diagnostics.Codes())

	volume := r.Scalar(f.scalars[2], scope)
	assert.False(t, volume.OK)
	require.Equal(t, []string{diagnostic.CodeUnresolvedReference}, volume.Diagnostics.Codes())
	assert.Equal(t, []string{"si.Metre"}, volume.Diagnostics[0].Suggestions)
}

func TestScalar_InheritanceDepthThree(t *testing.T) {
	base := length()
	base.DefaultUnitInstanceName = "metre"
	base.ImplementSum = true
	base.Conversions = []quantity.Conversion{{Quantity: id("Width")}}

	middle := specialized("Distance", "Length")
	middle.DefaultUnitInstanceName = "kilometre"
	middle.Loc.Features.DefaultUnitInstanceName = explicit
	middle.Inherit = quantity.InheritAll()

	leaf := specialized("Span", "Distance")
	leaf.Inherit = quantity.InheritAll()

	f := fixture{
		units:   []quantity.Unit{metre()},
		scalars: []quantity.Scalar{base, {ID: id("Width"), Unit: id("Metre")}, middle, leaf},
	}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	got, ok := scope.Scalars[id("Span")]
	require.True(t, ok)
	assert.Equal(t, "kilometre", got.DefaultUnitInstance)
	assert.True(t, got.ImplementSum)
	assert.Equal(t, id("Metre"), got.Unit)
	require.NotNil(t, got.Original)
	assert.Equal(t, id("Distance"), *got.Original)
	assert.Equal(t, []analyze.TypeID{id("Width")}, got.Conversions)
}

func TestScalar_SpecializationCycle(t *testing.T) {
	f := fixture{
		units:   []quantity.Unit{metre()},
		scalars: []quantity.Scalar{length(), specialized("A", "B"), specialized("B", "A"), specialized("C", "A")},
	}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	for _, name := range []string{"A", "B", "C"} {
		s, _ := r.Populations().Scalars.Lookup(id(name))

		out := r.Scalar(s, scope)
		assert.False(t, out.OK, name)
		assert.Equal(t, []string{diagnostic.CodeSpecializationCycle}, out.Diagnostics.Codes(), name)
	}
}

func TestScalar_OriginalNotResolved(t *testing.T) {
	f := fixture{
		units:   []quantity.Unit{metre()},
		scalars: []quantity.Scalar{length(), specialized("Distance", "Length")},
	}
	r := f.resolver(DefaultPolicy())

	scope := NewScope()
	out := r.Scalar(f.scalars[1], scope)
	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeOriginalUnresolved}, out.Diagnostics.Codes())
}

func TestScalar_PowersResolveIndependently(t *testing.T) {
	s := length()
	s.Square = ref("Area")
	s.Cube = ref("Volume")
	s.Reciprocal = ref("Metre")

	f := fixture{
		units:   []quantity.Unit{metre()},
		scalars: []quantity.Scalar{s, {ID: id("Area"), Unit: id("Metre")}},
	}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	got, ok := scope.Scalars[id("Length")]
	require.True(t, ok)
	require.NotNil(t, got.Square)
	assert.Equal(t, id("Area"), *got.Square)
	assert.Nil(t, got.Cube)
	assert.Nil(t, got.Reciprocal)

	out := r.Scalar(s, scope)
	assert.ElementsMatch(t, []string{diagnostic.CodeWrongCategory, diagnostic.CodeUnresolvedReference}, out.Diagnostics.Codes())
}

func TestScalar_DefaultUnitInstanceIsSoft(t *testing.T) {
	s := length()
	s.DefaultUnitInstanceName = "metr"
	s.DefaultUnitInstanceSymbol = "m"

	f := fixture{units: []quantity.Unit{metre()}, scalars: []quantity.Scalar{s}}
	r := f.resolver(DefaultPolicy())

	out := r.Scalar(s, f.scope(t, r))
	require.True(t, out.OK)
	assert.Empty(t, out.Value.DefaultUnitInstance)
	assert.Empty(t, out.Value.DefaultUnitInstanceSymbol)

	require.Equal(t, []string{diagnostic.CodeUnknownUnitInstance}, out.Diagnostics.Codes())
	assert.Equal(t, []string{"metre"}, out.Diagnostics[0].Suggestions)
}

func TestScalar_DifferenceDefaultsToSelf(t *testing.T) {
	s := length()
	s.ImplementDifference = true

	position := quantity.Scalar{ID: id("Position"), Unit: id("Metre"), Features: quantity.Features{
		ImplementDifference: true,
		Difference:          ref("Length"),
	}}

	f := fixture{units: []quantity.Unit{metre()}, scalars: []quantity.Scalar{s, position}}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	got := scope.Scalars[id("Length")]
	require.NotNil(t, got.Difference)
	assert.Equal(t, id("Length"), *got.Difference)

	pos := scope.Scalars[id("Position")]
	require.NotNil(t, pos.Difference)
	assert.Equal(t, id("Length"), *pos.Difference)
}

func unitList(names ...string) *quantity.UnitList {
	return &quantity.UnitList{Names: names, Span: explicit}
}

func TestScalar_IncludeExclude(t *testing.T) {
	s := length()
	s.Units = quantity.Selection{
		Include: unitList("metre"),
		Exclude: unitList("metre", "kilometre"),
	}

	f := fixture{units: []quantity.Unit{metre()}, scalars: []quantity.Scalar{s}}

	tests := []struct {
		name   string
		policy Policy
		want   []string
	}{
		{"include wins", Policy{Inclusion: IncludeWins, Stacking: Intersection}, []string{"metre"}},
		{"exclude wins", Policy{Inclusion: ExcludeWins, Stacking: Intersection}, []string{"millimetre"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := f.resolver(tt.policy)

			out := r.Scalar(s, f.scope(t, r))
			require.True(t, out.OK)
			assert.Equal(t, tt.want, out.Value.Units)
			assert.Equal(t, []string{diagnostic.CodeContradictoryDirective}, out.Diagnostics.Codes())
			assert.Equal(t, diagnostic.SeverityWarning, out.Diagnostics[0].Severity)
		})
	}
}

func TestScalar_UnknownListNameIsSkipped(t *testing.T) {
	s := length()
	s.Units = quantity.Selection{Include: unitList("metre", "kilometer")}

	f := fixture{units: []quantity.Unit{metre()}, scalars: []quantity.Scalar{s}}
	r := f.resolver(DefaultPolicy())

	out := r.Scalar(s, f.scope(t, r))
	require.True(t, out.OK)
	assert.Equal(t, []string{"metre"}, out.Value.Units)
	require.Equal(t, []string{diagnostic.CodeUnknownUnitInstance}, out.Diagnostics.Codes())
	assert.Equal(t, []string{"kilometre"}, out.Diagnostics[0].Suggestions)
}

func TestScalar_SelectionStacking(t *testing.T) {
	base := length()
	base.Units = quantity.Selection{Include: unitList("metre", "kilometre")}

	child := specialized("Distance", "Length")
	child.Inherit = quantity.Inheritance{Units: true}
	child.Units = quantity.Selection{Include: unitList("kilometre", "millimetre")}

	plain := specialized("Gap", "Length")
	plain.Inherit = quantity.Inheritance{Units: true}

	f := fixture{units: []quantity.Unit{metre()}, scalars: []quantity.Scalar{base, child, plain}}

	tests := []struct {
		stacking Stacking
		want     []string
	}{
		{Intersection, []string{"kilometre"}},
		{Union, []string{"metre", "kilometre", "millimetre"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.stacking), func(t *testing.T) {
			r := f.resolver(Policy{Inclusion: IncludeWins, Stacking: tt.stacking})
			scope := f.scope(t, r)

			assert.Equal(t, tt.want, scope.Scalars[id("Distance")].Units)
			assert.Equal(t, []string{"metre", "kilometre"}, scope.Scalars[id("Gap")].Units)
		})
	}
}

func TestScalar_Constants(t *testing.T) {
	base := length()
	base.Constants = []quantity.Constant{
		{Name: "Mile", UnitInstanceName: "kilometre", Values: []float64{1.609}},
		{Name: "Foot", UnitInstanceName: "metre", Values: []float64{0.3048}},
	}

	child := specialized("Distance", "Length")
	child.Inherit = quantity.Inheritance{Constants: true}
	child.Constants = []quantity.Constant{
		{Name: "Foot", UnitInstanceName: "millimetre", Values: []float64{304.8}},
		{Name: "Inch", UnitInstanceName: "inch", Values: []float64{1}},
	}

	f := fixture{units: []quantity.Unit{metre()}, scalars: []quantity.Scalar{base, child}}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	out := r.Scalar(child, scope)
	require.True(t, out.OK)
	assert.ElementsMatch(t, []string{diagnostic.CodeUnknownUnitInstance, diagnostic.CodeInheritedConflict}, out.Diagnostics.Codes())

	got := out.Value.Constants
	require.Len(t, got, 2)
	assert.Equal(t, "Mile", got[0].Name)
	assert.Equal(t, "Foot", got[1].Name)
	assert.Equal(t, "millimetre", got[1].UnitInstance)
}

func TestScalar_DerivedQuantities(t *testing.T) {
	square := quantity.Unit{
		ID:       id("SquareMetre"),
		Quantity: id("Area"),
		Instances: []quantity.UnitInstance{
			{Kind: quantity.InstanceDerived, Name: "square_metre", Units: []string{"metre", "metre"}},
			{Kind: quantity.InstanceDerived, Name: "broken", Units: []string{"metre"}},
		},
		Derivations: []quantity.Derivation{
			{ID: "sq", Expression: "m*m", Signature: []analyze.TypeID{id("Metre"), id("Metre")}},
		},
	}

	area := quantity.Scalar{ID: id("Area"), Unit: id("SquareMetre"), Derivations: []quantity.DerivedQuantity{
		{Signature: []analyze.TypeID{id("Length"), id("Length")}},
		{DerivationID: "cube", Signature: []analyze.TypeID{id("Length")}},
		{DerivationID: "sq", Signature: []analyze.TypeID{id("Length"), id("Area")}},
	}}

	f := fixture{units: []quantity.Unit{metre(), square}, scalars: []quantity.Scalar{length(), area}}
	r := f.resolver(DefaultPolicy())

	unit := r.Unit(square)
	require.True(t, unit.OK)
	assert.Equal(t, []string{diagnostic.CodeSignatureMismatch}, unit.Diagnostics.Codes())
	require.Equal(t, []string{"square_metre"}, unit.Value.InstanceNames())

	inst := unit.Value.Instances[0]
	assert.Equal(t, "sq", inst.Derivation)
	assert.Equal(t, []quantity.UnitInstanceRef{
		{Unit: id("Metre"), Instance: "metre"},
		{Unit: id("Metre"), Instance: "metre"},
	}, inst.Units)

	scope := f.scope(t, r)

	out := r.Scalar(area, scope)
	require.True(t, out.OK)
	require.Len(t, out.Value.Derivations, 1)
	assert.Equal(t, "m*m", out.Value.Derivations[0].Expression)
	assert.Equal(t, []string{diagnostic.CodeUnknownDerivation, diagnostic.CodeSignatureMismatch}, out.Diagnostics.Codes())
}

func TestUnit_Instances(t *testing.T) {
	u := quantity.Unit{
		ID:       id("Kelvin"),
		Quantity: id("Temperature"),
		Instances: []quantity.UnitInstance{
			{Kind: quantity.InstanceFixed, Name: "kelvin"},
			{Kind: quantity.InstanceBiased, Name: "celsius", Original: "kelvin", Bias: 273.15},
			{Kind: quantity.InstanceScaled, Name: "decicelsius", Original: "celsius", Scale: 0.1},
			{Kind: quantity.InstanceAlias, Name: "a", Original: "b"},
			{Kind: quantity.InstanceAlias, Name: "b", Original: "a"},
			{Kind: quantity.InstanceAlias, Name: "k", Original: "kelvn"},
		},
	}

	f := fixture{
		units:   []quantity.Unit{u},
		scalars: []quantity.Scalar{{ID: id("Temperature"), Unit: id("Kelvin")}},
	}
	r := f.resolver(DefaultPolicy())

	out := r.Unit(u)
	require.True(t, out.OK)
	assert.Equal(t, []string{"kelvin"}, out.Value.InstanceNames())
	assert.ElementsMatch(t, []string{
		diagnostic.CodeUnitLacksBias,
		diagnostic.CodeOriginalUnresolved,
		diagnostic.CodeSpecializationCycle,
		diagnostic.CodeSpecializationCycle,
		diagnostic.CodeUnknownUnitInstance,
	}, out.Diagnostics.Codes())

	u.BiasTerm = true
	out = r.Unit(u)
	assert.Equal(t, []string{"kelvin", "celsius", "decicelsius"}, out.Value.InstanceNames())
}

func TestUnit_QuantityMustBeScalar(t *testing.T) {
	u := metre()
	u.Quantity = id("Distance")

	f := fixture{units: []quantity.Unit{u}}
	out := f.resolver(DefaultPolicy()).Unit(u)

	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeUnresolvedReference}, out.Diagnostics.Codes())
}

func TestVector_DimensionAndDifference(t *testing.T) {
	position := quantity.Vector{ID: id("Position3"), Unit: id("Metre"), Dimension: 3, Scalar: ref("Length"),
		Features: quantity.Features{ImplementDifference: true, Difference: ref("Displacement2")}}
	displacement := quantity.Vector{ID: id("Displacement2"), Unit: id("Metre"), Dimension: 2}
	offset := quantity.Vector{ID: id("Offset3"), Specialized: true, Original: id("Position3"),
		Constants: []quantity.Constant{
			{Name: "Up", UnitInstanceName: "metre", Values: []float64{0, 0, 1}},
			{Name: "Flat", UnitInstanceName: "metre", Values: []float64{0, 1}},
		}}

	f := fixture{
		units:   []quantity.Unit{metre()},
		scalars: []quantity.Scalar{length()},
		vectors: []quantity.Vector{displacement, position, offset},
	}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	out := r.Vector(position, scope)
	require.True(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeDifferenceMismatch}, out.Diagnostics.Codes())
	assert.False(t, out.Value.ImplementDifference)
	assert.Nil(t, out.Value.Difference)
	require.NotNil(t, out.Value.Scalar)

	resolvedOffset, ok := scope.Vectors[id("Offset3")]
	require.True(t, ok)
	assert.Equal(t, 3, resolvedOffset.Dimension)
	assert.Equal(t, id("Length"), *resolvedOffset.Scalar)
	require.Len(t, resolvedOffset.Constants, 1)
	assert.Equal(t, "Up", resolvedOffset.Constants[0].Name)
}

func TestVectorGroup_Members(t *testing.T) {
	group := quantity.VectorGroup{ID: id("Position"), Unit: id("Metre")}
	members := []quantity.VectorGroupMember{
		{ID: id("Position3"), Group: id("Position"), Dimension: 3},
		{ID: id("Position2"), Group: id("Position"), Dimension: 2},
		{ID: id("Position2b"), Group: id("Position"), Dimension: 2},
		{ID: id("Stray"), Group: id("Length"), Dimension: 2},
	}

	f := fixture{
		units:   []quantity.Unit{metre()},
		scalars: []quantity.Scalar{length()},
		groups:  []quantity.VectorGroup{group},
		members: members,
	}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	for _, m := range members {
		out := r.Member(m)
		switch m.ID.Name {
		case "Position2b":
			assert.Equal(t, []string{diagnostic.CodeDuplicateMemberDim}, out.Diagnostics.Codes())
		case "Stray":
			assert.Equal(t, []string{diagnostic.CodeWrongCategory}, out.Diagnostics.Codes())
		default:
			require.True(t, out.OK, m.ID.Name)
			scope.Members[m.Group] = append(scope.Members[m.Group], out.Value)
		}
	}

	out := r.VectorGroup(group, scope)
	require.True(t, out.OK)
	require.Len(t, out.Value.Members, 2)
	assert.Equal(t, 2, out.Value.Members[0].Dimension)
	assert.Equal(t, id("Position3"), out.Value.Members[1].ID)

	_, ok := out.Value.Member(3)
	assert.True(t, ok)
}

func TestScalar_DefaultUnitOutsideSelection(t *testing.T) {
	base := length()
	base.DefaultUnitInstanceName = "metre"
	base.DefaultUnitInstanceSymbol = "m"

	child := specialized("Distance", "Length")
	child.Inherit = quantity.InheritAll()
	child.Units = quantity.Selection{Exclude: unitList("metre", "millimetre")}

	kept := specialized("Gap", "Length")
	kept.Inherit = quantity.InheritAll()
	kept.Units = quantity.Selection{Include: unitList("metre")}

	f := fixture{units: []quantity.Unit{metre()}, scalars: []quantity.Scalar{base, child, kept}}
	r := f.resolver(DefaultPolicy())
	scope := f.scope(t, r)

	out := r.Scalar(child, scope)
	require.True(t, out.OK)
	assert.Equal(t, []string{"kilometre"}, out.Value.Units)
	assert.Empty(t, out.Value.DefaultUnitInstance)
	assert.Empty(t, out.Value.DefaultUnitInstanceSymbol)
	require.Equal(t, []string{diagnostic.CodeDefaultUnitUnselected}, out.Diagnostics.Codes())
	assert.Equal(t, diagnostic.SeverityWarning, out.Diagnostics[0].Severity)
	assert.Equal(t, "si.Distance", out.Diagnostics[0].Type)

	gap := r.Scalar(kept, scope)
	require.True(t, gap.OK)
	assert.Empty(t, gap.Diagnostics)
	assert.Equal(t, "metre", gap.Value.DefaultUnitInstance)
}
