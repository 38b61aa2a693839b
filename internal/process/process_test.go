package process

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
)

func span(line int) source.Span {
	return source.Span{File: "si.go", Line: line, Column: 4, Offset: line * 100, End: line*100 + 5}
}

func ref(name string) *analyze.TypeID {
	return &analyze.TypeID{PkgPath: "example.com/si", Name: name}
}

func ann(line int) source.AnnotationSpan {
	return source.AnnotationSpan{Span: span(line), Name: span(line)}
}

var lengthCtx = NewContext(*ref("Length"))

func scalarDecl(raw quantity.RawScalar) quantity.ScalarDeclaration {
	return quantity.ScalarDeclaration{ID: *ref("Length"), Span: span(1), Scalar: raw}
}

func baseScalar() quantity.RawScalar {
	raw := quantity.NewRawScalar(false)
	raw.Loc.Annotation = ann(2)
	raw.Unit = ref("UnitOfLength")
	raw.Loc.Unit = span(3)

	return raw
}

func TestScalar_Defaults(t *testing.T) {
	out := Scalar(lengthCtx, scalarDecl(baseScalar()))
	require.True(t, out.OK, spew.Sdump(out.Diagnostics))
	assert.Empty(t, out.Diagnostics)

	s := out.Value
	assert.Equal(t, *ref("UnitOfLength"), s.Unit)
	assert.True(t, s.ImplementSum)
	assert.True(t, s.ImplementDifference)
	assert.False(t, s.UseUnitBias)
	assert.True(t, s.Units.IsEmpty())
}

func TestScalar_PowerChecksAccumulate(t *testing.T) {
	raw := baseScalar()
	raw.Loc.Powers = quantity.PowerLocations{
		Reciprocal: span(4), Square: span(5), Cube: span(6), SquareRoot: span(7), CubeRoot: span(8),
	}

	out := Scalar(lengthCtx, scalarDecl(raw))

	require.True(t, out.OK)
	require.Len(t, out.Diagnostics, 5)

	var fields []string
	for _, d := range out.Diagnostics {
		assert.Equal(t, diagnostic.CodeNullField, d.Code)
		fields = append(fields, d.Field)
	}

	assert.Equal(t, []string{"Reciprocal", "Square", "Cube", "SquareRoot", "CubeRoot"}, fields)
}

func TestScalar_DifferenceCrossField(t *testing.T) {
	raw := baseScalar()
	raw.ImplementDifference = false
	raw.Loc.Features.ImplementDifference = span(4)
	raw.Difference = ref("LengthDifference")
	raw.Loc.Features.Difference = span(5)

	out := Scalar(lengthCtx, scalarDecl(raw))
	require.True(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeDifferenceDisabled}, out.Diagnostics.Codes())
	assert.Nil(t, out.Value.Difference)

	// The cross-field check does not run when the field itself is invalid.
	raw.Difference = nil

	out = Scalar(lengthCtx, scalarDecl(raw))
	require.True(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeNullField}, out.Diagnostics.Codes())
}

func TestScalar_MissingUnitAborts(t *testing.T) {
	raw := baseScalar()
	raw.Unit = nil
	raw.Loc.Unit = source.Span{}
	raw.Loc.Powers.Cube = span(4)

	out := Scalar(lengthCtx, scalarDecl(raw))
	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeMissingField}, out.Diagnostics.Codes())
	assert.Equal(t, span(2), out.Diagnostics[0].Span)

	raw.Loc.Unit = span(3)

	out = Scalar(lengthCtx, scalarDecl(raw))
	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeNullField}, out.Diagnostics.Codes())
}

func TestScalar_Specialized(t *testing.T) {
	raw := quantity.NewRawScalar(true)
	raw.Loc.Annotation = ann(2)
	raw.Original = ref("Length")
	raw.Loc.Original = span(3)

	out := Scalar(lengthCtx, scalarDecl(raw))
	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeSelfSpecialization}, out.Diagnostics.Codes())

	raw.Original = ref("Distance")

	out = Scalar(lengthCtx, scalarDecl(raw))
	require.True(t, out.OK)
	parent, ok := out.Value.Parent()
	assert.True(t, ok)
	assert.Equal(t, *ref("Distance"), parent)
}

func TestScalar_DefaultInstanceChecks(t *testing.T) {
	raw := baseScalar()
	raw.Loc.Features.DefaultUnitInstanceName = span(4)
	raw.DefaultUnitInstanceSymbol = "m"
	raw.Loc.Features.DefaultUnitInstanceSymbol = span(5)

	out := Scalar(lengthCtx, scalarDecl(raw))
	require.True(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeEmptyName}, out.Diagnostics.Codes())

	raw.Loc.Features.DefaultUnitInstanceName = source.Span{}

	out = Scalar(lengthCtx, scalarDecl(raw))
	require.True(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeSymbolWithoutName}, out.Diagnostics.Codes())
	assert.Len(t, out.Diagnostics.Warnings(), 1)
}

func unitDecl(instances ...quantity.RawUnitInstance) quantity.UnitDeclaration {
	return quantity.UnitDeclaration{
		ID:   *ref("UnitOfLength"),
		Span: span(1),
		Unit: quantity.RawUnit{
			Quantity: ref("Length"),
			Loc:      quantity.UnitLocations{Annotation: ann(2), Quantity: span(2)},
		},
		Instances: instances,
	}
}

func instance(kind quantity.InstanceKind, name string, line int) quantity.RawUnitInstance {
	return quantity.RawUnitInstance{
		Kind: kind,
		Name: name,
		Loc:  quantity.UnitInstanceLocations{Annotation: ann(line), Name: span(line)},
	}
}

func TestUnit_Instances(t *testing.T) {
	km := instance(quantity.InstancePrefixed, "Kilometre", 4)
	km.Original, km.Prefix = "Metre", "Kilo"

	bad := instance(quantity.InstancePrefixed, "Megametre", 5)
	bad.Original, bad.Prefix = "Metre", "Mgea"

	ft := instance(quantity.InstanceScaled, "Foot", 6)
	ft.Original, ft.Plural, ft.Scale = "Metre", "Feet", 0.3048

	zero := instance(quantity.InstanceScaled, "Nothing", 7)
	zero.Original = "Metre"

	inf := instance(quantity.InstanceBiased, "Hot", 8)
	inf.Original, inf.Bias = "Metre", math.Inf(1)

	out := Unit(NewContext(*ref("UnitOfLength")), unitDecl(
		instance(quantity.InstanceFixed, "Metre", 3),
		km,
		bad,
		ft,
		instance(quantity.InstanceFixed, "Metre", 9),
		zero,
		inf,
		instance(quantity.InstanceFixed, "Metre", 10),
		instance(quantity.InstanceAlias, "Meter", 11),
	))

	require.True(t, out.OK)

	var names []string
	for _, inst := range out.Value.Instances {
		names = append(names, inst.Name)
	}

	assert.Equal(t, []string{"Metre", "Kilometre", "Foot"}, names)

	metre, _ := out.Value.Instance("Metre")
	assert.Equal(t, "Metres", metre.Plural)
	foot, _ := out.Value.Instance("Foot")
	assert.Equal(t, "Feet", foot.Plural)
	kilometre, _ := out.Value.Instance("Kilometre")
	assert.Equal(t, 1e3, kilometre.Prefix.Factor)

	assert.Equal(t, []string{
		diagnostic.CodeUnknownPrefix,
		diagnostic.CodeDuplicateUnitInstance,
		diagnostic.CodeInvalidValue,
		diagnostic.CodeInvalidValue,
		diagnostic.CodeDuplicateUnitInstance,
		diagnostic.CodeEmptyName,
	}, out.Diagnostics.Codes())
	assert.Equal(t, []string{"Mega"}, out.Diagnostics[0].Suggestions)
	assert.Equal(t, span(9), out.Diagnostics[1].Span)
}

func TestUnit_MissingQuantity(t *testing.T) {
	decl := unitDecl()
	decl.Unit.Quantity = nil
	decl.Unit.Loc.Quantity = source.Span{}

	out := Unit(NewContext(decl.ID), decl)
	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeMissingField}, out.Diagnostics.Codes())
}

func TestUnit_Derivations(t *testing.T) {
	decl := unitDecl()
	decl.Derivations = []quantity.RawDerivation{
		{ID: "speed", Expression: "{0}/{1}", Signature: []*analyze.TypeID{ref("UnitOfLength"), ref("UnitOfTime")}},
		{ID: "speed", Expression: "{0}*{1}", Signature: []*analyze.TypeID{ref("UnitOfLength")}},
		{ID: "area", Expression: "", Signature: []*analyze.TypeID{ref("UnitOfLength"), nil}},
		{ID: "empty", Expression: "{0}"},
	}

	out := Unit(NewContext(decl.ID), decl)
	require.True(t, out.OK)
	require.Len(t, out.Value.Derivations, 1)
	assert.Equal(t, "speed", out.Value.Derivations[0].ID)
	assert.Equal(t, []string{
		diagnostic.CodeDuplicateDerivation,
		diagnostic.CodeInvalidValue,
		diagnostic.CodeNullField,
		diagnostic.CodeEmptyList,
	}, out.Diagnostics.Codes())
}

func list(d quantity.ListDirective, line int, names ...string) quantity.RawUnitList {
	l := quantity.RawUnitList{Directive: d, Names: names}
	l.Loc.Annotation = ann(line)

	for i := range names {
		l.Loc.Names.Elements = append(l.Loc.Names.Elements, span(line*10+i))
	}

	return l
}

func TestSelections_Fold(t *testing.T) {
	units, bases, diags := Selections(lengthCtx, []quantity.RawUnitList{
		list(quantity.DirectiveIncludeUnits, 2, "Metre", "Kilometre"),
		list(quantity.DirectiveExcludeBases, 3, "Foot"),
		list(quantity.DirectiveIncludeUnits, 4, "Foot", "Metre"),
	})

	require.NotNil(t, units.Include)
	assert.Equal(t, []string{"Metre", "Kilometre", "Foot"}, units.Include.Names)
	assert.Len(t, units.Include.Spans, 3)
	assert.Equal(t, span(2), units.Include.Span)
	assert.Nil(t, units.Exclude)
	assert.Nil(t, bases.Include)
	require.NotNil(t, bases.Exclude)
	assert.Equal(t, []string{diagnostic.CodeDuplicateListEntry}, diags.Codes())
}

func TestSelections_StopsAtFirstInvalidList(t *testing.T) {
	units, _, diags := Selections(lengthCtx, []quantity.RawUnitList{
		list(quantity.DirectiveExcludeUnits, 2, "Metre", "Metre"),
		list(quantity.DirectiveExcludeUnits, 3),
		list(quantity.DirectiveExcludeUnits, 4, ""),
	})

	assert.Nil(t, units.Exclude)
	assert.Equal(t, []string{diagnostic.CodeDuplicateListEntry, diagnostic.CodeEmptyList}, diags.Codes())
}

func TestSelections_UnconvertedNames(t *testing.T) {
	mixed := list(quantity.DirectiveIncludeUnits, 2)
	mixed.Loc.Names = source.ArraySpan{Span: span(2), Elements: []source.Span{span(20), span(21)}}

	units, _, diags := Selections(lengthCtx, []quantity.RawUnitList{mixed})

	assert.Nil(t, units.Include)
	require.Len(t, diags, 1)
	assert.Equal(t, diagnostic.CodeInvalidValue, diags[0].Code)
	assert.Equal(t, diagnostic.SeverityError, diags[0].Severity)
	assert.Equal(t, span(2), diags[0].Span)

	empty := list(quantity.DirectiveIncludeUnits, 3)
	empty.Loc.Names = source.ArraySpan{Span: span(3), Elements: []source.Span{}}

	_, _, diags = Selections(lengthCtx, []quantity.RawUnitList{empty})
	assert.Equal(t, []string{diagnostic.CodeEmptyList}, diags.Codes())
}

func TestConstants(t *testing.T) {
	c := func(name, multiples string, values ...float64) quantity.RawConstant {
		rc := quantity.RawConstant{Name: name, UnitInstanceName: "Metre", Values: values, Multiples: multiples}
		rc.Loc.Annotation = ann(2)
		if multiples != "" {
			rc.Loc.Multiples = span(3)
		}

		return rc
	}

	out, diags := Constants(lengthCtx, []quantity.RawConstant{
		c("Planck", "Plancks", 1.6e-35),
		c("Plancks", "", 1),
		c("Mile", "Planck", 1609),
		c("Empty", ""),
		c("Nan", "", math.NaN()),
		c("Earth", "Earths", 6.371e6),
	})

	var names []string
	for _, k := range out {
		names = append(names, k.Name)
	}

	assert.Equal(t, []string{"Planck", "Earth"}, names)
	assert.Equal(t, []string{
		diagnostic.CodeDuplicateConstant,
		diagnostic.CodeDuplicateConstant,
		diagnostic.CodeEmptyList,
		diagnostic.CodeInvalidValue,
	}, diags.Codes())
}

func TestConversions(t *testing.T) {
	raws := []quantity.RawConvertible{
		{Quantities: []*analyze.TypeID{ref("Width"), nil, ref("Length")}},
		{},
		{Quantities: []*analyze.TypeID{ref("Width"), ref("Height")}},
	}

	out, diags := Conversions(lengthCtx, raws)
	require.Len(t, out, 2)
	assert.Equal(t, *ref("Width"), out[0].Quantity)
	assert.Equal(t, *ref("Height"), out[1].Quantity)
	assert.Equal(t, []string{
		diagnostic.CodeNullField,
		diagnostic.CodeInvalidValue,
		diagnostic.CodeEmptyList,
		diagnostic.CodeDuplicateListEntry,
	}, diags.Codes())
}

func vectorRaw(dim int64) quantity.RawVector {
	raw := quantity.NewRawVector(false)
	raw.Loc.Annotation = ann(2)
	raw.Unit = ref("UnitOfLength")
	raw.Loc.Unit = span(3)
	raw.Dimension = dim
	raw.Loc.Dimension = span(4)

	return raw
}

func TestVector_Dimension(t *testing.T) {
	ctx := NewContext(*ref("Position3"))

	for _, tt := range []struct {
		dim int64
		ok  bool
	}{
		{3, true},
		{2, true},
		{64, true},
		{1, false},
		{65, false},
		{-3, false},
		{math.MaxInt64, false},
	} {
		out := Vector(ctx, quantity.VectorDeclaration{ID: ctx.ID, Vector: vectorRaw(tt.dim)})
		assert.Equal(t, tt.ok, out.OK, "dimension %d", tt.dim)

		if tt.ok {
			assert.Equal(t, int(tt.dim), out.Value.Dimension)
		} else {
			assert.Equal(t, []string{diagnostic.CodeInvalidDimension}, out.Diagnostics.Codes())
		}
	}

	missing := vectorRaw(0)
	missing.Loc.Dimension = source.Span{}
	out := Vector(ctx, quantity.VectorDeclaration{ID: ctx.ID, Vector: missing})
	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeMissingField}, out.Diagnostics.Codes())
}

func TestVectorGroup_BasesIgnored(t *testing.T) {
	ctx := NewContext(*ref("Position"))
	raw := quantity.NewRawVector(false)
	raw.Loc.Annotation = ann(2)
	raw.Unit = ref("UnitOfLength")

	out := VectorGroup(ctx, quantity.VectorGroupDeclaration{
		ID:    ctx.ID,
		Group: raw,
		Lists: []quantity.RawUnitList{list(quantity.DirectiveIncludeBases, 3, "Metre")},
	})

	require.True(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeInvalidValue}, out.Diagnostics.Codes())
	assert.Len(t, out.Diagnostics.Warnings(), 1)
}

func TestMember(t *testing.T) {
	ctx := NewContext(*ref("Position2"))

	raw := quantity.RawVectorGroupMember{Group: ref("Position"), Dimension: 2}
	raw.Loc = quantity.MemberLocations{Annotation: ann(2), Group: span(3), Dimension: span(4)}

	out := Member(ctx, quantity.MemberDeclaration{ID: ctx.ID, Member: raw})
	require.True(t, out.OK)
	assert.Equal(t, 2, out.Value.Dimension)

	raw.Group = nil
	raw.Dimension = 100

	out = Member(ctx, quantity.MemberDeclaration{ID: ctx.ID, Member: raw})
	assert.False(t, out.OK)
	assert.Equal(t, []string{diagnostic.CodeNullField, diagnostic.CodeInvalidDimension}, out.Diagnostics.Codes())
}
