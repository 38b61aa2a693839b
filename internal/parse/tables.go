package parse

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/bind"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
)

type (
	rawUnit        = quantity.RawUnit
	rawInstance    = quantity.RawUnitInstance
	rawDerivation  = quantity.RawDerivation
	rawScalar      = quantity.RawScalar
	rawVector      = quantity.RawVector
	rawMember      = quantity.RawVectorGroupMember
	rawConstant    = quantity.RawConstant
	rawList        = quantity.RawUnitList
	rawConvertible = quantity.RawConvertible
	rawDerived     = quantity.RawDerivedQuantity
)

var unitTable = bind.NewTable(Unit, []string{"Quantity"}, false,
	typeField("Quantity",
		func(d *rawUnit, v *analyze.TypeID) { d.Quantity = v },
		func(d *rawUnit, s source.Span) { d.Loc.Quantity = s }),
	boolField("BiasTerm",
		func(d *rawUnit, v bool) { d.BiasTerm = v },
		func(d *rawUnit, s source.Span) { d.Loc.BiasTerm = s }),
)

var instanceFields = []bind.Field[rawInstance]{
	stringField("Name",
		func(d *rawInstance, v string) { d.Name = v },
		func(d *rawInstance, s source.Span) { d.Loc.Name = s }),
	stringField("Plural",
		func(d *rawInstance, v string) { d.Plural = v },
		func(d *rawInstance, s source.Span) { d.Loc.Plural = s }),
	stringField("Original",
		func(d *rawInstance, v string) { d.Original = v },
		func(d *rawInstance, s source.Span) { d.Loc.Original = s }),
	stringField("Prefix",
		func(d *rawInstance, v string) { d.Prefix = v },
		func(d *rawInstance, s source.Span) { d.Loc.Prefix = s }),
	floatField("Scale",
		func(d *rawInstance, v float64) { d.Scale = v },
		func(d *rawInstance, s source.Span) { d.Loc.Scale = s }),
	floatField("Bias",
		func(d *rawInstance, v float64) { d.Bias = v },
		func(d *rawInstance, s source.Span) { d.Loc.Bias = s }),
	stringField("DerivationID",
		func(d *rawInstance, v string) { d.DerivationID = v },
		func(d *rawInstance, s source.Span) { d.Loc.DerivationID = s }),
	stringsField("Units",
		func(d *rawInstance, v []string) { d.Units = v },
		func(d *rawInstance, s source.ArraySpan) { d.Loc.Units = s }),
}

// instanceTable is a unit instance table together with the kind its
// definitions get.
type instanceTable struct {
	kind  quantity.InstanceKind
	table *bind.Table[rawInstance]
}

var instanceTables = map[string]instanceTable{
	FixedUnitInstance:    newInstanceTable(FixedUnitInstance, quantity.InstanceFixed, false, "Name", "Plural"),
	UnitInstanceAlias:    newInstanceTable(UnitInstanceAlias, quantity.InstanceAlias, false, "Name", "Plural", "Original"),
	PrefixedUnitInstance: newInstanceTable(PrefixedUnitInstance, quantity.InstancePrefixed, false, "Name", "Plural", "Original", "Prefix"),
	ScaledUnitInstance:   newInstanceTable(ScaledUnitInstance, quantity.InstanceScaled, false, "Name", "Plural", "Original", "Scale"),
	BiasedUnitInstance:   newInstanceTable(BiasedUnitInstance, quantity.InstanceBiased, false, "Name", "Plural", "Original", "Bias"),
	DerivedUnitInstance:  newInstanceTable(DerivedUnitInstance, quantity.InstanceDerived, true, "Name", "Plural", "DerivationID", "Units"),
}

func newInstanceTable(name string, kind quantity.InstanceKind, variadic bool, params ...string) instanceTable {
	return instanceTable{
		kind:  kind,
		table: bind.NewTable(name, params, variadic, selectFields(instanceFields, params...)...),
	}
}

var derivationTable = bind.NewTable(DerivableUnit, []string{"DerivationID", "Expression", "Signature"}, true,
	stringField("DerivationID",
		func(d *rawDerivation, v string) { d.ID = v },
		func(d *rawDerivation, s source.Span) { d.Loc.ID = s }),
	stringField("Expression",
		func(d *rawDerivation, v string) { d.Expression = v },
		func(d *rawDerivation, s source.Span) { d.Loc.Expression = s }),
	typesField("Signature",
		func(d *rawDerivation, v []*analyze.TypeID) { d.Signature = v },
		func(d *rawDerivation, s source.ArraySpan) { d.Loc.Signature = s }),
)

func scalarFeatures(d *rawScalar) (*quantity.Features, *quantity.FeatureLocations) {
	return &d.Features, &d.Loc.Features
}

func scalarInherit(d *rawScalar) (*quantity.Inheritance, *quantity.InheritanceLocations) {
	return &d.Inherit, &d.Loc.Inherit
}

var (
	scalarUnitField = typeField("Unit",
		func(d *rawScalar, v *analyze.TypeID) { d.Unit = v },
		func(d *rawScalar, s source.Span) { d.Loc.Unit = s })
	scalarOriginalField = typeField("Original",
		func(d *rawScalar, v *analyze.TypeID) { d.Original = v },
		func(d *rawScalar, s source.Span) { d.Loc.Original = s })
	scalarBiasField = boolField("UseUnitBias",
		func(d *rawScalar, v bool) { d.UseUnitBias = v },
		func(d *rawScalar, s source.Span) { d.Loc.UseUnitBias = s })
	scalarVectorField = typeField("Vector",
		func(d *rawScalar, v *analyze.TypeID) { d.Vector = v },
		func(d *rawScalar, s source.Span) { d.Loc.Vector = s })
)

var scalarPowerFields = []bind.Field[rawScalar]{
	typeField("Reciprocal",
		func(d *rawScalar, v *analyze.TypeID) { d.Reciprocal = v },
		func(d *rawScalar, s source.Span) { d.Loc.Powers.Reciprocal = s }),
	typeField("Square",
		func(d *rawScalar, v *analyze.TypeID) { d.Square = v },
		func(d *rawScalar, s source.Span) { d.Loc.Powers.Square = s }),
	typeField("Cube",
		func(d *rawScalar, v *analyze.TypeID) { d.Cube = v },
		func(d *rawScalar, s source.Span) { d.Loc.Powers.Cube = s }),
	typeField("SquareRoot",
		func(d *rawScalar, v *analyze.TypeID) { d.SquareRoot = v },
		func(d *rawScalar, s source.Span) { d.Loc.Powers.SquareRoot = s }),
	typeField("CubeRoot",
		func(d *rawScalar, v *analyze.TypeID) { d.CubeRoot = v },
		func(d *rawScalar, s source.Span) { d.Loc.Powers.CubeRoot = s }),
}

var scalarTable = bind.NewTable(Scalar, []string{"Unit"}, false,
	concat(
		[]bind.Field[rawScalar]{scalarUnitField, scalarBiasField, scalarVectorField},
		featureFields(scalarFeatures),
		scalarPowerFields,
	)...,
)

var specializedScalarTable = bind.NewTable(SpecializedScalar, []string{"Original"}, false,
	concat(
		[]bind.Field[rawScalar]{scalarOriginalField, scalarVectorField},
		featureFields(scalarFeatures),
		scalarPowerFields,
		inheritFields(scalarInherit, "Derivations", "Constants", "Conversions", "Bases", "Units"),
	)...,
)

func vectorFeatures(d *rawVector) (*quantity.Features, *quantity.FeatureLocations) {
	return &d.Features, &d.Loc.Features
}

func vectorInherit(d *rawVector) (*quantity.Inheritance, *quantity.InheritanceLocations) {
	return &d.Inherit, &d.Loc.Inherit
}

var (
	vectorUnitField = typeField("Unit",
		func(d *rawVector, v *analyze.TypeID) { d.Unit = v },
		func(d *rawVector, s source.Span) { d.Loc.Unit = s })
	vectorOriginalField = typeField("Original",
		func(d *rawVector, v *analyze.TypeID) { d.Original = v },
		func(d *rawVector, s source.Span) { d.Loc.Original = s })
	vectorDimensionField = intField("Dimension",
		func(d *rawVector, v int64) { d.Dimension = v },
		func(d *rawVector, s source.Span) { d.Loc.Dimension = s })
	vectorScalarField = typeField("Scalar",
		func(d *rawVector, v *analyze.TypeID) { d.Scalar = v },
		func(d *rawVector, s source.Span) { d.Loc.Scalar = s })
)

var vectorTable = bind.NewTable(Vector, []string{"Unit", "Dimension"}, false,
	concat(
		[]bind.Field[rawVector]{vectorUnitField, vectorDimensionField, vectorScalarField},
		featureFields(vectorFeatures),
	)...,
)

var specializedVectorTable = bind.NewTable(SpecializedVector, []string{"Original"}, false,
	concat(
		[]bind.Field[rawVector]{vectorOriginalField, vectorScalarField},
		featureFields(vectorFeatures),
		inheritFields(vectorInherit, "Constants", "Conversions", "Units"),
	)...,
)

var vectorGroupTable = bind.NewTable(VectorGroup, []string{"Unit"}, false,
	concat(
		[]bind.Field[rawVector]{vectorUnitField, vectorScalarField},
		featureFields(vectorFeatures),
	)...,
)

var specializedVectorGroupTable = bind.NewTable(SpecializedVectorGroup, []string{"Original"}, false,
	concat(
		[]bind.Field[rawVector]{vectorOriginalField, vectorScalarField},
		featureFields(vectorFeatures),
		inheritFields(vectorInherit, "Constants", "Conversions", "Units"),
	)...,
)

var memberTable = bind.NewTable(VectorGroupMember, []string{"VectorGroup", "Dimension"}, false,
	typeField("VectorGroup",
		func(d *rawMember, v *analyze.TypeID) { d.Group = v },
		func(d *rawMember, s source.Span) { d.Loc.Group = s }),
	intField("Dimension",
		func(d *rawMember, v int64) { d.Dimension = v },
		func(d *rawMember, s source.Span) { d.Loc.Dimension = s }),
)

var constantFields = []bind.Field[rawConstant]{
	stringField("Name",
		func(d *rawConstant, v string) { d.Name = v },
		func(d *rawConstant, s source.Span) { d.Loc.Name = s }),
	stringField("UnitInstanceName",
		func(d *rawConstant, v string) { d.UnitInstanceName = v },
		func(d *rawConstant, s source.Span) { d.Loc.UnitInstanceName = s }),
	stringField("Multiples",
		func(d *rawConstant, v string) { d.Multiples = v },
		func(d *rawConstant, s source.Span) { d.Loc.Multiples = s }),
}

var scalarConstantTable = bind.NewTable(ScalarConstant, []string{"Name", "UnitInstanceName", "Value"}, false,
	concat(constantFields, []bind.Field[rawConstant]{
		floatField("Value",
			func(d *rawConstant, v float64) { d.Values = []float64{v} },
			func(d *rawConstant, s source.Span) {
				d.Loc.Values = source.ArraySpan{Span: s, Elements: []source.Span{s}}
			}),
	})...,
)

var vectorConstantTable = bind.NewTable(VectorConstant, []string{"Name", "UnitInstanceName", "Values"}, true,
	concat(constantFields, []bind.Field[rawConstant]{
		floatsField("Values",
			func(d *rawConstant, v []float64) { d.Values = v },
			func(d *rawConstant, s source.ArraySpan) { d.Loc.Values = s }),
	})...,
)

// listTable is the shared table of the include/exclude directives; the
// directive itself is set by the default factory.
func listTable(name string) *bind.Table[rawList] {
	return bind.NewTable(name, []string{"Names"}, true,
		stringsField("Names",
			func(d *rawList, v []string) { d.Names = v },
			func(d *rawList, s source.ArraySpan) { d.Loc.Names = s }),
	)
}

var listTables = map[string]struct {
	directive quantity.ListDirective
	table     *bind.Table[rawList]
}{
	IncludeUnits:     {quantity.DirectiveIncludeUnits, listTable(IncludeUnits)},
	ExcludeUnits:     {quantity.DirectiveExcludeUnits, listTable(ExcludeUnits)},
	IncludeUnitBases: {quantity.DirectiveIncludeBases, listTable(IncludeUnitBases)},
	ExcludeUnitBases: {quantity.DirectiveExcludeBases, listTable(ExcludeUnitBases)},
}

var convertibleTable = bind.NewTable(ConvertibleQuantity, []string{"Quantities"}, true,
	typesField("Quantities",
		func(d *rawConvertible, v []*analyze.TypeID) { d.Quantities = v },
		func(d *rawConvertible, s source.ArraySpan) { d.Loc.Quantities = s }),
)

var derivedQuantityTable = bind.NewTable(DerivedQuantity, []string{"DerivationID", "Signature"}, true,
	stringField("DerivationID",
		func(d *rawDerived, v string) { d.DerivationID = v },
		func(d *rawDerived, s source.Span) { d.Loc.DerivationID = s }),
	typesField("Signature",
		func(d *rawDerived, v []*analyze.TypeID) { d.Signature = v },
		func(d *rawDerived, s source.ArraySpan) { d.Loc.Signature = s }),
)

func featureFields[D any](acc func(*D) (*quantity.Features, *quantity.FeatureLocations)) []bind.Field[D] {
	return []bind.Field[D]{
		stringField("DefaultUnitInstanceName",
			func(d *D, v string) { f, _ := acc(d); f.DefaultUnitInstanceName = v },
			func(d *D, s source.Span) { _, l := acc(d); l.DefaultUnitInstanceName = s }),
		stringField("DefaultUnitInstanceSymbol",
			func(d *D, v string) { f, _ := acc(d); f.DefaultUnitInstanceSymbol = v },
			func(d *D, s source.Span) { _, l := acc(d); l.DefaultUnitInstanceSymbol = s }),
		boolField("ImplementSum",
			func(d *D, v bool) { f, _ := acc(d); f.ImplementSum = v },
			func(d *D, s source.Span) { _, l := acc(d); l.ImplementSum = s }),
		boolField("ImplementDifference",
			func(d *D, v bool) { f, _ := acc(d); f.ImplementDifference = v },
			func(d *D, s source.Span) { _, l := acc(d); l.ImplementDifference = s }),
		typeField("Difference",
			func(d *D, v *analyze.TypeID) { f, _ := acc(d); f.Difference = v },
			func(d *D, s source.Span) { _, l := acc(d); l.Difference = s }),
	}
}

func inheritFields[D any](
	acc func(*D) (*quantity.Inheritance, *quantity.InheritanceLocations),
	kinds ...string,
) []bind.Field[D] {
	all := map[string]func(*quantity.Inheritance, *quantity.InheritanceLocations) (*bool, *source.Span){
		"Derivations": func(i *quantity.Inheritance, l *quantity.InheritanceLocations) (*bool, *source.Span) {
			return &i.Derivations, &l.Derivations
		},
		"Constants": func(i *quantity.Inheritance, l *quantity.InheritanceLocations) (*bool, *source.Span) {
			return &i.Constants, &l.Constants
		},
		"Conversions": func(i *quantity.Inheritance, l *quantity.InheritanceLocations) (*bool, *source.Span) {
			return &i.Conversions, &l.Conversions
		},
		"Bases": func(i *quantity.Inheritance, l *quantity.InheritanceLocations) (*bool, *source.Span) {
			return &i.Bases, &l.Bases
		},
		"Units": func(i *quantity.Inheritance, l *quantity.InheritanceLocations) (*bool, *source.Span) {
			return &i.Units, &l.Units
		},
	}

	fields := make([]bind.Field[D], 0, len(kinds))
	for _, kind := range kinds {
		pick := all[kind]
		fields = append(fields, boolField("Inherit"+kind,
			func(d *D, v bool) { b, _ := pick(acc(d)); *b = v },
			func(d *D, s source.Span) { _, l := pick(acc(d)); *l = s }))
	}

	return fields
}

func selectFields[D any](fields []bind.Field[D], names ...string) []bind.Field[D] {
	var out []bind.Field[D]

	for _, f := range fields {
		for _, name := range names {
			if f.Name == name {
				out = append(out, f)
			}
		}
	}

	return out
}

func concat[T any](parts ...[]T) []T {
	var out []T
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
