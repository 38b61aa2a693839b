package parse

// Annotation names.
const (
	Unit                   = "Unit"
	FixedUnitInstance      = "FixedUnitInstance"
	UnitInstanceAlias      = "UnitInstanceAlias"
	PrefixedUnitInstance   = "PrefixedUnitInstance"
	ScaledUnitInstance     = "ScaledUnitInstance"
	BiasedUnitInstance     = "BiasedUnitInstance"
	DerivedUnitInstance    = "DerivedUnitInstance"
	DerivableUnit          = "DerivableUnit"
	Scalar                 = "Scalar"
	SpecializedScalar      = "SpecializedScalar"
	ScalarConstant         = "ScalarConstant"
	DerivedQuantity        = "DerivedQuantity"
	Vector                 = "Vector"
	SpecializedVector      = "SpecializedVector"
	VectorConstant         = "VectorConstant"
	VectorGroup            = "VectorGroup"
	SpecializedVectorGroup = "SpecializedVectorGroup"
	VectorGroupMember      = "VectorGroupMember"
	IncludeUnits           = "IncludeUnits"
	ExcludeUnits           = "ExcludeUnits"
	IncludeUnitBases       = "IncludeUnitBases"
	ExcludeUnitBases       = "ExcludeUnitBases"
	ConvertibleQuantity    = "ConvertibleQuantity"
)

// Known returns every annotation name understood by the parser.
func Known() []string {
	return []string{
		Unit, FixedUnitInstance, UnitInstanceAlias, PrefixedUnitInstance, ScaledUnitInstance,
		BiasedUnitInstance, DerivedUnitInstance, DerivableUnit,
		Scalar, SpecializedScalar, ScalarConstant, DerivedQuantity,
		Vector, SpecializedVector, VectorConstant,
		VectorGroup, SpecializedVectorGroup, VectorGroupMember,
		IncludeUnits, ExcludeUnits, IncludeUnitBases, ExcludeUnitBases, ConvertibleQuantity,
	}
}
