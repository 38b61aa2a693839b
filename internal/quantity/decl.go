package quantity

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/source"
)

// UnitDeclaration gathers the raw annotations of a type declared as a unit.
type UnitDeclaration struct {
	ID          analyze.TypeID
	Span        source.Span
	Unit        RawUnit
	Instances   []RawUnitInstance
	Derivations []RawDerivation
}

// ScalarDeclaration gathers the raw annotations of a type declared as a
// scalar.
type ScalarDeclaration struct {
	ID          analyze.TypeID
	Span        source.Span
	Scalar      RawScalar
	Constants   []RawConstant
	Lists       []RawUnitList
	Convertible []RawConvertible
	Derived     []RawDerivedQuantity
}

// VectorDeclaration gathers the raw annotations of a type declared as an
// individual vector.
type VectorDeclaration struct {
	ID          analyze.TypeID
	Span        source.Span
	Vector      RawVector
	Constants   []RawConstant
	Lists       []RawUnitList
	Convertible []RawConvertible
}

// VectorGroupDeclaration gathers the raw annotations of a type declared as
// a vector group.
type VectorGroupDeclaration struct {
	ID          analyze.TypeID
	Span        source.Span
	Group       RawVector
	Lists       []RawUnitList
	Convertible []RawConvertible
}

// MemberDeclaration is a type declared as a member of a vector group.
type MemberDeclaration struct {
	ID     analyze.TypeID
	Span   source.Span
	Member RawVectorGroupMember
}
