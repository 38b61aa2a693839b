package quantity

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/source"
)

// RawUnit is the @Unit marker.
type RawUnit struct {
	Quantity *analyze.TypeID
	BiasTerm bool
	Loc      UnitLocations
}

// UnitLocations locates the arguments of @Unit.
type UnitLocations struct {
	Annotation source.AnnotationSpan
	Quantity   source.Span
	BiasTerm   source.Span
}

// WithAnnotation implements bind.Definition.
func (r RawUnit) WithAnnotation(loc source.AnnotationSpan) RawUnit {
	r.Loc.Annotation = loc
	return r
}

// InstanceKind distinguishes the unit instance annotations.
type InstanceKind int

const (
	InstanceFixed InstanceKind = iota
	InstanceAlias
	InstancePrefixed
	InstanceScaled
	InstanceBiased
	InstanceDerived
)

var instanceKindNames = [...]string{"fixed", "alias", "prefixed", "scaled", "biased", "derived"}

// String returns the kind name.
func (k InstanceKind) String() string {
	if k < 0 || int(k) >= len(instanceKindNames) {
		return "unknown"
	}

	return instanceKindNames[k]
}

// HasOriginal reports whether instances of this kind are defined in terms
// of another instance of the same unit.
func (k InstanceKind) HasOriginal() bool {
	switch k {
	case InstanceAlias, InstancePrefixed, InstanceScaled, InstanceBiased:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k InstanceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// RawUnitInstance is one of the unit instance annotations. Kind is fixed by
// the annotation that produced it.
type RawUnitInstance struct {
	Kind         InstanceKind
	Name         string
	Plural       string
	Original     string
	Prefix       string
	Scale        float64
	Bias         float64
	DerivationID string
	Units        []string
	Loc          UnitInstanceLocations
}

// UnitInstanceLocations locates the arguments of a unit instance annotation.
type UnitInstanceLocations struct {
	Annotation   source.AnnotationSpan
	Name         source.Span
	Plural       source.Span
	Original     source.Span
	Prefix       source.Span
	Scale        source.Span
	Bias         source.Span
	DerivationID source.Span
	Units        source.ArraySpan
}

// WithAnnotation implements bind.Definition.
func (r RawUnitInstance) WithAnnotation(loc source.AnnotationSpan) RawUnitInstance {
	r.Loc.Annotation = loc
	return r
}

// RawDerivation is @DerivableUnit: a way to express a unit in terms of
// other units.
type RawDerivation struct {
	ID         string
	Expression string
	Signature  []*analyze.TypeID
	Loc        DerivationLocations
}

// DerivationLocations locates the arguments of @DerivableUnit.
type DerivationLocations struct {
	Annotation source.AnnotationSpan
	ID         source.Span
	Expression source.Span
	Signature  source.ArraySpan
}

// WithAnnotation implements bind.Definition.
func (r RawDerivation) WithAnnotation(loc source.AnnotationSpan) RawDerivation {
	r.Loc.Annotation = loc
	return r
}

// Features are the arguments shared by scalars, vectors and vector
// groups.
type Features struct {
	DefaultUnitInstanceName   string
	DefaultUnitInstanceSymbol string
	ImplementSum              bool
	ImplementDifference       bool
	Difference                *analyze.TypeID
}

// FeatureLocations locates Features.
type FeatureLocations struct {
	DefaultUnitInstanceName   source.Span
	DefaultUnitInstanceSymbol source.Span
	ImplementSum              source.Span
	ImplementDifference       source.Span
	Difference                source.Span
}

// Powers are the optional power relations of a scalar.
type Powers struct {
	Reciprocal *analyze.TypeID
	Square     *analyze.TypeID
	Cube       *analyze.TypeID
	SquareRoot *analyze.TypeID
	CubeRoot   *analyze.TypeID
}

// PowerLocations locates Powers.
type PowerLocations struct {
	Reciprocal source.Span
	Square     source.Span
	Cube       source.Span
	SquareRoot source.Span
	CubeRoot   source.Span
}

// Inheritance selects what a specialized type takes over from its original.
type Inheritance struct {
	Derivations bool
	Constants   bool
	Conversions bool
	Bases       bool
	Units       bool
}

// InheritAll enables every kind of inheritance.
func InheritAll() Inheritance {
	return Inheritance{Derivations: true, Constants: true, Conversions: true, Bases: true, Units: true}
}

// InheritanceLocations locates the Inherit* arguments.
type InheritanceLocations struct {
	Derivations source.Span
	Constants   source.Span
	Conversions source.Span
	Bases       source.Span
	Units       source.Span
}

// RawScalar is @Scalar or @SpecializedScalar.
type RawScalar struct {
	Specialized bool
	Unit        *analyze.TypeID
	Original    *analyze.TypeID
	UseUnitBias bool
	Vector      *analyze.TypeID
	Features
	Powers
	Inherit Inheritance
	Loc     ScalarLocations
}

// ScalarLocations locates the arguments of a scalar marker.
type ScalarLocations struct {
	Annotation  source.AnnotationSpan
	Unit        source.Span
	Original    source.Span
	UseUnitBias source.Span
	Vector      source.Span
	Features    FeatureLocations
	Powers      PowerLocations
	Inherit     InheritanceLocations
}

// NewRawScalar returns the defaults of a scalar marker.
func NewRawScalar(specialized bool) RawScalar {
	return RawScalar{
		Specialized: specialized,
		Features:    Features{ImplementSum: true, ImplementDifference: true},
		Inherit:     InheritAll(),
	}
}

// WithAnnotation implements bind.Definition.
func (r RawScalar) WithAnnotation(loc source.AnnotationSpan) RawScalar {
	r.Loc.Annotation = loc
	return r
}

// RawVector is @Vector, @SpecializedVector, @VectorGroup or
// @SpecializedVectorGroup. Dimension is only bound for individual vectors.
type RawVector struct {
	Specialized bool
	Unit        *analyze.TypeID
	Original    *analyze.TypeID
	Dimension   int64
	Scalar      *analyze.TypeID
	Features
	Inherit Inheritance
	Loc     VectorLocations
}

// VectorLocations locates the arguments of a vector marker.
type VectorLocations struct {
	Annotation source.AnnotationSpan
	Unit       source.Span
	Original   source.Span
	Dimension  source.Span
	Scalar     source.Span
	Features   FeatureLocations
	Inherit    InheritanceLocations
}

// NewRawVector returns the defaults of a vector or vector group marker.
func NewRawVector(specialized bool) RawVector {
	return RawVector{
		Specialized: specialized,
		Features:    Features{ImplementSum: true, ImplementDifference: true},
		Inherit:     InheritAll(),
	}
}

// WithAnnotation implements bind.Definition.
func (r RawVector) WithAnnotation(loc source.AnnotationSpan) RawVector {
	r.Loc.Annotation = loc
	return r
}

// RawVectorGroupMember is @VectorGroupMember.
type RawVectorGroupMember struct {
	Group     *analyze.TypeID
	Dimension int64
	Loc       MemberLocations
}

// MemberLocations locates the arguments of @VectorGroupMember.
type MemberLocations struct {
	Annotation source.AnnotationSpan
	Group      source.Span
	Dimension  source.Span
}

// WithAnnotation implements bind.Definition.
func (r RawVectorGroupMember) WithAnnotation(loc source.AnnotationSpan) RawVectorGroupMember {
	r.Loc.Annotation = loc
	return r
}

// ListDirective names the include/exclude annotations.
type ListDirective int

const (
	DirectiveIncludeUnits ListDirective = iota
	DirectiveExcludeUnits
	DirectiveIncludeBases
	DirectiveExcludeBases
)

var directiveNames = [...]string{"IncludeUnits", "ExcludeUnits", "IncludeUnitBases", "ExcludeUnitBases"}

// String returns the annotation name of the directive.
func (d ListDirective) String() string {
	if d < 0 || int(d) >= len(directiveNames) {
		return "unknown"
	}

	return directiveNames[d]
}

// RawUnitList is one include/exclude directive.
type RawUnitList struct {
	Directive ListDirective
	Names     []string
	Loc       UnitListLocations
}

// UnitListLocations locates the arguments of an include/exclude directive.
type UnitListLocations struct {
	Annotation source.AnnotationSpan
	Names      source.ArraySpan
}

// WithAnnotation implements bind.Definition.
func (r RawUnitList) WithAnnotation(loc source.AnnotationSpan) RawUnitList {
	r.Loc.Annotation = loc
	return r
}

// RawConstant is @ScalarConstant or @VectorConstant. Scalar constants have
// exactly one value.
type RawConstant struct {
	Name             string
	UnitInstanceName string
	Values           []float64
	Multiples        string
	Loc              ConstantLocations
}

// ConstantLocations locates the arguments of a constant annotation.
type ConstantLocations struct {
	Annotation       source.AnnotationSpan
	Name             source.Span
	UnitInstanceName source.Span
	Values           source.ArraySpan
	Multiples        source.Span
}

// WithAnnotation implements bind.Definition.
func (r RawConstant) WithAnnotation(loc source.AnnotationSpan) RawConstant {
	r.Loc.Annotation = loc
	return r
}

// RawConvertible is @ConvertibleQuantity.
type RawConvertible struct {
	Quantities []*analyze.TypeID
	Loc        ConvertibleLocations
}

// ConvertibleLocations locates the arguments of @ConvertibleQuantity.
type ConvertibleLocations struct {
	Annotation source.AnnotationSpan
	Quantities source.ArraySpan
}

// WithAnnotation implements bind.Definition.
func (r RawConvertible) WithAnnotation(loc source.AnnotationSpan) RawConvertible {
	r.Loc.Annotation = loc
	return r
}

// RawDerivedQuantity is @DerivedQuantity: the scalar is produced by the
// named derivation of its unit, applied to the listed quantities.
type RawDerivedQuantity struct {
	DerivationID string
	Signature    []*analyze.TypeID
	Loc          DerivedQuantityLocations
}

// DerivedQuantityLocations locates the arguments of @DerivedQuantity.
type DerivedQuantityLocations struct {
	Annotation   source.AnnotationSpan
	DerivationID source.Span
	Signature    source.ArraySpan
}

// WithAnnotation implements bind.Definition.
func (r RawDerivedQuantity) WithAnnotation(loc source.AnnotationSpan) RawDerivedQuantity {
	r.Loc.Annotation = loc
	return r
}
