package quantity

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/source"
)

// UnitInstance is a validated unit instance. Prefix is only set for
// prefixed instances.
type UnitInstance struct {
	Kind         InstanceKind
	Name         string
	Plural       string
	Original     string
	Prefix       Prefix
	Scale        float64
	Bias         float64
	DerivationID string
	Units        []string
	Loc          UnitInstanceLocations
}

// Derivation is a validated @DerivableUnit.
type Derivation struct {
	ID         string
	Expression string
	Signature  []analyze.TypeID
	Loc        DerivationLocations
}

// Unit is a processed unit declaration.
type Unit struct {
	ID          analyze.TypeID
	Span        source.Span
	Quantity    analyze.TypeID
	BiasTerm    bool
	Instances   []UnitInstance
	Derivations []Derivation
	Loc         UnitLocations
}

// Instance returns the instance with the given name.
func (u *Unit) Instance(name string) (UnitInstance, bool) {
	for _, inst := range u.Instances {
		if inst.Name == name {
			return inst, true
		}
	}

	return UnitInstance{}, false
}

// UnitList is the merged content of every occurrence of one include or
// exclude directive.
type UnitList struct {
	Names []string
	// Spans holds the span of each name, parallel to Names.
	Spans []source.Span
	// Span covers the first annotation of the directive.
	Span source.Span
}

// Selection holds the include and exclude lists of one concept (unit
// instances or unit bases). A nil list means the directive is absent.
type Selection struct {
	Include *UnitList
	Exclude *UnitList
}

// IsEmpty reports whether neither directive was given.
func (s Selection) IsEmpty() bool {
	return s.Include == nil && s.Exclude == nil
}

// Constant is a validated scalar or vector constant.
type Constant struct {
	Name             string
	UnitInstanceName string
	Values           []float64
	Multiples        string
	Loc              ConstantLocations
}

// Conversion is one quantity named by @ConvertibleQuantity.
type Conversion struct {
	Quantity analyze.TypeID
	Span     source.Span
}

// DerivedQuantity is a validated @DerivedQuantity.
type DerivedQuantity struct {
	DerivationID string
	Signature    []analyze.TypeID
	Loc          DerivedQuantityLocations
}

// Scalar is a processed scalar declaration. Unit is set for base scalars,
// Original for specialized ones.
type Scalar struct {
	ID          analyze.TypeID
	Span        source.Span
	Specialized bool
	Unit        analyze.TypeID
	Original    analyze.TypeID
	UseUnitBias bool
	Vector      *analyze.TypeID
	Features
	Powers
	Inherit     Inheritance
	Units       Selection
	Bases       Selection
	Constants   []Constant
	Conversions []Conversion
	Derivations []DerivedQuantity
	Loc         ScalarLocations
}

// Parent returns the original of a specialized scalar.
func (s *Scalar) Parent() (analyze.TypeID, bool) {
	return s.Original, s.Specialized
}

// Vector is a processed individual vector declaration.
type Vector struct {
	ID          analyze.TypeID
	Span        source.Span
	Specialized bool
	Unit        analyze.TypeID
	Original    analyze.TypeID
	Dimension   int
	Scalar      *analyze.TypeID
	Features
	Inherit     Inheritance
	Units       Selection
	Constants   []Constant
	Conversions []Conversion
	Loc         VectorLocations
}

// Parent returns the original of a specialized vector.
func (v *Vector) Parent() (analyze.TypeID, bool) {
	return v.Original, v.Specialized
}

// VectorGroup is a processed vector group declaration.
type VectorGroup struct {
	ID          analyze.TypeID
	Span        source.Span
	Specialized bool
	Unit        analyze.TypeID
	Original    analyze.TypeID
	Scalar      *analyze.TypeID
	Features
	Inherit     Inheritance
	Units       Selection
	Conversions []Conversion
	Loc         VectorLocations
}

// Parent returns the original of a specialized vector group.
func (g *VectorGroup) Parent() (analyze.TypeID, bool) {
	return g.Original, g.Specialized
}

// VectorGroupMember is a processed vector group member declaration.
type VectorGroupMember struct {
	ID        analyze.TypeID
	Span      source.Span
	Group     analyze.TypeID
	Dimension int
	Loc       MemberLocations
}
