package quantity

import "measures-generator/internal/analyze"

// UnitInstanceRef names one instance of a unit.
type UnitInstanceRef struct {
	Unit     analyze.TypeID
	Instance string
}

// ResolvedUnitInstance is a unit instance whose original (or derivation)
// was found.
type ResolvedUnitInstance struct {
	Kind     InstanceKind
	Name     string
	Plural   string
	Original string
	Prefix   Prefix
	Scale    float64
	Bias     float64
	// Derivation and Units are set for derived instances.
	Derivation string
	Units      []UnitInstanceRef
}

// ResolvedDerivation is a derivation whose signature names units.
type ResolvedDerivation struct {
	ID         string
	Expression string
	Signature  []analyze.TypeID
}

// ResolvedUnit is the terminal unit descriptor.
type ResolvedUnit struct {
	ID          analyze.TypeID
	Quantity    analyze.TypeID
	BiasTerm    bool
	Instances   []ResolvedUnitInstance
	Derivations []ResolvedDerivation
}

// Instance returns the instance with the given name.
func (u *ResolvedUnit) Instance(name string) (ResolvedUnitInstance, bool) {
	for _, inst := range u.Instances {
		if inst.Name == name {
			return inst, true
		}
	}

	return ResolvedUnitInstance{}, false
}

// InstanceNames returns the instance names in declaration order.
func (u *ResolvedUnit) InstanceNames() []string {
	names := make([]string, 0, len(u.Instances))
	for _, inst := range u.Instances {
		names = append(names, inst.Name)
	}

	return names
}

// Derivation returns the derivation with the given ID.
func (u *ResolvedUnit) Derivation(id string) (ResolvedDerivation, bool) {
	for _, d := range u.Derivations {
		if d.ID == id {
			return d, true
		}
	}

	return ResolvedDerivation{}, false
}

// ResolvedFeatures are the resolved shared features. Difference is nil
// when the difference feature is disabled.
type ResolvedFeatures struct {
	DefaultUnitInstance       string
	DefaultUnitInstanceSymbol string
	ImplementSum              bool
	ImplementDifference       bool
	Difference                *analyze.TypeID
}

// ResolvedConstant is a constant whose unit instance exists.
type ResolvedConstant struct {
	Name         string
	UnitInstance string
	Values       []float64
	Multiples    string
}

// ResolvedDerivedQuantity is a scalar derivation matched against the
// derivation of its unit.
type ResolvedDerivedQuantity struct {
	DerivationID string
	Expression   string
	Signature    []analyze.TypeID
}

// ResolvedScalar is the terminal scalar descriptor.
type ResolvedScalar struct {
	ID          analyze.TypeID
	Original    *analyze.TypeID
	Unit        analyze.TypeID
	UseUnitBias bool
	Vector      *analyze.TypeID
	ResolvedFeatures
	Powers
	Units       []string
	Bases       []string
	Constants   []ResolvedConstant
	Conversions []analyze.TypeID
	Derivations []ResolvedDerivedQuantity
}

// ResolvedVector is the terminal individual vector descriptor.
type ResolvedVector struct {
	ID        analyze.TypeID
	Original  *analyze.TypeID
	Unit      analyze.TypeID
	Dimension int
	Scalar    *analyze.TypeID
	ResolvedFeatures
	Units       []string
	Constants   []ResolvedConstant
	Conversions []analyze.TypeID
}

// ResolvedVectorGroupMember is the terminal vector group member descriptor.
type ResolvedVectorGroupMember struct {
	ID        analyze.TypeID
	Group     analyze.TypeID
	Dimension int
}

// ResolvedVectorGroup is the terminal vector group descriptor. Members are
// ordered by dimension.
type ResolvedVectorGroup struct {
	ID       analyze.TypeID
	Original *analyze.TypeID
	Unit     analyze.TypeID
	Scalar   *analyze.TypeID
	ResolvedFeatures
	Units       []string
	Conversions []analyze.TypeID
	Members     []ResolvedVectorGroupMember
}

// Member returns the member of the given dimension.
func (g *ResolvedVectorGroup) Member(dimension int) (ResolvedVectorGroupMember, bool) {
	for _, m := range g.Members {
		if m.Dimension == dimension {
			return m, true
		}
	}

	return ResolvedVectorGroupMember{}, false
}
