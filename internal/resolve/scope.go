package resolve

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/quantity"
)

// Scope holds the definitions resolved by earlier stages. The pipeline
// only writes to it between stages; resolvers only read it.
type Scope struct {
	Units   map[analyze.TypeID]quantity.ResolvedUnit
	Scalars map[analyze.TypeID]quantity.ResolvedScalar
	Vectors map[analyze.TypeID]quantity.ResolvedVector
	Groups  map[analyze.TypeID]quantity.ResolvedVectorGroup
	// Members maps a vector group to its resolved members.
	Members map[analyze.TypeID][]quantity.ResolvedVectorGroupMember
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{
		Units:   make(map[analyze.TypeID]quantity.ResolvedUnit),
		Scalars: make(map[analyze.TypeID]quantity.ResolvedScalar),
		Vectors: make(map[analyze.TypeID]quantity.ResolvedVector),
		Groups:  make(map[analyze.TypeID]quantity.ResolvedVectorGroup),
		Members: make(map[analyze.TypeID][]quantity.ResolvedVectorGroupMember),
	}
}
