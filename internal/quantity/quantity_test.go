package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"measures-generator/internal/analyze"
)

func TestCategory_String(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryUnit, "unit"},
		{CategoryScalar, "scalar"},
		{CategoryVector, "vector"},
		{CategoryVectorGroup, "vector group"},
		{CategoryVectorGroupMember, "vector group member"},
		{Category(9), "Category(9)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.String())
	}

	assert.Len(t, Categories, 5)
}

func TestLookupPrefix(t *testing.T) {
	kilo, ok := LookupPrefix("Kilo")
	assert.True(t, ok)
	assert.Equal(t, 1e3, kilo.Factor)
	assert.Equal(t, "k", kilo.Symbol)

	kibi, ok := LookupPrefix("Kibi")
	assert.True(t, ok)
	assert.Equal(t, float64(1024), kibi.Factor)

	_, ok = LookupPrefix("kilo")
	assert.False(t, ok)

	names := PrefixNames()
	assert.Contains(t, names, "Milli")
	assert.IsIncreasing(t, names)
}

func TestDefaults(t *testing.T) {
	s := NewRawScalar(true)
	assert.True(t, s.Specialized)
	assert.True(t, s.ImplementSum)
	assert.True(t, s.ImplementDifference)
	assert.Equal(t, InheritAll(), s.Inherit)
	assert.True(t, s.Loc.Features.ImplementSum.IsZero())

	v := NewRawVector(false)
	assert.False(t, v.Specialized)
	assert.True(t, v.Inherit.Units)
}

func TestInstanceKind(t *testing.T) {
	assert.Equal(t, "prefixed", InstancePrefixed.String())
	assert.True(t, InstanceAlias.HasOriginal())
	assert.False(t, InstanceDerived.HasOriginal())
	assert.False(t, InstanceFixed.HasOriginal())
	assert.Equal(t, "unknown", InstanceKind(42).String())
	assert.Equal(t, "ExcludeUnitBases", DirectiveExcludeBases.String())
}

func TestUnit_Instance(t *testing.T) {
	u := Unit{Instances: []UnitInstance{{Name: "Metre"}, {Name: "Kilometre", Original: "Metre"}}}

	inst, ok := u.Instance("Kilometre")
	assert.True(t, ok)
	assert.Equal(t, "Metre", inst.Original)

	_, ok = u.Instance("Mile")
	assert.False(t, ok)

	r := ResolvedUnit{Instances: []ResolvedUnitInstance{{Name: "Metre"}, {Name: "Foot"}}}
	assert.Equal(t, []string{"Metre", "Foot"}, r.InstanceNames())
}

func TestParent(t *testing.T) {
	root := analyze.TypeID{PkgPath: "p", Name: "Length"}

	s := Scalar{Specialized: true, Original: root}
	parent, ok := s.Parent()
	assert.True(t, ok)
	assert.Equal(t, root, parent)

	_, ok = (&Vector{}).Parent()
	assert.False(t, ok)
}
