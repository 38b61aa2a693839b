package population

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
)

func id(name string) analyze.TypeID {
	return analyze.TypeID{PkgPath: "example.com/si", Name: name}
}

func TestBuild_FirstWins(t *testing.T) {
	items := []quantity.Scalar{
		{ID: id("Length"), UseUnitBias: false},
		{ID: id("Area")},
		{ID: id("Length"), UseUnitBias: true},
	}

	p, diags := Build(quantity.CategoryScalar, items, ScalarIdentity)

	require.Equal(t, 2, p.Len())
	assert.Equal(t, []string{diagnostic.CodeDuplicateMarker}, diags.Codes())
	assert.Equal(t, quantity.CategoryScalar, p.Category())

	length, ok := p.Lookup(id("Length"))
	require.True(t, ok)
	assert.False(t, length.UseUnitBias)

	assert.Equal(t, []analyze.TypeID{id("Area"), id("Length")}, p.IDs())
	assert.Len(t, p.All(), 2)
	assert.Equal(t, id("Area"), p.All()[0].ID)
	assert.False(t, p.Contains(id("Time")))
}

func TestPopulation_NilIsEmpty(t *testing.T) {
	var p *Population[quantity.Unit]

	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Contains(id("Metre")))
	assert.Nil(t, p.All())
	assert.Nil(t, p.IDs())
}

func TestSet_CategoriesOf(t *testing.T) {
	units, _ := Build(quantity.CategoryUnit, []quantity.Unit{{ID: id("Metre")}}, UnitIdentity)
	scalars, _ := Build(quantity.CategoryScalar, []quantity.Scalar{{ID: id("Metre")}, {ID: id("Length")}}, ScalarIdentity)
	groups, _ := Build(quantity.CategoryVectorGroup, []quantity.VectorGroup{{ID: id("Position")}}, VectorGroupIdentity)
	members, _ := Build(quantity.CategoryVectorGroupMember, []quantity.VectorGroupMember{
		{ID: id("Position3"), Group: id("Position"), Dimension: 3},
		{ID: id("Position2"), Group: id("Position"), Dimension: 2},
		{ID: id("Velocity2"), Group: id("Velocity"), Dimension: 2},
	}, MemberIdentity)
	vectors, _ := Build(quantity.CategoryVector, nil, VectorIdentity)

	set := &Set{Units: units, Scalars: scalars, Vectors: vectors, VectorGroups: groups, Members: members}

	assert.Equal(t, []quantity.Category{quantity.CategoryUnit, quantity.CategoryScalar}, set.CategoriesOf(id("Metre")))
	assert.Equal(t, []quantity.Category{quantity.CategoryScalar}, set.CategoriesOf(id("Length")))
	assert.Empty(t, set.CategoriesOf(id("Time")))
	assert.False(t, set.Contains(quantity.Category(42), id("Metre")))

	got := set.MembersOf(id("Position"))
	require.Len(t, got, 2)
	assert.Equal(t, id("Position2"), got[0].ID)
}
