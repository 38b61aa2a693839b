package pipeline

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/resolve"
)

const testPkg = "example.com/si"

const siSource = `package si

// @Unit(Length)
// @FixedUnitInstance("Metre", "Metres")
// @PrefixedUnitInstance("Kilometre", "Kilometres", "Metre", "Kilo")
// @PrefixedUnitInstance("Millimetre", "Millimetres", "Metre", "Milli")
type UnitOfLength struct{}

// @Unit(Temperature)
// @FixedUnitInstance("Kelvin", "Kelvins")
type UnitOfTemperature struct{}

// @Scalar(UnitOfLength, DefaultUnitInstanceName: "Metre")
// @ScalarConstant("Mile", "Kilometre", 1.609344)
type Length struct{}

// @SpecializedScalar(Distance)
type Gap struct{}

// @SpecializedScalar(Length, DefaultUnitInstanceName: "Kilometre")
// @IncludeUnits("Kilometre")
type Distance struct{}

// @Scalar(UnitOfTemperature, UseUnitBias: true)
type Temperature struct{}

// @VectorGroup(UnitOfLength, Scalar: Length)
type Position struct{}

// @VectorGroupMember(Position, 3)
type Position3 struct{}

// @VectorGroupMember(Position, 2)
type Position2 struct{}

// @Vector(UnitOfLength, 3, Scalar: Length)
// @VectorConstant("Up", "Metre", 0, 0, 1)
type Displacement3 struct{}
`

func id(name string) analyze.TypeID {
	return analyze.TypeID{PkgPath: testPkg, Name: name}
}

func declarations(t *testing.T, src string) []*analyze.Declaration {
	t.Helper()

	a := analyze.NewAnalyzer()
	require.NoError(t, a.ParseFile(testPkg, "si.go", src))
	require.Empty(t, a.Program().Diagnostics, spew.Sdump(a.Program().Diagnostics))

	return a.Program().Declarations
}

func TestRun_EndToEnd(t *testing.T) {
	res, err := Run(context.Background(), declarations(t, siSource), Options{Jobs: 4})
	require.NoError(t, err)

	require.Len(t, res.Diagnostics, 1, spew.Sdump(res.Diagnostics))
	d := res.Diagnostics[0]
	assert.Equal(t, diagnostic.CodeUnitLacksBias, d.Code)
	assert.Equal(t, "si.Temperature", d.Type)
	assert.True(t, res.HasErrors())

	require.Len(t, res.Units, 2)
	assert.Equal(t, id("UnitOfLength"), res.Units[0].ID)

	names := make([]string, 0, len(res.Scalars))
	for _, s := range res.Scalars {
		names = append(names, s.ID.Name)
	}

	assert.Equal(t, []string{"Distance", "Gap", "Length"}, names)

	gap := res.Scalars[1]
	assert.Equal(t, []string{"Kilometre"}, gap.Units)
	assert.Equal(t, "Kilometre", gap.DefaultUnitInstance)
	require.Len(t, gap.Constants, 1)
	assert.Equal(t, "Mile", gap.Constants[0].Name)
	require.NotNil(t, gap.Difference)
	assert.Equal(t, id("Gap"), *gap.Difference)

	require.Len(t, res.VectorGroups, 1)
	group := res.VectorGroups[0]
	require.Len(t, group.Members, 2)
	assert.Equal(t, 2, group.Members[0].Dimension)
	assert.Equal(t, 3, group.Members[1].Dimension)
	assert.Len(t, res.Members, 2)

	require.Len(t, res.Vectors, 1)
	assert.Equal(t, 3, res.Vectors[0].Dimension)
	require.Len(t, res.Vectors[0].Constants, 1)
}

func TestRun_Deterministic(t *testing.T) {
	decls := declarations(t, siSource)

	first, err := Run(context.Background(), decls, Options{Jobs: 1})
	require.NoError(t, err)

	for range 5 {
		again, err := Run(context.Background(), decls, Options{Jobs: 8})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRun_SpecializationCycle(t *testing.T) {
	src := `package si

// @Unit(Length)
// @FixedUnitInstance("Metre", "Metres")
type UnitOfLength struct{}

// @Scalar(UnitOfLength)
type Length struct{}

// @SpecializedScalar(B)
type A struct{}

// @SpecializedScalar(A)
type B struct{}

// @SpecializedScalar(B)
type C struct{}
`
	res, err := Run(context.Background(), declarations(t, src), Options{})
	require.NoError(t, err)

	require.Len(t, res.Scalars, 1)
	assert.Equal(t, id("Length"), res.Scalars[0].ID)
	assert.Equal(t, []string{
		diagnostic.CodeSpecializationCycle,
		diagnostic.CodeSpecializationCycle,
		diagnostic.CodeSpecializationCycle,
	}, res.Diagnostics.Codes())
}

func TestRun_CategoryConflict(t *testing.T) {
	src := `package si

// @Unit(Length)
// @FixedUnitInstance("Metre", "Metres")
type UnitOfLength struct{}

// @Scalar(UnitOfLength)
// @Vector(UnitOfLength, 3)
type Length struct{}
`
	res, err := Run(context.Background(), declarations(t, src), Options{})
	require.NoError(t, err)

	assert.Empty(t, res.Scalars)
	assert.Empty(t, res.Vectors)
	assert.Equal(t, []string{diagnostic.CodeCategoryConflict, diagnostic.CodeCategoryConflict}, res.Diagnostics.Codes())
}

func TestRun_InvalidPolicy(t *testing.T) {
	_, err := Run(context.Background(), nil, Options{Policy: resolve.Policy{Inclusion: "maybe"}})
	assert.Error(t, err)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, declarations(t, siSource), Options{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestRun_Empty(t *testing.T) {
	res, err := Run(context.Background(), nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	assert.Empty(t, res.Scalars)
}
