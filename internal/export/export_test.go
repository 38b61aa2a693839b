package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"measures-generator/internal/analyze"
	"measures-generator/internal/pipeline"
)

const src = `package si

// @Unit(Length)
// @FixedUnitInstance("Metre", "Metres")
// @PrefixedUnitInstance("Kilometre", "Kilometres", "Metre", "Kilo")
type UnitOfLength struct{}

// @Scalar(UnitOfLength, DefaultUnitInstanceName: "Metre", DefaultUnitInstanceSymbol: "m", Square: Length)
// @ScalarConstant("Mile", "Kilometre", 1.609344)
type Length struct{}

// @VectorGroup(UnitOfLength, Scalar: Length)
type Position struct{}

// @VectorGroupMember(Position, 2)
type Position2 struct{}

// @Vector(UnitOfLength, 3, Scalar: Length, ImplementDifference: false)
type Displacement3 struct{}

// @Scalar(UnitOfLength, DefaultUnitInstanceName: "Metr")
type Width struct{}
`

func document(t *testing.T) *Document {
	t.Helper()

	a := analyze.NewAnalyzer()
	require.NoError(t, a.ParseFile("example.com/si", "si.go", src))

	res, err := pipeline.Run(context.Background(), a.Program().Declarations, pipeline.Options{})
	require.NoError(t, err)

	return Build(res)
}

func TestBuild(t *testing.T) {
	doc := document(t)

	assert.Equal(t, Version, doc.Version)
	require.Len(t, doc.Units, 1)
	assert.Equal(t, "prefixed", doc.Units[0].Instances[1].Kind)
	assert.Equal(t, "Kilo", doc.Units[0].Instances[1].Prefix)
	assert.Equal(t, 1e3, doc.Units[0].Instances[1].Factor)

	require.Len(t, doc.Scalars, 2)
	length := doc.Scalars[0]
	assert.Equal(t, "example.com/si.Length", length.Type)
	assert.Equal(t, "m", length.Features.DefaultUnitInstanceSymbol)
	assert.Equal(t, "example.com/si.Length", length.Features.Difference)
	require.NotNil(t, length.Powers)
	assert.Equal(t, "example.com/si.Length", length.Powers.Square)
	assert.Equal(t, []string{"Metre", "Kilometre"}, length.Units)
	require.Len(t, length.Constants, 1)

	require.Len(t, doc.Vectors, 1)
	assert.Empty(t, doc.Vectors[0].Features.Difference)
	assert.Nil(t, doc.Scalars[1].Powers)

	require.Len(t, doc.VectorGroups, 1)
	assert.Equal(t, []Member{{Type: "example.com/si.Position2", Dimension: 2}}, doc.VectorGroups[0].Members)

	require.Len(t, doc.Diagnostics, 1)
	d := doc.Diagnostics[0]
	assert.Equal(t, "unknown_unit_instance", d.Code)
	assert.Equal(t, "error", d.Severity)
	assert.Equal(t, []string{"Metre"}, d.Suggestions)
	assert.Contains(t, d.Position, "si.go:")
}

func TestYAML(t *testing.T) {
	doc := document(t)

	data, err := YAML(doc)
	require.NoError(t, err)

	assert.Contains(t, string(data), "version: \"1\"")
	assert.Contains(t, string(data), "type: example.com/si.Length")
	assert.Contains(t, string(data), "units: [Metre, Kilometre]")

	var back Document
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, doc.Scalars, back.Scalars)
}

func TestMsgpack(t *testing.T) {
	doc := document(t)

	data, err := Msgpack(doc)
	require.NoError(t, err)

	back, err := DecodeMsgpack(data)
	require.NoError(t, err)
	assert.Equal(t, doc, back)

	_, err = DecodeMsgpack([]byte{0xc1})
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	doc := &Document{Version: Version}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, FormatYAML))
	assert.Equal(t, "version: \"1\"\n", buf.String())

	assert.Error(t, Write(&buf, doc, Format("xml")))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("msgpack")
	require.NoError(t, err)
	assert.Equal(t, FormatMsgpack, f)

	_, err = ParseFormat("json")
	assert.Error(t, err)
}
