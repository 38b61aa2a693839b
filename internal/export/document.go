// Package export renders resolved descriptors for the emission stage.
package export

// Version is the document format version.
const Version = "1"

// Document is the serialized form of a pipeline result. Type references are
// fully qualified ("pkg/path.Name").
type Document struct {
	Version      string        `yaml:"version" msgpack:"version"`
	Units        []Unit        `yaml:"units,omitempty" msgpack:"units,omitempty"`
	Scalars      []Scalar      `yaml:"scalars,omitempty" msgpack:"scalars,omitempty"`
	Vectors      []Vector      `yaml:"vectors,omitempty" msgpack:"vectors,omitempty"`
	VectorGroups []VectorGroup `yaml:"vector_groups,omitempty" msgpack:"vector_groups,omitempty"`
	Diagnostics  []Diagnostic  `yaml:"diagnostics,omitempty" msgpack:"diagnostics,omitempty"`
}

// Unit is an exported unit.
type Unit struct {
	Type        string         `yaml:"type" msgpack:"type"`
	Quantity    string         `yaml:"quantity" msgpack:"quantity"`
	BiasTerm    bool           `yaml:"bias_term,omitempty" msgpack:"bias_term,omitempty"`
	Instances   []UnitInstance `yaml:"instances,omitempty" msgpack:"instances,omitempty"`
	Derivations []Derivation   `yaml:"derivations,omitempty" msgpack:"derivations,omitempty"`
}

// UnitInstance is an exported unit instance.
type UnitInstance struct {
	Kind       string            `yaml:"kind" msgpack:"kind"`
	Name       string            `yaml:"name" msgpack:"name"`
	Plural     string            `yaml:"plural" msgpack:"plural"`
	Original   string            `yaml:"original,omitempty" msgpack:"original,omitempty"`
	Prefix     string            `yaml:"prefix,omitempty" msgpack:"prefix,omitempty"`
	Factor     float64           `yaml:"factor,omitempty" msgpack:"factor,omitempty"`
	Scale      float64           `yaml:"scale,omitempty" msgpack:"scale,omitempty"`
	Bias       float64           `yaml:"bias,omitempty" msgpack:"bias,omitempty"`
	Derivation string            `yaml:"derivation,omitempty" msgpack:"derivation,omitempty"`
	Units      []UnitInstanceRef `yaml:"units,omitempty" msgpack:"units,omitempty"`
}

// UnitInstanceRef names an instance of another unit.
type UnitInstanceRef struct {
	Unit     string `yaml:"unit" msgpack:"unit"`
	Instance string `yaml:"instance" msgpack:"instance"`
}

// Derivation is an exported derivation of a unit or a scalar.
type Derivation struct {
	ID         string   `yaml:"id" msgpack:"id"`
	Expression string   `yaml:"expression" msgpack:"expression"`
	Signature  []string `yaml:"signature" msgpack:"signature"`
}

// Features are the exported shared features.
type Features struct {
	DefaultUnitInstance       string `yaml:"default_unit_instance,omitempty" msgpack:"default_unit_instance,omitempty"`
	DefaultUnitInstanceSymbol string `yaml:"default_unit_instance_symbol,omitempty" msgpack:"default_unit_instance_symbol,omitempty"`
	Sum                       bool   `yaml:"sum" msgpack:"sum"`
	Difference                string `yaml:"difference,omitempty" msgpack:"difference,omitempty"`
}

// Powers are the exported power relations of a scalar.
type Powers struct {
	Reciprocal string `yaml:"reciprocal,omitempty" msgpack:"reciprocal,omitempty"`
	Square     string `yaml:"square,omitempty" msgpack:"square,omitempty"`
	Cube       string `yaml:"cube,omitempty" msgpack:"cube,omitempty"`
	SquareRoot string `yaml:"square_root,omitempty" msgpack:"square_root,omitempty"`
	CubeRoot   string `yaml:"cube_root,omitempty" msgpack:"cube_root,omitempty"`
}

// Constant is an exported constant.
type Constant struct {
	Name         string    `yaml:"name" msgpack:"name"`
	UnitInstance string    `yaml:"unit_instance" msgpack:"unit_instance"`
	Values       []float64 `yaml:"values,flow" msgpack:"values"`
	Multiples    string    `yaml:"multiples,omitempty" msgpack:"multiples,omitempty"`
}

// Scalar is an exported scalar.
type Scalar struct {
	Type        string       `yaml:"type" msgpack:"type"`
	Original    string       `yaml:"original,omitempty" msgpack:"original,omitempty"`
	Unit        string       `yaml:"unit" msgpack:"unit"`
	UseUnitBias bool         `yaml:"use_unit_bias,omitempty" msgpack:"use_unit_bias,omitempty"`
	Vector      string       `yaml:"vector,omitempty" msgpack:"vector,omitempty"`
	Features    Features     `yaml:"features" msgpack:"features"`
	Powers      *Powers      `yaml:"powers,omitempty" msgpack:"powers,omitempty"`
	Units       []string     `yaml:"units,flow" msgpack:"units"`
	Bases       []string     `yaml:"bases,flow" msgpack:"bases"`
	Constants   []Constant   `yaml:"constants,omitempty" msgpack:"constants,omitempty"`
	Conversions []string     `yaml:"conversions,omitempty" msgpack:"conversions,omitempty"`
	Derivations []Derivation `yaml:"derivations,omitempty" msgpack:"derivations,omitempty"`
}

// Vector is an exported individual vector.
type Vector struct {
	Type        string     `yaml:"type" msgpack:"type"`
	Original    string     `yaml:"original,omitempty" msgpack:"original,omitempty"`
	Unit        string     `yaml:"unit" msgpack:"unit"`
	Dimension   int        `yaml:"dimension" msgpack:"dimension"`
	Scalar      string     `yaml:"scalar,omitempty" msgpack:"scalar,omitempty"`
	Features    Features   `yaml:"features" msgpack:"features"`
	Units       []string   `yaml:"units,flow" msgpack:"units"`
	Constants   []Constant `yaml:"constants,omitempty" msgpack:"constants,omitempty"`
	Conversions []string   `yaml:"conversions,omitempty" msgpack:"conversions,omitempty"`
}

// Member is an exported vector group member.
type Member struct {
	Type      string `yaml:"type" msgpack:"type"`
	Dimension int    `yaml:"dimension" msgpack:"dimension"`
}

// VectorGroup is an exported vector group.
type VectorGroup struct {
	Type        string   `yaml:"type" msgpack:"type"`
	Original    string   `yaml:"original,omitempty" msgpack:"original,omitempty"`
	Unit        string   `yaml:"unit" msgpack:"unit"`
	Scalar      string   `yaml:"scalar,omitempty" msgpack:"scalar,omitempty"`
	Features    Features `yaml:"features" msgpack:"features"`
	Units       []string `yaml:"units,flow" msgpack:"units"`
	Conversions []string `yaml:"conversions,omitempty" msgpack:"conversions,omitempty"`
	Members     []Member `yaml:"members,omitempty" msgpack:"members,omitempty"`
}

// Diagnostic is an exported diagnostic.
type Diagnostic struct {
	Severity    string   `yaml:"severity" msgpack:"severity"`
	Code        string   `yaml:"code" msgpack:"code"`
	Position    string   `yaml:"position,omitempty" msgpack:"position,omitempty"`
	Type        string   `yaml:"type,omitempty" msgpack:"type,omitempty"`
	Field       string   `yaml:"field,omitempty" msgpack:"field,omitempty"`
	Message     string   `yaml:"message" msgpack:"message"`
	Suggestions []string `yaml:"suggestions,omitempty,flow" msgpack:"suggestions,omitempty"`
}
