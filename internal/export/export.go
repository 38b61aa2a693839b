package export

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/pipeline"
	"measures-generator/internal/quantity"
)

// Format selects the encoding of a document.
type Format string

const (
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat accepts yaml, yml and msgpack.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack":
		return FormatMsgpack, nil
	default:
		return "", errors.Errorf("unknown export format %q (want yaml or msgpack)", s)
	}
}

// Build converts a pipeline result into a document.
func Build(res *pipeline.Result) *Document {
	doc := &Document{Version: Version}

	for _, u := range res.Units {
		doc.Units = append(doc.Units, exportUnit(&u))
	}

	for _, s := range res.Scalars {
		doc.Scalars = append(doc.Scalars, exportScalar(&s))
	}

	for _, v := range res.Vectors {
		doc.Vectors = append(doc.Vectors, exportVector(&v))
	}

	for _, g := range res.VectorGroups {
		doc.VectorGroups = append(doc.VectorGroups, exportVectorGroup(&g))
	}

	doc.Diagnostics = Diagnostics(res.Diagnostics)

	return doc
}

// Diagnostics converts diags for a document; nil when there are none.
func Diagnostics(diags diagnostic.Diagnostics) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		out = append(out, exportDiagnostic(d))
	}

	return out
}

// YAML encodes doc as YAML.
func YAML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "failed to encode YAML")
	}

	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode YAML")
	}

	return buf.Bytes(), nil
}

// Msgpack encodes doc as MessagePack.
func Msgpack(doc *Document) ([]byte, error) {
	data, err := msgpack.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode msgpack")
	}

	return data, nil
}

// DecodeMsgpack decodes a document written by Msgpack.
func DecodeMsgpack(data []byte) (*Document, error) {
	var doc Document
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode msgpack")
	}

	if doc.Version != Version {
		return nil, errors.Errorf("unsupported document version %q", doc.Version)
	}

	return &doc, nil
}

// Write encodes doc in format to w.
func Write(w io.Writer, doc *Document, format Format) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatYAML:
		data, err = YAML(doc)
	case FormatMsgpack:
		data, err = Msgpack(doc)
	default:
		return errors.Errorf("unknown export format %q", format)
	}

	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return errors.Wrap(err, "failed to write document")
}

func ref(id *analyze.TypeID) string {
	if id == nil {
		return ""
	}

	return id.String()
}

func refs(ids []analyze.TypeID) []string {
	if len(ids) == 0 {
		return nil
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}

	return out
}

func exportUnit(u *quantity.ResolvedUnit) Unit {
	out := Unit{
		Type:     u.ID.String(),
		Quantity: u.Quantity.String(),
		BiasTerm: u.BiasTerm,
	}

	for _, inst := range u.Instances {
		ui := UnitInstance{
			Kind:       inst.Kind.String(),
			Name:       inst.Name,
			Plural:     inst.Plural,
			Original:   inst.Original,
			Prefix:     inst.Prefix.Name,
			Factor:     inst.Prefix.Factor,
			Scale:      inst.Scale,
			Bias:       inst.Bias,
			Derivation: inst.Derivation,
		}

		for _, r := range inst.Units {
			ui.Units = append(ui.Units, UnitInstanceRef{Unit: r.Unit.String(), Instance: r.Instance})
		}

		out.Instances = append(out.Instances, ui)
	}

	for _, d := range u.Derivations {
		out.Derivations = append(out.Derivations, Derivation{
			ID:         d.ID,
			Expression: d.Expression,
			Signature:  refs(d.Signature),
		})
	}

	return out
}

func exportFeatures(f quantity.ResolvedFeatures) Features {
	return Features{
		DefaultUnitInstance:       f.DefaultUnitInstance,
		DefaultUnitInstanceSymbol: f.DefaultUnitInstanceSymbol,
		Sum:                       f.ImplementSum,
		Difference:                ref(f.Difference),
	}
}

func exportPowers(p quantity.Powers) *Powers {
	out := Powers{
		Reciprocal: ref(p.Reciprocal),
		Square:     ref(p.Square),
		Cube:       ref(p.Cube),
		SquareRoot: ref(p.SquareRoot),
		CubeRoot:   ref(p.CubeRoot),
	}

	if out == (Powers{}) {
		return nil
	}

	return &out
}

func exportConstants(cs []quantity.ResolvedConstant) []Constant {
	var out []Constant
	for _, c := range cs {
		out = append(out, Constant{
			Name:         c.Name,
			UnitInstance: c.UnitInstance,
			Values:       c.Values,
			Multiples:    c.Multiples,
		})
	}

	return out
}

func exportScalar(s *quantity.ResolvedScalar) Scalar {
	out := Scalar{
		Type:        s.ID.String(),
		Original:    ref(s.Original),
		Unit:        s.Unit.String(),
		UseUnitBias: s.UseUnitBias,
		Vector:      ref(s.Vector),
		Features:    exportFeatures(s.ResolvedFeatures),
		Powers:      exportPowers(s.Powers),
		Units:       s.Units,
		Bases:       s.Bases,
		Constants:   exportConstants(s.Constants),
		Conversions: refs(s.Conversions),
	}

	for _, d := range s.Derivations {
		out.Derivations = append(out.Derivations, Derivation{
			ID:         d.DerivationID,
			Expression: d.Expression,
			Signature:  refs(d.Signature),
		})
	}

	return out
}

func exportVector(v *quantity.ResolvedVector) Vector {
	return Vector{
		Type:        v.ID.String(),
		Original:    ref(v.Original),
		Unit:        v.Unit.String(),
		Dimension:   v.Dimension,
		Scalar:      ref(v.Scalar),
		Features:    exportFeatures(v.ResolvedFeatures),
		Units:       v.Units,
		Constants:   exportConstants(v.Constants),
		Conversions: refs(v.Conversions),
	}
}

func exportVectorGroup(g *quantity.ResolvedVectorGroup) VectorGroup {
	out := VectorGroup{
		Type:        g.ID.String(),
		Original:    ref(g.Original),
		Unit:        g.Unit.String(),
		Scalar:      ref(g.Scalar),
		Features:    exportFeatures(g.ResolvedFeatures),
		Units:       g.Units,
		Conversions: refs(g.Conversions),
	}

	for _, m := range g.Members {
		out.Members = append(out.Members, Member{Type: m.ID.String(), Dimension: m.Dimension})
	}

	return out
}

func exportDiagnostic(d diagnostic.Diagnostic) Diagnostic {
	out := Diagnostic{
		Severity:    d.Severity.String(),
		Code:        d.Code,
		Type:        d.Type,
		Field:       d.Field,
		Message:     d.Message,
		Suggestions: d.Suggestions,
	}

	if !d.Span.IsZero() {
		out.Position = d.Span.String()
	}

	return out
}
