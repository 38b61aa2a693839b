package resolve

import (
	"slices"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
	"measures-generator/internal/suggest"
	"measures-generator/internal/validation"
)

// inherited is the resolved state a specialized type takes its unset
// fields from.
type inherited struct {
	id       analyze.TypeID
	features quantity.ResolvedFeatures
}

// features resolves the shared features of a type. A feature whose
// reference does not resolve is disabled on its own; the type is still
// built.
func (t typeContext) features(
	own quantity.Features,
	loc quantity.FeatureLocations,
	parent *inherited,
	unit *quantity.ResolvedUnit,
	dimension int,
	ann source.Span,
) (quantity.ResolvedFeatures, diagnostic.Diagnostics) {
	out := quantity.ResolvedFeatures{
		DefaultUnitInstance:       own.DefaultUnitInstanceName,
		DefaultUnitInstanceSymbol: own.DefaultUnitInstanceSymbol,
		ImplementSum:              own.ImplementSum,
		ImplementDifference:       own.ImplementDifference,
		Difference:                own.Difference,
	}

	if parent != nil {
		p := parent.features

		if loc.DefaultUnitInstanceName.IsZero() {
			out.DefaultUnitInstance = p.DefaultUnitInstance
			if loc.DefaultUnitInstanceSymbol.IsZero() {
				out.DefaultUnitInstanceSymbol = p.DefaultUnitInstanceSymbol
			}
		}

		if loc.ImplementSum.IsZero() {
			out.ImplementSum = p.ImplementSum
		}

		if loc.ImplementDifference.IsZero() {
			out.ImplementDifference = p.ImplementDifference
		}

		// A parent that is its own difference type passes that role on.
		if loc.Difference.IsZero() && p.Difference != nil && *p.Difference != parent.id {
			out.Difference = p.Difference
		}
	}

	var diags diagnostic.Diagnostics

	if out.DefaultUnitInstance != "" {
		c := t.instance("DefaultUnitInstanceName", out.DefaultUnitInstance, unit, at(loc.DefaultUnitInstanceName, ann))
		if c.Failed() {
			out.DefaultUnitInstance = ""
			out.DefaultUnitInstanceSymbol = ""
		}

		diags.Merge(c.Diagnostics)
	}

	switch {
	case !out.ImplementDifference:
		out.Difference = nil
	case out.Difference == nil || *out.Difference == t.id:
		self := t.id
		out.Difference = &self
	default:
		c := t.difference(*out.Difference, at(loc.Difference, ann), dimension)
		if c.Failed() {
			out.ImplementDifference = false
			out.Difference = nil
		}

		diags.Merge(c.Diagnostics)
	}

	return out, diags
}

// selectedDefault drops a default unit instance that the effective unit
// selection leaves out, inherited or not.
func (t typeContext) selectedDefault(f *quantity.ResolvedFeatures, units []string, loc quantity.FeatureLocations, ann source.Span) diagnostic.Diagnostics {
	name := f.DefaultUnitInstance
	if name == "" || slices.Contains(units, name) {
		return nil
	}

	f.DefaultUnitInstance = ""
	f.DefaultUnitInstanceSymbol = ""

	d := t.warnf(diagnostic.CodeDefaultUnitUnselected, at(loc.DefaultUnitInstanceName, ann), "DefaultUnitInstanceName",
		"default unit instance %q is not among the units selected for %s", name, t.id.Short())

	return diagnostic.Diagnostics{d.WithSuggestions(suggest.Closest(name, units)...)}
}

// difference checks that ref is usable as the difference type: same
// category and, for vectors, same dimension.
func (t typeContext) difference(ref analyze.TypeID, span source.Span, dimension int) validation.Check {
	if !t.pops.Contains(t.category, ref) {
		if cats := t.pops.CategoriesOf(ref); len(cats) > 0 {
			return validation.Fail(t.errorf(diagnostic.CodeDifferenceMismatch, span, "Difference",
				"difference %s is a %s, not a %s", ref.Short(), cats[0], t.category))
		}

		return t.reference("Difference", ref, span, t.category)
	}

	if t.category == quantity.CategoryVector {
		if d, ok := t.vectorDimension(ref); ok && d != dimension {
			return validation.Fail(t.errorf(diagnostic.CodeDifferenceMismatch, span, "Difference",
				"difference %s has dimension %d, not %d", ref.Short(), d, dimension))
		}
	}

	return validation.Pass()
}

// vectorDimension returns the dimension of a vector, following originals
// to the base vector that declares it.
func (r *Resolver) vectorDimension(id analyze.TypeID) (int, bool) {
	chain, cycle := Chain(id, parentLinks(r.pops.Vectors, (*quantity.Vector).Parent))
	if cycle {
		return 0, false
	}

	root, ok := r.pops.Vectors.Lookup(chain[len(chain)-1])
	if !ok || root.Specialized {
		return 0, false
	}

	return root.Dimension, true
}

// scalarUnit returns the unit of a scalar, following originals to the base
// scalar that declares it.
func (r *Resolver) scalarUnit(id analyze.TypeID) (analyze.TypeID, bool) {
	chain, cycle := Chain(id, parentLinks(r.pops.Scalars, (*quantity.Scalar).Parent))
	if cycle {
		return analyze.TypeID{}, false
	}

	root, ok := r.pops.Scalars.Lookup(chain[len(chain)-1])
	if !ok || root.Specialized {
		return analyze.TypeID{}, false
	}

	return root.Unit, true
}

// powers resolves each power reference independently.
func (t typeContext) powers(own quantity.Powers, loc quantity.PowerLocations, parent *quantity.Powers, ann source.Span) (quantity.Powers, diagnostic.Diagnostics) {
	if parent != nil {
		if loc.Reciprocal.IsZero() {
			own.Reciprocal = parent.Reciprocal
		}

		if loc.Square.IsZero() {
			own.Square = parent.Square
		}

		if loc.Cube.IsZero() {
			own.Cube = parent.Cube
		}

		if loc.SquareRoot.IsZero() {
			own.SquareRoot = parent.SquareRoot
		}

		if loc.CubeRoot.IsZero() {
			own.CubeRoot = parent.CubeRoot
		}
	}

	var out quantity.Powers

	var reciprocal, square, cube, squareRoot, cubeRoot validation.Check
	out.Reciprocal, reciprocal = t.optional("Reciprocal", own.Reciprocal, at(loc.Reciprocal, ann), quantity.CategoryScalar)
	out.Square, square = t.optional("Square", own.Square, at(loc.Square, ann), quantity.CategoryScalar)
	out.Cube, cube = t.optional("Cube", own.Cube, at(loc.Cube, ann), quantity.CategoryScalar)
	out.SquareRoot, squareRoot = t.optional("SquareRoot", own.SquareRoot, at(loc.SquareRoot, ann), quantity.CategoryScalar)
	out.CubeRoot, cubeRoot = t.optional("CubeRoot", own.CubeRoot, at(loc.CubeRoot, ann), quantity.CategoryScalar)

	return out, validation.All(reciprocal, square, cube, squareRoot, cubeRoot).Diagnostics
}
