package bind

import "measures-generator/internal/annotation"

// String converts a string constant.
func String(v annotation.Value) (string, bool) {
	return v.AsString()
}

// Bool converts a bool constant.
func Bool(v annotation.Value) (bool, bool) {
	return v.AsBool()
}

// Int converts an integer constant.
func Int(v annotation.Value) (int64, bool) {
	return v.AsInt()
}

// Float converts a numeric constant.
func Float(v annotation.Value) (float64, bool) {
	return v.AsFloat()
}

// Type converts a type reference. A literal nil yields (nil, true).
func Type(v annotation.Value) (*annotation.TypeName, bool) {
	switch v.Kind {
	case annotation.KindNull:
		return nil, true
	case annotation.KindType:
		t := v.Type
		return &t, true
	default:
		return nil, false
	}
}

// Strings converts a collection of string constants. A literal nil yields
// (nil, true); an empty collection yields an empty non-nil slice.
func Strings(v annotation.Value) ([]string, bool) {
	return collect(v, String)
}

// Floats converts a collection of numeric constants.
func Floats(v annotation.Value) ([]float64, bool) {
	return collect(v, Float)
}

// Types converts a collection of type references. nil elements are kept as
// nil entries.
func Types(v annotation.Value) ([]*annotation.TypeName, bool) {
	return collect(v, Type)
}

func collect[T any](v annotation.Value, conv func(annotation.Value) (T, bool)) ([]T, bool) {
	switch v.Kind {
	case annotation.KindNull:
		return nil, true
	case annotation.KindArray:
	default:
		return nil, false
	}

	out := make([]T, 0, len(v.Elems))
	for _, e := range v.Elems {
		x, ok := conv(e)
		if !ok {
			return nil, false
		}

		out = append(out, x)
	}

	return out, true
}
