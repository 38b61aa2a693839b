package parse

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/annotation"
	"measures-generator/internal/bind"
	"measures-generator/internal/source"
)

// The helpers below build field descriptors from a pair of accessors: set
// stores a converted value, loc stores the span. Both operate on the copy
// the binder hands to the setter, so raw definitions stay values.

func stringField[D any](name string, set func(*D, string), loc func(*D, source.Span)) bind.Field[D] {
	return valueField(name, bind.String, set, loc)
}

func boolField[D any](name string, set func(*D, bool), loc func(*D, source.Span)) bind.Field[D] {
	return valueField(name, bind.Bool, set, loc)
}

func intField[D any](name string, set func(*D, int64), loc func(*D, source.Span)) bind.Field[D] {
	return valueField(name, bind.Int, set, loc)
}

func floatField[D any](name string, set func(*D, float64), loc func(*D, source.Span)) bind.Field[D] {
	return valueField(name, bind.Float, set, loc)
}

func typeField[D any](name string, set func(*D, *analyze.TypeID), loc func(*D, source.Span)) bind.Field[D] {
	return valueField(name, typeID, set, loc)
}

func stringsField[D any](name string, set func(*D, []string), loc func(*D, source.ArraySpan)) bind.Field[D] {
	return arrayField(name, bind.Strings, set, loc)
}

func floatsField[D any](name string, set func(*D, []float64), loc func(*D, source.ArraySpan)) bind.Field[D] {
	return arrayField(name, bind.Floats, set, loc)
}

func typesField[D any](name string, set func(*D, []*analyze.TypeID), loc func(*D, source.ArraySpan)) bind.Field[D] {
	return arrayField(name, typeIDs, set, loc)
}

func valueField[D, T any](
	name string,
	conv func(annotation.Value) (T, bool),
	set func(*D, T),
	loc func(*D, source.Span),
) bind.Field[D] {
	return bind.Field[D]{
		Name: name,
		Set: func(def D, v annotation.Value) D {
			if x, ok := conv(v); ok {
				set(&def, x)
			}

			return def
		},
		Locate: bind.LocateValue(func(def D, s source.Span) D {
			loc(&def, s)
			return def
		}),
	}
}

func arrayField[D, T any](
	name string,
	conv func(annotation.Value) ([]T, bool),
	set func(*D, []T),
	loc func(*D, source.ArraySpan),
) bind.Field[D] {
	return bind.Field[D]{
		Name: name,
		Set: func(def D, v annotation.Value) D {
			if x, ok := conv(v); ok {
				set(&def, x)
			}

			return def
		},
		Locate: bind.LocateArray(func(def D, s source.ArraySpan) D {
			loc(&def, s)
			return def
		}),
	}
}

func typeID(v annotation.Value) (*analyze.TypeID, bool) {
	t, ok := bind.Type(v)
	if !ok || t == nil {
		return nil, ok
	}

	id := analyze.FromTypeName(*t)

	return &id, true
}

func typeIDs(v annotation.Value) ([]*analyze.TypeID, bool) {
	ts, ok := bind.Types(v)
	if !ok || ts == nil {
		return nil, ok
	}

	out := make([]*analyze.TypeID, len(ts))
	for i, t := range ts {
		if t != nil {
			id := analyze.FromTypeName(*t)
			out[i] = &id
		}
	}

	return out, true
}
