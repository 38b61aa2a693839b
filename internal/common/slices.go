package common

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Single returns the only element of the slice; false when it has none or
// several.
func Single[S ~[]E, E any](s S) (E, bool) {
	if len(s) != 1 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Map applies fn to every element, preserving order.
func Map[S ~[]E, E, R any](s S, fn func(E) R) []R {
	out := make([]R, 0, len(s))
	for _, e := range s {
		out = append(out, fn(e))
	}

	return out
}
