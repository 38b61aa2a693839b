package validation

import "sort"

// Names is an immutable set of strings used as threaded state, e.g. the
// names already reserved by earlier items of a list.
type Names struct {
	set map[string]struct{}
}

// NewNames returns a set holding names.
func NewNames(names ...string) Names {
	var n Names
	for _, name := range names {
		n = n.With(name)
	}

	return n
}

// Contains reports whether name is in the set.
func (n Names) Contains(name string) bool {
	_, ok := n.set[name]
	return ok
}

// With returns a set that also holds name. n is not modified.
func (n Names) With(name string) Names {
	if n.Contains(name) {
		return n
	}

	set := make(map[string]struct{}, len(n.set)+1)
	for k := range n.set {
		set[k] = struct{}{}
	}

	set[name] = struct{}{}

	return Names{set: set}
}

// Len returns the number of names.
func (n Names) Len() int {
	return len(n.set)
}

// Sorted returns the names in ascending order.
func (n Names) Sorted() []string {
	out := make([]string, 0, len(n.set))
	for k := range n.set {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}
