package resolve

// ParentFunc returns the original of a specialized node.
type ParentFunc[K comparable] func(K) (K, bool)

// Chain follows original links from start, start first. It stops at the
// first node without an original and reports whether a node was visited
// twice. The walk is iterative and keeps its own seen-set, so arbitrarily
// deep chains are fine.
func Chain[K comparable](start K, parent ParentFunc[K]) ([]K, bool) {
	seen := make(map[K]bool)
	chain := []K{}

	for cur := start; ; {
		if seen[cur] {
			return chain, true
		}

		seen[cur] = true
		chain = append(chain, cur)

		next, ok := parent(cur)
		if !ok {
			return chain, false
		}

		cur = next
	}
}
