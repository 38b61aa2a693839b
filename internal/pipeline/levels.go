package pipeline

import (
	"fmt"
	"sort"
)

// levels groups nodes into rounds. Nodes are by index in the input slice;
// depsFn(i) yields indices that must be handled before i.
//
// Every node of a round depends only on nodes of earlier rounds, and each
// round is sorted. Nodes on or behind a cycle never become ready; they are
// returned separately, sorted.
func levels(n int, depsFn func(i int) []int) ([][]int, []int, error) {
	if n <= 0 {
		return nil, nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		deps := depsFn(i)
		for _, d := range deps {
			if d < 0 || d >= n {
				return nil, nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	var (
		rounds [][]int
		done   int
	)

	for len(ready) > 0 {
		rounds = append(rounds, ready)
		done += len(ready)

		var next []int

		for _, i := range ready {
			for _, j := range out[i] {
				indeg[j]--
				if indeg[j] == 0 {
					next = append(next, j)
				}
			}
		}

		sort.Ints(next)
		ready = next
	}

	if done == n {
		return rounds, nil, nil
	}

	var cyclic []int

	for i := range n {
		if indeg[i] > 0 {
			cyclic = append(cyclic, i)
		}
	}

	return rounds, cyclic, nil
}
