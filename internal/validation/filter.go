package validation

import "measures-generator/internal/diagnostic"

// Processer turns one raw item into an outcome.
type Processer[C, R, P any] func(ctx C, raw R) Outcome[P]

// StatefulProcesser is a Processer that also sees the threaded state.
type StatefulProcesser[C, S, R, P any] func(ctx C, state S, raw R) Outcome[P]

// Process runs a processer on a single item and returns its outcome
// unchanged.
func Process[C, R, P any](ctx C, raw R, process Processer[C, R, P]) Outcome[P] {
	return process(ctx, raw)
}

// Filter processes every item. Diagnostics of all items are accumulated and
// only the items that produced a product are kept, in input order.
func Filter[C, R, P any](ctx C, items []R, process Processer[C, R, P]) ([]P, diagnostic.Diagnostics) {
	var (
		products []P
		diags    diagnostic.Diagnostics
	)

	for _, raw := range items {
		out := process(ctx, raw)
		diags = append(diags, out.Diagnostics...)

		if out.OK {
			products = append(products, out.Value)
		}
	}

	return products, diags
}

// FilterActionable is Filter with a lifecycle hook. For every item the hook
// receives EventStart, then EventSuccess or EventFailure, exactly once each.
// The processer sees the state as it was before the item's EventStart, so
// bookkeeping done on start (such as reserving a name) is visible to later
// items only. The final state is returned.
func FilterActionable[C, S, R, P any](
	ctx C,
	state S,
	items []R,
	process StatefulProcesser[C, S, R, P],
	hook Hook[S, R, P],
) ([]P, S, diagnostic.Diagnostics) {
	var (
		products []P
		diags    diagnostic.Diagnostics
		zero     P
	)

	for _, raw := range items {
		before := state
		state = hook(state, EventStart, raw, zero)

		out := process(ctx, before, raw)
		diags = append(diags, out.Diagnostics...)

		if out.OK {
			products = append(products, out.Value)
			state = hook(state, EventSuccess, raw, out.Value)

			continue
		}

		state = hook(state, EventFailure, raw, zero)
	}

	return products, state, diags
}
