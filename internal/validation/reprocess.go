package validation

// Step folds one raw item into the current product.
type Step[C, R, P any] func(ctx C, product P, raw R) Outcome[P]

// StatefulStep is a Step that also sees the threaded state.
type StatefulStep[C, S, R, P any] func(ctx C, state S, product P, raw R) Outcome[P]

// Reprocess folds items into one product starting from initial. The first
// step without a product stops the fold: the result then has no product and
// carries the diagnostics of every step run so far, the failing one
// included.
func Reprocess[C, R, P any](ctx C, items []R, initial P, step Step[C, R, P]) Outcome[P] {
	out := Success(initial)

	for _, raw := range items {
		next := step(ctx, out.Value, raw)
		out.Diagnostics = concat(out.Diagnostics, next.Diagnostics)

		if !next.OK {
			return Failure[P](out.Diagnostics...)
		}

		out.Value = next.Value
	}

	return out
}

// ReprocessActionable is Reprocess with a lifecycle hook around every step.
// On EventFailure the hook receives the last product that was known before
// the failing step.
func ReprocessActionable[C, S, R, P any](
	ctx C,
	state S,
	items []R,
	initial P,
	step StatefulStep[C, S, R, P],
	hook Hook[S, R, P],
) (Outcome[P], S) {
	out := Success(initial)

	for _, raw := range items {
		before := state
		state = hook(state, EventStart, raw, out.Value)

		next := step(ctx, before, out.Value, raw)
		out.Diagnostics = concat(out.Diagnostics, next.Diagnostics)

		if !next.OK {
			state = hook(state, EventFailure, raw, out.Value)
			return Failure[P](out.Diagnostics...), state
		}

		out.Value = next.Value
		state = hook(state, EventSuccess, raw, out.Value)
	}

	return out, state
}
