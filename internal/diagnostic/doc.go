// Package diagnostic provides structured errors, warnings and notes produced
// while binding, validating and resolving quantity annotations.
//
// Diagnostics are plain data. Nothing in the pipeline panics or returns an
// error for a user mistake; every stage returns its diagnostics next to its
// result and the driver concatenates them into one flat list.
//
// Key capabilities:
//   - Severity, stable code and source span per diagnostic
//   - "Did you mean" suggestions for misspelled names
//   - Deterministic ordering and de-duplication of the final list
package diagnostic
