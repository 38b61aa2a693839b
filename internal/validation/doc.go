// Package validation provides the combinators that turn raw annotation
// definitions into processed ones.
//
// Every combinator returns its diagnostics as data. A Check validates one
// field or one relation between fields; checks are composed with All
// (independent, every check runs) or Sequence (a later check only runs
// when the earlier ones passed). Filter maps a processer over a list and
// keeps the successful products, Reprocess folds a list into a single
// product and stops at the first failing step. The actionable variants
// call a Hook around every item and thread an explicit state value through
// the traversal.
package validation
