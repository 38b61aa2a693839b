// Package annotation parses quantity annotations written in Go doc comments.
//
// An annotation is a comment line of the form
//
//	// @Name(positional, ..., Key: value, ...)
//
// The argument text is parsed with go/parser as the body of a composite
// literal, so every argument is an ordinary Go expression with exact token
// positions. Values are materialized into Value (constants, type references,
// arrays, nil) while the original expressions stay available for locating
// arguments in the source.
package annotation
