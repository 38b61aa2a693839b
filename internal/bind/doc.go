// Package bind maps the arguments of a parsed annotation onto the fields of a
// raw definition.
//
// Every annotation kind has a statically built Table: its positional
// parameter names (the last one optionally variadic) and one Field per
// argument name. A Field pairs a setter, which copies a value into the
// definition, with a locator, which records where the value was written.
// Definitions are values; setters and locators return updated copies.
//
// Binding never fails because of a bad argument: the affected field is simply
// left unset. The only structural failure is an annotation written without
// an argument list when its table requires one.
package bind
