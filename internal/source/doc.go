// Package source describes locations of annotation text inside Go source files.
//
// A zero Span means "not supplied". Locations records built by the binder rely
// on this: a field is explicitly set exactly when its span is non-zero,
// regardless of the value that was written.
package source
