// Package population indexes the processed definitions of one category by
// type identity.
//
// A Population is built once, after every declaration was processed, and
// is immutable afterwards; it may be shared by any number of goroutines.
package population
