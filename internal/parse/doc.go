// Package parse binds the annotations of one declaration into raw
// definitions, one candidate per category the declaration claims.
//
// The field descriptor tables of every annotation kind are built once at
// package initialization and shared by all parses.
package parse
