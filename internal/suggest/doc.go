// Package suggest computes "did you mean" alternatives for misspelled
// names by edit distance.
package suggest
