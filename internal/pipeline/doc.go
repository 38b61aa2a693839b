// Package pipeline drives binding, processing, population building and
// resolution over every annotated declaration.
//
// Stages are separated by barriers. Within a stage work runs in parallel
// with a bounded number of goroutines; each goroutine writes only its own
// result slot, and results are published in input order once the stage is
// done, so the output does not depend on scheduling.
package pipeline
