// Package resolve links processed definitions together.
//
// A Resolver reads the published populations and, for specialized types,
// the already resolved parents handed to it in a Scope. It never modifies
// either, so any number of resolutions may run concurrently as long as a
// parent is resolved before its specializations.
package resolve
