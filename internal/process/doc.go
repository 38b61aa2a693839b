// Package process validates raw definitions and applies defaults, turning
// them into processed definitions.
//
// Type references are checked for presence only; whether they exist and
// belong to the right category is decided during resolution. A missing
// required reference aborts the definition. Every other problem is
// confined to the field it concerns.
package process
