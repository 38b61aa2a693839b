// Package analyze provides package loading and annotation discovery.
//
// It uses golang.org/x/tools/go/packages to load Go packages and walks the
// doc comments of every named type, parsing comment lines that start with
// "@" as quantity annotations.
//
// Key types:
//   - TypeID: package import path + type name
//   - Declaration: an annotated named type and its annotation instances
//   - Program: every annotated declaration of the loaded packages
package analyze
