package analyze

import (
	"measures-generator/internal/annotation"
	"measures-generator/internal/common"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/source"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "measures-generator/examples/si"
	Name    string // e.g., "Length"
}

// FromTypeName converts a type reference written in an annotation.
func FromTypeName(t annotation.TypeName) TypeID {
	return TypeID{PkgPath: t.PkgPath, Name: t.Name}
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns "alias.Name", the form used in diagnostics.
func (t TypeID) Short() string {
	return common.ShortName(t.PkgPath, t.Name)
}

// IsZero reports whether the TypeID is unset.
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

// Declaration is a named type carrying at least one annotation.
type Declaration struct {
	ID TypeID
	// Span locates the type name.
	Span source.Span
	// Annotations in source order.
	Annotations []*annotation.Instance
}

// First returns the first annotation with the given name.
func (d *Declaration) First(name string) (*annotation.Instance, bool) {
	return common.First(d.All(name))
}

// All returns every annotation with the given name, in source order.
func (d *Declaration) All(name string) []*annotation.Instance {
	var out []*annotation.Instance

	for _, a := range d.Annotations {
		if a.Name == name {
			out = append(out, a)
		}
	}

	return out
}

// Has reports whether the declaration carries the named annotation.
func (d *Declaration) Has(name string) bool {
	_, ok := d.First(name)
	return ok
}

// Program holds every annotated declaration of the loaded packages.
type Program struct {
	// Declarations in package, file and source order.
	Declarations []*Declaration
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Diagnostics reports annotations that could not be parsed.
	Diagnostics diagnostic.Diagnostics
}

// NewProgram creates a new empty Program.
func NewProgram() *Program {
	return &Program{
		Packages: make(map[string]*PackageInfo),
	}
}

// Lookup returns the declaration for a TypeID, or nil if not found.
func (p *Program) Lookup(id TypeID) *Declaration {
	for _, d := range p.Declarations {
		if d.ID == id {
			return d
		}
	}

	return nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Annotated types defined in this package
}
