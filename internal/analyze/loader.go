package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"measures-generator/internal/annotation"
	"measures-generator/internal/common"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/source"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects annotated declarations.
type Analyzer struct {
	program *Program
	// Dir is the working directory for package loading (empty = current).
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		program: NewProgram(),
	}
}

// LoadPackages loads the specified packages and collects their annotations.
// Patterns are standard Go package patterns (e.g., "./examples/si").
func (a *Analyzer) LoadPackages(patterns ...string) (*Program, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].PkgPath < pkgs[j].PkgPath })

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.program, nil
}

// Program returns the current program.
func (a *Analyzer) Program() *Program {
	return a.program
}

// processPackage extracts annotated declarations from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	for _, file := range pkg.Syntax {
		for _, decl := range a.processFile(pkg.Fset, pkg.PkgPath, file) {
			info.Types = append(info.Types, decl.ID)
		}
	}

	a.program.Packages[pkg.PkgPath] = info
}

// ParseFile parses a single Go source file belonging to pkgPath and collects
// its annotations. It is the entry point for tools and tests that work on
// source text rather than on packages.
func (a *Analyzer) ParseFile(pkgPath, filename, src string) error {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	info, ok := a.program.Packages[pkgPath]
	if !ok {
		info = &PackageInfo{Path: pkgPath, Name: file.Name.Name}
		a.program.Packages[pkgPath] = info
	}

	for _, decl := range a.processFile(fset, pkgPath, file) {
		info.Types = append(info.Types, decl.ID)
	}

	return nil
}

// processFile walks the type declarations of one file.
func (a *Analyzer) processFile(fset *token.FileSet, pkgPath string, file *ast.File) []*Declaration {
	opts := annotation.Options{
		Package: pkgPath,
		Imports: fileImports(file),
	}

	var found []*Declaration

	for _, d := range file.Decls {
		gen, ok := d.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || !ts.Name.IsExported() {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(gen.Specs) == 1 {
				doc = gen.Doc
			}

			if doc == nil {
				continue
			}

			decl := &Declaration{
				ID:   TypeID{PkgPath: pkgPath, Name: ts.Name.Name},
				Span: source.FromPositions(fset.Position(ts.Name.Pos()), fset.Position(ts.Name.End())),
			}
			decl.Annotations = a.parseDoc(fset, doc, opts, decl.ID)

			if len(decl.Annotations) == 0 {
				continue
			}

			a.program.Declarations = append(a.program.Declarations, decl)
			found = append(found, decl)
		}
	}

	return found
}

// parseDoc parses every annotation line of a doc comment. Only line
// comments are scanned.
func (a *Analyzer) parseDoc(fset *token.FileSet, doc *ast.CommentGroup, opts annotation.Options, owner TypeID) []*annotation.Instance {
	var out []*annotation.Instance

	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, "//") {
			continue
		}

		body := c.Text[2:]
		text := strings.TrimLeft(body, " \t")
		if !annotation.IsAnnotation(text) {
			continue
		}

		at := fset.Position(c.Pos())
		shift := 2 + len(body) - len(text)
		at.Offset += shift
		at.Column += shift

		inst, err := annotation.Parse(text, at, opts)
		if err != nil {
			end := at
			end.Offset += len(strings.TrimRight(text, " \t\r"))
			a.program.Diagnostics.Add(
				diagnostic.Errorf(diagnostic.CodeMalformedAnnotation, source.FromPositions(at, end), "%v", err).
					ForType(owner.Short()),
			)

			continue
		}

		out = append(out, inst)
	}

	return out
}

// fileImports maps import names to paths.
func fileImports(file *ast.File) map[string]string {
	imports := make(map[string]string, len(file.Imports))

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := common.PkgAlias(path)
		if spec.Name != nil {
			name = spec.Name.Name
		}

		if name == "_" || name == "." {
			continue
		}

		imports[name] = path
	}

	return imports
}
