package annotation

import "go/ast"

func unparen(e ast.Expr) ast.Expr {
	for {
		p, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}

		e = p.X
	}
}

// UnwrapCasts strips parentheses and conversions to predeclared types.
func UnwrapCasts(e ast.Expr) ast.Expr {
	for {
		switch x := e.(type) {
		case *ast.ParenExpr:
			e = x.X
			continue

		case *ast.CallExpr:
			if fn, ok := x.Fun.(*ast.Ident); ok && basicTypes[fn.Name] && len(x.Args) == 1 {
				e = x.Args[0]
				continue
			}
		}

		return e
	}
}

// UnwrapTypeOf returns the type expression inside the (*T)(nil) and T{}
// forms, or e itself.
func UnwrapTypeOf(e ast.Expr) ast.Expr {
	switch x := e.(type) {
	case *ast.CallExpr:
		if star, ok := unparen(x.Fun).(*ast.StarExpr); ok && len(x.Args) == 1 {
			if id, ok := x.Args[0].(*ast.Ident); ok && id.Name == "nil" {
				return star.X
			}
		}

	case *ast.CompositeLit:
		switch x.Type.(type) {
		case *ast.Ident, *ast.SelectorExpr:
			if len(x.Elts) == 0 {
				return x.Type
			}
		}
	}

	return e
}

// Unwrap applies UnwrapCasts then UnwrapTypeOf.
func Unwrap(e ast.Expr) ast.Expr {
	return UnwrapTypeOf(UnwrapCasts(e))
}

// IsNil reports whether e is the literal nil, possibly parenthesized.
func IsNil(e ast.Expr) bool {
	id, ok := UnwrapCasts(e).(*ast.Ident)
	return ok && id.Name == "nil"
}

// Elements returns the elements of an array literal or inline initializer.
func Elements(e ast.Expr) ([]ast.Expr, bool) {
	lit, ok := e.(*ast.CompositeLit)
	if !ok {
		return nil, false
	}

	switch lit.Type.(type) {
	case nil, *ast.ArrayType:
		return lit.Elts, true
	}

	return nil, false
}
