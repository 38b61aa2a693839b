package annotation

import (
	"go/ast"
	"go/token"
	"math"
	"strconv"
)

// basicTypes are the predeclared types whose single-argument calls are
// treated as conversions and unwrapped.
var basicTypes = map[string]bool{
	"bool": true, "string": true, "byte": true, "rune": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"float32": true, "float64": true,
}

func (p *lineParser) eval(e ast.Expr) Value {
	switch x := e.(type) {
	case *ast.BasicLit:
		return evalLiteral(x)

	case *ast.Ident:
		switch x.Name {
		case "true":
			return Value{Kind: KindConstant, Const: true}
		case "false":
			return Value{Kind: KindConstant, Const: false}
		case "nil":
			return Value{Kind: KindNull}
		}

		if basicTypes[x.Name] {
			return Value{Kind: KindType, Type: TypeName{Name: x.Name}}
		}

		return Value{Kind: KindType, Type: TypeName{PkgPath: p.opts.Package, Name: x.Name}}

	case *ast.SelectorExpr:
		if tn, ok := p.typeName(x); ok {
			return Value{Kind: KindType, Type: tn}
		}

	case *ast.ParenExpr:
		return p.eval(x.X)

	case *ast.UnaryExpr:
		return evalUnary(x.Op, p.eval(x.X))

	case *ast.CallExpr:
		return p.evalCall(x)

	case *ast.CompositeLit:
		return p.evalComposite(x)
	}

	return Value{Kind: KindError}
}

func (p *lineParser) typeName(e ast.Expr) (TypeName, bool) {
	switch x := e.(type) {
	case *ast.Ident:
		if basicTypes[x.Name] {
			return TypeName{Name: x.Name}, true
		}

		return TypeName{PkgPath: p.opts.Package, Name: x.Name}, true

	case *ast.SelectorExpr:
		pkg, ok := x.X.(*ast.Ident)
		if !ok {
			return TypeName{}, false
		}

		path := pkg.Name
		if imported, ok := p.opts.Imports[pkg.Name]; ok {
			path = imported
		}

		return TypeName{PkgPath: path, Name: x.Sel.Name}, true
	}

	return TypeName{}, false
}

func (p *lineParser) evalCall(call *ast.CallExpr) Value {
	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return Value{Kind: KindError}
	}

	// (*T)(nil) names T.
	if star, ok := unparen(call.Fun).(*ast.StarExpr); ok {
		if id, ok := call.Args[0].(*ast.Ident); ok && id.Name == "nil" {
			if tn, ok := p.typeName(star.X); ok {
				return Value{Kind: KindType, Type: tn}
			}
		}

		return Value{Kind: KindError}
	}

	fn, ok := call.Fun.(*ast.Ident)
	if !ok || !basicTypes[fn.Name] {
		return Value{Kind: KindError}
	}

	return convert(fn.Name, p.eval(call.Args[0]))
}

func (p *lineParser) evalComposite(lit *ast.CompositeLit) Value {
	switch t := lit.Type.(type) {
	case nil, *ast.ArrayType:
		elems := make([]Value, 0, len(lit.Elts))
		for _, elt := range lit.Elts {
			if _, ok := elt.(*ast.KeyValueExpr); ok {
				return Value{Kind: KindError}
			}

			elems = append(elems, p.eval(elt))
		}

		return Value{Kind: KindArray, Elems: elems}

	default:
		// T{} names T.
		if len(lit.Elts) == 0 {
			if tn, ok := p.typeName(t); ok {
				return Value{Kind: KindType, Type: tn}
			}
		}
	}

	return Value{Kind: KindError}
}

func evalLiteral(lit *ast.BasicLit) Value {
	switch lit.Kind {
	case token.INT:
		i, err := strconv.ParseInt(lit.Value, 0, 64)
		if err != nil {
			return Value{Kind: KindError}
		}

		return Value{Kind: KindConstant, Const: i}

	case token.FLOAT:
		f, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return Value{Kind: KindError}
		}

		return Value{Kind: KindConstant, Const: f}

	case token.STRING:
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			return Value{Kind: KindError}
		}

		return Value{Kind: KindConstant, Const: s}

	case token.CHAR:
		s, err := strconv.Unquote(lit.Value)
		if err != nil || len([]rune(s)) != 1 {
			return Value{Kind: KindError}
		}

		return Value{Kind: KindConstant, Const: int64([]rune(s)[0])}
	}

	return Value{Kind: KindError}
}

func evalUnary(op token.Token, v Value) Value {
	if v.Kind != KindConstant {
		return Value{Kind: KindError}
	}

	switch op {
	case token.ADD:
		switch v.Const.(type) {
		case int64, float64:
			return v
		}

	case token.SUB:
		switch c := v.Const.(type) {
		case int64:
			return Value{Kind: KindConstant, Const: -c}
		case float64:
			return Value{Kind: KindConstant, Const: -c}
		}

	case token.NOT:
		if b, ok := v.Const.(bool); ok {
			return Value{Kind: KindConstant, Const: !b}
		}
	}

	return Value{Kind: KindError}
}

// convert applies a conversion to a predeclared type.
func convert(typeName string, v Value) Value {
	if v.Kind != KindConstant {
		return Value{Kind: KindError}
	}

	switch typeName {
	case "float32", "float64":
		if f, ok := v.AsFloat(); ok {
			return Value{Kind: KindConstant, Const: f}
		}

	case "string":
		if s, ok := v.AsString(); ok {
			return Value{Kind: KindConstant, Const: s}
		}

	case "bool":
		if b, ok := v.AsBool(); ok {
			return Value{Kind: KindConstant, Const: b}
		}

	default:
		switch c := v.Const.(type) {
		case int64:
			return v
		case float64:
			if c == math.Trunc(c) && !math.IsInf(c, 0) {
				return Value{Kind: KindConstant, Const: int64(c)}
			}
		}
	}

	return Value{Kind: KindError}
}
