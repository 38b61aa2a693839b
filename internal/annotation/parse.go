package annotation

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"unicode"

	"measures-generator/internal/source"
)

// Marker starts an annotation inside a comment line.
const Marker = "@"

// literalPrefix turns the argument text into a parseable composite literal.
const literalPrefix = "_{"

// Options control how type references inside arguments are qualified.
type Options struct {
	// Package is the import path of the declaring package; unqualified type
	// names are assumed to live there.
	Package string
	// Imports maps file-level import names to import paths.
	Imports map[string]string
}

// IsAnnotation reports whether a comment line (without the comment markers)
// holds an annotation.
func IsAnnotation(text string) bool {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, Marker) || len(text) == len(Marker) {
		return false
	}

	r := rune(text[len(Marker)])

	return unicode.IsLetter(r) || r == '_'
}

// Parse parses one annotation. text starts with the marker; at is the
// position of the marker in the enclosing file. Annotations occupy a single
// line.
func Parse(text string, at token.Position, opts Options) (*Instance, error) {
	text = strings.TrimRight(text, " \t\r\n")
	if !IsAnnotation(text) {
		return nil, fmt.Errorf("%q is not an annotation", text)
	}

	p := &lineParser{text: text, at: at, opts: opts}

	return p.parse()
}

type lineParser struct {
	text string
	at   token.Position
	opts Options
}

// span converts a byte range of the annotation line into a file span.
func (p *lineParser) span(from, to int) source.Span {
	return source.Span{
		File:   p.at.Filename,
		Line:   p.at.Line,
		Column: p.at.Column + from,
		Offset: p.at.Offset + from,
		End:    p.at.Offset + to,
	}
}

func (p *lineParser) parse() (*Instance, error) {
	nameEnd := len(Marker)
	for nameEnd < len(p.text) {
		r := rune(p.text[nameEnd])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}

		nameEnd++
	}

	inst := &Instance{
		Name:     p.text[len(Marker):nameEnd],
		Span:     p.span(0, len(p.text)),
		NameSpan: p.span(len(Marker), nameEnd),
	}

	rest := p.text[nameEnd:]
	trimmed := strings.TrimLeft(rest, " \t")
	if trimmed == "" {
		return inst, nil
	}

	if trimmed[0] != '(' || trimmed[len(trimmed)-1] != ')' {
		return nil, fmt.Errorf("annotation @%s: expected a parenthesized argument list", inst.Name)
	}

	open := nameEnd + (len(rest) - len(trimmed))
	innerStart := open + 1
	inner := p.text[innerStart : len(p.text)-1]

	args, positional, spanOf, err := p.parseArguments(inner, innerStart)
	if err != nil {
		return nil, fmt.Errorf("annotation @%s: %w", inst.Name, err)
	}

	inst.Args = NewArgumentList(args, positional, spanOf)

	return inst, nil
}

func (p *lineParser) parseArguments(inner string, innerStart int) ([]Argument, int, func(ast.Node) source.Span, error) {
	fset := token.NewFileSet()
	src := literalPrefix + inner + "}"

	expr, err := parser.ParseExprFrom(fset, "", src, 0)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("invalid arguments: %w", err)
	}

	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		return nil, 0, nil, errors.New("invalid arguments")
	}

	// Positions in src are shifted by the synthetic prefix.
	spanOf := func(n ast.Node) source.Span {
		from := fset.Position(n.Pos()).Offset - len(literalPrefix)
		to := fset.Position(n.End()).Offset - len(literalPrefix)

		return p.span(innerStart+from, innerStart+to)
	}

	var (
		args       []Argument
		positional int
		seenNamed  bool
	)

	for _, elt := range lit.Elts {
		if kv, ok := elt.(*ast.KeyValueExpr); ok {
			key, ok := kv.Key.(*ast.Ident)
			if !ok {
				return nil, 0, nil, errors.New("named argument must be an identifier")
			}

			seenNamed = true
			args = append(args, Argument{
				Name:  key.Name,
				Expr:  kv.Value,
				Value: p.eval(kv.Value),
				Span:  spanOf(kv.Value),
			})

			continue
		}

		if seenNamed {
			return nil, 0, nil, errors.New("positional argument after named argument")
		}

		positional++
		args = append(args, Argument{
			Expr:  elt,
			Value: p.eval(elt),
			Span:  spanOf(elt),
		})
	}

	return args, positional, spanOf, nil
}
