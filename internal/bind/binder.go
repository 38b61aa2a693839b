package bind

import (
	"measures-generator/internal/annotation"
	"measures-generator/internal/source"
)

// constructorArg is the value bound to one positional parameter.
type constructorArg struct {
	param   string
	value   annotation.Value
	index   int  // index of the (first) syntactic argument
	located bool // false when nothing was written for the parameter
}

// Bind produces a raw definition from an annotation instance. It starts from
// newDefault(), records the annotation span, then applies the setter and
// locator of every positional and named argument the table knows about.
// The boolean is false only when the table requires an argument list and
// the instance has none.
func Bind[D Definition[D]](inst *annotation.Instance, table *Table[D], newDefault func() D) (D, bool) {
	var zero D
	if inst == nil {
		return zero, false
	}

	if !inst.HasArgumentList() && table.RequiresArguments() {
		return zero, false
	}

	def := newDefault().WithAnnotation(source.AnnotationSpan{Span: inst.Span, Name: inst.NameSpan})

	args := inst.Args
	if args == nil {
		return def, true
	}

	ctor, expanded, isExpanded := table.constructorArguments(args)
	for _, arg := range ctor {
		if arg.value.Kind == annotation.KindError {
			continue
		}

		f, ok := table.Field(arg.param)
		if !ok {
			continue
		}

		def = f.Set(def, arg.value)
		if arg.located && f.Locate != nil {
			def = f.Locate(def, args, arg.index)
		}
	}

	offset := len(ctor)
	if isExpanded {
		offset += expanded - 1
	}

	for j, named := range args.Named() {
		if named.Value.Kind == annotation.KindError {
			continue
		}

		f, ok := table.Field(named.Name)
		if !ok {
			continue
		}

		def = f.Set(def, named.Value)
		if f.Locate != nil {
			def = f.Locate(def, args, offset+j)
		}
	}

	return def, true
}

// constructorArguments maps positional arguments onto parameters. The last
// two results tell whether the variadic parameter received an expanded list
// of arguments, and how many it absorbed.
func (t *Table[D]) constructorArguments(args *annotation.ArgumentList) ([]constructorArg, int, bool) {
	positional := args.Positional()
	fixed := len(t.params)
	if t.variadic {
		fixed--
	}

	out := make([]constructorArg, 0, positional)

	for i := 0; i < positional && i < fixed; i++ {
		out = append(out, constructorArg{param: t.params[i], value: args.Arg(i).Value, index: i, located: true})
	}

	if !t.variadic {
		// Arguments beyond the known parameters have no descriptor.
		for i := fixed; i < positional; i++ {
			out = append(out, constructorArg{value: args.Arg(i).Value, index: i, located: true})
		}

		return out, 0, false
	}

	last := t.params[fixed]

	switch trailing := positional - fixed; {
	case trailing < 0:
		return out, 0, false

	case trailing == 0:
		// An omitted variadic parameter still binds, to an empty array.
		out = append(out, constructorArg{param: last, value: annotation.Value{Kind: annotation.KindArray}, index: fixed})
		return out, 0, true

	case trailing == 1 && isCollection(args.Arg(fixed).Value):
		out = append(out, constructorArg{param: last, value: args.Arg(fixed).Value, index: fixed, located: true})
		return out, 0, false

	default:
		elems := make([]annotation.Value, 0, trailing)
		for i := fixed; i < positional; i++ {
			elems = append(elems, args.Arg(i).Value)
		}

		out = append(out, constructorArg{
			param:   last,
			value:   annotation.Value{Kind: annotation.KindArray, Elems: elems},
			index:   fixed,
			located: true,
		})

		return out, trailing, true
	}
}

func isCollection(v annotation.Value) bool {
	return v.Kind == annotation.KindArray || v.Kind == annotation.KindNull
}
