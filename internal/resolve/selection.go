package resolve

import (
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/suggest"
	"measures-generator/internal/validation"
)

// selection is the input of one include/exclude resolution.
type selection struct {
	// concept is "Units" or "Bases".
	concept string
	own     quantity.Selection
	// parent is the inherited selection; nil when nothing is inherited.
	parent []string
	// inherit reports whether parent applies.
	inherit bool
}

// selectNames computes the effective set of unit instance names. The
// result follows the declaration order of the unit.
func (t typeContext) selectNames(sel selection, unit *quantity.ResolvedUnit) ([]string, diagnostic.Diagnostics) {
	all := unit.InstanceNames()

	var diags diagnostic.Diagnostics

	include := t.known(sel.concept, sel.own.Include, all, &diags)
	exclude := t.known(sel.concept, sel.own.Exclude, all, &diags)

	if sel.own.Include != nil && sel.own.Exclude != nil {
		winner := "@Include" + sel.concept
		if t.policy.Inclusion == ExcludeWins {
			winner = "@Exclude" + sel.concept
		}

		diags.Add(t.warnf(diagnostic.CodeContradictoryDirective, sel.own.Exclude.Span, sel.concept,
			"both @Include%s and @Exclude%s are given; %s takes precedence", sel.concept, sel.concept, winner))
	}

	var own *validation.Names

	switch {
	case sel.own.Include != nil && (sel.own.Exclude == nil || t.policy.Inclusion == IncludeWins):
		own = &include
	case sel.own.Exclude != nil:
		rest := validation.NewNames()
		for _, name := range all {
			if !exclude.Contains(name) {
				rest = rest.With(name)
			}
		}

		own = &rest
	}

	var effective validation.Names

	switch {
	case sel.inherit && own == nil:
		effective = validation.NewNames(sel.parent...)
	case sel.inherit && t.policy.Stacking == Union:
		effective = *own
		for _, name := range sel.parent {
			effective = effective.With(name)
		}
	case sel.inherit:
		parent := validation.NewNames(sel.parent...)
		effective = validation.NewNames()

		for _, name := range own.Sorted() {
			if parent.Contains(name) {
				effective = effective.With(name)
			}
		}
	case own == nil:
		return all, diags
	default:
		effective = *own
	}

	out := make([]string, 0, effective.Len())
	for _, name := range all {
		if effective.Contains(name) {
			out = append(out, name)
		}
	}

	return out, diags
}

// known returns the names of list that are instances of the unit and
// reports the others.
func (t typeContext) known(concept string, list *quantity.UnitList, all []string, diags *diagnostic.Diagnostics) validation.Names {
	names := validation.NewNames()
	if list == nil {
		return names
	}

	instances := validation.NewNames(all...)

	for i, name := range list.Names {
		if instances.Contains(name) {
			names = names.With(name)
			continue
		}

		span := list.Span
		if i < len(list.Spans) && !list.Spans[i].IsZero() {
			span = list.Spans[i]
		}

		diags.Add(t.errorf(diagnostic.CodeUnknownUnitInstance, span, concept,
			"unit instance %q is not declared", name).WithSuggestions(suggest.Closest(name, all)...))
	}

	return names
}
