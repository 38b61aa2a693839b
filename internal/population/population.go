package population

import (
	"sort"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
)

// Population is the immutable index of one category.
type Population[D any] struct {
	category quantity.Category
	byID     map[analyze.TypeID]D
	order    []analyze.TypeID
}

// Identity extracts the type identity and declaration span of an item.
type Identity[D any] func(item D) (analyze.TypeID, source.Span)

// Build indexes items. The first item of every identity wins; later ones
// are reported as duplicate declarations.
func Build[D any](category quantity.Category, items []D, identity Identity[D]) (*Population[D], diagnostic.Diagnostics) {
	p := &Population[D]{
		category: category,
		byID:     make(map[analyze.TypeID]D, len(items)),
	}

	var diags diagnostic.Diagnostics

	for _, item := range items {
		id, span := identity(item)
		if _, exists := p.byID[id]; exists {
			diags.Add(diagnostic.Errorf(diagnostic.CodeDuplicateMarker, span,
				"%s is declared as a %s more than once", id.Short(), category).ForType(id.Short()))

			continue
		}

		p.byID[id] = item
		p.order = append(p.order, id)
	}

	sort.Slice(p.order, func(i, j int) bool {
		return p.order[i].String() < p.order[j].String()
	})

	return p, diags
}

// Category returns the category the population indexes.
func (p *Population[D]) Category() quantity.Category {
	return p.category
}

// Lookup returns the item declared as id.
func (p *Population[D]) Lookup(id analyze.TypeID) (D, bool) {
	if p == nil {
		var zero D
		return zero, false
	}

	d, ok := p.byID[id]

	return d, ok
}

// Contains reports whether id belongs to the population.
func (p *Population[D]) Contains(id analyze.TypeID) bool {
	_, ok := p.Lookup(id)
	return ok
}

// IDs returns every identity, sorted by package path and name.
func (p *Population[D]) IDs() []analyze.TypeID {
	if p == nil {
		return nil
	}

	return append([]analyze.TypeID{}, p.order...)
}

// All returns every item in the order of IDs.
func (p *Population[D]) All() []D {
	if p == nil {
		return nil
	}

	out := make([]D, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, p.byID[id])
	}

	return out
}

// Len returns the number of items.
func (p *Population[D]) Len() int {
	if p == nil {
		return 0
	}

	return len(p.order)
}
