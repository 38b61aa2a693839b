package population

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
)

// Set bundles the populations of the five categories.
type Set struct {
	Units        *Population[quantity.Unit]
	Scalars      *Population[quantity.Scalar]
	Vectors      *Population[quantity.Vector]
	VectorGroups *Population[quantity.VectorGroup]
	Members      *Population[quantity.VectorGroupMember]
}

// CategoriesOf returns every category id is declared as, in category order.
func (s *Set) CategoriesOf(id analyze.TypeID) []quantity.Category {
	var out []quantity.Category

	for _, c := range quantity.Categories {
		if s.Contains(c, id) {
			out = append(out, c)
		}
	}

	return out
}

// Contains reports whether id is declared in category c.
func (s *Set) Contains(c quantity.Category, id analyze.TypeID) bool {
	switch c {
	case quantity.CategoryUnit:
		return s.Units.Contains(id)
	case quantity.CategoryScalar:
		return s.Scalars.Contains(id)
	case quantity.CategoryVector:
		return s.Vectors.Contains(id)
	case quantity.CategoryVectorGroup:
		return s.VectorGroups.Contains(id)
	case quantity.CategoryVectorGroupMember:
		return s.Members.Contains(id)
	default:
		return false
	}
}

// MembersOf returns the members declared for group, in member population
// order.
func (s *Set) MembersOf(group analyze.TypeID) []quantity.VectorGroupMember {
	var out []quantity.VectorGroupMember

	for _, m := range s.Members.All() {
		if m.Group == group {
			out = append(out, m)
		}
	}

	return out
}

// UnitIdentity is the identity of a processed unit.
func UnitIdentity(u quantity.Unit) (analyze.TypeID, source.Span) { return u.ID, u.Span }

// ScalarIdentity is the identity of a processed scalar.
func ScalarIdentity(s quantity.Scalar) (analyze.TypeID, source.Span) { return s.ID, s.Span }

// VectorIdentity is the identity of a processed vector.
func VectorIdentity(v quantity.Vector) (analyze.TypeID, source.Span) { return v.ID, v.Span }

// VectorGroupIdentity is the identity of a processed vector group.
func VectorGroupIdentity(g quantity.VectorGroup) (analyze.TypeID, source.Span) { return g.ID, g.Span }

// MemberIdentity is the identity of a processed vector group member.
func MemberIdentity(m quantity.VectorGroupMember) (analyze.TypeID, source.Span) { return m.ID, m.Span }
