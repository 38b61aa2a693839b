package resolve

import "fmt"

// Inclusion decides which directive is honored when a type both includes
// and excludes unit instances for the same concept.
type Inclusion string

const (
	// IncludeWins keeps the include list and ignores the exclude list.
	IncludeWins Inclusion = "include"
	// ExcludeWins keeps every instance except the excluded ones.
	ExcludeWins Inclusion = "exclude"
)

// Stacking decides how a specialized type's own selection combines with
// the selection inherited from its original.
type Stacking string

const (
	// Intersection narrows the inherited selection.
	Intersection Stacking = "intersection"
	// Union widens the inherited selection.
	Union Stacking = "union"
)

// Policy configures the choices the annotations leave open.
type Policy struct {
	Inclusion Inclusion
	Stacking  Stacking
}

// DefaultPolicy returns the default policy: include wins, intersection
// stacking.
func DefaultPolicy() Policy {
	return Policy{
		Inclusion: IncludeWins,
		Stacking:  Intersection,
	}
}

// Validate reports unknown policy values.
func (p Policy) Validate() error {
	switch p.Inclusion {
	case IncludeWins, ExcludeWins:
	default:
		return fmt.Errorf("unknown inclusion precedence %q (want %q or %q)", p.Inclusion, IncludeWins, ExcludeWins)
	}

	switch p.Stacking {
	case Intersection, Union:
	default:
		return fmt.Errorf("unknown stacking mode %q (want %q or %q)", p.Stacking, Intersection, Union)
	}

	return nil
}
