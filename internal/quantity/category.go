package quantity

//go:generate go tool stringer -type=Category -linecomment -output=category_string.go

// Category is one of the mutually exclusive kinds a type may be declared as.
type Category int

const (
	CategoryUnit              Category = iota // unit
	CategoryScalar                            // scalar
	CategoryVector                            // vector
	CategoryVectorGroup                       // vector group
	CategoryVectorGroupMember                 // vector group member
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryUnit,
	CategoryScalar,
	CategoryVector,
	CategoryVectorGroup,
	CategoryVectorGroupMember,
}
