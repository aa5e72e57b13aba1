package lang

import (
	"github.com/mcgru/pink/internal/diagnostics"
	"github.com/mcgru/pink/internal/ordered"
)

// Structure is a named bundle of a domain (atom names), a reserved set
// (literal symbols) and an ordered list of definitions. Domain and
// Reserved must be disjoint.
type Structure struct {
	Name        string
	Domain      *ordered.Set
	Reserved    *ordered.Set
	Definitions []Definition
}

// NewStructure builds a Structure, rejecting any overlap between domain and
// reserved names.
func NewStructure(name string, domain, reserved *ordered.Set, defs []Definition) (*Structure, error) {
	if domain == nil {
		domain = ordered.NewSet()
	}
	if reserved == nil {
		reserved = ordered.NewSet()
	}
	for _, name := range domain.Members() {
		if reserved.Contains(name) {
			return nil, diagnostics.New(diagnostics.ErrDomainReservedOverlap, name)
		}
	}
	return &Structure{Name: name, Domain: domain, Reserved: reserved, Definitions: defs}, nil
}

// IntrinsicName is the well-known structure every Runtime carries.
const IntrinsicName = "intrinsic"

// Intrinsic builds the structure that is synthesised with no domain, no
// definitions, and the fixed reserved set every runtime starts with.
func Intrinsic() *Structure {
	s, err := NewStructure(IntrinsicName, ordered.NewSet(), ordered.NewSet("{", "}", ",", "(", ")", "="), nil)
	if err != nil {
		// The intrinsic reserved set never overlaps an empty domain.
		panic(err)
	}
	return s
}
