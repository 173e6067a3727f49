package domain

import "maps"

// PropertyKind classifies the type of values a property can hold.
type PropertyKind int

const (
	// ObjectProperty links individuals to other individuals.
	ObjectProperty PropertyKind = iota
	// DataProperty captures literal values.
	DataProperty
)

// String returns the lowercase name of the property kind.
func (k PropertyKind) String() string {
	switch k {
	case ObjectProperty:
		return "object"
	case DataProperty:
		return "data"
	default:
		return "unknown"
	}
}

// Property is an ontology property definition. Domain and range sets name
// the classes the property applies to and draws values from; both must
// exist in the owning ontology before the property can be attached.
type Property struct {
	id      IRI
	label   string
	kind    PropertyKind
	domains map[IRI]struct{}
	ranges  map[IRI]struct{}
}

// NewProperty creates a property with the supplied identifier and kind.
func NewProperty(id IRI, kind PropertyKind) *Property {
	return &Property{
		id:      id,
		kind:    kind,
		domains: make(map[IRI]struct{}),
		ranges:  make(map[IRI]struct{}),
	}
}

// SetLabel sets a human readable label and returns the property for chaining.
func (p *Property) SetLabel(label string) *Property {
	p.label = label
	return p
}

// AddDomain declares that the property applies to the supplied class.
// It reports whether the class was not already registered.
func (p *Property) AddDomain(class IRI) bool {
	if _, ok := p.domains[class]; ok {
		return false
	}
	p.domains[class] = struct{}{}
	return true
}

// AddRange declares that the property produces values from the supplied
// class. It reports whether the class was not already registered.
func (p *Property) AddRange(class IRI) bool {
	if _, ok := p.ranges[class]; ok {
		return false
	}
	p.ranges[class] = struct{}{}
	return true
}

// ID returns the property identifier.
func (p *Property) ID() IRI {
	return p.id
}

// Label returns the optional label, empty when unset.
func (p *Property) Label() string {
	return p.label
}

// Kind returns the property kind.
func (p *Property) Kind() PropertyKind {
	return p.kind
}

// Domains returns the registered domain classes in lexical order.
func (p *Property) Domains() []IRI {
	return sortedIRIs(p.domains)
}

// Ranges returns the registered range classes in lexical order.
func (p *Property) Ranges() []IRI {
	return sortedIRIs(p.ranges)
}

// Clone returns a deep copy of the property.
func (p *Property) Clone() *Property {
	return &Property{
		id:      p.id,
		label:   p.label,
		kind:    p.kind,
		domains: maps.Clone(p.domains),
		ranges:  maps.Clone(p.ranges),
	}
}
