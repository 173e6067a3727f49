package domain

import (
	"maps"
	"slices"
)

// Assertion is a property assertion attached to an individual. It is a
// closed sum: the only implementations are IndividualAssertion and
// LiteralAssertion, dispatched by type switch.
type Assertion interface {
	isAssertion()
}

// IndividualAssertion targets another individual; it is only valid on
// properties of kind ObjectProperty.
type IndividualAssertion struct {
	Target IRI
}

func (IndividualAssertion) isAssertion() {}

// LiteralAssertion stores a literal value; it is only valid on properties
// of kind DataProperty.
type LiteralAssertion struct {
	Value string
}

func (LiteralAssertion) isAssertion() {}

// Individual is an ontology individual carrying class memberships and an
// ordered list of property assertions per property.
type Individual struct {
	id         IRI
	types      map[IRI]struct{}
	assertions map[IRI][]Assertion
}

// NewIndividual creates an individual with the supplied identifier.
func NewIndividual(id IRI) *Individual {
	return &Individual{
		id:         id,
		types:      make(map[IRI]struct{}),
		assertions: make(map[IRI][]Assertion),
	}
}

// AssertType declares that the individual is an instance of the given
// class. It reports whether the type was not already asserted.
func (i *Individual) AssertType(class IRI) bool {
	if _, ok := i.types[class]; ok {
		return false
	}
	i.types[class] = struct{}{}
	return true
}

// AddAssertion appends a property assertion under the given property,
// preserving insertion order.
func (i *Individual) AddAssertion(property IRI, assertion Assertion) {
	i.assertions[property] = append(i.assertions[property], assertion)
}

// ID returns the identifier of the individual.
func (i *Individual) ID() IRI {
	return i.id
}

// Types returns the asserted class identifiers in lexical order.
func (i *Individual) Types() []IRI {
	return sortedIRIs(i.types)
}

// AssertedProperties returns the identifiers of all properties with at
// least one assertion, in lexical order.
func (i *Individual) AssertedProperties() []IRI {
	out := make([]IRI, 0, len(i.assertions))
	for iri := range i.assertions {
		out = append(out, iri)
	}
	slices.SortFunc(out, CompareIRIs)
	return out
}

// Assertions returns the assertions recorded under the given property in
// insertion order, or nil when the property carries none.
func (i *Individual) Assertions(property IRI) []Assertion {
	return slices.Clone(i.assertions[property])
}

// Clone returns a deep copy of the individual.
func (i *Individual) Clone() *Individual {
	assertions := make(map[IRI][]Assertion, len(i.assertions))
	for property, list := range i.assertions {
		assertions[property] = slices.Clone(list)
	}
	return &Individual{
		id:         i.id,
		types:      maps.Clone(i.types),
		assertions: assertions,
	}
}
