package domain

import "slices"

// Ontology is the aggregate root owning classes, properties and
// individuals. All mutations go through the Add* methods, which enforce
// the referential invariants before committing; a rejected mutation leaves
// the aggregate unchanged. Entities returned by the read accessors remain
// owned by the aggregate and must not be modified by callers.
type Ontology struct {
	id          IRI
	label       string
	classes     map[IRI]*Class
	properties  map[IRI]*Property
	individuals map[IRI]*Individual
}

// NewOntology creates an empty ontology aggregate with the supplied
// identifier.
func NewOntology(id IRI) *Ontology {
	return &Ontology{
		id:          id,
		classes:     make(map[IRI]*Class),
		properties:  make(map[IRI]*Property),
		individuals: make(map[IRI]*Individual),
	}
}

// SetLabel sets a human readable label and returns the ontology for
// chaining.
func (o *Ontology) SetLabel(label string) *Ontology {
	o.label = label
	return o
}

// ID returns the ontology identifier.
func (o *Ontology) ID() IRI {
	return o.id
}

// Label returns the optional label, empty when unset.
func (o *Ontology) Label() string {
	return o.label
}

// AddClass adds a class to the ontology, enforcing unique identifiers.
// The aggregate stores its own copy of the class.
func (o *Ontology) AddClass(class *Class) error {
	id := class.ID()
	if _, ok := o.classes[id]; ok {
		return &OntologyError{Ontology: o.id, Entity: id, Err: ErrDuplicateClass}
	}
	o.classes[id] = class.Clone()
	return nil
}

// AddProperty adds a property to the ontology after checking that every
// declared domain and range class already exists. The first missing
// reference rejects the mutation.
func (o *Ontology) AddProperty(property *Property) error {
	id := property.ID()
	if _, ok := o.properties[id]; ok {
		return &OntologyError{Ontology: o.id, Entity: id, Err: ErrDuplicateProperty}
	}

	for _, class := range property.Domains() {
		if _, ok := o.classes[class]; !ok {
			return &OntologyError{Ontology: o.id, Entity: class, Err: ErrMissingClass}
		}
	}
	for _, class := range property.Ranges() {
		if _, ok := o.classes[class]; !ok {
			return &OntologyError{Ontology: o.id, Entity: class, Err: ErrMissingClass}
		}
	}

	o.properties[id] = property.Clone()
	return nil
}

// AddIndividual adds an individual after validating its type references
// and every property assertion: the property must exist and the assertion
// variant must match the property kind. Validation runs before anything is
// committed, so a rejected individual leaves no partial entry behind.
func (o *Ontology) AddIndividual(individual *Individual) error {
	id := individual.ID()
	if _, ok := o.individuals[id]; ok {
		return &OntologyError{Ontology: o.id, Entity: id, Err: ErrDuplicateIndividual}
	}

	for _, class := range individual.Types() {
		if _, ok := o.classes[class]; !ok {
			return &OntologyError{Ontology: o.id, Entity: class, Err: ErrMissingClass}
		}
	}

	for _, propertyID := range individual.AssertedProperties() {
		property, ok := o.properties[propertyID]
		if !ok {
			return &OntologyError{Ontology: o.id, Entity: propertyID, Err: ErrMissingProperty}
		}
		for _, assertion := range individual.Assertions(propertyID) {
			if !assertionMatchesKind(assertion, property.Kind()) {
				return &OntologyError{Ontology: o.id, Entity: propertyID, Err: ErrInvalidAssertion}
			}
		}
	}

	o.individuals[id] = individual.Clone()
	return nil
}

// assertionMatchesKind pairs assertion variants with property kinds:
// Object properties take individual references, Data properties take
// literals.
func assertionMatchesKind(assertion Assertion, kind PropertyKind) bool {
	switch assertion.(type) {
	case IndividualAssertion:
		return kind == ObjectProperty
	case LiteralAssertion:
		return kind == DataProperty
	default:
		return false
	}
}

// Class retrieves a class by identifier, nil when absent.
func (o *Ontology) Class(id IRI) *Class {
	return o.classes[id]
}

// Property retrieves a property by identifier, nil when absent.
func (o *Ontology) Property(id IRI) *Property {
	return o.properties[id]
}

// Individual retrieves an individual by identifier, nil when absent.
func (o *Ontology) Individual(id IRI) *Individual {
	return o.individuals[id]
}

// Classes returns all classes ordered by identifier.
func (o *Ontology) Classes() []*Class {
	out := make([]*Class, 0, len(o.classes))
	for _, class := range o.classes {
		out = append(out, class)
	}
	slices.SortFunc(out, func(a, b *Class) int { return CompareIRIs(a.ID(), b.ID()) })
	return out
}

// Properties returns all properties ordered by identifier.
func (o *Ontology) Properties() []*Property {
	out := make([]*Property, 0, len(o.properties))
	for _, property := range o.properties {
		out = append(out, property)
	}
	slices.SortFunc(out, func(a, b *Property) int { return CompareIRIs(a.ID(), b.ID()) })
	return out
}

// Individuals returns all individuals ordered by identifier.
func (o *Ontology) Individuals() []*Individual {
	out := make([]*Individual, 0, len(o.individuals))
	for _, individual := range o.individuals {
		out = append(out, individual)
	}
	slices.SortFunc(out, func(a, b *Individual) int { return CompareIRIs(a.ID(), b.ID()) })
	return out
}

// ClassCount returns the number of class declarations.
func (o *Ontology) ClassCount() int { return len(o.classes) }

// PropertyCount returns the number of property declarations.
func (o *Ontology) PropertyCount() int { return len(o.properties) }

// IndividualCount returns the number of individuals.
func (o *Ontology) IndividualCount() int { return len(o.individuals) }

// Clone returns a deep copy of the aggregate and every nested entity.
func (o *Ontology) Clone() *Ontology {
	clone := &Ontology{
		id:          o.id,
		label:       o.label,
		classes:     make(map[IRI]*Class, len(o.classes)),
		properties:  make(map[IRI]*Property, len(o.properties)),
		individuals: make(map[IRI]*Individual, len(o.individuals)),
	}
	for id, class := range o.classes {
		clone.classes[id] = class.Clone()
	}
	for id, property := range o.properties {
		clone.properties[id] = property.Clone()
	}
	for id, individual := range o.individuals {
		clone.individuals[id] = individual.Clone()
	}
	return clone
}
