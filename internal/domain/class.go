package domain

import (
	"maps"
	"slices"
)

// Class is an ontology class definition capturing parent relationships and
// optional display metadata. Parents are held as a set of class IRIs; no
// cycle detection is performed when a parent is added.
type Class struct {
	id      IRI
	label   string
	comment string
	parents map[IRI]struct{}
}

// NewClass creates a class with the supplied identifier.
func NewClass(id IRI) *Class {
	return &Class{
		id:      id,
		parents: make(map[IRI]struct{}),
	}
}

// SetLabel sets a human friendly label and returns the class for chaining.
func (c *Class) SetLabel(label string) *Class {
	c.label = label
	return c
}

// SetComment sets a textual description and returns the class for chaining.
func (c *Class) SetComment(comment string) *Class {
	c.comment = comment
	return c
}

// AddParent records a parent class relation. It reports whether the parent
// was not already present.
func (c *Class) AddParent(parent IRI) bool {
	if _, ok := c.parents[parent]; ok {
		return false
	}
	c.parents[parent] = struct{}{}
	return true
}

// RemoveParent drops a parent class relation. It reports whether the parent
// was present.
func (c *Class) RemoveParent(parent IRI) bool {
	if _, ok := c.parents[parent]; !ok {
		return false
	}
	delete(c.parents, parent)
	return true
}

// ID returns the unique identifier of the class.
func (c *Class) ID() IRI {
	return c.id
}

// Label returns the optional label, empty when unset.
func (c *Class) Label() string {
	return c.label
}

// Comment returns the optional comment, empty when unset.
func (c *Class) Comment() string {
	return c.comment
}

// Parents returns the parent class identifiers in lexical order.
func (c *Class) Parents() []IRI {
	return sortedIRIs(c.parents)
}

// HasParent reports whether the supplied class is a declared direct parent.
func (c *Class) HasParent(parent IRI) bool {
	_, ok := c.parents[parent]
	return ok
}

// Clone returns a deep copy of the class.
func (c *Class) Clone() *Class {
	return &Class{
		id:      c.id,
		label:   c.label,
		comment: c.comment,
		parents: maps.Clone(c.parents),
	}
}

// sortedIRIs flattens a set of IRIs into a lexically ordered slice.
func sortedIRIs(set map[IRI]struct{}) []IRI {
	out := make([]IRI, 0, len(set))
	for iri := range set {
		out = append(out, iri)
	}
	slices.SortFunc(out, CompareIRIs)
	return out
}
