// Package domain contains the core ontology model: the IRI value object,
// the Class, Property and Individual entities, and the Ontology aggregate
// that owns them and enforces their referential invariants. It is the heart
// of the system and carries no infrastructure dependencies.
package domain
