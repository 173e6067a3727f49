package store

import (
	"errors"
	"fmt"

	"github.com/pmaojo/ontos/internal/domain"
)

// Common store errors shared by all adapter implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// Entity-specific "not found" errors.

	// ErrOntologyNotFound indicates the requested ontology does not exist.
	ErrOntologyNotFound = fmt.Errorf("%w: ontology", ErrNotFound)

	// ErrClassNotFound indicates the referenced class does not exist in
	// the target ontology.
	ErrClassNotFound = fmt.Errorf("%w: class", ErrNotFound)

	// ErrPropertyNotFound indicates the referenced property does not exist
	// in the target ontology.
	ErrPropertyNotFound = fmt.Errorf("%w: property", ErrNotFound)

	// ErrIndividualNotFound indicates the referenced individual does not
	// exist in the target ontology.
	ErrIndividualNotFound = fmt.Errorf("%w: individual", ErrNotFound)

	// Entity-specific "duplicate" errors.

	// ErrOntologyExists indicates an insert for an identifier that is
	// already stored.
	ErrOntologyExists = fmt.Errorf("%w: ontology", ErrDuplicate)

	// ErrNotObjectProperty is returned by reasoning queries that require
	// an object property but were handed a data property.
	ErrNotObjectProperty = errors.New("property is not an object property")
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// EntityError decorates a sentinel store error with the identifiers of the
// owning ontology and the entity the failure concerns. Missing-entity
// errors always carry both, per the error contract of the ports.
type EntityError struct {
	// Ontology is the identifier of the ontology the operation targeted.
	Ontology domain.IRI
	// Entity is the identifier of the missing or colliding entity. For
	// ontology-level failures it equals Ontology.
	Entity domain.IRI
	// Err is the sentinel store error.
	Err error
}

// Error implements the error interface.
func (e *EntityError) Error() string {
	if e.Entity == e.Ontology {
		return fmt.Sprintf("%v: %s", e.Err, e.Ontology)
	}
	return fmt.Sprintf("%v: %s in ontology %s", e.Err, e.Entity, e.Ontology)
}

// Unwrap returns the sentinel error to support errors.Is.
func (e *EntityError) Unwrap() error {
	return e.Err
}

// NewEntityError builds an EntityError over the given sentinel.
func NewEntityError(ontology, entity domain.IRI, err error) *EntityError {
	return &EntityError{Ontology: ontology, Entity: entity, Err: err}
}
