package domain

import (
	"errors"
	"fmt"
)

// Validation errors raised by Ontology aggregate mutations.
var (
	// ErrDuplicateClass is returned when a class with the same IRI is
	// already part of the ontology.
	ErrDuplicateClass = errors.New("class already exists")

	// ErrDuplicateProperty is returned when a property with the same IRI
	// is already part of the ontology.
	ErrDuplicateProperty = errors.New("property already exists")

	// ErrDuplicateIndividual is returned when an individual with the same
	// IRI is already part of the ontology.
	ErrDuplicateIndividual = errors.New("individual already exists")

	// ErrMissingClass is returned when a mutation references a class the
	// ontology does not contain.
	ErrMissingClass = errors.New("class does not exist in ontology")

	// ErrMissingProperty is returned when a mutation references a property
	// the ontology does not contain.
	ErrMissingProperty = errors.New("property does not exist in ontology")

	// ErrInvalidAssertion is returned when a property assertion variant
	// does not match the kind of the property it is asserted under.
	ErrInvalidAssertion = errors.New("property assertion does not match property kind")
)

// OntologyError carries the identifiers involved in a rejected aggregate
// mutation alongside the sentinel describing the violation. It supports
// errors.Is against the sentinels above.
type OntologyError struct {
	// Ontology is the aggregate the mutation targeted.
	Ontology IRI
	// Entity is the identifier the violation concerns: the duplicate or
	// missing entity, or the property of a mismatched assertion.
	Entity IRI
	// Err is one of the sentinel validation errors.
	Err error
}

// Error implements the error interface.
func (e *OntologyError) Error() string {
	return fmt.Sprintf("ontology %s: %v: %s", e.Ontology, e.Err, e.Entity)
}

// Unwrap returns the sentinel validation error.
func (e *OntologyError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is any aggregate validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDuplicateClass) ||
		errors.Is(err, ErrDuplicateProperty) ||
		errors.Is(err, ErrDuplicateIndividual) ||
		errors.Is(err, ErrMissingClass) ||
		errors.Is(err, ErrMissingProperty) ||
		errors.Is(err, ErrInvalidAssertion)
}

// IsDuplicateError reports whether err signals an identifier collision
// within one of the aggregate collections.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateClass) ||
		errors.Is(err, ErrDuplicateProperty) ||
		errors.Is(err, ErrDuplicateIndividual)
}
