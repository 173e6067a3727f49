package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/pmaojo/ontos/internal/api/shared"
	"github.com/pmaojo/ontos/internal/domain"
	"github.com/pmaojo/ontos/internal/store"
)

// badRequestError marks malformed input detected while translating a
// request body into domain values.
type badRequestError struct {
	message string
}

func (e *badRequestError) Error() string {
	return e.message
}

// parseIRIField validates one IRI-valued request field, naming the
// field in the returned error.
func parseIRIField(value, field string) (domain.IRI, error) {
	iri, err := domain.NewIRI(value)
	if err != nil {
		return domain.IRI{}, &badRequestError{message: fmt.Sprintf("invalid %s IRI: %v", field, err)}
	}
	return iri, nil
}

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Clients never see the error types themselves.
func MapErrorToStatusCode(err error) int {
	var badRequest *badRequestError
	var invalidIRI *domain.InvalidIRIError

	switch {
	case errors.As(err, &badRequest), errors.As(err, &invalidIRI):
		return http.StatusBadRequest

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err), domain.IsDuplicateError(err):
		return http.StatusConflict

	case domain.IsValidationError(err), errors.Is(err, store.ErrNotObjectProperty):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for the error.
// Internal details stay in the logs.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var badRequest *badRequestError
	if errors.As(err, &badRequest) {
		return badRequest.message
	}
	var invalidIRI *domain.InvalidIRIError
	if errors.As(err, &invalidIRI) {
		return invalidIRI.Error()
	}

	switch {
	case errors.Is(err, store.ErrOntologyNotFound):
		return "Ontology not found"
	case errors.Is(err, store.ErrClassNotFound):
		return "Class not found"
	case errors.Is(err, store.ErrPropertyNotFound):
		return "Property not found"
	case errors.Is(err, store.ErrIndividualNotFound):
		return "Individual not found"
	case errors.Is(err, store.ErrOntologyExists):
		return "Ontology already exists"
	case domain.IsDuplicateError(err):
		return "Entity already exists in the ontology"
	case errors.Is(err, domain.ErrMissingClass):
		return "Referenced class does not exist in the ontology"
	case errors.Is(err, domain.ErrMissingProperty):
		return "Referenced property does not exist in the ontology"
	case errors.Is(err, domain.ErrInvalidAssertion):
		return "Assertion value does not match the property kind"
	case errors.Is(err, store.ErrNotObjectProperty):
		return "Property does not link individuals"
	default:
		return "An unexpected error occurred"
	}
}

// respondWithMappedError maps the error to a status code and safe
// message, then writes the error response.
func respondWithMappedError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
