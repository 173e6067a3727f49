// Package api exposes the ontology store and reasoner over HTTP using
// chi handlers with JSON bodies.
package api

import (
	"net/http"

	"github.com/pmaojo/ontos/internal/api/shared"
	"github.com/pmaojo/ontos/internal/domain"
	"github.com/pmaojo/ontos/internal/store"
)

// OntologyHandler serves the ontology CRUD and attach endpoints.
type OntologyHandler struct {
	repository store.OntologyRepository
}

// NewOntologyHandler creates a handler over the given repository.
func NewOntologyHandler(repository store.OntologyRepository) *OntologyHandler {
	return &OntologyHandler{repository: repository}
}

// CreateOntology handles POST /api/ontologies.
func (h *OntologyHandler) CreateOntology(w http.ResponseWriter, r *http.Request) {
	var req CreateOntologyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	iri, err := parseIRIField(req.IRI, "ontology")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	ontology := domain.NewOntology(iri)
	ontology.SetLabel(req.Label)
	if err := h.repository.Insert(r.Context(), ontology); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ontologyToResponse(ontology))
}

// ListOntologies handles GET /api/ontologies.
func (h *OntologyHandler) ListOntologies(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.repository.List(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summaries)
}

// GetOntology handles GET /api/ontologies/detail?iri=.
func (h *OntologyHandler) GetOntology(w http.ResponseWriter, r *http.Request) {
	iri, err := parseIRIField(r.URL.Query().Get("iri"), "ontology")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	ontology, err := h.repository.Get(r.Context(), iri)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ontologyToResponse(ontology))
}

// DeleteOntology handles DELETE /api/ontologies?iri=.
func (h *OntologyHandler) DeleteOntology(w http.ResponseWriter, r *http.Request) {
	iri, err := parseIRIField(r.URL.Query().Get("iri"), "ontology")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	if err := h.repository.Delete(r.Context(), iri); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AttachClass handles POST /api/ontologies/classes.
func (h *OntologyHandler) AttachClass(w http.ResponseWriter, r *http.Request) {
	var req AttachClassRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ontology, err := parseIRIField(req.Ontology, "ontology")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	class, err := classFromPayload(req.Class)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	if err := h.repository.AttachClass(r.Context(), ontology, class); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, classToPayload(class))
}

// AttachProperty handles POST /api/ontologies/properties.
func (h *OntologyHandler) AttachProperty(w http.ResponseWriter, r *http.Request) {
	var req AttachPropertyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ontology, err := parseIRIField(req.Ontology, "ontology")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	property, err := propertyFromPayload(req.Property)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	if err := h.repository.AttachProperty(r.Context(), ontology, property); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, propertyToPayload(property))
}

// AttachIndividual handles POST /api/ontologies/individuals.
func (h *OntologyHandler) AttachIndividual(w http.ResponseWriter, r *http.Request) {
	var req AttachIndividualRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	ontology, err := parseIRIField(req.Ontology, "ontology")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	individual, err := individualFromPayload(req.Individual)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	if err := h.repository.AttachIndividual(r.Context(), ontology, individual); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, individualToPayload(individual))
}
