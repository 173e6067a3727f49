package api

import (
	"context"
	"net/http"

	"github.com/pmaojo/ontos/internal/api/shared"
	"github.com/pmaojo/ontos/internal/domain"
	"github.com/pmaojo/ontos/internal/store"
)

// ReasonerHandler serves the reasoning query endpoints.
type ReasonerHandler struct {
	reasoner store.Reasoner
}

// NewReasonerHandler creates a handler over the given reasoner.
func NewReasonerHandler(reasoner store.Reasoner) *ReasonerHandler {
	return &ReasonerHandler{reasoner: reasoner}
}

// Ancestors handles POST /api/reasoner/ancestors.
func (h *ReasonerHandler) Ancestors(w http.ResponseWriter, r *http.Request) {
	h.classQuery(w, r, h.reasoner.AncestorsOf)
}

// Descendants handles POST /api/reasoner/descendants.
func (h *ReasonerHandler) Descendants(w http.ResponseWriter, r *http.Request) {
	h.classQuery(w, r, h.reasoner.DescendantsOf)
}

func (h *ReasonerHandler) classQuery(
	w http.ResponseWriter,
	r *http.Request,
	query func(ctx context.Context, ontology, class domain.IRI) ([]domain.IRI, error),
) {
	var req ClassQueryRequest
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
	class, err := parseIRIField(req.Class, "class")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	results, err := query(r.Context(), ontology, class)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, IRIListResponse{Results: stringResults(results)})
}

// Related handles POST /api/reasoner/related.
func (h *ReasonerHandler) Related(w http.ResponseWriter, r *http.Request) {
	var req RelatedQueryRequest
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
	property, err := parseIRIField(req.Property, "property")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	individual, err := parseIRIField(req.Individual, "individual")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	results, err := h.reasoner.RelatedIndividuals(r.Context(), ontology, property, individual)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, IRIListResponse{Results: stringResults(results)})
}

// ShortestPath handles POST /api/reasoner/shortest-path.
func (h *ReasonerHandler) ShortestPath(w http.ResponseWriter, r *http.Request) {
	var req PathQueryRequest
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
	start, err := parseIRIField(req.Start, "start")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}
	end, err := parseIRIField(req.End, "end")
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	path, err := h.reasoner.ShortestPath(r.Context(), ontology, start, end)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PathResponse{
		Path:  stringResults(path),
		Found: path != nil,
	})
}

// stringResults renders a result set as strings, keeping empty results
// as an empty array rather than null.
func stringResults(iris []domain.IRI) []string {
	out := make([]string, 0, len(iris))
	for _, iri := range iris {
		out = append(out, iri.String())
	}
	return out
}
