package api

import (
	"fmt"
	"net/http"

	"github.com/pmaojo/ontos/internal/api/shared"
	"github.com/pmaojo/ontos/internal/service/knowledge"
	"github.com/pmaojo/ontos/internal/store"
)

// KnowledgeHandler serves the knowledge synthesis endpoint. A nil
// assistant disables the endpoint.
type KnowledgeHandler struct {
	reasoner  store.Reasoner
	assistant knowledge.Assistant
}

// NewKnowledgeHandler creates a handler over the given reasoner and
// assistant.
func NewKnowledgeHandler(reasoner store.Reasoner, assistant knowledge.Assistant) *KnowledgeHandler {
	return &KnowledgeHandler{reasoner: reasoner, assistant: assistant}
}

// Invoke handles POST /api/knowledge.
func (h *KnowledgeHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	if h.assistant == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "knowledge assistant is not configured")
		return
	}

	var req KnowledgePrompt
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
	plan, err := buildPlan(req.Reasoning)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	orchestrator := knowledge.NewOrchestrator(h.reasoner, h.assistant)
	synthesis, err := orchestrator.Run(r.Context(), ontology, req.Prompt, plan)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	body := KnowledgeResponseBody{
		Message:   synthesis.Message,
		Reasoning: make([]ReasoningOutcomeView, 0, len(synthesis.Inferences)),
	}
	for _, outcome := range synthesis.Inferences {
		body.Reasoning = append(body.Reasoning, ReasoningOutcomeView{
			Kind:    outcome.Kind(),
			Summary: outcome.Describe(),
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, body)
}

// buildPlan translates reasoning steps into commands, validating the
// per-type required fields.
func buildPlan(steps []ReasoningStep) ([]knowledge.Command, error) {
	plan := make([]knowledge.Command, 0, len(steps))
	for _, step := range steps {
		switch step.Type {
		case "ancestors":
			class, err := parseIRIField(step.Class, "class")
			if err != nil {
				return nil, err
			}
			plan = append(plan, knowledge.AncestorsCommand{Class: class})
		case "descendants":
			class, err := parseIRIField(step.Class, "class")
			if err != nil {
				return nil, err
			}
			plan = append(plan, knowledge.DescendantsCommand{Class: class})
		case "related-individuals":
			property, err := parseIRIField(step.Property, "property")
			if err != nil {
				return nil, err
			}
			individual, err := parseIRIField(step.Individual, "individual")
			if err != nil {
				return nil, err
			}
			plan = append(plan, knowledge.RelatedIndividualsCommand{
				Property:   property,
				Individual: individual,
			})
		case "shortest-path":
			start, err := parseIRIField(step.Start, "start")
			if err != nil {
				return nil, err
			}
			end, err := parseIRIField(step.End, "end")
			if err != nil {
				return nil, err
			}
			plan = append(plan, knowledge.ShortestPathCommand{Start: start, End: end})
		default:
			return nil, &badRequestError{message: fmt.Sprintf("unknown reasoning step type %q", step.Type)}
		}
	}
	return plan, nil
}
