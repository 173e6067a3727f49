package api

import (
	"fmt"

	"github.com/pmaojo/ontos/internal/domain"
)

// CreateOntologyRequest is the body for POST /api/ontologies.
type CreateOntologyRequest struct {
	IRI   string `json:"iri"   validate:"required"`
	Label string `json:"label"`
}

// ClassPayload carries a class definition over the wire.
type ClassPayload struct {
	IRI     string   `json:"iri"     validate:"required"`
	Label   string   `json:"label,omitempty"`
	Comment string   `json:"comment,omitempty"`
	Parents []string `json:"parents,omitempty"`
}

// PropertyPayload carries a property definition over the wire.
type PropertyPayload struct {
	IRI     string   `json:"iri"     validate:"required"`
	Label   string   `json:"label,omitempty"`
	Kind    string   `json:"kind"    validate:"required,oneof=object data"`
	Domains []string `json:"domains,omitempty"`
	Ranges  []string `json:"ranges,omitempty"`
}

// AssertionPayload is one property assertion on an individual. Exactly
// one of Individual or Literal must be set.
type AssertionPayload struct {
	Property   string `json:"property" validate:"required"`
	Individual string `json:"individual,omitempty"`
	Literal    string `json:"literal,omitempty"`
}

// IndividualPayload carries an individual definition over the wire.
type IndividualPayload struct {
	IRI        string             `json:"iri" validate:"required"`
	Types      []string           `json:"types,omitempty"`
	Assertions []AssertionPayload `json:"assertions,omitempty"`
}

// AttachClassRequest is the body for POST /api/ontologies/classes.
type AttachClassRequest struct {
	Ontology string       `json:"ontology" validate:"required"`
	Class    ClassPayload `json:"class"    validate:"required"`
}

// AttachPropertyRequest is the body for POST /api/ontologies/properties.
type AttachPropertyRequest struct {
	Ontology string          `json:"ontology" validate:"required"`
	Property PropertyPayload `json:"property" validate:"required"`
}

// AttachIndividualRequest is the body for POST /api/ontologies/individuals.
type AttachIndividualRequest struct {
	Ontology   string            `json:"ontology"   validate:"required"`
	Individual IndividualPayload `json:"individual" validate:"required"`
}

// OntologyResponse is the detail view of one ontology.
type OntologyResponse struct {
	IRI         string              `json:"iri"`
	Label       string              `json:"label,omitempty"`
	Classes     []ClassPayload      `json:"classes"`
	Properties  []PropertyPayload   `json:"properties"`
	Individuals []IndividualPayload `json:"individuals"`
}

// ClassQueryRequest is the body for the ancestors and descendants
// queries.
type ClassQueryRequest struct {
	Ontology string `json:"ontology" validate:"required"`
	Class    string `json:"class"    validate:"required"`
}

// RelatedQueryRequest is the body for the related individuals query.
type RelatedQueryRequest struct {
	Ontology   string `json:"ontology"   validate:"required"`
	Property   string `json:"property"   validate:"required"`
	Individual string `json:"individual" validate:"required"`
}

// PathQueryRequest is the body for the shortest path query.
type PathQueryRequest struct {
	Ontology string `json:"ontology" validate:"required"`
	Start    string `json:"start"    validate:"required"`
	End      string `json:"end"      validate:"required"`
}

// IRIListResponse is the result of a reasoning query returning a set of
// identifiers.
type IRIListResponse struct {
	Results []string `json:"results"`
}

// PathResponse is the result of a shortest path query. Found is false
// when no path connects the endpoints.
type PathResponse struct {
	Path  []string `json:"path"`
	Found bool     `json:"found"`
}

// KnowledgePrompt is the body for POST /api/knowledge.
type KnowledgePrompt struct {
	Ontology  string          `json:"ontology" validate:"required"`
	Prompt    string          `json:"prompt"   validate:"required"`
	Reasoning []ReasoningStep `json:"reasoning"`
}

// ReasoningStep is one step in a knowledge reasoning plan. The fields
// required depend on the step type.
type ReasoningStep struct {
	Type       string `json:"type" validate:"required,oneof=ancestors descendants related-individuals shortest-path"`
	Class      string `json:"class,omitempty"`
	Property   string `json:"property,omitempty"`
	Individual string `json:"individual,omitempty"`
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
}

// KnowledgeResponseBody is the result of a knowledge invocation.
type KnowledgeResponseBody struct {
	Message   string                 `json:"message"`
	Reasoning []ReasoningOutcomeView `json:"reasoning"`
}

// ReasoningOutcomeView is the serialized form of one reasoning outcome.
type ReasoningOutcomeView struct {
	Kind    string `json:"kind"`
	Summary string `json:"summary"`
}

func classFromPayload(payload ClassPayload) (*domain.Class, error) {
	id, err := parseIRIField(payload.IRI, "class")
	if err != nil {
		return nil, err
	}

	class := domain.NewClass(id)
	class.SetLabel(payload.Label)
	class.SetComment(payload.Comment)
	for _, parent := range payload.Parents {
		parentIRI, err := parseIRIField(parent, "parent")
		if err != nil {
			return nil, err
		}
		class.AddParent(parentIRI)
	}
	return class, nil
}

func classToPayload(class *domain.Class) ClassPayload {
	return ClassPayload{
		IRI:     class.ID().String(),
		Label:   class.Label(),
		Comment: class.Comment(),
		Parents: iriStrings(class.Parents()),
	}
}

func propertyFromPayload(payload PropertyPayload) (*domain.Property, error) {
	id, err := parseIRIField(payload.IRI, "property")
	if err != nil {
		return nil, err
	}

	var kind domain.PropertyKind
	switch payload.Kind {
	case "object":
		kind = domain.ObjectProperty
	case "data":
		kind = domain.DataProperty
	default:
		return nil, &badRequestError{message: fmt.Sprintf("unknown property kind %q", payload.Kind)}
	}

	property := domain.NewProperty(id, kind)
	property.SetLabel(payload.Label)
	for _, d := range payload.Domains {
		iri, err := parseIRIField(d, "domain")
		if err != nil {
			return nil, err
		}
		property.AddDomain(iri)
	}
	for _, r := range payload.Ranges {
		iri, err := parseIRIField(r, "range")
		if err != nil {
			return nil, err
		}
		property.AddRange(iri)
	}
	return property, nil
}

func propertyToPayload(property *domain.Property) PropertyPayload {
	return PropertyPayload{
		IRI:     property.ID().String(),
		Label:   property.Label(),
		Kind:    property.Kind().String(),
		Domains: iriStrings(property.Domains()),
		Ranges:  iriStrings(property.Ranges()),
	}
}

func individualFromPayload(payload IndividualPayload) (*domain.Individual, error) {
	id, err := parseIRIField(payload.IRI, "individual")
	if err != nil {
		return nil, err
	}

	individual := domain.NewIndividual(id)
	for _, class := range payload.Types {
		classIRI, err := parseIRIField(class, "type")
		if err != nil {
			return nil, err
		}
		individual.AssertType(classIRI)
	}
	for _, assertion := range payload.Assertions {
		propertyIRI, err := parseIRIField(assertion.Property, "property")
		if err != nil {
			return nil, err
		}
		switch {
		case assertion.Individual != "" && assertion.Literal != "":
			return nil, &badRequestError{message: "assertion carries both an individual and a literal"}
		case assertion.Individual != "":
			target, err := parseIRIField(assertion.Individual, "assertion target")
			if err != nil {
				return nil, err
			}
			individual.AddAssertion(propertyIRI, domain.IndividualAssertion{Target: target})
		case assertion.Literal != "":
			individual.AddAssertion(propertyIRI, domain.LiteralAssertion{Value: assertion.Literal})
		default:
			return nil, &badRequestError{message: "assertion requires an individual or a literal"}
		}
	}
	return individual, nil
}

func individualToPayload(individual *domain.Individual) IndividualPayload {
	payload := IndividualPayload{
		IRI:   individual.ID().String(),
		Types: iriStrings(individual.Types()),
	}
	for _, property := range individual.AssertedProperties() {
		for _, assertion := range individual.Assertions(property) {
			view := AssertionPayload{Property: property.String()}
			switch a := assertion.(type) {
			case domain.IndividualAssertion:
				view.Individual = a.Target.String()
			case domain.LiteralAssertion:
				view.Literal = a.Value
			}
			payload.Assertions = append(payload.Assertions, view)
		}
	}
	return payload
}

func ontologyToResponse(ontology *domain.Ontology) OntologyResponse {
	response := OntologyResponse{
		IRI:         ontology.ID().String(),
		Label:       ontology.Label(),
		Classes:     []ClassPayload{},
		Properties:  []PropertyPayload{},
		Individuals: []IndividualPayload{},
	}
	for _, class := range ontology.Classes() {
		response.Classes = append(response.Classes, classToPayload(class))
	}
	for _, property := range ontology.Properties() {
		response.Properties = append(response.Properties, propertyToPayload(property))
	}
	for _, individual := range ontology.Individuals() {
		response.Individuals = append(response.Individuals, individualToPayload(individual))
	}
	return response
}

func iriStrings(iris []domain.IRI) []string {
	if len(iris) == 0 {
		return nil
	}
	out := make([]string, len(iris))
	for i, iri := range iris {
		out[i] = iri.String()
	}
	return out
}
