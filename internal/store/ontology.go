package store

import (
	"context"

	"github.com/pmaojo/ontos/internal/domain"
)

// OntologySummary is the lightweight listing DTO: identifying metadata and
// collection counts, never the full aggregate.
type OntologySummary struct {
	IRI             domain.IRI `json:"iri"`
	Label           string     `json:"label,omitempty"`
	ClassCount      int        `json:"class_count"`
	PropertyCount   int        `json:"property_count"`
	IndividualCount int        `json:"individual_count"`
}

// NewOntologySummary derives a summary from an aggregate.
func NewOntologySummary(ontology *domain.Ontology) OntologySummary {
	return OntologySummary{
		IRI:             ontology.ID(),
		Label:           ontology.Label(),
		ClassCount:      ontology.ClassCount(),
		PropertyCount:   ontology.PropertyCount(),
		IndividualCount: ontology.IndividualCount(),
	}
}

// OntologyRepository is the persistence port for Ontology aggregates.
//
// Every mutation is atomic: a failed validation leaves the stored
// aggregate completely unchanged. Implementations serialize concurrent
// operations so a mutation is visible to every subsequent read.
type OntologyRepository interface {
	// Insert persists a brand new ontology. It returns ErrOntologyExists
	// when the identifier is already stored.
	Insert(ctx context.Context, ontology *domain.Ontology) error

	// Update replaces an existing stored aggregate. It returns
	// ErrOntologyNotFound when the identifier is unknown.
	Update(ctx context.Context, ontology *domain.Ontology) error

	// Get retrieves a snapshot of a stored ontology. The returned
	// aggregate is a deep copy owned by the caller. It returns
	// ErrOntologyNotFound when the identifier is unknown.
	Get(ctx context.Context, iri domain.IRI) (*domain.Ontology, error)

	// Delete removes an ontology and destroys all nested entities
	// atomically. It returns ErrOntologyNotFound when the identifier is
	// unknown.
	Delete(ctx context.Context, iri domain.IRI) error

	// List returns summaries for every stored ontology, ordered by
	// identifier.
	List(ctx context.Context) ([]OntologySummary, error)

	// AttachClass appends a class declaration to an existing ontology,
	// delegating validation to the aggregate.
	AttachClass(ctx context.Context, ontology domain.IRI, class *domain.Class) error

	// AttachProperty appends a property declaration to an existing
	// ontology, delegating validation to the aggregate.
	AttachProperty(ctx context.Context, ontology domain.IRI, property *domain.Property) error

	// AttachIndividual appends an individual to an existing ontology,
	// delegating validation to the aggregate.
	AttachIndividual(ctx context.Context, ontology domain.IRI, individual *domain.Individual) error
}
