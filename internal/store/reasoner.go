package store

import (
	"context"

	"github.com/pmaojo/ontos/internal/domain"
)

// Reasoner is the read-only traversal port over stored ontologies.
//
// Every query observes the latest committed mutation and never a
// half-applied one. Implementations gate each query behind a feature
// toggle: when the toggle is off the query returns an empty result and a
// nil error, even for otherwise-valid input.
type Reasoner interface {
	// AncestorsOf returns the transitive closure of the parent relation
	// starting at the class's declared parents, sorted by identifier.
	// It returns ErrOntologyNotFound or ErrClassNotFound when either is
	// absent.
	AncestorsOf(ctx context.Context, ontology, class domain.IRI) ([]domain.IRI, error)

	// DescendantsOf returns only the direct children whose declared
	// parent set contains the class, sorted by identifier. This is a
	// single hop, deliberately asymmetric with AncestorsOf.
	DescendantsOf(ctx context.Context, ontology, class domain.IRI) ([]domain.IRI, error)

	// RelatedIndividuals returns the individuals the source individual
	// references under the given object property, sorted by identifier.
	// Literal assertions under the property are skipped. It returns
	// ErrNotObjectProperty when the property is a data property.
	RelatedIndividuals(ctx context.Context, ontology, property, individual domain.IRI) ([]domain.IRI, error)

	// ShortestPath returns a minimum-hop path between two individuals
	// over all object-property edges, inclusive of both endpoints, or nil
	// when no path exists. Both endpoints must exist.
	ShortestPath(ctx context.Context, ontology, start, end domain.IRI) ([]domain.IRI, error)
}
