package memstore

import (
	"context"
	"slices"

	"github.com/pmaojo/ontos/internal/domain"
	"github.com/pmaojo/ontos/internal/store"
)

// Repository implements store.OntologyRepository over a shared Store.
// Each operation holds the store lock for its full duration, so every
// mutation is atomic and totally ordered with respect to reasoning
// queries on the same store.
type Repository struct {
	store *Store
}

// NewRepository creates a repository adapter over the given store.
func NewRepository(s *Store) *Repository {
	return &Repository{store: s}
}

var _ store.OntologyRepository = (*Repository)(nil)

// Insert persists a brand new ontology, rejecting duplicate identifiers.
func (r *Repository) Insert(_ context.Context, ontology *domain.Ontology) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := ontology.ID()
	if _, ok := r.store.ontologies[id]; ok {
		return store.NewEntityError(id, id, store.ErrOntologyExists)
	}
	r.store.ontologies[id] = ontology.Clone()
	return nil
}

// Update replaces an existing stored aggregate.
func (r *Repository) Update(_ context.Context, ontology *domain.Ontology) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := ontology.ID()
	if _, ok := r.store.ontologies[id]; !ok {
		return store.NewEntityError(id, id, store.ErrOntologyNotFound)
	}
	r.store.ontologies[id] = ontology.Clone()
	return nil
}

// Get retrieves a deep-copy snapshot of a stored ontology.
func (r *Repository) Get(_ context.Context, iri domain.IRI) (*domain.Ontology, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ontology, ok := r.store.ontologies[iri]
	if !ok {
		return nil, store.NewEntityError(iri, iri, store.ErrOntologyNotFound)
	}
	return ontology.Clone(), nil
}

// Delete removes an ontology and all nested entities atomically.
func (r *Repository) Delete(_ context.Context, iri domain.IRI) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.ontologies[iri]; !ok {
		return store.NewEntityError(iri, iri, store.ErrOntologyNotFound)
	}
	delete(r.store.ontologies, iri)
	return nil
}

// List returns summaries for every stored ontology, ordered by identifier.
func (r *Repository) List(_ context.Context) ([]store.OntologySummary, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	summaries := make([]store.OntologySummary, 0, len(r.store.ontologies))
	for _, ontology := range r.store.ontologies {
		summaries = append(summaries, store.NewOntologySummary(ontology))
	}
	slices.SortFunc(summaries, func(a, b store.OntologySummary) int {
		return domain.CompareIRIs(a.IRI, b.IRI)
	})
	return summaries, nil
}

// AttachClass appends a class declaration to an existing ontology. The
// aggregate validates before committing, so a rejected attach leaves the
// stored ontology untouched.
func (r *Repository) AttachClass(_ context.Context, ontology domain.IRI, class *domain.Class) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.ontologies[ontology]
	if !ok {
		return store.NewEntityError(ontology, ontology, store.ErrOntologyNotFound)
	}
	return existing.AddClass(class)
}

// AttachProperty appends a property declaration to an existing ontology.
func (r *Repository) AttachProperty(_ context.Context, ontology domain.IRI, property *domain.Property) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.ontologies[ontology]
	if !ok {
		return store.NewEntityError(ontology, ontology, store.ErrOntologyNotFound)
	}
	return existing.AddProperty(property)
}

// AttachIndividual appends an individual to an existing ontology.
func (r *Repository) AttachIndividual(_ context.Context, ontology domain.IRI, individual *domain.Individual) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.ontologies[ontology]
	if !ok {
		return store.NewEntityError(ontology, ontology, store.ErrOntologyNotFound)
	}
	return existing.AddIndividual(individual)
}
