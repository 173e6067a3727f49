package metrics

import (
	"context"

	"github.com/pmaojo/ontos/internal/domain"
	"github.com/pmaojo/ontos/internal/store"
)

// InstrumentedRepository decorates a store.OntologyRepository with
// operation counters.
type InstrumentedRepository struct {
	next    store.OntologyRepository
	metrics *Metrics
}

// InstrumentRepository wraps the given repository.
func InstrumentRepository(next store.OntologyRepository, m *Metrics) *InstrumentedRepository {
	return &InstrumentedRepository{next: next, metrics: m}
}

var _ store.OntologyRepository = (*InstrumentedRepository)(nil)

func (r *InstrumentedRepository) Insert(ctx context.Context, ontology *domain.Ontology) error {
	err := r.next.Insert(ctx, ontology)
	r.metrics.ObserveRepositoryOp("insert", err)
	return err
}

func (r *InstrumentedRepository) Update(ctx context.Context, ontology *domain.Ontology) error {
	err := r.next.Update(ctx, ontology)
	r.metrics.ObserveRepositoryOp("update", err)
	return err
}

func (r *InstrumentedRepository) Get(ctx context.Context, iri domain.IRI) (*domain.Ontology, error) {
	ontology, err := r.next.Get(ctx, iri)
	r.metrics.ObserveRepositoryOp("get", err)
	return ontology, err
}

func (r *InstrumentedRepository) Delete(ctx context.Context, iri domain.IRI) error {
	err := r.next.Delete(ctx, iri)
	r.metrics.ObserveRepositoryOp("delete", err)
	return err
}

func (r *InstrumentedRepository) List(ctx context.Context) ([]store.OntologySummary, error) {
	summaries, err := r.next.List(ctx)
	r.metrics.ObserveRepositoryOp("list", err)
	return summaries, err
}

func (r *InstrumentedRepository) AttachClass(ctx context.Context, ontology domain.IRI, class *domain.Class) error {
	err := r.next.AttachClass(ctx, ontology, class)
	r.metrics.ObserveRepositoryOp("attach_class", err)
	return err
}

func (r *InstrumentedRepository) AttachProperty(ctx context.Context, ontology domain.IRI, property *domain.Property) error {
	err := r.next.AttachProperty(ctx, ontology, property)
	r.metrics.ObserveRepositoryOp("attach_property", err)
	return err
}

func (r *InstrumentedRepository) AttachIndividual(ctx context.Context, ontology domain.IRI, individual *domain.Individual) error {
	err := r.next.AttachIndividual(ctx, ontology, individual)
	r.metrics.ObserveRepositoryOp("attach_individual", err)
	return err
}

// InstrumentedReasoner decorates a store.Reasoner with query counters.
type InstrumentedReasoner struct {
	next    store.Reasoner
	metrics *Metrics
}

// InstrumentReasoner wraps the given reasoner.
func InstrumentReasoner(next store.Reasoner, m *Metrics) *InstrumentedReasoner {
	return &InstrumentedReasoner{next: next, metrics: m}
}

var _ store.Reasoner = (*InstrumentedReasoner)(nil)

func (r *InstrumentedReasoner) AncestorsOf(ctx context.Context, ontology, class domain.IRI) ([]domain.IRI, error) {
	ancestors, err := r.next.AncestorsOf(ctx, ontology, class)
	r.metrics.ObserveReasonerQuery("ancestors", err)
	return ancestors, err
}

func (r *InstrumentedReasoner) DescendantsOf(ctx context.Context, ontology, class domain.IRI) ([]domain.IRI, error) {
	descendants, err := r.next.DescendantsOf(ctx, ontology, class)
	r.metrics.ObserveReasonerQuery("descendants", err)
	return descendants, err
}

func (r *InstrumentedReasoner) RelatedIndividuals(ctx context.Context, ontology, property, individual domain.IRI) ([]domain.IRI, error) {
	related, err := r.next.RelatedIndividuals(ctx, ontology, property, individual)
	r.metrics.ObserveReasonerQuery("related_individuals", err)
	return related, err
}

func (r *InstrumentedReasoner) ShortestPath(ctx context.Context, ontology, start, end domain.IRI) ([]domain.IRI, error) {
	path, err := r.next.ShortestPath(ctx, ontology, start, end)
	r.metrics.ObserveReasonerQuery("shortest_path", err)
	return path, err
}
