package memstore

import (
	"context"
	"slices"

	"github.com/pmaojo/ontos/internal/config"
	"github.com/pmaojo/ontos/internal/domain"
	"github.com/pmaojo/ontos/internal/store"
)

// Reasoner implements store.Reasoner over a shared Store. Queries are
// synchronous CPU-bound traversals executed under the store lock, reading
// the same map the repository mutates, so every query observes the latest
// committed mutation.
//
// Each query checks its inference toggle before touching the store: a
// disabled toggle yields an empty result and a nil error regardless of
// the input. That is a configuration contract, not an optimization.
type Reasoner struct {
	store     *Store
	inference config.InferenceConfig
}

// NewReasoner creates a reasoner adapter over the given store with the
// supplied inference toggles.
func NewReasoner(s *Store, inference config.InferenceConfig) *Reasoner {
	return &Reasoner{store: s, inference: inference}
}

var _ store.Reasoner = (*Reasoner)(nil)

// AncestorsOf computes the transitive closure of the parent relation
// starting at the class's declared parents. The worklist traversal tracks
// visited identifiers, so it terminates even on a malformed cyclic
// hierarchy. The result is sorted by identifier.
func (r *Reasoner) AncestorsOf(_ context.Context, ontology, class domain.IRI) ([]domain.IRI, error) {
	if !r.inference.ClassHierarchy {
		return []domain.IRI{}, nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.ontologies[ontology]
	if !ok {
		return nil, store.NewEntityError(ontology, ontology, store.ErrOntologyNotFound)
	}
	start := stored.Class(class)
	if start == nil {
		return nil, store.NewEntityError(ontology, class, store.ErrClassNotFound)
	}

	visited := make(map[domain.IRI]struct{})
	queue := start.Parents()
	ancestors := make([]domain.IRI, 0, len(queue))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}
		ancestors = append(ancestors, current)
		if parent := stored.Class(current); parent != nil {
			queue = append(queue, parent.Parents()...)
		}
	}

	slices.SortFunc(ancestors, domain.CompareIRIs)
	return ancestors, nil
}

// DescendantsOf returns only the direct children whose declared parent
// set contains the class, sorted by identifier. The single-hop semantics
// are deliberate and asymmetric with AncestorsOf.
func (r *Reasoner) DescendantsOf(_ context.Context, ontology, class domain.IRI) ([]domain.IRI, error) {
	if !r.inference.ClassHierarchy {
		return []domain.IRI{}, nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.ontologies[ontology]
	if !ok {
		return nil, store.NewEntityError(ontology, ontology, store.ErrOntologyNotFound)
	}
	if stored.Class(class) == nil {
		return nil, store.NewEntityError(ontology, class, store.ErrClassNotFound)
	}

	descendants := make([]domain.IRI, 0)
	for _, candidate := range stored.Classes() {
		if candidate.HasParent(class) {
			descendants = append(descendants, candidate.ID())
		}
	}
	return descendants, nil
}

// RelatedIndividuals returns the individual-valued assertion targets the
// source individual holds under the given object property, deduplicated
// and sorted by identifier. Literal assertions under the same property
// are skipped, not errors.
func (r *Reasoner) RelatedIndividuals(_ context.Context, ontology, property, individual domain.IRI) ([]domain.IRI, error) {
	if !r.inference.PropertyAssertions {
		return []domain.IRI{}, nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.ontologies[ontology]
	if !ok {
		return nil, store.NewEntityError(ontology, ontology, store.ErrOntologyNotFound)
	}
	prop := stored.Property(property)
	if prop == nil {
		return nil, store.NewEntityError(ontology, property, store.ErrPropertyNotFound)
	}
	if prop.Kind() != domain.ObjectProperty {
		return nil, store.NewEntityError(ontology, property, store.ErrNotObjectProperty)
	}
	source := stored.Individual(individual)
	if source == nil {
		return nil, store.NewEntityError(ontology, individual, store.ErrIndividualNotFound)
	}

	seen := make(map[domain.IRI]struct{})
	related := make([]domain.IRI, 0)
	for _, assertion := range source.Assertions(property) {
		target, ok := assertion.(domain.IndividualAssertion)
		if !ok {
			continue
		}
		if _, dup := seen[target.Target]; dup {
			continue
		}
		seen[target.Target] = struct{}{}
		related = append(related, target.Target)
	}

	slices.SortFunc(related, domain.CompareIRIs)
	return related, nil
}

// ShortestPath runs a breadth-first search over the individuals graph,
// where an edge exists for every object-property assertion from one
// individual to another. BFS guarantees a minimum-hop path; ties resolve
// to the path found first under identifier-sorted edge expansion. The
// returned path includes both endpoints; nil means unreachable.
func (r *Reasoner) ShortestPath(_ context.Context, ontology, start, end domain.IRI) ([]domain.IRI, error) {
	if !r.inference.PropertyPaths {
		return nil, nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.ontologies[ontology]
	if !ok {
		return nil, store.NewEntityError(ontology, ontology, store.ErrOntologyNotFound)
	}
	if stored.Individual(start) == nil {
		return nil, store.NewEntityError(ontology, start, store.ErrIndividualNotFound)
	}
	if stored.Individual(end) == nil {
		return nil, store.NewEntityError(ontology, end, store.ErrIndividualNotFound)
	}

	type step struct {
		current domain.IRI
		path    []domain.IRI
	}

	visited := map[domain.IRI]struct{}{start: {}}
	queue := []step{{current: start, path: []domain.IRI{start}}}

	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]

		if head.current == end {
			return head.path, nil
		}

		source := stored.Individual(head.current)
		if source == nil {
			continue
		}
		for _, target := range objectTargets(stored, source) {
			if _, seen := visited[target]; seen {
				continue
			}
			visited[target] = struct{}{}
			next := make([]domain.IRI, len(head.path), len(head.path)+1)
			copy(next, head.path)
			queue = append(queue, step{current: target, path: append(next, target)})
		}
	}

	return nil, nil
}

// objectTargets collects the neighbors reachable from an individual over
// every object property, in identifier-sorted expansion order: properties
// sorted lexically, targets sorted within each property.
func objectTargets(ontology *domain.Ontology, source *domain.Individual) []domain.IRI {
	targets := make([]domain.IRI, 0)
	for _, propertyID := range source.AssertedProperties() {
		property := ontology.Property(propertyID)
		if property == nil || property.Kind() != domain.ObjectProperty {
			continue
		}
		hop := make([]domain.IRI, 0)
		for _, assertion := range source.Assertions(propertyID) {
			if target, ok := assertion.(domain.IndividualAssertion); ok {
				hop = append(hop, target.Target)
			}
		}
		slices.SortFunc(hop, domain.CompareIRIs)
		targets = append(targets, hop...)
	}
	return targets
}
