package memstore

import (
	"sync"

	"github.com/pmaojo/ontos/internal/domain"
)

// Store is the shared in-memory map of ontologies, keyed by identifier.
// It exclusively owns the stored aggregates; adapters hand out deep
// copies and never leak a stored pointer past the lock.
//
// Go mutexes do not poison: a panic raised while holding the lock tears
// the process down, which is the intended fate for a logic bug inside a
// mutation.
type Store struct {
	mu         sync.Mutex
	ontologies map[domain.IRI]*domain.Ontology
}

// New creates an empty store.
func New() *Store {
	return &Store{
		ontologies: make(map[domain.IRI]*domain.Ontology),
	}
}
