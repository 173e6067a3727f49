package service

import (
	"errors"
	"fmt"
	"os"

	"github.com/pmaojo/ontos/internal/config"
	"github.com/pmaojo/ontos/internal/platform/memstore"
	"github.com/pmaojo/ontos/internal/store"
)

// OntologyService bundles a repository and a reasoner that share one
// backing store, plus the reasoner configuration they were built with.
type OntologyService struct {
	repository  store.OntologyRepository
	reasoner    store.Reasoner
	reasonerCfg config.ReasonerConfig
}

// NewOntologyService builds a service from already constructed adapters.
// Both adapters must observe the same underlying store.
func NewOntologyService(
	repository store.OntologyRepository,
	reasoner store.Reasoner,
	reasonerCfg config.ReasonerConfig,
) *OntologyService {
	return &OntologyService{
		repository:  repository,
		reasoner:    reasoner,
		reasonerCfg: reasonerCfg,
	}
}

// NewFromConfig selects the configured backends, validates the seed
// paths, and wires repository and reasoner over one shared store.
func NewFromConfig(ontologyCfg config.OntologyConfig, reasonerCfg config.ReasonerConfig) (*OntologyService, error) {
	if ontologyCfg.Backend != "memory" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOntologyBackend, ontologyCfg.Backend)
	}
	if reasonerCfg.Backend != "native" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedReasonerBackend, reasonerCfg.Backend)
	}

	if err := validateSeeds(ontologyCfg.Seeds); err != nil {
		return nil, err
	}

	shared := memstore.New()
	return NewOntologyService(
		memstore.NewRepository(shared),
		memstore.NewReasoner(shared, reasonerCfg.Inference),
		reasonerCfg,
	), nil
}

// validateSeeds checks that every configured seed path exists and is a
// regular file or a directory. Content is left to a later loading stage
// and is not parsed here.
func validateSeeds(seeds []string) error {
	for _, seed := range seeds {
		info, err := os.Stat(seed)
		if err != nil {
			return &SeedError{Path: seed, Err: err}
		}
		if !info.Mode().IsRegular() && !info.IsDir() {
			return &SeedError{Path: seed, Err: errors.New("unsupported seed path type")}
		}
	}
	return nil
}

// Repository returns the ontology repository handle.
func (s *OntologyService) Repository() store.OntologyRepository {
	return s.repository
}

// Reasoner returns the reasoning handle.
func (s *OntologyService) Reasoner() store.Reasoner {
	return s.reasoner
}

// ReasonerConfig returns the reasoner configuration the service was
// built with, including the inference toggles.
func (s *OntologyService) ReasonerConfig() config.ReasonerConfig {
	return s.reasonerCfg
}
