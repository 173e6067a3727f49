// Package service assembles the ontology storage and reasoning adapters
// behind a single facade built from configuration.
package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while building the service from configuration.
// Callers check them with errors.Is.
var (
	// ErrUnsupportedOntologyBackend indicates the configured ontology
	// backend has no adapter.
	ErrUnsupportedOntologyBackend = errors.New("unsupported ontology backend")

	// ErrUnsupportedReasonerBackend indicates the configured reasoner
	// backend has no adapter.
	ErrUnsupportedReasonerBackend = errors.New("unsupported reasoner backend")
)

// SeedError reports a seed path that failed startup validation. Seed
// content is never inspected; only the path's existence is checked.
type SeedError struct {
	// Path is the seed path as configured.
	Path string
	// Err is the underlying os error.
	Err error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seed path %q: %v", e.Path, e.Err)
}

func (e *SeedError) Unwrap() error {
	return e.Err
}
