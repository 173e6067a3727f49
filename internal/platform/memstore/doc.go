// Package memstore implements the repository and reasoner ports over one
// shared, mutex-guarded in-memory map of ontologies. All mutations and
// queries serialize on a single lock spanning the whole map, so a
// mutation is visible to every subsequent query and a query never
// observes a half-committed mutation. The lock is intentionally
// coarse-grained; sharding it per ontology identifier is the extension
// point for a higher-throughput variant.
package memstore
