// Package store defines the ports over stored ontologies: the repository
// contract for CRUD and attach operations on Ontology aggregates, and the
// reasoner contract for read-only traversal queries. The interfaces
// abstract the backing storage so alternative backends (for example a
// persistent triple store) can be substituted without touching callers.
package store
