package memstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmaojo/ontos/internal/config"
	"github.com/pmaojo/ontos/internal/domain"
	"github.com/pmaojo/ontos/internal/platform/memstore"
	"github.com/pmaojo/ontos/internal/store"
)

func allInference() config.InferenceConfig {
	return config.InferenceConfig{
		ClassHierarchy:     true,
		PropertyAssertions: true,
		PropertyPaths:      true,
	}
}

// seedHierarchy stores an ontology with the chain Base <- Derived <-
// Specialized, an object property link, a data property note, and the
// individuals alice -> bob (via link), carol (disconnected), and dana
// carrying a literal under note.
func seedHierarchy(t *testing.T, shared *memstore.Store) *domain.Ontology {
	t.Helper()

	ontology := domain.NewOntology(domain.MustIRI("https://example.org/onto"))

	base := domain.NewClass(domain.MustIRI("https://example.org/Base"))
	derived := domain.NewClass(domain.MustIRI("https://example.org/Derived"))
	derived.AddParent(base.ID())
	specialized := domain.NewClass(domain.MustIRI("https://example.org/Specialized"))
	specialized.AddParent(derived.ID())

	require.NoError(t, ontology.AddClass(base))
	require.NoError(t, ontology.AddClass(derived))
	require.NoError(t, ontology.AddClass(specialized))

	link := domain.NewProperty(domain.MustIRI("https://example.org/link"), domain.ObjectProperty)
	link.AddDomain(base.ID())
	link.AddRange(base.ID())
	require.NoError(t, ontology.AddProperty(link))

	note := domain.NewProperty(domain.MustIRI("https://example.org/note"), domain.DataProperty)
	note.AddDomain(base.ID())
	require.NoError(t, ontology.AddProperty(note))

	alice := domain.NewIndividual(domain.MustIRI("https://example.org/alice"))
	alice.AssertType(base.ID())
	alice.AddAssertion(link.ID(), domain.IndividualAssertion{
		Target: domain.MustIRI("https://example.org/bob"),
	})
	require.NoError(t, ontology.AddIndividual(alice))

	bob := domain.NewIndividual(domain.MustIRI("https://example.org/bob"))
	bob.AssertType(base.ID())
	require.NoError(t, ontology.AddIndividual(bob))

	carol := domain.NewIndividual(domain.MustIRI("https://example.org/carol"))
	carol.AssertType(base.ID())
	require.NoError(t, ontology.AddIndividual(carol))

	dana := domain.NewIndividual(domain.MustIRI("https://example.org/dana"))
	dana.AssertType(base.ID())
	dana.AddAssertion(note.ID(), domain.LiteralAssertion{Value: "a literal"})
	require.NoError(t, ontology.AddIndividual(dana))

	repo := memstore.NewRepository(shared)
	require.NoError(t, repo.Insert(context.Background(), ontology))
	return ontology
}

func TestAncestorsOfComputesTransitiveClosure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	onto := domain.MustIRI("https://example.org/onto")

	ancestors, err := reasoner.AncestorsOf(ctx, onto, domain.MustIRI("https://example.org/Derived"))
	require.NoError(t, err)
	assert.Equal(t, []domain.IRI{domain.MustIRI("https://example.org/Base")}, ancestors)

	ancestors, err = reasoner.AncestorsOf(ctx, onto, domain.MustIRI("https://example.org/Specialized"))
	require.NoError(t, err)
	assert.Equal(t, []domain.IRI{
		domain.MustIRI("https://example.org/Base"),
		domain.MustIRI("https://example.org/Derived"),
	}, ancestors, "result is the full closure, sorted by identifier")

	ancestors, err = reasoner.AncestorsOf(ctx, onto, domain.MustIRI("https://example.org/Base"))
	require.NoError(t, err)
	assert.Empty(t, ancestors)
}

func TestAncestorsOfTerminatesOnCyclicHierarchy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	repo := memstore.NewRepository(shared)

	// A cyclic is-a chain is a modeling error upstream, but the visited
	// set must still terminate the traversal.
	ontology := domain.NewOntology(domain.MustIRI("https://example.org/cyclic"))
	a := domain.NewClass(domain.MustIRI("https://example.org/A"))
	a.AddParent(domain.MustIRI("https://example.org/B"))
	b := domain.NewClass(domain.MustIRI("https://example.org/B"))
	b.AddParent(domain.MustIRI("https://example.org/A"))
	require.NoError(t, ontology.AddClass(a))
	require.NoError(t, ontology.AddClass(b))
	require.NoError(t, repo.Insert(ctx, ontology))

	reasoner := memstore.NewReasoner(shared, allInference())

	ancestors, err := reasoner.AncestorsOf(ctx, ontology.ID(), a.ID())
	require.NoError(t, err)
	assert.Equal(t, []domain.IRI{a.ID(), b.ID()}, ancestors)
}

func TestAncestorsOfReportsMissingInputs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	_, err := reasoner.AncestorsOf(ctx,
		domain.MustIRI("https://example.org/unknown"),
		domain.MustIRI("https://example.org/Base"))
	require.ErrorIs(t, err, store.ErrOntologyNotFound)

	_, err = reasoner.AncestorsOf(ctx,
		domain.MustIRI("https://example.org/onto"),
		domain.MustIRI("https://example.org/Unknown"))
	require.ErrorIs(t, err, store.ErrClassNotFound)

	var entityErr *store.EntityError
	require.ErrorAs(t, err, &entityErr)
	assert.Equal(t, "https://example.org/onto", entityErr.Ontology.String())
	assert.Equal(t, "https://example.org/Unknown", entityErr.Entity.String())
}

func TestDescendantsOfIsSingleHop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	descendants, err := reasoner.DescendantsOf(ctx,
		domain.MustIRI("https://example.org/onto"),
		domain.MustIRI("https://example.org/Base"))
	require.NoError(t, err)

	// Only Derived names Base as a direct parent; Specialized is two
	// hops away and must not appear.
	assert.Equal(t, []domain.IRI{domain.MustIRI("https://example.org/Derived")}, descendants)
}

func TestRelatedIndividualsFollowsObjectProperty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	onto := domain.MustIRI("https://example.org/onto")
	link := domain.MustIRI("https://example.org/link")

	related, err := reasoner.RelatedIndividuals(ctx, onto, link,
		domain.MustIRI("https://example.org/alice"))
	require.NoError(t, err)
	assert.Equal(t, []domain.IRI{domain.MustIRI("https://example.org/bob")}, related)

	// bob asserts nothing under link.
	related, err = reasoner.RelatedIndividuals(ctx, onto, link,
		domain.MustIRI("https://example.org/bob"))
	require.NoError(t, err)
	assert.Empty(t, related)
}

func TestRelatedIndividualsRejectsDataProperty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	_, err := reasoner.RelatedIndividuals(ctx,
		domain.MustIRI("https://example.org/onto"),
		domain.MustIRI("https://example.org/note"),
		domain.MustIRI("https://example.org/dana"))
	require.ErrorIs(t, err, store.ErrNotObjectProperty)
}

func TestRelatedIndividualsReportsMissingInputs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	onto := domain.MustIRI("https://example.org/onto")

	_, err := reasoner.RelatedIndividuals(ctx, onto,
		domain.MustIRI("https://example.org/unknown-prop"),
		domain.MustIRI("https://example.org/alice"))
	require.ErrorIs(t, err, store.ErrPropertyNotFound)

	_, err = reasoner.RelatedIndividuals(ctx, onto,
		domain.MustIRI("https://example.org/link"),
		domain.MustIRI("https://example.org/nobody"))
	require.ErrorIs(t, err, store.ErrIndividualNotFound)
}

func TestShortestPathFindsMinimumHops(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	onto := domain.MustIRI("https://example.org/onto")
	alice := domain.MustIRI("https://example.org/alice")
	bob := domain.MustIRI("https://example.org/bob")

	path, err := reasoner.ShortestPath(ctx, onto, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, []domain.IRI{alice, bob}, path, "path includes both endpoints")

	// start == end resolves to a single-node path.
	path, err = reasoner.ShortestPath(ctx, onto, alice, alice)
	require.NoError(t, err)
	assert.Equal(t, []domain.IRI{alice}, path)
}

func TestShortestPathReturnsNilWhenUnreachable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	path, err := reasoner.ShortestPath(ctx,
		domain.MustIRI("https://example.org/onto"),
		domain.MustIRI("https://example.org/alice"),
		domain.MustIRI("https://example.org/carol"))
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestShortestPathPrefersFewerHops(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	repo := memstore.NewRepository(shared)

	// alice -> bob -> carol and a direct alice -> carol edge via a
	// second property. BFS must take the direct edge.
	ontology := domain.NewOntology(domain.MustIRI("https://example.org/graph"))
	person := domain.NewClass(domain.MustIRI("https://example.org/Person"))
	require.NoError(t, ontology.AddClass(person))

	knows := domain.NewProperty(domain.MustIRI("https://example.org/knows"), domain.ObjectProperty)
	mentors := domain.NewProperty(domain.MustIRI("https://example.org/mentors"), domain.ObjectProperty)
	require.NoError(t, ontology.AddProperty(knows))
	require.NoError(t, ontology.AddProperty(mentors))

	alice := domain.NewIndividual(domain.MustIRI("https://example.org/alice"))
	alice.AddAssertion(knows.ID(), domain.IndividualAssertion{Target: domain.MustIRI("https://example.org/bob")})
	alice.AddAssertion(mentors.ID(), domain.IndividualAssertion{Target: domain.MustIRI("https://example.org/carol")})
	require.NoError(t, ontology.AddIndividual(alice))

	bob := domain.NewIndividual(domain.MustIRI("https://example.org/bob"))
	bob.AddAssertion(knows.ID(), domain.IndividualAssertion{Target: domain.MustIRI("https://example.org/carol")})
	require.NoError(t, ontology.AddIndividual(bob))

	carol := domain.NewIndividual(domain.MustIRI("https://example.org/carol"))
	require.NoError(t, ontology.AddIndividual(carol))

	require.NoError(t, repo.Insert(context.Background(), ontology))

	reasoner := memstore.NewReasoner(shared, allInference())
	path, err := reasoner.ShortestPath(ctx, ontology.ID(),
		domain.MustIRI("https://example.org/alice"),
		domain.MustIRI("https://example.org/carol"))
	require.NoError(t, err)
	assert.Equal(t, []domain.IRI{
		domain.MustIRI("https://example.org/alice"),
		domain.MustIRI("https://example.org/carol"),
	}, path)
}

func TestShortestPathReportsMissingEndpoints(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	onto := domain.MustIRI("https://example.org/onto")
	alice := domain.MustIRI("https://example.org/alice")
	nobody := domain.MustIRI("https://example.org/nobody")

	_, err := reasoner.ShortestPath(ctx, onto, nobody, alice)
	require.ErrorIs(t, err, store.ErrIndividualNotFound)

	_, err = reasoner.ShortestPath(ctx, onto, alice, nobody)
	require.ErrorIs(t, err, store.ErrIndividualNotFound)
}

func TestDisabledTogglesReturnEmptyResults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	seedHierarchy(t, shared)

	reasoner := memstore.NewReasoner(shared, config.InferenceConfig{})

	onto := domain.MustIRI("https://example.org/onto")
	specialized := domain.MustIRI("https://example.org/Specialized")

	ancestors, err := reasoner.AncestorsOf(ctx, onto, specialized)
	require.NoError(t, err)
	assert.Empty(t, ancestors)

	descendants, err := reasoner.DescendantsOf(ctx, onto, domain.MustIRI("https://example.org/Base"))
	require.NoError(t, err)
	assert.Empty(t, descendants)

	related, err := reasoner.RelatedIndividuals(ctx, onto,
		domain.MustIRI("https://example.org/link"),
		domain.MustIRI("https://example.org/alice"))
	require.NoError(t, err)
	assert.Empty(t, related)

	path, err := reasoner.ShortestPath(ctx, onto,
		domain.MustIRI("https://example.org/alice"),
		domain.MustIRI("https://example.org/bob"))
	require.NoError(t, err)
	assert.Nil(t, path)

	// Off means off even for garbage input: no validation error either.
	_, err = reasoner.AncestorsOf(ctx, domain.MustIRI("https://example.org/unknown"), specialized)
	require.NoError(t, err)
}

func TestReasonerObservesLatestMutation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	ontology := seedHierarchy(t, shared)
	repo := memstore.NewRepository(shared)
	reasoner := memstore.NewReasoner(shared, allInference())

	extra := domain.NewClass(domain.MustIRI("https://example.org/Extra"))
	extra.AddParent(domain.MustIRI("https://example.org/Base"))
	require.NoError(t, repo.AttachClass(ctx, ontology.ID(), extra))

	descendants, err := reasoner.DescendantsOf(ctx, ontology.ID(),
		domain.MustIRI("https://example.org/Base"))
	require.NoError(t, err)
	assert.Equal(t, []domain.IRI{
		domain.MustIRI("https://example.org/Derived"),
		domain.MustIRI("https://example.org/Extra"),
	}, descendants, "a committed mutation is visible to the next query")
}
