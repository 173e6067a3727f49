package memstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmaojo/ontos/internal/domain"
	"github.com/pmaojo/ontos/internal/platform/memstore"
	"github.com/pmaojo/ontos/internal/store"
)

func TestRepositoryCRUDRoundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memstore.NewRepository(memstore.New())

	ontology := domain.NewOntology(domain.MustIRI("https://example.org/onto"))
	require.NoError(t, repo.Insert(ctx, ontology))

	ontology.SetLabel("Example")
	require.NoError(t, repo.Update(ctx, ontology))

	fetched, err := repo.Get(ctx, ontology.ID())
	require.NoError(t, err)
	assert.Equal(t, "Example", fetched.Label())

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, ontology.ID(), summaries[0].IRI)
	assert.Equal(t, "Example", summaries[0].Label)
	assert.Zero(t, summaries[0].ClassCount)

	require.NoError(t, repo.Delete(ctx, ontology.ID()))

	_, err = repo.Get(ctx, ontology.ID())
	require.ErrorIs(t, err, store.ErrOntologyNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestRepositoryInsertRejectsDuplicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memstore.NewRepository(memstore.New())
	id := domain.MustIRI("https://example.org/onto")

	require.NoError(t, repo.Insert(ctx, domain.NewOntology(id).SetLabel("first")))

	err := repo.Insert(ctx, domain.NewOntology(id).SetLabel("second"))
	require.ErrorIs(t, err, store.ErrOntologyExists)
	assert.True(t, store.IsDuplicateError(err))

	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first", stored.Label(), "rejected insert must leave the entry unchanged")
}

func TestRepositoryUpdateAndDeleteRequireExistence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memstore.NewRepository(memstore.New())
	id := domain.MustIRI("https://example.org/missing")

	require.ErrorIs(t, repo.Update(ctx, domain.NewOntology(id)), store.ErrOntologyNotFound)
	require.ErrorIs(t, repo.Delete(ctx, id), store.ErrOntologyNotFound)
	require.ErrorIs(t, repo.AttachClass(ctx, id, domain.NewClass(id)), store.ErrOntologyNotFound)
}

func TestRepositoryAttachMaintainsDomainInvariants(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memstore.NewRepository(memstore.New())

	ontology := domain.NewOntology(domain.MustIRI("https://example.org/onto"))
	require.NoError(t, repo.Insert(ctx, ontology))

	class := domain.MustIRI("https://example.org/Class")
	require.NoError(t, repo.AttachClass(ctx, ontology.ID(), domain.NewClass(class)))

	property := domain.NewProperty(domain.MustIRI("https://example.org/prop"), domain.ObjectProperty)
	property.AddDomain(class)
	property.AddRange(class)
	require.NoError(t, repo.AttachProperty(ctx, ontology.ID(), property))

	individual := domain.NewIndividual(domain.MustIRI("https://example.org/alice"))
	individual.AssertType(class)
	individual.AddAssertion(property.ID(), domain.IndividualAssertion{
		Target: domain.MustIRI("https://example.org/bob"),
	})
	require.NoError(t, repo.AttachIndividual(ctx, ontology.ID(), individual))

	stored, err := repo.Get(ctx, ontology.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, stored.IndividualCount())
	require.NotNil(t, stored.Property(property.ID()))
}

func TestRepositoryFailedAttachLeavesAggregateUnchanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memstore.NewRepository(memstore.New())

	ontology := domain.NewOntology(domain.MustIRI("https://example.org/onto"))
	require.NoError(t, repo.Insert(ctx, ontology))

	property := domain.NewProperty(domain.MustIRI("https://example.org/prop"), domain.ObjectProperty)
	property.AddDomain(domain.MustIRI("https://example.org/Unknown"))

	err := repo.AttachProperty(ctx, ontology.ID(), property)
	require.ErrorIs(t, err, domain.ErrMissingClass)

	stored, getErr := repo.Get(ctx, ontology.ID())
	require.NoError(t, getErr)
	assert.Zero(t, stored.PropertyCount(), "no partial attach may survive a rejected mutation")
}

func TestRepositoryGetReturnsSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := memstore.NewRepository(memstore.New())

	ontology := domain.NewOntology(domain.MustIRI("https://example.org/onto"))
	require.NoError(t, ontology.AddClass(domain.NewClass(domain.MustIRI("https://example.org/Class"))))
	require.NoError(t, repo.Insert(ctx, ontology))

	first, err := repo.Get(ctx, ontology.ID())
	require.NoError(t, err)

	// Mutating the snapshot must not reach the store.
	require.NoError(t, first.AddClass(domain.NewClass(domain.MustIRI("https://example.org/Rogue"))))

	second, err := repo.Get(ctx, ontology.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, second.ClassCount())
}

func TestConcurrentAttachAndGetNeverObservesPartialState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	shared := memstore.New()
	repo := memstore.NewRepository(shared)

	ontology := domain.NewOntology(domain.MustIRI("https://example.org/onto"))
	require.NoError(t, repo.Insert(ctx, ontology))

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := domain.MustIRI(fmt.Sprintf("https://example.org/Class-%d-%d", worker, i))
				if err := repo.AttachClass(ctx, ontology.ID(), domain.NewClass(id)); err != nil {
					t.Error(err)
					return
				}
				snapshot, err := repo.Get(ctx, ontology.ID())
				if err != nil {
					t.Error(err)
					return
				}
				// A successful attach must be visible in the very next get.
				if snapshot.Class(id) == nil {
					t.Errorf("class %s not visible after successful attach", id)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	final, err := repo.Get(ctx, ontology.ID())
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, final.ClassCount())
}
