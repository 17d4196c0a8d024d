// Package itemtest holds the behavioural suite every item.Repository
// implementation must pass.
package itemtest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemsvc/pkg/item"
)

// Factory returns an empty repository for one subtest.
type Factory func(t *testing.T) item.Repository

// Run exercises repo against the item.Repository contract.
func Run(t *testing.T, newRepo Factory) {
	t.Run("sequential ids", func(t *testing.T) { testSequentialIDs(t, newRepo(t)) })
	t.Run("list order", func(t *testing.T) { testListOrder(t, newRepo(t)) })
	t.Run("empty list", func(t *testing.T) { testEmptyList(t, newRepo(t)) })
	t.Run("delete", func(t *testing.T) { testDelete(t, newRepo(t)) })
	t.Run("delete missing", func(t *testing.T) { testDeleteMissing(t, newRepo(t)) })
	t.Run("no id reuse", func(t *testing.T) { testNoIDReuse(t, newRepo(t)) })
	t.Run("concurrent create", func(t *testing.T) { testConcurrentCreate(t, newRepo(t)) })
}

func testSequentialIDs(t *testing.T, repo item.Repository) {
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		it, err := repo.Create(ctx, item.NewItem{Name: "n"})
		require.NoError(t, err)
		assert.Equal(t, int64(i), it.ID)
	}
}

func testListOrder(t *testing.T, repo item.Repository) {
	ctx := context.Background()
	_, err := repo.Create(ctx, item.NewItem{Name: "Book"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, item.NewItem{Name: "Pen", Description: "blue"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item.Item{
		{ID: 1, Name: "Book", Description: ""},
		{ID: 2, Name: "Pen", Description: "blue"},
	}, list)
}

func testEmptyList(t *testing.T, repo item.Repository) {
	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func testDelete(t *testing.T, repo item.Repository) {
	ctx := context.Background()
	a, err := repo.Create(ctx, item.NewItem{Name: "a"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, item.NewItem{Name: "b"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, a.ID))
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), item.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item.Item{b}, list)
}

func testDeleteMissing(t *testing.T, repo item.Repository) {
	ctx := context.Background()
	a, err := repo.Create(ctx, item.NewItem{Name: "a"})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, 42), item.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 0), item.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item.Item{a}, list)
}

func testNoIDReuse(t *testing.T, repo item.Repository) {
	ctx := context.Background()
	a, err := repo.Create(ctx, item.NewItem{Name: "a"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, item.NewItem{Name: "b"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, a.ID))

	c, err := repo.Create(ctx, item.NewItem{Name: "c"})
	require.NoError(t, err)
	assert.Greater(t, c.ID, b.ID)
}

func testConcurrentCreate(t *testing.T, repo item.Repository) {
	const n = 20
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			it, err := repo.Create(ctx, item.NewItem{Name: "x"})
			if assert.NoError(t, err) {
				ids <- it.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n)
}
