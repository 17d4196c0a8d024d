package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemsvc/pkg/item"
	"itemsvc/pkg/item/itemtest"
)

func openTestDB(t *testing.T, path string) *Repository {
	t.Helper()
	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func TestRepository(t *testing.T) {
	itemtest.Run(t, func(t *testing.T) item.Repository {
		return openTestDB(t, filepath.Join(t.TempDir(), "items.db"))
	})
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "items.db")
	repo := openTestDB(t, path)

	_, err := repo.Create(context.Background(), item.NewItem{Name: "Book"})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestItemsSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "items.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = New(db).Create(ctx, item.NewItem{Name: "Book", Description: "paper"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	repo := openTestDB(t, path)
	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []item.Item{{ID: 1, Name: "Book", Description: "paper"}}, list)
}
