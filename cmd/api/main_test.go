package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemsvc/pkg/config"
	"itemsvc/pkg/item"
	"itemsvc/pkg/item/memory"
	"itemsvc/pkg/item/sqlite"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	repo, closeFn, err := openStore(ctx, config.Config{Store: config.StoreMemory})
	require.NoError(t, err)
	assert.IsType(t, &memory.Repository{}, repo)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "items.db")
	repo, closeFn, err = openStore(ctx, config.Config{Store: config.StoreSQLite, SQLitePath: path})
	require.NoError(t, err)
	assert.IsType(t, &sqlite.Repository{}, repo)
	_, err = repo.Create(ctx, item.NewItem{Name: "Book"})
	assert.NoError(t, err)
	assert.NoError(t, closeFn())

	_, _, err = openStore(ctx, config.Config{Store: "mongo"})
	assert.ErrorIs(t, err, config.ErrStoreUnknown)
}

func TestRootCmdRejectsBadConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--port", "0"})
	err := cmd.Execute()
	assert.ErrorIs(t, err, config.ErrPortInvalid)
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"port", "store", "sqlite-path", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
