package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"itemsvc/pkg/item"
	"itemsvc/pkg/item/itemtest"
)

// Runs against a live database only when TEST_DATABASE_URL is set.
func TestRepository(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	itemtest.Run(t, func(t *testing.T) item.Repository {
		ctx := context.Background()
		db, err := Open(ctx, dsn)
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, "TRUNCATE items RESTART IDENTITY")
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		return New(db)
	})
}
