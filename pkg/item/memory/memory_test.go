package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itemsvc/pkg/item"
	"itemsvc/pkg/item/itemtest"
)

func TestRepository(t *testing.T) {
	itemtest.Run(t, func(t *testing.T) item.Repository { return New() })
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := New()
	_, err := repo.Create(ctx, item.NewItem{Name: "Widget"})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = "Gadget"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Widget", again[0].Name)
}
