package redis

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"itemsvc/pkg/item"
	"itemsvc/pkg/item/itemtest"
)

// Runs against a live server only when TEST_REDIS_ADDR is set. Each
// subtest gets its own key prefix.
func TestRepository(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()).Err())

	itemtest.Run(t, func(t *testing.T) item.Repository {
		prefix := "itemtest:" + uuid.NewString()
		t.Cleanup(func() {
			ctx := context.Background()
			rdb.Del(ctx, prefix+":next_id", prefix+":data", prefix+":index")
		})
		return New(rdb, prefix)
	})
}

func TestNewDefaultPrefix(t *testing.T) {
	r := New(nil, "")
	require.Equal(t, "items:data", r.key("data"))
}
