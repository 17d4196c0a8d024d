package main

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"itemsvc/pkg/config"
	"itemsvc/pkg/item"
	"itemsvc/pkg/item/memory"
	"itemsvc/pkg/item/postgres"
	"itemsvc/pkg/item/redis"
	"itemsvc/pkg/item/sqlite"
)

// openStore builds the repository selected by cfg.Store and returns a
// func releasing its connections.
func openStore(ctx context.Context, cfg config.Config) (item.Repository, func() error, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(), func() error { return nil }, nil
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.New(db), db.Close, nil
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return postgres.New(db), db.Close, nil
	case config.StoreRedis:
		rdb := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return redis.New(rdb, redis.DefaultPrefix), rdb.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", config.ErrStoreUnknown, cfg.Store)
}
