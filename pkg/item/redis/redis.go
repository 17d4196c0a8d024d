// Package redis stores items in Redis.
//
// Layout under the configured key prefix:
//
//	<prefix>:next_id  counter incremented once per create
//	<prefix>:data     hash of id -> JSON item
//	<prefix>:index    sorted set of ids scored by id, for ordered listing
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"itemsvc/pkg/item"
)

// DefaultPrefix namespaces the keys used by Repository.
const DefaultPrefix = "items"

// Repository persists items in Redis.
type Repository struct {
	rdb    *redis.Client
	prefix string
}

// New creates a Redis repository. An empty prefix uses DefaultPrefix.
func New(rdb *redis.Client, prefix string) *Repository {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Repository{rdb: rdb, prefix: prefix}
}

func (r *Repository) key(name string) string { return r.prefix + ":" + name }

// Create assigns the next id with INCR and writes data and index in one
// MULTI/EXEC.
func (r *Repository) Create(ctx context.Context, n item.NewItem) (item.Item, error) {
	id, err := r.rdb.Incr(ctx, r.key("next_id")).Result()
	if err != nil {
		return item.Item{}, fmt.Errorf("next id: %w", err)
	}
	it := item.Item{ID: id, Name: n.Name, Description: n.Description}
	b, err := json.Marshal(it)
	if err != nil {
		return item.Item{}, err
	}
	field := strconv.FormatInt(id, 10)
	_, err = r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, r.key("data"), field, b)
		p.ZAdd(ctx, r.key("index"), redis.Z{Score: float64(id), Member: field})
		return nil
	})
	if err != nil {
		return item.Item{}, fmt.Errorf("store item: %w", err)
	}
	return it, nil
}

// List returns all items ordered by id.
func (r *Repository) List(ctx context.Context) ([]item.Item, error) {
	ids, err := r.rdb.ZRange(ctx, r.key("index"), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list index: %w", err)
	}
	items := make([]item.Item, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	vals, err := r.rdb.HMGet(ctx, r.key("data"), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("list data: %w", err)
	}
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			// removed between ZRANGE and HMGET
			continue
		}
		var it item.Item
		if err := json.Unmarshal([]byte(s), &it); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		items = append(items, it)
	}
	return items, nil
}

// Delete removes an item by ID.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	field := strconv.FormatInt(id, 10)
	var del *redis.IntCmd
	_, err := r.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		del = p.HDel(ctx, r.key("data"), field)
		p.ZRem(ctx, r.key("index"), field)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if del.Val() == 0 {
		return item.ErrNotFound
	}
	return nil
}
