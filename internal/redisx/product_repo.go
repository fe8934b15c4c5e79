package redisx

import (
	"context"
	"errors"
	"sort"

	"github.com/ariefcatur/inventory-api/internal/catalog"
	"github.com/redis/go-redis/v9"
)

// ProductRepo reads product documents stored as JSON strings, one key per id.
type ProductRepo struct {
	Redis  *redis.Client
	prefix string
}

func NewProductRepo(rdb *redis.Client, database, collection string) *ProductRepo {
	return &ProductRepo{Redis: rdb, prefix: productPrefix(database, collection)}
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (catalog.Product, error) {
	b, err := r.Redis.Get(ctx, r.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return catalog.Product{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Product{}, catalog.Unavailable("redis get", err)
	}
	return catalog.DecodeDocument(b)
}

// ListAll scans the collection prefix and fetches documents in MGET batches.
// Keys removed between SCAN and MGET are skipped.
func (r *ProductRepo) ListAll(ctx context.Context) ([]catalog.Product, error) {
	keys, err := r.scanKeys(ctx)
	if err != nil {
		return nil, catalog.Unavailable("redis scan", err)
	}

	out := make([]catalog.Product, 0, len(keys))
	for start := 0; start < len(keys); start += ScanCount {
		end := min(start+ScanCount, len(keys))
		vals, err := r.Redis.MGet(ctx, keys[start:end]...).Result()
		if err != nil {
			return nil, catalog.Unavailable("redis mget", err)
		}
		for _, v := range vals {
			s, ok := v.(string)
			if !ok {
				continue
			}
			p, err := catalog.DecodeDocument([]byte(s))
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductRepo) scanKeys(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var cursor uint64
	for {
		batch, next, err := r.Redis.Scan(ctx, cursor, r.prefix+"*", ScanCount).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range batch {
			seen[k] = struct{}{}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (r *ProductRepo) Ping(ctx context.Context) error {
	if err := r.Redis.Ping(ctx).Err(); err != nil {
		return catalog.Unavailable("redis ping", err)
	}
	return nil
}
