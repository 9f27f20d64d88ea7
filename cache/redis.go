package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is the shared cache store variant. Entries carry their own expiry so
// the layout matches the in-process store; the Redis TTL is set as well so
// abandoned entries do not accumulate.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr, password string) *Redis {
	return &Redis{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})}
}

func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return Entry{}, false, err
	}
	if entry.Expired(time.Now()) {
		r.client.Del(ctx, key)
		return Entry{}, false, nil
	}
	return entry, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, e Entry) error {
	ttl := time.Until(time.UnixMilli(e.ExpiresAt))
	if ttl <= 0 {
		return r.Delete(ctx, key)
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *Redis) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
