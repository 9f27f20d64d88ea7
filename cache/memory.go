package cache

import (
	"context"
	"strings"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Memory is the in-process cache store, backed by a TTL cache so expired
// entries are evicted without a Redis dependency.
type Memory struct {
	items *ttlcache.Cache[string, Entry]
}

func NewMemory() *Memory {
	items := ttlcache.New(
		ttlcache.WithDisableTouchOnHit[string, Entry](),
	)
	go items.Start()
	return &Memory{items: items}
}

func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	item := m.items.Get(key)
	if item == nil {
		return Entry{}, false, nil
	}
	entry := item.Value()
	if entry.Expired(time.Now()) {
		m.items.Delete(key)
		return Entry{}, false, nil
	}
	return entry, true, nil
}

func (m *Memory) Set(_ context.Context, key string, e Entry) error {
	ttl := time.Until(time.UnixMilli(e.ExpiresAt))
	if ttl <= 0 {
		m.items.Delete(key)
		return nil
	}
	m.items.Set(key, e, ttl)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.items.Delete(key)
	return nil
}

func (m *Memory) DeleteByPrefix(_ context.Context, prefix string) error {
	for _, key := range m.items.Keys() {
		if strings.HasPrefix(key, prefix) {
			m.items.Delete(key)
		}
	}
	return nil
}

func (m *Memory) Stop() {
	m.items.Stop()
}
