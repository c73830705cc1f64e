package cache

import (
	"context"
	"errors"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

type Memcached struct {
	client *memcache.Client
}

func NewMemcached(host string) *Memcached {
	return &Memcached{client: memcache.New(host)}
}

func (m *Memcached) Get(_ context.Context, key string) ([]byte, error) {
	item, err := m.client.Get(key)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			return nil, ErrMiss
		}
		return nil, err
	}
	return item.Value, nil
}

func (m *Memcached) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	return m.client.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(ttl / time.Second),
	})
}

func (m *Memcached) Ping() error {
	return m.client.Ping()
}

// Close is a no-op; the client holds only idle connections.
func (m *Memcached) Close() error {
	return nil
}
