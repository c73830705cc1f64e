package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	failGet bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRemote) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return nil, errors.New("connection refused")
	}
	v, ok := f.data[key]
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (f *fakeRemote) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRemote) Close() error { return nil }

func TestLayered_LocalOnly(t *testing.T) {
	c := NewLayered(Options{Size: 10, TTL: time.Minute}, nil)
	defer c.Close()
	ctx := context.Background()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)

	c.Set(ctx, "k", []string{"4", "1", "3"})
	ids, ok := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []string{"4", "1", "3"}, ids)

	_, ok = c.Get(ctx, "other")
	assert.False(t, ok)
}

func TestLayered_EmptyResultIsAHit(t *testing.T) {
	c := NewLayered(Options{}, nil)
	defer c.Close()

	c.Set(context.Background(), "empty", nil)
	ids, ok := c.Get(context.Background(), "empty")
	require.True(t, ok)
	assert.Empty(t, ids)
}

func TestLayered_RemoteFillsLocal(t *testing.T) {
	remote := newFakeRemote()
	ctx := context.Background()

	writer := NewLayered(Options{TTL: time.Minute, RemoteTTL: 10 * time.Minute}, remote)
	defer writer.Close()
	writer.Set(ctx, "shared", []string{"2", "5"})
	assert.Equal(t, 10*time.Minute, remote.ttls["shared"])

	reader := NewLayered(Options{TTL: time.Minute}, remote)
	defer reader.Close()
	ids, ok := reader.Get(ctx, "shared")
	require.True(t, ok)
	assert.Equal(t, []string{"2", "5"}, ids)

	remote.failGet = true
	ids, ok = reader.Get(ctx, "shared")
	require.True(t, ok, "second read must be served locally")
	assert.Equal(t, []string{"2", "5"}, ids)
}

func TestLayered_RemoteErrorIsMiss(t *testing.T) {
	remote := newFakeRemote()
	remote.failGet = true
	c := NewLayered(Options{}, remote)
	defer c.Close()

	_, ok := c.Get(context.Background(), "anything")
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	a := Key("properties", map[string]string{"type": "sale", "priceMin": "0"})
	b := Key("properties", map[string]string{"priceMin": "0", "type": "sale"})
	assert.Equal(t, a, b)

	withoutMin := Key("properties", map[string]string{"type": "sale"})
	assert.NotEqual(t, a, withoutMin)

	assert.NotEqual(t, Key("featured", nil), Key("properties", nil))
	assert.Contains(t, a, "properties:")
}
