package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/karlseguin/ccache/v3"
)

// ErrMiss is returned by Remote implementations when a key is absent.
var ErrMiss = errors.New("cache miss")

// Remote is a shared second-level cache.
type Remote interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

type Options struct {
	Size      int64
	TTL       time.Duration
	RemoteTTL time.Duration
}

// Layered caches lists of record ids: a process-local LRU in front of an
// optional Remote. Remote failures are logged and treated as misses.
type Layered struct {
	local  *ccache.Cache[[]string]
	remote Remote
	opts   Options
}

func NewLayered(opts Options, remote Remote) *Layered {
	if opts.Size <= 0 {
		opts.Size = 1000
	}
	if opts.TTL <= 0 {
		opts.TTL = 5 * time.Minute
	}
	if opts.RemoteTTL <= 0 {
		opts.RemoteTTL = 3 * opts.TTL
	}

	return &Layered{
		local:  ccache.New(ccache.Configure[[]string]().MaxSize(opts.Size)),
		remote: remote,
		opts:   opts,
	}
}

func (l *Layered) Get(ctx context.Context, key string) ([]string, bool) {
	if item := l.local.Get(key); item != nil && !item.Expired() {
		return item.Value(), true
	}

	if l.remote == nil {
		return nil, false
	}

	raw, err := l.remote.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			log.Printf("cache_error op=get key=%s error=%q", key, err)
		}
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		log.Printf("cache_error op=decode key=%s error=%q", key, err)
		return nil, false
	}

	l.local.Set(key, ids, l.opts.TTL)
	return ids, true
}

func (l *Layered) Set(ctx context.Context, key string, ids []string) {
	if ids == nil {
		ids = []string{}
	}
	l.local.Set(key, ids, l.opts.TTL)

	if l.remote == nil {
		return
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		log.Printf("cache_error op=encode key=%s error=%q", key, err)
		return
	}
	if err := l.remote.Set(ctx, key, raw, l.opts.RemoteTTL); err != nil {
		log.Printf("cache_error op=set key=%s error=%q", key, err)
	}
}

// Close stops the local cache worker and closes the remote client.
func (l *Layered) Close() error {
	l.local.Stop()
	if l.remote != nil {
		return l.remote.Close()
	}
	return nil
}
