package property

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"immoplace/internal/cache"
	"immoplace/internal/pkg/validator"
)

// ResultCache stores ordered lists of property ids by key.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Set(ctx context.Context, key string, ids []string)
}

// Latency is the artificial round-trip delay per operation.
type Latency struct {
	List     time.Duration
	Get      time.Duration
	Featured time.Duration
	Search   time.Duration
	Submit   time.Duration
}

type Service struct {
	store   *Store
	cache   ResultCache
	latency Latency
	now     func() time.Time
}

// NewService wires the catalog store. resultCache may be nil.
func NewService(store *Store, resultCache ResultCache, latency Latency) *Service {
	return &Service{
		store:   store,
		cache:   resultCache,
		latency: latency,
		now:     time.Now,
	}
}

/* ---------- QUERIES ---------- */

// List evaluates the filters against the catalog. No match is an empty
// slice, not an error.
func (s *Service) List(ctx context.Context, f SearchFilters) ([]Property, error) {
	key := cache.Key("properties", f.Params())
	return s.cached(ctx, key, s.latency.List, func() []Property {
		return Evaluate(s.store.List(), f)
	})
}

func (s *Service) Featured(ctx context.Context) ([]Property, error) {
	key := cache.Key("featured", nil)
	return s.cached(ctx, key, s.latency.Featured, func() []Property {
		return Featured(s.store.List())
	})
}

// Search runs a free-text query. A blank query returns an empty result
// without touching the catalog.
func (s *Service) Search(ctx context.Context, query string) ([]Property, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Property{}, nil
	}

	key := cache.Key("search", map[string]string{"q": strings.ToLower(query)})
	return s.cached(ctx, key, s.latency.Search, func() []Property {
		return Search(s.store.List(), query)
	})
}

func (s *Service) Get(ctx context.Context, id string) (*Property, error) {
	if err := s.wait(ctx, s.latency.Get); err != nil {
		return nil, err
	}

	p, ok := s.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

/* ---------- AGENTS ---------- */

func (s *Service) Agents(ctx context.Context) ([]AgentResponse, error) {
	if err := s.wait(ctx, s.latency.Get); err != nil {
		return nil, err
	}

	agents := s.store.Agents()
	out := make([]AgentResponse, len(agents))
	for i, a := range agents {
		out[i] = s.agentResponse(a)
	}
	return out, nil
}

func (s *Service) Agent(ctx context.Context, id string) (*AgentResponse, error) {
	if err := s.wait(ctx, s.latency.Get); err != nil {
		return nil, err
	}

	a, ok := s.store.Agent(id)
	if !ok {
		return nil, ErrAgentNotFound
	}
	resp := s.agentResponse(a)
	return &resp, nil
}

// AgentListings returns an agent's properties in the default ranking.
func (s *Service) AgentListings(ctx context.Context, id string) ([]Property, error) {
	if err := s.wait(ctx, s.latency.List); err != nil {
		return nil, err
	}
	if _, ok := s.store.Agent(id); !ok {
		return nil, ErrAgentNotFound
	}

	listings := s.store.ByAgent(id)
	PremiumFirst.Sort(listings)
	if listings == nil {
		listings = []Property{}
	}
	return listings, nil
}

func (s *Service) agentResponse(a Agent) AgentResponse {
	return AgentResponse{
		Agent:         a,
		TypeLabel:     AgentTypeLabel(a.Type),
		ListingsCount: len(s.store.ByAgent(a.ID)),
	}
}

/* ---------- DRAFTS ---------- */

// SubmitDraft validates a listing draft and acknowledges it. The catalog is
// read-only; the draft is not stored.
func (s *Service) SubmitDraft(ctx context.Context, req DraftRequest) (*DraftReceipt, error) {
	if fields := validator.Validate(req); fields != nil {
		return nil, &ValidationError{Err: ErrInvalidDraft, Fields: fields}
	}

	if err := s.wait(ctx, s.latency.Submit); err != nil {
		return nil, err
	}

	receipt := &DraftReceipt{
		ID:         uuid.NewString(),
		Status:     DraftStatusReceived,
		Title:      req.Title,
		ReceivedAt: s.now().UTC(),
	}
	log.Printf("listing_draft_received id=%s category=%s city=%q", receipt.ID, req.Category, req.City)
	return receipt, nil
}

/* ---------- HELPERS ---------- */

// cached serves a ranked id list from the cache, or computes it after the
// simulated round trip and stores it.
func (s *Service) cached(ctx context.Context, key string, delay time.Duration, compute func() []Property) ([]Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if s.cache != nil {
		if ids, ok := s.cache.Get(ctx, key); ok {
			if props, ok := s.resolve(ids); ok {
				return props, nil
			}
			log.Printf("cache_stale key=%s", key)
		}
	}

	if err := s.wait(ctx, delay); err != nil {
		return nil, err
	}

	props := compute()
	if s.cache != nil {
		ids := make([]string, len(props))
		for i, p := range props {
			ids[i] = p.ID
		}
		s.cache.Set(ctx, key, ids)
	}
	return props, nil
}

// resolve maps cached ids back to records; ok is false if any id is unknown.
func (s *Service) resolve(ids []string) ([]Property, bool) {
	out := make([]Property, 0, len(ids))
	for _, id := range ids {
		p, ok := s.store.Get(id)
		if !ok {
			return nil, false
		}
		out = append(out, p)
	}
	return out, true
}

// wait simulates the network round trip. A cancelled or expired context is a
// transient failure; nothing has been changed, so nothing needs undoing.
func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
	case <-timer.C:
		return nil
	}
}
