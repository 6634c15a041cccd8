// Package cache keeps built ribbon curves for reuse across frames.
//
// A Curve never follows changes of its chain, so entries are keyed by chain
// ID and validated against the chain revision: asking for a newer revision
// drops the old curve and builds a fresh one.
//
//	curves := cache.New(cache.WithCapacity(64))
//	_ = curves.Prefetch(ctx, chains) // optional parallel warm-up
//	curve, err := curves.Get(chain)
//
// Curves is safe for concurrent use. It is sharded by chain ID so that
// builds of different chains rarely contend for the same lock.
package cache

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"github.com/gogpu/ribbon"
	"github.com/gogpu/ribbon/internal/lru"
)

const (
	// shardCount must be a power of 2 for shard selection by mask.
	shardCount = 16
	shardMask  = shardCount - 1

	// DefaultCapacity is the default number of chains kept per shard.
	DefaultCapacity = 64
)

// Option configures a Curves cache.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the number of chains kept per shard.
// Values <= 0 select DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	// Stale counts entries replaced because the chain revision changed.
	Stale uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Curves caches the build result of each chain.
// Unsuccessful builds are cached too, so a chain that is too short is not
// rebuilt every frame.
type Curves struct {
	shards   [shardCount]*shard
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
	stale     atomic.Uint64
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*entry
	lru     *lru.List[string]
}

type entry struct {
	revision uint64
	curve    *ribbon.Curve
	err      error
	node     *lru.Node[string]
}

// New creates an empty cache.
func New(opts ...Option) *Curves {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		o.capacity = DefaultCapacity
	}

	c := &Curves{capacity: o.capacity}
	for i := range c.shards {
		c.shards[i] = &shard{
			entries: make(map[string]*entry),
			lru:     lru.New[string](),
		}
	}
	return c
}

func (c *Curves) shard(chainID string) *shard {
	h := fnv.New64a()
	_, _ = h.Write([]byte(chainID)) // fnv.Write never returns an error
	return c.shards[h.Sum64()&shardMask]
}

// Get returns the curve of chain, building it if the cache holds no result
// for this chain revision. The returned error is the one Build reported.
//
// The build runs with the shard lock held so concurrent requests for the
// same chain build it only once.
func (c *Curves) Get(chain ribbon.Chain) (*ribbon.Curve, error) {
	s := c.shard(chain.ID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[chain.ID]; ok {
		if e.revision == chain.Revision {
			s.lru.MoveToFront(e.node)
			c.hits.Add(1)
			return e.curve, e.err
		}
		ribbon.Logger().Debug("cache: stale curve dropped",
			"chain", chain.ID, "cached", e.revision, "requested", chain.Revision)
		s.lru.Remove(e.node)
		delete(s.entries, chain.ID)
		c.stale.Add(1)
	}

	c.misses.Add(1)
	curve, err := ribbon.Build(chain)
	c.insert(s, chain, curve, err)
	return curve, err
}

// Prefetch builds all chains that have no cached result for their revision,
// in parallel, and stores the results. It returns ctx.Err() if ctx is done
// before the builds finish; nothing is stored in that case.
func (c *Curves) Prefetch(ctx context.Context, chains []ribbon.Chain) error {
	var missing []ribbon.Chain
	for _, ch := range chains {
		if _, ok := c.Peek(ch.ID, ch.Revision); !ok {
			missing = append(missing, ch)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	curves, err := ribbon.BuildAll(ctx, missing)
	if err != nil {
		return err
	}
	for i, ch := range missing {
		var buildErr error
		if curves[i] == nil {
			buildErr = fmt.Errorf("%w: chain %q", ribbon.ErrInsufficientResidues, ch.ID)
		}
		s := c.shard(ch.ID)
		s.mu.Lock()
		if e, ok := s.entries[ch.ID]; ok {
			s.lru.Remove(e.node)
			delete(s.entries, ch.ID)
		}
		c.misses.Add(1)
		c.insert(s, ch, curves[i], buildErr)
		s.mu.Unlock()
	}
	return nil
}

// insert stores a build result, evicting least recently used chains of the
// shard first. The shard lock must be held.
func (c *Curves) insert(s *shard, chain ribbon.Chain, curve *ribbon.Curve, err error) {
	for s.lru.Len() >= c.capacity {
		oldest, ok := s.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(s.entries, oldest)
		c.evictions.Add(1)
		ribbon.Logger().Debug("cache: curve evicted", "chain", oldest)
	}

	s.entries[chain.ID] = &entry{
		revision: chain.Revision,
		curve:    curve,
		err:      err,
		node:     s.lru.PushFront(chain.ID),
	}
}

// Peek returns the cached curve for a chain revision without building.
func (c *Curves) Peek(chainID string, revision uint64) (*ribbon.Curve, bool) {
	s := c.shard(chainID)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[chainID]
	if !ok || e.revision != revision {
		return nil, false
	}
	return e.curve, true
}

// Invalidate drops the cached result of a chain.
// Returns true if an entry was removed.
func (c *Curves) Invalidate(chainID string) bool {
	s := c.shard(chainID)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[chainID]
	if !ok {
		return false
	}
	s.lru.Remove(e.node)
	delete(s.entries, chainID)
	return true
}

// Clear drops all entries. Counters are kept.
func (c *Curves) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]*entry)
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the number of cached chains.
func (c *Curves) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *Curves) Capacity() int {
	return c.capacity
}

// Stats returns the current counters.
func (c *Curves) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Stale:     c.stale.Load(),
	}
}
