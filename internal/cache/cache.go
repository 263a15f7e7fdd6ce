package cache

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Entity is anything with a store-assigned integer identity.
type Entity interface {
	EntityID() int64
}

// Store is the persistence backend mirrored by a Cache. Insert assigns the id
// and returns the entity with it populated.
type Store[E Entity] interface {
	SelectAll(ctx context.Context) ([]E, error)
	Insert(ctx context.Context, e E) (E, error)
	Update(ctx context.Context, e E) error
	Delete(ctx context.Context, id int64) error
}

// MergeFunc copies the updatable fields of incoming onto current and returns
// the merged entity. It defines which fields Update is allowed to touch.
type MergeFunc[E Entity] func(current, incoming E) E

// Cache is an id-ordered, concurrency-safe in-memory mirror of one store
// table. It is loaded once via Load and is the source of truth for reads for
// the rest of the process lifetime; every successful mutation writes the store
// first and then the cache, so the two never diverge from a caller's view.
//
// Reads never block on entity locks. Update-class mutations serialize on a
// per-entity mutex held in a lock table keyed by id; the table also backs the
// single- and dual-acquire operations used by the ledger.
type Cache[E Entity] struct {
	store Store[E]
	merge MergeFunc[E]

	mu    sync.RWMutex
	items map[int64]E

	lockMu sync.Mutex
	locks  map[int64]*sync.Mutex
}

// New creates an empty cache over store. Call Load before first use.
func New[E Entity](store Store[E], merge MergeFunc[E]) *Cache[E] {
	return &Cache[E]{
		store: store,
		merge: merge,
		items: make(map[int64]E),
		locks: make(map[int64]*sync.Mutex),
	}
}

// Load populates the cache with a full table scan. It is called once during
// service construction; a load failure is fatal to startup.
func (c *Cache[E]) Load(ctx context.Context) error {
	all, err := c.store.SelectAll(ctx)
	if err != nil {
		return fmt.Errorf("loading cache: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range all {
		c.items[e.EntityID()] = e
		c.lockFor(e.EntityID())
	}
	return nil
}

// FindAll returns all cached entities ordered by id.
func (c *Cache[E]) FindAll() []E {
	c.mu.RLock()
	out := make([]E, 0, len(c.items))
	for _, e := range c.items {
		out = append(out, e)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].EntityID() < out[j].EntityID() })
	return out
}

// FindByID returns the cached entity with the given id, if present.
func (c *Cache[E]) FindByID(id int64) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[id]
	return e, ok
}

// Save inserts the entity into the store (which assigns its id) and then into
// the cache, returning the entity with the id populated.
func (c *Cache[E]) Save(ctx context.Context, e E) (E, error) {
	saved, err := c.store.Insert(ctx, e)
	if err != nil {
		var zero E
		return zero, err
	}
	c.Put(saved)
	return saved, nil
}

// Update merges the updatable fields of incoming onto the cached entity under
// its lock, writing the store before the cache. Returns false if no entity
// with that id exists.
func (c *Cache[E]) Update(ctx context.Context, incoming E) (bool, error) {
	id := incoming.EntityID()
	if _, ok := c.FindByID(id); !ok {
		return false, nil
	}

	c.Acquire(id)
	defer c.Release(id)

	current, ok := c.FindByID(id)
	if !ok {
		// Deleted while waiting for the lock.
		return false, nil
	}

	merged := c.merge(current, incoming)
	if err := c.store.Update(ctx, merged); err != nil {
		return false, err
	}
	c.Put(merged)
	return true, nil
}

// Delete removes the entity from the cache and then from the store. Returns
// false if no entity with that id exists.
func (c *Cache[E]) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := c.FindByID(id); !ok {
		return false, nil
	}

	lock := c.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	c.mu.Lock()
	e, ok := c.items[id]
	if !ok {
		c.mu.Unlock()
		return false, nil
	}
	delete(c.items, id)
	c.mu.Unlock()

	if err := c.store.Delete(ctx, id); err != nil {
		// Store still holds the row, so the cache must too.
		c.mu.Lock()
		c.items[id] = e
		c.mu.Unlock()
		return false, err
	}

	// The lock table entry stays. A goroutine blocked in Acquire on this id
	// must release the same mutex it ends up holding; removing the entry here
	// would hand its Release a fresh, unlocked one.
	return true, nil
}

// Put inserts or replaces the cache entry for e. Callers writing back a
// mutation must hold the entity's lock; inserting a freshly persisted entity
// needs no lock.
func (c *Cache[E]) Put(e E) {
	id := e.EntityID()
	c.mu.Lock()
	c.items[id] = e
	c.mu.Unlock()
	c.lockFor(id)
}

// Acquire blocks until the entity lock for id is held.
func (c *Cache[E]) Acquire(id int64) {
	c.lockFor(id).Lock()
}

// AcquirePair acquires both entity locks without risking deadlock against a
// concurrent AcquirePair on the same ids in the opposite order: it tries both
// in one attempt and, if only one is obtained, releases it and retries the
// whole pair. Bounded exponential backoff keeps retries off the CPU. No
// fairness is guaranteed.
func (c *Cache[E]) AcquirePair(id1, id2 int64) {
	if id1 == id2 {
		c.Acquire(id1)
		return
	}

	l1, l2 := c.lockFor(id1), c.lockFor(id2)

	backoff := 25 * time.Microsecond
	const maxBackoff = 2 * time.Millisecond
	for {
		if l1.TryLock() {
			if l2.TryLock() {
				return
			}
			l1.Unlock()
		}
		time.Sleep(backoff)
		if backoff < maxBackoff {
			backoff *= 2
		}
	}
}

// Release unlocks the entity locks for the given ids.
func (c *Cache[E]) Release(ids ...int64) {
	for _, id := range ids {
		c.lockFor(id).Unlock()
	}
}

// lockFor returns the mutex for id, creating it on first use. Entries are
// never removed, so Acquire and Release always see the same mutex instance
// for a given id; an entry for a deleted entity is harmless.
func (c *Cache[E]) lockFor(id int64) *sync.Mutex {
	c.lockMu.Lock()
	defer c.lockMu.Unlock()
	l, ok := c.locks[id]
	if !ok {
		l = &sync.Mutex{}
		c.locks[id] = l
	}
	return l
}
