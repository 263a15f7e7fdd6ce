package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// item is a minimal test entity.
type item struct {
	ID    int64
	Name  string
	Count int
}

func (i item) EntityID() int64 { return i.ID }

// fakeStore is an in-memory Store[item] that assigns sequential ids.
type fakeStore struct {
	mu       sync.Mutex
	nextID   int64
	rows     map[int64]item
	failAll  bool
	failNext error
	onDelete func()
}

func newFakeStore(seed ...item) *fakeStore {
	s := &fakeStore{rows: make(map[int64]item)}
	for _, it := range seed {
		s.rows[it.ID] = it
		if it.ID > s.nextID {
			s.nextID = it.ID
		}
	}
	return s
}

func (s *fakeStore) takeErr() error {
	err := s.failNext
	s.failNext = nil
	return err
}

func (s *fakeStore) SelectAll(context.Context) ([]item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, fmt.Errorf("store down")
	}
	out := make([]item, 0, len(s.rows))
	for _, it := range s.rows {
		out = append(out, it)
	}
	return out, nil
}

func (s *fakeStore) Insert(_ context.Context, it item) (item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return item{}, err
	}
	s.nextID++
	it.ID = s.nextID
	s.rows[it.ID] = it
	return it, nil
}

func (s *fakeStore) Update(_ context.Context, it item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return err
	}
	s.rows[it.ID] = it
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	if s.onDelete != nil {
		s.onDelete()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr(); err != nil {
		return err
	}
	delete(s.rows, id)
	return nil
}

func (s *fakeStore) get(id int64) (item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.rows[id]
	return it, ok
}

// mergeItem allows updating Name and Count but never the id.
func mergeItem(current, incoming item) item {
	current.Name = incoming.Name
	current.Count = incoming.Count
	return current
}

func newLoadedCache(t *testing.T, seed ...item) (*Cache[item], *fakeStore) {
	t.Helper()
	store := newFakeStore(seed...)
	c := New[item](store, mergeItem)
	require.NoError(t, c.Load(context.Background()))
	return c, store
}

func TestCache_LoadAndFindAllOrdered(t *testing.T) {
	c, _ := newLoadedCache(t,
		item{ID: 3, Name: "c"},
		item{ID: 1, Name: "a"},
		item{ID: 2, Name: "b"},
	)

	all := c.FindAll()
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)
	assert.Equal(t, int64(3), all[2].ID)
}

func TestCache_Load_StoreDown(t *testing.T) {
	store := newFakeStore()
	store.failAll = true
	c := New[item](store, mergeItem)

	err := c.Load(context.Background())
	require.Error(t, err)
}

func TestCache_Save_AssignsIDAndMirrorsStore(t *testing.T) {
	c, store := newLoadedCache(t)

	saved, err := c.Save(context.Background(), item{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID, "id comes from the store")

	cached, ok := c.FindByID(saved.ID)
	require.True(t, ok)
	stored, ok := store.get(saved.ID)
	require.True(t, ok)
	assert.Equal(t, stored, cached, "cache and store must agree after save")
}

func TestCache_Save_StoreError(t *testing.T) {
	c, store := newLoadedCache(t)
	store.failNext = fmt.Errorf("insert failed")

	_, err := c.Save(context.Background(), item{Name: "x"})
	require.Error(t, err)
	assert.Empty(t, c.FindAll(), "nothing cached after a failed insert")
}

func TestCache_Update_MergesAllowedFields(t *testing.T) {
	c, store := newLoadedCache(t, item{ID: 1, Name: "old", Count: 1})

	ok, err := c.Update(context.Background(), item{ID: 1, Name: "renamed", Count: 9})
	require.NoError(t, err)
	assert.True(t, ok)

	cached, _ := c.FindByID(1)
	assert.Equal(t, "renamed", cached.Name)
	assert.Equal(t, 9, cached.Count)

	stored, _ := store.get(1)
	assert.Equal(t, cached, stored, "cache and store must agree after update")
}

func TestCache_Update_Absent(t *testing.T) {
	c, _ := newLoadedCache(t)

	ok, err := c.Update(context.Background(), item{ID: 42, Name: "ghost"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_Update_StoreError_KeepsCacheUnchanged(t *testing.T) {
	c, store := newLoadedCache(t, item{ID: 1, Name: "old"})
	store.failNext = fmt.Errorf("update failed")

	_, err := c.Update(context.Background(), item{ID: 1, Name: "new"})
	require.Error(t, err)

	cached, _ := c.FindByID(1)
	assert.Equal(t, "old", cached.Name, "failed store write must not mutate the cache")
}

func TestCache_Delete(t *testing.T) {
	c, store := newLoadedCache(t, item{ID: 1, Name: "a"}, item{ID: 2, Name: "b"})

	ok, err := c.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, found := c.FindByID(1)
	assert.False(t, found)
	_, found = store.get(1)
	assert.False(t, found)

	ok, err = c.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok, "second delete reports absence")
}

func TestCache_Delete_StoreError_KeepsEntryCached(t *testing.T) {
	c, store := newLoadedCache(t, item{ID: 1, Name: "a"})
	store.failNext = fmt.Errorf("delete failed")

	ok, err := c.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, ok)

	cached, found := c.FindByID(1)
	require.True(t, found, "failed store delete must not evict the entry")
	assert.Equal(t, "a", cached.Name)
	stored, found := store.get(1)
	require.True(t, found)
	assert.Equal(t, stored, cached, "cache and store must agree after a failed delete")
}

// A goroutine parked in Acquire while Delete runs must wake holding the same
// mutex its Release unlocks. Removing the lock table entry during Delete used
// to hand the waiter a fresh unlocked mutex, and its Release crashed the
// process with an unlock-of-unlocked-mutex fatal error.
func TestCache_Delete_DoesNotStrandBlockedAcquire(t *testing.T) {
	c, store := newLoadedCache(t, item{ID: 1})

	deleting := make(chan struct{})
	proceed := make(chan struct{})
	store.onDelete = func() {
		close(deleting)
		<-proceed
	}

	deleteDone := make(chan struct{})
	go func() {
		defer close(deleteDone)
		_, _ = c.Delete(context.Background(), 1)
	}()

	// Park a waiter on the entity lock while Delete holds it.
	<-deleting
	waiterDone := make(chan struct{})
	go func() {
		defer close(waiterDone)
		c.Acquire(1)
		c.Release(1)
	}()
	time.Sleep(50 * time.Millisecond)
	close(proceed)

	for _, done := range []chan struct{}{deleteDone, waiterDone} {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("delete/acquire interleaving did not finish")
		}
	}
}

func TestCache_ReadsDoNotBlockOnEntityLocks(t *testing.T) {
	c, _ := newLoadedCache(t, item{ID: 1, Name: "a"})

	c.Acquire(1)
	defer c.Release(1)

	done := make(chan struct{})
	go func() {
		_, _ = c.FindByID(1)
		_ = c.FindAll()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("read blocked on a held entity lock")
	}
}

func TestCache_AcquirePair_NoDeadlockOnOpposedOrder(t *testing.T) {
	c, _ := newLoadedCache(t, item{ID: 1}, item{ID: 2})

	const rounds = 200
	var wg sync.WaitGroup
	worker := func(a, b int64) {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			c.AcquirePair(a, b)
			c.Release(a, b)
		}
	}

	wg.Add(2)
	go worker(1, 2)
	go worker(2, 1)

	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("opposed AcquirePair callers deadlocked")
	}
}

func TestCache_AcquirePair_SameID(t *testing.T) {
	c, _ := newLoadedCache(t, item{ID: 1})

	c.AcquirePair(1, 1)
	c.Release(1)

	// Lock must be free again.
	c.Acquire(1)
	c.Release(1)
}

func TestCache_ConcurrentLockedWriteBack_NoLostUpdates(t *testing.T) {
	c, _ := newLoadedCache(t, item{ID: 1, Count: 0})

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				c.Acquire(1)
				cur, _ := c.FindByID(1)
				cur.Count++
				c.Put(cur)
				c.Release(1)
			}
		}()
	}
	wg.Wait()

	final, _ := c.FindByID(1)
	assert.Equal(t, workers*perWorker, final.Count)
}
