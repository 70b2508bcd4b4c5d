package cache

import (
	"strconv"
	"sync"
	"testing"
)

// put stores v under k through GetOrCreate.
func put[K comparable, V any](c *Cache[K, V], k K, v V) {
	c.GetOrCreate(k, func() V { return v })
}

func TestCache_Get(t *testing.T) {
	c := New[string, int](10)

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}
	put(c, "a", 1)
	put(c, "a", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if s := c.Stats(); s.Hits != 2 || s.Misses != 2 {
		t.Errorf("Stats = %+v, want 2 hits 2 misses", s)
	}
}

func TestCache_SoftLimitEvictsOldest(t *testing.T) {
	c := New[int, int](8)
	for i := range 8 {
		put(c, i, i)
	}
	// Refresh 0 so it survives.
	c.Get(0)

	put(c, 100, 100)

	if c.Len() != 6 {
		t.Fatalf("Len() = %d after overflow, want 6", c.Len())
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used key 0 was evicted")
	}
	if _, ok := c.Get(100); !ok {
		t.Error("newest key was evicted")
	}
	for _, k := range []int{1, 2, 3} {
		if _, ok := c.Get(k); ok {
			t.Errorf("stale key %d survived eviction", k)
		}
	}
	if got := c.Stats().Evictions; got != 3 {
		t.Errorf("Evictions = %d, want 3", got)
	}
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() int { calls++; return 7 }

	for range 3 {
		if v := c.GetOrCreate("k", create); v != 7 {
			t.Fatalf("GetOrCreate = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats = %+v, want 2 hits 1 miss", s)
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[string, int](50)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := strconv.Itoa((g*31 + i) % 80)
				c.GetOrCreate(k, func() int { return i })
				c.Get(k)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 50 {
		t.Errorf("Len() = %d, exceeds soft limit 50", c.Len())
	}
}

func TestLRU_TrimEvictsLeastRecent(t *testing.T) {
	var evicted []string
	lru := NewLRU(func(k string) { evicted = append(evicted, k) }, nil)

	for _, k := range []string{"a", "b", "c", "d"} {
		lru.Touch(k)
	}
	lru.Touch("a")

	if n := lru.Trim(2); n != 2 {
		t.Fatalf("Trim(2) = %d, want 2", n)
	}
	if len(evicted) != 2 || evicted[0] != "b" || evicted[1] != "c" {
		t.Errorf("evicted = %v, want [b c]", evicted)
	}
	if lru.Len() != 2 {
		t.Errorf("Len() = %d, want 2", lru.Len())
	}
	// d is now the oldest.
	lru.Trim(1)
	if len(evicted) != 3 || evicted[2] != "d" {
		t.Errorf("evicted = %v, want [b c d]", evicted)
	}
}

func TestLRU_TrimUnlimited(t *testing.T) {
	lru := NewLRU[int](nil, nil)
	for i := range 10 {
		lru.Touch(i)
	}
	if n := lru.Trim(0); n != 0 || lru.Len() != 10 {
		t.Errorf("Trim(0) = %d, Len() = %d; want 0, 10", n, lru.Len())
	}
	if n := lru.Trim(20); n != 0 {
		t.Errorf("Trim(20) = %d, want 0", n)
	}
}

func TestLRU_TrimSkipsPinned(t *testing.T) {
	pinned := map[int]bool{0: true, 2: true}
	var evicted []int
	lru := NewLRU(
		func(k int) { evicted = append(evicted, k) },
		func(k int) bool { return pinned[k] },
	)
	for i := range 6 {
		lru.Touch(i)
	}

	// Two of the six are pinned; trimming to two unpinned drops 1 and 3.
	if n := lru.Trim(2); n != 2 {
		t.Fatalf("Trim(2) = %d, want 2", n)
	}
	if len(evicted) != 2 || evicted[0] != 1 || evicted[1] != 3 {
		t.Errorf("evicted = %v, want [1 3]", evicted)
	}
	if lru.Len() != 4 {
		t.Errorf("Len() = %d, want 4", lru.Len())
	}

	// Once released, a pinned key is the oldest and goes first.
	pinned[0] = false
	lru.Trim(2)
	if len(evicted) != 3 || evicted[2] != 0 {
		t.Errorf("evicted = %v, want [1 3 0]", evicted)
	}
}

func TestLRU_TrimAllPinned(t *testing.T) {
	lru := NewLRU(func(int) { t.Error("evicted a pinned key") }, func(int) bool { return true })
	for i := range 5 {
		lru.Touch(i)
	}
	if n := lru.Trim(1); n != 0 || lru.Len() != 5 {
		t.Errorf("Trim(1) = %d, Len() = %d; want 0, 5", n, lru.Len())
	}
}

// The evict callback may call back into the LRU.
func TestLRU_CallbackReentrant(t *testing.T) {
	var lru *LRU[int]
	lru = NewLRU(func(k int) { lru.Touch(k + 100); _ = lru.Len() }, nil)
	for i := range 5 {
		lru.Touch(i)
	}
	lru.Trim(1)
	// Four evictions each touched a new key.
	if lru.Len() != 5 {
		t.Errorf("Len() = %d, want 5", lru.Len())
	}
}
