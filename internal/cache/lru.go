package cache

import "sync"

// lruNode is a node in a doubly-linked LRU list.
// The node stores a key for O(1) deletion from the parent map.
type lruNode[K comparable] struct {
	key  K
	prev *lruNode[K]
	next *lruNode[K]
}

// lruList is a doubly-linked list ordered by recency.
// The head is the most recently used, tail is least recently used.
// The list is not thread-safe; callers must handle synchronization.
type lruList[K comparable] struct {
	head *lruNode[K]
	tail *lruNode[K]
	len  int
}

// pushFront links node at the front.
func (l *lruList[K]) pushFront(node *lruNode[K]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
	l.len++
}

// moveToFront relinks an existing node at the front.
func (l *lruList[K]) moveToFront(node *lruNode[K]) {
	if node == l.head {
		return
	}
	l.unlink(node)
	l.pushFront(node)
}

// unlink removes a node from the list.
func (l *lruList[K]) unlink(node *lruNode[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}

// LRU orders keys by how recently they were used. It holds no values:
// callers own the resources and release them in the evict callback.
//
// The gallery touches every entry it draws and trims the rest back to the
// residency budget once per frame. Pinned keys, such as images whose decode
// is still in flight, stay tracked but are passed over by Trim until the
// predicate releases them.
//
// LRU is safe for concurrent use.
type LRU[K comparable] struct {
	mu      sync.Mutex
	nodes   map[K]*lruNode[K]
	list    lruList[K]
	onEvict func(K)
	pinned  func(K) bool
}

// NewLRU creates an empty LRU. onEvict and pinned may be nil.
func NewLRU[K comparable](onEvict func(K), pinned func(K) bool) *LRU[K] {
	return &LRU[K]{
		nodes:   make(map[K]*lruNode[K]),
		onEvict: onEvict,
		pinned:  pinned,
	}
}

// Touch marks key as the most recently used, adding it if absent.
func (c *LRU[K]) Touch(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.nodes[key]; ok {
		c.list.moveToFront(node)
		return
	}
	node := &lruNode[K]{key: key}
	c.nodes[key] = node
	c.list.pushFront(node)
}

// Trim evicts least recently used keys until at most limit unpinned keys
// remain and returns how many were evicted. Pinned keys neither count
// against limit nor get evicted. A limit of 0 or less means unlimited.
// The evict callback runs after the lock is released, oldest first.
func (c *LRU[K]) Trim(limit int) int {
	if limit <= 0 {
		return 0
	}

	c.mu.Lock()
	excess := c.list.len - limit
	if c.pinned != nil && excess > 0 {
		for node := c.list.head; node != nil; node = node.next {
			if c.pinned(node.key) {
				excess--
			}
		}
	}
	var evicted []K
	for node := c.list.tail; node != nil && excess > 0; {
		prev := node.prev
		if c.pinned == nil || !c.pinned(node.key) {
			c.list.unlink(node)
			delete(c.nodes, node.key)
			evicted = append(evicted, node.key)
			excess--
		}
		node = prev
	}
	c.mu.Unlock()

	if c.onEvict != nil {
		for _, key := range evicted {
			c.onEvict(key)
		}
	}
	return len(evicted)
}

// Len returns the number of tracked keys.
func (c *LRU[K]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.len
}
