// Package cache provides the recency bookkeeping used by the gallery.
//
// # Cache[K, V]
//
// A thread-safe value cache with a soft limit. When the limit is exceeded
// the least recently used quarter is dropped. Captions use it to keep
// rendered name strips across frames.
//
//	c := cache.New[string, int](100)
//	value := c.GetOrCreate("key", func() int { return 42 })
//
// # LRU[K]
//
// A recency list without values. Decoded images are owned by their library
// slots, so the residency budget only needs to know which entries were
// drawn least recently; Trim hands those to a callback that unloads them.
// Entries the pinned predicate reports are left in place.
//
//	lru := cache.NewLRU(
//		func(img *library.Image) { img.Unload() },
//		func(img *library.Image) bool { return img.Loading() },
//	)
//	lru.Touch(img)
//	lru.Trim(64)
//
// # Thread Safety
//
// Both types are safe for concurrent use and must not be copied after
// creation (they contain mutexes).
package cache
