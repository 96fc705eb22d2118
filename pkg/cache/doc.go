// Package cache provides a generic in-memory LRU cache with stampede-free loading.
//
// Entries never expire by time. They leave the cache only through LRU
// eviction (when a size limit is set), explicit deletion or clearing. Keys
// marked as pinned are never evicted, which suits values such as a default
// locale that every request needs.
//
// # Usage
//
//	c := cache.New[*Snapshot](
//	    cache.WithMaxEntries(64),
//	    cache.WithPinned("en"),
//	)
//
//	snap, err := c.GetOrLoad("fr", func() (*Snapshot, error) {
//	    return build("fr")
//	})
//
// # Stampede Prevention
//
// [LRU.GetOrLoad] uses singleflight: concurrent misses for the same key call
// the loader once and share its result. Each cache owns its own group, so two
// caches never block each other on equal keys.
//
// # Eviction Callbacks
//
//	c.SetEvictCallback(func(key string, v *Snapshot) {
//	    log.Debug("snapshot evicted", "locale", key)
//	})
//
// The callback fires on LRU eviction, deletion and clearing.
//
// # Error Handling
//
//   - [ErrNotFound]: key is not cached
//   - [ErrNilLoader]: GetOrLoad called without a loader
package cache
