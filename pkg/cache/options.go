package cache

// Option configures an LRU cache.
type Option func(*options)

type options struct {
	maxEntries int
	pinned     map[string]bool
}

func defaultOptions() *options {
	return &options{
		maxEntries: 0, // 0 = unlimited
	}
}

// WithMaxEntries sets the maximum number of unpinned entries.
// When the limit is reached, the least recently used entry is evicted.
// Zero means unlimited.
// Default: 0 (unlimited).
func WithMaxEntries(n int) Option {
	return func(o *options) {
		o.maxEntries = n
	}
}

// WithPinned marks keys that are never evicted and do not count towards the limit.
func WithPinned(keys ...string) Option {
	return func(o *options) {
		if o.pinned == nil {
			o.pinned = make(map[string]bool, len(keys))
		}
		for _, k := range keys {
			o.pinned[k] = true
		}
	}
}
