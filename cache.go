package reedsolomon

import "github.com/puzpuzpuz/xsync/v4"

type cacheKey struct {
	primitive int
	nsym      int
	index     int
}

// Cache deduplicates Encoder construction across callers that repeatedly
// request the same (primitive, nsym, index) parameters, so field and
// generator tables are built at most once per distinct triple. The zero
// value is not usable; create caches with NewCache.
//
// Symbology encoders that run many times per process should share a Cache
// (or use DefaultCache) rather than calling New on every invocation.
type Cache struct {
	encoders *xsync.Map[cacheKey, *Encoder]
}

// DefaultCache is a process-wide cache for callers without their own.
var DefaultCache = NewCache()

// NewCache creates an empty encoder cache.
func NewCache() *Cache {
	return &Cache{encoders: xsync.NewMap[cacheKey, *Encoder]()}
}

// GetOrCreate returns the cached Encoder for the given parameters, building
// and caching it if absent. Concurrent calls with the same parameters block
// until a single construction finishes, and all receive the same instance.
//
// Failed constructions are not cached; the field-width check runs before the
// cache is consulted.
func (c *Cache) GetOrCreate(primitive, nsym, index int) (*Encoder, error) {
	if _, err := fieldBits(primitive); err != nil {
		return nil, err
	}
	enc, _ := c.encoders.LoadOrCompute(cacheKey{primitive, nsym, index}, func() (*Encoder, bool) {
		enc, err := New(primitive, nsym, index)
		if err != nil {
			// Unreachable: the width check above is the only failure mode.
			panic(err)
		}
		return enc, false
	})
	return enc, nil
}
