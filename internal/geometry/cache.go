package geometry

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

const shardCount = 32 // power of two

// tripleKey is the exact parameter tuple a coordinate was requested with.
type tripleKey [3]float64

// newTripleKey folds -0 into +0 so both hash to the same shard.
func newTripleKey(a, b, c float64) tripleKey {
	k := tripleKey{a, b, c}
	for i := range k {
		if k[i] == 0 {
			k[i] = 0
		}
	}
	return k
}

func (k tripleKey) hash() uint64 {
	var buf [24]byte
	for i, v := range k {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return xxhash.Sum64(buf[:])
}

type cacheShard[V any] struct {
	mu      sync.RWMutex
	entries map[tripleKey]V
}

// canonicalCache maps parameter tuples to their single shared instance.
// Entries live as long as the cache; nothing is evicted.
// Safe for concurrent use by multiple goroutines.
type canonicalCache[V any] struct {
	shards [shardCount]cacheShard[V]
	size   atomic.Int64
}

func newCanonicalCache[V any]() *canonicalCache[V] {
	c := &canonicalCache[V]{}
	for i := range c.shards {
		c.shards[i].entries = make(map[tripleKey]V)
	}
	return c
}

// getOrCreate returns the instance stored for key, calling build under the
// shard's write lock when there is none. Concurrent callers for the same key
// all observe the one instance that was stored. The boolean reports a hit.
func (c *canonicalCache[V]) getOrCreate(key tripleKey, build func() V) (V, bool) {
	s := &c.shards[key.hash()&(shardCount-1)]

	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		return v, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok = s.entries[key]; ok {
		return v, true
	}

	v = build()
	s.entries[key] = v
	c.size.Add(1)

	return v, false
}

// Len returns the number of canonical instances.
func (c *canonicalCache[V]) Len() int {
	return int(c.size.Load())
}
