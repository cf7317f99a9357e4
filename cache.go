package hashwires

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// chainCache memoizes advanceChain results keyed by (starting value,
// step count), useful when the same Context repeatedly proves
// different thresholds against the same Secret: every such call
// rebuilds the same member chain tips. Only an exact repeat of both
// starting value and step count hits. Keys are hashed
// with xxhash rather than used as raw byte-slice map keys, since a
// position seed is L bytes and Go map keys must be comparable values,
// not slices.
type chainCache struct {
	mu           sync.Mutex
	spins        map[uint64][]byte
	hits, misses int // instrumentation, also asserted on by tests
}

func newChainCache() *chainCache {
	return &chainCache{spins: make(map[uint64][]byte)}
}

func cacheKey(seed []byte, steps uint16) uint64 {
	h := xxhash.New()
	_, _ = h.Write(seed)
	_, _ = h.Write([]byte{byte(steps >> 8), byte(steps)})
	return h.Sum64()
}

func (c *chainCache) get(seed []byte, steps uint16) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.spins[cacheKey(seed, steps)]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

func (c *chainCache) put(seed []byte, steps uint16, result []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spins[cacheKey(seed, steps)] = result
}
