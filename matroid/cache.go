package matroid

import (
	"encoding/binary"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru"
)

// CachedOracle memoizes the answers of an inner oracle in a fixed-size
// ARC cache, keyed by the canonical (sorted) encoding of the queried
// subset. One cache serves one oracle; do not share a CachedOracle across
// oracles with different independence predicates.
//
// Memoization is sound only while the inner oracle's answer for a fixed
// subset is stable, i.e. for the lifetime of the registered payloads.
// That is exactly the read-only contract Oracle implementations already
// carry, so any well-behaved oracle can be wrapped. Wrapping pays off for
// expensive predicates (Binary's elimination, Graphic's union-find) under
// workloads that re-probe the same extensions, such as the replacement
// scans in package dynamic.
type CachedOracle struct {
	inner Oracle
	cache *lru.ARCCache
}

// NewCached wraps inner in a CachedOracle holding up to size answers.
// Returns ErrNilOracle when inner is nil and ErrBadCacheSize when size < 1.
func NewCached(inner Oracle, size int) (*CachedOracle, error) {
	if inner == nil {
		return nil, ErrNilOracle
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCacheSize, size)
	}
	cache, err := lru.NewARC(size)
	if err != nil {
		return nil, fmt.Errorf("matroid: new ARC cache: %w", err)
	}

	return &CachedOracle{inner: inner, cache: cache}, nil
}

// IsIndependent answers from the cache when possible, otherwise consults
// the inner oracle and stores the verdict.
func (c *CachedOracle) IsIndependent(subset []Element) bool {
	key := subsetKey(subset)
	if verdict, ok := c.cache.Get(key); ok {
		return verdict.(bool)
	}
	verdict := c.inner.IsIndependent(subset)
	c.cache.Add(key, verdict)

	return verdict
}

// Len returns the number of memoized answers currently held.
func (c *CachedOracle) Len() int { return c.cache.Len() }

// subsetKey builds an order-insensitive cache key: the identifiers are
// sorted into a scratch copy and packed little-endian into a string.
func subsetKey(subset []Element) string {
	sorted := make([]Element, len(subset))
	copy(sorted, subset)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	buf := make([]byte, 0, 8*len(sorted))
	for _, e := range sorted {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e))
	}

	return string(buf)
}
