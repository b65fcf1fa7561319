package matroid

// CountingOracle decorates an Oracle with a monotonically increasing call
// counter. It is how package dynamic implements its per-maintainer oracle
// cost accounting, and is handy on its own when comparing strategies.
//
// CountingOracle is not safe for concurrent use; like the maintainers that
// embed it, it assumes a single-threaded, sequential caller.
type CountingOracle struct {
	inner Oracle
	calls uint64
}

// NewCounting wraps inner in a CountingOracle with a zeroed counter.
// Returns ErrNilOracle when inner is nil.
func NewCounting(inner Oracle) (*CountingOracle, error) {
	if inner == nil {
		return nil, ErrNilOracle
	}

	return &CountingOracle{inner: inner}, nil
}

// IsIndependent forwards to the wrapped oracle, counting the call.
func (c *CountingOracle) IsIndependent(subset []Element) bool {
	c.calls++
	return c.inner.IsIndependent(subset)
}

// Calls returns the number of independence queries issued since creation
// (or since the last Reset).
func (c *CountingOracle) Calls() uint64 { return c.calls }

// Reset zeroes the counter.
func (c *CountingOracle) Reset() { c.calls = 0 }
