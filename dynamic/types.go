// Package dynamic - Maintainer contract, strategy kinds, configuration
// options, sentinel errors, and the New factory.
package dynamic

import (
	"errors"
	"fmt"

	"github.com/plammens/matroids-main/matroid"
)

// Sentinel errors for maintainer construction and updates.
var (
	// ErrAlreadyPresent is returned by Insert when the identifier is
	// already in the ground set. The maintainer state is unchanged.
	ErrAlreadyPresent = errors.New("dynamic: element already present")

	// ErrNotFound is returned by Delete when the identifier is not in the
	// ground set. The maintainer state is unchanged.
	ErrNotFound = errors.New("dynamic: element not found")

	// ErrNilOracle is returned by New when the oracle is nil.
	ErrNilOracle = errors.New("dynamic: oracle is nil")

	// ErrUnknownKind is returned by New for an unrecognized strategy kind.
	ErrUnknownKind = errors.New("dynamic: unknown maintainer kind")

	// ErrUnknownOpKind is returned by Apply for an Op with an invalid kind.
	ErrUnknownOpKind = errors.New("dynamic: unknown stream operation kind")

	// ErrOracleInconsistency is returned when, under WithSelfCheck, the
	// oracle reports a set it previously deemed independent as dependent.
	// Every correctness argument assumes a consistent oracle, so this is
	// fatal: the maintainer refuses all further updates.
	ErrOracleInconsistency = errors.New("dynamic: oracle answers are inconsistent")

	// ErrMaintainerPoisoned is returned by every update attempted after a
	// fatal oracle inconsistency.
	ErrMaintainerPoisoned = errors.New("dynamic: maintainer disabled by earlier oracle inconsistency")
)

// Kind selects a maintenance strategy for New.
type Kind uint8

const (
	// RandomPermutation maintains a random total order over the ground set
	// and starts the replacement scan of a member delete at the deleted
	// position, for a constant expected number of probes.
	RandomPermutation Kind = iota

	// Stability keeps the independent set alone and scans the ground set
	// in insertion-derived order when a member delete demands repair.
	Stability
)

// String returns the canonical name of the kind.
func (k Kind) String() string {
	switch k {
	case RandomPermutation:
		return "random-permutation"
	case Stability:
		return "stability"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Maintainer is the common contract of both maintenance strategies.
// Implementations are single-threaded; see the package documentation for
// the concurrency model.
type Maintainer interface {
	// Insert adds element e to the ground set and decides its membership
	// in the maintained independent set. Fails with ErrAlreadyPresent if
	// e is already live; the state is then unchanged.
	Insert(e matroid.Element) error

	// Delete removes element e from the ground set, repairing the
	// maintained set if e was a member. Fails with ErrNotFound if e is
	// not live; the state is then unchanged.
	Delete(e matroid.Element) error

	// IndependentSet returns a fresh copy of the maintained independent
	// set. The order of elements is strategy-specific and not part of the
	// contract.
	IndependentSet() []matroid.Element

	// Contains reports whether e is in the live ground set.
	Contains(e matroid.Element) bool

	// InIndependentSet reports whether e is in the maintained set.
	InIndependentSet(e matroid.Element) bool

	// Len returns the size of the live ground set.
	Len() int

	// Rank returns the size of the maintained independent set, which for a
	// consistent oracle equals the matroid rank of the live ground set.
	Rank() int

	// OracleCalls returns the monotonically increasing number of
	// independence queries issued since creation, including any issued by
	// the optional self-check.
	OracleCalls() uint64
}

// defaultSeed is the fixed seed substituted when callers pass seed == 0,
// keeping default runs reproducible across platforms.
const defaultSeed int64 = 1

// options collects the tunables shared by both strategies.
type options struct {
	seed      int64
	selfCheck bool
}

// Option configures a maintainer at construction time.
type Option func(*options)

// WithSeed fixes the seed of the maintainer's deterministic RNG (rank
// drawing for RandomPermutation). Policy: seed == 0 selects the fixed
// default seed; any other value is used verbatim.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithSelfCheck re-verifies the maintained set against the oracle after
// every successful update. A negative answer for a set the maintainer
// previously saw reported independent surfaces as ErrOracleInconsistency
// and poisons the maintainer. The extra query per update is counted by
// OracleCalls.
func WithSelfCheck() Option {
	return func(o *options) { o.selfCheck = true }
}

// New builds a maintainer of the given kind over the given oracle, with an
// empty ground set.
//
// Returns ErrNilOracle when oracle is nil and ErrUnknownKind for an
// unrecognized kind.
func New(kind Kind, oracle matroid.Oracle, opts ...Option) (Maintainer, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	o := options{seed: defaultSeed}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = defaultSeed
	}

	counting, err := matroid.NewCounting(oracle)
	if err != nil {
		return nil, fmt.Errorf("dynamic: wrap oracle: %w", err)
	}

	switch kind {
	case RandomPermutation:
		return newRandPerm(counting, o), nil
	case Stability:
		return newStability(counting, o), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}
}
