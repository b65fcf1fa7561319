package dynamic_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plammens/matroids-main/dynamic"
	"github.com/plammens/matroids-main/matroid"
)

// kinds enumerates both strategies for table-driven tests.
var kinds = []dynamic.Kind{dynamic.RandomPermutation, dynamic.Stability}

// newMaintainer is a require-wrapped constructor shorthand.
func newMaintainer(t *testing.T, kind dynamic.Kind, oracle matroid.Oracle, opts ...dynamic.Option) dynamic.Maintainer {
	t.Helper()
	m, err := dynamic.New(kind, oracle, opts...)
	require.NoError(t, err)

	return m
}

// TestNew_Validation verifies factory argument checks and Kind naming.
func TestNew_Validation(t *testing.T) {
	u, err := matroid.NewUniform(1)
	require.NoError(t, err)

	_, err = dynamic.New(dynamic.RandomPermutation, nil)
	assert.ErrorIs(t, err, dynamic.ErrNilOracle)

	_, err = dynamic.New(dynamic.Kind(99), u)
	assert.ErrorIs(t, err, dynamic.ErrUnknownKind)

	assert.Equal(t, "random-permutation", dynamic.RandomPermutation.String())
	assert.Equal(t, "stability", dynamic.Stability.String())
}

// TestMaintainer_UniformScenario runs the rank-2 uniform scenario over
// {a=1, b=2, c=3}: any 2-subset independent, the full set dependent.
func TestMaintainer_UniformScenario(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			u, err := matroid.NewUniform(2)
			require.NoError(t, err)
			m := newMaintainer(t, kind, u)

			require.NoError(t, m.Insert(1))
			require.NoError(t, m.Insert(2))
			require.NoError(t, m.Insert(3))
			assert.ElementsMatch(t, []matroid.Element{1, 2}, m.IndependentSet(),
				"c's insert must be rejected against the current set")
			assert.False(t, m.InIndependentSet(3))
			assert.True(t, m.Contains(3), "rejected elements stay in the ground set")

			require.NoError(t, m.Delete(1))
			assert.Equal(t, 2, m.Rank(), "rank 2 must survive the delete via replacement")
			assert.ElementsMatch(t, []matroid.Element{2, 3}, m.IndependentSet())
			assert.Equal(t, 2, m.Len())
		})
	}
}

// TestMaintainer_PartitionScenario runs the two-part scenario: parts
// {a=1, c=3} and {b=2, d=4}, at most one element per part.
func TestMaintainer_PartitionScenario(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			p, err := matroid.NewPartition(1)
			require.NoError(t, err)
			require.NoError(t, p.Assign(1, "first"))
			require.NoError(t, p.Assign(3, "first"))
			require.NoError(t, p.Assign(2, "second"))
			require.NoError(t, p.Assign(4, "second"))

			m := newMaintainer(t, kind, p)
			require.NoError(t, m.Insert(1))
			require.NoError(t, m.Insert(2))
			assert.ElementsMatch(t, []matroid.Element{1, 2}, m.IndependentSet())

			require.NoError(t, m.Insert(3))
			assert.False(t, m.InIndependentSet(3), "part 'first' is already full")
			assert.Equal(t, 2, m.Rank())

			require.NoError(t, m.Delete(1))
			assert.Equal(t, 2, m.Rank(), "c becomes admissible once a leaves")
			assert.True(t, m.InIndependentSet(3))
		})
	}
}

// TestMaintainer_AlreadyPresentAndNotFound verifies that rejected updates
// leave the state, including the oracle counter, untouched.
func TestMaintainer_AlreadyPresentAndNotFound(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			u, err := matroid.NewUniform(3)
			require.NoError(t, err)
			m := newMaintainer(t, kind, u)

			require.NoError(t, m.Insert(7))
			calls := m.OracleCalls()
			set := m.IndependentSet()

			assert.ErrorIs(t, m.Insert(7), dynamic.ErrAlreadyPresent)
			assert.ErrorIs(t, m.Delete(8), dynamic.ErrNotFound)
			assert.Equal(t, calls, m.OracleCalls(), "failed updates must not query the oracle")
			assert.Equal(t, set, m.IndependentSet())
			assert.Equal(t, 1, m.Len())
		})
	}
}

// TestMaintainer_OracleCallAccounting verifies the exactly-n-calls bound
// for n rejection-free inserts into an empty matroid.
func TestMaintainer_OracleCallAccounting(t *testing.T) {
	const n = 100
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			free, err := matroid.NewUniform(n) // rank == size: nothing rejects
			require.NoError(t, err)
			m := newMaintainer(t, kind, free)

			for e := matroid.Element(0); e < n; e++ {
				require.NoError(t, m.Insert(e))
			}
			assert.Equal(t, uint64(n), m.OracleCalls(), "one oracle call per insert, nothing more")
			assert.Equal(t, n, m.Rank())
		})
	}
}

// TestMaintainer_DeleteNonMemberIsFree verifies that deleting an element
// outside the maintained set issues no oracle calls.
func TestMaintainer_DeleteNonMemberIsFree(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			u, err := matroid.NewUniform(1)
			require.NoError(t, err)
			m := newMaintainer(t, kind, u)

			require.NoError(t, m.Insert(1)) // member
			require.NoError(t, m.Insert(2)) // rejected
			calls := m.OracleCalls()

			require.NoError(t, m.Delete(2))
			assert.Equal(t, calls, m.OracleCalls(), "non-member deletion is oracle-free")
			assert.Equal(t, 1, m.Rank())
		})
	}
}

// TestMaintainer_RankLoss verifies the no-replacement case: when every
// live element is already a member, a member's deletion shrinks the rank.
func TestMaintainer_RankLoss(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			u, err := matroid.NewUniform(2)
			require.NoError(t, err)
			m := newMaintainer(t, kind, u)

			require.NoError(t, m.Insert(1))
			require.NoError(t, m.Insert(2))
			require.NoError(t, m.Delete(1))
			assert.Equal(t, 1, m.Rank(), "no candidate exists, rank drops by one")
			assert.ElementsMatch(t, []matroid.Element{2}, m.IndependentSet())
		})
	}
}

// TestStability_InsertDeleteIdempotence verifies the exact state-restore
// property of the stability strategy.
func TestStability_InsertDeleteIdempotence(t *testing.T) {
	g := matroid.NewGraphic()
	require.NoError(t, g.AddEdge(1, "A", "B"))
	require.NoError(t, g.AddEdge(2, "B", "C"))
	require.NoError(t, g.AddEdge(3, "A", "C"))
	require.NoError(t, g.AddEdge(4, "C", "D"))

	m := newMaintainer(t, dynamic.Stability, g)
	require.NoError(t, m.Insert(1))
	require.NoError(t, m.Insert(2))
	require.NoError(t, m.Insert(3)) // rejected: closes the triangle
	before := m.IndependentSet()

	require.NoError(t, m.Insert(4))
	require.NoError(t, m.Delete(4))
	assert.Equal(t, before, m.IndependentSet(), "insert-then-delete restores the exact set")
	assert.Equal(t, 3, m.Len())
}

// TestRandomPermutation_InsertDeleteRankPreserved verifies the weaker
// rank-restore property of the randomized strategy.
func TestRandomPermutation_InsertDeleteRankPreserved(t *testing.T) {
	u, err := matroid.NewUniform(3)
	require.NoError(t, err)
	m := newMaintainer(t, dynamic.RandomPermutation, u, dynamic.WithSeed(11))

	for e := matroid.Element(1); e <= 5; e++ {
		require.NoError(t, m.Insert(e))
	}
	rank := m.Rank()

	require.NoError(t, m.Insert(42))
	require.NoError(t, m.Delete(42))
	assert.Equal(t, rank, m.Rank(), "rank is restored even if membership shifted")
	assert.Equal(t, 5, m.Len())
}

// TestRandomPermutation_DeterministicUnderSeed verifies that two equally
// seeded maintainers replay a workload identically.
func TestRandomPermutation_DeterministicUnderSeed(t *testing.T) {
	build := func() dynamic.Maintainer {
		u, err := matroid.NewUniform(4)
		require.NoError(t, err)

		return newMaintainer(t, dynamic.RandomPermutation, u, dynamic.WithSeed(1234))
	}
	a, b := build(), build()

	for e := matroid.Element(0); e < 20; e++ {
		require.NoError(t, a.Insert(e))
		require.NoError(t, b.Insert(e))
	}
	require.NoError(t, a.Delete(3))
	require.NoError(t, b.Delete(3))

	assert.Equal(t, a.IndependentSet(), b.IndependentSet())
	assert.Equal(t, a.OracleCalls(), b.OracleCalls())
}

// churnWorkload drives a deterministic insert/delete mix and returns the
// worst per-operation churn observed for inserts and deletes separately.
func churnWorkload(t *testing.T, m dynamic.Maintainer, oracle matroid.Oracle, seed int64) (maxInsertChurn, maxDeleteChurn int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	live := make([]matroid.Element, 0, 256)
	next := matroid.Element(0)

	for step := 0; step < 400; step++ {
		before := m.IndependentSet()

		if len(live) == 0 || r.Intn(3) > 0 {
			e := next
			next++
			require.NoError(t, m.Insert(e))
			live = append(live, e)
			if c := symDiff(before, m.IndependentSet()); c > maxInsertChurn {
				maxInsertChurn = c
			}
		} else {
			i := r.Intn(len(live))
			e := live[i]
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
			require.NoError(t, m.Delete(e))
			if c := symDiff(before, m.IndependentSet()); c > maxDeleteChurn {
				maxDeleteChurn = c
			}
		}

		// Ground truth: the maintained set must be independent and must be
		// a basis of the live ground set.
		set := m.IndependentSet()
		assert.True(t, oracle.IsIndependent(set), "step %d: maintained set must stay independent", step)
		ground := append([]matroid.Element(nil), live...)
		sort.Slice(ground, func(i, j int) bool { return ground[i] < ground[j] })
		assert.Equal(t, matroid.Rank(oracle, ground), len(set), "step %d: maintained set must be a basis", step)
	}

	return maxInsertChurn, maxDeleteChurn
}

// symDiff counts the symmetric difference of two duplicate-free slices.
func symDiff(a, b []matroid.Element) int {
	seen := make(map[matroid.Element]struct{}, len(a))
	for _, e := range a {
		seen[e] = struct{}{}
	}
	d := len(a)
	for _, e := range b {
		if _, ok := seen[e]; ok {
			d--
		} else {
			d++
		}
	}

	return d
}

// TestMaintainer_ChurnBoundsAndGroundTruth runs a randomized workload on a
// graphic matroid and checks, after every operation, independence, basis
// size, and the single-update churn bounds (≤1 insert, ≤2 delete).
func TestMaintainer_ChurnBoundsAndGroundTruth(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			g := matroid.NewGraphic()
			// Register a universe of 512 random edges over 24 vertices.
			r := rand.New(rand.NewSource(5))
			for e := matroid.Element(0); e < 512; e++ {
				u := string(rune('A' + r.Intn(24)))
				v := string(rune('A' + r.Intn(24)))
				require.NoError(t, g.AddEdge(e, u, v))
			}

			m := newMaintainer(t, kind, g, dynamic.WithSeed(99))
			insertChurn, deleteChurn := churnWorkload(t, m, g, 77)

			assert.LessOrEqual(t, insertChurn, 1, "insert churn bound")
			assert.LessOrEqual(t, deleteChurn, 2, "delete churn bound")
		})
	}
}

// TestMaintainer_GroundTruth_Binary repeats the ground-truth workload on
// the oracle-expensive binary matroid, wrapped in the memoizing cache.
func TestMaintainer_GroundTruth_Binary(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			bin, err := matroid.NewBinary(10)
			require.NoError(t, err)
			r := rand.New(rand.NewSource(13))
			for e := matroid.Element(0); e < 128; e++ {
				require.NoError(t, bin.SetVector(e, r.Uint64()&0x3ff))
			}
			cached, err := matroid.NewCached(bin, 4096)
			require.NoError(t, err)

			m := newMaintainer(t, kind, cached, dynamic.WithSeed(3))
			_, _ = churnWorkload(t, m, bin, 21)
		})
	}
}

// flakyOracle answers independent for the first failAfter queries and
// dependent forever after, simulating a broken oracle implementation.
type flakyOracle struct {
	calls     int
	failAfter int
}

func (f *flakyOracle) IsIndependent([]matroid.Element) bool {
	f.calls++

	return f.calls <= f.failAfter
}

// TestMaintainer_SelfCheckPoisonsOnInconsistency verifies the fatal
// ErrOracleInconsistency path and the poisoned-state latch.
func TestMaintainer_SelfCheckPoisonsOnInconsistency(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			m := newMaintainer(t, kind, &flakyOracle{failAfter: 3}, dynamic.WithSelfCheck())

			// Insert 1: admission probe + self-check, both satisfied.
			require.NoError(t, m.Insert(1))
			// Insert 2: admission probe passes (3rd call), self-check fails.
			err := m.Insert(2)
			assert.ErrorIs(t, err, dynamic.ErrOracleInconsistency)

			// All further updates are refused.
			assert.ErrorIs(t, m.Insert(3), dynamic.ErrMaintainerPoisoned)
			assert.ErrorIs(t, m.Delete(1), dynamic.ErrMaintainerPoisoned)
		})
	}
}
