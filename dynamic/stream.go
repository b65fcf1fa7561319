// Package dynamic - the update-stream consumer: a thin loop feeding a
// sequence of insert/delete operations to one maintainer and reporting
// aggregate cost and churn, which is the surface an experiment driver
// consumes. No wire format is defined here; streams are plain slices.
package dynamic

import (
	"fmt"

	"github.com/plammens/matroids-main/matroid"
)

// OpKind discriminates stream operations.
type OpKind uint8

const (
	// OpInsert adds an element to the ground set.
	OpInsert OpKind = iota

	// OpDelete removes an element from the ground set.
	OpDelete
)

// String returns the canonical name of the operation kind.
func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("op(%d)", uint8(k))
	}
}

// Op is one ground-set update in a stream.
type Op struct {
	Kind OpKind
	Elem matroid.Element
}

// InsertOp builds an insert operation for e.
func InsertOp(e matroid.Element) Op { return Op{Kind: OpInsert, Elem: e} }

// DeleteOp builds a delete operation for e.
func DeleteOp(e matroid.Element) Op { return Op{Kind: OpDelete, Elem: e} }

// Report aggregates what happened while a stream was applied.
type Report struct {
	// Applied is the number of operations successfully applied.
	Applied int

	// Rank is the maintained set's size after the last applied operation.
	Rank int

	// OracleCalls is the number of independence queries the stream cost,
	// i.e. the difference of the maintainer's counter across the run.
	OracleCalls uint64

	// TotalChurn and MaxChurn are the sum and maximum of per-operation
	// symmetric differences of the maintained set. Only populated under
	// WithChurnTracking; zero otherwise.
	TotalChurn int
	MaxChurn   int
}

// streamOptions collects the Apply tunables.
type streamOptions struct {
	onApply    func(i int, op Op, set []matroid.Element)
	trackChurn bool
}

// StreamOption configures Apply.
type StreamOption func(*streamOptions)

// WithOnApply registers an observer invoked after every applied operation
// with the operation's index and a copy of the maintained set.
func WithOnApply(fn func(i int, op Op, set []matroid.Element)) StreamOption {
	return func(o *streamOptions) {
		if fn != nil {
			o.onApply = fn
		}
	}
}

// WithChurnTracking populates Report.TotalChurn and Report.MaxChurn. It
// snapshots the maintained set around every operation, which costs O(rank)
// per operation on top of the update itself.
func WithChurnTracking() StreamOption {
	return func(o *streamOptions) { o.trackChurn = true }
}

// Apply feeds stream to m sequentially and reports aggregate cost.
//
// The loop stops at the first failing operation; the error wraps the
// operation index, kind, and element identifier, and the returned Report
// covers the prefix that was applied. A nil error means the whole stream
// was applied.
func Apply(m Maintainer, stream []Op, opts ...StreamOption) (*Report, error) {
	o := streamOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	report := &Report{}
	callsBefore := m.OracleCalls()

	var before []matroid.Element
	for i, op := range stream {
		if o.trackChurn {
			before = m.IndependentSet()
		}

		var err error
		switch op.Kind {
		case OpInsert:
			err = m.Insert(op.Elem)
		case OpDelete:
			err = m.Delete(op.Elem)
		default:
			err = fmt.Errorf("%w: %d", ErrUnknownOpKind, uint8(op.Kind))
		}
		if err != nil {
			report.Rank = m.Rank()
			report.OracleCalls = m.OracleCalls() - callsBefore

			return report, fmt.Errorf("dynamic: stream op %d (%s element %d): %w", i, op.Kind, op.Elem, err)
		}

		report.Applied++
		if o.trackChurn {
			churn := symmetricDiff(before, m.IndependentSet())
			report.TotalChurn += churn
			if churn > report.MaxChurn {
				report.MaxChurn = churn
			}
		}
		if o.onApply != nil {
			o.onApply(i, op, m.IndependentSet())
		}
	}

	report.Rank = m.Rank()
	report.OracleCalls = m.OracleCalls() - callsBefore

	return report, nil
}

// symmetricDiff counts |a Δ b| for duplicate-free slices.
func symmetricDiff(a, b []matroid.Element) int {
	seen := make(map[matroid.Element]struct{}, len(a))
	for _, e := range a {
		seen[e] = struct{}{}
	}
	diff := len(a)
	for _, e := range b {
		if _, ok := seen[e]; ok {
			diff--
		} else {
			diff++
		}
	}

	return diff
}
