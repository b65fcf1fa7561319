// Package matroids maintains maximal independent sets of matroids, both
// statically and under a changing ground set.
//
// 🚀 What is matroids?
//
//	A pure-Go library for independence-oracle algorithms:
//		• Oracle contract: one IsIndependent call is the unit of cost
//		• Instances: uniform, partition, graphic and binary matroids
//		• Decorators: call counting and memoization of oracle answers
//		• Static construction: the classic greedy maximal-set scan
//		• Dynamic maintenance: insertions & deletions with bounded churn,
//		  via a random-permutation strategy and a stability baseline
//		• Update streams: replay a workload and report cost and churn
//
// ✨ Why choose matroids?
//
//   - Oracle-cost first – every operation documents its call budget
//   - Comparable strategies – one Maintainer contract, two engines
//   - Pure Go – no cgo
//   - Deterministic experiments – seedable randomness throughout
//
// Everything is organized under two subpackages:
//
//	matroid/ — Oracle contract, concrete matroids, decorators, greedy scan
//	dynamic/ — maintainers for changing ground sets + the stream consumer
//
// Quick ASCII example (graphic matroid, edges = elements):
//
//	    A───B          independent = forms no cycle
//	    │   │          basis       = spanning forest
//	    C───D
//
// See the matroid and dynamic package docs for contracts, errors, and
// complexity notes.
//
//	go get github.com/plammens/matroids-main
package matroids
