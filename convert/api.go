// SPDX-License-Identifier: MIT
// Package: propgraph/convert
//
// api.go — thin public entry points for the convert package.
//
// Design contract (strict):
//   - All public adapters are declared here and implemented in impl_*.go.
//   - Each adapter resolves functional options once, normalizes ids to the
//     canonical width, and feeds one of two builder strategies (or the
//     raw-CSR bypass).
//   - Construction is all-or-nothing; errors wrap package sentinels and are
//     matched with errors.Is.

package convert

import (
	"fmt"

	"github.com/apache/arrow/go/v14/arrow"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/propgraph/graph"
)

// Number constrains adjacency-matrix cell types.
type Number interface {
	constraints.Integer | constraints.Float
}

// FromEdgeListArrays builds a graph from parallel source/destination arrays
// in arbitrary order (unsorted strategy, stable counting sort). The node
// count is max referenced id + 1. Multi-edges and self-loops pass through
// unchanged; edge-aligned options follow the edges through the permutation.
//
// Errors: ErrLengthMismatch, ErrEmptyEdgeList, graph.ErrOutOfRange.
// Complexity: O(edges + nodes).
func FromEdgeListArrays[S, D constraints.Integer](src []S, dst []D, opts ...Option) (*graph.Graph, error) {
	const op = "FromEdgeListArrays"
	if len(src) != len(dst) {
		return nil, fmt.Errorf("%s: %d sources, %d destinations: %w", op, len(src), len(dst), ErrLengthMismatch)
	}
	s, err := normalizeIDs(src, op+": source")
	if err != nil {
		return nil, err
	}
	d, err := normalizeIDs(dst, op+": destination")
	if err != nil {
		return nil, err
	}
	if err = validateEdgeStream(op, s, d); err != nil {
		return nil, err
	}
	return buildUnsorted(op, s, d, 0, gatherOptions(opts...))
}

// FromSortedEdgeListArrays builds a graph from arrays the caller asserts are
// already grouped by ascending source id (presorted strategy). The assertion
// is verified by a single linear scan; any decrease fails with ErrNotSorted —
// no silent re-sort. Input order equals canonical edge order exactly.
//
// Errors: ErrNotSorted, ErrLengthMismatch, ErrEmptyEdgeList,
// graph.ErrOutOfRange. Complexity: O(edges + nodes).
func FromSortedEdgeListArrays[S, D constraints.Integer](src []S, dst []D, opts ...Option) (*graph.Graph, error) {
	const op = "FromSortedEdgeListArrays"
	if len(src) != len(dst) {
		return nil, fmt.Errorf("%s: %d sources, %d destinations: %w", op, len(src), len(dst), ErrLengthMismatch)
	}
	s, err := normalizeIDs(src, op+": source")
	if err != nil {
		return nil, err
	}
	d, err := normalizeIDs(dst, op+": destination")
	if err != nil {
		return nil, err
	}
	if err = validateEdgeStream(op, s, d); err != nil {
		return nil, err
	}
	return buildPresorted(op, s, d, gatherOptions(opts...))
}

// FromAdjacencyMatrix builds a graph from a square dense matrix: one edge per
// nonzero cell (row, col) in row-major order, the cell value becoming the
// edge property "weight". The node count is the matrix dimension, so
// all-zero rows still contribute nodes. Ragged or non-square input fails
// with ErrBadShape.
//
// Complexity: O(n² + edges).
func FromAdjacencyMatrix[T Number](m [][]T, opts ...Option) (*graph.Graph, error) {
	return fromAdjacencyMatrix("FromAdjacencyMatrix", m, gatherOptions(opts...))
}

// FromEdgeListMatrix builds a graph from a matrix with exactly two columns,
// one row per edge: row[0] is the source, row[1] the destination. Rows of any
// other width fail with ErrBadShape; zero rows fail with ErrEmptyEdgeList.
func FromEdgeListMatrix[T constraints.Integer](m [][]T, opts ...Option) (*graph.Graph, error) {
	return fromEdgeListMatrix("FromEdgeListMatrix", m, gatherOptions(opts...))
}

// FromTable builds a graph from a columnar table (arrow.Record). Source and
// destination columns are located by name (DefaultSourceColumn and
// DefaultDestinationColumn unless overridden) and accept any integer width;
// every remaining column becomes an edge property. Feeds the unsorted
// strategy.
//
// Errors: ErrMissingColumn, ErrColumnType, ErrNullValue, ErrEmptyEdgeList,
// graph.ErrOutOfRange.
func FromTable(rec arrow.Record, opts ...Option) (*graph.Graph, error) {
	return fromTable("FromTable", rec, gatherOptions(opts...))
}

// FromCSR builds a graph directly from pre-built CSR arrays, bypassing the
// builder. Offsets use the compact convention: len(offsets) == numNodes and
// offsets[i] is the exclusive end of node i's edge range (the leading zero is
// implied). Any integer width is accepted for either array; values are
// range-checked during normalization. This is the only path that permits an
// empty or edgeless graph.
//
// Errors: graph.ErrOutOfRange (negative, non-monotonic, or out-of-range
// values). Complexity: O(nodes + edges).
func FromCSR[O, D constraints.Integer](offsets []O, dst []D, opts ...Option) (*graph.Graph, error) {
	const op = "FromCSR"
	offs, err := normalizeIDs(offsets, op+": offsets")
	if err != nil {
		return nil, err
	}
	d, err := normalizeIDs(dst, op+": destination")
	if err != nil {
		return nil, err
	}
	return fromCSR(op, offs, d, gatherOptions(opts...))
}
