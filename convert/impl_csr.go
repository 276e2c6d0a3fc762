// SPDX-License-Identifier: MIT
// Package: propgraph/convert
//
// impl_csr.go — the CSR builder: id normalization, the stable counting-sort
// kernel (unsorted strategy), the run-boundary scan (presorted strategy), and
// the raw-CSR bypass.

package convert

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/propgraph/graph"
)

// normalizeIDs converts an id array of any accepted integer width into the
// canonical int64 width. Negative values and uint64 values above MaxInt64
// fail with graph.ErrOutOfRange; nothing is ever truncated.
// Complexity: O(n).
func normalizeIDs[T constraints.Integer](vals []T, what string) ([]int64, error) {
	out := make([]int64, len(vals))
	for i, v := range vals {
		n := int64(v)
		// v < 0 rejects negative signed input; n < 0 rejects uint64 overflow.
		if v < 0 || n < 0 {
			return nil, fmt.Errorf("%s[%d] = %v: %w", what, i, v, graph.ErrOutOfRange)
		}
		out[i] = n
	}
	return out, nil
}

// validateEdgeStream rejects mismatched or empty source/destination arrays.
func validateEdgeStream(op string, src, dst []int64) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%s: %d sources, %d destinations: %w", op, len(src), len(dst), ErrLengthMismatch)
	}
	if len(src) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmptyEdgeList)
	}
	return nil
}

// nodeUniverse derives the dense node count: max referenced id + 1, but never
// below minNodes (adjacency matrices fix the node count by dimension, not by
// which ids carry edges).
func nodeUniverse(src, dst []int64, minNodes int64) int64 {
	n := minNodes
	for _, s := range src {
		if s+1 > n {
			n = s + 1
		}
	}
	for _, d := range dst {
		if d+1 > n {
			n = d + 1
		}
	}
	return n
}

// buildUnsorted runs the stable counting-sort strategy on a normalized edge
// stream and assembles the canonical graph.
//
// Stages: (1) node universe; (2) out-degree counts; (3) exclusive prefix sum
// into offsets; (4) cursor-driven scatter recording the permutation; (5) the
// same permutation applied to every edge property column and the edge type
// array. Edges sharing a source keep their input order (stability).
// Complexity: O(edges + nodes + properties).
func buildUnsorted(op string, src, dst []int64, minNodes int64, o options) (*graph.Graph, error) {
	if err := alignEdgeColumns(op, len(src), o); err != nil {
		return nil, err
	}
	n := nodeUniverse(src, dst, minNodes)

	counts := make([]int64, n)
	for _, s := range src {
		counts[s]++
	}
	offsets := make([]int64, n+1)
	for i := int64(0); i < n; i++ {
		offsets[i+1] = offsets[i] + counts[i]
	}

	// Scatter in input order; cursor starts as a copy of offsets, so equal
	// sources fill their bucket front to back — a stable bucket sort.
	cursor := slices.Clone(offsets[:n])
	perm := make([]int, len(src))
	dstOut := make([]int64, len(dst))
	for i, s := range src {
		p := cursor[s]
		cursor[s]++
		perm[i] = int(p)
		dstOut[p] = dst[i]
	}

	gopts, err := permutedGraphOptions(op, perm, o)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(offsets, dstOut, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return g, nil
}

// buildPresorted runs the presorted strategy: verify the caller's ordering
// contract, derive offsets from run boundaries, no permutation.
// Complexity: O(edges + nodes).
func buildPresorted(op string, src, dst []int64, o options) (*graph.Graph, error) {
	if err := alignEdgeColumns(op, len(src), o); err != nil {
		return nil, err
	}
	for i := 1; i < len(src); i++ {
		if src[i] < src[i-1] {
			return nil, fmt.Errorf("%s: source decreases at index %d (%d after %d): %w",
				op, i, src[i], src[i-1], ErrNotSorted)
		}
	}
	n := nodeUniverse(src, dst, 0)

	offsets := make([]int64, n+1)
	node := int64(0)
	for i, s := range src {
		for node < s {
			node++
			offsets[node] = int64(i)
		}
	}
	for node < n {
		node++
		offsets[node] = int64(len(src))
	}

	gopts, err := permutedGraphOptions(op, nil, o)
	if err != nil {
		return nil, err
	}
	g, err := graph.New(offsets, dst, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return g, nil
}

// fromCSR accepts pre-built CSR arrays in the compact offsets convention
// (len(offsets) == numNodes, offsets[i] = exclusive end of node i's range)
// and bypasses the builder. Degenerate/empty graphs are permitted here.
func fromCSR(op string, offsets, dst []int64, o options) (*graph.Graph, error) {
	internal := make([]int64, len(offsets)+1)
	copy(internal[1:], offsets)

	gopts, err := permutedGraphOptions(op, nil, o)
	if err != nil {
		return nil, err
	}
	// graph.New validates monotonicity, the final offset, and every
	// destination; violations surface as graph.ErrOutOfRange.
	g, err := graph.New(internal, dst, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return g, nil
}

// alignEdgeColumns checks that every edge-aligned input matches the edge
// stream length before any permutation is computed.
func alignEdgeColumns(op string, numEdges int, o options) error {
	for _, p := range o.edgeProps {
		if p.col.Len() != numEdges {
			return fmt.Errorf("%s: edge property %q len %d, want %d: %w",
				op, p.name, p.col.Len(), numEdges, ErrLengthMismatch)
		}
	}
	if o.edgeTypes != nil && o.edgeTypes.Len() != numEdges {
		return fmt.Errorf("%s: edge types len %d, want %d: %w",
			op, o.edgeTypes.Len(), numEdges, ErrLengthMismatch)
	}
	return nil
}

// permutedGraphOptions converts staged inputs into graph construction
// options, running edge-aligned data through the builder permutation
// (perm == nil means identity: presorted and raw-CSR paths).
func permutedGraphOptions(op string, perm []int, o options) ([]graph.Option, error) {
	gopts := make([]graph.Option, 0, len(o.nodeProps)+len(o.edgeProps)+2)
	for _, p := range o.nodeProps {
		gopts = append(gopts, graph.WithNodeProperty(p.name, p.col))
	}
	for _, p := range o.edgeProps {
		col := p.col
		if perm != nil {
			var err error
			if col, err = graph.PermuteColumn(col, perm); err != nil {
				return nil, fmt.Errorf("%s: edge property %q: %w", op, p.name, err)
			}
		}
		gopts = append(gopts, graph.WithEdgeProperty(p.name, col))
	}
	if o.nodeTypes != nil {
		gopts = append(gopts, graph.WithNodeTypes(o.nodeTypes))
	}
	if o.edgeTypes != nil {
		arr := o.edgeTypes
		if perm != nil {
			var err error
			if arr, err = arr.Permute(perm); err != nil {
				return nil, fmt.Errorf("%s: edge types: %w", op, err)
			}
		}
		gopts = append(gopts, graph.WithEdgeTypes(arr))
	}
	return gopts, nil
}
