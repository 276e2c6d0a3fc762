// SPDX-License-Identifier: MIT
// Package: propgraph/convert
//
// impl_matrix.go — dense-matrix adapters: adjacency form and two-column
// edge-list form.

package convert

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/propgraph/graph"
)

// edgeListColumns is the required row width of the edge-list matrix form.
const edgeListColumns = 2

// fromAdjacencyMatrix reduces a square dense matrix to an edge stream: one
// edge per nonzero cell in row-major order, the cell value becoming the
// "weight" edge property. Row-major emission already groups edges by
// ascending source, so the unsorted strategy's scatter degenerates to an
// identity permutation here.
func fromAdjacencyMatrix[T Number](op string, m [][]T, o options) (*graph.Graph, error) {
	n := int64(len(m))
	for r, row := range m {
		if int64(len(row)) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				op, r, len(row), n, ErrBadShape)
		}
	}

	var (
		src, dst []int64
		weight   []float64
	)
	for r := int64(0); r < n; r++ {
		for c := int64(0); c < n; c++ {
			if v := m[r][c]; v != 0 {
				src = append(src, r)
				dst = append(dst, c)
				weight = append(weight, float64(v))
			}
		}
	}

	// The weight column precedes user options so a caller-supplied "weight"
	// property surfaces as graph.ErrDuplicateProperty.
	o.edgeProps = append([]namedColumn{{weightProperty, graph.NewColumn(weight)}}, o.edgeProps...)
	return buildUnsorted(op, src, dst, n, o)
}

// fromEdgeListMatrix splits a two-column matrix into source/destination
// vectors and feeds the unsorted strategy.
func fromEdgeListMatrix[T constraints.Integer](op string, m [][]T, o options) (*graph.Graph, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyEdgeList)
	}
	srcRaw := make([]T, len(m))
	dstRaw := make([]T, len(m))
	for r, row := range m {
		if len(row) != edgeListColumns {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				op, r, len(row), edgeListColumns, ErrBadShape)
		}
		srcRaw[r] = row[0]
		dstRaw[r] = row[1]
	}

	src, err := normalizeIDs(srcRaw, op+": source")
	if err != nil {
		return nil, err
	}
	dst, err := normalizeIDs(dstRaw, op+": destination")
	if err != nil {
		return nil, err
	}
	return buildUnsorted(op, src, dst, 0, o)
}
