// SPDX-License-Identifier: MIT

// Package convert turns heterogeneous graph inputs into the canonical CSR
// form of package graph. One adapter per source shape, all converging on a
// shared edge-stream contract:
//
//   - FromEdgeListArrays        — parallel source/destination arrays, any order
//   - FromSortedEdgeListArrays  — arrays already grouped by ascending source
//   - FromAdjacencyMatrix       — square dense matrix, nonzero cell = edge,
//     cell value = edge property "weight"
//   - FromEdgeListMatrix        — two-column matrix, one row per edge
//   - FromTable                 — arrow.Record with named source/destination
//     columns; remaining columns become edge properties
//   - FromCSR                   — pre-built CSR arrays, builder bypassed
//   - FromSource                — anything implementing the Source contract
//     (external exchange-format parsers)
//
// Id arrays are accepted in any integer width and signedness; a single
// range-checked normalization step converts them to the canonical int64
// width, rejecting negatives and uint64 overflow (never truncating).
//
// The unsorted strategy is a stable counting sort: edges sharing a source
// keep their relative input order, and one permutation carries the
// destination array, every edge property column, and the edge type array,
// so property-edge alignment holds by construction. The presorted strategy
// verifies its ordering contract and fails with ErrNotSorted rather than
// re-sorting silently.
//
// Construction is all-or-nothing: on any error no graph is built.
//
// Errors:
//
//	ErrBadShape        - matrix input with the wrong dimensionality.
//	ErrLengthMismatch  - source/destination or aligned columns disagree in length.
//	ErrEmptyEdgeList   - edge-list input with zero edges.
//	ErrNotSorted       - presorted contract violated.
//	ErrMissingColumn   - table lacks a source or destination column.
//	ErrColumnType      - table column of an unsupported type.
//	ErrNullValue       - table column containing nulls.
package convert
