// SPDX-License-Identifier: MIT
// Package: propgraph/convert
//
// errors.go — sentinel errors for the convert package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch via errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     implementations attach context with %w at the call site.
//   - Range violations on id/offset values reuse graph.ErrOutOfRange — the
//     canonical container owns the notion of "representable bounds".

package convert

import "errors"

// ErrBadShape indicates matrix input with the wrong dimensionality: a ragged
// or non-square adjacency matrix, or an edge-list matrix whose rows do not
// have exactly two columns.
// Usage: if errors.Is(err, ErrBadShape) { /* reshape input */ }.
var ErrBadShape = errors.New("convert: invalid input shape")

// ErrLengthMismatch indicates parallel inputs that disagree in length:
// source vs destination arrays, or a property/type column not aligned with
// the edge stream it accompanies.
var ErrLengthMismatch = errors.New("convert: input length mismatch")

// ErrEmptyEdgeList indicates an edge-list input with zero edges. A graph must
// be constructed from at least one edge on the edge-list paths; only FromCSR
// permits degenerate graphs.
var ErrEmptyEdgeList = errors.New("convert: empty edge list")

// ErrNotSorted indicates that FromSortedEdgeListArrays observed a decrease in
// source id. The presorted contract is the caller's; no re-sort is performed.
var ErrNotSorted = errors.New("convert: sources not sorted")

// ErrMissingColumn indicates a table without the configured source or
// destination column.
var ErrMissingColumn = errors.New("convert: missing table column")

// ErrColumnType indicates a table column whose type cannot be represented
// (ids must be integers; properties must be integer, float, string, or bool).
var ErrColumnType = errors.New("convert: unsupported column type")

// ErrNullValue indicates a table column containing nulls; canonical columns
// are dense.
var ErrNullValue = errors.New("convert: null value in column")
