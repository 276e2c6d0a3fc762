// SPDX-License-Identifier: MIT

// Package graph provides the canonical, immutable property-graph container:
// a compressed sparse-row (CSR) topology with attached columnar properties
// and optional multi-valued entity types for nodes and edges.
//
// The Graph G = (V,E) is directed and dense-id based:
//
//   - Nodes are integers in [0, NumNodes()); they are implied by the topology,
//     never listed explicitly. A node with no incident edges but an id below
//     the maximum referenced id is still a real node.
//   - Edges are integers in [0, NumEdges()) in CSR order: the out-edges of
//     node i occupy the half-open interval [offsets[i], offsets[i+1]).
//   - Multi-edges and self-loops are ordinary edges; no deduplication occurs.
//
// Why use graph.Graph?
//
//   - Frozen after construction — share it across any number of concurrent
//     readers without synchronization.
//   - Invariants enforced once, in New — offsets monotonicity, destination
//     ranges, property and type-array alignment. No partially valid Graph is
//     ever observable.
//   - Columnar properties — typed, id-aligned arrays (int64, float64, string,
//     bool) built via NewColumn and read via Values.
//
// Construction is normally performed by the convert package; New is the
// low-level entry point that convert (and the persist loader) feed.
//
// Errors:
//
//	ErrOutOfRange        - id, offset, or destination outside its valid range.
//	ErrLengthMismatch    - property column or type array misaligned with the graph.
//	ErrDuplicateProperty - two properties registered under one name.
//	ErrPropertyNotFound  - unknown property name queried.
//	ErrColumnType        - typed access with the wrong element type.
//	ErrNilColumn         - nil Column supplied where a value is required.
package graph
