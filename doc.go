// Package propgraph is a graph-construction and canonicalization engine:
// it accepts graphs described in heterogeneous input shapes and produces one
// canonical, immutable representation — a compressed sparse-row topology with
// columnar properties and a multi-valued entity-type system.
//
// 🚀 What is propgraph?
//
//	A library that turns messy graph inputs into one invariant-preserving form:
//		• Input shapes: dense adjacency matrices, unsorted or pre-sorted
//		  edge-list arrays, 2-column edge matrices, columnar tables
//		  (Apache Arrow records), raw CSR arrays
//		• Stable, linear-time CSR construction — edges sharing a source keep
//		  their input order, and properties/types ride the same permutation
//		• Entity types: atomic named categories plus set-identity composites,
//		  deduplicated lazily
//		• Persistence: write a graph to a file:// location and load it back
//
// ✨ Why choose propgraph?
//
//   - All-or-nothing construction – no partially valid graph is ever observable
//   - Frozen after construction – share across goroutines without locks
//   - Explicit error taxonomy – package-prefixed sentinels, errors.Is friendly
//   - Canonical id width – any integer input width, range-checked, never truncated
//
// Everything is organized under four subpackages:
//
//	convert/ — input adapters and the CSR builder (counting sort, presorted scan)
//	etype/   — entity-type registries, composite-set interning, type arrays
//	graph/   — the canonical immutable Graph container and property columns
//	persist/ — write/load of canonical graphs (snappy + CRC32 framing)
//
// Quick start:
//
//	g, err := convert.FromEdgeListArrays(
//		[]int64{0, 10, 1},
//		[]int64{1, 0, 2},
//	)
//	// g.NumNodes() == 11, canonical destinations [1, 2, 0]
package propgraph
