// SPDX-License-Identifier: MIT

// Package graph: read-only query surface of the canonical Graph. All methods
// are safe for unsynchronized concurrent use; none mutates the receiver.

package graph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/propgraph/etype"
)

// NumNodes returns the node count. Node ids are dense in [0, NumNodes()).
// Complexity: O(1).
func (g *Graph) NumNodes() int64 { return int64(len(g.offsets) - 1) }

// NumEdges returns the edge count. Edge ids are dense in [0, NumEdges()) in
// CSR order. Complexity: O(1).
func (g *Graph) NumEdges() int64 { return int64(len(g.dst)) }

// OutEdgeIDs returns the half-open edge-id interval owned by node.
// Complexity: O(1).
func (g *Graph) OutEdgeIDs(node int64) (EdgeRange, error) {
	if node < 0 || node >= g.NumNodes() {
		return EdgeRange{}, fmt.Errorf("OutEdgeIDs(%d): %w", node, ErrOutOfRange)
	}
	return EdgeRange{Start: g.offsets[node], End: g.offsets[node+1]}, nil
}

// OutDegree returns the number of out-edges of node. Complexity: O(1).
func (g *Graph) OutDegree(node int64) (int64, error) {
	r, err := g.OutEdgeIDs(node)
	if err != nil {
		return 0, err
	}
	return r.Len(), nil
}

// EdgeDst returns the destination node of edge. Complexity: O(1).
func (g *Graph) EdgeDst(edge int64) (int64, error) {
	if edge < 0 || edge >= g.NumEdges() {
		return 0, fmt.Errorf("EdgeDst(%d): %w", edge, ErrOutOfRange)
	}
	return g.dst[edge], nil
}

// NodeProperty returns the node property column registered under name.
func (g *Graph) NodeProperty(name string) (Column, error) {
	col, ok := g.nodeProps[name]
	if !ok {
		return nil, fmt.Errorf("NodeProperty(%q): %w", name, ErrPropertyNotFound)
	}
	return col, nil
}

// EdgeProperty returns the edge property column registered under name.
func (g *Graph) EdgeProperty(name string) (Column, error) {
	col, ok := g.edgeProps[name]
	if !ok {
		return nil, fmt.Errorf("EdgeProperty(%q): %w", name, ErrPropertyNotFound)
	}
	return col, nil
}

// NodePropertyNames returns the attached node property names, sorted.
func (g *Graph) NodePropertyNames() []string { return sortedNames(g.nodeProps) }

// EdgePropertyNames returns the attached edge property names, sorted.
func (g *Graph) EdgePropertyNames() []string { return sortedNames(g.edgeProps) }

func sortedNames(m map[string]Column) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NodeTypes returns the node entity-type array, or nil when the graph was
// built without node types.
func (g *Graph) NodeTypes() *etype.Array { return g.nodeTypes }

// EdgeTypes returns the edge entity-type array, or nil when the graph was
// built without edge types.
func (g *Graph) EdgeTypes() *etype.Array { return g.edgeTypes }

// NodeType returns the composite type id of node; etype.Unknown when the
// graph carries no node types.
func (g *Graph) NodeType(node int64) (etype.ID, error) {
	if node < 0 || node >= g.NumNodes() {
		return etype.Unknown, fmt.Errorf("NodeType(%d): %w", node, ErrOutOfRange)
	}
	if g.nodeTypes == nil {
		return etype.Unknown, nil
	}
	return g.nodeTypes.Get(node)
}

// EdgeType returns the composite type id of edge; etype.Unknown when the
// graph carries no edge types.
func (g *Graph) EdgeType(edge int64) (etype.ID, error) {
	if edge < 0 || edge >= g.NumEdges() {
		return etype.Unknown, fmt.Errorf("EdgeType(%d): %w", edge, ErrOutOfRange)
	}
	if g.edgeTypes == nil {
		return etype.Unknown, nil
	}
	return g.edgeTypes.Get(edge)
}

// DoesNodeHaveType reports whether node holds the atomic type t. Untyped
// graphs report false for every atomic of their (absent) registry; an
// AtomicType from a foreign registry fails with etype.ErrForeignType.
func (g *Graph) DoesNodeHaveType(node int64, t etype.AtomicType) (bool, error) {
	if node < 0 || node >= g.NumNodes() {
		return false, fmt.Errorf("DoesNodeHaveType(%d): %w", node, ErrOutOfRange)
	}
	if g.nodeTypes == nil {
		return false, nil
	}
	return g.nodeTypes.HasType(node, t)
}

// DoesEdgeHaveType reports whether edge holds the atomic type t.
func (g *Graph) DoesEdgeHaveType(edge int64, t etype.AtomicType) (bool, error) {
	if edge < 0 || edge >= g.NumEdges() {
		return false, fmt.Errorf("DoesEdgeHaveType(%d): %w", edge, ErrOutOfRange)
	}
	if g.edgeTypes == nil {
		return false, nil
	}
	return g.edgeTypes.HasType(edge, t)
}

// Offsets returns the live CSR offsets array (len NumNodes+1). The slice is
// shared, not copied: callers must treat it as read-only. Intended for
// persistence and zero-copy interop.
func (g *Graph) Offsets() []int64 { return g.offsets }

// Destinations returns the live CSR destinations array (len NumEdges).
// Shared, read-only; see Offsets.
func (g *Graph) Destinations() []int64 { return g.dst }
