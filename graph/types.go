// SPDX-License-Identifier: MIT

// Package graph: this file declares the Graph container, its construction
// options, sentinel errors, and the New constructor that enforces every
// topology invariant before a Graph becomes observable.

package graph

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/propgraph/etype"
)

// Sentinel errors for canonical-graph construction and queries.
var (
	// ErrOutOfRange indicates an id, offset, or destination outside its valid
	// range (negative id, non-monotonic offsets, destination ≥ NumNodes, ...).
	ErrOutOfRange = errors.New("graph: value out of range")

	// ErrLengthMismatch indicates a property column or type array whose length
	// does not match the entity count it must align with.
	ErrLengthMismatch = errors.New("graph: length mismatch")

	// ErrDuplicateProperty indicates two properties registered under one name
	// within the same scope (node or edge).
	ErrDuplicateProperty = errors.New("graph: duplicate property name")

	// ErrPropertyNotFound indicates a property name that was never attached.
	ErrPropertyNotFound = errors.New("graph: property not found")

	// ErrColumnType indicates typed column access with the wrong element type.
	ErrColumnType = errors.New("graph: column type mismatch")

	// ErrNilColumn indicates a nil Column where a value is required.
	ErrNilColumn = errors.New("graph: nil column")
)

// EdgeRange is the half-open interval [Start, End) of edge ids owned by one
// source node in CSR order.
type EdgeRange struct {
	Start int64
	End   int64
}

// Len returns the number of edges in the range (the node's out-degree).
func (r EdgeRange) Len() int64 { return r.End - r.Start }

// Graph is the canonical immutable directed graph: CSR topology plus columnar
// properties and optional entity types. Once New returns, the Graph is frozen
// and safe for unsynchronized concurrent reads.
type Graph struct {
	offsets []int64 // len NumNodes+1, non-decreasing, offsets[0]==0
	dst     []int64 // len NumEdges, values in [0, NumNodes)

	nodeProps map[string]Column // id-aligned, len NumNodes each
	edgeProps map[string]Column // id-aligned, len NumEdges each

	nodeTypes *etype.Array // nil when no node types were supplied
	edgeTypes *etype.Array // nil when no edge types were supplied
}

// Option attaches properties or entity types during construction. Options
// only stage data; all validation happens inside New.
type Option func(*config)

type config struct {
	nodeProps []namedColumn
	edgeProps []namedColumn
	nodeTypes *etype.Array
	edgeTypes *etype.Array
}

type namedColumn struct {
	name string
	col  Column
}

// WithNodeProperty attaches a node property column (length must equal
// NumNodes).
func WithNodeProperty(name string, col Column) Option {
	return func(c *config) { c.nodeProps = append(c.nodeProps, namedColumn{name, col}) }
}

// WithEdgeProperty attaches an edge property column (length must equal
// NumEdges, index-aligned with CSR edge ids).
func WithEdgeProperty(name string, col Column) Option {
	return func(c *config) { c.edgeProps = append(c.edgeProps, namedColumn{name, col}) }
}

// WithNodeTypes attaches the node entity-type array (length NumNodes).
func WithNodeTypes(a *etype.Array) Option {
	return func(c *config) { c.nodeTypes = a }
}

// WithEdgeTypes attaches the edge entity-type array (length NumEdges,
// index-aligned with CSR edge ids).
func WithEdgeTypes(a *etype.Array) Option {
	return func(c *config) { c.edgeTypes = a }
}

// New constructs a canonical Graph from already-canonical CSR arrays.
//
// offsets must have length NumNodes+1 with offsets[0]==0, be non-decreasing,
// and end at len(dst); every destination must lie in [0, NumNodes). Property
// columns and type arrays must align with their entity counts. Violations
// fail with ErrOutOfRange / ErrLengthMismatch / ErrDuplicateProperty and no
// Graph is constructed. Inputs are copied; the Graph exclusively owns its
// arrays afterwards.
//
// Complexity: O(NumNodes + NumEdges + properties).
func New(offsets, dst []int64, opts ...Option) (*Graph, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("New: empty offsets: %w", ErrLengthMismatch)
	}
	if offsets[0] != 0 {
		return nil, fmt.Errorf("New: offsets[0] = %d: %w", offsets[0], ErrOutOfRange)
	}
	numNodes := int64(len(offsets) - 1)
	numEdges := int64(len(dst))
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, fmt.Errorf("New: offsets decrease at %d: %w", i, ErrOutOfRange)
		}
	}
	if offsets[numNodes] != numEdges {
		return nil, fmt.Errorf("New: offsets end at %d, want %d edges: %w",
			offsets[numNodes], numEdges, ErrOutOfRange)
	}
	for i, d := range dst {
		if d < 0 || d >= numNodes {
			return nil, fmt.Errorf("New: destination %d of edge %d: %w", d, i, ErrOutOfRange)
		}
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	nodeProps, err := collectProps(cfg.nodeProps, numNodes, "node")
	if err != nil {
		return nil, err
	}
	edgeProps, err := collectProps(cfg.edgeProps, numEdges, "edge")
	if err != nil {
		return nil, err
	}
	if cfg.nodeTypes != nil && int64(cfg.nodeTypes.Len()) != numNodes {
		return nil, fmt.Errorf("New: node types len %d, want %d: %w",
			cfg.nodeTypes.Len(), numNodes, ErrLengthMismatch)
	}
	if cfg.edgeTypes != nil && int64(cfg.edgeTypes.Len()) != numEdges {
		return nil, fmt.Errorf("New: edge types len %d, want %d: %w",
			cfg.edgeTypes.Len(), numEdges, ErrLengthMismatch)
	}

	return &Graph{
		offsets:   slices.Clone(offsets),
		dst:       slices.Clone(dst),
		nodeProps: nodeProps,
		edgeProps: edgeProps,
		nodeTypes: cfg.nodeTypes,
		edgeTypes: cfg.edgeTypes,
	}, nil
}

// collectProps validates names and lengths and freezes the columns.
func collectProps(props []namedColumn, want int64, scope string) (map[string]Column, error) {
	if len(props) == 0 {
		return nil, nil
	}
	out := make(map[string]Column, len(props))
	for _, p := range props {
		if p.col == nil {
			return nil, fmt.Errorf("New: %s property %q: %w", scope, p.name, ErrNilColumn)
		}
		if _, dup := out[p.name]; dup {
			return nil, fmt.Errorf("New: %s property %q: %w", scope, p.name, ErrDuplicateProperty)
		}
		if int64(p.col.Len()) != want {
			return nil, fmt.Errorf("New: %s property %q len %d, want %d: %w",
				scope, p.name, p.col.Len(), want, ErrLengthMismatch)
		}
		out[p.name] = p.col
	}
	return out, nil
}
