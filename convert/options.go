// SPDX-License-Identifier: MIT
// Package: propgraph/convert
//
// options.go — functional options shared by all adapters.
//
// Options only stage inputs; validation happens inside the adapters (lengths
// against the edge stream) and graph.New (lengths against the node count).
// Option constructors panic only on nonsensical arguments (programmer error),
// never at runtime.

package convert

import (
	"github.com/katalvlaran/propgraph/etype"
	"github.com/katalvlaran/propgraph/graph"
)

// Default column names for the table adapter.
const (
	DefaultSourceColumn      = "source"
	DefaultDestinationColumn = "destination"
)

// weightProperty is the edge property the adjacency-matrix adapter emits.
const weightProperty = "weight"

const (
	panicEmptyName  = "convert: property/column name must not be empty"
	panicNilColumn  = "convert: column must not be nil"
	panicNilTypeArr = "convert: type array must not be nil"
)

// Option configures an adapter call.
type Option func(*options)

type options struct {
	nodeProps []namedColumn
	edgeProps []namedColumn
	nodeTypes *etype.Array
	edgeTypes *etype.Array
	srcColumn string
	dstColumn string
}

type namedColumn struct {
	name string
	col  graph.Column
}

// WithNodeProperty attaches a node property column, aligned with node ids
// (length must equal the final node count).
func WithNodeProperty(name string, col graph.Column) Option {
	if name == "" {
		panic(panicEmptyName)
	}
	if col == nil {
		panic(panicNilColumn)
	}
	return func(o *options) { o.nodeProps = append(o.nodeProps, namedColumn{name, col}) }
}

// WithEdgeProperty attaches an edge property column, aligned with the input
// edge order. The builder re-permutes it together with the edges.
func WithEdgeProperty(name string, col graph.Column) Option {
	if name == "" {
		panic(panicEmptyName)
	}
	if col == nil {
		panic(panicNilColumn)
	}
	return func(o *options) { o.edgeProps = append(o.edgeProps, namedColumn{name, col}) }
}

// WithNodeTypes attaches the node entity-type array (length must equal the
// final node count).
func WithNodeTypes(a *etype.Array) Option {
	if a == nil {
		panic(panicNilTypeArr)
	}
	return func(o *options) { o.nodeTypes = a }
}

// WithEdgeTypes attaches the edge entity-type array, aligned with the input
// edge order; the builder re-permutes it together with the edges.
func WithEdgeTypes(a *etype.Array) Option {
	if a == nil {
		panic(panicNilTypeArr)
	}
	return func(o *options) { o.edgeTypes = a }
}

// WithSourceColumn overrides the table adapter's source column name.
func WithSourceColumn(name string) Option {
	if name == "" {
		panic(panicEmptyName)
	}
	return func(o *options) { o.srcColumn = name }
}

// WithDestinationColumn overrides the table adapter's destination column name.
func WithDestinationColumn(name string) Option {
	if name == "" {
		panic(panicEmptyName)
	}
	return func(o *options) { o.dstColumn = name }
}

// gatherOptions resolves setters against defaults; last writer wins.
func gatherOptions(opts ...Option) options {
	o := options{
		srcColumn: DefaultSourceColumn,
		dstColumn: DefaultDestinationColumn,
	}
	for _, set := range opts {
		set(&o)
	}
	return o
}
