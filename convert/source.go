// SPDX-License-Identifier: MIT
// Package: propgraph/convert
//
// source.go — the contract external exchange-format parsers implement.
//
// Parsing self-describing formats (GraphML and friends) is out of scope for
// this module; a parser reduces its input to the edge-stream contract below
// and hands it to FromSource, which feeds the unsorted strategy.

package convert

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/propgraph/graph"
)

// Source is an already-parsed external graph input: canonical-width id
// arrays plus id-aligned property columns. Implementations report parse
// failures from the accessors; FromSource propagates them unchanged.
type Source interface {
	// Edges returns the parallel source/destination arrays in input order.
	Edges() (src, dst []int64, err error)

	// EdgeProperties returns property columns aligned with the input edge
	// order, keyed by name. May be empty.
	EdgeProperties() (map[string]graph.Column, error)

	// NodeProperties returns property columns aligned with node ids, keyed
	// by name. May be empty.
	NodeProperties() (map[string]graph.Column, error)
}

// FromSource builds a graph from an external parser's output via the
// unsorted strategy. Options behave exactly as on FromEdgeListArrays;
// type arrays are attached the same way.
func FromSource(s Source, opts ...Option) (*graph.Graph, error) {
	const op = "FromSource"
	o := gatherOptions(opts...)

	src, dst, err := s.Edges()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if src, err = normalizeIDs(src, op+": source"); err != nil {
		return nil, err
	}
	if dst, err = normalizeIDs(dst, op+": destination"); err != nil {
		return nil, err
	}
	if err = validateEdgeStream(op, src, dst); err != nil {
		return nil, err
	}

	eprops, err := s.EdgeProperties()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	nprops, err := s.NodeProperties()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// Deterministic attachment order keeps duplicate-name errors stable.
	for _, name := range sortedKeys(eprops) {
		o.edgeProps = append(o.edgeProps, namedColumn{name, eprops[name]})
	}
	for _, name := range sortedKeys(nprops) {
		o.nodeProps = append(o.nodeProps, namedColumn{name, nprops[name]})
	}

	return buildUnsorted(op, src, dst, 0, o)
}

func sortedKeys(m map[string]graph.Column) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
