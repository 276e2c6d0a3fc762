// SPDX-License-Identifier: MIT
// Package: propgraph/convert
//
// impl_table.go — the columnar-table adapter over arrow.Record.
//
// Id columns accept every arrow integer width and run through the same
// canonical normalization as the array adapters. Remaining columns become
// edge properties: integers widen to int64, floats to float64, strings and
// booleans map directly. Canonical columns are dense, so nulls are rejected.

package convert

import (
	"fmt"

	"github.com/apache/arrow/go/v14/arrow"
	"github.com/apache/arrow/go/v14/arrow/array"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/propgraph/graph"
)

func fromTable(op string, rec arrow.Record, o options) (*graph.Graph, error) {
	schema := rec.Schema()
	srcIdx := fieldIndex(schema, o.srcColumn)
	if srcIdx < 0 {
		return nil, fmt.Errorf("%s: source column %q: %w", op, o.srcColumn, ErrMissingColumn)
	}
	dstIdx := fieldIndex(schema, o.dstColumn)
	if dstIdx < 0 {
		return nil, fmt.Errorf("%s: destination column %q: %w", op, o.dstColumn, ErrMissingColumn)
	}

	src, err := idColumn(op, o.srcColumn, rec.Column(srcIdx))
	if err != nil {
		return nil, err
	}
	dst, err := idColumn(op, o.dstColumn, rec.Column(dstIdx))
	if err != nil {
		return nil, err
	}
	if err = validateEdgeStream(op, src, dst); err != nil {
		return nil, err
	}

	// Every remaining column travels with its edges as a property.
	for i := 0; i < int(rec.NumCols()); i++ {
		if i == srcIdx || i == dstIdx {
			continue
		}
		name := rec.ColumnName(i)
		col, err := propertyColumn(op, name, rec.Column(i))
		if err != nil {
			return nil, err
		}
		o.edgeProps = append(o.edgeProps, namedColumn{name, col})
	}

	return buildUnsorted(op, src, dst, 0, o)
}

// fieldIndex resolves a column name to its schema index, -1 when absent.
func fieldIndex(s *arrow.Schema, name string) int {
	idxs := s.FieldIndices(name)
	if len(idxs) == 0 {
		return -1
	}
	return idxs[0]
}

// idColumn decodes an arrow integer column of any width into canonical ids.
func idColumn(op, name string, a arrow.Array) ([]int64, error) {
	if a.NullN() > 0 {
		return nil, fmt.Errorf("%s: column %q: %w", op, name, ErrNullValue)
	}
	what := fmt.Sprintf("%s: column %q", op, name)
	switch col := a.(type) {
	case *array.Int8:
		return normalizeIDs(col.Int8Values(), what)
	case *array.Int16:
		return normalizeIDs(col.Int16Values(), what)
	case *array.Int32:
		return normalizeIDs(col.Int32Values(), what)
	case *array.Int64:
		return normalizeIDs(col.Int64Values(), what)
	case *array.Uint8:
		return normalizeIDs(col.Uint8Values(), what)
	case *array.Uint16:
		return normalizeIDs(col.Uint16Values(), what)
	case *array.Uint32:
		return normalizeIDs(col.Uint32Values(), what)
	case *array.Uint64:
		return normalizeIDs(col.Uint64Values(), what)
	default:
		return nil, fmt.Errorf("%s: column %q is %s, want an integer type: %w",
			op, name, a.DataType(), ErrColumnType)
	}
}

// propertyColumn converts an arrow column into a canonical property column.
func propertyColumn(op, name string, a arrow.Array) (graph.Column, error) {
	if a.NullN() > 0 {
		return nil, fmt.Errorf("%s: column %q: %w", op, name, ErrNullValue)
	}
	switch col := a.(type) {
	case *array.Int8:
		return intProperty(op, name, col.Int8Values())
	case *array.Int16:
		return intProperty(op, name, col.Int16Values())
	case *array.Int32:
		return intProperty(op, name, col.Int32Values())
	case *array.Int64:
		return graph.NewColumn(col.Int64Values()), nil
	case *array.Uint8:
		return intProperty(op, name, col.Uint8Values())
	case *array.Uint16:
		return intProperty(op, name, col.Uint16Values())
	case *array.Uint32:
		return intProperty(op, name, col.Uint32Values())
	case *array.Uint64:
		return intProperty(op, name, col.Uint64Values())
	case *array.Float32:
		vals := make([]float64, col.Len())
		for i, v := range col.Float32Values() {
			vals[i] = float64(v)
		}
		return graph.NewColumn(vals), nil
	case *array.Float64:
		return graph.NewColumn(col.Float64Values()), nil
	case *array.String:
		vals := make([]string, col.Len())
		for i := range vals {
			vals[i] = col.Value(i)
		}
		return graph.NewColumn(vals), nil
	case *array.Boolean:
		vals := make([]bool, col.Len())
		for i := range vals {
			vals[i] = col.Value(i)
		}
		return graph.NewColumn(vals), nil
	default:
		return nil, fmt.Errorf("%s: column %q is %s: %w", op, name, a.DataType(), ErrColumnType)
	}
}

// intProperty widens integers of any width to int64 without changing sign.
// Only uint64 can overflow; overflow fails with graph.ErrOutOfRange.
func intProperty[T constraints.Integer](op, name string, vals []T) (graph.Column, error) {
	out := make([]int64, len(vals))
	for i, v := range vals {
		n := int64(v)
		if v > 0 && n < 0 {
			return nil, fmt.Errorf("%s: column %q value %v: %w", op, name, v, graph.ErrOutOfRange)
		}
		out[i] = n
	}
	return graph.NewColumn(out), nil
}
