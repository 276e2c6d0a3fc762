// SPDX-License-Identifier: MIT

// Package graph: typed columnar properties. A Column is a sealed, immutable,
// id-aligned array of one of four element kinds. The CSR builder keeps
// property-edge alignment correct by running every column through the single
// PermuteColumn function with the same permutation it applies to the
// destination array.

package graph

import (
	"fmt"
	"slices"
)

// ColumnValue constrains the element types a property column may hold.
// The set is exact (no ~): the persisted form and the Kind mapping depend on
// concrete element types.
type ColumnValue interface {
	int64 | float64 | string | bool
}

// Kind reports a column's element type without generics at the call site.
type Kind uint8

const (
	KindInt64 Kind = iota + 1
	KindFloat64
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Column is a typed, immutable property array. Implementations are sealed to
// this package; construct with NewColumn and read with Values.
type Column interface {
	// Len returns the number of elements.
	Len() int
	// Kind returns the element type.
	Kind() Kind

	// gather applies a construction permutation (sealed).
	gather(perm []int) Column
}

// column is the sole Column implementation.
type column[T ColumnValue] struct {
	data []T
}

// NewColumn builds an immutable column from values. The input slice is
// copied; callers keep ownership of their array and the column never aliases
// it. Complexity: O(n).
func NewColumn[T ColumnValue](values []T) Column {
	return &column[T]{data: slices.Clone(values)}
}

// Values returns a copy of the column's elements as []T, or ErrColumnType if
// the column holds a different element type. Complexity: O(n).
func Values[T ColumnValue](c Column) ([]T, error) {
	if c == nil {
		return nil, fmt.Errorf("Values: %w", ErrNilColumn)
	}
	tc, ok := c.(*column[T])
	if !ok {
		return nil, fmt.Errorf("Values: column holds %s: %w", c.Kind(), ErrColumnType)
	}
	return slices.Clone(tc.data), nil
}

func (c *column[T]) Len() int { return len(c.data) }

func (c *column[T]) Kind() Kind {
	var zero T
	switch any(zero).(type) {
	case int64:
		return KindInt64
	case float64:
		return KindFloat64
	case string:
		return KindString
	default:
		return KindBool
	}
}

// gather scatters element i to position perm[i] in a fresh column.
func (c *column[T]) gather(perm []int) Column {
	out := make([]T, len(c.data))
	for i, p := range perm {
		out[p] = c.data[i]
	}
	return &column[T]{data: out}
}

// PermuteColumn applies a construction permutation to a column: output index
// perm[i] receives input element i. perm must be a bijection on [0, Len());
// only its length is validated here, the CSR builder guarantees bijectivity.
// Complexity: O(n).
func PermuteColumn(c Column, perm []int) (Column, error) {
	if c == nil {
		return nil, fmt.Errorf("PermuteColumn: %w", ErrNilColumn)
	}
	if len(perm) != c.Len() {
		return nil, fmt.Errorf("PermuteColumn: perm len %d, column len %d: %w",
			len(perm), c.Len(), ErrLengthMismatch)
	}
	return c.gather(perm), nil
}
