// SPDX-License-Identifier: MIT

package graph_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/graph"
)

// k3 is the complete directed graph on 3 nodes: offsets in the internal
// NumNodes+1 form, two out-edges per node.
var (
	k3Offsets = []int64{0, 2, 4, 6}
	k3Dst     = []int64{1, 2, 0, 2, 0, 1}
)

// TestNew_TopologyValidation verifies that every topology invariant is
// enforced before a Graph becomes observable.
func TestNew_TopologyValidation(t *testing.T) {
	cases := []struct {
		name    string
		offsets []int64
		dst     []int64
		err     error
	}{
		{"EmptyOffsets", []int64{}, nil, graph.ErrLengthMismatch},
		{"NonZeroStart", []int64{1, 2}, []int64{0, 0}, graph.ErrOutOfRange},
		{"DecreasingOffsets", []int64{0, 2, 1}, []int64{0, 1}, graph.ErrOutOfRange},
		{"BadFinalOffset", []int64{0, 1}, []int64{0, 0}, graph.ErrOutOfRange},
		{"DstTooLarge", []int64{0, 1}, []int64{5}, graph.ErrOutOfRange},
		{"DstNegative", []int64{0, 1}, []int64{-1}, graph.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graph.New(tc.offsets, tc.dst)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v, %v) error = %v; want %v", tc.offsets, tc.dst, err, tc.err)
			}
		})
	}
}

// TestNew_PropertyValidation covers alignment and duplicate-name rules.
func TestNew_PropertyValidation(t *testing.T) {
	short := graph.NewColumn([]int64{1, 2})
	full := graph.NewColumn([]int64{1, 2, 3, 4, 5, 6})

	_, err := graph.New(k3Offsets, k3Dst, graph.WithEdgeProperty("p", short))
	require.ErrorIs(t, err, graph.ErrLengthMismatch)

	_, err = graph.New(k3Offsets, k3Dst, graph.WithNodeProperty("p", full))
	require.ErrorIs(t, err, graph.ErrLengthMismatch)

	_, err = graph.New(k3Offsets, k3Dst,
		graph.WithEdgeProperty("p", full),
		graph.WithEdgeProperty("p", full))
	require.ErrorIs(t, err, graph.ErrDuplicateProperty)

	_, err = graph.New(k3Offsets, k3Dst, graph.WithEdgeProperty("p", nil))
	require.ErrorIs(t, err, graph.ErrNilColumn)
}

// TestGraph_Queries exercises the read surface on k3.
func TestGraph_Queries(t *testing.T) {
	g, err := graph.New(k3Offsets, k3Dst,
		graph.WithEdgeProperty("weight", graph.NewColumn([]float64{1, 2, 3, 4, 5, 6})))
	require.NoError(t, err)

	require.EqualValues(t, 3, g.NumNodes())
	require.EqualValues(t, 6, g.NumEdges())

	r, err := g.OutEdgeIDs(1)
	require.NoError(t, err)
	require.Equal(t, graph.EdgeRange{Start: 2, End: 4}, r)
	require.EqualValues(t, 2, r.Len())

	deg, err := g.OutDegree(2)
	require.NoError(t, err)
	require.EqualValues(t, 2, deg)

	d, err := g.EdgeDst(4)
	require.NoError(t, err)
	require.EqualValues(t, 0, d)

	_, err = g.OutEdgeIDs(3)
	require.ErrorIs(t, err, graph.ErrOutOfRange)
	_, err = g.EdgeDst(-1)
	require.ErrorIs(t, err, graph.ErrOutOfRange)

	col, err := g.EdgeProperty("weight")
	require.NoError(t, err)
	vals, err := graph.Values[float64](col)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, vals)

	_, err = g.EdgeProperty("missing")
	require.ErrorIs(t, err, graph.ErrPropertyNotFound)
	_, err = g.NodeProperty("weight")
	require.ErrorIs(t, err, graph.ErrPropertyNotFound)

	require.Equal(t, []string{"weight"}, g.EdgePropertyNames())
	require.Empty(t, g.NodePropertyNames())
}

// TestColumn_Ownership verifies that columns copy on construction and read,
// never aliasing caller arrays.
func TestColumn_Ownership(t *testing.T) {
	src := []int64{1, 2, 3}
	col := graph.NewColumn(src)
	src[0] = 99

	vals, err := graph.Values[int64](col)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, vals)

	vals[1] = 99
	again, err := graph.Values[int64](col)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, again)
}

// TestColumn_KindAndTypedAccess checks Kind reporting and typed mismatches.
func TestColumn_KindAndTypedAccess(t *testing.T) {
	require.Equal(t, graph.KindInt64, graph.NewColumn([]int64{1}).Kind())
	require.Equal(t, graph.KindFloat64, graph.NewColumn([]float64{1}).Kind())
	require.Equal(t, graph.KindString, graph.NewColumn([]string{"a"}).Kind())
	require.Equal(t, graph.KindBool, graph.NewColumn([]bool{true}).Kind())

	_, err := graph.Values[float64](graph.NewColumn([]int64{1}))
	require.ErrorIs(t, err, graph.ErrColumnType)
}

// TestPermuteColumn checks the single alignment mechanism: output index
// perm[i] receives input element i.
func TestPermuteColumn(t *testing.T) {
	col := graph.NewColumn([]string{"a", "b", "c"})
	out, err := graph.PermuteColumn(col, []int{2, 0, 1})
	require.NoError(t, err)
	vals, err := graph.Values[string](out)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c", "a"}, vals)

	_, err = graph.PermuteColumn(col, []int{0, 1})
	require.ErrorIs(t, err, graph.ErrLengthMismatch)
}

// TestGraph_ConcurrentReaders shares one graph across goroutines without
// synchronization; the container is frozen after construction.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g, err := graph.New(k3Offsets, k3Dst)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				n := int64(i % 3)
				r, err := g.OutEdgeIDs(n)
				if err != nil || r.Len() != 2 {
					t.Errorf("OutEdgeIDs(%d) = %v, %v", n, r, err)
					return
				}
				if _, err := g.EdgeDst(int64(i % 6)); err != nil {
					t.Errorf("EdgeDst: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
