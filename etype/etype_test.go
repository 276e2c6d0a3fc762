// SPDX-License-Identifier: MIT

package etype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propgraph/etype"
)

// TestRegistry_AtomicAllocation verifies first-reference allocation order and
// idempotent lookup.
func TestRegistry_AtomicAllocation(t *testing.T) {
	reg := etype.NewRegistry()

	a, err := reg.GetOrAddAtomic("Person")
	require.NoError(t, err)
	b, err := reg.GetOrAddAtomic("Company")
	require.NoError(t, err)
	require.EqualValues(t, 1, a.ID())
	require.EqualValues(t, 2, b.ID())

	again, err := reg.GetOrAddAtomic("Person")
	require.NoError(t, err)
	require.Equal(t, a.ID(), again.ID())

	got, err := reg.Atomic("Company")
	require.NoError(t, err)
	require.Equal(t, b.ID(), got.ID())
	require.Equal(t, "Company", got.Name())

	_, err = reg.Atomic("Robot")
	require.ErrorIs(t, err, etype.ErrUnknownType)

	all := reg.AtomicTypes()
	require.Len(t, all, 2)
	require.Equal(t, "Person", all[0].Name())
	require.Equal(t, "Company", all[1].Name())
}

// TestRegistry_CompositeIdentity: composite identity is the exact atomic set,
// regardless of order or duplicates; singletons collapse to the atomic id and
// the empty set is Unknown.
func TestRegistry_CompositeIdentity(t *testing.T) {
	reg := etype.NewRegistry()
	a, _ := reg.GetOrAddAtomic("A")
	b, _ := reg.GetOrAddAtomic("B")

	ab, err := reg.NonAtomicType(a, b)
	require.NoError(t, err)
	ba, err := reg.NonAtomicType(b, a)
	require.NoError(t, err)
	require.Equal(t, ab, ba)

	aab, err := reg.NonAtomicType(a, a, b)
	require.NoError(t, err)
	require.Equal(t, ab, aab)

	single, err := reg.NonAtomicType(a)
	require.NoError(t, err)
	require.Equal(t, a.ID(), single)

	empty, err := reg.NonAtomicType()
	require.NoError(t, err)
	require.Equal(t, etype.Unknown, empty)

	require.Equal(t, []etype.ID{a.ID(), b.ID()}, reg.SetOf(ab))
	require.Equal(t, []etype.ID{a.ID()}, reg.SetOf(a.ID()))
	require.Nil(t, reg.SetOf(etype.Unknown))
}

// TestRegistry_Membership: Has is exact set membership, not registry
// membership.
func TestRegistry_Membership(t *testing.T) {
	reg := etype.NewRegistry()
	a, _ := reg.GetOrAddAtomic("A")
	b, _ := reg.GetOrAddAtomic("B")
	c, _ := reg.GetOrAddAtomic("C")
	ab, err := reg.NonAtomicType(a, b)
	require.NoError(t, err)

	for _, tc := range []struct {
		atom etype.AtomicType
		want bool
	}{
		{a, true},
		{b, true},
		{c, false},
	} {
		got, err := reg.Has(ab, tc.atom)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "Has(ab, %s)", tc.atom.Name())
	}

	got, err := reg.Has(etype.Unknown, a)
	require.NoError(t, err)
	require.False(t, got)

	got, err = reg.Has(a.ID(), a)
	require.NoError(t, err)
	require.True(t, got)
}

// TestRegistry_ForeignType: atomics are bound to their registry; using one
// against another registry fails rather than silently misinterpreting ids.
func TestRegistry_ForeignType(t *testing.T) {
	nodes := etype.NewRegistry()
	edges := etype.NewRegistry()
	a, _ := nodes.GetOrAddAtomic("A")
	k, _ := edges.GetOrAddAtomic("KNOWS")

	_, err := edges.NonAtomicType(a)
	require.ErrorIs(t, err, etype.ErrForeignType)

	_, err = nodes.Has(a.ID(), k)
	require.ErrorIs(t, err, etype.ErrForeignType)
}

// TestRegistry_TypeName: only atomic ids have a single name.
func TestRegistry_TypeName(t *testing.T) {
	reg := etype.NewRegistry()
	a, _ := reg.GetOrAddAtomic("A")
	b, _ := reg.GetOrAddAtomic("B")
	ab, _ := reg.NonAtomicType(a, b)

	name, err := reg.TypeName(a.ID())
	require.NoError(t, err)
	require.Equal(t, "A", name)

	_, err = reg.TypeName(ab)
	require.ErrorIs(t, err, etype.ErrUnknownType)
	_, err = reg.TypeName(etype.Unknown)
	require.ErrorIs(t, err, etype.ErrUnknownType)
}

// TestFromTypeNames: one singleton set per entity, ids allocated in
// first-reference order so repeated names share one id.
func TestFromTypeNames(t *testing.T) {
	arr, err := etype.FromTypeNames([]string{"A", "B", "A"})
	require.NoError(t, err)
	require.Equal(t, 3, arr.Len())

	a, err := arr.Registry().Atomic("A")
	require.NoError(t, err)
	b, err := arr.Registry().Atomic("B")
	require.NoError(t, err)

	id0, err := arr.Get(0)
	require.NoError(t, err)
	id2, err := arr.Get(2)
	require.NoError(t, err)
	require.Equal(t, a.ID(), id0)
	require.Equal(t, a.ID(), id2)

	id1, err := arr.Get(1)
	require.NoError(t, err)
	require.Equal(t, b.ID(), id1)

	_, err = arr.Get(3)
	require.ErrorIs(t, err, etype.ErrIndexOutOfRange)
	_, err = arr.Get(-1)
	require.ErrorIs(t, err, etype.ErrIndexOutOfRange)
}

// TestFromTypeNameSets covers multi-valued assignment: equal sets share one
// composite id, singletons collapse, empty sets mean Unknown.
func TestFromTypeNameSets(t *testing.T) {
	arr, err := etype.FromTypeNameSets([][]string{
		{"A", "B"},
		{"B"},
		{"B", "A"},
		nil,
	})
	require.NoError(t, err)
	reg := arr.Registry()
	a, _ := reg.Atomic("A")
	b, _ := reg.Atomic("B")

	id0, _ := arr.Get(0)
	id2, _ := arr.Get(2)
	require.Equal(t, id0, id2)
	require.NotEqual(t, a.ID(), id0)
	require.NotEqual(t, b.ID(), id0)

	id1, _ := arr.Get(1)
	require.Equal(t, b.ID(), id1)

	id3, _ := arr.Get(3)
	require.Equal(t, etype.Unknown, id3)

	hasA, err := arr.HasType(0, a)
	require.NoError(t, err)
	require.True(t, hasA)
	hasA, err = arr.HasType(1, a)
	require.NoError(t, err)
	require.False(t, hasA)
	hasA, err = arr.HasType(3, a)
	require.NoError(t, err)
	require.False(t, hasA)
}

// TestArray_Permute: output entity perm[i] receives the type of input i; the
// registry is shared, so ids stay comparable.
func TestArray_Permute(t *testing.T) {
	arr, err := etype.FromTypeNames([]string{"A", "B", "C"})
	require.NoError(t, err)

	out, err := arr.Permute([]int{2, 0, 1})
	require.NoError(t, err)
	require.Same(t, arr.Registry(), out.Registry())

	b, _ := arr.Registry().Atomic("B")
	id0, _ := out.Get(0)
	require.Equal(t, b.ID(), id0)

	c, _ := arr.Registry().Atomic("C")
	id1, _ := out.Get(1)
	require.Equal(t, c.ID(), id1)

	a, _ := arr.Registry().Atomic("A")
	id2, _ := out.Get(2)
	require.Equal(t, a.ID(), id2)

	_, err = arr.Permute([]int{0, 1})
	require.ErrorIs(t, err, etype.ErrLengthMismatch)
}

// TestArray_NameSets: snapshots round-trip through FromTypeNameSets with
// identical membership answers.
func TestArray_NameSets(t *testing.T) {
	arr, err := etype.FromTypeNameSets([][]string{
		{"B", "A"},
		{},
		{"A"},
	})
	require.NoError(t, err)

	// Names come out in registry id order: B was referenced first.
	sets := arr.NameSets()
	require.Equal(t, [][]string{{"B", "A"}, nil, {"A"}}, sets)

	rebuilt, err := etype.FromTypeNameSets(sets)
	require.NoError(t, err)
	for i := int64(0); i < int64(arr.Len()); i++ {
		for _, name := range []string{"A", "B"} {
			at, aerr := arr.Registry().GetOrAddAtomic(name)
			require.NoError(t, aerr)
			bt, berr := rebuilt.Registry().GetOrAddAtomic(name)
			require.NoError(t, berr)
			want, werr := arr.HasType(i, at)
			require.NoError(t, werr)
			got, gerr := rebuilt.HasType(i, bt)
			require.NoError(t, gerr)
			require.Equal(t, want, got, "entity %d type %s", i, name)
		}
	}
}

// TestArray_Clone: deep copy of ids, shared registry.
func TestArray_Clone(t *testing.T) {
	arr, err := etype.FromTypeNames([]string{"A", "B"})
	require.NoError(t, err)
	cp := arr.Clone()
	require.Same(t, arr.Registry(), cp.Registry())
	require.Equal(t, arr.Len(), cp.Len())
	id0, _ := arr.Get(0)
	cid0, _ := cp.Get(0)
	require.Equal(t, id0, cid0)
}
