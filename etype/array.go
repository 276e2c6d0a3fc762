// SPDX-License-Identifier: MIT
// Package: propgraph/etype
//
// array.go — per-entity composite-type arrays.

package etype

import (
	"fmt"
	"slices"
)

// Array assigns exactly one composite type id to every entity in [0, Len()).
// It owns the Registry the ids were allocated in; attach it to a graph via
// the convert or graph construction options.
type Array struct {
	reg *Registry
	ids []ID
}

// FromTypeNames builds an Array where entity i holds the singleton set
// {names[i]}. Atomic ids are allocated in first-reference order.
// Complexity: O(n).
func FromTypeNames(names []string) (*Array, error) {
	reg := NewRegistry()
	ids := make([]ID, len(names))
	for i, name := range names {
		t, err := reg.GetOrAddAtomic(name)
		if err != nil {
			return nil, fmt.Errorf("FromTypeNames: %w", err)
		}
		ids[i] = t.id
	}
	return &Array{reg: reg, ids: ids}, nil
}

// FromTypeNameSets builds an Array where entity i holds the exact set
// sets[i]. Sets may be empty (the entity gets Unknown); order and duplicates
// within a set are irrelevant. Complexity: O(Σ|set|·log|set|).
func FromTypeNameSets(sets [][]string) (*Array, error) {
	reg := NewRegistry()
	ids := make([]ID, len(sets))
	atomics := make([]ID, 0, 4)
	for i, set := range sets {
		atomics = atomics[:0]
		for _, name := range set {
			t, err := reg.GetOrAddAtomic(name)
			if err != nil {
				return nil, fmt.Errorf("FromTypeNameSets: %w", err)
			}
			atomics = append(atomics, t.id)
		}
		id, err := reg.internSet(atomics)
		if err != nil {
			return nil, fmt.Errorf("FromTypeNameSets: %w", err)
		}
		ids[i] = id
	}
	return &Array{reg: reg, ids: ids}, nil
}

// Len returns the number of entities covered by the Array.
func (a *Array) Len() int { return len(a.ids) }

// Registry returns the Registry the Array's ids live in.
func (a *Array) Registry() *Registry { return a.reg }

// Get returns the composite type id of entity i.
func (a *Array) Get(i int64) (ID, error) {
	if i < 0 || i >= int64(len(a.ids)) {
		return Unknown, fmt.Errorf("Get(%d): %w", i, ErrIndexOutOfRange)
	}
	return a.ids[i], nil
}

// HasType reports whether entity i holds the atomic type t, i.e. whether t is
// a member of the entity's composite set.
func (a *Array) HasType(i int64, t AtomicType) (bool, error) {
	id, err := a.Get(i)
	if err != nil {
		return false, err
	}
	return a.reg.Has(id, t)
}

// Permute returns a new Array sharing this Registry, with entity ids moved by
// the construction permutation: output entity perm[i] receives the type of
// input entity i. Used by the CSR builder to keep edge types aligned with the
// scattered edges. Complexity: O(n).
func (a *Array) Permute(perm []int) (*Array, error) {
	if len(perm) != len(a.ids) {
		return nil, fmt.Errorf("Permute: %w", ErrLengthMismatch)
	}
	ids := make([]ID, len(a.ids))
	for i, p := range perm {
		ids[p] = a.ids[i]
	}
	return &Array{reg: a.reg, ids: ids}, nil
}

// NameSets snapshots the Array as one atomic-name set per entity, names in
// registry id order
// (nil for untyped entities). The snapshot is sufficient to rebuild an
// equivalent Array via FromTypeNameSets; persistence relies on this.
func (a *Array) NameSets() [][]string {
	out := make([][]string, len(a.ids))
	for i, id := range a.ids {
		out[i] = a.reg.nameSet(id)
	}
	return out
}

// Clone returns a deep copy of the id vector sharing the same Registry.
func (a *Array) Clone() *Array {
	return &Array{reg: a.reg, ids: slices.Clone(a.ids)}
}
