// SPDX-License-Identifier: MIT
// Package: propgraph/etype
//
// registry.go — atomic-type allocation and composite-set interning.
//
// A Registry is a single scope of type identity. Ids share one uint16 space:
// 0 is Unknown, atomic types and non-atomic composites are allocated from 1
// upward in first-reference order, which makes allocation deterministic for a
// fixed input order. Composite sets are interned by their canonical sorted-id
// key, so equal sets always resolve to one id (no combinatorial explosion:
// only observed sets are allocated).

package etype

import (
	"fmt"
	"math"
	"slices"
)

// ID identifies an atomic or composite entity type within one Registry.
type ID uint16

// Unknown is the composite type of the empty atomic set. Every entity that
// was never assigned a type has it.
const Unknown ID = 0

// maxID is the last allocatable id in the shared uint16 space.
const maxID = math.MaxUint16

// AtomicType is a named category bound to its owning Registry. The zero value
// is invalid; obtain AtomicType values from Registry.Atomic or
// Registry.GetOrAddAtomic.
type AtomicType struct {
	reg  *Registry
	id   ID
	name string
}

// ID returns the type's stable ordinal within its Registry.
func (t AtomicType) ID() ID { return t.id }

// Name returns the type's name.
func (t AtomicType) Name() string { return t.name }

// Registry allocates and canonicalizes entity types for one scope (node types
// or edge types of a single graph). It is not safe for concurrent mutation;
// construction pipelines are single-threaded by contract.
type Registry struct {
	next         ID              // next id to allocate; ids [1, next) are live
	atomicByName map[string]ID   // atomic name → id
	nameByID     map[ID]string   // atomic id → name
	setByKey     map[string]ID   // canonical sorted-id key → composite id
	setsByID     map[ID][]ID     // non-atomic composite id → sorted atomic ids
}

// NewRegistry returns an empty Registry. Complexity: O(1).
func NewRegistry() *Registry {
	return &Registry{
		next:         1,
		atomicByName: make(map[string]ID),
		nameByID:     make(map[ID]string),
		setByKey:     make(map[string]ID),
		setsByID:     make(map[ID][]ID),
	}
}

// allocate hands out the next id, failing once the uint16 space is exhausted.
func (r *Registry) allocate() (ID, error) {
	if r.next == maxID {
		return Unknown, fmt.Errorf("allocate: %w", ErrTooManyTypes)
	}
	id := r.next
	r.next++
	return id, nil
}

// GetOrAddAtomic returns the atomic type for name, allocating it on first
// reference. Complexity: O(1) amortized.
func (r *Registry) GetOrAddAtomic(name string) (AtomicType, error) {
	if id, ok := r.atomicByName[name]; ok {
		return AtomicType{reg: r, id: id, name: name}, nil
	}
	id, err := r.allocate()
	if err != nil {
		return AtomicType{}, err
	}
	r.atomicByName[name] = id
	r.nameByID[id] = name
	return AtomicType{reg: r, id: id, name: name}, nil
}

// Atomic looks up an already-allocated atomic type by name.
// Returns ErrUnknownType if the name was never referenced.
func (r *Registry) Atomic(name string) (AtomicType, error) {
	id, ok := r.atomicByName[name]
	if !ok {
		return AtomicType{}, fmt.Errorf("Atomic(%q): %w", name, ErrUnknownType)
	}
	return AtomicType{reg: r, id: id, name: name}, nil
}

// AtomicTypes returns every allocated atomic type in id order.
// Complexity: O(a·log a) for a atomic types.
func (r *Registry) AtomicTypes() []AtomicType {
	out := make([]AtomicType, 0, len(r.atomicByName))
	for name, id := range r.atomicByName {
		out = append(out, AtomicType{reg: r, id: id, name: name})
	}
	slices.SortFunc(out, func(a, b AtomicType) int { return int(a.id) - int(b.id) })
	return out
}

// NonAtomicType resolves the composite id for the exact set of the given
// atomic types. Order and duplicates are irrelevant; the empty set resolves
// to Unknown and a singleton to the atomic id itself. Every atomic must
// belong to this Registry (ErrForeignType otherwise).
// Complexity: O(k·log k) for k types.
func (r *Registry) NonAtomicType(types ...AtomicType) (ID, error) {
	ids := make([]ID, 0, len(types))
	for _, t := range types {
		if t.reg != r {
			return Unknown, fmt.Errorf("NonAtomicType(%q): %w", t.name, ErrForeignType)
		}
		ids = append(ids, t.id)
	}
	return r.internSet(ids)
}

// internSet canonicalizes ids (sort, dedupe) and returns the composite id,
// allocating one for sets of two or more atomics on first observation.
func (r *Registry) internSet(ids []ID) (ID, error) {
	slices.Sort(ids)
	ids = slices.Compact(ids)
	switch len(ids) {
	case 0:
		return Unknown, nil
	case 1:
		return ids[0], nil
	}
	key := setKey(ids)
	if id, ok := r.setByKey[key]; ok {
		return id, nil
	}
	id, err := r.allocate()
	if err != nil {
		return Unknown, err
	}
	r.setByKey[key] = id
	r.setsByID[id] = slices.Clone(ids)
	return id, nil
}

// setKey encodes a sorted id slice as a compact string map key.
func setKey(ids []ID) string {
	buf := make([]byte, 2*len(ids))
	for i, id := range ids {
		buf[2*i] = byte(id >> 8)
		buf[2*i+1] = byte(id)
	}
	return string(buf)
}

// SetOf returns the sorted atomic ids forming the composite id: nil for
// Unknown, the id itself for an atomic, a copy of the interned set otherwise.
func (r *Registry) SetOf(id ID) []ID {
	if id == Unknown {
		return nil
	}
	if set, ok := r.setsByID[id]; ok {
		return slices.Clone(set)
	}
	if _, ok := r.nameByID[id]; ok {
		return []ID{id}
	}
	return nil
}

// Has reports whether the atomic type t is a member of the composite id.
// Membership is exact: atomics present in the Registry but absent from the
// composite's set report false. Complexity: O(log k).
func (r *Registry) Has(composite ID, t AtomicType) (bool, error) {
	if t.reg != r {
		return false, fmt.Errorf("Has(%q): %w", t.name, ErrForeignType)
	}
	if composite == Unknown {
		return false, nil
	}
	if set, ok := r.setsByID[composite]; ok {
		_, found := slices.BinarySearch(set, t.id)
		return found, nil
	}
	return composite == t.id, nil
}

// TypeName returns the name of an atomic id. Non-atomic ids (including
// Unknown) have no single name and return ErrUnknownType.
func (r *Registry) TypeName(id ID) (string, error) {
	name, ok := r.nameByID[id]
	if !ok {
		return "", fmt.Errorf("TypeName(%d): %w", id, ErrUnknownType)
	}
	return name, nil
}

// nameSet returns the atomic names forming the composite id, in id order.
// Internal support for persistence snapshots.
func (r *Registry) nameSet(id ID) []string {
	ids := r.SetOf(id)
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, len(ids))
	for i, aid := range ids {
		names[i] = r.nameByID[aid]
	}
	return names
}
