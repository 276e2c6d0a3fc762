// SPDX-License-Identifier: MIT

// Package etype implements the entity-type system attached to canonical
// graphs: atomic (named) types, composite types identified by the exact set
// of atomic types an entity holds, and per-entity type arrays.
//
// Model:
//
//   - An atomic type is a named category ("Person", "FOLLOWS", ...). It is
//     allocated a stable id the first time its name is referenced within a
//     Registry. Node types and edge types live in independent registries and
//     are never comparable.
//   - A composite type is the identity of a specific set of atomic types held
//     simultaneously. Identity is set-based: {"A","B"} and {"B","A"} resolve
//     to the same id. The empty set is Unknown (id 0) and a singleton set is
//     the atomic type itself; only sets of two or more atomics allocate a
//     distinct non-atomic id, lazily and deduplicated.
//   - An Array maps every entity id to exactly one composite id. Build one
//     with FromTypeNames (one name per entity) or FromTypeNameSets (one set
//     per entity, empty sets allowed) and attach it to a graph at
//     construction time.
//
// Mixing AtomicType values across registries is rejected with ErrForeignType;
// callers branch on sentinels with errors.Is, never on message strings.
package etype
