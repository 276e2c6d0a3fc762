// SPDX-License-Identifier: MIT
// Package: propgraph/etype
//
// errors.go — sentinel errors for the etype package.
//
// Error policy (matches the rest of propgraph):
//   - Only package-level sentinels are exposed; callers branch via errors.Is.
//   - Sentinels carry the "etype: ..." prefix and are never reformatted at the
//     definition site; context is attached with %w at the call site.

package etype

import "errors"

// ErrForeignType indicates an AtomicType owned by a different Registry was
// used where this Registry's types are required (e.g. node types passed into
// an edge-type query). Type scopes are independent by design.
// Usage: if errors.Is(err, ErrForeignType) { /* wrong registry */ }.
var ErrForeignType = errors.New("etype: atomic type from a foreign registry")

// ErrUnknownType indicates a type name or id that the Registry has never
// allocated.
var ErrUnknownType = errors.New("etype: unknown type")

// ErrTooManyTypes indicates the 16-bit type-id space is exhausted. This is a
// hard capacity limit, not a transient condition.
var ErrTooManyTypes = errors.New("etype: type id space exhausted")

// ErrIndexOutOfRange indicates an entity id outside [0, Array.Len()).
var ErrIndexOutOfRange = errors.New("etype: entity index out of range")

// ErrLengthMismatch indicates a permutation whose length does not match the
// Array it is applied to.
var ErrLengthMismatch = errors.New("etype: permutation length mismatch")
