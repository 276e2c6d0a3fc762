// SPDX-License-Identifier: MIT
// Package: propgraph/persist
//
// errors.go — sentinel errors for the persist package. Callers branch with
// errors.Is; context is attached with %w at the call site.

package persist

import "errors"

// ErrBadLocation indicates a location string that is neither a usable
// filesystem path nor a file:// URI.
var ErrBadLocation = errors.New("persist: bad location")

// ErrBadFormat indicates stored bytes whose magic, version, or format byte
// this package does not recognize.
var ErrBadFormat = errors.New("persist: unrecognized format")

// ErrChecksumMismatch indicates stored data that fails checksum
// verification; the artifact is corrupt and nothing is constructed.
var ErrChecksumMismatch = errors.New("persist: checksum mismatch")
