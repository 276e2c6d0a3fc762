// SPDX-License-Identifier: MIT

// Package persist materializes canonical graphs to a location and loads them
// back. A location is a file:// URI (plain filesystem paths are accepted and
// canonicalized); Write returns the canonical URI so that locations
// round-trip as retrievable strings.
//
// On-disk layout: a fixed magic and version, one format byte packing the
// compression and checksum methods, an optional CRC32 of the stored body,
// then the body — a gob-encoded snapshot of topology, property columns, and
// per-entity atomic-type name sets, optionally snappy-compressed. Entity-type
// ids are not persisted: registries allocate deterministically in
// first-reference order, so rebuilding from name sets reproduces them.
//
// The package is the module's only I/O surface; it accepts an optional
// logr.Logger via WithLogger (default logr.Discard()).
//
// Errors:
//
//	ErrBadLocation      - location is not a usable file path or file:// URI.
//	ErrBadFormat        - magic, version, or format byte not recognized.
//	ErrChecksumMismatch - stored body does not match its checksum.
package persist
