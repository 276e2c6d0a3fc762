// SPDX-License-Identifier: MIT
// Package: propgraph/persist
//
// persist.go — Write/Load of canonical graphs.
//
// The format byte packs compression (3 bits) and checksum (2 bits) so both
// can evolve independently; the checksum covers the stored (possibly
// compressed) body, which keeps verification a single pass before any
// decompression work.

package persist

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"hash/crc32"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/golang/snappy"
	"go.uber.org/multierr"

	"github.com/katalvlaran/propgraph/etype"
	"github.com/katalvlaran/propgraph/graph"
)

// magic and version identify the artifact; bump version on layout changes.
const (
	magic   = "PGPH"
	version = byte(1)
)

// Compression selects how the body is stored.
type Compression uint8

const (
	Uncompressed Compression = iota
	Snappy
)

// Checksum selects how the body is verified.
type Checksum uint8

const (
	NoChecksum Checksum = iota
	CRC32
)

// encodeFormat packs compression (3 bits) and checksum (2 bits) into the
// single format byte.
func encodeFormat(c Compression, k Checksum) byte {
	return (byte(c)&0x07)<<5 | (byte(k)&0x03)<<3
}

func decodeFormat(b byte) (Compression, Checksum) {
	return Compression(b >> 5), Checksum((b >> 3) & 0x03)
}

// Option configures Write and Load.
type Option func(*options)

type options struct {
	compression Compression
	checksum    Checksum
	log         logr.Logger
}

// WithCompression selects the body compression (default Snappy).
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// WithChecksum selects the body checksum (default CRC32).
func WithChecksum(k Checksum) Option {
	return func(o *options) { o.checksum = k }
}

// WithLogger injects a structured logger (default logr.Discard()).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.log = l }
}

func gatherOptions(opts ...Option) options {
	o := options{
		compression: Snappy,
		checksum:    CRC32,
		log:         logr.Discard(),
	}
	for _, set := range opts {
		set(&o)
	}
	return o
}

// columnPayload is the serializable form of one property column; exactly the
// slice matching Kind is populated.
type columnPayload struct {
	Name   string
	Kind   uint8
	Ints   []int64
	Floats []float64
	Strs   []string
	Bools  []bool
}

// payload is the gob-encoded snapshot of a canonical graph.
type payload struct {
	Offsets      []int64
	Dst          []int64
	NodeProps    []columnPayload
	EdgeProps    []columnPayload
	HasNodeTypes bool
	NodeTypeSets [][]string
	HasEdgeTypes bool
	EdgeTypeSets [][]string
}

// Write materializes g at location and returns the canonical file:// URI.
// The write is all-or-nothing at the filesystem's granularity: header and
// body are assembled in memory and written in one call.
func Write(g *graph.Graph, location string, opts ...Option) (uri string, err error) {
	o := gatherOptions(opts...)
	path, uri, err := resolveLocation(location)
	if err != nil {
		return "", fmt.Errorf("Write: %w", err)
	}

	p, err := snapshot(g)
	if err != nil {
		return "", fmt.Errorf("Write: %w", err)
	}
	var bodyBuf bytes.Buffer
	if err = gob.NewEncoder(&bodyBuf).Encode(p); err != nil {
		return "", fmt.Errorf("Write: encode: %w", err)
	}
	body := bodyBuf.Bytes()
	if o.compression == Snappy {
		body = snappy.Encode(nil, body)
	}

	var out bytes.Buffer
	out.WriteString(magic)
	out.WriteByte(version)
	out.WriteByte(encodeFormat(o.compression, o.checksum))
	if o.checksum == CRC32 {
		var crc [4]byte
		binary.LittleEndian.PutUint32(crc[:], crc32.ChecksumIEEE(body))
		out.Write(crc[:])
	}
	out.Write(body)

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("Write: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("Write: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
		if err != nil {
			uri = ""
		}
	}()
	if _, err = f.Write(out.Bytes()); err != nil {
		return "", fmt.Errorf("Write: %w", err)
	}

	o.log.V(1).Info("wrote graph", "location", uri,
		"nodes", g.NumNodes(), "edges", g.NumEdges(), "bytes", out.Len())
	return uri, nil
}

// Load reads the artifact at location and reconstructs the canonical graph.
// Nothing is constructed on a format or checksum failure.
func Load(location string, opts ...Option) (*graph.Graph, error) {
	o := gatherOptions(opts...)
	path, uri, err := resolveLocation(location)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if len(raw) < len(magic)+2 || string(raw[:len(magic)]) != magic {
		return nil, fmt.Errorf("Load(%s): magic: %w", uri, ErrBadFormat)
	}
	if raw[len(magic)] != version {
		return nil, fmt.Errorf("Load(%s): version %d: %w", uri, raw[len(magic)], ErrBadFormat)
	}
	compression, checksum := decodeFormat(raw[len(magic)+1])
	body := raw[len(magic)+2:]

	switch checksum {
	case NoChecksum:
	case CRC32:
		if len(body) < 4 {
			return nil, fmt.Errorf("Load(%s): truncated checksum: %w", uri, ErrBadFormat)
		}
		want := binary.LittleEndian.Uint32(body[:4])
		body = body[4:]
		if crc32.ChecksumIEEE(body) != want {
			return nil, fmt.Errorf("Load(%s): %w", uri, ErrChecksumMismatch)
		}
	default:
		return nil, fmt.Errorf("Load(%s): checksum method %d: %w", uri, checksum, ErrBadFormat)
	}

	switch compression {
	case Uncompressed:
	case Snappy:
		if body, err = snappy.Decode(nil, body); err != nil {
			return nil, fmt.Errorf("Load(%s): snappy: %w", uri, err)
		}
	default:
		return nil, fmt.Errorf("Load(%s): compression method %d: %w", uri, compression, ErrBadFormat)
	}

	var p payload
	if err = gob.NewDecoder(bytes.NewReader(body)).Decode(&p); err != nil {
		return nil, fmt.Errorf("Load(%s): decode: %w", uri, err)
	}
	g, err := restore(&p)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", uri, err)
	}

	o.log.V(1).Info("loaded graph", "location", uri,
		"nodes", g.NumNodes(), "edges", g.NumEdges())
	return g, nil
}

// resolveLocation canonicalizes a plain path or file:// URI into both forms.
func resolveLocation(location string) (path, uri string, err error) {
	if location == "" {
		return "", "", ErrBadLocation
	}
	if strings.Contains(location, "://") {
		u, perr := url.Parse(location)
		if perr != nil || u.Scheme != "file" || u.Path == "" {
			return "", "", fmt.Errorf("%q: %w", location, ErrBadLocation)
		}
		return u.Path, "file://" + u.Path, nil
	}
	abs, aerr := filepath.Abs(location)
	if aerr != nil {
		return "", "", fmt.Errorf("%q: %w", location, ErrBadLocation)
	}
	return abs, "file://" + abs, nil
}

// snapshot converts a graph into its serializable payload using only the
// public read surface.
func snapshot(g *graph.Graph) (*payload, error) {
	p := &payload{
		Offsets: g.Offsets(),
		Dst:     g.Destinations(),
	}
	for _, name := range g.NodePropertyNames() {
		col, _ := g.NodeProperty(name)
		cp, err := snapshotColumn(name, col)
		if err != nil {
			return nil, err
		}
		p.NodeProps = append(p.NodeProps, cp)
	}
	for _, name := range g.EdgePropertyNames() {
		col, _ := g.EdgeProperty(name)
		cp, err := snapshotColumn(name, col)
		if err != nil {
			return nil, err
		}
		p.EdgeProps = append(p.EdgeProps, cp)
	}
	if nt := g.NodeTypes(); nt != nil {
		p.HasNodeTypes = true
		p.NodeTypeSets = nt.NameSets()
	}
	if et := g.EdgeTypes(); et != nil {
		p.HasEdgeTypes = true
		p.EdgeTypeSets = et.NameSets()
	}
	return p, nil
}

func snapshotColumn(name string, col graph.Column) (columnPayload, error) {
	cp := columnPayload{Name: name, Kind: uint8(col.Kind())}
	var err error
	switch col.Kind() {
	case graph.KindInt64:
		cp.Ints, err = graph.Values[int64](col)
	case graph.KindFloat64:
		cp.Floats, err = graph.Values[float64](col)
	case graph.KindString:
		cp.Strs, err = graph.Values[string](col)
	case graph.KindBool:
		cp.Bools, err = graph.Values[bool](col)
	default:
		err = fmt.Errorf("column %q kind %d: %w", name, col.Kind(), ErrBadFormat)
	}
	return cp, err
}

// restore rebuilds the canonical graph; graph.New re-validates every
// invariant, so a corrupt-but-well-formed payload still cannot produce an
// inconsistent Graph.
func restore(p *payload) (*graph.Graph, error) {
	opts := make([]graph.Option, 0, len(p.NodeProps)+len(p.EdgeProps)+2)
	for _, cp := range p.NodeProps {
		col, err := restoreColumn(cp)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graph.WithNodeProperty(cp.Name, col))
	}
	for _, cp := range p.EdgeProps {
		col, err := restoreColumn(cp)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graph.WithEdgeProperty(cp.Name, col))
	}
	if p.HasNodeTypes {
		arr, err := etype.FromTypeNameSets(p.NodeTypeSets)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graph.WithNodeTypes(arr))
	}
	if p.HasEdgeTypes {
		arr, err := etype.FromTypeNameSets(p.EdgeTypeSets)
		if err != nil {
			return nil, err
		}
		opts = append(opts, graph.WithEdgeTypes(arr))
	}
	return graph.New(p.Offsets, p.Dst, opts...)
}

func restoreColumn(cp columnPayload) (graph.Column, error) {
	switch graph.Kind(cp.Kind) {
	case graph.KindInt64:
		return graph.NewColumn(cp.Ints), nil
	case graph.KindFloat64:
		return graph.NewColumn(cp.Floats), nil
	case graph.KindString:
		return graph.NewColumn(cp.Strs), nil
	case graph.KindBool:
		return graph.NewColumn(cp.Bools), nil
	default:
		return nil, fmt.Errorf("column %q kind %d: %w", cp.Name, cp.Kind, ErrBadFormat)
	}
}
