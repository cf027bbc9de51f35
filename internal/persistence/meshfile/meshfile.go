// Package meshfile stores one chunk mesh per zstd-compressed file: a JSON
// header line followed by a gob body.
package meshfile

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"voxelsurface.ai/internal/mesh"
	"voxelsurface.ai/internal/volume"
)

const (
	Format  = "voxelsurface.mesh"
	Version = 1
)

var ErrDigestMismatch = errors.New("mesh digest mismatch")

type Header struct {
	Format       string `json:"format"`
	Version      int    `json:"version"`
	Chunk        [3]int `json:"chunk"`
	ChunkEdge    int    `json:"chunk_edge"`
	Vertices     int    `json:"vertices"`
	Triangles    int    `json:"triangles"`
	VertexStride int    `json:"vertex_stride"`
	Digest       string `json:"digest"`
}

type fileV1 struct {
	Header   Header
	Vertices []float32
	Indices  []uint32
}

// File is a decoded mesh file.
type File struct {
	Header Header
	Mesh   *mesh.Mesh
}

func (f File) Pos() volume.Coord {
	return volume.Coord{X: f.Header.Chunk[0], Y: f.Header.Chunk[1], Z: f.Header.Chunk[2]}
}

// PathFor names the file of chunk pos inside dir.
func PathFor(dir string, pos volume.Coord) string {
	return filepath.Join(dir, fmt.Sprintf("chunk_%d_%d_%d.mesh.zst", pos.X, pos.Y, pos.Z))
}

func NewHeader(pos volume.Coord, chunkEdge int, m *mesh.Mesh) Header {
	return Header{
		Format:       Format,
		Version:      Version,
		Chunk:        [3]int{pos.X, pos.Y, pos.Z},
		ChunkEdge:    chunkEdge,
		Vertices:     len(m.Vertices),
		Triangles:    m.TriangleCount(),
		VertexStride: mesh.VertexStride,
		Digest:       m.DigestHex(),
	}
}

func Write(path string, h Header, m *mesh.Mesh) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriterSize(enc, 256*1024)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	hb, err := json.Marshal(h)
	if err != nil {
		return err
	}
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	body := fileV1{Header: h, Vertices: m.Interleaved(), Indices: m.Indices}
	if err := gob.NewEncoder(bw).Encode(&body); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

// WriteChunk writes ch's current mesh to its file under dir and returns the
// header and path it used.
func WriteChunk(dir string, ch *volume.Chunk) (string, Header, error) {
	m := ch.Mesh
	if m == nil {
		m = mesh.New(nil, nil)
	}
	h := NewHeader(ch.Pos, ch.Lattice().Edge(), m)
	path := PathFor(dir, ch.Pos)
	return path, h, Write(path, h, m)
}

// ReadHeader decodes only the header line.
func ReadHeader(path string) (Header, error) {
	var h Header
	f, err := os.Open(path)
	if err != nil {
		return h, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return h, err
	}
	defer dec.Close()

	line, err := bufio.NewReader(dec).ReadBytes('\n')
	if err != nil {
		return h, fmt.Errorf("read header: %w", err)
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, fmt.Errorf("decode header: %w", err)
	}
	if h.Format != Format {
		return h, fmt.Errorf("unexpected format %q", h.Format)
	}
	return h, nil
}

// Read decodes a mesh file and checks the stored digest against the decoded
// buffers.
func Read(path string) (File, error) {
	var out File
	f, err := os.Open(path)
	if err != nil {
		return out, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return out, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)
	// The gob body repeats the header.
	if _, err := br.ReadBytes('\n'); err != nil {
		return out, fmt.Errorf("read header: %w", err)
	}

	var body fileV1
	if err := gob.NewDecoder(br).Decode(&body); err != nil {
		return out, fmt.Errorf("gob decode: %w", err)
	}
	if body.Header.Version != Version {
		return out, fmt.Errorf("unsupported mesh file version %d", body.Header.Version)
	}
	if body.Header.VertexStride != mesh.VertexStride || len(body.Vertices)%mesh.VertexStride != 0 {
		return out, fmt.Errorf("vertex buffer of %d floats does not match stride %d", len(body.Vertices), body.Header.VertexStride)
	}
	m := mesh.FromInterleaved(body.Vertices, body.Indices)
	if got := m.DigestHex(); got != body.Header.Digest {
		return out, fmt.Errorf("%w: file says %s, buffers hash to %s", ErrDigestMismatch, body.Header.Digest, got)
	}
	out.Header = body.Header
	out.Mesh = m
	return out, nil
}
