package meshfile

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"voxelsurface.ai/internal/surface"
	"voxelsurface.ai/internal/volume"
)

func TestWriteChunkThenRead(t *testing.T) {
	s := volume.NewStore(volume.Config{ChunkEdge: 8, GridEdge: 1})
	ch := s.ChunkAt(0, 0, 0)
	surface.Extract(s, ch)

	dir := t.TempDir()
	path, h, err := WriteChunk(dir, ch)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(dir, "chunk_0_0_0.mesh.zst") {
		t.Fatalf("path: got %s", path)
	}
	if h.Vertices != 864 || h.Triangles != 428 || h.ChunkEdge != 8 {
		t.Fatalf("header: got %+v", h)
	}

	hdr, err := ReadHeader(path)
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if hdr != h {
		t.Fatalf("header: got %+v want %+v", hdr, h)
	}

	f, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if f.Pos() != ch.Pos {
		t.Fatalf("pos: got %s want %s", f.Pos(), ch.Pos)
	}
	if f.Mesh.Digest() != ch.Mesh.Digest() {
		t.Fatalf("mesh changed through the file")
	}
	if !reflect.DeepEqual(f.Mesh.Vertices, ch.Mesh.Vertices) {
		t.Fatalf("vertices differ")
	}
}

func TestEmptyMeshRoundTrip(t *testing.T) {
	s := volume.NewStore(volume.Config{ChunkEdge: 4, GridEdge: 1})
	s.Populate(func(int, int, int) volume.Sample { return volume.Outside })
	ch := s.ChunkAt(0, 0, 0)
	surface.Extract(s, ch)

	path, _, err := WriteChunk(t.TempDir(), ch)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !f.Mesh.Empty() || f.Header.Vertices != 0 {
		t.Fatalf("expected an empty mesh, got %+v", f.Header)
	}
}

func TestReadRejectsTamperedDigest(t *testing.T) {
	s := volume.NewStore(volume.Config{ChunkEdge: 4, GridEdge: 1})
	ch := s.ChunkAt(0, 0, 0)
	surface.Extract(s, ch)

	path := filepath.Join(t.TempDir(), "bad.mesh.zst")
	h := NewHeader(ch.Pos, 4, ch.Mesh)
	h.Digest = "00"
	if err := Write(path, h, ch.Mesh); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Read(path); !errors.Is(err, ErrDigestMismatch) {
		t.Fatalf("expected digest mismatch, got %v", err)
	}
}

func TestReadHeaderRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("not zstd\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ReadHeader(path); err == nil {
		t.Fatalf("expected an error for a non-mesh file")
	}
}
