package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"voxelsurface.ai/internal/persistence/meshfile"
	"voxelsurface.ai/internal/surface"
	"voxelsurface.ai/internal/volume"
)

func TestInspectMesh(t *testing.T) {
	s := volume.NewStore(volume.Config{ChunkEdge: 8, GridEdge: 1})
	ch := s.ChunkAt(0, 0, 0)
	surface.Extract(s, ch)
	path, _, err := meshfile.WriteChunk(t.TempDir(), ch)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	var out bytes.Buffer
	if err := inspectMesh(&out, path); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	got := out.String()
	for _, want := range []string{"vertices=864", "triangles=428", "open_edges=0", "chunk=(0,0,0)"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestInspectIndexEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := inspectIndex(&out, filepath.Join(t.TempDir(), "empty.sqlite")); err == nil {
		t.Fatalf("expected an error for an index without runs")
	}
}
