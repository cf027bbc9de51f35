package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	persistlog "voxelsurface.ai/internal/persistence/log"
	"voxelsurface.ai/internal/persistence/indexdb"
	"voxelsurface.ai/internal/persistence/meshfile"
)

func main() {
	var (
		meshPath  = flag.String("mesh", "", "path to a .mesh.zst file")
		indexPath = flag.String("index", "", "sqlite index path: print the latest run")
		eventsDir = flag.String("events", "", "event log dir: print every event")
	)
	flag.Parse()

	if *meshPath == "" && *indexPath == "" && *eventsDir == "" {
		fmt.Fprintln(os.Stderr, "missing -mesh, -index or -events")
		os.Exit(2)
	}
	if *meshPath != "" {
		if err := inspectMesh(os.Stdout, *meshPath); err != nil {
			fmt.Fprintln(os.Stderr, "mesh:", err)
			os.Exit(1)
		}
	}
	if *indexPath != "" {
		if err := inspectIndex(os.Stdout, *indexPath); err != nil {
			fmt.Fprintln(os.Stderr, "index:", err)
			os.Exit(1)
		}
	}
	if *eventsDir != "" {
		if err := inspectEvents(os.Stdout, *eventsDir); err != nil {
			fmt.Fprintln(os.Stderr, "events:", err)
			os.Exit(1)
		}
	}
}

func inspectMesh(w io.Writer, path string) error {
	f, err := meshfile.Read(path)
	if err != nil {
		return err
	}
	h := f.Header
	fmt.Fprintf(w, "mesh v%d chunk=%s edge=%d vertices=%d triangles=%d digest=%s\n",
		h.Version, f.Pos(), h.ChunkEdge, h.Vertices, h.Triangles, h.Digest)
	if lo, hi, ok := f.Mesh.Bounds(); ok {
		fmt.Fprintf(w, "bounds min=(%g,%g,%g) max=(%g,%g,%g)\n", lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
	}
	fmt.Fprintf(w, "open_edges=%d\n", f.Mesh.OpenEdges())
	return nil
}

func inspectIndex(w io.Writer, path string) error {
	idx, err := indexdb.OpenSQLite(path)
	if err != nil {
		return err
	}
	defer idx.Close()

	ctx := context.Background()
	run, err := idx.LatestRun(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "run %d started=%s finished=%s edge=%d grid=%d division=%s density=%s chunks=%d vertices=%d triangles=%d\n",
		run.ID, run.StartedAt, run.FinishedAt, run.ChunkEdge, run.GridEdge, run.Division, run.Density, run.Chunks, run.Vertices, run.Triangles)
	rows, err := idx.ChunkMeshes(ctx, run.ID)
	if err != nil {
		return err
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  chunk (%d,%d,%d) vertices=%d triangles=%d digest=%.12s %s\n",
			r.Chunk[0], r.Chunk[1], r.Chunk[2], r.Vertices, r.Triangles, r.Digest, r.Path)
	}
	return nil
}

func inspectEvents(w io.Writer, dir string) error {
	files, err := persistlog.EventFiles(dir)
	if err != nil {
		return err
	}
	for _, p := range files {
		evs, err := persistlog.ReadEvents(p)
		for _, ev := range evs {
			fmt.Fprintf(w, "%s %-12s run=%d chunk=(%d,%d,%d) vertices=%d triangles=%d elapsed_us=%d\n",
				ev.At, ev.Type, ev.RunID, ev.Chunk[0], ev.Chunk[1], ev.Chunk[2], ev.Vertices, ev.Triangles, ev.ElapsedUS)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
