package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"voxelsurface.ai/internal/config"
	persistlog "voxelsurface.ai/internal/persistence/log"
	"voxelsurface.ai/internal/persistence/indexdb"
	"voxelsurface.ai/internal/persistence/meshfile"
	"voxelsurface.ai/internal/surface"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to surface.yaml (empty: built-in defaults)")
		workers    = flag.Int("workers", 0, "parallel chunk workers (0: use config)")
		meshDir    = flag.String("mesh_dir", "", "write one mesh file per chunk here (overrides output.mesh_dir)")
		eventsDir  = flag.String("events", "", "extraction event log dir (overrides output.event_log)")
		indexPath  = flag.String("index", "", "sqlite index path (overrides output.index_db)")
		quiet      = flag.Bool("quiet", false, "do not log every chunk")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[extract] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *workers > 0 {
		cfg.Extract.Workers = *workers
	}
	override := func(dst *string, v string) {
		if s := strings.TrimSpace(v); s != "" {
			*dst = s
		}
	}
	override(&cfg.Output.MeshDir, *meshDir)
	override(&cfg.Output.EventLog, *eventsDir)
	override(&cfg.Output.IndexDB, *indexPath)

	ctx, cancel := signalContext()
	defer cancel()

	chunkLogger := logger
	if *quiet {
		chunkLogger = nil
	}
	res, err := run(ctx, cfg, chunkLogger)
	if err != nil {
		logger.Fatalf("extract: %v", err)
	}
	logger.Printf("run %d: %d chunks, %d vertices, %d triangles in %s",
		res.RunID, len(res.Stats), res.Vertices, res.Triangles, res.Elapsed.Round(time.Millisecond))
	if res.IndexDropped > 0 {
		logger.Printf("index: %d chunk rows not recorded, last error: %v", res.IndexDropped, res.IndexErr)
	}
}

type result struct {
	RunID     int64
	Stats     []surface.Stats
	Vertices  int
	Triangles int
	Elapsed   time.Duration

	// Chunk rows the index failed to store. Files and events are unaffected.
	IndexDropped uint64
	IndexErr     error
}

// run extracts every chunk of the configured volume and writes the enabled
// outputs. Outputs are written in chunk order after extraction finishes.
func run(ctx context.Context, cfg config.Config, logger *log.Logger) (result, error) {
	var res result
	start := time.Now()

	store, err := cfg.Store()
	if err != nil {
		return res, fmt.Errorf("build volume: %w", err)
	}

	var idx *indexdb.SQLiteIndex
	if cfg.Output.IndexDB != "" {
		idx, err = indexdb.OpenSQLite(cfg.Output.IndexDB)
		if err != nil {
			return res, fmt.Errorf("open index: %w", err)
		}
		defer idx.Close()
		res.RunID, err = idx.BeginRun(ctx, indexdb.RunInfo{
			ChunkEdge: cfg.Volume.ChunkEdge,
			GridEdge:  cfg.Volume.GridEdge,
			Division:  store.Division().String(),
			Density:   cfg.Density.Kind,
			Chunks:    store.Len(),
		})
		if err != nil {
			return res, err
		}
	}

	var events *persistlog.ExtractionLogger
	if cfg.Output.EventLog != "" {
		events = persistlog.NewExtractionLogger(cfg.Output.EventLog)
		defer events.Close()
		if err := events.RunStarted(res.RunID, store.Len()); err != nil {
			return res, fmt.Errorf("event log: %w", err)
		}
	}

	e := surface.Extractor{Logger: logger}
	stats, err := e.ExtractAll(ctx, store, cfg.Extract.Workers)
	if err != nil {
		return res, err
	}

	for i, st := range stats {
		ch := store.Chunks()[i]
		digest := ch.Mesh.DigestHex()
		path := ""
		if cfg.Output.MeshDir != "" {
			p, _, err := meshfile.WriteChunk(cfg.Output.MeshDir, ch)
			if err != nil {
				return res, fmt.Errorf("chunk %s: %w", ch.Pos, err)
			}
			path = p
		}
		if events != nil {
			if err := events.ChunkExtracted(st, digest, path); err != nil {
				return res, fmt.Errorf("event log: %w", err)
			}
		}
		idx.RecordChunk(res.RunID, st, digest, path)
	}

	res.Stats = stats
	res.Vertices, res.Triangles = surface.Totals(stats)
	res.Elapsed = time.Since(start)

	if idx != nil {
		if err := idx.FinishRun(ctx, res.RunID, stats); err != nil {
			return res, err
		}
		res.IndexDropped, res.IndexErr = idx.Dropped()
	}
	if events != nil {
		if err := events.RunFinished(stats, res.Elapsed); err != nil {
			return res, fmt.Errorf("event log: %w", err)
		}
	}
	return res, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
