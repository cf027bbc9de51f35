package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"voxelsurface.ai/internal/config"
	"voxelsurface.ai/internal/persistence/meshfile"
	"voxelsurface.ai/internal/surface"
	"voxelsurface.ai/internal/transport/ws"
)

func main() {
	var (
		addr       = flag.String("addr", "", "http listen address (overrides server.addr)")
		configPath = flag.String("config", "", "path to surface.yaml (empty: built-in defaults)")
		meshDir    = flag.String("meshes", "", "serve mesh files from this dir instead of extracting")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if a := strings.TrimSpace(*addr); a != "" {
		cfg.Server.Addr = a
	}

	ctx, cancel := signalContext()
	defer cancel()

	hub := ws.NewHub(cfg.Volume.ChunkEdge, cfg.Volume.GridEdge, logger)
	if dir := strings.TrimSpace(*meshDir); dir != "" {
		n, err := loadMeshFiles(dir, hub)
		if err != nil {
			logger.Fatalf("load meshes: %v", err)
		}
		logger.Printf("loaded %d mesh files from %s", n, dir)
	} else {
		go func() {
			if err := extractInto(ctx, cfg, hub, logger); err != nil && err != context.Canceled {
				logger.Printf("extract: %v", err)
			}
		}()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(200)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/metrics", func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/plain; version=0.0.4")
		fmt.Fprintf(rw, "# HELP voxelsurface_renderers Connected renderer clients.\n")
		fmt.Fprintf(rw, "# TYPE voxelsurface_renderers gauge\n")
		fmt.Fprintf(rw, "voxelsurface_renderers %d\n", hub.Clients())
	})
	mux.HandleFunc("/v1/ws", hub.Handler())

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = srv.Shutdown(ctx2)
	}()

	logger.Printf("listening on %s", cfg.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("ListenAndServe: %v", err)
	}
}

// extractInto builds the configured volume and streams every chunk mesh to the
// hub as it is produced.
func extractInto(ctx context.Context, cfg config.Config, r surface.Renderer, logger *log.Logger) error {
	store, err := cfg.Store()
	if err != nil {
		return err
	}
	e := surface.Extractor{Renderer: r, Logger: logger}
	stats, err := e.ExtractAll(ctx, store, cfg.Extract.Workers)
	if err != nil {
		return err
	}
	v, t := surface.Totals(stats)
	if logger != nil {
		logger.Printf("extracted %d chunks: %d vertices, %d triangles", len(stats), v, t)
	}
	return nil
}

// loadMeshFiles publishes every mesh file of dir, in name order, to r.
func loadMeshFiles(dir string, r surface.Renderer) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.mesh.zst"))
	if err != nil {
		return 0, err
	}
	sort.Strings(files)
	for _, p := range files {
		f, err := meshfile.Read(p)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		r.MeshUpdated(f.Pos(), f.Mesh)
	}
	return len(files), nil
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
