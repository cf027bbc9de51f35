package indexdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"voxelsurface.ai/internal/surface"
)

// ErrNoRuns is returned by LatestRun on an empty index.
var ErrNoRuns = errors.New("no extraction runs recorded")

// SQLiteIndex is a queryable read model of extraction runs. Chunk rows are
// written by a single goroutine in batched transactions; the mesh files and the
// JSONL event log remain the source of truth.
type SQLiteIndex struct {
	db *sql.DB

	// mu orders sends on ch against Close.
	mu     sync.RWMutex
	ch     chan req
	wg     sync.WaitGroup
	once   sync.Once
	closed bool

	dropped atomic.Uint64
	lastErr atomic.Pointer[error]
}

type reqKind int

const (
	reqChunk reqKind = iota + 1
	reqFlush
)

type req struct {
	kind  reqKind
	chunk ChunkRow
	done  chan struct{}
}

type RunInfo struct {
	ChunkEdge int
	GridEdge  int
	Division  string
	Density   string
	Chunks    int
}

type RunRow struct {
	ID         int64
	StartedAt  string
	FinishedAt string
	RunInfo
	Vertices  int
	Triangles int
}

type ChunkRow struct {
	RunID     int64
	Chunk     [3]int
	Vertices  int
	Triangles int
	Digest    string
	Path      string
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{
		db: db,
		ch: make(chan req, 4096),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`INSERT OR REPLACE INTO meta(key,value) VALUES('schema_version','1');`,
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL DEFAULT '',
			chunk_edge INTEGER NOT NULL,
			grid_edge INTEGER NOT NULL,
			division TEXT NOT NULL,
			density TEXT NOT NULL,
			chunks INTEGER NOT NULL,
			vertices INTEGER NOT NULL DEFAULT 0,
			triangles INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS chunk_meshes (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			cx INTEGER NOT NULL,
			cy INTEGER NOT NULL,
			cz INTEGER NOT NULL,
			vertices INTEGER NOT NULL,
			triangles INTEGER NOT NULL,
			digest TEXT NOT NULL,
			path TEXT NOT NULL,
			PRIMARY KEY (run_id, cx, cy, cz)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_chunk_meshes_digest ON chunk_meshes(digest);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.ch)
		s.mu.Unlock()
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

func now() string { return time.Now().UTC().Format(time.RFC3339Nano) }

// BeginRun inserts a run row and returns its id.
func (s *SQLiteIndex) BeginRun(ctx context.Context, info RunInfo) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(started_at,chunk_edge,grid_edge,division,density,chunks) VALUES(?,?,?,?,?,?)`,
		now(), info.ChunkEdge, info.GridEdge, info.Division, info.Density, info.Chunks)
	if err != nil {
		return 0, fmt.Errorf("begin run: %w", err)
	}
	return res.LastInsertId()
}

// RecordChunk queues one chunk row for the writer goroutine. Rows recorded
// after Close are ignored.
func (s *SQLiteIndex) RecordChunk(runID int64, st surface.Stats, digest, path string) {
	if s == nil {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}
	s.ch <- req{kind: reqChunk, chunk: ChunkRow{
		RunID:     runID,
		Chunk:     [3]int{st.Chunk.X, st.Chunk.Y, st.Chunk.Z},
		Vertices:  st.Vertices,
		Triangles: st.Triangles,
		Digest:    digest,
		Path:      path,
	}}
}

// Flush blocks until every queued chunk row is committed.
func (s *SQLiteIndex) Flush() {
	if s == nil {
		return
	}
	done := make(chan struct{})
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return
	}
	s.ch <- req{kind: reqFlush, done: done}
	s.mu.RUnlock()
	<-done
}

// Dropped reports how many chunk rows failed to reach the database and the
// most recent failure.
func (s *SQLiteIndex) Dropped() (uint64, error) {
	var err error
	if p := s.lastErr.Load(); p != nil {
		err = *p
	}
	return s.dropped.Load(), err
}

func (s *SQLiteIndex) drop(n int, err error) {
	if n <= 0 {
		return
	}
	s.dropped.Add(uint64(n))
	s.lastErr.Store(&err)
}

// FinishRun commits pending chunk rows and stores the run totals.
func (s *SQLiteIndex) FinishRun(ctx context.Context, runID int64, stats []surface.Stats) error {
	s.Flush()
	v, t := surface.Totals(stats)
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at=?, vertices=?, triangles=? WHERE id=?`, now(), v, t, runID)
	if err != nil {
		return fmt.Errorf("finish run %d: %w", runID, err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		return fmt.Errorf("finish run %d: no such run", runID)
	}
	return nil
}

func (s *SQLiteIndex) LatestRun(ctx context.Context) (RunRow, error) {
	var r RunRow
	err := s.db.QueryRowContext(ctx,
		`SELECT id,started_at,finished_at,chunk_edge,grid_edge,division,density,chunks,vertices,triangles
		 FROM runs ORDER BY id DESC LIMIT 1`).
		Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.ChunkEdge, &r.GridEdge, &r.Division, &r.Density, &r.Chunks, &r.Vertices, &r.Triangles)
	if errors.Is(err, sql.ErrNoRows) {
		return r, ErrNoRuns
	}
	return r, err
}

// ChunkMeshes lists the chunk rows of a run in linear chunk order (x fastest).
func (s *SQLiteIndex) ChunkMeshes(ctx context.Context, runID int64) ([]ChunkRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT cx,cy,cz,vertices,triangles,digest,path FROM chunk_meshes WHERE run_id=? ORDER BY cz,cy,cx`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ChunkRow
	for rows.Next() {
		r := ChunkRow{RunID: runID}
		if err := rows.Scan(&r.Chunk[0], &r.Chunk[1], &r.Chunk[2], &r.Vertices, &r.Triangles, &r.Digest, &r.Path); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteIndex) loop() {
	ctx := context.Background()

	insertChunk, _ := s.db.Prepare(`INSERT OR REPLACE INTO chunk_meshes(run_id,cx,cy,cz,vertices,triangles,digest,path) VALUES(?,?,?,?,?,?,?,?)`)
	defer func() {
		if insertChunk != nil {
			_ = insertChunk.Close()
		}
	}()

	var (
		tx            *sql.Tx
		opCount       int
		lastCommit    = time.Now()
		commitEvery   = 512
		commitMaxWait = 2 * time.Second
	)

	begin := func() error {
		if tx != nil {
			return nil
		}
		txx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		tx = txx
		opCount = 0
		lastCommit = time.Now()
		return nil
	}
	commit := func() {
		if tx == nil {
			return
		}
		if err := tx.Commit(); err != nil {
			_ = tx.Rollback()
			s.drop(opCount, fmt.Errorf("commit chunk rows: %w", err))
		}
		tx = nil
		opCount = 0
		lastCommit = time.Now()
	}

	for r := range s.ch {
		switch r.kind {
		case reqFlush:
			commit()
			close(r.done)
			continue
		case reqChunk:
			if insertChunk == nil {
				s.drop(1, errors.New("chunk insert statement unavailable"))
				continue
			}
			if err := begin(); err != nil {
				s.drop(1, fmt.Errorf("begin: %w", err))
				continue
			}
			c := r.chunk
			// A failed statement is undone on its own; the transaction and the
			// rows already in it survive.
			if _, err := tx.Stmt(insertChunk).Exec(c.RunID, c.Chunk[0], c.Chunk[1], c.Chunk[2], c.Vertices, c.Triangles, c.Digest, c.Path); err != nil {
				s.drop(1, fmt.Errorf("chunk %v of run %d: %w", c.Chunk, c.RunID, err))
			} else {
				opCount++
			}
		}
		// The pool has one connection: release it once the queue drains so
		// readers and BeginRun are not starved by an idle transaction.
		if opCount >= commitEvery || time.Since(lastCommit) >= commitMaxWait || len(s.ch) == 0 {
			commit()
		}
	}

	commit()
}
