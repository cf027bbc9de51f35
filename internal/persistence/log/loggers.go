package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"voxelsurface.ai/internal/surface"
)

const (
	EventRunStarted  = "RUN_STARTED"
	EventChunk       = "CHUNK"
	EventRunFinished = "RUN_FINISHED"
)

var (
	ErrRunOpen    = errors.New("extraction run already open")
	ErrRunNotOpen = errors.New("no extraction run open")
)

// Event is one line of a run log. Chunk fields are zero on run events.
type Event struct {
	Type        string `json:"type"`
	RunID       int64  `json:"run_id"`
	At          string `json:"at"`
	Chunk       [3]int `json:"chunk"`
	Cells       int    `json:"cells,omitempty"`
	ActiveCells int    `json:"active_cells,omitempty"`
	Vertices    int    `json:"vertices"`
	Triangles   int    `json:"triangles"`
	ElapsedUS   int64  `json:"elapsed_us"`
	Digest      string `json:"digest,omitempty"`
	Path        string `json:"path,omitempty"`
	Chunks      int    `json:"chunks,omitempty"`
}

// ExtractionLogger writes one zstd-compressed JSONL file per extraction run
// under <dir>/events. RunStarted opens the file, RunFinished closes it.
type ExtractionLogger struct {
	dir string
	now func() time.Time

	mu    sync.Mutex
	runID int64
	path  string
	f     *os.File
	enc   *zstd.Encoder
	w     *bufio.Writer
}

func NewExtractionLogger(dir string) *ExtractionLogger {
	return &ExtractionLogger{dir: filepath.Join(dir, "events"), now: time.Now}
}

// RunPath names the log of a run. Runs without an index id (0) are named by
// their start time.
func (l *ExtractionLogger) RunPath(runID int64, started time.Time) string {
	if runID > 0 {
		return filepath.Join(l.dir, fmt.Sprintf("run-%06d.jsonl.zst", runID))
	}
	return filepath.Join(l.dir, "run-"+started.UTC().Format("20060102T150405.000000000Z")+".jsonl.zst")
}

// Path is the file of the open run, or "" between runs.
func (l *ExtractionLogger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path
}

func (l *ExtractionLogger) timestamp() string {
	return l.now().UTC().Format(time.RFC3339Nano)
}

// RunStarted creates the run's file, replacing a stale log with the same id.
func (l *ExtractionLogger) RunStarted(runID int64, chunks int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f != nil {
		return fmt.Errorf("%w: run %d", ErrRunOpen, l.runID)
	}

	started := l.now()
	path := l.RunPath(runID, started)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	l.f, l.enc, l.w = f, enc, bufio.NewWriterSize(enc, 128*1024)
	l.runID, l.path = runID, path

	return l.writeLocked(Event{Type: EventRunStarted, RunID: runID, At: l.timestamp(), Chunks: chunks})
}

func (l *ExtractionLogger) ChunkExtracted(st surface.Stats, digest, path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return ErrRunNotOpen
	}
	return l.writeLocked(Event{
		Type:        EventChunk,
		RunID:       l.runID,
		At:          l.timestamp(),
		Chunk:       [3]int{st.Chunk.X, st.Chunk.Y, st.Chunk.Z},
		Cells:       st.Cells,
		ActiveCells: st.ActiveCells,
		Vertices:    st.Vertices,
		Triangles:   st.Triangles,
		ElapsedUS:   st.Elapsed.Microseconds(),
		Digest:      digest,
		Path:        path,
	})
}

// RunFinished writes the run totals and closes the run's file.
func (l *ExtractionLogger) RunFinished(stats []surface.Stats, elapsed time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return ErrRunNotOpen
	}
	v, t := surface.Totals(stats)
	err := l.writeLocked(Event{
		Type:      EventRunFinished,
		RunID:     l.runID,
		At:        l.timestamp(),
		Chunks:    len(stats),
		Vertices:  v,
		Triangles: t,
		ElapsedUS: elapsed.Microseconds(),
	})
	if cerr := l.closeLocked(); err == nil {
		err = cerr
	}
	return err
}

// Close ends an unfinished run; the file keeps the events written so far.
func (l *ExtractionLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeLocked()
}

func (l *ExtractionLogger) writeLocked(ev Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	if _, err := l.w.Write(b); err != nil {
		return err
	}
	if err := l.w.WriteByte('\n'); err != nil {
		return err
	}
	return l.w.Flush()
}

func (l *ExtractionLogger) closeLocked() error {
	var err1 error
	if l.w != nil {
		err1 = l.w.Flush()
	}
	if l.enc != nil {
		if err := l.enc.Close(); err1 == nil {
			err1 = err
		}
		l.enc = nil
	}
	if l.f != nil {
		if err := l.f.Close(); err1 == nil {
			err1 = err
		}
		l.f = nil
	}
	l.w = nil
	l.runID, l.path = 0, ""
	return err1
}

// ReadEvents decodes every event of one run log. A file cut short by a crash
// yields the events before the damage together with the error.
func ReadEvents(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Event
	jd := json.NewDecoder(dec)
	for {
		var ev Event
		if err := jd.Decode(&ev); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, ev)
	}
}

// EventFiles lists the run logs under dir in name order.
func EventFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "events", "run-*.jsonl.zst"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
