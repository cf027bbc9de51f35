package ws

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gorilla/websocket"

	"voxelsurface.ai/internal/mesh"
	"voxelsurface.ai/internal/protocol"
	"voxelsurface.ai/internal/surface"
	"voxelsurface.ai/internal/volume"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	b, _ := json.Marshal(v)
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func recv(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, b, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := protocol.Validate(b); err != nil {
		t.Fatalf("server sent an invalid message %s: %v", b, err)
	}
	return b
}

func hello() protocol.HelloMsg {
	return protocol.HelloMsg{Type: protocol.TypeHello, ProtocolVersion: protocol.Version, ClientName: "test"}
}

func TestHubSendsWelcomeAndCachedMeshes(t *testing.T) {
	s := volume.NewStore(volume.Config{ChunkEdge: 4, GridEdge: 2})
	hub := NewHub(4, 2, nil)
	e := surface.Extractor{Renderer: hub}
	// Extract in reverse so the cache, not call order, decides what is sent.
	chunks := s.Chunks()
	for i := len(chunks) - 1; i >= 0; i-- {
		e.Extract(s, chunks[i])
	}

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	conn := dial(t, srv)
	send(t, conn, hello())

	var welcome protocol.WelcomeMsg
	if err := json.Unmarshal(recv(t, conn), &welcome); err != nil {
		t.Fatalf("welcome: %v", err)
	}
	if welcome.Type != protocol.TypeWelcome || welcome.ChunkEdge != 4 || welcome.GridEdge != 2 || welcome.Chunks != 8 {
		t.Fatalf("welcome: %+v", welcome)
	}
	for i, ch := range chunks {
		var m protocol.MeshMsg
		if err := json.Unmarshal(recv(t, conn), &m); err != nil {
			t.Fatalf("mesh %d: %v", i, err)
		}
		if m.Pos() != ch.Pos {
			t.Fatalf("mesh %d: got chunk %s want %s", i, m.Pos(), ch.Pos)
		}
		if m.Digest != ch.Mesh.DigestHex() || m.Mesh().DigestHex() != m.Digest {
			t.Fatalf("mesh %d: digest mismatch", i)
		}
	}
}

func TestHubBroadcastsUpdates(t *testing.T) {
	s := volume.NewStore(volume.Config{ChunkEdge: 4, GridEdge: 1})
	hub := NewHub(4, 1, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	send(t, conn, hello())
	recv(t, conn) // WELCOME, nothing cached yet

	deadline := time.Now().Add(5 * time.Second)
	for hub.Clients() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	ch := s.ChunkAt(0, 0, 0)
	e := surface.Extractor{Renderer: hub}
	e.Extract(s, ch)

	var m protocol.MeshMsg
	if err := json.Unmarshal(recv(t, conn), &m); err != nil {
		t.Fatalf("mesh: %v", err)
	}
	if m.Type != protocol.TypeMesh || m.Digest != ch.Mesh.DigestHex() || len(m.Indices) != len(ch.Mesh.Indices) {
		t.Fatalf("update: got %s with %d indices", m.Type, len(m.Indices))
	}
}

func TestHubRejectsBadHello(t *testing.T) {
	hub := NewHub(4, 1, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	h := hello()
	h.ProtocolVersion = "0.1"
	send(t, conn, h)

	var e protocol.ErrorMsg
	if err := json.Unmarshal(recv(t, conn), &e); err != nil {
		t.Fatalf("error msg: %v", err)
	}
	if e.Type != protocol.TypeError || e.Code != protocol.ErrProtoVersion {
		t.Fatalf("got %+v", e)
	}

	conn2 := dial(t, srv)
	send(t, conn2, protocol.WelcomeMsg{Type: protocol.TypeWelcome})
	if err := json.Unmarshal(recv(t, conn2), &e); err != nil {
		t.Fatalf("error msg: %v", err)
	}
	if e.Code != protocol.ErrProtoBadRequest {
		t.Fatalf("got %+v", e)
	}
}

func waitClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for hub.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("clients: got %d want %d", hub.Clients(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func recvError(t *testing.T, conn *websocket.Conn) protocol.ErrorMsg {
	t.Helper()
	var e protocol.ErrorMsg
	if err := json.Unmarshal(recv(t, conn), &e); err != nil {
		t.Fatalf("error msg: %v", err)
	}
	if e.Type != protocol.TypeError {
		t.Fatalf("expected ERROR, got %+v", e)
	}
	return e
}

func getMesh(x, y, z int) protocol.GetMeshMsg {
	return protocol.GetMeshMsg{Type: protocol.TypeGetMesh, ProtocolVersion: protocol.Version, Chunk: [3]int{x, y, z}}
}

func TestHubAnswersGetMesh(t *testing.T) {
	s := volume.NewStore(volume.Config{ChunkEdge: 4, GridEdge: 2})
	hub := NewHub(4, 2, nil)
	ch := s.ChunkAt(1, 0, 0)
	e := surface.Extractor{Renderer: hub}
	e.Extract(s, ch)

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	conn := dial(t, srv)
	send(t, conn, hello())
	recv(t, conn) // WELCOME
	recv(t, conn) // cached mesh

	send(t, conn, getMesh(1, 0, 0))
	var m protocol.MeshMsg
	if err := json.Unmarshal(recv(t, conn), &m); err != nil {
		t.Fatalf("mesh: %v", err)
	}
	if m.Pos() != ch.Pos || m.Digest != ch.Mesh.DigestHex() {
		t.Fatalf("GET_MESH reply: chunk %s digest %.12s", m.Pos(), m.Digest)
	}

	send(t, conn, getMesh(0, 1, 0))
	if e := recvError(t, conn); e.Code != protocol.ErrNotFound {
		t.Fatalf("unextracted chunk: got %+v", e)
	}

	bad := getMesh(1, 0, 0)
	bad.ProtocolVersion = "0.1"
	send(t, conn, bad)
	if e := recvError(t, conn); e.Code != protocol.ErrProtoVersion {
		t.Fatalf("old version: got %+v", e)
	}

	send(t, conn, map[string]any{"type": protocol.TypeGetMesh, "protocol_version": protocol.Version, "chunk": []int{1}})
	if e := recvError(t, conn); e.Code != protocol.ErrProtoBadRequest {
		t.Fatalf("short chunk: got %+v", e)
	}

	send(t, conn, hello())
	if e := recvError(t, conn); e.Code != protocol.ErrProtoBadRequest {
		t.Fatalf("second HELLO: got %+v", e)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if e := recvError(t, conn); e.Code != protocol.ErrProtoBadRequest {
		t.Fatalf("malformed: got %+v", e)
	}
}

func TestHubReportsUnencodableMesh(t *testing.T) {
	hub := NewHub(4, 1, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	send(t, conn, hello())
	recv(t, conn) // WELCOME
	waitClients(t, hub, 1)

	nan := float32(math.NaN())
	broken := mesh.New([]mesh.Vertex{{Position: mgl32.Vec3{nan, 0, 0}}}, nil)
	hub.MeshUpdated(volume.Coord{}, broken)
	if e := recvError(t, conn); e.Code != protocol.ErrInternal {
		t.Fatalf("broadcast: got %+v", e)
	}

	send(t, conn, getMesh(0, 0, 0))
	if e := recvError(t, conn); e.Code != protocol.ErrInternal {
		t.Fatalf("GET_MESH: got %+v", e)
	}

	// A fresh client gets no stale mesh for the broken chunk.
	conn2 := dial(t, srv)
	send(t, conn2, hello())
	recv(t, conn2) // WELCOME
	send(t, conn2, getMesh(0, 0, 0))
	if e := recvError(t, conn2); e.Code != protocol.ErrInternal {
		t.Fatalf("second client: got %+v", e)
	}
}

func TestHubForgetsClosedClients(t *testing.T) {
	hub := NewHub(4, 1, nil)
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	send(t, conn, hello())
	recv(t, conn)
	waitClients(t, hub, 1)

	conn.Close()
	waitClients(t, hub, 0)
}

type fakeConn struct {
	failWrite   bool
	failControl bool

	once   sync.Once
	closed chan struct{}
}

var errBroken = errors.New("broken pipe")

func newFakeConn() *fakeConn { return &fakeConn{closed: make(chan struct{})} }

func (f *fakeConn) WriteMessage(int, []byte) error {
	if f.failWrite {
		return errBroken
	}
	return nil
}

func (f *fakeConn) WriteControl(int, []byte, time.Time) error {
	if f.failControl {
		return errBroken
	}
	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.once.Do(func() { close(f.closed) })
	return nil
}

func TestWriterClosesConnOnFailure(t *testing.T) {
	cases := []struct {
		name  string
		conn  *fakeConn
		every time.Duration
		queue bool
	}{
		{name: "write", conn: &fakeConn{failWrite: true}, every: time.Hour, queue: true},
		{name: "ping", conn: &fakeConn{failControl: true}, every: 5 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.conn.closed = make(chan struct{})
			hub := NewHub(4, 1, nil)
			c := &client{name: "test", out: make(chan []byte, 1), gone: make(chan struct{})}
			if tc.queue {
				c.out <- []byte(`{}`)
			}
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			done := make(chan struct{})
			go func() {
				hub.writeLoop(ctx, cancel, tc.conn, c, tc.every)
				close(done)
			}()

			select {
			case <-tc.conn.closed:
			case <-time.After(5 * time.Second):
				t.Fatalf("conn never closed")
			}
			<-done
			if ctx.Err() == nil {
				t.Fatalf("context not cancelled")
			}
		})
	}

	healthy := newFakeConn()
	hub := NewHub(4, 1, nil)
	c := &client{name: "test", out: make(chan []byte, 1), gone: make(chan struct{})}
	c.out <- []byte(`{}`)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.writeLoop(ctx, cancel, healthy, c, time.Hour)
		close(done)
	}()
	cancel()
	<-done
	select {
	case <-healthy.closed:
		t.Fatalf("writer closed a healthy conn on cancel")
	default:
	}
}
