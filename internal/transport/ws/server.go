package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"voxelsurface.ai/internal/mesh"
	"voxelsurface.ai/internal/protocol"
	"voxelsurface.ai/internal/volume"
)

const (
	writeWait    = 5 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	clientQueue  = 256
)

// Hub streams chunk meshes to connected renderers. It implements
// surface.Renderer: every MeshUpdated call replaces the cached message of that
// chunk and is broadcast to all clients. New clients receive WELCOME followed by
// the cached mesh of every chunk in chunk order.
type Hub struct {
	log     *log.Logger
	welcome protocol.WelcomeMsg

	upgrader websocket.Upgrader

	mu      sync.Mutex
	meshes  map[volume.Coord][]byte
	clients map[*client]struct{}
}

type client struct {
	name string
	out  chan []byte
	gone chan struct{}
	once sync.Once
}

func (c *client) drop() { c.once.Do(func() { close(c.gone) }) }

func NewHub(chunkEdge, gridEdge int, logger *log.Logger) *Hub {
	return &Hub{
		log:     logger,
		welcome: protocol.NewWelcome(chunkEdge, gridEdge, gridEdge*gridEdge*gridEdge),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
		meshes:  map[volume.Coord][]byte{},
		clients: map[*client]struct{}{},
	}
}

func (h *Hub) logf(format string, args ...any) {
	if h.log != nil {
		h.log.Printf(format, args...)
	}
}

// MeshUpdated encodes m immediately, so the caller may keep mutating its chunk.
// A mesh that cannot be encoded (non-finite vertices) evicts the cached one and
// clients get an E_INTERNAL error for that chunk instead.
func (h *Hub) MeshUpdated(pos volume.Coord, m *mesh.Mesh) {
	b, err := json.Marshal(protocol.NewMeshMsg(pos, m))
	payload := b
	if err != nil {
		h.logf("chunk %s: encode mesh: %v", pos, err)
		b = nil
		payload = h.mustJSON(protocol.NewError(protocol.ErrInternal, fmt.Sprintf("chunk %s: mesh could not be encoded", pos)))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.meshes[pos] = b
	for c := range h.clients {
		select {
		case c.out <- payload:
		default:
			// A renderer that cannot keep up would show a stale chunk forever.
			h.logf("renderer %s: queue full, disconnecting", c.name)
			delete(h.clients, c)
			c.drop()
		}
	}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		name, ok := h.handshake(conn)
		if !ok {
			return
		}

		c := &client{name: name, out: make(chan []byte, clientQueue), gone: make(chan struct{})}
		snapshot := h.register(c)
		defer h.unregister(c)

		if err := writeRaw(conn, h.mustJSON(h.welcome)); err != nil {
			return
		}
		for _, b := range snapshot {
			if err := writeRaw(conn, b); err != nil {
				return
			}
		}
		h.logf("renderer %s: connected, sent %d meshes", name, len(snapshot))

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		go h.writeLoop(ctx, cancel, conn, c, pingInterval)

		// Reader loop. The read deadline doubles as the liveness check; pongs
		// and requests both extend it.
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			h.handle(c, msg)
		}
		h.logf("renderer %s: disconnected", name)
	}
}

// wsConn is the part of *websocket.Conn the writer needs.
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// writeLoop drains c.out and keeps the connection pinged. Any write failure
// closes conn so the reader blocked in ReadMessage returns at once.
func (h *Hub) writeLoop(ctx context.Context, cancel context.CancelFunc, conn wsConn, c *client, every time.Duration) {
	ping := time.NewTicker(every)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.gone:
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too slow"), time.Now().Add(time.Second))
			cancel()
			_ = conn.Close()
			return
		case b := <-c.out:
			if err := writeRaw(conn, b); err != nil {
				h.logf("renderer %s: write: %v", c.name, err)
				cancel()
				_ = conn.Close()
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.logf("renderer %s: ping: %v", c.name, err)
				cancel()
				_ = conn.Close()
				return
			}
		}
	}
}

// handle answers one renderer request. Replies go through the client queue
// under h.mu, so a GET_MESH reply never overtakes a newer broadcast.
func (h *Hub) handle(c *client, msg []byte) {
	base, err := protocol.DecodeBase(msg)
	if err != nil {
		h.enqueue(c, protocol.NewError(protocol.ErrProtoBadRequest, "malformed message"))
		return
	}
	if base.Type != protocol.TypeGetMesh {
		h.enqueue(c, protocol.NewError(protocol.ErrProtoBadRequest, fmt.Sprintf("unsupported message type %q", base.Type)))
		return
	}
	if base.ProtocolVersion != protocol.Version {
		h.enqueue(c, protocol.NewError(protocol.ErrProtoVersion, "bad protocol_version"))
		return
	}
	var req protocol.GetMeshMsg
	if err := protocol.Validate(msg); err != nil {
		h.enqueue(c, protocol.NewError(protocol.ErrProtoBadRequest, "bad GET_MESH"))
		return
	}
	if err := json.Unmarshal(msg, &req); err != nil {
		h.enqueue(c, protocol.NewError(protocol.ErrProtoBadRequest, "bad GET_MESH"))
		return
	}

	pos := req.Pos()
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.meshes[pos]
	switch {
	case !ok:
		h.enqueue(c, protocol.NewError(protocol.ErrNotFound, fmt.Sprintf("chunk %s has no mesh", pos)))
	case b == nil:
		h.enqueue(c, protocol.NewError(protocol.ErrInternal, fmt.Sprintf("chunk %s: mesh could not be encoded", pos)))
	default:
		h.enqueueRaw(c, b)
	}
}

func (h *Hub) handshake(conn *websocket.Conn) (string, bool) {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return "", false
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		h.reject(conn, protocol.ErrProtoBadRequest, "expected HELLO")
		return "", false
	}
	var hello protocol.HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil {
		h.reject(conn, protocol.ErrProtoBadRequest, "bad HELLO")
		return "", false
	}
	if hello.ProtocolVersion != protocol.Version {
		h.reject(conn, protocol.ErrProtoVersion, "bad protocol_version")
		return "", false
	}
	if hello.ClientName == "" {
		hello.ClientName = "renderer"
	}
	return hello.ClientName, true
}

func (h *Hub) reject(conn *websocket.Conn, code, message string) {
	_ = writeRaw(conn, h.mustJSON(protocol.NewError(code, message)))
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, message), time.Now().Add(time.Second))
}

// register adds c and returns the cached meshes in chunk order. Holding the
// lock for both means every later update reaches c through its queue.
func (h *Hub) register(c *client) [][]byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}

	pos := make([]volume.Coord, 0, len(h.meshes))
	for p := range h.meshes {
		pos = append(pos, p)
	}
	sort.Slice(pos, func(i, j int) bool {
		a, b := pos[i], pos[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	out := make([][]byte, 0, len(pos))
	for _, p := range pos {
		if b := h.meshes[p]; b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) enqueue(c *client, v any) {
	h.enqueueRaw(c, h.mustJSON(v))
}

// enqueueRaw drops b when the queue is full; replies are not worth a
// disconnect the way missed broadcasts are.
func (h *Hub) enqueueRaw(c *client, b []byte) {
	select {
	case c.out <- b:
	default:
	}
}

func (h *Hub) mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		h.logf("encode %T: %v", v, err)
	}
	return b
}

func writeRaw(conn wsConn, b []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, b)
}
