package protocol

import (
	"voxelsurface.ai/internal/mesh"
	"voxelsurface.ai/internal/volume"
)

// HELLO (renderer -> server)
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ClientName      string `json:"client_name"`
}

// GET_MESH (renderer -> server): resend the current mesh of one chunk.
type GetMeshMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Chunk           [3]int `json:"chunk"`
}

func (m GetMeshMsg) Pos() volume.Coord {
	return volume.Coord{X: m.Chunk[0], Y: m.Chunk[1], Z: m.Chunk[2]}
}

// WELCOME (server -> renderer)
type WelcomeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	ChunkEdge       int    `json:"chunk_edge"`
	GridEdge        int    `json:"grid_edge"`
	Chunks          int    `json:"chunks"`
}

// MESH (server -> renderer): the full current mesh of one chunk. Vertices are
// interleaved position, texcoord, normal.
type MeshMsg struct {
	Type            string    `json:"type"`
	ProtocolVersion string    `json:"protocol_version"`
	Chunk           [3]int    `json:"chunk"`
	Digest          string    `json:"digest"`
	VertexStride    int       `json:"vertex_stride"`
	Vertices        []float32 `json:"vertices"`
	Indices         []uint32  `json:"indices"`
}

type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Code            string `json:"code"`
	Message         string `json:"message"`
}

func NewWelcome(chunkEdge, gridEdge, chunks int) WelcomeMsg {
	return WelcomeMsg{
		Type:            TypeWelcome,
		ProtocolVersion: Version,
		ChunkEdge:       chunkEdge,
		GridEdge:        gridEdge,
		Chunks:          chunks,
	}
}

// NewMeshMsg snapshots m. Empty buffers are sent as empty arrays, never null.
func NewMeshMsg(pos volume.Coord, m *mesh.Mesh) MeshMsg {
	msg := MeshMsg{
		Type:            TypeMesh,
		ProtocolVersion: Version,
		Chunk:           [3]int{pos.X, pos.Y, pos.Z},
		VertexStride:    mesh.VertexStride,
		Vertices:        []float32{},
		Indices:         []uint32{},
	}
	if m == nil {
		msg.Digest = mesh.New(nil, nil).DigestHex()
		return msg
	}
	msg.Digest = m.DigestHex()
	msg.Vertices = m.Interleaved()
	msg.Indices = append(msg.Indices, m.Indices...)
	return msg
}

// Mesh rebuilds the mesh carried by the message.
func (m MeshMsg) Mesh() *mesh.Mesh { return mesh.FromInterleaved(m.Vertices, m.Indices) }

func (m MeshMsg) Pos() volume.Coord {
	return volume.Coord{X: m.Chunk[0], Y: m.Chunk[1], Z: m.Chunk[2]}
}

// NewError builds an ERROR message. Codes outside the known set are reported
// as E_INTERNAL so renderers never see an undeclared code.
func NewError(code, message string) ErrorMsg {
	if code == "" || !IsKnownCode(code) {
		code = ErrInternal
	}
	return ErrorMsg{Type: TypeError, ProtocolVersion: Version, Code: code, Message: message}
}
