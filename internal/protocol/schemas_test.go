package protocol_test

import (
	"encoding/json"
	"testing"

	"voxelsurface.ai/internal/mesh"
	"voxelsurface.ai/internal/protocol"
	"voxelsurface.ai/internal/surface"
	"voxelsurface.ai/internal/volume"
)

func TestSchemas_ValidateSamples(t *testing.T) {
	validate := func(raw string) {
		t.Helper()
		if err := protocol.Validate([]byte(raw)); err != nil {
			t.Fatalf("validate %s: %v", raw, err)
		}
	}

	validate(`{"type":"HELLO","protocol_version":"1.0","client_name":"viewer"}`)
	validate(`{"type":"WELCOME","protocol_version":"1.0","chunk_edge":32,"grid_edge":4,"chunks":64}`)
	validate(`{"type":"ERROR","protocol_version":"1.0","code":"E_NOT_FOUND","message":"no such chunk"}`)
	validate(`{"type":"GET_MESH","protocol_version":"1.0","chunk":[-1,0,3]}`)
	validate(`{
	  "type":"MESH",
	  "protocol_version":"1.0",
	  "chunk":[1,0,2],
	  "digest":"` + mesh.New(nil, nil).DigestHex() + `",
	  "vertex_stride":8,
	  "vertices":[],
	  "indices":[]
	}`)
}

func TestSchemas_RejectMalformed(t *testing.T) {
	bad := []string{
		`{"type":"HELLO"}`,
		`{"type":"WELCOME","protocol_version":"1.0","chunk_edge":0,"grid_edge":4,"chunks":64}`,
		`{"type":"WELCOME","protocol_version":"1.0","chunk_edge":4.5,"grid_edge":4,"chunks":64}`,
		`{"type":"MESH","protocol_version":"1.0","chunk":[1,0],"digest":"x","vertex_stride":8,"vertices":[],"indices":[]}`,
		`{"type":"ERROR","protocol_version":"1.0","code":"nope","message":""}`,
		`{"type":"OBS","protocol_version":"1.0"}`,
		`{"type":"GET_MESH","protocol_version":"1.0","chunk":[0,0]}`,
		`{"type":"GET_MESH","protocol_version":"1.0","chunk":[0,0.5,0]}`,
	}
	for _, raw := range bad {
		if err := protocol.Validate([]byte(raw)); err == nil {
			t.Fatalf("expected %s to be rejected", raw)
		}
	}
}

func TestMeshMessageFromExtraction(t *testing.T) {
	s := volume.NewStore(volume.Config{ChunkEdge: 4, GridEdge: 2})
	ch := s.ChunkAt(1, 1, 0)
	surface.Extract(s, ch)

	msg := protocol.NewMeshMsg(ch.Pos, ch.Mesh)
	b, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := protocol.Validate(b); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(msg.Vertices) != len(ch.Mesh.Vertices)*mesh.VertexStride {
		t.Fatalf("vertices: got %d floats for %d vertices", len(msg.Vertices), len(ch.Mesh.Vertices))
	}

	var back protocol.MeshMsg
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Pos() != ch.Pos || back.Mesh().DigestHex() != msg.Digest {
		t.Fatalf("decoded mesh does not match its digest")
	}
}

func TestMeshMessageOfMissingMesh(t *testing.T) {
	msg := protocol.NewMeshMsg(volume.Coord{}, nil)
	b, _ := json.Marshal(msg)
	if err := protocol.Validate(b); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
