// Package config loads the YAML file that drives extraction runs and the mesh
// server.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"voxelsurface.ai/internal/density"
	"voxelsurface.ai/internal/volume"
)

//go:embed config.schema.json
var schemaJSON string

type Config struct {
	Volume  VolumeSpec  `yaml:"volume"`
	Density DensitySpec `yaml:"density"`
	Extract ExtractSpec `yaml:"extract"`
	Output  OutputSpec  `yaml:"output"`
	Server  ServerSpec  `yaml:"server"`
}

type VolumeSpec struct {
	ChunkEdge     int    `yaml:"chunk_edge"`
	GridEdge      int    `yaml:"grid_edge"`
	ChunkDivision string `yaml:"chunk_division"`
}

type DensitySpec struct {
	Kind      string     `yaml:"kind"`
	Seed      int64      `yaml:"seed"`
	Center    [3]float64 `yaml:"center"`
	Radius    float64    `yaml:"radius"`
	Scale     float64    `yaml:"scale"`
	Cell      int        `yaml:"cell"`
	Threshold float64    `yaml:"threshold"`
	Value     int        `yaml:"value"`
}

type ExtractSpec struct {
	Workers int `yaml:"workers"`
}

// OutputSpec locates the artifacts of a run. Empty paths disable the artifact.
type OutputSpec struct {
	MeshDir  string `yaml:"mesh_dir"`
	EventLog string `yaml:"event_log"`
	IndexDB  string `yaml:"index_db"`
}

type ServerSpec struct {
	Addr string `yaml:"addr"`
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	name := filepath.Base(path)
	if err := validateDocument(b); err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

func Defaults() Config {
	return Config{
		Volume: VolumeSpec{
			ChunkEdge:     volume.DefaultChunkEdge,
			GridEdge:      volume.DefaultGridEdge,
			ChunkDivision: volume.FloorDivision.String(),
		},
		Density: DensitySpec{Kind: "shell"},
		Extract: ExtractSpec{Workers: 1},
		Server:  ServerSpec{Addr: ":8080"},
	}
}

func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.Volume.ChunkDivision = strings.ToLower(strings.TrimSpace(c.Volume.ChunkDivision))
	if c.Volume.ChunkDivision == "" {
		c.Volume.ChunkDivision = volume.FloorDivision.String()
	}
	c.Density.Kind = strings.ToLower(strings.TrimSpace(c.Density.Kind))
	if c.Density.Kind == "" {
		c.Density.Kind = "shell"
	}
	if c.Density.Kind == "sphere" && c.Density.Scale == 0 {
		c.Density.Scale = 16
	}
	if c.Density.Kind == "noise" && c.Density.Cell <= 0 {
		c.Density.Cell = 8
	}
	if c.Extract.Workers <= 0 {
		c.Extract.Workers = 1
	}
	c.Output.MeshDir = strings.TrimSpace(c.Output.MeshDir)
	c.Output.EventLog = strings.TrimSpace(c.Output.EventLog)
	c.Output.IndexDB = strings.TrimSpace(c.Output.IndexDB)
}

func (c Config) Validate() error {
	c.Normalize()
	if c.Volume.ChunkEdge <= 0 {
		return fmt.Errorf("volume.chunk_edge must be > 0")
	}
	if c.Volume.GridEdge <= 0 {
		return fmt.Errorf("volume.grid_edge must be > 0")
	}
	if _, err := volume.ParseDivision(c.Volume.ChunkDivision); err != nil {
		return fmt.Errorf("volume.chunk_division: %w", err)
	}
	if _, err := density.Build(c.DensitySpec(), c.Volume.ChunkEdge); err != nil {
		return fmt.Errorf("density: %w", err)
	}
	return nil
}

// Store builds the volume described by the config and fills it from the
// configured density.
func (c Config) Store() (*volume.Store, error) {
	div, err := volume.ParseDivision(c.Volume.ChunkDivision)
	if err != nil {
		return nil, err
	}
	s := volume.NewStore(volume.Config{
		ChunkEdge: c.Volume.ChunkEdge,
		GridEdge:  c.Volume.GridEdge,
		Division:  div,
	})
	fn, err := density.Build(c.DensitySpec(), c.Volume.ChunkEdge)
	if err != nil {
		return nil, err
	}
	s.Populate(fn)
	return s, nil
}

func (c Config) DensitySpec() density.Spec {
	d := c.Density
	return density.Spec{
		Kind:      d.Kind,
		Seed:      d.Seed,
		Center:    d.Center,
		Radius:    d.Radius,
		Scale:     d.Scale,
		Cell:      d.Cell,
		Threshold: d.Threshold,
		Value:     d.Value,
	}
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("config.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile("config.schema.json")
	})
	return schema, schemaErr
}

// validateDocument checks the raw YAML document against the embedded schema.
// The document goes through JSON so the validator sees JSON number types.
func validateDocument(b []byte) error {
	var doc any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return err
	}
	if doc == nil {
		return nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	return s.Validate(v)
}
