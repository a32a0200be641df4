package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for scene loading.
var (
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("scene: unsupported format")

	// ErrParse is returned when a file cannot be decoded.
	ErrParse = errors.New("scene: parse failed")

	// ErrInvalidScene is returned when a definition fails validation.
	ErrInvalidScene = errors.New("scene: invalid scene")

	// ErrUnknownVertex is returned when a neighbor, start or goal names a
	// key that no vertex declares.
	ErrUnknownVertex = errors.New("scene: unknown vertex")

	// ErrDuplicateKey is returned when two vertices share a key.
	ErrDuplicateKey = errors.New("scene: duplicate vertex key")

	// ErrTopologyChanged is returned by Relabel when the definition no
	// longer matches the live graph.
	ErrTopologyChanged = errors.New("scene: topology changed")
)

// Definition is an authored scene.
type Definition struct {
	Name        string      `yaml:"name" hcl:"name,optional"`
	Start       string      `yaml:"start" hcl:"start,optional"`
	Goal        string      `yaml:"goal" hcl:"goal,optional"`
	LabelOffset []float64   `yaml:"label_offset" hcl:"label_offset,optional" validate:"max=3,dive,finite"`
	Vertices    []VertexDef `yaml:"vertices" hcl:"vertex,block" validate:"dive"`
}

// VertexDef is one authored vertex. Name may be blank; the walker assigns
// an ordinal name on initialization.
type VertexDef struct {
	Key       string    `yaml:"key" hcl:"key,label" validate:"required"`
	Name      string    `yaml:"name" hcl:"name,optional"`
	Priority  int       `yaml:"priority" hcl:"priority,optional"`
	Position  []float64 `yaml:"position" hcl:"position,optional" validate:"max=3,dive,finite"`
	Neighbors []string  `yaml:"neighbors" hcl:"neighbors,optional" validate:"dive,required"`
}

// Format is a scene file encoding.
type Format int

const (
	// FormatYAML is gopkg.in/yaml.v3 encoded (.yaml, .yml).
	FormatYAML Format = iota
	// FormatHCL is HCL native syntax (.hcl).
	FormatHCL
)

// String returns the lowercase name of f.
func (f Format) String() string {
	if f == FormatHCL {
		return "hcl"
	}

	return "yaml"
}

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return FormatYAML, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads, parses and validates the scene file at path.
func Load(path string) (*Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	def, err := Parse(data, format, path)
	if err != nil {
		return nil, err
	}
	if err = Validate(def); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

// Parse decodes data in the given format. filename is used in diagnostics
// only. The result is not validated.
func Parse(data []byte, format Format, filename string) (*Definition, error) {
	switch format {
	case FormatHCL:
		return parseHCL(data, filename)
	case FormatYAML:
		return parseYAML(data, filename)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// parseYAML decodes strictly: unknown fields are errors.
func parseYAML(data []byte, filename string) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, filename, err)
	}

	return &def, nil
}

func parseHCL(data []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, filename, diags)
	}

	var def Definition
	diags = gohcl.DecodeBody(file.Body, nil, &def)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, filename, diags)
	}

	return &def, nil
}
