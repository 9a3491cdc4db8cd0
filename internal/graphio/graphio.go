// Package graphio reads and writes node-link graph documents:
//
//	{"directed": false,
//	 "nodes": [{"name": "a"}, {"name": "b"}],
//	 "links": [{"source": 0, "target": 1, "weight": 2.5}]}
//
// Link endpoints are node indices. A missing weight means 1. Documents may be
// YAML or JSON; the format is taken from the file extension.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/katalvlaran/lvlcentrality/builder"
	"github.com/katalvlaran/lvlcentrality/core"
)

var (
	// ErrUnsupportedFormat is returned for an unknown document format.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")

	// ErrInvalidDocument is returned when a document cannot describe a graph.
	ErrInvalidDocument = errors.New("graphio: invalid document")
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ParseFormat resolves a format name ("yaml", "yml", "json").
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Document is a node-link graph description.
type Document struct {
	Directed bool   `json:"directed" yaml:"directed"`
	Nodes    []Node `json:"nodes" yaml:"nodes"`
	Links    []Link `json:"links" yaml:"links"`
}

// Node is one vertex; its index in Document.Nodes is its id.
type Node struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Link is one edge between node indices.
type Link struct {
	Source int      `json:"source" yaml:"source"`
	Target int      `json:"target" yaml:"target"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// ReadFile decodes the document at path.
func ReadFile(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}

// Decode reads one document from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidDocument, err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: json: %w", ErrInvalidDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return &doc, nil
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Graph validates the document and builds a core.Graph. Undirected
// documents are mirrored; extra options (e.g. a cost mode) are appended.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	if len(d.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInvalidDocument)
	}

	edges := make([]core.Edge, len(d.Links))
	for i, l := range d.Links {
		w := 1.0
		if l.Weight != nil {
			w = *l.Weight
		}
		edges[i] = core.Edge{From: l.Source, To: l.Target, Weight: w}
	}

	if !d.Directed {
		opts = append([]core.GraphOption{core.WithSymmetric()}, opts...)
	}
	g, err := core.NewGraph(len(d.Nodes), edges, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return g, nil
}

// Names returns one label per node; unnamed nodes are labeled by index.
func (d *Document) Names() []string {
	names := make([]string, len(d.Nodes))
	for i, n := range d.Nodes {
		names[i] = n.Name
		if names[i] == "" {
			names[i] = strconv.Itoa(i)
		}
	}

	return names
}

// FromBlueprint converts an assembled builder fixture into a document.
// Unit weights are omitted.
func FromBlueprint(b *builder.Blueprint, directed bool) *Document {
	doc := &Document{
		Directed: directed,
		Nodes:    make([]Node, b.N),
		Links:    make([]Link, len(b.Edges)),
	}
	for i := range doc.Nodes {
		doc.Nodes[i].Name = b.Labels[i]
	}
	for i, e := range b.Edges {
		doc.Links[i] = Link{Source: e.From, Target: e.To}
		if e.Weight != builder.DefaultEdgeWeight {
			w := e.Weight
			doc.Links[i].Weight = &w
		}
	}

	return doc
}
