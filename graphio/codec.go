// File: codec.go
// Role: YAML/JSON encoding of graph documents and file helpers.
// Policy:
//   - Decoding always goes through yaml.v3, which also accepts JSON.
//   - Unknown document fields are rejected.
//   - Encoding picks the format explicitly; files pick it by extension.

package graphio

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphedit/core"
)

// Sentinel errors.
var (
	ErrEmptyDocument = errors.New("graphio: empty document")
	ErrUnknownFormat = errors.New("graphio: unknown format")
	ErrBadEdge       = errors.New("graphio: edge endpoint is not a node")
)

// Format selects the encoding written by Encode.
type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	}

	return "unknown"
}

// ParseFormat accepts "yaml", "yml" and "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}

	return YAML, errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// FormatOf derives the format from a file extension; anything but .json is YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}

	return YAML
}

// DecodeDocument reads one YAML or JSON document from r.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, ErrEmptyDocument
		}

		return Document{}, errors.Wrap(err, "graphio: decode")
	}

	return doc, nil
}

// Decode reads one document from r and builds its graph.
func Decode(r io.Reader) (*core.Graph, error) {
	doc, err := DecodeDocument(r)
	if err != nil {
		return nil, err
	}

	return doc.Graph()
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *core.Graph, f Format) error {
	doc := FromGraph(g)
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "graphio: encode yaml")
		}

		return errors.Wrap(enc.Close(), "graphio: encode yaml")
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(doc), "graphio: encode json")
	}

	return errors.Wrapf(ErrUnknownFormat, "%d", int(f))
}

// Marshal is Encode into a byte slice.
func Marshal(g *core.Graph, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, g, f); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ReadFile decodes the graph stored at path.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "graphio")
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return g, nil
}

// WriteFile stores g at path in the format implied by its extension.
func WriteFile(path string, g *core.Graph) error {
	data, err := Marshal(g, FormatOf(path))
	if err != nil {
		return err
	}

	return errors.Wrap(os.WriteFile(path, data, 0o644), "graphio")
}
