package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/svgrot/internal/geom"
	"gopkg.in/yaml.v3"
)

// Kind selects the output encoding.
type Kind string

const (
	Text Kind = "text"
	JSON Kind = "json"
	YAML Kind = "yaml"
)

// ParseKind validates an output format name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case Text, JSON, YAML:
		return k, nil
	default:
		return "", fmt.Errorf("unknown output format %q: must be 'text', 'json' or 'yaml'", s)
	}
}

// Result is one unit of output: either a rotated point set or a path.
type Result struct {
	Name   string
	Points geom.PointSet
	Path   string
}

// Value is an already formatted number. It is emitted unquoted so the
// trimmed text survives encoding exactly.
type Value string

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if !json.Valid([]byte(v)) {
		return nil, fmt.Errorf("invalid number %q", string(v))
	}
	return []byte(v), nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	tag := "!!int"
	if strings.Contains(string(v), ".") {
		tag = "!!float"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(v)}, nil
}

// Coord is the structured form of a point.
type Coord struct {
	X Value `json:"x" yaml:"x"`
	Y Value `json:"y" yaml:"y"`
}

type record struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Kind   string  `json:"kind" yaml:"kind"`
	Points []Coord `json:"points,omitempty" yaml:"points,omitempty"`
	Path   string  `json:"path,omitempty" yaml:"path,omitempty"`
}

// Encoder writes results in one of the supported formats.
type Encoder struct {
	w         io.Writer
	kind      Kind
	precision int
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer, kind Kind, precision int) *Encoder {
	return &Encoder{w: w, kind: kind, precision: precision}
}

// EncodeOne writes a single result. In text mode this is just the value.
func (e *Encoder) EncodeOne(r Result) error {
	switch e.kind {
	case JSON:
		return e.encodeJSON(e.toRecord(r))
	case YAML:
		return e.encodeYAML(e.toRecord(r))
	default:
		_, err := fmt.Fprintln(e.w, e.text(r))
		return err
	}
}

// EncodeAll writes a list of results. In text mode each line is prefixed
// with the result name.
func (e *Encoder) EncodeAll(rs []Result) error {
	switch e.kind {
	case JSON, YAML:
		records := make([]record, len(rs))
		for i, r := range rs {
			records[i] = e.toRecord(r)
		}
		if e.kind == JSON {
			return e.encodeJSON(records)
		}
		return e.encodeYAML(records)
	default:
		for _, r := range rs {
			sep := " "
			if r.Points == nil && strings.Contains(r.Path, "\n") {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(e.w, "%s:%s%s\n", r.Name, sep, e.text(r)); err != nil {
				return err
			}
		}
		return nil
	}
}

func (e *Encoder) text(r Result) string {
	if r.Points != nil {
		return Points(r.Points, e.precision)
	}
	return r.Path
}

func (e *Encoder) toRecord(r Result) record {
	if r.Points == nil {
		return record{Name: r.Name, Kind: "path", Path: r.Path}
	}
	coords := make([]Coord, len(r.Points))
	for i, p := range r.Points {
		coords[i] = Coord{
			X: Value(Number(p.X, e.precision)),
			Y: Value(Number(p.Y, e.precision)),
		}
	}
	return record{Name: r.Name, Kind: "points", Points: coords}
}

func (e *Encoder) encodeJSON(v any) error {
	enc := json.NewEncoder(e.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (e *Encoder) encodeYAML(v any) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
