// Package layout describes houses: which rooms exist, where they are drawn and how
// their doors connect. Layouts are YAML documents checked against an embedded schema.
package layout

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"cleanhouse/pkg/engine/world"
)

// ErrInvalidLayout is returned for documents that fail the schema or reference checks.
var ErrInvalidLayout = errors.New("invalid layout")

//go:embed house.yaml
var houseYAML []byte

//go:embed layout.schema.json
var schemaJSON []byte

const schemaURL = "layout.schema.json"

var schema = mustCompile()

func mustCompile() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile(schemaURL)
}

// Doc is a house layout file.
type Doc struct {
	Rooms []RoomSpec `yaml:"rooms"`
}

// RoomSpec is one room of a layout. Connections map direction names to room names.
type RoomSpec struct {
	Name        string            `yaml:"name"`
	X           int               `yaml:"x"`
	Y           int               `yaml:"y"`
	Connections map[string]string `yaml:"connections,omitempty"`
}

// Default returns the stock eight-room house.
func Default() Doc {
	doc, err := Parse(houseYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in house: %v", err))
	}
	return doc
}

// Load reads and validates a layout file.
func Load(path string) (Doc, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Doc{}, err
	}
	doc, err := Parse(b)
	if err != nil {
		return Doc{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML layout and validates it.
func Parse(b []byte) (Doc, error) {
	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return Doc{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := schema.Validate(raw); err != nil {
		return Doc{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	var doc Doc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return Doc{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	if err := doc.Validate(); err != nil {
		return Doc{}, err
	}
	return doc, nil
}

// Validate checks what the schema cannot: unique names and connection targets.
func (d Doc) Validate() error {
	if len(d.Rooms) == 0 {
		return fmt.Errorf("%w: no rooms", ErrInvalidLayout)
	}
	seen := make(map[string]bool, len(d.Rooms))
	for _, r := range d.Rooms {
		if r.Name == "" {
			return fmt.Errorf("%w: room with empty name", ErrInvalidLayout)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: duplicate room %q", ErrInvalidLayout, r.Name)
		}
		seen[r.Name] = true
	}
	for _, r := range d.Rooms {
		for _, label := range sortedKeys(r.Connections) {
			if _, ok := world.ParseDirection(label); !ok {
				return fmt.Errorf("%w: room %q has unknown direction %q", ErrInvalidLayout, r.Name, label)
			}
			if to := r.Connections[label]; !seen[to] {
				return fmt.Errorf("%w: room %q connects %s to unknown room %q", ErrInvalidLayout, r.Name, label, to)
			}
		}
	}
	return nil
}

// Build creates the rooms of the layout, all dirty.
func (d Doc) Build() ([]*world.Room, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	rooms := make([]*world.Room, 0, len(d.Rooms))
	for _, rs := range d.Rooms {
		r := world.NewRoom(rs.Name, rs.X, rs.Y)
		for label, to := range rs.Connections {
			dir, _ := world.ParseDirection(label)
			r.Connect(dir, to)
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}

// FromRooms converts rooms back into a layout document, e.g. to export a saved house.
func FromRooms(rooms []*world.Room) Doc {
	doc := Doc{Rooms: make([]RoomSpec, 0, len(rooms))}
	for _, r := range rooms {
		rs := RoomSpec{Name: r.Name, X: r.X, Y: r.Y}
		if len(r.Connections) > 0 {
			rs.Connections = make(map[string]string, len(r.Connections))
			for dir, to := range r.Connections {
				rs.Connections[dir.String()] = to
			}
		}
		doc.Rooms = append(doc.Rooms, rs)
	}
	return doc
}

// Marshal encodes the document as YAML.
func (d Doc) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
