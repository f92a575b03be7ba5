package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanhouse/pkg/engine/world"
)

func TestDefault_House(t *testing.T) {
	doc := Default()
	require.Len(t, doc.Rooms, 8)

	rooms, err := doc.Build()
	require.NoError(t, err)

	byName := make(map[string]*world.Room)
	for _, r := range rooms {
		byName[r.Name] = r
		assert.False(t, r.Clean, "%s starts dirty", r.Name)
	}

	foyer := byName["The Foyer"]
	require.NotNil(t, foyer)
	assert.Equal(t, 325, foyer.X)
	assert.Equal(t, 250, foyer.Y)
	assert.Equal(t, "Kitchen", foyer.GetNeighbor(world.South))
	assert.Equal(t, "Backyard", foyer.GetNeighbor(world.West))
	assert.Equal(t, "Master Bedroom", byName["Living Room"].GetNeighbor(world.North))

	g := world.BuildGraph(rooms)
	require.NoError(t, g.Validate())
	reach, err := g.Reachable("The Foyer")
	require.NoError(t, err)
	assert.Equal(t, 8, reach.Size())
}

func TestParse_SchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty document", ""},
		{"not yaml", "rooms: [ {"},
		{"no rooms", "rooms: []"},
		{"missing coordinates", "rooms:\n  - name: A\n"},
		{"bad direction", "rooms:\n  - name: A\n    x: 0\n    y: 0\n    connections:\n      Up: A\n"},
		{"non-integer x", "rooms:\n  - name: A\n    x: 1.5\n    y: 0\n"},
		{"extra field", "rooms:\n  - name: A\n    x: 0\n    y: 0\n    colour: red\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestParse_ReferenceErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"duplicate", "rooms:\n  - {name: A, x: 0, y: 0}\n  - {name: A, x: 1, y: 1}\n"},
		{"unknown target", "rooms:\n  - name: A\n    x: 0\n    y: 0\n    connections: {North: B}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.ErrorIs(t, err, ErrInvalidLayout)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.yaml")
	body := `rooms:
  - name: Hall
    x: 0
    y: 0
    connections: {East: Study}
  - name: Study
    x: 150
    y: 0
    connections: {West: Hall}
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	rooms, err := doc.Build()
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Study", rooms[0].GetNeighbor(world.East))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromRooms_RoundTripsThroughParse(t *testing.T) {
	rooms, err := Default().Build()
	require.NoError(t, err)

	b, err := FromRooms(rooms).Marshal()
	require.NoError(t, err)

	doc, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, Default(), doc)
}
