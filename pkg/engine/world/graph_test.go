package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// houseRooms returns a small symmetric layout used across the package tests:
// Foyer <-> Kitchen <-> Bedroom, plus a one-way Shed -> Foyer.
func houseRooms() []*Room {
	foyer := NewRoom("Foyer", 325, 250).Connect(South, "Kitchen")
	kitchen := NewRoom("Kitchen", 325, 375).Connect(North, "Foyer").Connect(East, "Bedroom")
	bedroom := NewRoom("Bedroom", 500, 375).Connect(West, "Kitchen")
	shed := NewRoom("Shed", 150, 250).Connect(East, "Foyer")
	return []*Room{foyer, kitchen, bedroom, shed}
}

func TestBuildGraph_NeighborsFollowConnections(t *testing.T) {
	g := BuildGraph(houseRooms())

	tests := []struct {
		room string
		want []string
	}{
		{"Foyer", []string{"Kitchen"}},
		{"Kitchen", []string{"Foyer", "Bedroom"}},
		{"Bedroom", []string{"Kitchen"}},
		{"Shed", []string{"Foyer"}},
	}
	for _, tt := range tests {
		t.Run(tt.room, func(t *testing.T) {
			got, err := g.Neighbors(tt.room)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildGraph_NotSymmetric(t *testing.T) {
	g := BuildGraph(houseRooms())

	got, err := g.Neighbors("Foyer")
	require.NoError(t, err)
	assert.NotContains(t, got, "Shed", "Shed -> Foyer must not imply Foyer -> Shed")
}

func TestGraph_NeighborsUnknownRoom(t *testing.T) {
	g := BuildGraph(houseRooms())

	_, err := g.Neighbors("Attic")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRoom), "Neighbors(\"Attic\") error = %v, want ErrInvalidRoom", err)
}

func TestGraph_AllRooms(t *testing.T) {
	g := BuildGraph(houseRooms())
	all := g.AllRooms()

	assert.Equal(t, 4, all.Size())
	for _, name := range []string{"Foyer", "Kitchen", "Bedroom", "Shed"} {
		assert.True(t, all.Has(name), "AllRooms() missing %q", name)
	}
}

func TestGraph_Validate(t *testing.T) {
	require.NoError(t, BuildGraph(houseRooms()).Validate())

	broken := append(houseRooms(), NewRoom("Attic", 0, 0).Connect(South, "Roof"))
	err := BuildGraph(broken).Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRoom)
	assert.Contains(t, err.Error(), "Roof")
}

func TestGraph_Reachable(t *testing.T) {
	g := BuildGraph(houseRooms())

	fromFoyer, err := g.Reachable("Foyer")
	require.NoError(t, err)
	assert.Equal(t, 3, fromFoyer.Size())
	assert.False(t, fromFoyer.Has("Shed"))

	fromShed, err := g.Reachable("Shed")
	require.NoError(t, err)
	assert.Equal(t, 4, fromShed.Size())

	_, err = g.Reachable("Attic")
	assert.ErrorIs(t, err, ErrInvalidRoom)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in     string
		want   Direction
		wantOK bool
	}{
		{"North", North, true},
		{"east", East, true},
		{" SOUTH ", South, true},
		{"West", West, true},
		{"Up", North, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDirection(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
				back, ok := ParseDirection(got.String())
				assert.True(t, ok)
				assert.Equal(t, got, back)
			}
		})
	}
}
