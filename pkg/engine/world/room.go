// Package world provides the room-connectivity primitives the house is built from:
// rooms, the directed graph derived from their connections, and A* search over it.
package world

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRoom is returned when a room name is not part of the house.
// It indicates a corrupted world definition and is not recoverable.
var ErrInvalidRoom = errors.New("invalid room")

// ErrUnreachable is returned when a room cannot be reached from where the player starts.
var ErrUnreachable = errors.New("unreachable room")

func invalidRoom(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidRoom, name)
}

// Room is a node of the house graph.
type Room struct {
	Name string

	// Position in screen units. Only used as the search heuristic and for drawing.
	X int
	Y int

	// Connections maps a direction to the name of the room reached by going that way.
	Connections map[Direction]string

	Clean       bool
	LastCleaned time.Time
}

// NewRoom creates a new dirty room at the given position
func NewRoom(name string, x, y int) *Room {
	return &Room{
		Name:        name,
		X:           x,
		Y:           y,
		Connections: make(map[Direction]string),
	}
}

// Connect adds a one-way connection from r to the named room.
func (r *Room) Connect(dir Direction, to string) *Room {
	r.Connections[dir] = to
	return r
}

// GetNeighbor returns the name of the room in the given direction, or "" if there is none
func (r *Room) GetNeighbor(dir Direction) string {
	if r == nil {
		return ""
	}
	return r.Connections[dir]
}

// NeighborNames returns connected room names in North, East, South, West order.
func (r *Room) NeighborNames() []string {
	var names []string
	for _, dir := range AllDirections() {
		if to, ok := r.Connections[dir]; ok {
			names = append(names, to)
		}
	}
	return names
}

// MarkClean marks the room clean and stamps the cleaning time.
func (r *Room) MarkClean(now time.Time) {
	r.Clean = true
	r.LastCleaned = now
}

// MarkDirty marks the room dirty.
func (r *Room) MarkDirty() {
	r.Clean = false
}

// Point is an integer 2D position.
type Point struct {
	X int
	Y int
}

// Coordinates maps room names to their positions.
type Coordinates map[string]Point

// CoordinatesOf collects the positions of the given rooms.
func CoordinatesOf(rooms []*Room) Coordinates {
	coords := make(Coordinates, len(rooms))
	for _, r := range rooms {
		coords[r.Name] = Point{X: r.X, Y: r.Y}
	}
	return coords
}

// Manhattan returns |ax-bx| + |ay-by|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
