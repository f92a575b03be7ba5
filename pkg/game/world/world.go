// Package world holds the per-session house state: every room with its clean flag,
// keyed by name. It extends the engine/world primitives with the cleaning rules.
package world

import (
	"fmt"
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"

	"cleanhouse/pkg/engine/world"
)

// State owns all rooms of a session.
type State struct {
	rooms map[string]*world.Room
	names []string

	// Now stamps cleaning times. Tests replace it for stable timestamps.
	Now func() time.Time
}

// New creates a world state over the given rooms. Later duplicates of a name replace
// earlier ones.
func New(rooms []*world.Room) *State {
	s := &State{
		rooms: make(map[string]*world.Room, len(rooms)),
		Now:   time.Now,
	}
	for _, r := range rooms {
		if _, dup := s.rooms[r.Name]; !dup {
			s.names = append(s.names, r.Name)
		}
		s.rooms[r.Name] = r
	}
	sort.Strings(s.names)
	return s
}

// Room returns the named room.
func (s *State) Room(name string) (*world.Room, error) {
	r, ok := s.rooms[name]
	if !ok {
		return nil, invalidRoom(name)
	}
	return r, nil
}

// Has reports whether the named room exists.
func (s *State) Has(name string) bool {
	_, ok := s.rooms[name]
	return ok
}

// Names returns all room names in sorted order.
func (s *State) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Rooms returns all rooms sorted by name.
func (s *State) Rooms() []*world.Room {
	out := make([]*world.Room, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.rooms[name])
	}
	return out
}

// MarkClean marks the room clean and records when it happened.
func (s *State) MarkClean(name string) error {
	r, err := s.Room(name)
	if err != nil {
		return err
	}
	r.MarkClean(s.Now())
	return nil
}

// MarkDirty marks the room dirty.
func (s *State) MarkDirty(name string) error {
	r, err := s.Room(name)
	if err != nil {
		return err
	}
	r.MarkDirty()
	return nil
}

// IsClean reports whether the room is clean. Unknown rooms are never clean.
func (s *State) IsClean(name string) bool {
	r, ok := s.rooms[name]
	return ok && r.Clean
}

// CleanRooms returns the sorted names of every clean room.
func (s *State) CleanRooms() []string {
	var clean []string
	for _, name := range s.names {
		if s.rooms[name].Clean {
			clean = append(clean, name)
		}
	}
	return clean
}

// AllClean reports whether every room outside excluding is clean.
func (s *State) AllClean(excluding mapset.Set[string]) bool {
	for _, name := range s.names {
		if excluding.Has(name) {
			continue
		}
		if !s.rooms[name].Clean {
			return false
		}
	}
	return true
}

// CountClean returns how many rooms outside excluding are clean, and how many there are.
func (s *State) CountClean(excluding mapset.Set[string]) (clean, total int) {
	for _, name := range s.names {
		if excluding.Has(name) {
			continue
		}
		total++
		if s.rooms[name].Clean {
			clean++
		}
	}
	return clean, total
}

// Graph builds the connectivity graph of the current rooms.
func (s *State) Graph() *world.Graph {
	return world.BuildGraph(s.Rooms())
}

// Coordinates returns every room's position.
func (s *State) Coordinates() world.Coordinates {
	return world.CoordinatesOf(s.Rooms())
}

func invalidRoom(name string) error {
	return fmt.Errorf("%w: %q", world.ErrInvalidRoom, name)
}
