package renderer

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/state"
)

// Icon constants shared by the text renderers
const (
	PlayerIcon = "@"
	AgentIcon  = "*"
)

// Slot is a room's place in the text map grid.
type Slot struct {
	Row, Col int
}

// HouseMap arranges rooms on a grid by ranking their distinct X and Y positions,
// so rooms keep their relative placement without needing pixel coordinates.
type HouseMap struct {
	Rows, Cols int
	Cells      [][]string // room name per slot, "" when empty
	Slots      map[string]Slot
}

// BuildHouseMap lays out the given rooms.
func BuildHouseMap(rooms []*world.Room) HouseMap {
	xs, ys := mapset.New[int](), mapset.New[int]()
	for _, r := range rooms {
		xs.Put(r.X)
		ys.Put(r.Y)
	}
	colOf := rank(xs)
	rowOf := rank(ys)

	m := HouseMap{
		Rows:  ys.Size(),
		Cols:  xs.Size(),
		Slots: make(map[string]Slot, len(rooms)),
	}
	m.Cells = make([][]string, m.Rows)
	for i := range m.Cells {
		m.Cells[i] = make([]string, m.Cols)
	}
	for _, r := range rooms {
		s := Slot{Row: rowOf[r.Y], Col: colOf[r.X]}
		// Two rooms on the same spot: the first one (by name) wins the slot.
		if m.Cells[s.Row][s.Col] == "" || r.Name < m.Cells[s.Row][s.Col] {
			m.Cells[s.Row][s.Col] = r.Name
		}
		m.Slots[r.Name] = s
	}
	return m
}

func rank(values mapset.Set[int]) map[int]int {
	sorted := make([]int, 0, values.Size())
	values.Each(func(v int) {
		sorted = append(sorted, v)
	})
	sort.Ints(sorted)

	out := make(map[int]int, len(sorted))
	for i, v := range sorted {
		out[v] = i
	}
	return out
}

// Markers returns the icons to show next to a room name.
func Markers(g *state.Game, room string) string {
	m := ""
	if g.PlayerRoom == room {
		m += PlayerIcon
	}
	if g.Agent != nil && g.Agent.Room == room {
		m += AgentIcon
	}
	return m
}

// RoomStyle picks the style a room is drawn in.
func RoomStyle(g *state.Game, room string) TextStyle {
	switch {
	case room == g.GoalRoom:
		return StyleGoal
	case g.World.IsClean(room):
		return StyleClean
	default:
		return StyleDirty
	}
}

// DirectionLabel returns the key hint for a direction in the player's nav style.
func DirectionLabel(g *state.Game, dir world.Direction) string {
	if g.NavStyle != state.NavStyleVim {
		return dir.String()
	}
	switch dir {
	case world.North:
		return "k"
	case world.South:
		return "j"
	case world.East:
		return "l"
	case world.West:
		return "h"
	}
	return dir.String()
}
