// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"cleanhouse/pkg/engine/world"

	"cleanhouse/pkg/game/renderer"
	"cleanhouse/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// roomSymbol returns the single-character symbol for a room slot (no player/agent overlay).
func roomSymbol(g *state.Game, name string) rune {
	switch {
	case name == "":
		return '#'
	case name == g.GoalRoom:
		return 'G'
	case g.World.IsClean(name):
		return 'C'
	default:
		return 'D'
	}
}

func writeMapGrid(w io.Writer, g *state.Game, m renderer.HouseMap) {
	agentRoom := ""
	if g.Agent != nil {
		agentRoom = g.Agent.Room
	}
	for _, row := range m.Cells {
		for _, name := range row {
			switch {
			case name != "" && name == g.PlayerRoom:
				fmt.Fprint(w, "@")
			case name != "" && name == agentRoom:
				fmt.Fprint(w, "*")
			default:
				fmt.Fprintf(w, "%c", roomSymbol(g, name))
			}
		}
		fmt.Fprintln(w)
	}
}

// WriteHouse writes a debug dump of the house: metadata, a symbol map, and every room and the child with state.
func WriteHouse(w io.Writer, g *state.Game) error {
	if g == nil || g.World == nil {
		return fmt.Errorf("no house")
	}
	rooms := g.World.Rooms()
	m := renderer.BuildHouseMap(rooms)

	fmt.Fprintln(w, "=== HOUSE DUMP DEBUG (layout, cleanliness, child) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", g.SessionID)
	fmt.Fprintf(w, "user: %s\n", g.Username)
	fmt.Fprintf(w, "ticks: %d\n", g.Ticks)
	fmt.Fprintf(w, "rooms_cleaned: %d\n", g.RoomsCleaned)
	fmt.Fprintf(w, "outcome: %s\n", g.Outcome)
	fmt.Fprintf(w, "grid_rows: %d\n", m.Rows)
	fmt.Fprintf(w, "grid_cols: %d\n", m.Cols)
	fmt.Fprintf(w, "player_room: %q\n", g.PlayerRoom)
	fmt.Fprintf(w, "goal_room: %q\n", g.GoalRoom)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend (room symbols) ---")
	fmt.Fprintln(w, "# = no room  C = clean  D = dirty  G = goal  @ = player  * = child")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, g, m)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	for _, r := range rooms {
		slot := m.Slots[r.Name]
		fmt.Fprintf(w, "  name: %q x: %d y: %d row: %d col: %d clean: %v last_cleaned: %s neighbors: %q\n",
			r.Name, r.X, r.Y, slot.Row, slot.Col, r.Clean, formatTime(r), r.NeighborNames())
	}
	fmt.Fprintln(w, "")

	fmt.Fprintf(w, "--- Hints shown (%d) ---\n", len(g.Hints))
	for i, h := range g.Hints {
		fmt.Fprintf(w, "  %d: %s\n", i+1, h)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Child ---")
	if a := g.Agent; a != nil {
		fmt.Fprintf(w, "  room: %q state: %s target: %q path: %q wait: %d/%d\n",
			a.Room, a.State(), a.Target, a.Path, a.WaitCounter, a.WaitThreshold)
	} else {
		fmt.Fprintln(w, "  none")
	}
	return nil
}

func formatTime(r *world.Room) string {
	if r.LastCleaned.IsZero() {
		return "never"
	}
	return r.LastCleaned.Format(time.RFC3339)
}

// DumpHouseToFile writes the house dump to map.txt in dir and returns its absolute path.
func DumpHouseToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteHouse(f, g); err != nil {
		return "", err
	}
	return absPath, nil
}
