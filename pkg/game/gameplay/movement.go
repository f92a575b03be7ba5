// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"fmt"

	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/messages"
	"cleanhouse/pkg/game/state"
)

// Move walks the player through the current room's exit in dir.
// It returns false and explains why when there is no such exit.
func Move(g *state.Game, dir world.Direction) bool {
	current, err := g.CurrentRoom()
	if err != nil {
		return false
	}

	next := current.GetNeighbor(dir)
	if next == "" || !g.World.Has(next) {
		logMessage(g, "%s", messages.Get("NO_ESCAPE"))
		return false
	}

	g.PlayerRoom = next
	logMessage(g, "%s", messages.Getf("MOVED", current.Name, next))
	if next == g.GoalRoom {
		logMessage(g, "%s", messages.Getf("ENTERED_GOAL", next))
	}
	return true
}

// logMessage adds a formatted message to the game log
func logMessage(g *state.Game, format string, args ...any) {
	g.AddMessage(fmt.Sprintf(format, args...))
}
