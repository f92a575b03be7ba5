package gameplay

import (
	"cleanhouse/pkg/game/messages"
	"cleanhouse/pkg/game/state"
)

// Clean cleans the player's current room.
// Only a room that was dirty counts towards waking the agent.
func Clean(g *state.Game) bool {
	room := g.PlayerRoom
	if g.World.IsClean(room) {
		logMessage(g, "%s", messages.Getf("ALREADY_CLEAN", room))
		return false
	}

	if err := g.World.MarkClean(room); err != nil {
		return false
	}
	g.RoomsCleaned++
	g.Agent.NotifyPlayerCleaned()
	logMessage(g, "%s", messages.Getf("CLEANED", room))
	return true
}
