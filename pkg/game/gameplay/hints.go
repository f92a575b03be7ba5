package gameplay

import (
	"strings"

	"cleanhouse/pkg/game/messages"
	"cleanhouse/pkg/game/state"
)

// ShowHint tells the player which rooms still need work.
func ShowHint(g *state.Game) {
	var dirty []string
	for _, name := range g.World.Names() {
		if name == g.GoalRoom {
			continue
		}
		if !g.World.IsClean(name) {
			dirty = append(dirty, name)
		}
	}

	var hint string
	if len(dirty) == 0 {
		hint = messages.Getf("HINT_ALL_CLEAN", g.GoalRoom)
	} else {
		hint = messages.Getf("HINT_DIRTY", strings.Join(dirty, ", "))
	}
	g.AddHint(hint)
	logMessage(g, "%s", hint)
}
