package gameplay

import (
	engineinput "cleanhouse/pkg/engine/input"
	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/messages"
	"cleanhouse/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	updateNavStyle(g, intent)

	switch intent.Action {
	case engineinput.ActionNone:
		// GUI frames without a key press arrive with no code
		if intent.Code != "" {
			logMessage(g, "%s", messages.Get("UNKNOWN_COMMAND"))
		}
		return

	case engineinput.ActionHint:
		ShowHint(g)
		return

	case engineinput.ActionQuit:
		logMessage(g, "%s", messages.Get("GOODBYE"))
		g.Quit = true
		return

	case engineinput.ActionMoveEast:
		Move(g, world.East)
		return

	case engineinput.ActionMoveWest:
		Move(g, world.West)
		return

	case engineinput.ActionMoveNorth:
		Move(g, world.North)
		return

	case engineinput.ActionMoveSouth:
		Move(g, world.South)
		return

	case engineinput.ActionClean:
		Clean(g)
		return
	}

	logMessage(g, "%s", messages.Get("UNKNOWN_COMMAND"))
}

// updateNavStyle remembers whether the player steers with Vim keys so exits are
// labelled with the keys they actually press.
func updateNavStyle(g *state.Game, intent engineinput.Intent) {
	switch intent.Code {
	case "h", "j", "k", "l":
		g.NavStyle = state.NavStyleVim
	case "":
	default:
		switch intent.Action {
		case engineinput.ActionMoveNorth, engineinput.ActionMoveSouth,
			engineinput.ActionMoveEast, engineinput.ActionMoveWest:
			g.NavStyle = state.NavStyleNSEW
		}
	}
}
