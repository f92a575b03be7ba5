package gameplay

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	engineinput "cleanhouse/pkg/engine/input"
	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/agent"
	"cleanhouse/pkg/game/config"
	"cleanhouse/pkg/game/messages"
	"cleanhouse/pkg/game/state"
	gameworld "cleanhouse/pkg/game/world"
)

// NewSession builds a fresh game over rooms: the player starts in the configured
// start room and the agent in a random room. A nil rng is seeded from the clock.
// Every room must be reachable from the start room.
func NewSession(cfg config.Config, rooms []*world.Room, rng *rand.Rand) (*state.Game, error) {
	w := gameworld.New(rooms)
	if err := w.Graph().Validate(); err != nil {
		return nil, err
	}
	for _, name := range []string{cfg.Win.StartRoom, cfg.Win.GoalRoom} {
		if !w.Has(name) {
			return nil, fmt.Errorf("%w: %q", world.ErrInvalidRoom, name)
		}
	}
	reach, err := w.Graph().Reachable(cfg.Win.StartRoom)
	if err != nil {
		return nil, err
	}
	for _, name := range w.Names() {
		if !reach.Has(name) {
			return nil, fmt.Errorf("%w: %q from %q", world.ErrUnreachable, name, cfg.Win.StartRoom)
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	names := w.Names()
	a := agent.New(names[rng.Intn(len(names))], rng)
	a.WaitThreshold = cfg.Agent.WaitThreshold

	g := state.NewGame(w, cfg.Win.StartRoom, a, cfg.Win.GoalRoom)
	g.MaxMessages = cfg.Messages.Keep

	ShowObjectives(g)
	return g, nil
}

// Restore places the player and the agent from a saved game.
func Restore(g *state.Game, playerRoom string, a *agent.Agent) error {
	for _, name := range []string{playerRoom, a.Room} {
		if !g.World.Has(name) {
			return fmt.Errorf("%w: %q", world.ErrInvalidRoom, name)
		}
	}
	if g.Agent != nil && a.WaitThreshold == 0 {
		a.WaitThreshold = g.Agent.WaitThreshold
	}
	g.PlayerRoom = playerRoom
	g.Agent = a
	return nil
}

// ShowObjectives displays the welcome text and what needs to be done
func ShowObjectives(g *state.Game) {
	g.ClearMessages()
	_, total := g.World.CountClean(mapset.Of(g.GoalRoom))
	logMessage(g, "%s", messages.Get("WELCOME"))
	logMessage(g, "%s", messages.Getf("OBJECTIVE", total, g.GoalRoom))
	logMessage(g, "%s", messages.Get("CONTROLS"))
}

// Step runs one game tick: the player's action, one agent step, the agent's dirty
// check, then the win/lose check. A finished game is left untouched, and so is a
// blank line: it is not an action and does not let the agent move.
func Step(g *state.Game, intent engineinput.Intent) (state.Outcome, error) {
	if g.Finished() || intent.IsBlank() {
		return g.Outcome, nil
	}

	ProcessIntent(g, intent)
	if g.Quit {
		return g.Outcome, nil
	}
	g.Ticks++

	if err := g.Agent.Tick(g.World, g.Graph); err != nil {
		return g.Outcome, err
	}
	if err := g.Agent.MaybeDirty(g.World, g); err != nil {
		return g.Outcome, err
	}

	return Evaluate(g), nil
}

// Evaluate decides the game once the player reports to the goal room: every other
// room clean wins, anything else loses.
func Evaluate(g *state.Game) state.Outcome {
	if g.Outcome != state.Continue || g.PlayerRoom != g.GoalRoom {
		return g.Outcome
	}

	if g.World.AllClean(mapset.Of(g.GoalRoom)) {
		g.Outcome = state.Win
		logMessage(g, "%s", messages.Getf("WIN_REACHED", g.GoalRoom))
		logMessage(g, "%s", messages.Get("WIN_WIFE"))
	} else {
		g.Outcome = state.Lose
		logMessage(g, "%s", messages.Get("LOSE_WIFE"))
	}
	logMessage(g, "%s", messages.Get("GAME_OVER"))
	return g.Outcome
}
