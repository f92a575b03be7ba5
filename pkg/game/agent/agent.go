// Package agent implements the child that wanders the house and undoes the
// player's work.
//
// The agent waits until the player has cleaned WaitThreshold rooms, then picks a
// clean room at random, walks there one room per tick along an A* route and dirties
// it. Per tick the game loop calls Tick before MaybeDirty, so the agent can dirty the
// room it has just stepped into.
package agent

import (
	"math/rand"

	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/messages"
)

// DefaultWaitThreshold is the number of player cleanings the agent waits through.
const DefaultWaitThreshold = 2

// State is the agent's decision state.
type State int

// Agent states
const (
	// Idle: still waiting for the player to clean enough rooms.
	Idle State = iota
	// Ready: allowed to act but has no route.
	Ready
	// EnRoute: walking a route towards its target.
	EnRoute
)

// String returns the state name
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Ready:
		return "Ready"
	case EnRoute:
		return "EnRoute"
	default:
		return "Unknown"
	}
}

// Rand is the randomness source used to pick targets. *rand.Rand satisfies it.
// A nil source falls back to the math/rand global.
type Rand interface {
	Intn(n int) int
}

// World is the view of the house the agent reads and mutates.
type World interface {
	CleanRooms() []string
	IsClean(name string) bool
	MarkDirty(name string) error
	Coordinates() world.Coordinates
}

// MessageSink receives player-facing notifications.
type MessageSink interface {
	AddMessage(msg string)
}

// Agent is the autonomous agent's mutable state.
type Agent struct {
	Room          string   // current room
	Path          []string // remaining steps, head first, current room excluded
	Target        string   // committed target, "" when none
	WaitCounter   int
	WaitThreshold int

	rng Rand
}

// New creates an agent in the given room with the default threshold.
func New(room string, rng Rand) *Agent {
	return &Agent{
		Room:          room,
		WaitThreshold: DefaultWaitThreshold,
		rng:           rng,
	}
}

// SetRand replaces the randomness source, e.g. after restoring from storage.
func (a *Agent) SetRand(rng Rand) {
	a.rng = rng
}

// State reports the current decision state.
func (a *Agent) State() State {
	switch {
	case !a.ShouldAct():
		return Idle
	case len(a.Path) > 0:
		return EnRoute
	default:
		return Ready
	}
}

// ShouldAct reports whether the wait threshold has been reached.
func (a *Agent) ShouldAct() bool {
	return a.WaitCounter >= a.WaitThreshold
}

// NotifyPlayerCleaned records one successful cleaning by the player.
func (a *Agent) NotifyPlayerCleaned() {
	a.WaitCounter++
}

// Tick advances the agent by at most one room.
//
// When there is no route, or the target has been reached, a new target is chosen among
// the clean rooms other than the current one. Having nothing to spoil or no route is
// normal and leaves the agent in place. An error is only returned for rooms missing from
// the graph, which means the house definition is corrupt.
func (a *Agent) Tick(w World, g *world.Graph) error {
	if !a.ShouldAct() {
		return nil
	}

	if len(a.Path) == 0 || a.Room == a.Target {
		a.selectTarget(w)
		a.Path = nil

		if a.Target != "" {
			path, err := world.FindPath(g, w.Coordinates(), a.Room, a.Target)
			if err != nil {
				return err
			}
			if len(path) > 1 {
				a.Path = path[1:]
			}
		}
	}

	if len(a.Path) > 0 {
		a.Room = a.Path[0]
		a.Path = a.Path[1:]
	}
	return nil
}

// selectTarget picks a clean room other than the current one, uniformly at random.
func (a *Agent) selectTarget(w World) {
	var candidates []string
	for _, name := range w.CleanRooms() {
		if name != a.Room {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		a.Target = ""
		return
	}
	if a.rng == nil {
		a.Target = candidates[rand.Intn(len(candidates))]
		return
	}
	a.Target = candidates[a.rng.Intn(len(candidates))]
}

// MaybeDirty dirties the current room if it is clean, then resets the wait counter.
// Visiting an already dirty room still uses up the agent's action.
func (a *Agent) MaybeDirty(w World, sink MessageSink) error {
	if !a.ShouldAct() {
		return nil
	}

	if w.IsClean(a.Room) {
		if err := w.MarkDirty(a.Room); err != nil {
			return err
		}
		sink.AddMessage(messages.Getf("AGENT_MESSED_UP", a.Room))
	}

	a.WaitCounter = 0
	return nil
}
