// Package state holds the per-session game state.
package state

import (
	"time"

	"github.com/google/uuid"

	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/agent"
	gameworld "cleanhouse/pkg/game/world"
)

// NavStyle represents the navigation key style
type NavStyle int

// Navigation styles
const (
	NavStyleNSEW NavStyle = iota
	NavStyleVim
)

// Outcome is the result of the win/lose evaluation.
type Outcome int

// Outcomes
const (
	Continue Outcome = iota
	Win
	Lose
)

// String returns the outcome as stored in the results table
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "continue"
	}
}

// DefaultMaxMessages is how many log lines are kept when none is configured.
const DefaultMaxMessages = 5

// Game is a single play session. It owns the house, the player position and the agent.
type Game struct {
	SessionID string
	Username  string

	World *gameworld.State
	Graph *world.Graph

	PlayerRoom string
	Agent      *agent.Agent

	// GoalRoom is where the player reports back; it never needs cleaning.
	GoalRoom string

	Messages    []string
	MaxMessages int

	Hints []string

	NavStyle NavStyle

	RoomsCleaned int
	Ticks        int
	StartedAt    time.Time

	Outcome Outcome
	Quit    bool
}

// NewGame creates a new session over the given house
func NewGame(w *gameworld.State, playerRoom string, a *agent.Agent, goalRoom string) *Game {
	return &Game{
		SessionID:   uuid.NewString(),
		World:       w,
		Graph:       w.Graph(),
		PlayerRoom:  playerRoom,
		Agent:       a,
		GoalRoom:    goalRoom,
		Messages:    make([]string, 0),
		MaxMessages: DefaultMaxMessages,
		StartedAt:   time.Now(),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	max := g.MaxMessages
	if max <= 0 {
		max = DefaultMaxMessages
	}
	if len(g.Messages) > max {
		g.Messages = g.Messages[len(g.Messages)-max:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddHint adds a hint to the game
func (g *Game) AddHint(hint string) {
	g.Hints = append(g.Hints, hint)
}

// CurrentRoom returns the room the player is in.
func (g *Game) CurrentRoom() (*world.Room, error) {
	return g.World.Room(g.PlayerRoom)
}

// Finished reports whether the session has been decided or abandoned.
func (g *Game) Finished() bool {
	return g.Quit || g.Outcome != Continue
}

// Elapsed returns the play time so far.
func (g *Game) Elapsed() time.Duration {
	return time.Since(g.StartedAt)
}
