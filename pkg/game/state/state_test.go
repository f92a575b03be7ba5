package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/agent"
	gameworld "cleanhouse/pkg/game/world"
)

func newTestGame() *Game {
	w := gameworld.New([]*world.Room{
		world.NewRoom("The Foyer", 325, 250).Connect(world.North, "Master Bedroom"),
		world.NewRoom("Master Bedroom", 500, 125).Connect(world.South, "The Foyer"),
	})
	return NewGame(w, "The Foyer", agent.New("The Foyer", nil), "Master Bedroom")
}

func TestNewGame(t *testing.T) {
	g := newTestGame()

	assert.NotEmpty(t, g.SessionID)
	assert.Equal(t, 2, g.Graph.Size())
	assert.Equal(t, Continue, g.Outcome)
	assert.False(t, g.Finished())

	r, err := g.CurrentRoom()
	require.NoError(t, err)
	assert.Equal(t, "The Foyer", r.Name)
}

func TestAddMessage_KeepsLastMessages(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("m%d", i))
	}
	assert.Equal(t, []string{"m3", "m4", "m5", "m6", "m7"}, g.Messages)

	g.MaxMessages = 2
	g.AddMessage("m8")
	assert.Equal(t, []string{"m7", "m8"}, g.Messages)

	g.ClearMessages()
	assert.Empty(t, g.Messages)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "win", Win.String())
	assert.Equal(t, "lose", Lose.String())
	assert.Equal(t, "continue", Continue.String())
}

func TestFinished(t *testing.T) {
	g := newTestGame()
	g.Outcome = Lose
	assert.True(t, g.Finished())

	g = newTestGame()
	g.Quit = true
	assert.True(t, g.Finished())
}
