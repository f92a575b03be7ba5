package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_FormatsCatalogEntry(t *testing.T) {
	assert.Equal(t, "Oh no! The child messed up the Kitchen again!", Getf("AGENT_MESSED_UP", "Kitchen"))
	assert.Equal(t, "You moved from The Foyer to the Kitchen.", Getf("MOVED", "The Foyer", "Kitchen"))
	assert.Equal(t, "Game over.", Get("GAME_OVER"))
}

func TestGet_UnknownKeyPassesThrough(t *testing.T) {
	assert.Equal(t, "NOT_A_KEY", Get("NOT_A_KEY"))
}

func TestGet_Leaderboard(t *testing.T) {
	assert.Equal(t, "1. alice (win): 7 rooms cleaned in 1m2s", Getf("LEADERBOARD_ROW", 1, "alice", "win", 7, "1m2s"))
}
