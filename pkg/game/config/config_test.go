package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanhouse/pkg/engine/input"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, `
renderer: Ebiten
database: ""
agent:
  wait_threshold: 3
win:
  goal_room: Garage
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, RendererEbiten, cfg.Renderer)
	assert.Empty(t, cfg.Database)
	assert.Equal(t, 3, cfg.Agent.WaitThreshold)
	assert.Equal(t, 5, cfg.Messages.Keep)
	assert.Equal(t, "Garage", cfg.Win.GoalRoom)
	assert.Equal(t, "The Foyer", cfg.Win.StartRoom)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "renderer: [tui"},
		{"unknown renderer", "renderer: sdl"},
		{"negative threshold", "agent:\n  wait_threshold: -1"},
		{"negative keep", "messages:\n  keep: -2"},
		{"unknown action", "bindings:\n  dance: x"},
		{"reserved key", "bindings:\n  hint: space"},
		{"key bound twice", "bindings:\n  hint: x\n  clean: x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_EmptyRooms(t *testing.T) {
	cfg := Default()
	cfg.Win.GoalRoom = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Win.StartRoom = ""
	assert.Error(t, cfg.Validate())
}

func TestLoad_Bindings(t *testing.T) {
	path := writeFile(t, `
bindings:
  Clean: " X "
  hint: h
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"clean": "x", "hint": "h"}, cfg.Bindings)
	assert.Equal(t, map[input.Action]string{input.ActionClean: "x", input.ActionHint: "h"}, cfg.KeyBindings())
}
