// Package config loads game settings from YAML. Command-line flags override it in main.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"cleanhouse/pkg/engine/input"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config holds every setting of a game session.
type Config struct {
	Renderer   string `yaml:"renderer"`
	Database   string `yaml:"database"`
	Layout     string `yaml:"layout"`
	JournalDir string `yaml:"journal_dir"`
	LogFile    string `yaml:"log_file"`
	Seed       int64  `yaml:"seed"`

	Agent    AgentConfig    `yaml:"agent"`
	Messages MessagesConfig `yaml:"messages"`
	Win      WinConfig      `yaml:"win"`

	// Bindings rebinds an action (move_north, move_south, move_west, move_east, clean,
	// hint, quit) to a single key. Arrows, space and escape always keep working.
	Bindings map[string]string `yaml:"bindings,omitempty"`
}

// AgentConfig tunes the child.
type AgentConfig struct {
	WaitThreshold int `yaml:"wait_threshold"`
}

// MessagesConfig sizes the message pane.
type MessagesConfig struct {
	Keep int `yaml:"keep"`
}

// WinConfig names where the player starts and the room that ends the game.
type WinConfig struct {
	GoalRoom  string `yaml:"goal_room"`
	StartRoom string `yaml:"start_room"`
}

// Default returns the settings of the stock game.
func Default() Config {
	return Config{
		Renderer: RendererTUI,
		Database: "game.db",
		Agent:    AgentConfig{WaitThreshold: 2},
		Messages: MessagesConfig{Keep: 5},
		Win: WinConfig{
			GoalRoom:  "Master Bedroom",
			StartRoom: "The Foyer",
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Normalize trims strings, lowercases the renderer and fills zero values with defaults.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.Renderer = strings.ToLower(strings.TrimSpace(c.Renderer))
	if c.Renderer == "" {
		c.Renderer = RendererTUI
	}
	c.Database = strings.TrimSpace(c.Database)
	c.Layout = strings.TrimSpace(c.Layout)
	c.JournalDir = strings.TrimSpace(c.JournalDir)
	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.Agent.WaitThreshold == 0 {
		c.Agent.WaitThreshold = 2
	}
	if c.Messages.Keep == 0 {
		c.Messages.Keep = 5
	}
	c.Win.GoalRoom = strings.TrimSpace(c.Win.GoalRoom)
	c.Win.StartRoom = strings.TrimSpace(c.Win.StartRoom)
	if len(c.Bindings) > 0 {
		b := make(map[string]string, len(c.Bindings))
		for name, code := range c.Bindings {
			b[strings.ToLower(strings.TrimSpace(name))] = strings.ToLower(strings.TrimSpace(code))
		}
		c.Bindings = b
	}
}

// KeyBindings returns the configured bindings keyed by action.
// Call it on a validated config; unknown names are skipped.
func (c Config) KeyBindings() map[input.Action]string {
	out := make(map[input.Action]string, len(c.Bindings))
	for name, code := range c.Bindings {
		if act, ok := input.ParseAction(name); ok {
			out[act] = code
		}
	}
	return out
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("renderer must be %q or %q, got %q", RendererTUI, RendererEbiten, c.Renderer)
	}
	if c.Agent.WaitThreshold < 1 {
		return fmt.Errorf("agent.wait_threshold must be >= 1")
	}
	if c.Messages.Keep < 1 {
		return fmt.Errorf("messages.keep must be >= 1")
	}
	if c.Win.GoalRoom == "" {
		return fmt.Errorf("win.goal_room must not be empty")
	}
	if c.Win.StartRoom == "" {
		return fmt.Errorf("win.start_room must not be empty")
	}
	used := make(map[string]string, len(c.Bindings))
	for name, code := range c.Bindings {
		if _, ok := input.ParseAction(name); !ok {
			return fmt.Errorf("bindings: unknown action %q", name)
		}
		if code == "" || input.IsReserved(code) {
			return fmt.Errorf("bindings.%s: cannot bind %q", name, code)
		}
		if other, dup := used[code]; dup {
			return fmt.Errorf("bindings: %q bound to both %s and %s", code, other, name)
		}
		used[code] = name
	}
	return nil
}
