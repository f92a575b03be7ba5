package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionClean // Clean the room the player is standing in

	// Meta / UI
	ActionHint
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
	Code   string // normalised code that produced it, kept for feedback on unknown input
}

// IsBlank reports whether the input carried nothing at all, such as an empty line.
func (i Intent) IsBlank() bool {
	return i.Action == ActionNone && i.Code == ""
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Ebiten's inpututil and terminal line reads already deliver one event per
// press, so this layer only normalises the code.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(strings.TrimSpace(raw.Code)),
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, NSEW, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,

	// Cleaning
	"space": ActionClean,
	" ":     ActionClean,
	"clean": ActionClean,
	"c":     ActionClean,

	// Help / hint
	"?":    ActionHint,
	"hint": ActionHint,

	// Quit
	"quit":   ActionQuit,
	"exit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// reserved codes cannot be rebound away from their action.
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"space":       true,
	"escape":      true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Code: ev.Code}
	}
	return Intent{Action: ActionNone, Code: ev.Code}
}

// Resolve runs a raw code through every layer.
func Resolve(dev Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{Device: dev, Code: code, Timestamp: time.Now()}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionClean:
		return "Clean"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// actionNames are the names actions go by in config files.
var actionNames = map[string]Action{
	"move_north": ActionMoveNorth,
	"move_south": ActionMoveSouth,
	"move_west":  ActionMoveWest,
	"move_east":  ActionMoveEast,
	"clean":      ActionClean,
	"hint":       ActionHint,
	"quit":       ActionQuit,
}

// ParseAction looks up an action by its config name, e.g. "move_north" or "clean".
func ParseAction(name string) (Action, bool) {
	act, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	return act, ok
}

// IsReserved reports whether code is fixed to its action and cannot be rebound.
func IsReserved(code string) bool {
	return reserved[code]
}

// ApplyBindings rebinds each action to the single given code, in action order.
func ApplyBindings(codes map[Action]string) {
	acts := make([]Action, 0, len(codes))
	for act := range codes {
		acts = append(acts, act)
	}
	sort.Slice(acts, func(i, j int) bool { return acts[i] < acts[j] })
	for _, act := range acts {
		SetSingleBinding(act, strings.ToLower(strings.TrimSpace(codes[act])))
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
