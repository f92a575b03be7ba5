package tui

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"cleanhouse/pkg/engine/input"
	"cleanhouse/pkg/engine/terminal"
	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/messages"
	"cleanhouse/pkg/game/renderer"
	"cleanhouse/pkg/game/state"
)

// Map cell sizing
const (
	CellWidth = 18
	CellGap   = 2
)

// dynamicGet is used for runtime translation key lookups from markup.
var dynamicGet = messages.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorRoom        color.Style
	colorClean       color.Style
	colorDirty       color.Style
	colorGoal        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorAgent       color.Style

	regexpStringFunctions *regexp.Regexp

	houseMap renderer.HouseMap
	mapFor   string // room set the cached house map was built for

	notice string // shown above the next frame, then dropped
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgBlue}
	t.colorClean = color.Style{color.FgGreen}
	t.colorDirty = color.Style{color.FgRed}
	t.colorGoal = color.Style{color.FgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgWhite, color.BgBlack, color.OpBold}
	t.colorAgent = color.Style{color.FgCyan, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:?/]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput gets user input from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	return input.Resolve(input.DeviceTerminal, input.GetInputWithArrows())
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleClean:
		return t.colorClean.Sprint(text)
	case renderer.StyleDirty:
		return t.colorDirty.Sprint(text)
	case renderer.StyleGoal:
		return t.colorGoal.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleAgent:
		return t.colorAgent.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(operand)
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		case "SUBTLE":
			val = t.colorSubtle.Sprint(operand)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowMessage queues a notice for the top of the next frame.
// Frames start by clearing the screen, so printing it right away would lose it.
func (t *TUIRenderer) ShowMessage(msg string) {
	t.notice = msg
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	fmt.Print(t.Frame(g))
	t.notice = ""
}

// Frame builds the text of a frame without printing it.
func (t *TUIRenderer) Frame(g *state.Game) string {
	var b strings.Builder

	if t.notice != "" {
		b.WriteString(t.colorActionShort.Sprint(t.notice) + "\n\n")
	}
	fmt.Fprintf(&b, "%s %s\n\n", dynamicGet("IN_ROOM"), t.colorRoom.Sprint(g.PlayerRoom))

	t.writeMap(&b, g)
	t.writeExits(&b, g)
	t.writeStatusBar(&b, g)
	t.writePossibleActions(&b)
	t.writeMessagesPane(&b, g)

	if !g.Finished() {
		b.WriteString("\n> ")
	}
	return b.String()
}

// renderCell returns the padded, colored label of one map slot
func (t *TUIRenderer) renderCell(g *state.Game, name string) string {
	if name == "" {
		return strings.Repeat(" ", CellWidth)
	}

	markers := renderer.Markers(g, name)
	label := name
	if room := CellWidth - 2 - len(markers); len(label) > room {
		label = label[:room]
	}
	plain := fmt.Sprintf("[%s%s]", label, markers)
	pad := strings.Repeat(" ", max(0, CellWidth-len(plain)))

	styled := "[" + t.StyleText(label, renderer.RoomStyle(g, name))
	for _, m := range markers {
		if string(m) == renderer.PlayerIcon {
			styled += t.colorPlayer.Sprint(string(m))
		} else {
			styled += t.colorAgent.Sprint(string(m))
		}
	}
	return styled + "]" + pad
}

// writeMap renders the house as a grid of rooms
func (t *TUIRenderer) writeMap(b *strings.Builder, g *state.Game) {
	key := strings.Join(g.World.Names(), "\x00")
	if key != t.mapFor {
		t.houseMap = renderer.BuildHouseMap(g.World.Rooms())
		t.mapFor = key
	}

	width := t.houseMap.Cols*(CellWidth+CellGap) - CellGap
	indent := strings.Repeat(" ", max(0, (terminal.GetWidth()-width)/2))

	for _, row := range t.houseMap.Cells {
		b.WriteString(indent)
		for i, name := range row {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", CellGap))
			}
			b.WriteString(t.renderCell(g, name))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// writeExits lists where the player can go from here
func (t *TUIRenderer) writeExits(b *strings.Builder, g *state.Game) {
	room, err := g.CurrentRoom()
	if err != nil {
		return
	}
	for _, dir := range world.AllDirections() {
		next := room.GetNeighbor(dir)
		if next == "" {
			fmt.Fprintf(b, "  %s\n", t.colorSubtle.Sprintf("%s: # Wall #", dir))
			continue
		}
		fmt.Fprintf(b, "  %s\n", t.FormatText("ACTION{%s}: (%s)", renderer.DirectionLabel(g, dir), t.StyleText(next, renderer.RoomStyle(g, next))))
	}
}

// writePossibleActions prints the available actions with their current keys
func (t *TUIRenderer) writePossibleActions(b *strings.Builder) {
	keys := input.GetBindingsByAction()
	for _, a := range []struct {
		action input.Action
		label  string
	}{
		{input.ActionClean, "Clean this room"},
		{input.ActionHint, "Show hint"},
		{input.ActionQuit, "Leave"},
	} {
		fmt.Fprintf(b, "- %s: \t%s\n", t.colorAction.Sprint(keyList(keys[a.action])), a.label)
	}
}

// keyList joins binding codes for display, skipping the bare " " alias of space
func keyList(codes []string) string {
	shown := make([]string, 0, len(codes))
	for _, c := range codes {
		if strings.TrimSpace(c) != "" {
			shown = append(shown, c)
		}
	}
	return strings.Join(shown, "/")
}

// writeStatusBar renders progress and what the child is up to
func (t *TUIRenderer) writeStatusBar(b *strings.Builder, g *state.Game) {
	clean, total := g.World.CountClean(mapset.Of(g.GoalRoom))
	childState := "?"
	if g.Agent != nil {
		childState = g.Agent.State().String()
	}
	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(messages.Getf("STATUS", g.PlayerRoom, clean, total, childState)))
	b.WriteString("\n")
}

// writeMessagesPane renders the messages log pane
func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, g *state.Game) {
	width := terminal.GetWidth()

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(0, width-sideLen-labelLen))

	b.WriteString("\n")
	b.WriteString(t.colorSubtle.Sprint(leftDashes+label+rightDashes) + "\n")

	if len(g.Messages) == 0 {
		b.WriteString(t.colorSubtle.Sprint("  (no messages)") + "\n")
	} else {
		for _, msg := range g.Messages {
			fmt.Fprintf(b, "  %s\n", msg)
		}
	}

	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", width)) + "\n")
}
