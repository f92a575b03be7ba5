package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanhouse/pkg/engine/input"
	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/agent"
	"cleanhouse/pkg/game/layout"
	"cleanhouse/pkg/game/state"
	gameworld "cleanhouse/pkg/game/world"
)

func TestBuildHouseMap_DefaultHouse(t *testing.T) {
	rooms, err := layout.Default().Build()
	require.NoError(t, err)

	m := BuildHouseMap(rooms)
	assert.Equal(t, 4, m.Rows)
	assert.Equal(t, 3, m.Cols)

	assert.Equal(t, Slot{Row: 0, Col: 1}, m.Slots["Bathroom"])
	assert.Equal(t, Slot{Row: 0, Col: 2}, m.Slots["Garage"])
	assert.Equal(t, Slot{Row: 2, Col: 0}, m.Slots["Backyard"])
	assert.Equal(t, Slot{Row: 3, Col: 2}, m.Slots["Bedroom"])
	assert.Equal(t, "The Foyer", m.Cells[2][1])
	assert.Equal(t, "", m.Cells[0][0])
}

func TestBuildHouseMap_SharedSpot(t *testing.T) {
	m := BuildHouseMap([]*world.Room{world.NewRoom("B", 0, 0), world.NewRoom("A", 0, 0)})
	assert.Equal(t, 1, m.Rows)
	assert.Equal(t, "A", m.Cells[0][0])
}

func TestMarkersAndStyles(t *testing.T) {
	w := gameworld.New([]*world.Room{
		world.NewRoom("Hall", 0, 0),
		world.NewRoom("Study", 1, 0),
		world.NewRoom("Goal", 2, 0),
	})
	require.NoError(t, w.MarkClean("Study"))
	g := state.NewGame(w, "Hall", agent.New("Hall", nil), "Goal")

	assert.Equal(t, "@*", Markers(g, "Hall"))
	assert.Equal(t, "", Markers(g, "Study"))

	assert.Equal(t, StyleDirty, RoomStyle(g, "Hall"))
	assert.Equal(t, StyleClean, RoomStyle(g, "Study"))
	assert.Equal(t, StyleGoal, RoomStyle(g, "Goal"))

	assert.Equal(t, "North", DirectionLabel(g, world.North))
	g.NavStyle = state.NavStyleVim
	assert.Equal(t, "h", DirectionLabel(g, world.West))
}

type recordingRenderer struct {
	notices []string
}

func (r *recordingRenderer) Init() {}
func (r *recordingRenderer) Clear() {}
func (r *recordingRenderer) RenderFrame(*state.Game) {}
func (r *recordingRenderer) GetInput() input.Intent { return input.Intent{} }
func (r *recordingRenderer) StyleText(text string, _ TextStyle) string {
	return "<" + text + ">"
}
func (r *recordingRenderer) ShowMessage(msg string) { r.notices = append(r.notices, msg) }

func TestPackageHelpers_UseCurrentRenderer(t *testing.T) {
	prev := Current
	t.Cleanup(func() { SetRenderer(prev) })

	SetRenderer(nil)
	ShowMessage("lost")
	assert.Equal(t, "plain", StyleText("plain", StyleRoom))
	assert.Equal(t, input.ActionNone, GetInput().Action)

	r := &recordingRenderer{}
	SetRenderer(r)
	ShowMessage("Welcome back, alice.")
	assert.Equal(t, []string{"Welcome back, alice."}, r.notices)
	assert.Equal(t, "<plain>", StyleText("plain", StyleRoom))
}
