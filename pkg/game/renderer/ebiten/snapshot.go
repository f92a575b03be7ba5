package ebiten

import (
	"github.com/zyedidia/generic/mapset"

	"cleanhouse/pkg/game/messages"
	"cleanhouse/pkg/game/state"
)

// RenderFrame captures a snapshot of g for the next Draw call
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	snap := buildSnapshot(g)

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

func buildSnapshot(g *state.Game) renderSnapshot {
	if g == nil || g.World == nil {
		return renderSnapshot{}
	}

	snap := renderSnapshot{
		valid:      true,
		playerRoom: g.PlayerRoom,
		finished:   g.Finished(),
	}
	if g.Agent != nil {
		snap.agentRoom = g.Agent.Room
	}

	for _, r := range g.World.Rooms() {
		snap.rooms = append(snap.rooms, roomSnapshot{
			name:  r.Name,
			x:     r.X,
			y:     r.Y,
			clean: r.Clean,
			goal:  r.Name == g.GoalRoom,
			doors: r.NeighborNames(),
		})
	}

	msgs := g.Messages
	if len(msgs) > textBoxLines {
		msgs = msgs[len(msgs)-textBoxLines:]
	}
	snap.messages = append([]string(nil), msgs...)

	clean, total := g.World.CountClean(mapset.Of(g.GoalRoom))
	agentState := "?"
	if g.Agent != nil {
		agentState = g.Agent.State().String()
	}
	snap.status = messages.Getf("STATUS", g.PlayerRoom, clean, total, agentState)
	return snap
}
