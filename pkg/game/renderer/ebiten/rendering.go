package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	e.snapshotMutex.RUnlock()

	if !snap.valid || e.roomFace == nil {
		return
	}

	e.drawDoors(screen, &snap)
	for i := range snap.rooms {
		e.drawRoom(screen, &snap, &snap.rooms[i])
	}
	e.drawTextBox(screen, &snap)

	e.noticeMutex.RLock()
	notice := e.notice
	e.noticeMutex.RUnlock()
	if snap.finished {
		notice = "Press any key to close the window"
	}
	if notice != "" {
		e.drawCentered(screen, notice, float64(textBoxTop)-lineHeight, colorText)
	}
}

// drawDoors connects room centers so the layout reads as a house
func (e *EbitenRenderer) drawDoors(screen *ebiten.Image, snap *renderSnapshot) {
	centers := make(map[string][2]float32, len(snap.rooms))
	for _, r := range snap.rooms {
		centers[r.name] = [2]float32{float32(r.x) + RoomWidth/2, float32(r.y) + RoomHeight/2}
	}
	for _, r := range snap.rooms {
		from := centers[r.name]
		for _, name := range r.doors {
			to, ok := centers[name]
			if !ok {
				continue
			}
			vector.StrokeLine(screen, from[0], from[1], to[0], to[1], 3, colorDoor, false)
		}
	}
}

// drawRoom draws one room: colored by state, outlined for the player, dotted for the child
func (e *EbitenRenderer) drawRoom(screen *ebiten.Image, snap *renderSnapshot, r *roomSnapshot) {
	x, y := float32(r.x), float32(r.y)

	fill := colorRoomDirty
	switch {
	case r.goal:
		fill = colorRoomGoal
	case r.clean:
		fill = colorRoomClean
	}
	vector.DrawFilledRect(screen, x+2, y+2, RoomWidth-4, RoomHeight-4, fill, false)

	if r.name == snap.playerRoom {
		vector.StrokeRect(screen, x+2, y+2, RoomWidth-4, RoomHeight-4, 4, colorPlayer, false)
	}
	if r.name == snap.agentRoom {
		vector.DrawFilledCircle(screen, x+RoomWidth/2, y+RoomHeight-22, 8, colorAgent, true)
	}

	w, _ := text.Measure(r.name, e.roomFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x)+(RoomWidth-w)/2, float64(y)+12)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, r.name, e.roomFace, op)
}

// drawTextBox renders the status line and the last messages at the bottom of the window
func (e *EbitenRenderer) drawTextBox(screen *ebiten.Image, snap *renderSnapshot) {
	top := float32(textBoxTop)
	vector.DrawFilledRect(screen, 0, top, ScreenWidth, ScreenHeight-top, colorPanel, false)
	vector.StrokeRect(screen, 1, top, ScreenWidth-2, ScreenHeight-top-1, 1, colorPanelBorder, false)

	e.drawLine(screen, snap.status, 10, float64(top)+4, colorSubtle)
	for i, msg := range snap.messages {
		e.drawLine(screen, msg, 10, float64(top)+4+float64(i+1)*lineHeight, colorText)
	}
}

func (e *EbitenRenderer) drawLine(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, e.uiFace, op)
}

func (e *EbitenRenderer) drawCentered(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w, _ := text.Measure(s, e.uiFace, 0)
	e.drawLine(screen, s, (ScreenWidth-w)/2, y, clr)
}
