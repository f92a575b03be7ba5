// Package ebiten provides an Ebiten-based 2D graphical renderer for the house.
package ebiten

import "image/color"

// Screen and room geometry, in logical pixels
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	RoomWidth    = 150
	RoomHeight   = 100
	TPS          = 60

	textBoxTop   = 480
	textBoxLines = 5
	lineHeight   = 20
)

// Key repeat timing (milliseconds)
const (
	keyRepeatInitialDelay = 300
	keyRepeatInterval     = 150
)

// Color palette
var (
	colorBackground  = color.RGBA{26, 26, 46, 255}
	colorRoomClean   = color.RGBA{0, 170, 0, 255}
	colorRoomDirty   = color.RGBA{190, 40, 40, 255}
	colorRoomGoal    = color.RGBA{200, 160, 40, 255}
	colorDoor        = color.RGBA{120, 130, 180, 255}
	colorPlayer      = color.RGBA{255, 255, 255, 255}
	colorAgent       = color.RGBA{40, 90, 255, 255}
	colorText        = color.RGBA{240, 240, 255, 255}
	colorSubtle      = color.RGBA{160, 170, 210, 255}
	colorPanel       = color.RGBA{10, 10, 20, 230}
	colorPanelBorder = color.RGBA{120, 130, 180, 255}
)
