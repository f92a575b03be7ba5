package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes
const (
	roomFontSize = 14
	uiFontSize   = 13
)

// loadFonts prepares the Go Regular face source and the two faces used for drawing
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	e.fontSource = src
	e.roomFace = &text.GoTextFace{Source: src, Size: roomFontSize}
	e.uiFace = &text.GoTextFace{Source: src, Size: uiFontSize}
	return nil
}
