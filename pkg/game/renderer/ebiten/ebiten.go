package ebiten

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "cleanhouse/pkg/engine/input"
	"cleanhouse/pkg/game/renderer"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    ScreenWidth,
		windowHeight:   ScreenHeight,
		inputChan:      make(chan engineinput.Intent, 8),
		done:           make(chan struct{}),
		loopDone:       make(chan struct{}),
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Init loads fonts and configures the window
func (e *EbitenRenderer) Init() {
	if err := e.loadFonts(); err != nil {
		log.Fatalf("Cannot load font: %v", err)
	}
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("House Cleaning Adventure")
	ebiten.SetTPS(TPS)
}

// Clear is a no-op: every Draw starts from a filled background
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window delivers a key press.
// Closing the window reads as a quit.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit, Code: "escape"}
	}
}

// StyleText returns text unchanged; colors come from the draw calls
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// ShowMessage displays a notice over the map
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.noticeMutex.Lock()
	e.notice = msg
	e.noticeMutex.Unlock()
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}

// Run opens the window and drives loop on its own goroutine, since Ebiten must own
// the main thread. It returns once the window is closed and loop has finished.
func (e *EbitenRenderer) Run(loop func()) error {
	go func() {
		defer close(e.loopDone)
		loop()
	}()

	err := ebiten.RunGame(e)
	e.doneOnce.Do(func() { close(e.done) })
	<-e.loopDone

	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// loopFinished reports whether the game loop has returned
func (e *EbitenRenderer) loopFinished() bool {
	select {
	case <-e.loopDone:
		return true
	default:
		return false
	}
}
