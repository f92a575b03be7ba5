package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "cleanhouse/pkg/engine/input"
)

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	// Once the game is over, the next key closes the window
	if e.loopFinished() {
		if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			return ebiten.Termination
		}
		return nil
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
			e.ShowMessage("")
		default:
			// Channel full, drop input
		}
	}
	return nil
}

// keyBinding maps a held key to the raw code the tiered input layer understands.
// WASD is translated to arrows here because the text bindings use w/s/e as compass letters.
type keyBinding struct {
	key  ebiten.Key
	code string
}

var movementKeys = []keyBinding{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "arrow_up"},
	{ebiten.KeyS, "arrow_down"},
	{ebiten.KeyA, "arrow_left"},
	{ebiten.KeyD, "arrow_right"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
}

// checkInput checks keyboard state and returns the corresponding Intent
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, kb := range movementKeys {
		key := kb.key
		if e.shouldRepeatKey(func() bool { return ebiten.IsKeyPressed(key) }, "key_"+key.String()) {
			return engineinput.Resolve(engineinput.DeviceKeyboard, kb.code)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return engineinput.Resolve(engineinput.DeviceKeyboard, "space")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return engineinput.Resolve(engineinput.DeviceKeyboard, "?")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return engineinput.Resolve(engineinput.DeviceKeyboard, "escape")
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(isPressed func() bool, code string) bool {
	now := time.Now().UnixMilli()

	e.keyRepeatStateMutex.Lock()
	defer e.keyRepeatStateMutex.Unlock()

	state, exists := e.keyRepeatState[code]
	if !isPressed() {
		if exists {
			delete(e.keyRepeatState, code)
		}
		return false
	}

	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}
