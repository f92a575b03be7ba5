package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "cleanhouse/pkg/engine/input"
)

// roomSnapshot is what Draw needs to know about one room.
type roomSnapshot struct {
	name  string
	x, y  int
	clean bool
	goal  bool
	doors []string // rooms this one connects to
}

// renderSnapshot holds a consistent snapshot of game state for rendering
// This prevents tearing between the game loop goroutine and Draw
type renderSnapshot struct {
	valid      bool
	rooms      []roomSnapshot
	playerRoom string
	agentRoom  string
	messages   []string
	status     string
	finished   bool
}

// keyRepeatInfo tracks the repeat state for a held key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	fontSource *text.GoTextFaceSource
	roomFace   *text.GoTextFace
	uiFace     *text.GoTextFace

	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// notice is shown over the map, set by ShowMessage and dropped on the next key
	notice      string
	noticeMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// closed when the window goes away; unblocks GetInput
	done     chan struct{}
	doneOnce sync.Once

	// closed when the game loop returns
	loopDone chan struct{}

	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	windowOpenedLogged bool
}
