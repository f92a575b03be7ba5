package agent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanhouse/pkg/engine/world"
	gameworld "cleanhouse/pkg/game/world"
)

// scriptedRand returns queued values and records the bounds it was asked for.
type scriptedRand struct {
	values []int
	bounds []int
}

func (r *scriptedRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

type sink struct {
	msgs []string
}

func (s *sink) AddMessage(msg string) {
	s.msgs = append(s.msgs, msg)
}

// chainHouse is Foyer <-> Kitchen <-> Bedroom, all dirty.
func chainHouse() *gameworld.State {
	return gameworld.New([]*world.Room{
		world.NewRoom("Foyer", 325, 250).Connect(world.South, "Kitchen"),
		world.NewRoom("Kitchen", 325, 375).Connect(world.North, "Foyer").Connect(world.East, "Bedroom"),
		world.NewRoom("Bedroom", 500, 375).Connect(world.West, "Kitchen"),
	})
}

func TestTick_MovesTowardOnlyCleanRoom(t *testing.T) {
	w := chainHouse()
	require.NoError(t, w.MarkClean("Kitchen"))
	require.NoError(t, w.MarkClean("Bedroom"))

	rng := &scriptedRand{}
	a := New("Kitchen", rng)
	a.WaitCounter = 2

	require.NoError(t, a.Tick(w, w.Graph()))

	assert.Equal(t, "Bedroom", a.Target)
	assert.Equal(t, "Bedroom", a.Room)
	assert.Empty(t, a.Path)
	assert.Equal(t, []int{1}, rng.bounds, "own room must be excluded from the candidates")

	var s sink
	require.NoError(t, a.MaybeDirty(w, &s))
	assert.False(t, w.IsClean("Bedroom"))
	assert.True(t, w.IsClean("Kitchen"))
	assert.Equal(t, []string{"Oh no! The child messed up the Bedroom again!"}, s.msgs)
	assert.Equal(t, 0, a.WaitCounter)
}

func TestTick_NothingToSpoil(t *testing.T) {
	w := chainHouse()
	require.NoError(t, w.MarkClean("Kitchen"))

	a := New("Kitchen", &scriptedRand{})
	a.WaitCounter = 2
	a.Target = "Foyer"

	require.NoError(t, a.Tick(w, w.Graph()))

	assert.Equal(t, "Kitchen", a.Room)
	assert.Empty(t, a.Target)
	assert.Empty(t, a.Path)
	assert.Equal(t, Ready, a.State())
}

func TestTick_IdleBelowThreshold(t *testing.T) {
	w := chainHouse()
	require.NoError(t, w.MarkClean("Foyer"))
	require.NoError(t, w.MarkClean("Bedroom"))

	rng := &scriptedRand{}
	a := New("Kitchen", rng)
	a.NotifyPlayerCleaned()
	require.Equal(t, 1, a.WaitCounter)
	assert.Equal(t, Idle, a.State())

	var s sink
	require.NoError(t, a.Tick(w, w.Graph()))
	require.NoError(t, a.MaybeDirty(w, &s))

	assert.Equal(t, "Kitchen", a.Room)
	assert.Empty(t, a.Target)
	assert.Empty(t, s.msgs)
	assert.Empty(t, rng.bounds)
	assert.True(t, w.IsClean("Foyer"))
	assert.True(t, w.IsClean("Bedroom"))
	assert.Equal(t, 1, a.WaitCounter)
}

func TestMaybeDirty_Idempotent(t *testing.T) {
	w := chainHouse()
	require.NoError(t, w.MarkClean("Kitchen"))

	a := New("Kitchen", &scriptedRand{})
	a.WaitCounter = 3

	var s sink
	require.NoError(t, a.MaybeDirty(w, &s))
	require.NoError(t, w.MarkClean("Kitchen"))
	require.NoError(t, a.MaybeDirty(w, &s))

	assert.Len(t, s.msgs, 1)
	assert.True(t, w.IsClean("Kitchen"), "second call must be a no-op")
	assert.Equal(t, 0, a.WaitCounter)
}

func TestMaybeDirty_DirtyRoomStillUsesAction(t *testing.T) {
	w := chainHouse()
	a := New("Foyer", &scriptedRand{})
	a.WaitCounter = 2

	var s sink
	require.NoError(t, a.MaybeDirty(w, &s))

	assert.Empty(t, s.msgs)
	assert.Equal(t, 0, a.WaitCounter)
}

func TestTick_OneHopPerTickAlongRoute(t *testing.T) {
	w := chainHouse()
	require.NoError(t, w.MarkClean("Bedroom"))

	a := New("Foyer", &scriptedRand{})
	a.WaitCounter = 2
	a.WaitThreshold = 2

	require.NoError(t, a.Tick(w, w.Graph()))
	assert.Equal(t, "Kitchen", a.Room)
	assert.Equal(t, []string{"Bedroom"}, a.Path)
	assert.Equal(t, EnRoute, a.State())

	// The route is kept while the target is not reached.
	require.NoError(t, a.Tick(w, w.Graph()))
	assert.Equal(t, "Bedroom", a.Room)
	assert.Empty(t, a.Path)
	assert.Equal(t, "Bedroom", a.Target)
}

func TestTick_RouteSurvivesWaitCycle(t *testing.T) {
	w := chainHouse()
	require.NoError(t, w.MarkClean("Bedroom"))

	a := New("Foyer", &scriptedRand{})
	a.WaitCounter = 2

	var s sink
	require.NoError(t, a.Tick(w, w.Graph()))
	require.NoError(t, a.MaybeDirty(w, &s))
	assert.Equal(t, "Kitchen", a.Room)
	assert.Equal(t, 0, a.WaitCounter)
	assert.Equal(t, Idle, a.State())

	a.NotifyPlayerCleaned()
	a.NotifyPlayerCleaned()
	require.NoError(t, a.Tick(w, w.Graph()))
	require.NoError(t, a.MaybeDirty(w, &s))

	assert.Equal(t, "Bedroom", a.Room)
	assert.False(t, w.IsClean("Bedroom"))
	assert.Len(t, s.msgs, 1)
}

func TestTick_UnreachableTargetStaysPut(t *testing.T) {
	w := gameworld.New([]*world.Room{
		world.NewRoom("Island", 0, 0),
		world.NewRoom("Shore", 100, 0),
	})
	require.NoError(t, w.MarkClean("Shore"))

	a := New("Island", &scriptedRand{})
	a.WaitCounter = 2

	require.NoError(t, a.Tick(w, w.Graph()))
	assert.Equal(t, "Island", a.Room)
	assert.Equal(t, "Shore", a.Target)
	assert.Empty(t, a.Path)
}

func TestTick_CorruptGraphIsFatal(t *testing.T) {
	w := chainHouse()
	require.NoError(t, w.MarkClean("Bedroom"))

	a := New("Cellar", &scriptedRand{})
	a.WaitCounter = 2

	err := a.Tick(w, w.Graph())
	assert.ErrorIs(t, err, world.ErrInvalidRoom)
}

func TestTick_UniformSelectionUsesSortedCandidates(t *testing.T) {
	w := chainHouse()
	for _, name := range w.Names() {
		require.NoError(t, w.MarkClean(name))
	}

	// Candidates from Kitchen are [Bedroom, Foyer].
	for i, want := range []string{"Bedroom", "Foyer"} {
		a := New("Kitchen", &scriptedRand{values: []int{i}})
		a.WaitCounter = 2
		require.NoError(t, a.Tick(w, w.Graph()))
		assert.Equal(t, want, a.Target)
		assert.Equal(t, want, a.Room)
	}
}

func TestAgent_WaitCounterNeverNegative(t *testing.T) {
	w := chainHouse()
	rng := rand.New(rand.NewSource(3))
	a := New("Foyer", rng)
	var s sink

	for i := 0; i < 200; i++ {
		if rng.Intn(2) == 0 {
			name := w.Names()[rng.Intn(3)]
			require.NoError(t, w.MarkClean(name))
			a.NotifyPlayerCleaned()
		}
		before := a.WaitCounter
		require.NoError(t, a.Tick(w, w.Graph()))
		require.NoError(t, a.MaybeDirty(w, &s))

		assert.GreaterOrEqual(t, a.WaitCounter, 0)
		if before < a.WaitThreshold {
			assert.Equal(t, before, a.WaitCounter, "below threshold nothing may change")
		} else {
			assert.Equal(t, 0, a.WaitCounter)
		}
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Ready", Ready.String())
	assert.Equal(t, "EnRoute", EnRoute.String())
}
