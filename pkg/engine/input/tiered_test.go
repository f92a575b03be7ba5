package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"n", ActionMoveNorth},
		{"South", ActionMoveSouth},
		{"  w ", ActionMoveWest},
		{"e", ActionMoveEast},
		{"space", ActionClean},
		{"clean", ActionClean},
		{"C", ActionClean},
		{"?", ActionHint},
		{"exit", ActionQuit},
		{"escape", ActionQuit},
		{"dance", ActionNone},
		{"", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(DeviceTerminal, tt.code).Action)
		})
	}
}

// keepBindings restores the default bindings when the test ends.
func keepBindings(t *testing.T) {
	t.Helper()
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	t.Cleanup(func() { bindings = saved })
}

func TestSetSingleBinding(t *testing.T) {
	keepBindings(t)

	SetSingleBinding(ActionClean, "x")

	assert.Equal(t, ActionClean, Resolve(DeviceKeyboard, "x").Action)
	assert.Equal(t, ActionNone, Resolve(DeviceKeyboard, "c").Action)
	assert.Equal(t, ActionClean, Resolve(DeviceKeyboard, "space").Action, "reserved code survives rebinding")

	SetSingleBinding(ActionQuit, "space")
	assert.Equal(t, ActionClean, Resolve(DeviceKeyboard, "space").Action)
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	got := GetBindingsByAction()[ActionMoveNorth]
	assert.Equal(t, []string{"arrow_up", "k", "n", "north"}, got)
	assert.Equal(t, "Clean", ActionName(ActionClean))
	assert.Equal(t, "None", ActionName(Action(99)))
}

func TestMapToIntent_KeepsCode(t *testing.T) {
	in := Resolve(DeviceTerminal, " Dance ")
	assert.Equal(t, ActionNone, in.Action)
	assert.Equal(t, "dance", in.Code)
}

func TestParseAction(t *testing.T) {
	act, ok := ParseAction(" Move_North ")
	assert.True(t, ok)
	assert.Equal(t, ActionMoveNorth, act)

	_, ok = ParseAction("dance")
	assert.False(t, ok)
}

func TestApplyBindings(t *testing.T) {
	keepBindings(t)

	ApplyBindings(map[Action]string{ActionClean: " X ", ActionHint: "H"})

	assert.Equal(t, ActionClean, Resolve(DeviceTerminal, "x").Action)
	assert.Equal(t, ActionHint, Resolve(DeviceTerminal, "h").Action, "h is taken from move west")
	assert.Equal(t, ActionNone, Resolve(DeviceTerminal, "?").Action)
	assert.Equal(t, []string{"space", "x"}, GetBindingsByAction()[ActionClean])
	assert.True(t, IsReserved("space"))
	assert.False(t, IsReserved("x"))
}
