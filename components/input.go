package components

import (
	"github.com/asgmods/grapplehook/shared/netconfig"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData is the local shooter's input for the current tick.
type InputData struct {
	Actions   [netconfig.ActionCount]ActionState
	Direction int
	AimX      float64
	AimY      float64
}

// Press records action as held this tick.
func (in *InputData) Press(action netconfig.ActionID, held bool) {
	st := &in.Actions[action]
	st.JustPressed = held && !st.Pressed
	st.JustReleased = !held && st.Pressed
	st.Pressed = held
}

var Input = donburi.NewComponentType[InputData]()
