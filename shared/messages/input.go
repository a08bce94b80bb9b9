package messages

import "github.com/asgmods/grapplehook/shared/netconfig"

// PlayerInput is sent from client to server each frame with the shooter's
// movement input. Grapple requests travel as their own messages.
type PlayerInput struct {
	Sequence  uint32                      // Incrementing ID for reconciliation
	Actions   map[netconfig.ActionID]bool // Which actions are currently pressed
	Direction int                         // -1 left, 0 none, 1 right
	AimX      float64                     // Normalized aim in the side-view plane (Y down)
	AimY      float64
	Timestamp int64 // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with initialized map
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Actions:  make(map[netconfig.ActionID]bool),
	}
}

// Pressed reports whether action is held in this input.
func (in PlayerInput) Pressed(action netconfig.ActionID) bool {
	return in.Actions[action]
}
