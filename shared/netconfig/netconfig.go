// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must not depend on any graphics library so
// the dedicated server binary stays headless.
package netconfig

// StateID identifies a shooter movement state.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Running
	Airborne
	Grappling // attached and under tension
	Reeling   // attached and shortening the cable
)

var stateNames = map[StateID]string{
	Idle:      "idle",
	Running:   "running",
	Airborne:  "airborne",
	Grappling: "grappling",
	Reeling:   "reeling",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAimUp
	ActionAimDown
	ActionFire         // edge-triggered toggle: fire or retract
	ActionRetractCable // held: shorten the cable
	ActionExtendCable  // held: lengthen the cable
	ActionCount        // Must be last - used for array sizing
)

// TickRateDefault is the authoritative simulation rate when none is set.
const TickRateDefault = 30

// PhysicsRate is the sub-step rate physics constants are tuned for.
const PhysicsRate = 60
