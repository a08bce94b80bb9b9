package messages

// FireRequest asks the server to fire the sender's grapple from Source along
// Aim. A request while a projectile is out is ignored by the server.
type FireRequest struct {
	SourceX, SourceY, SourceZ float64
	AimX, AimY, AimZ          float64
}

// RetractRequest asks the server to retract the sender's grapple.
type RetractRequest struct{}

// LengthAdjustRequest carries the cable length steps accumulated by the
// client since its previous request. Seq increases by one per request and is
// echoed back in the replicated tether once applied.
type LengthAdjustRequest struct {
	Seq   uint32
	Steps int32
	Dt    float64
}

// VelocityCorrection is broadcast when tension changed a shooter's velocity
// on the server.
type VelocityCorrection struct {
	NetworkID uint
	X, Y, Z   float64
}

// TetherEvent mirrors a server-side grapple event for client feedback.
type TetherEvent struct {
	OwnerNetworkID uint
	Kind           int // tether.EventKind
	Ratio          float64
	AnchorX        float64
	AnchorY        float64
	AnchorZ        float64
}
