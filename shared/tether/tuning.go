package tether

import "math"

// Tuning holds the constants of the tether model. Lengths are world units
// (centimetres in the default level scale), speeds are units per second.
type Tuning struct {
	InitialHookVelocity float64
	LengthStep          float64 // per activation, scaled by dt on the authority
	MuzzleClearance     float64
	SlingshotSlack      float64 // shrinking never goes below distance - slack
	VisualSlack         float64
	MinVisualLength     float64 // attached
	MinFlyingVisual     float64
	AirTensionRate      float64
	OvershootStiffness  float64
	LiftOffAngle        float64 // radians between floor normal and tension direction
	AlignmentTolerance  float64
	GravityBeforeHit    float64 // cable gravity scale
	GravityAfterHit     float64
}

func DefaultTuning() Tuning {
	return Tuning{
		InitialHookVelocity: 6000,
		LengthStep:          500,
		MuzzleClearance:     150,
		SlingshotSlack:      600,
		VisualSlack:         250,
		MinVisualLength:     50,
		MinFlyingVisual:     0.1,
		AirTensionRate:      3,
		OvershootStiffness:  10,
		LiftOffAngle:        math.Pi/4 - math.Pi/64,
		AlignmentTolerance:  1e-6,
		GravityBeforeHit:    0,
		GravityAfterHit:     3,
	}
}
