package tether

import (
	"math"

	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// TensionInput is everything the tension model reads for one step.
type TensionInput struct {
	Anchor        mgl64.Vec3
	Origin        mgl64.Vec3
	Velocity      mgl64.Vec3
	DesiredLength float64
	Dt            float64
	Grounded      bool
	FloorNormal   mgl64.Vec3
}

type TensionResult struct {
	Velocity mgl64.Vec3
	// Applied is false when the tether is slack and Velocity is the input.
	Applied bool
	// LiftOff asks a grounded shooter to switch to free movement.
	LiftOff bool
}

// Tension computes the shooter velocity after one step of tether tension.
func Tension(in TensionInput, tu Tuning) TensionResult {
	dist := gamemath.Distance(in.Anchor, in.Origin)
	if dist < in.DesiredLength {
		return TensionResult{Velocity: in.Velocity}
	}

	dir := gamemath.SafeNormal(in.Anchor.Sub(in.Origin))
	force := gamemath.ProjectOnto(in.Velocity.Mul(-1), dir)
	v := in.Velocity

	// Only counter motion that carries the shooter away from the anchor.
	if gamemath.NearlyEqual(dir.Dot(gamemath.SafeNormal(force)), 1, tu.AlignmentTolerance) {
		mult := in.Dt * tu.AirTensionRate
		if in.Grounded {
			mult = 1
		}
		v = v.Add(force.Mul(mult))
	}

	if dist > in.DesiredLength {
		excess := dist - in.DesiredLength
		v = v.Add(dir.Mul(excess * in.Dt * tu.OvershootStiffness))
	}

	res := TensionResult{Velocity: v, Applied: true}
	if in.Grounded {
		dot := gamemath.Clamp(in.FloorNormal.Dot(dir), -1, 1)
		res.LiftOff = math.Acos(dot) < tu.LiftOffAngle
	}
	return res
}
