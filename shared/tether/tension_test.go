package tether

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTension(t *testing.T) {
	up := mgl64.Vec3{0, -1, 0} // side-view plane is Y-down
	tests := []struct {
		name    string
		in      TensionInput
		wantVel mgl64.Vec3
		applied bool
		liftOff bool
	}{
		{
			name:    "slack tether leaves velocity untouched",
			in:      TensionInput{Anchor: mgl64.Vec3{0, -1000, 0}, Velocity: mgl64.Vec3{0, 200, 0}, DesiredLength: 1200, Dt: 0.1},
			wantVel: mgl64.Vec3{0, 200, 0},
		},
		{
			name:    "airborne motion away from anchor ramps in",
			in:      TensionInput{Anchor: mgl64.Vec3{0, -1000, 0}, Velocity: mgl64.Vec3{0, 200, 0}, DesiredLength: 1000, Dt: 0.1},
			wantVel: mgl64.Vec3{0, 140, 0},
			applied: true,
		},
		{
			name:    "grounded motion away from anchor resolves instantly",
			in:      TensionInput{Anchor: mgl64.Vec3{1000, 0, 0}, Velocity: mgl64.Vec3{-200, 0, 0}, DesiredLength: 1000, Dt: 0.1, Grounded: true, FloorNormal: up},
			wantVel: mgl64.Vec3{0, 0, 0},
			applied: true,
		},
		{
			name:    "motion toward anchor is not countered",
			in:      TensionInput{Anchor: mgl64.Vec3{0, -1000, 0}, Velocity: mgl64.Vec3{0, -200, 0}, DesiredLength: 1000, Dt: 0.1},
			wantVel: mgl64.Vec3{0, -200, 0},
			applied: true,
		},
		{
			name:    "overshoot pulls toward anchor",
			in:      TensionInput{Anchor: mgl64.Vec3{1000, 0, 0}, DesiredLength: 900, Dt: 0.1},
			wantVel: mgl64.Vec3{100, 0, 0},
			applied: true,
		},
		{
			name:    "anchor overhead lifts a grounded shooter",
			in:      TensionInput{Anchor: mgl64.Vec3{0, -1000, 0}, DesiredLength: 1000, Dt: 0.1, Grounded: true, FloorNormal: up},
			wantVel: mgl64.Vec3{},
			applied: true,
			liftOff: true,
		},
		{
			name:    "sideways anchor keeps shooter grounded",
			in:      TensionInput{Anchor: mgl64.Vec3{1000, 0, 0}, DesiredLength: 1000, Dt: 0.1, Grounded: true, FloorNormal: up},
			wantVel: mgl64.Vec3{},
			applied: true,
		},
	}

	tu := DefaultTuning()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tension(tt.in, tu)
			if !got.Velocity.ApproxEqualThreshold(tt.wantVel, 1e-9) {
				t.Errorf("velocity = %v, want %v", got.Velocity, tt.wantVel)
			}
			if got.Applied != tt.applied {
				t.Errorf("applied = %v, want %v", got.Applied, tt.applied)
			}
			if got.LiftOff != tt.liftOff {
				t.Errorf("lift off = %v, want %v", got.LiftOff, tt.liftOff)
			}
		})
	}
}

func TestTensionLiftOffAngleBoundary(t *testing.T) {
	tu := DefaultTuning()
	up := mgl64.Vec3{0, -1, 0}
	for _, deg := range []float64{40, 43} {
		rad := deg * math.Pi / 180
		anchor := mgl64.Vec3{math.Sin(rad), -math.Cos(rad), 0}.Mul(1000)
		res := Tension(TensionInput{Anchor: anchor, DesiredLength: 900, Dt: 0.1, Grounded: true, FloorNormal: up}, tu)
		want := rad < tu.LiftOffAngle
		if res.LiftOff != want {
			t.Errorf("%v degrees: lift off = %v, want %v", deg, res.LiftOff, want)
		}
	}
}
