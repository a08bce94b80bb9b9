package tether_test

import (
	"testing"

	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"
)

// TestToolInvariants drives a listen-server tool with random input and
// checks the tether invariants after every step.
func TestToolInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		settings := tether.StaticSettings{
			MaxLength: rapid.Float64Range(500, 8000).Draw(t, "max"),
			Tearing:   rapid.Float64Range(100, 2000).Draw(t, "tearing"),
		}
		r := newRig(settings)

		impactSinceFire := false
		idleEntries := 0

		ops := []string{"toggle", "retract", "impact", "extend", "shrink", "move", "tick"}
		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			before := r.tool.Phase()

			switch rapid.SampledFrom(ops).Draw(t, "op") {
			case "toggle":
				if before == tether.PhaseIdle {
					impactSinceFire = false
				}
				r.tool.ToggleFire()
			case "retract":
				r.tool.Retract()
			case "impact":
				if p := r.spawner.last(); p != nil {
					at := mgl64.Vec3{rapid.Float64Range(-3000, 3000).Draw(t, "ax"), rapid.Float64Range(-3000, 3000).Draw(t, "ay"), 0}
					if before == tether.PhaseFlying && !p.destroyed {
						impactSinceFire = true
					}
					p.hit(at)
				}
			case "extend":
				r.tool.ExtendCable()
			case "shrink":
				r.tool.RetractCable()
			case "move":
				r.shooter.pos = mgl64.Vec3{rapid.Float64Range(-3000, 3000).Draw(t, "sx"), rapid.Float64Range(-3000, 3000).Draw(t, "sy"), 0}
				r.shooter.vel = mgl64.Vec3{rapid.Float64Range(-500, 500).Draw(t, "vx"), rapid.Float64Range(-500, 500).Draw(t, "vy"), 0}
			case "tick":
				r.tool.Tick(rapid.Float64Range(0.001, 0.1).Draw(t, "dt"))
			}

			after := r.tool.Phase()
			if before != tether.PhaseIdle && after == tether.PhaseIdle {
				idleEntries++
			}

			d := r.tool.DesiredLength()
			if d < 0 || d > settings.MaxLength {
				t.Fatalf("desired length %v escaped [0, %v]", d, settings.MaxLength)
			}
			if r.tool.Attached() {
				if _, ok := r.tool.AttachmentPoint(); !ok {
					t.Fatal("attached without an attachment point")
				}
				if !impactSinceFire {
					t.Fatal("attached without an impact since the last fire")
				}
			}
			if after == tether.PhaseIdle && !r.tool.Retracted() {
				t.Fatal("idle tool must be retracted")
			}
			if got := r.log.count(tether.EventFinishedRetracting); got != idleEntries {
				t.Fatalf("finished retracting fired %d times for %d idle entries", got, idleEntries)
			}
			if r.log.count(tether.EventStartedRetracting) != r.log.count(tether.EventFinishedRetracting) {
				t.Fatal("started and finished retracting must pair up")
			}
		}
	})
}
