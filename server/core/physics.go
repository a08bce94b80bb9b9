package core

import (
	cfg "github.com/asgmods/grapplehook/config"
	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/asgmods/grapplehook/shared/netconfig"
	"github.com/asgmods/grapplehook/tags"
)

// substeps returns how many fixed physics steps run per server tick, and
// their length. Movement was tuned for 60 Hz steps.
func (s *Server) substeps() (int, float64) {
	steps := netconfig.PhysicsRate / s.cfg.TickRate // 2 at 30 Hz
	if steps < 1 {
		steps = 1
	}
	return steps, 1 / float64(s.cfg.TickRate) / float64(steps)
}

// updatePhysics runs sub-stepped shooter physics for all players.
func (s *Server) updatePhysics() {
	steps, dt := s.substeps()
	for step := 0; step < steps; step++ {
		for el := s.players.Front(); el != nil; el = el.Next() {
			stepShooter(el.Value.body, s.cfg.Physics, dt)
		}
	}
}

// stepShooter performs a single fixed physics sub-step for one shooter.
func stepShooter(b *shooterBody, pc cfg.PhysicsConfig, dt float64) {
	// --- Horizontal input ---
	// Input never pushes past the run speed; swings may.
	if b.direction != 0 {
		dir := float64(b.direction)
		accel := pc.AirAcceleration
		if b.onGround {
			accel = pc.Acceleration
		}
		if dir*b.vel[0] < pc.MaxRunSpeed {
			b.vel[0] += dir * accel * dt
			if dir*b.vel[0] > pc.MaxRunSpeed {
				b.vel[0] = dir * pc.MaxRunSpeed
			}
		}
	}

	// --- Jump (edge-triggered) ---
	if b.jumpPressed && !b.jumpWasPressed && b.onGround {
		b.vel[1] = -pc.JumpSpeed
		b.onGround = false
	}
	b.jumpWasPressed = b.jumpPressed

	// --- Friction (ground only, no input) ---
	if b.onGround && b.direction == 0 {
		b.vel[0] = gamemath.ApplyFriction(b.vel[0], pc.Friction*dt)
	}

	// --- Gravity ---
	b.vel[1] += pc.Gravity * dt
	if b.vel[1] > pc.MaxFallSpeed {
		b.vel[1] = pc.MaxFallSpeed
	}

	// --- Resolve horizontal collision ---
	dx := b.vel[0] * dt
	if dx != 0 {
		if check := b.Object.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				b.vel[0] = 0
			}
		}
		b.Object.X += dx
	}

	// --- Resolve vertical collision ---
	dy := b.vel[1] * dt
	checkDist := dy
	if dy >= 0 {
		checkDist++
	}

	if check := b.Object.Check(0, checkDist, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			b.Object.Y += contact.Y()
			b.vel[1] = 0
			// Landing, or hitting a ceiling
			b.onGround = dy >= 0
			b.Object.Update()
			return
		}
	}

	// No collision, freefall
	b.onGround = false
	b.Object.Y += dy
	b.Object.Update()
}

// deriveState maps physics and grapple state to a shooter movement state.
func deriveState(p *player) netconfig.StateID {
	switch {
	case p.tool.Attached() && p.reeling:
		return netconfig.Reeling
	case p.tool.Attached():
		return netconfig.Grappling
	case !p.body.onGround:
		return netconfig.Airborne
	case gamemath.NearlyEqual(p.body.vel[0], 0, 1):
		return netconfig.Idle
	}
	return netconfig.Running
}
