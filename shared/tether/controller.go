package tether

import (
	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// ToggleFire is the primary fire input: fire when no projectile exists,
// retract otherwise.
func (t *Tool) ToggleFire() {
	if !t.role.Has(RoleController) {
		return
	}
	if t.seen.HasProjectile() {
		t.Retract()
		return
	}
	if t.shooter == nil || t.link == nil {
		return
	}
	wasRetracted := t.retracted
	t.retracted = false
	t.link.Fire(t.shooter.Position(), t.shooter.AimDirection())
	// A local authority has already answered; a refused shot leaves the
	// tool as it was.
	if t.role.Has(RoleAuthority) && !t.seen.HasProjectile() {
		t.retracted = wasRetracted
		return
	}
	t.emit(Event{Kind: EventFired})
}

// Retract asks the authority to drop the grapple and fires the retraction
// events unless they already fired for this idle period.
func (t *Tool) Retract() {
	if t.link != nil {
		t.link.Retract()
	}
	t.finishRetracting()
}

// RetractCable queues one shortening step. Ignored unless attached.
func (t *Tool) RetractCable() {
	if !t.seen.Attached {
		return
	}
	t.pending--
}

// ExtendCable queues one lengthening step. Ignored unless attached.
func (t *Tool) ExtendCable() {
	if !t.seen.Attached {
		return
	}
	t.pending++
}

func (t *Tool) tickController(dt float64) {
	if t.seen.Attached && t.pending != 0 && t.link != nil {
		t.lastSeq++
		req := LengthRequest{Seq: t.lastSeq, Steps: t.pending, Dt: dt}
		t.history.store(req)
		t.pending = 0
		t.link.AdjustLength(req)
	}

	t.updateAimReachable()

	if t.predictTension && !t.role.Has(RoleAuthority) && t.seen.Attached {
		t.applyTension(t.seen.Anchor, t.PredictedDesiredLength(), dt)
	}
}

// updateAimReachable traces along the aim while idle so the UI can show
// whether a shot would land within the cable length.
func (t *Tool) updateAimReachable() {
	reachable := false
	if t.retracted && !t.seen.HasProjectile() && t.collision != nil && t.shooter != nil {
		dir := gamemath.SafeNormal(t.shooter.AimDirection())
		if dir != (mgl64.Vec3{}) {
			from := t.shooter.Position()
			_, reachable = t.collision.Raycast(from, from.Add(dir.Mul(t.settings.MaxCableLength())), FilterProjectile)
		}
	}
	if reachable != t.aimReachable {
		t.aimReachable = reachable
		t.emit(Event{Kind: EventAimReachableChanged, Reachable: reachable})
	}
}
