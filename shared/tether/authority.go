package tether

import (
	"math"

	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxRequestDt bounds the elapsed time a remote length request may claim.
// A single request therefore moves the length by at most LengthStep/4 per
// step.
const maxRequestDt = 0.25

// HandleFire spawns a projectile from source along aim. It is a no-op
// unless the tether is idle on the authority.
func (t *Tool) HandleFire(source, aim mgl64.Vec3) {
	if !t.role.Has(RoleAuthority) || t.projectile != nil || t.shooter == nil || t.spawner == nil {
		return
	}
	if !gamemath.IsFinite(source) {
		return
	}
	dir := gamemath.SafeNormal(aim)
	if dir == (mgl64.Vec3{}) {
		return
	}

	origin := source.Add(dir.Mul(t.tuning.MuzzleClearance))
	if t.collision != nil {
		if hit, ok := t.collision.Raycast(source, origin, FilterProjectile); ok {
			origin = hit.Position
		}
	}

	// Inherit the shooter's speed along the aim so it never outruns its hook.
	inherited := gamemath.ProjectOntoNormal(t.shooter.Velocity(), dir)
	p := t.spawner.SpawnProjectile(origin, dir.Mul(t.tuning.InitialHookVelocity).Add(inherited))
	if p == nil {
		return
	}
	id := p.ID()
	p.OnImpact(func(h Hit) { t.handleImpact(id, h) })

	t.projectile = p
	t.auth = State{Projectile: id, Anchor: p.Position(), LengthSeq: t.auth.LengthSeq}
	t.authVisual = t.tuning.MinFlyingVisual
	t.log.WithFields(logrus.Fields{"projectile": id, "origin": origin}).Debug("grapple fired")

	if !t.role.Has(RoleController) {
		t.emit(Event{Kind: EventFired, Projectile: id})
	}
	t.commit()
}

func (t *Tool) handleImpact(id uuid.UUID, hit Hit) {
	if t.projectile == nil || t.projectile.ID() != id || t.auth.Attached {
		return
	}
	t.auth.Attached = true
	t.auth.Anchor = hit.Position
	t.auth.DesiredLength = gamemath.Clamp(t.distanceTo(t.auth), 0, t.settings.MaxCableLength())
	t.log.WithFields(logrus.Fields{
		"projectile": id,
		"desired":    t.auth.DesiredLength,
	}).Debug("grapple attached")
	t.commit()
}

// HandleRetract destroys the projectile and resets the tether to idle.
func (t *Tool) HandleRetract() {
	if !t.role.Has(RoleAuthority) {
		return
	}
	if t.projectile != nil {
		t.projectile.Destroy()
		t.projectile = nil
		t.log.WithField("projectile", t.auth.Projectile).Debug("grapple retracted")
	}
	t.auth = State{LengthSeq: t.auth.LengthSeq}
	t.authVisual = 0
	t.commit()
}

// HandleAdjustLength resolves one length request. Requests are always
// acknowledged but only change the length while attached.
func (t *Tool) HandleAdjustLength(req LengthRequest) {
	if !t.role.Has(RoleAuthority) {
		return
	}
	if req.Seq > t.auth.LengthSeq {
		t.auth.LengthSeq = req.Seq
	}
	dt := req.Dt
	if t.auth.Attached && req.Steps != 0 && !math.IsNaN(dt) && !math.IsInf(dt, 0) {
		dt = gamemath.Clamp(dt, 0, maxRequestDt)
		t.auth.DesiredLength = ResolveLength(t.auth.DesiredLength, t.distanceTo(t.auth),
			t.settings.MaxCableLength(), req.Steps, dt, t.tuning)
	}
	t.commit()
}

func (t *Tool) tickAuthority(dt float64) {
	if t.projectile == nil {
		return
	}
	if !t.auth.Attached {
		t.auth.Anchor = t.projectile.Position()
	}
	dist := t.distanceTo(t.auth)
	maxLen := t.settings.MaxCableLength()

	if !t.auth.Attached {
		if dist > maxLen {
			t.log.WithField("distance", dist).Debug("grapple out of range")
			t.HandleRetract()
			return
		}
		t.authVisual = math.Max(t.tuning.MinFlyingVisual, math.Min(maxLen, dist))
		t.commit()
		return
	}

	if dist-t.auth.DesiredLength >= t.settings.TearingDistance() {
		t.log.WithFields(logrus.Fields{
			"distance": dist,
			"desired":  t.auth.DesiredLength,
		}).Debug("grapple torn")
		t.HandleRetract()
		return
	}

	if v, ok := t.applyTension(t.auth.Anchor, t.auth.DesiredLength, dt); ok && t.replicator != nil {
		t.replicator.PublishVelocity(v)
	}
	t.authVisual = t.attachedVisual(t.auth.DesiredLength)
	t.commit()
}

// commit mirrors the authoritative state locally and publishes it when it
// differs from the last published value.
func (t *Tool) commit() {
	d := t.auth.Digest()
	if t.hasPublished && d == t.published {
		return
	}
	t.published, t.hasPublished = d, true
	t.ApplyState(t.auth)
	if t.replicator != nil {
		t.replicator.PublishState(t.auth)
	}
}
