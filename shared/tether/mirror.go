package tether

import "github.com/sirupsen/logrus"

// ApplyState mirrors an authoritative state and fires side effects only
// for values that actually changed. Feeding the same state twice is a
// no-op.
func (t *Tool) ApplyState(next State) {
	prev := t.seen
	t.seen = next
	if prev == next {
		return
	}

	if prev.Projectile != next.Projectile {
		if next.HasProjectile() {
			t.retracted = false
			t.emit(Event{Kind: EventCableBound, Projectile: next.Projectile})
			t.emit(Event{Kind: EventCableGravityChanged, Projectile: next.Projectile, GravityScale: t.cableGravity(next)})
		} else {
			t.pending = 0
			t.finishRetracting()
		}
	}

	if prev.Attached != next.Attached {
		switch {
		case next.Attached && next.HasProjectile():
			t.emit(Event{Kind: EventCableGravityChanged, Projectile: next.Projectile, GravityScale: t.tuning.GravityAfterHit})
			t.emit(Event{Kind: EventAttached, Projectile: next.Projectile, Anchor: next.Anchor})
		case !next.Attached && !next.HasProjectile():
			t.finishRetracting()
		}
	}

	if prev.DesiredLength != next.DesiredLength {
		t.emit(Event{Kind: EventLengthRatioChanged, Ratio: t.lengthRatio(next.DesiredLength)})
	}

	if prev.Phase() != next.Phase() {
		t.log.WithFields(logrus.Fields{
			"projectile": next.Projectile,
			"phase":      next.Phase(),
			"desired":    next.DesiredLength,
		}).Debug("tether phase changed")
	}
}

func (t *Tool) finishRetracting() {
	if t.retracted {
		return
	}
	t.retracted = true
	t.emit(Event{Kind: EventStartedRetracting})
	t.emit(Event{Kind: EventFinishedRetracting})
}

func (t *Tool) cableGravity(s State) float64 {
	if s.Attached {
		return t.tuning.GravityAfterHit
	}
	return t.tuning.GravityBeforeHit
}

func (t *Tool) lengthRatio(desired float64) float64 {
	maxLen := t.settings.MaxCableLength()
	if maxLen <= 0 {
		return 0
	}
	return desired / maxLen
}
