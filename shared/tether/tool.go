package tether

import (
	"io"
	"math"

	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// Options wires a Tool to its environment. Shooter is required for firing;
// the remaining capabilities are optional depending on Role.
type Options struct {
	Role       Role
	Tuning     Tuning // zero value means DefaultTuning
	Settings   Settings
	Shooter    Shooter
	Collision  CollisionQuery
	Spawner    Spawner    // authority only
	Link       Link       // defaults to LocalLink when Role includes RoleAuthority
	Replicator Replicator // authority only
	Logger     logrus.FieldLogger

	// PredictTension runs the tension model on a controller without
	// authority for immediate local feedback. Results are never propagated.
	PredictTension bool
}

// Tool is one grappling hook. It is not safe for concurrent use; all calls
// must come from the owning participant's tick goroutine.
type Tool struct {
	role           Role
	tuning         Tuning
	settings       Settings
	shooter        Shooter
	collision      CollisionQuery
	spawner        Spawner
	link           Link
	replicator     Replicator
	log            logrus.FieldLogger
	predictTension bool

	events *dispatcher

	// Authority-owned.
	projectile   Projectile
	auth         State
	published    uint64
	hasPublished bool
	authVisual   float64

	// Mirror of the authoritative state, kept on every participant.
	seen      State
	retracted bool

	// Controller-local.
	pending      int32
	lastSeq      uint32
	history      lengthHistory
	aimReachable bool
}

func NewTool(opts Options) *Tool {
	t := &Tool{
		role:           opts.Role,
		tuning:         opts.Tuning,
		settings:       opts.Settings,
		shooter:        opts.Shooter,
		collision:      opts.Collision,
		spawner:        opts.Spawner,
		link:           opts.Link,
		replicator:     opts.Replicator,
		log:            opts.Logger,
		predictTension: opts.PredictTension,
		events:         newDispatcher(),
		retracted:      true,
	}
	if t.tuning == (Tuning{}) {
		t.tuning = DefaultTuning()
	}
	if t.settings == nil {
		t.settings = StaticSettings{MaxLength: 6000, Tearing: 1500}
	}
	if t.log == nil {
		l := logrus.New()
		l.Out = io.Discard
		t.log = l
	}
	if t.link == nil && t.role.Has(RoleAuthority) {
		t.link = LocalLink{Tool: t}
	}
	return t
}

// Subscribe registers fn for every event. Listeners run in registration
// order. The returned func removes the listener.
func (t *Tool) Subscribe(fn func(Event)) (cancel func()) {
	return t.events.subscribe(fn)
}

func (t *Tool) emit(e Event) {
	t.events.emit(e)
}

// Unequip retracts the grapple and drops every listener.
func (t *Tool) Unequip() {
	t.Retract()
	t.events.clear()
}

func (t *Tool) Role() Role { return t.role }

// State returns the last authoritative state seen by this participant.
func (t *Tool) State() State { return t.seen }

func (t *Tool) Phase() Phase { return t.seen.Phase() }

func (t *Tool) Attached() bool { return t.seen.Attached }

func (t *Tool) AttachmentPoint() (mgl64.Vec3, bool) { return t.seen.AttachmentPoint() }

func (t *Tool) DesiredLength() float64 { return t.seen.DesiredLength }

// Retracted is true once retraction events have fired for the current idle
// period.
func (t *Tool) Retracted() bool { return t.retracted }

// PendingSteps is the signed count of extend/retract steps not yet sent.
func (t *Tool) PendingSteps() int32 { return t.pending }

func (t *Tool) AimReachable() bool { return t.aimReachable }

// PredictedDesiredLength folds length requests the authority has not
// acknowledged into the mirrored desired length.
func (t *Tool) PredictedDesiredLength() float64 {
	d := t.seen.DesiredLength
	if !t.seen.Attached || t.role.Has(RoleAuthority) {
		return d
	}
	dist := t.distanceTo(t.seen)
	maxLen := t.settings.MaxCableLength()
	for _, req := range t.history.unacknowledged(t.seen.LengthSeq) {
		d = ResolveLength(d, dist, maxLen, req.Steps, req.Dt, t.tuning)
	}
	return d
}

// VisualLength is the rendered cable length, distinct from the desired
// length. Observers show a straight cable until the hook attaches.
func (t *Tool) VisualLength() float64 {
	if t.role.Has(RoleAuthority) {
		return t.authVisual
	}
	if !t.seen.Attached {
		return 0
	}
	return t.attachedVisual(t.seen.DesiredLength)
}

func (t *Tool) attachedVisual(desired float64) float64 {
	return math.Max(t.tuning.MinVisualLength, desired-t.tuning.VisualSlack)
}

// distanceTo is the shooter's distance to the anchor of s, or 0 without a
// projectile.
func (t *Tool) distanceTo(s State) float64 {
	anchor, ok := s.AttachmentPoint()
	if !ok || t.shooter == nil {
		return 0
	}
	return gamemath.Distance(t.shooter.Position(), anchor)
}

// applyTension runs one step of the tension model on the shooter. It
// reports whether the velocity was changed.
func (t *Tool) applyTension(anchor mgl64.Vec3, desired, dt float64) (mgl64.Vec3, bool) {
	if t.shooter == nil {
		return mgl64.Vec3{}, false
	}
	res := Tension(TensionInput{
		Anchor:        anchor,
		Origin:        t.shooter.Position(),
		Velocity:      t.shooter.Velocity(),
		DesiredLength: desired,
		Dt:            dt,
		Grounded:      t.shooter.Grounded(),
		FloorNormal:   t.shooter.FloorNormal(),
	}, t.tuning)
	if !res.Applied {
		return res.Velocity, false
	}
	t.shooter.SetVelocity(res.Velocity)
	if res.LiftOff {
		t.shooter.LeaveGround()
	}
	return res.Velocity, true
}

// LocalLink delivers controller requests straight to the same tool's
// authority handlers.
type LocalLink struct {
	Tool *Tool
}

func (l LocalLink) Fire(source, aim mgl64.Vec3)    { l.Tool.HandleFire(source, aim) }
func (l LocalLink) Retract()                       { l.Tool.HandleRetract() }
func (l LocalLink) AdjustLength(req LengthRequest) { l.Tool.HandleAdjustLength(req) }
