package tether_test

import (
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

type fakeShooter struct {
	pos, vel, aim, floor mgl64.Vec3
	grounded             bool
	liftOffs             int
}

func newFakeShooter() *fakeShooter {
	return &fakeShooter{aim: mgl64.Vec3{1, 0, 0}, floor: mgl64.Vec3{0, -1, 0}}
}

func (s *fakeShooter) Position() mgl64.Vec3      { return s.pos }
func (s *fakeShooter) Velocity() mgl64.Vec3      { return s.vel }
func (s *fakeShooter) SetVelocity(v mgl64.Vec3)  { s.vel = v }
func (s *fakeShooter) AimDirection() mgl64.Vec3  { return s.aim }
func (s *fakeShooter) Grounded() bool            { return s.grounded }
func (s *fakeShooter) FloorNormal() mgl64.Vec3   { return s.floor }
func (s *fakeShooter) LeaveGround()              { s.grounded = false; s.liftOffs++ }

type fakeProjectile struct {
	id        uuid.UUID
	pos       mgl64.Vec3
	vel       mgl64.Vec3
	impact    func(tether.Hit)
	destroyed bool
}

func (p *fakeProjectile) ID() uuid.UUID               { return p.id }
func (p *fakeProjectile) Position() mgl64.Vec3        { return p.pos }
func (p *fakeProjectile) OnImpact(fn func(tether.Hit)) { p.impact = fn }
func (p *fakeProjectile) Destroy()                    { p.destroyed = true }

// hit moves the projectile and signals an impact there.
func (p *fakeProjectile) hit(at mgl64.Vec3) {
	p.pos = at
	if p.impact != nil {
		p.impact(tether.Hit{Position: at, Normal: mgl64.Vec3{-1, 0, 0}})
	}
}

type fakeSpawner struct {
	spawned []*fakeProjectile
	refuse  bool
}

func (s *fakeSpawner) SpawnProjectile(origin, velocity mgl64.Vec3) tether.Projectile {
	if s.refuse {
		return nil
	}
	p := &fakeProjectile{id: uuid.New(), pos: origin, vel: velocity}
	s.spawned = append(s.spawned, p)
	return p
}

func (s *fakeSpawner) last() *fakeProjectile {
	if len(s.spawned) == 0 {
		return nil
	}
	return s.spawned[len(s.spawned)-1]
}

// fakeCollision reports a hit for every ray when hit is set.
type fakeCollision struct {
	hit   *tether.Hit
	calls int
}

func (c *fakeCollision) Raycast(from, to mgl64.Vec3, _ tether.Filter) (tether.Hit, bool) {
	c.calls++
	if c.hit == nil {
		return tether.Hit{}, false
	}
	return *c.hit, true
}

type fakeReplicator struct {
	states     []tether.State
	velocities []mgl64.Vec3
}

func (r *fakeReplicator) PublishState(s tether.State)     { r.states = append(r.states, s) }
func (r *fakeReplicator) PublishVelocity(v mgl64.Vec3) { r.velocities = append(r.velocities, v) }

type eventLog struct {
	events []tether.Event
}

func (l *eventLog) record(e tether.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(kind tether.EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (l *eventLog) last(kind tether.EventKind) (tether.Event, bool) {
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].Kind == kind {
			return l.events[i], true
		}
	}
	return tether.Event{}, false
}

type rig struct {
	tool    *tether.Tool
	shooter *fakeShooter
	spawner *fakeSpawner
	coll    *fakeCollision
	repl    *fakeReplicator
	log     *eventLog
}

// newRig builds a tool that is both authority and controller, as on a
// listen server.
func newRig(settings tether.StaticSettings) *rig {
	r := &rig{
		shooter: newFakeShooter(),
		spawner: &fakeSpawner{},
		coll:    &fakeCollision{},
		repl:    &fakeReplicator{},
		log:     &eventLog{},
	}
	r.tool = tether.NewTool(tether.Options{
		Role:       tether.RoleAuthority | tether.RoleController,
		Settings:   settings,
		Shooter:    r.shooter,
		Collision:  r.coll,
		Spawner:    r.spawner,
		Replicator: r.repl,
	})
	r.tool.Subscribe(r.log.record)
	return r
}

// attachAt fires and lands the hook at the given point.
func (r *rig) attachAt(at mgl64.Vec3) *fakeProjectile {
	r.tool.ToggleFire()
	p := r.spawner.last()
	p.hit(at)
	return p
}

var defaultSettings = tether.StaticSettings{MaxLength: 6000, Tearing: 600}
