package systems

import (
	"github.com/asgmods/grapplehook/components"
	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// localShooter adapts the replicated local shooter entity to tether.Shooter.
// Writes only affect the local copy until the next snapshot.
type localShooter struct {
	world  donburi.World
	entity donburi.Entity
}

func (s localShooter) entry() (*donburi.Entry, bool) {
	if !s.world.Valid(s.entity) {
		return nil, false
	}
	return s.world.Entry(s.entity), true
}

func (s localShooter) Position() mgl64.Vec3 {
	e, ok := s.entry()
	if !ok || !e.HasComponent(netcomponents.NetPosition) {
		return mgl64.Vec3{}
	}
	return netcomponents.NetPosition.Get(e).Vec3()
}

func (s localShooter) Velocity() mgl64.Vec3 {
	e, ok := s.entry()
	if !ok || !e.HasComponent(netcomponents.NetVelocity) {
		return mgl64.Vec3{}
	}
	return netcomponents.NetVelocity.Get(e).Vec3()
}

func (s localShooter) SetVelocity(v mgl64.Vec3) {
	e, ok := s.entry()
	if !ok {
		return
	}
	setComponent(e, netcomponents.NetVelocity, netcomponents.NetVelocityFrom(v))
}

// AimDirection prefers the local input's aim over the replicated one.
func (s localShooter) AimDirection() mgl64.Vec3 {
	e, ok := s.entry()
	if !ok {
		return mgl64.Vec3{}
	}
	if e.HasComponent(components.Input) {
		in := components.Input.Get(e)
		if aim := gamemath.SafeNormal(mgl64.Vec3{in.AimX, in.AimY, 0}); aim != (mgl64.Vec3{}) {
			return aim
		}
	}
	if e.HasComponent(netcomponents.NetShooter) {
		st := netcomponents.NetShooter.Get(e)
		return mgl64.Vec3{st.AimX, st.AimY, 0}
	}
	return mgl64.Vec3{}
}

func (s localShooter) Grounded() bool {
	e, ok := s.entry()
	return ok && e.HasComponent(netcomponents.NetShooter) && netcomponents.NetShooter.Get(e).Grounded
}

func (s localShooter) FloorNormal() mgl64.Vec3 { return mgl64.Vec3{0, -1, 0} }

func (s localShooter) LeaveGround() {
	if e, ok := s.entry(); ok && e.HasComponent(netcomponents.NetShooter) {
		netcomponents.NetShooter.Get(e).Grounded = false
	}
}
