package core

import (
	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/asgmods/grapplehook/shared/netconfig"
	"github.com/asgmods/grapplehook/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// floorNormal is "up" in the Y-down side-view plane.
var floorNormal = mgl64.Vec3{0, -1, 0}

// shooterBody holds per-player physics state on the server. It is not a
// donburi component; it exists only on the server and is never synced.
type shooterBody struct {
	Object   *resolv.Object
	vel      mgl64.Vec3 // units/s
	onGround bool

	// Latest input snapshot (written by applyInput, read by the physics step)
	direction      int
	facing         int
	jumpPressed    bool
	jumpWasPressed bool
	aim            mgl64.Vec3

	// Last processed input sequence (for client-side prediction reconciliation)
	lastInputSeq uint32
}

func newShooterBody(space *resolv.Space, spawn mgl64.Vec3, w, h float64) *shooterBody {
	// Spawn points mark the feet.
	obj := resolv.NewObject(spawn[0]-w/2, spawn[1]-h, w, h, tags.ResolvShooter)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(obj)

	return &shooterBody{
		Object: obj,
		facing: 1,
		aim:    mgl64.Vec3{1, 0, 0},
	}
}

func (b *shooterBody) applyInput(in messages.PlayerInput) {
	if in.Sequence <= b.lastInputSeq && b.lastInputSeq != 0 {
		return
	}
	b.lastInputSeq = in.Sequence
	b.direction = in.Direction
	if in.Direction != 0 {
		b.facing = in.Direction
	}
	b.jumpPressed = in.Pressed(netconfig.ActionJump)
	aim := gamemath.SafeNormal(mgl64.Vec3{in.AimX, in.AimY, 0})
	if aim == (mgl64.Vec3{}) {
		aim = gamemath.AimDirection(b.facing,
			in.Pressed(netconfig.ActionAimUp), in.Pressed(netconfig.ActionAimDown), in.Direction != 0)
	}
	b.aim = aim
}

// Position is the body centre.
func (b *shooterBody) Position() mgl64.Vec3 {
	return mgl64.Vec3{b.Object.X + b.Object.W/2, b.Object.Y + b.Object.H/2, 0}
}

func (b *shooterBody) Velocity() mgl64.Vec3 { return b.vel }

func (b *shooterBody) SetVelocity(v mgl64.Vec3) {
	v[2] = 0
	b.vel = v
}

func (b *shooterBody) AimDirection() mgl64.Vec3 { return b.aim }

func (b *shooterBody) Grounded() bool { return b.onGround }

func (b *shooterBody) FloorNormal() mgl64.Vec3 { return floorNormal }

func (b *shooterBody) LeaveGround() { b.onGround = false }
