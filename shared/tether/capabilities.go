package tether

//go:generate go tool mockgen -destination=./mocks/capabilities_mock.go -package=mocks . Shooter,Projectile,Spawner,CollisionQuery,Link,Replicator

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// Shooter is the character that owns the tool.
type Shooter interface {
	// Position is the cable origin and the shooting source.
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	// AimDirection need not be normalised.
	AimDirection() mgl64.Vec3
	Grounded() bool
	FloorNormal() mgl64.Vec3
	// LeaveGround switches the shooter from grounded to free movement.
	LeaveGround()
}

// Hit is the result of a collision query or projectile impact.
type Hit struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
}

// Filter selects which geometry a raycast considers.
type Filter int

const (
	// FilterProjectile matches everything a grapple projectile can hit.
	FilterProjectile Filter = iota
)

type CollisionQuery interface {
	Raycast(from, to mgl64.Vec3, filter Filter) (Hit, bool)
}

// Projectile is the spawned hook. The callback registered with OnImpact is
// invoked at most once, on the authority's tick goroutine.
type Projectile interface {
	ID() uuid.UUID
	Position() mgl64.Vec3
	OnImpact(fn func(Hit))
	Destroy()
}

type Spawner interface {
	// SpawnProjectile returns nil when no projectile could be created.
	SpawnProjectile(origin, velocity mgl64.Vec3) Projectile
}

// Settings are session-level tunables, read every time they are needed.
type Settings interface {
	MaxCableLength() float64
	TearingDistance() float64
}

// StaticSettings is a fixed Settings value.
type StaticSettings struct {
	MaxLength float64
	Tearing   float64
}

func (s StaticSettings) MaxCableLength() float64  { return s.MaxLength }
func (s StaticSettings) TearingDistance() float64 { return s.Tearing }

// LengthRequest is one drained batch of extend/retract steps.
type LengthRequest struct {
	Seq   uint32
	Steps int32
	Dt    float64
}

// Link carries controller requests to the authority. Fire and Retract must
// be delivered; AdjustLength may be dropped.
type Link interface {
	Fire(source, aim mgl64.Vec3)
	Retract()
	AdjustLength(req LengthRequest)
}

// Replicator propagates authoritative results to observers.
type Replicator interface {
	PublishState(s State)
	PublishVelocity(v mgl64.Vec3)
}
