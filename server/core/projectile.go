package core

import (
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/asgmods/grapplehook/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// projectile is a server-side grapple hook. It flies until its swept path
// meets a solid, then stays put until destroyed.
type projectile struct {
	id       uuid.UUID
	entity   donburi.Entity
	owner    *player
	pos      mgl64.Vec3
	vel      mgl64.Vec3
	impacted bool
	onImpact func(tether.Hit)
	server   *Server
}

func (p *projectile) ID() uuid.UUID { return p.id }

func (p *projectile) Position() mgl64.Vec3 { return p.pos }

func (p *projectile) OnImpact(fn func(tether.Hit)) { p.onImpact = fn }

// Destroy removes the projectile from the world. Safe to call twice.
func (p *projectile) Destroy() {
	s := p.server
	if _, ok := s.projectiles.Get(p.id); !ok {
		return
	}
	s.projectiles.Delete(p.id)
	if s.world.Valid(p.entity) {
		s.world.Remove(p.entity)
	}
}

// step advances the projectile by one physics sub-step.
func (p *projectile) step(dt, gravity float64) {
	if p.impacted {
		return
	}
	p.vel[1] += gravity * dt
	next := p.pos.Add(p.vel.Mul(dt))
	hit, ok := p.server.level.Raycast(p.pos, next, tether.FilterProjectile)
	if !ok {
		p.pos = next
		return
	}
	p.pos = hit.Position
	p.vel = mgl64.Vec3{}
	p.impacted = true
	if p.onImpact != nil {
		p.onImpact(hit)
	}
}

// projectileSpawner spawns hooks owned by one player.
type projectileSpawner struct {
	server *Server
	owner  *player
}

func (ps projectileSpawner) SpawnProjectile(origin, velocity mgl64.Vec3) tether.Projectile {
	s := ps.server
	entity := s.world.Create(netcomponents.NetProjectile, netcomponents.NetPosition, tags.Projectile)
	p := &projectile{
		id:     uuid.New(),
		entity: entity,
		owner:  ps.owner,
		pos:    origin,
		vel:    velocity,
		server: s,
	}
	p.writeNet()

	if err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition),
		netcomponents.NetProjectile,
	); err != nil {
		s.log.WithError(err).Warn("failed to sync projectile")
		s.world.Remove(entity)
		return nil
	}
	s.projectiles.Set(p.id, p)
	s.log.WithFields(logrus.Fields{
		"player":     ps.owner.netID,
		"projectile": p.id,
	}).Debug("projectile spawned")
	return p
}

func (p *projectile) writeNet() {
	entry := p.server.world.Entry(p.entity)
	netcomponents.NetPosition.Set(entry, &netcomponents.NetPositionData{X: p.pos[0], Y: p.pos[1], Z: p.pos[2]})
	netcomponents.NetProjectile.Set(entry, &netcomponents.NetProjectileData{
		X:              p.pos[0],
		Y:              p.pos[1],
		Z:              p.pos[2],
		VelX:           p.vel[0],
		VelY:           p.vel[1],
		VelZ:           p.vel[2],
		OwnerNetworkID: p.owner.netID,
		Attached:       p.impacted,
	})
}

// updateProjectiles runs sub-stepped flight for every live projectile.
// Impacts attach the owner's tether from inside the step.
func (s *Server) updateProjectiles() {
	steps, dt := s.substeps()
	for step := 0; step < steps; step++ {
		for el := s.projectiles.Front(); el != nil; {
			next := el.Next()
			el.Value.step(dt, s.cfg.Physics.ProjectileGravity)
			el = next
		}
	}
}
