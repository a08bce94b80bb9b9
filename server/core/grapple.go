package core

import (
	"fmt"

	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/asgmods/grapplehook/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// player is one joined client: its entity, body and grapple.
type player struct {
	peer         peer
	name         string
	entity       donburi.Entity
	netID        uint
	body         *shooterBody
	tool         *tether.Tool
	cancelEvents func()
	reeling      bool
}

// tetherEvent is a tool event tagged with its owner, queued on the world.
type tetherEvent struct {
	Owner uint
	Event tether.Event
}

var tetherEvents = events.NewEventType[tetherEvent]()

func (s *Server) spawnPlayer(pr peer, name string) (*player, error) {
	spawn := s.level.SpawnPoint(s.nextSpawn)
	s.nextSpawn++

	entity := s.world.Create(
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetShooter,
		netcomponents.NetTether,
		tags.Shooter,
	)
	if err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetShooter,
		netcomponents.NetTether,
	); err != nil {
		s.world.Remove(entity)
		return nil, fmt.Errorf("network sync: %w", err)
	}

	p := &player{
		peer:   pr,
		name:   name,
		entity: entity,
		body:   newShooterBody(s.level.Space, spawn, s.cfg.Physics.CollisionWidth, s.cfg.Physics.CollisionHeight),
	}
	if nid := esync.GetNetworkId(s.world.Entry(entity)); nid != nil {
		p.netID = uint(*nid)
	}

	p.tool = tether.NewTool(tether.Options{
		Role:       tether.RoleAuthority,
		Tuning:     s.cfg.Tuning,
		Settings:   s.cfg.Settings,
		Shooter:    p.body,
		Collision:  s.level,
		Spawner:    projectileSpawner{server: s, owner: p},
		Replicator: replicator{server: s, owner: p},
		Logger:     s.log.WithField("player", p.netID),
	})
	p.cancelEvents = p.tool.Subscribe(func(e tether.Event) {
		tetherEvents.Publish(s.world, tetherEvent{Owner: p.netID, Event: e})
	})

	s.writePlayer(p)
	return p, nil
}

// replicator publishes one player's authoritative tether.
type replicator struct {
	server *Server
	owner  *player
}

func (r replicator) PublishState(st tether.State) {
	w := r.server.world
	if !w.Valid(r.owner.entity) {
		return
	}
	visual := 0.0
	if r.owner.tool != nil {
		visual = r.owner.tool.VisualLength()
	}
	data := netcomponents.NetTetherFrom(st, visual)
	netcomponents.NetTether.Set(w.Entry(r.owner.entity), &data)
}

func (r replicator) PublishVelocity(v mgl64.Vec3) {
	r.server.broadcast(messages.VelocityCorrection{
		NetworkID: r.owner.netID,
		X:         v[0],
		Y:         v[1],
		Z:         v[2],
	})
}

// updateTools ticks every grapple in join order.
func (s *Server) updateTools(dt float64) {
	for el := s.players.Front(); el != nil; el = el.Next() {
		el.Value.tool.Tick(dt)
	}
}

// writeNetComponents copies server state into the replicated components.
func (s *Server) writeNetComponents() {
	s.writeSession()
	for el := s.players.Front(); el != nil; el = el.Next() {
		s.writePlayer(el.Value)
		el.Value.reeling = false
	}
	for el := s.projectiles.Front(); el != nil; el = el.Next() {
		el.Value.writeNet()
	}
}

func (s *Server) writePlayer(p *player) {
	if !s.world.Valid(p.entity) {
		return
	}
	entry := s.world.Entry(p.entity)
	pos := netcomponents.NetPositionFrom(p.body.Position())
	vel := netcomponents.NetVelocityFrom(p.body.vel)
	netcomponents.NetPosition.Set(entry, &pos)
	netcomponents.NetVelocity.Set(entry, &vel)
	netcomponents.NetShooter.Set(entry, &netcomponents.NetShooterData{
		StateID:      deriveState(p),
		Direction:    p.body.facing,
		Grounded:     p.body.onGround,
		AimX:         p.body.aim[0],
		AimY:         p.body.aim[1],
		LastSequence: p.body.lastInputSeq,
	})
	td := netcomponents.NetTetherFrom(p.tool.State(), p.tool.VisualLength())
	netcomponents.NetTether.Set(entry, &td)
}

// subscribeTetherEvents logs grapple events and forwards them to clients.
// Events queue on the world during the tick and are handled once after
// sync.
func (s *Server) subscribeTetherEvents() {
	tetherEvents.Subscribe(s.world, func(_ donburi.World, te tetherEvent) {
		e := te.Event
		s.log.WithFields(logrus.Fields{
			"player": te.Owner,
			"event":  e.Kind,
		}).Debug("grapple event")
		s.broadcast(messages.TetherEvent{
			OwnerNetworkID: te.Owner,
			Kind:           int(e.Kind),
			Ratio:          e.Ratio,
			AnchorX:        e.Anchor[0],
			AnchorY:        e.Anchor[1],
			AnchorZ:        e.Anchor[2],
		})
	})
}

func (s *Server) processEvents() {
	events.ProcessAllEvents(s.world)
}
