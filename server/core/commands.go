package core

import (
	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/sirupsen/logrus"
)

type commandKind int

const (
	cmdJoin commandKind = iota
	cmdLeave
	cmdInput
	cmdFire
	cmdRetract
	cmdLength
)

// command is a client message handed from a router goroutine to the game
// loop.
type command struct {
	kind   commandKind
	peer   peer
	join   messages.JoinRequest
	input  messages.PlayerInput
	fire   messages.FireRequest
	length messages.LengthAdjustRequest
}

// enqueueReliable blocks until the loop has room. Join, leave, fire and
// retract must never be lost.
func (s *Server) enqueueReliable(cmd command) {
	select {
	case s.commands <- cmd:
	case <-s.done:
	}
}

// enqueueBestEffort drops cmd when the queue is full.
func (s *Server) enqueueBestEffort(cmd command) {
	select {
	case s.commands <- cmd:
	default:
		s.log.WithField("client", cmd.peer.Id()).Debug("command queue full, dropped")
	}
}

// ProcessCommands drains every queued command. Called once per tick.
func (s *Server) ProcessCommands() {
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *Server) apply(cmd command) {
	if cmd.kind == cmdJoin {
		s.join(cmd.peer, cmd.join)
		return
	}
	p, ok := s.players.Get(cmd.peer)
	if !ok {
		return
	}
	switch cmd.kind {
	case cmdLeave:
		s.leave(p)
	case cmdInput:
		p.body.applyInput(cmd.input)
	case cmdFire:
		source := mgl64.Vec3{cmd.fire.SourceX, cmd.fire.SourceY, cmd.fire.SourceZ}
		aim := mgl64.Vec3{cmd.fire.AimX, cmd.fire.AimY, cmd.fire.AimZ}
		if !gamemath.IsFinite(source) || !gamemath.IsFinite(aim) {
			s.log.WithField("player", p.netID).Warn("fire request with non-finite values, dropped")
			return
		}
		if drift := source.Sub(p.body.Position()).Len(); !(drift <= s.cfg.MaxSourceDrift) {
			source = p.body.Position()
		}
		p.tool.HandleFire(source, aim)
	case cmdRetract:
		p.tool.HandleRetract()
	case cmdLength:
		p.reeling = cmd.length.Steps < 0
		p.tool.HandleAdjustLength(tether.LengthRequest{
			Seq:   cmd.length.Seq,
			Steps: cmd.length.Steps,
			Dt:    cmd.length.Dt,
		})
	}
}

func (s *Server) join(pr peer, req messages.JoinRequest) {
	if _, exists := s.players.Get(pr); exists {
		return
	}
	if s.players.Len() >= s.cfg.MaxPlayers {
		s.send(pr, messages.JoinRejected{Reason: "server full"})
		return
	}

	p, err := s.spawnPlayer(pr, req.PlayerName)
	if err != nil {
		s.log.WithField("client", pr.Id()).WithError(err).Warn("join failed")
		s.send(pr, messages.JoinRejected{Reason: "spawn failed"})
		return
	}
	s.players.Set(pr, p)
	s.playerCount.Store(int32(s.players.Len()))

	s.send(pr, messages.JoinAccepted{
		NetworkID:       esync.NetworkId(p.netID),
		ServerName:      s.cfg.Name,
		Level:           s.level.Name,
		TickRate:        s.cfg.TickRate,
		MaxCableLength:  s.cfg.Settings.MaxCableLength(),
		TearingDistance: s.cfg.Settings.TearingDistance(),
	})
	s.log.WithFields(logrus.Fields{"client": pr.Id(), "player": p.netID, "name": p.name}).Info("player joined")
}

func (s *Server) leave(p *player) {
	p.tool.Unequip()
	p.cancelEvents()
	s.level.Space.Remove(p.body.Object)
	if s.world.Valid(p.entity) {
		s.world.Remove(p.entity)
	}
	s.players.Delete(p.peer)
	s.playerCount.Store(int32(s.players.Len()))
	s.log.WithField("player", p.netID).Info("player left")
}
