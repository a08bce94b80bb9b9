package core

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	ticks    uint64
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
	}
}

// Run ticks the server until ctx is done. Panics are reported to sentry
// before they propagate.
func (g *GameLoop) Run(ctx context.Context) error {
	defer sentry.Recover()

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.server.log.WithField("rate", g.tickRate).Info("game loop started")

	for {
		select {
		case <-ctx.Done():
			g.server.log.Info("game loop stopped")
			return nil
		case <-ticker.C:
			g.tick()
		}
	}
}

// Ticks returns the number of completed ticks.
func (g *GameLoop) Ticks() uint64 { return g.ticks }

func (g *GameLoop) tick() {
	s := g.server
	dt := 1 / float64(g.tickRate)

	s.ProcessCommands()
	s.updatePhysics()
	s.updateProjectiles()
	s.updateTools(dt)
	s.writeNetComponents()

	if err := srvsync.DoSync(); err != nil {
		s.log.WithError(err).Warn("sync error")
	}

	s.processEvents()
	g.ticks++
}
