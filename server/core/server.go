package core

import (
	"context"
	"fmt"
	"sync/atomic"

	cfg "github.com/asgmods/grapplehook/config"
	"github.com/asgmods/grapplehook/shared/collision"
	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/asgmods/grapplehook/tags"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/google/uuid"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// Config holds the server's runtime settings.
type Config struct {
	Port           uint
	TickRate       int
	Name           string
	MaxPlayers     int
	CommandQueue   int
	MaxSourceDrift float64
	Tuning         tether.Tuning
	Settings       tether.Settings
	Physics        cfg.PhysicsConfig
}

// peer is the server's view of a connected client.
type peer interface {
	Id() string
	SendMessage(msg any) error
}

// Server manages the game state and client connections. Everything except
// the router callbacks runs on the game loop goroutine.
type Server struct {
	cfg   Config
	log   logrus.FieldLogger
	world donburi.World
	loop  *GameLoop
	level *collision.Level

	commands chan command
	done     chan struct{}

	// Join order is tick order.
	players     *orderedmap.OrderedMap[peer, *player]
	projectiles *orderedmap.OrderedMap[uuid.UUID, *projectile]
	session     donburi.Entity
	nextSpawn   int
	playerCount atomic.Int32
}

// NewServer creates a new game server on level.
func NewServer(conf Config, level *collision.Level, log logrus.FieldLogger) *Server {
	if conf.TickRate <= 0 {
		conf.TickRate = 30
	}
	if conf.CommandQueue <= 0 {
		conf.CommandQueue = 256
	}
	if conf.MaxPlayers <= 0 {
		conf.MaxPlayers = 8
	}
	if conf.Settings == nil {
		conf.Settings = tether.StaticSettings{MaxLength: 6000, Tearing: 1500}
	}
	if conf.Physics == (cfg.PhysicsConfig{}) {
		conf.Physics = cfg.Physics
	}
	if conf.MaxSourceDrift <= 0 {
		conf.MaxSourceDrift = 300
	}
	if conf.Tuning == (tether.Tuning{}) {
		conf.Tuning = tether.DefaultTuning()
	}

	world := donburi.NewWorld()
	s := &Server{
		cfg:         conf,
		log:         log,
		world:       world,
		level:       level,
		commands:    make(chan command, conf.CommandQueue),
		done:        make(chan struct{}),
		players:     orderedmap.NewOrderedMap[peer, *player](),
		projectiles: orderedmap.NewOrderedMap[uuid.UUID, *projectile](),
	}
	s.loop = NewGameLoop(s, conf.TickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)
	s.createSession()
	s.subscribeTetherEvents()

	return s
}

// Start registers the router callbacks and serves websocket clients until
// ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.setupRouterCallbacks()

	transport := transports.NewWsServerTransport(s.cfg.Port, "", nil)
	errCh := make(chan error, 1)
	go func() {
		errCh <- transport.Start()
	}()
	s.log.WithField("port", s.cfg.Port).Info("listening")

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("websocket transport: %w", err)
		}
		return nil
	}
}

// Loop returns the game loop driving this server.
func (s *Server) Loop() *GameLoop { return s.loop }

// Stop releases router callbacks blocked on the command queue.
func (s *Server) Stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.log.WithField("client", client.Id()).Info("client connected")
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		l := s.log.WithField("client", client.Id())
		if err != nil {
			l = l.WithError(err)
		}
		l.Info("client disconnected")
		s.enqueueReliable(command{kind: cmdLeave, peer: client})
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.enqueueReliable(command{kind: cmdJoin, peer: client, join: req})
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.enqueueBestEffort(command{kind: cmdInput, peer: client, input: input})
	})

	router.On(func(client *router.NetworkClient, req messages.FireRequest) {
		s.enqueueReliable(command{kind: cmdFire, peer: client, fire: req})
	})

	router.On(func(client *router.NetworkClient, _ messages.RetractRequest) {
		s.enqueueReliable(command{kind: cmdRetract, peer: client})
	})

	router.On(func(client *router.NetworkClient, req messages.LengthAdjustRequest) {
		s.enqueueBestEffort(command{kind: cmdLength, peer: client, length: req})
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.log.WithField("client", client.Id()).WithError(err).Warn("client error")
	})
}

func (s *Server) createSession() {
	s.session = s.world.Create(netcomponents.NetSession, tags.Session)
	s.writeSession()
	if err := srvsync.NetworkSync(s.world, &s.session, netcomponents.NetSession); err != nil {
		s.log.WithError(err).Warn("failed to sync session")
	}
}

// writeSession refreshes the replicated session settings; they are read at
// use time and may change between ticks.
func (s *Server) writeSession() {
	netcomponents.NetSession.Set(s.world.Entry(s.session), &netcomponents.NetSessionData{
		MaxCableLength:  s.cfg.Settings.MaxCableLength(),
		TearingDistance: s.cfg.Settings.TearingDistance(),
		TickRate:        s.cfg.TickRate,
	})
}

// send delivers msg to one client, logging failures.
func (s *Server) send(p peer, msg any) {
	if err := p.SendMessage(msg); err != nil {
		s.log.WithField("client", p.Id()).WithError(err).Warn("send failed")
	}
}

// broadcast sends msg to every joined player.
func (s *Server) broadcast(msg any) {
	for el := s.players.Front(); el != nil; el = el.Next() {
		s.send(el.Key, msg)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of joined players. Safe from any goroutine.
func (s *Server) PlayerCount() int {
	return int(s.playerCount.Load())
}
