package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/coder/websocket"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sirupsen/logrus"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

// sender writes one serialized message to the server.
type sender func(payload []byte) error

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu  sync.RWMutex
	log logrus.FieldLogger

	state           ClientState
	lastError       error
	networkID       esync.NetworkId
	serverName      string
	tickRate        int
	level           string
	maxCableLength  float64
	tearingDistance float64
	send            sender

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	correctionCh chan messages.VelocityCorrection
	eventCh      chan messages.TetherEvent
}

var _ tether.Link = (*Client)(nil)

func NewClient(log logrus.FieldLogger) *Client {
	return &Client{
		log:          log,
		state:        StateDisconnected,
		snapshotCh:   make(chan esync.WorldSnapshot, 1),
		correctionCh: make(chan messages.VelocityCorrection, 16),
		eventCh:      make(chan messages.TetherEvent, 32),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		c.log.Info("connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
		}); err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		c.handleJoinAccepted(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		c.log.WithField("reason", msg.Reason).Warn("join rejected")
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		c.pushSnapshot(snapshot)
	})

	router.On(func(_ *router.NetworkClient, msg messages.VelocityCorrection) {
		select {
		case c.correctionCh <- msg:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, evt messages.TetherEvent) {
		select {
		case c.eventCh <- evt:
		default:
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		c.log.WithError(err).Info("disconnected")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.send = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		c.log.WithError(err).Warn("router error")
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.send = func(payload []byte) error {
				return conn.Write(context.Background(), websocket.MessageBinary, payload)
			}
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) handleJoinAccepted(msg messages.JoinAccepted) {
	c.log.WithFields(logrus.Fields{
		"network_id": msg.NetworkID,
		"server":     msg.ServerName,
		"level":      msg.Level,
		"tickrate":   msg.TickRate,
	}).Info("join accepted")
	c.mu.Lock()
	c.networkID = msg.NetworkID
	c.serverName = msg.ServerName
	c.tickRate = msg.TickRate
	c.level = msg.Level
	c.maxCableLength = msg.MaxCableLength
	c.tearingDistance = msg.TearingDistance
	c.state = StateJoinedGame
	c.mu.Unlock()
}

func (c *Client) pushSnapshot(snapshot esync.WorldSnapshot) {
	select { // drain stale, push latest
	case <-c.snapshotCh:
	default:
	}
	c.snapshotCh <- snapshot
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	c.state = StateDisconnected
	c.send = nil
	c.mu.Unlock()

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

func (c *Client) Level() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// MaxCableLength and TearingDistance make the client a tether.Settings
// until the replicated session entity arrives.
func (c *Client) MaxCableLength() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxCableLength
}

func (c *Client) TearingDistance() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tearingDistance
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// DrainCorrections returns all pending velocity corrections, non-blocking.
func (c *Client) DrainCorrections() []messages.VelocityCorrection {
	return drainChan(c.correctionCh)
}

// DrainTetherEvents returns all pending tether events, non-blocking.
func (c *Client) DrainTetherEvents() []messages.TetherEvent {
	return drainChan(c.eventCh)
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	send := c.send
	c.mu.RUnlock()

	if send == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return send(payload)
}

// Fire, Retract and AdjustLength implement tether.Link over the connection.
func (c *Client) Fire(source, aim mgl64.Vec3) {
	c.sendOrLog(messages.FireRequest{
		SourceX: source[0], SourceY: source[1], SourceZ: source[2],
		AimX: aim[0], AimY: aim[1], AimZ: aim[2],
	})
}

func (c *Client) Retract() {
	c.sendOrLog(messages.RetractRequest{})
}

func (c *Client) AdjustLength(req tether.LengthRequest) {
	c.sendOrLog(messages.LengthAdjustRequest{Seq: req.Seq, Steps: req.Steps, Dt: req.Dt})
}

func (c *Client) sendOrLog(msg any) {
	if err := c.SendMessage(msg); err != nil {
		c.log.WithError(err).WithField("message", fmt.Sprintf("%T", msg)).Warn("send failed")
	}
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}
