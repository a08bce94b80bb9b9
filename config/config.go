package config

import (
	"github.com/asgmods/grapplehook/shared/netconfig"
	"github.com/asgmods/grapplehook/shared/tether"
)

// SessionConfig holds the session-level tether settings every participant
// reads at use time.
type SessionConfig struct {
	MaxCableLength  float64
	TearingDistance float64
}

// PhysicsConfig holds shooter movement values in world units and seconds.
type PhysicsConfig struct {
	Gravity         float64 // units/s²
	JumpSpeed       float64 // units/s
	MaxRunSpeed     float64 // input acceleration stops at this speed
	Acceleration    float64 // units/s²
	AirAcceleration float64
	Friction        float64 // units/s², ground only
	MaxFallSpeed    float64

	// Shooter body, in world units
	CollisionWidth  float64
	CollisionHeight float64

	// Projectile gravity in units/s²; 0 flies straight
	ProjectileGravity float64
	ProjectileSize    float64
}

// WorldConfig maps level files onto world units.
type WorldConfig struct {
	// UnitScale converts TMX pixels to world units.
	UnitScale float64
	CellSize  int
}

// ServerConfig holds the dedicated server's runtime settings.
type ServerConfig struct {
	Port         int
	TickRate     int
	Level        string
	AssetsDir    string
	Name         string
	MaxPlayers   int
	CommandQueue int
	// MaxSourceDrift bounds how far a client-reported fire source may be
	// from the server's shooter before the server substitutes its own.
	MaxSourceDrift float64
	LogLevel       string
	SentryDSN      string
	StatsviewAddr  string
}

var (
	Tether  tether.Tuning
	Session SessionConfig
	Physics PhysicsConfig
	World   WorldConfig
	Server  ServerConfig
)

func init() {
	Tether = tether.DefaultTuning()

	Session = SessionConfig{
		MaxCableLength:  6000,
		TearingDistance: 1500,
	}

	// Derived from the 60 Hz pixel values the movement was first tuned
	// with, scaled by UnitScale and the frame rate.
	Physics = PhysicsConfig{
		Gravity:           2700,
		JumpSpeed:         1600,
		MaxRunSpeed:       900,
		Acceleration:      4500,
		AirAcceleration:   2250,
		Friction:          3600,
		MaxFallSpeed:      4000,
		CollisionWidth:    100,
		CollisionHeight:   250,
		ProjectileGravity: 0,
		ProjectileSize:    20,
	}

	World = WorldConfig{
		UnitScale: 6.25, // 16px tile = 100 units
		CellSize:  100,
	}

	Server = ServerConfig{
		Port:           7373,
		TickRate:       netconfig.TickRateDefault,
		Level:          "quarry",
		AssetsDir:      "assets",
		Name:           "grapplehook",
		MaxPlayers:     8,
		CommandQueue:   256,
		MaxSourceDrift: 300,
		LogLevel:       "info",
	}
}
