package protocol

import (
	"fmt"

	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition   uint = 10
	SyncIDNetVelocity   uint = 11
	SyncIDNetShooter    uint = 12
	SyncIDNetProjectile uint = 13
	SyncIDNetTether     uint = 14
	SyncIDNetSession    uint = 15
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition   uint8 = 10
	InterpIDNetVelocity   uint8 = 11
	InterpIDNetProjectile uint8 = 13
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Register with interpolation for smooth client-side rendering
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return fmt.Errorf("register NetPosition: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return fmt.Errorf("register NetVelocity: %w", err)
	}

	// Shooter state: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetShooter,
		netcomponents.NetShooterData{},
		netcomponents.NetShooter,
	); err != nil {
		return fmt.Errorf("register NetShooter: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetProjectile,
		netcomponents.NetProjectileData{},
		netcomponents.NetProjectile,
		esync.WithInterpFn(InterpIDNetProjectile, netcomponents.LerpNetProjectile),
	); err != nil {
		return fmt.Errorf("register NetProjectile: %w", err)
	}

	// Tether state is authoritative and diffed on arrival, never interpolated.
	if err := esync.RegisterComponent(
		SyncIDNetTether,
		netcomponents.NetTetherData{},
		netcomponents.NetTether,
	); err != nil {
		return fmt.Errorf("register NetTether: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetSession,
		netcomponents.NetSessionData{},
		netcomponents.NetSession,
	); err != nil {
		return fmt.Errorf("register NetSession: %w", err)
	}

	return nil
}
