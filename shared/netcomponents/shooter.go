package netcomponents

import (
	"github.com/asgmods/grapplehook/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetShooterData struct {
	StateID      netconfig.StateID
	Direction    int // -1 left, 1 right
	Grounded     bool
	AimX, AimY   float64
	LastSequence uint32 // Last input sequence processed by the server
	IsLocal      bool   // Client-side only, not synced
}

var NetShooter = donburi.NewComponentType[NetShooterData]()
