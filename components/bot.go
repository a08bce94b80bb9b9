package components

import (
	cfg "github.com/asgmods/grapplehook/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BotPhase is a step of the scripted grapple routine.
type BotPhase int

const (
	BotPhaseAim BotPhase = iota
	BotPhaseWaitAttach
	BotPhaseReelIn
	BotPhaseReelOut
	BotPhaseHold
	BotPhaseRelease
	BotPhaseCooldown
)

func (p BotPhase) String() string {
	switch p {
	case BotPhaseAim:
		return "aim"
	case BotPhaseWaitAttach:
		return "wait_attach"
	case BotPhaseReelIn:
		return "reel_in"
	case BotPhaseReelOut:
		return "reel_out"
	case BotPhaseHold:
		return "hold"
	case BotPhaseRelease:
		return "release"
	case BotPhaseCooldown:
		return "cooldown"
	}
	return "unknown"
}

// BotData drives the local shooter without a human.
type BotData struct {
	Style      cfg.BotStyle
	Phase      BotPhase
	PhaseTicks int
	Aim        mgl64.Vec3
	Direction  int
	Cycles     int
}

var Bot = donburi.NewComponentType[BotData]()

// Enter switches to phase p and restarts its tick count.
func (b *BotData) Enter(p BotPhase) {
	b.Phase = p
	b.PhaseTicks = 0
}
