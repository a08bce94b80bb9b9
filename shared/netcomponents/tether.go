package netcomponents

import (
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// NetTetherData is the replicated tether of the player entity it is
// attached to.
type NetTetherData struct {
	Projectile                uuid.UUID
	Attached                  bool
	DesiredLength             float64
	AnchorX, AnchorY, AnchorZ float64
	LengthSeq                 uint32
	VisualLength              float64
}

var NetTether = donburi.NewComponentType[NetTetherData]()

func (d NetTetherData) State() tether.State {
	return tether.State{
		Projectile:    d.Projectile,
		Attached:      d.Attached,
		DesiredLength: d.DesiredLength,
		Anchor:        mgl64.Vec3{d.AnchorX, d.AnchorY, d.AnchorZ},
		LengthSeq:     d.LengthSeq,
	}
}

func NetTetherFrom(s tether.State, visualLength float64) NetTetherData {
	return NetTetherData{
		Projectile:    s.Projectile,
		Attached:      s.Attached,
		DesiredLength: s.DesiredLength,
		AnchorX:       s.Anchor[0],
		AnchorY:       s.Anchor[1],
		AnchorZ:       s.Anchor[2],
		LengthSeq:     s.LengthSeq,
		VisualLength:  visualLength,
	}
}
