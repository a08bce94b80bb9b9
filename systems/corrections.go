package systems

import (
	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// ApplyVelocityCorrections applies tension results pushed by the server to
// the matching shooters ahead of the next snapshot.
func ApplyVelocityCorrections(world donburi.World, corrections []messages.VelocityCorrection) {
	for _, c := range corrections {
		entity := esync.FindByNetworkId(world, esync.NetworkId(c.NetworkID))
		if !world.Valid(entity) {
			continue
		}
		setComponent(world.Entry(entity), netcomponents.NetVelocity, netcomponents.NetVelocityData{
			SpeedX: c.X,
			SpeedY: c.Y,
			SpeedZ: c.Z,
		})
	}
}
