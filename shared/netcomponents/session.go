package netcomponents

import "github.com/yohamta/donburi"

// NetSessionData carries session-level settings to clients. It lives on a
// single world entity.
type NetSessionData struct {
	MaxCableLength  float64
	TearingDistance float64
	TickRate        int
}

var NetSession = donburi.NewComponentType[NetSessionData]()
