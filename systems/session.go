package systems

import (
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/yohamta/donburi"
)

// SessionSettings reads the replicated session entity at use time and
// falls back to Fallback until the first snapshot carries it.
type SessionSettings struct {
	World    donburi.World
	Fallback tether.Settings
}

var _ tether.Settings = SessionSettings{}

func (s SessionSettings) session() (*netcomponents.NetSessionData, bool) {
	entry, ok := netcomponents.NetSession.First(s.World)
	if !ok {
		return nil, false
	}
	return netcomponents.NetSession.Get(entry), true
}

func (s SessionSettings) MaxCableLength() float64 {
	if d, ok := s.session(); ok {
		return d.MaxCableLength
	}
	return s.Fallback.MaxCableLength()
}

func (s SessionSettings) TearingDistance() float64 {
	if d, ok := s.session(); ok {
		return d.TearingDistance
	}
	return s.Fallback.TearingDistance()
}
