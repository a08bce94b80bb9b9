package config

import "github.com/asgmods/grapplehook/shared/tether"

// SessionSettings reads the global Session config at use time, so a changed
// value takes effect on the next tick.
type SessionSettings struct{}

var _ tether.Settings = SessionSettings{}

func (SessionSettings) MaxCableLength() float64  { return Session.MaxCableLength }
func (SessionSettings) TearingDistance() float64 { return Session.TearingDistance }
