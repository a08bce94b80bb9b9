package systems

import (
	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/leap-fish/necs/esync"
	"github.com/sirupsen/logrus"
)

// LogTetherEvents reports grapple events forwarded by the server. Events of
// the local player are already reported by its own tool.
func LogTetherEvents(log logrus.FieldLogger, localID esync.NetworkId, evts []messages.TetherEvent) {
	for _, e := range evts {
		if esync.NetworkId(e.OwnerNetworkID) == localID {
			continue
		}
		log.WithFields(logrus.Fields{
			"player": e.OwnerNetworkID,
			"event":  tether.EventKind(e.Kind),
			"ratio":  e.Ratio,
		}).Info("remote grapple")
	}
}

// LocalEventLogger returns a tool listener that logs local grapple events.
func LocalEventLogger(log logrus.FieldLogger) func(tether.Event) {
	return func(e tether.Event) {
		l := log.WithField("event", e.Kind)
		switch e.Kind {
		case tether.EventAttached:
			l = l.WithField("anchor", e.Anchor)
		case tether.EventLengthRatioChanged:
			l = l.WithField("ratio", e.Ratio)
		case tether.EventCableGravityChanged:
			l = l.WithField("gravity", e.GravityScale)
		case tether.EventAimReachableChanged:
			l = l.WithField("reachable", e.Reachable)
		}
		l.Info("grapple")
	}
}
