package systems

import (
	"time"

	"github.com/asgmods/grapplehook/components"
	"github.com/asgmods/grapplehook/network"
	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/asgmods/grapplehook/shared/netconfig"
	"github.com/asgmods/grapplehook/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

const resendInterval = 50 * time.Millisecond

// driftWarning is the prediction error, in world units, worth logging.
const driftWarning = 200

// InputSender sends the local shooter's movement input to the server when
// it changes, and at least every resendInterval.
type InputSender struct {
	Send func(any) error
	Log  logrus.FieldLogger

	buffer        network.PredictionBuffer
	lastDirection int
	lastAim       [2]float64
	lastActions   [netconfig.ActionCount]bool
	lastSendTime  time.Time
}

func (s *InputSender) Update(world donburi.World, now time.Time) {
	entry, ok := tags.Local.First(world)
	if !ok || !entry.HasComponent(components.Input) {
		return
	}
	in := components.Input.Get(entry)

	s.checkDrift(entry)

	changed := in.Direction != s.lastDirection || s.lastAim != [2]float64{in.AimX, in.AimY}
	for action := range in.Actions {
		if in.Actions[action].Pressed != s.lastActions[action] {
			changed = true
			break
		}
	}
	if !changed && now.Sub(s.lastSendTime) < resendInterval {
		return
	}

	msg := messages.NewPlayerInput(s.buffer.NextSeq())
	msg.Direction = in.Direction
	msg.AimX, msg.AimY = in.AimX, in.AimY
	msg.Timestamp = now.UnixMilli()
	for action := range in.Actions {
		pressed := in.Actions[action].Pressed
		s.lastActions[action] = pressed
		if pressed {
			msg.Actions[netconfig.ActionID(action)] = true
		}
	}
	s.lastDirection = in.Direction
	s.lastAim = [2]float64{in.AimX, in.AimY}
	s.lastSendTime = now

	var pos netcomponents.NetPositionData
	if entry.HasComponent(netcomponents.NetPosition) {
		pos = *netcomponents.NetPosition.Get(entry)
	}
	s.buffer.Store(msg, pos.Vec3())

	if err := s.Send(msg); err != nil {
		s.Log.WithError(err).Debug("input send failed")
	}
}

// checkDrift compares the server's acknowledged position with what the
// client saw when it sent that input.
func (s *InputSender) checkDrift(entry *donburi.Entry) {
	if !entry.HasComponent(netcomponents.NetShooter) || !entry.HasComponent(netcomponents.NetPosition) {
		return
	}
	acked := netcomponents.NetShooter.Get(entry).LastSequence
	if acked == 0 {
		return
	}
	if drift := s.buffer.PredictionError(acked, netcomponents.NetPosition.Get(entry).Vec3()); drift > driftWarning {
		s.Log.WithFields(logrus.Fields{"seq": acked, "drift": drift}).Debug("position drift")
	}
}
