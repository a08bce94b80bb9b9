package network

import (
	"io"
	"testing"

	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/esync"
	"github.com/sirupsen/logrus"
)

func newTestClient() *Client {
	lg := logrus.New()
	lg.Out = io.Discard
	return NewClient(lg)
}

func TestSendWithoutConnection(t *testing.T) {
	c := newTestClient()
	if err := c.SendMessage(messages.RetractRequest{}); err == nil {
		t.Fatal("expected error without a connection")
	}
	// Link methods log instead of failing.
	c.Fire(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0})
}

func TestLatestSnapshotWins(t *testing.T) {
	c := newTestClient()
	if c.LatestSnapshot() != nil {
		t.Fatal("expected no snapshot")
	}
	c.pushSnapshot(esync.WorldSnapshot{})
	c.pushSnapshot(esync.WorldSnapshot{})
	if c.LatestSnapshot() == nil {
		t.Fatal("expected a snapshot")
	}
	if c.LatestSnapshot() != nil {
		t.Fatal("snapshot channel must hold only the latest")
	}
}

func TestJoinAcceptedCarriesSession(t *testing.T) {
	c := newTestClient()
	c.handleJoinAccepted(messages.JoinAccepted{
		NetworkID:       7,
		Level:           "quarry",
		TickRate:        30,
		MaxCableLength:  5000,
		TearingDistance: 900,
	})
	if c.State() != StateJoinedGame || c.NetworkID() != 7 || c.Level() != "quarry" {
		t.Fatalf("state = %v id = %v level = %q", c.State(), c.NetworkID(), c.Level())
	}
	if c.MaxCableLength() != 5000 || c.TearingDistance() != 900 {
		t.Fatal("session settings not stored")
	}
}

func TestDrainChan(t *testing.T) {
	c := newTestClient()
	c.correctionCh <- messages.VelocityCorrection{NetworkID: 1}
	c.correctionCh <- messages.VelocityCorrection{NetworkID: 2}
	got := c.DrainCorrections()
	if len(got) != 2 || got[1].NetworkID != 2 {
		t.Fatalf("drained %+v", got)
	}
	if len(c.DrainCorrections()) != 0 {
		t.Fatal("second drain must be empty")
	}
}

func TestPredictionBuffer(t *testing.T) {
	var pb PredictionBuffer
	if pb.NextSeq() != 1 {
		t.Fatalf("first seq = %d", pb.NextSeq())
	}
	for seq := uint32(1); seq <= 4; seq++ {
		pb.Store(messages.NewPlayerInput(seq), mgl64.Vec3{float64(seq) * 100, 0, 0})
	}
	if got := pb.Unacknowledged(2); len(got) != 2 || got[0].Input.Sequence != 3 {
		t.Fatalf("unacknowledged = %+v", got)
	}
	if got := pb.PredictionError(2, mgl64.Vec3{200, 30, 40}); got != 50 {
		t.Fatalf("prediction error = %v, want 50", got)
	}
	if got := pb.PredictionError(99, mgl64.Vec3{}); got != 0 {
		t.Fatalf("unknown seq error = %v", got)
	}
}
