package tether_test

import (
	"testing"

	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/asgmods/grapplehook/shared/tether/mocks"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newControllerTool(t *testing.T) (*tether.Tool, *mocks.MockLink, *fakeShooter) {
	ctrl := gomock.NewController(t)
	link := mocks.NewMockLink(ctrl)
	shooter := newFakeShooter()
	tool := tether.NewTool(tether.Options{
		Role:     tether.RoleController,
		Settings: defaultSettings,
		Shooter:  shooter,
		Link:     link,
	})
	return tool, link, shooter
}

func TestControllerToggleFireSendsFireThenRetract(t *testing.T) {
	tool, link, shooter := newControllerTool(t)
	shooter.pos = mgl64.Vec3{10, 20, 0}
	shooter.aim = mgl64.Vec3{0, -1, 0}

	link.EXPECT().Fire(mgl64.Vec3{10, 20, 0}, mgl64.Vec3{0, -1, 0}).Times(1)
	tool.ToggleFire()

	// Nothing changes locally until the authority's state arrives.
	if tool.Phase() != tether.PhaseIdle {
		t.Fatalf("phase = %v, want idle before mirror update", tool.Phase())
	}

	tool.ApplyState(tether.State{Projectile: uuid.New(), Anchor: mgl64.Vec3{10, -200, 0}})

	link.EXPECT().Retract().Times(1)
	tool.ToggleFire()
}

func TestControllerDrainsPendingOncePerTick(t *testing.T) {
	tool, link, _ := newControllerTool(t)
	tool.ApplyState(tether.State{Projectile: uuid.New(), Attached: true, DesiredLength: 1000, Anchor: mgl64.Vec3{1000, 0, 0}})

	tool.RetractCable()
	tool.RetractCable()
	tool.ExtendCable()

	link.EXPECT().AdjustLength(tether.LengthRequest{Seq: 1, Steps: -1, Dt: 0.5}).Times(1)
	tool.Tick(0.5)
	tool.Tick(0.5)

	if tool.PendingSteps() != 0 {
		t.Fatalf("pending = %d, want 0", tool.PendingSteps())
	}

	tool.ExtendCable()
	link.EXPECT().AdjustLength(tether.LengthRequest{Seq: 2, Steps: 1, Dt: 0.25}).Times(1)
	tool.Tick(0.25)
}

func TestControllerPredictsUnacknowledgedLength(t *testing.T) {
	tool, link, _ := newControllerTool(t)
	id := uuid.New()
	tool.ApplyState(tether.State{Projectile: id, Attached: true, DesiredLength: 1000, Anchor: mgl64.Vec3{1000, 0, 0}})
	link.EXPECT().AdjustLength(gomock.Any()).Times(1)

	tool.ExtendCable()
	tool.Tick(0.2)

	if got := tool.PredictedDesiredLength(); got != 1100 {
		t.Fatalf("predicted = %v, want 1100", got)
	}
	if got := tool.DesiredLength(); got != 1000 {
		t.Fatalf("mirrored desired = %v, want authoritative 1000", got)
	}

	tool.ApplyState(tether.State{Projectile: id, Attached: true, DesiredLength: 1100, Anchor: mgl64.Vec3{1000, 0, 0}, LengthSeq: 1})
	if got := tool.PredictedDesiredLength(); got != 1100 {
		t.Fatalf("predicted after ack = %v, want 1100", got)
	}
}

func TestControllerLocalRetractThenMirrorFiresOnce(t *testing.T) {
	tool, link, _ := newControllerTool(t)
	log := &eventLog{}
	tool.Subscribe(log.record)

	link.EXPECT().Fire(gomock.Any(), gomock.Any())
	tool.ToggleFire()
	id := uuid.New()
	tool.ApplyState(tether.State{Projectile: id, Anchor: mgl64.Vec3{300, 0, 0}})

	link.EXPECT().Retract()
	tool.ToggleFire()
	tool.ApplyState(tether.State{})

	if n := log.count(tether.EventFinishedRetracting); n != 1 {
		t.Fatalf("finished retracting = %d, want 1", n)
	}
}

func TestControllerDropsPendingWhenAbandoned(t *testing.T) {
	tool, _, _ := newControllerTool(t)
	tool.ApplyState(tether.State{Projectile: uuid.New(), Attached: true, DesiredLength: 1000, Anchor: mgl64.Vec3{1000, 0, 0}})
	tool.ExtendCable()

	tool.ApplyState(tether.State{})

	if tool.PendingSteps() != 0 {
		t.Fatalf("pending = %d, want 0 after the tether went idle", tool.PendingSteps())
	}
}

func TestControllerPredictTension(t *testing.T) {
	ctrl := gomock.NewController(t)
	shooter := mocks.NewMockShooter(ctrl)
	tool := tether.NewTool(tether.Options{
		Role:           tether.RoleController,
		Settings:       defaultSettings,
		Shooter:        shooter,
		Link:           mocks.NewMockLink(ctrl),
		PredictTension: true,
	})

	shooter.EXPECT().Position().Return(mgl64.Vec3{}).AnyTimes()
	shooter.EXPECT().AimDirection().Return(mgl64.Vec3{1, 0, 0}).AnyTimes()
	shooter.EXPECT().Velocity().Return(mgl64.Vec3{-100, 0, 0}).AnyTimes()
	shooter.EXPECT().Grounded().Return(true).AnyTimes()
	shooter.EXPECT().FloorNormal().Return(mgl64.Vec3{0, -1, 0}).AnyTimes()
	shooter.EXPECT().SetVelocity(mgl64.Vec3{0, 0, 0}).Times(1)

	tool.ApplyState(tether.State{Projectile: uuid.New(), Attached: true, DesiredLength: 1000, Anchor: mgl64.Vec3{1000, 0, 0}})
	tool.Tick(0.1)
}
