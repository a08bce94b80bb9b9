package systems

import (
	"testing"

	"github.com/asgmods/grapplehook/components"
	cfg "github.com/asgmods/grapplehook/config"
	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/asgmods/grapplehook/shared/netconfig"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/asgmods/grapplehook/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

type recordingLink struct {
	fires    int
	retracts int
	lengths  []tether.LengthRequest
}

func (l *recordingLink) Fire(_, _ mgl64.Vec3)                 { l.fires++ }
func (l *recordingLink) Retract()                             { l.retracts++ }
func (l *recordingLink) AdjustLength(req tether.LengthRequest) { l.lengths = append(l.lengths, req) }

func countShooters(world donburi.World) int {
	n := 0
	tags.Shooter.Each(world, func(*donburi.Entry) { n++ })
	return n
}

var testSettings = tether.StaticSettings{MaxLength: 6000, Tearing: 1500}

func shooterEntity(id esync.NetworkId, pos mgl64.Vec3) NetEntity {
	return NetEntity{ID: id, Components: []any{
		netcomponents.NetPositionFrom(pos),
		netcomponents.NetVelocityData{},
		netcomponents.NetShooterData{StateID: netconfig.StateIdle, Grounded: true},
		netcomponents.NetTetherData{},
	}}
}

func TestApplyEntitiesLifecycle(t *testing.T) {
	world := donburi.NewWorld()

	ApplyEntities(world, []NetEntity{
		shooterEntity(1, mgl64.Vec3{100, 200, 0}),
		shooterEntity(2, mgl64.Vec3{300, 200, 0}),
	}, 1)

	local, ok := tags.Local.First(world)
	if !ok {
		t.Fatal("local shooter not tagged")
	}
	if !netcomponents.NetShooter.Get(local).IsLocal {
		t.Fatal("local shooter must be flagged IsLocal")
	}
	if n := countShooters(world); n != 2 {
		t.Fatalf("shooters = %d, want 2", n)
	}

	ApplyEntities(world, []NetEntity{shooterEntity(1, mgl64.Vec3{150, 200, 0})}, 1)

	if n := countShooters(world); n != 1 {
		t.Fatalf("shooters after removal = %d, want 1", n)
	}
	entry := world.Entry(esync.FindByNetworkId(world, 1))
	if got := netcomponents.NetPosition.Get(entry).X; got != 150 {
		t.Fatalf("x = %v, want 150", got)
	}
}

func TestSessionSettingsFallsBackUntilReplicated(t *testing.T) {
	world := donburi.NewWorld()
	s := SessionSettings{World: world, Fallback: testSettings}

	if got := s.MaxCableLength(); got != 6000 {
		t.Fatalf("fallback max = %v, want 6000", got)
	}

	ApplyEntities(world, []NetEntity{{ID: 9, Components: []any{
		netcomponents.NetSessionData{MaxCableLength: 3000, TearingDistance: 500},
	}}}, 1)

	if got := s.MaxCableLength(); got != 3000 {
		t.Fatalf("max = %v, want 3000", got)
	}
	if got := s.TearingDistance(); got != 500 {
		t.Fatalf("tearing = %v, want 500", got)
	}
}

func TestVelocityCorrectionTargetsShooter(t *testing.T) {
	world := donburi.NewWorld()
	ApplyEntities(world, []NetEntity{shooterEntity(4, mgl64.Vec3{})}, 4)

	ApplyVelocityCorrections(world, []messages.VelocityCorrection{
		{NetworkID: 4, X: 12, Y: -30},
		{NetworkID: 77, X: 1},
	})

	entry := world.Entry(esync.FindByNetworkId(world, 4))
	if got := netcomponents.NetVelocity.Get(entry).Vec3(); got != (mgl64.Vec3{12, -30, 0}) {
		t.Fatalf("velocity = %v", got)
	}
}

func TestEquipAndMirrorLocalTool(t *testing.T) {
	world := donburi.NewWorld()
	link := &recordingLink{}
	var seen []tether.EventKind

	if tool := EquipLocal(world, ToolOptions{Link: link, Settings: testSettings}); tool != nil {
		t.Fatal("tool equipped before the local shooter arrived")
	}

	ApplyEntities(world, []NetEntity{shooterEntity(1, mgl64.Vec3{500, 500, 0})}, 1)
	tool := EquipLocal(world, ToolOptions{
		Link:     link,
		Settings: testSettings,
		Tuning:   tether.DefaultTuning(),
		OnEvent:  func(e tether.Event) { seen = append(seen, e.Kind) },
	})
	if tool == nil {
		t.Fatal("tool not equipped")
	}
	if again := EquipLocal(world, ToolOptions{Link: link, Settings: testSettings}); again != tool {
		t.Fatal("equipping twice must return the same tool")
	}

	local, _ := tags.Local.First(world)
	in := components.Input.Get(local)
	in.AimX, in.AimY = 0, -1
	in.Press(netconfig.ActionFire, true)
	UpdateGrappleInput(world)
	if link.fires != 1 {
		t.Fatalf("fires = %d, want 1", link.fires)
	}

	netcomponents.NetTether.SetValue(local, netcomponents.NetTetherFrom(tether.State{
		Projectile:    uuid.New(),
		Attached:      true,
		DesiredLength: 400,
		Anchor:        mgl64.Vec3{500, 100, 0},
	}, 400))
	MirrorTether(world)
	if !tool.Attached() {
		t.Fatal("tool must mirror the replicated attachment")
	}

	in.Press(netconfig.ActionFire, false)
	in.Press(netconfig.ActionRetractCable, true)
	UpdateGrappleInput(world)
	UpdateTool(world, 0.1)
	if len(link.lengths) != 1 || link.lengths[0].Steps != -1 {
		t.Fatalf("length requests = %+v", link.lengths)
	}

	UnequipLocal(world)
	if local.HasComponent(components.Tool) {
		t.Fatal("tool component must be removed")
	}
	if link.retracts != 1 {
		t.Fatalf("retracts = %d, want 1 on unequip", link.retracts)
	}

	var attached bool
	for _, k := range seen {
		attached = attached || k == tether.EventAttached
	}
	if !attached {
		t.Fatalf("events %v missing attached", seen)
	}
}

func TestBotSwingRoutine(t *testing.T) {
	link := &recordingLink{}
	tool := tether.NewTool(tether.Options{Role: tether.RoleController, Settings: testSettings, Link: link})
	bot := &components.BotData{Style: cfg.BotStyleSwing}
	in := &components.InputData{}
	style := cfg.Bot.Styles[cfg.BotStyleSwing]

	updateBot(bot, in, tool)
	if bot.Phase != components.BotPhaseWaitAttach || !in.Actions[netconfig.ActionFire].JustPressed {
		t.Fatalf("phase = %v, fire = %+v", bot.Phase, in.Actions[netconfig.ActionFire])
	}
	if in.AimX != style.AimX || in.AimY != style.AimY {
		t.Fatalf("aim = (%v, %v)", in.AimX, in.AimY)
	}

	id := uuid.New()
	tool.ApplyState(tether.State{Projectile: id, Attached: true, DesiredLength: 1000, Anchor: mgl64.Vec3{700, -700, 0}})
	updateBot(bot, in, tool)
	if bot.Phase != components.BotPhaseReelIn {
		t.Fatalf("phase = %v, want reel_in", bot.Phase)
	}

	for i := 0; i < style.ReelInTicks; i++ {
		updateBot(bot, in, tool)
		if !in.Actions[netconfig.ActionRetractCable].Pressed {
			t.Fatalf("tick %d: retract not held while reeling in", i)
		}
	}
	if bot.Phase != components.BotPhaseReelOut {
		t.Fatalf("phase = %v, want reel_out", bot.Phase)
	}

	tool.ApplyState(tether.State{})
	updateBot(bot, in, tool)
	if bot.Phase != components.BotPhaseCooldown {
		t.Fatalf("phase = %v, want cooldown after detaching", bot.Phase)
	}

	for i := 0; i < style.CooldownTick; i++ {
		updateBot(bot, in, tool)
	}
	if bot.Phase != components.BotPhaseAim || bot.Cycles != 1 {
		t.Fatalf("phase = %v cycles = %d, want aim after one cycle", bot.Phase, bot.Cycles)
	}
}

func TestBotGivesUpWhenHookMisses(t *testing.T) {
	tool := tether.NewTool(tether.Options{Role: tether.RoleController, Settings: testSettings, Link: &recordingLink{}})
	bot := &components.BotData{Style: cfg.BotStyleClimb}
	in := &components.InputData{}

	updateBot(bot, in, tool) // fires
	updateBot(bot, in, tool) // tick 1, still idle locally
	updateBot(bot, in, tool)
	if bot.Phase != components.BotPhaseCooldown {
		t.Fatalf("phase = %v, want cooldown when the hook never flew", bot.Phase)
	}
}
