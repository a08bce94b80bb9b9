package systems

import (
	"github.com/asgmods/grapplehook/components"
	cfg "github.com/asgmods/grapplehook/config"
	"github.com/asgmods/grapplehook/shared/netconfig"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/yohamta/donburi"
)

// waitAttachTicks bounds how long the bot waits for its hook to land.
const waitAttachTicks = 120

// UpdateBots scripts the local input of every bot-driven shooter. Must run
// before UpdateGrappleInput.
func UpdateBots(world donburi.World) {
	components.Bot.Each(world, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Tool) {
			return
		}
		if !entry.HasComponent(components.Input) {
			entry.AddComponent(components.Input)
		}
		updateBot(components.Bot.Get(entry), components.Input.Get(entry), components.Tool.Get(entry).Tool)
	})
}

func updateBot(bot *components.BotData, in *components.InputData, tool *tether.Tool) {
	style, ok := cfg.Bot.Styles[bot.Style]
	if !ok {
		style = cfg.Bot.Styles[cfg.BotStyleSwing]
	}

	fire, retract, extend := false, false, false
	bot.PhaseTicks++

	switch bot.Phase {
	case components.BotPhaseAim:
		bot.Aim[0], bot.Aim[1] = style.AimX, style.AimY
		if tool.Phase() == tether.PhaseIdle {
			fire = true
			bot.Enter(components.BotPhaseWaitAttach)
		}
	case components.BotPhaseWaitAttach:
		switch {
		case tool.Attached():
			bot.Enter(components.BotPhaseReelIn)
		case tool.Phase() == tether.PhaseIdle && bot.PhaseTicks > 1:
			// Missed or out of range; the tool went idle on its own.
			bot.Enter(components.BotPhaseCooldown)
		case bot.PhaseTicks > waitAttachTicks:
			bot.Enter(components.BotPhaseRelease)
		}
	case components.BotPhaseReelIn:
		retract = true
		if bot.PhaseTicks >= style.ReelInTicks {
			bot.Enter(components.BotPhaseReelOut)
		}
	case components.BotPhaseReelOut:
		extend = true
		if bot.PhaseTicks >= style.ReelOutTicks {
			bot.Enter(components.BotPhaseHold)
		}
	case components.BotPhaseHold:
		if bot.PhaseTicks >= style.HoldTicks {
			bot.Enter(components.BotPhaseRelease)
		}
	case components.BotPhaseRelease:
		if tool.Phase() != tether.PhaseIdle {
			fire = true
		}
		bot.Enter(components.BotPhaseCooldown)
	case components.BotPhaseCooldown:
		if bot.PhaseTicks >= style.CooldownTick {
			bot.Cycles++
			bot.Enter(components.BotPhaseAim)
		}
	}

	// A detached tether ends whatever the bot was doing with it.
	if !tool.Attached() && (bot.Phase == components.BotPhaseReelIn ||
		bot.Phase == components.BotPhaseReelOut || bot.Phase == components.BotPhaseHold) {
		bot.Enter(components.BotPhaseCooldown)
	}

	in.Press(netconfig.ActionFire, fire)
	in.Press(netconfig.ActionRetractCable, retract)
	in.Press(netconfig.ActionExtendCable, extend)
	in.Direction = bot.Direction
	in.AimX, in.AimY = bot.Aim[0], bot.Aim[1]
}
