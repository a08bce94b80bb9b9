package systems

import (
	"github.com/asgmods/grapplehook/components"
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/asgmods/grapplehook/shared/netconfig"
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/asgmods/grapplehook/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// ToolOptions configures the locally equipped grapple.
type ToolOptions struct {
	Link           tether.Link
	Settings       tether.Settings
	Collision      tether.CollisionQuery
	Tuning         tether.Tuning
	PredictTension bool
	Logger         logrus.FieldLogger
	OnEvent        func(tether.Event)
}

// EquipLocal gives the local shooter a controller-side grapple once its
// entity has arrived. It returns the tool, or nil while the entity is
// missing.
func EquipLocal(world donburi.World, opts ToolOptions) *tether.Tool {
	entry, ok := tags.Local.First(world)
	if !ok {
		return nil
	}
	if entry.HasComponent(components.Tool) {
		return components.Tool.Get(entry).Tool
	}
	if !entry.HasComponent(components.Input) {
		entry.AddComponent(components.Input)
	}

	tool := tether.NewTool(tether.Options{
		Role:           tether.RoleController,
		Tuning:         opts.Tuning,
		Settings:       opts.Settings,
		Shooter:        localShooter{world: world, entity: entry.Entity()},
		Collision:      opts.Collision,
		Link:           opts.Link,
		Logger:         opts.Logger,
		PredictTension: opts.PredictTension,
	})
	cancel := func() {}
	if opts.OnEvent != nil {
		cancel = tool.Subscribe(opts.OnEvent)
	}
	entry.AddComponent(components.Tool)
	components.Tool.SetValue(entry, components.ToolData{Tool: tool, Cancel: cancel})
	return tool
}

// MirrorTether feeds each equipped shooter's replicated tether into its
// tool. Unchanged states are ignored by the tool.
func MirrorTether(world donburi.World) {
	components.Tool.Each(world, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetTether) {
			return
		}
		components.Tool.Get(entry).Tool.ApplyState(netcomponents.NetTether.Get(entry).State())
	})
}

// UpdateGrappleInput turns the local input into tool calls.
func UpdateGrappleInput(world donburi.World) {
	components.Tool.Each(world, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Input) {
			return
		}
		tool := components.Tool.Get(entry).Tool
		in := components.Input.Get(entry)

		if in.Actions[netconfig.ActionFire].JustPressed {
			tool.ToggleFire()
		}
		retract := in.Actions[netconfig.ActionRetractCable].Pressed
		extend := in.Actions[netconfig.ActionExtendCable].Pressed
		switch {
		case retract && !extend:
			tool.RetractCable()
		case extend && !retract:
			tool.ExtendCable()
		}
	})
}

// UpdateTool runs the controller tick of every equipped grapple.
func UpdateTool(world donburi.World, dt float64) {
	components.Tool.Each(world, func(entry *donburi.Entry) {
		components.Tool.Get(entry).Tool.Tick(dt)
	})
}

// UnequipLocal retracts the local grapple and detaches it.
func UnequipLocal(world donburi.World) {
	entry, ok := tags.Local.First(world)
	if !ok || !entry.HasComponent(components.Tool) {
		return
	}
	td := components.Tool.Get(entry)
	td.Tool.Unequip()
	td.Cancel()
	entry.RemoveComponent(components.Tool)
}
