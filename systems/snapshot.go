package systems

import (
	"github.com/asgmods/grapplehook/shared/netcomponents"
	"github.com/asgmods/grapplehook/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

// NetEntity is one deserialized snapshot entity.
type NetEntity struct {
	ID         esync.NetworkId
	Components []any
}

// ApplySnapshot mirrors a server snapshot into world. Entities missing from
// the snapshot are removed.
func ApplySnapshot(world donburi.World, snapshot esync.WorldSnapshot, localID esync.NetworkId) {
	entities := make([]NetEntity, 0, len(snapshot))
	for _, ent := range snapshot {
		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}
		entities = append(entities, NetEntity{ID: ent.Id, Components: compData})
	}
	ApplyEntities(world, entities, localID)
}

// ApplyEntities is ApplySnapshot after deserialization.
func ApplyEntities(world donburi.World, entities []NetEntity, localID esync.NetworkId) {
	present := make(map[esync.NetworkId]bool, len(entities))

	for _, ent := range entities {
		present[ent.ID] = true

		entity := esync.FindByNetworkId(world, ent.ID)
		if !world.Valid(entity) {
			entity = world.Create(componentTypesFromInstances(ent.Components)...)

			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.ID)
			if ent.ID == localID {
				entry.AddComponent(tags.Local)
			}
		}

		entry := world.Entry(entity)
		for _, data := range ent.Components {
			applyComponentToEntry(entry, data)
		}
		if entry.HasComponent(netcomponents.NetShooter) {
			netcomponents.NetShooter.Get(entry).IsLocal = ent.ID == localID
		}
	}

	var stale []*donburi.Entry
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !present[*id] {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		entry.Remove()
	}
}

func componentTypesFromInstances(components []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range components {
		switch data.(type) {
		case netcomponents.NetPositionData:
			ctypes = append(ctypes, netcomponents.NetPosition)
		case netcomponents.NetVelocityData:
			ctypes = append(ctypes, netcomponents.NetVelocity)
		case netcomponents.NetShooterData:
			ctypes = append(ctypes, netcomponents.NetShooter, tags.Shooter)
		case netcomponents.NetProjectileData:
			ctypes = append(ctypes, netcomponents.NetProjectile, tags.Projectile)
		case netcomponents.NetTetherData:
			ctypes = append(ctypes, netcomponents.NetTether)
		case netcomponents.NetSessionData:
			ctypes = append(ctypes, netcomponents.NetSession, tags.Session)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetPositionData:
		setComponent(entry, netcomponents.NetPosition, v)
	case netcomponents.NetVelocityData:
		setComponent(entry, netcomponents.NetVelocity, v)
	case netcomponents.NetShooterData:
		setComponent(entry, netcomponents.NetShooter, v)
	case netcomponents.NetProjectileData:
		setComponent(entry, netcomponents.NetProjectile, v)
	case netcomponents.NetTetherData:
		setComponent(entry, netcomponents.NetTether, v)
	case netcomponents.NetSessionData:
		setComponent(entry, netcomponents.NetSession, v)
	}
}

func setComponent[T any](entry *donburi.Entry, ct *donburi.ComponentType[T], v T) {
	if !entry.HasComponent(ct) {
		entry.AddComponent(ct)
	}
	ct.SetValue(entry, v)
}
