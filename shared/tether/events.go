package tether

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

type EventKind int

const (
	EventFired EventKind = iota
	EventAttached
	EventStartedRetracting
	EventFinishedRetracting
	// EventLengthRatioChanged carries DesiredLength / MaxCableLength in Ratio.
	EventLengthRatioChanged
	// EventCableBound fires when a new projectile identity appears.
	EventCableBound
	EventCableGravityChanged
	EventAimReachableChanged
)

func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "fired"
	case EventAttached:
		return "attached"
	case EventStartedRetracting:
		return "started_retracting"
	case EventFinishedRetracting:
		return "finished_retracting"
	case EventLengthRatioChanged:
		return "length_ratio_changed"
	case EventCableBound:
		return "cable_bound"
	case EventCableGravityChanged:
		return "cable_gravity_changed"
	case EventAimReachableChanged:
		return "aim_reachable_changed"
	}
	return "unknown"
}

// Event is a tool notification. Only the fields relevant to Kind are set.
type Event struct {
	Kind         EventKind
	Projectile   uuid.UUID
	Anchor       mgl64.Vec3
	Ratio        float64
	GravityScale float64
	Reachable    bool
}

// dispatcher keeps listeners in registration order.
type dispatcher struct {
	listeners *orderedmap.OrderedMap[uint64, func(Event)]
	nextID    uint64
}

func newDispatcher() *dispatcher {
	return &dispatcher{listeners: orderedmap.NewOrderedMap[uint64, func(Event)]()}
}

func (d *dispatcher) subscribe(fn func(Event)) func() {
	id := d.nextID
	d.nextID++
	d.listeners.Set(id, fn)
	return func() { d.listeners.Delete(id) }
}

func (d *dispatcher) emit(e Event) {
	// Removal clears an element's links, so step before calling out.
	for el := d.listeners.Front(); el != nil; {
		next := el.Next()
		el.Value(e)
		el = next
	}
}

func (d *dispatcher) clear() {
	for _, k := range d.listeners.Keys() {
		d.listeners.Delete(k)
	}
}
