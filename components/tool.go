package components

import (
	"github.com/asgmods/grapplehook/shared/tether"
	"github.com/yohamta/donburi"
)

// ToolData attaches the controlling participant's grapple to its shooter
// entity.
type ToolData struct {
	Tool   *tether.Tool
	Cancel func() // drops the event subscription made when equipping
}

var Tool = donburi.NewComponentType[ToolData]()
