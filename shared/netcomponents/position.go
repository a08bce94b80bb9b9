package netcomponents

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type NetPositionData struct {
	X, Y, Z float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

func (p NetPositionData) Vec3() mgl64.Vec3 { return mgl64.Vec3{p.X, p.Y, p.Z} }

func NetPositionFrom(v mgl64.Vec3) NetPositionData {
	return NetPositionData{X: v[0], Y: v[1], Z: v[2]}
}

// LerpNetPosition interpolates between two positions
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	return &NetPositionData{
		X: from.X + (to.X-from.X)*t,
		Y: from.Y + (to.Y-from.Y)*t,
		Z: from.Z + (to.Z-from.Z)*t,
	}
}
