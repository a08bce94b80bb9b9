package netcomponents

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// NetVelocityData is in world units per second.
type NetVelocityData struct {
	SpeedX, SpeedY, SpeedZ float64
}

var NetVelocity = donburi.NewComponentType[NetVelocityData]()

func (v NetVelocityData) Vec3() mgl64.Vec3 { return mgl64.Vec3{v.SpeedX, v.SpeedY, v.SpeedZ} }

func NetVelocityFrom(v mgl64.Vec3) NetVelocityData {
	return NetVelocityData{SpeedX: v[0], SpeedY: v[1], SpeedZ: v[2]}
}

// LerpNetVelocity interpolates between two velocities
func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	return &NetVelocityData{
		SpeedX: from.SpeedX + (to.SpeedX-from.SpeedX)*t,
		SpeedY: from.SpeedY + (to.SpeedY-from.SpeedY)*t,
		SpeedZ: from.SpeedZ + (to.SpeedZ-from.SpeedZ)*t,
	}
}
