package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// AimDirection turns digital aim input into a unit aim in the side-view
// plane (Y down, Z = 0). Up or down alone aims straight along Y unless the
// shooter is running, which tilts the aim 45 degrees toward facing. With no
// vertical input, or both held, the aim is facing along X.
func AimDirection(facing int, up, down, running bool) mgl64.Vec3 {
	forward := mgl64.Vec3{float64(facing), 0, 0}
	var vertical mgl64.Vec3
	switch {
	case up && !down:
		vertical = mgl64.Vec3{0, -1, 0}
	case down && !up:
		vertical = mgl64.Vec3{0, 1, 0}
	default:
		return SafeNormal(forward)
	}
	if running {
		return SafeNormal(forward.Add(vertical))
	}
	return vertical
}
