package tags

import "github.com/yohamta/donburi"

var (
	Shooter    = donburi.NewTag().SetName("Shooter")
	Projectile = donburi.NewTag().SetName("Projectile")
	Session    = donburi.NewTag().SetName("Session")
	Local      = donburi.NewTag().SetName("Local")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvShooter    = "shooter"
	ResolvProjectile = "projectile"
)
