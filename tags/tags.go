package tags

import "github.com/yohamta/donburi"

var (
	Zombie     = donburi.NewTag().SetName("Zombie")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for overlap checks
const (
	ResolvZombie     = "zombie"
	ResolvProjectile = "projectile"
)
