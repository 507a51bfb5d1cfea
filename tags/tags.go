package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Item       = donburi.NewTag().SetName("Item")
	Projectile = donburi.NewTag().SetName("Projectile")
	Hazard     = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvItem       = "item"
	ResolvProjectile = "projectile"
	ResolvHazard     = "hazard"
)
