package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Ground  = donburi.NewTag().SetName("Ground")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Plunger = donburi.NewTag().SetName("Plunger")
	Shot    = donburi.NewTag().SetName("Shot")

	// Frozen marks an enemy whose autonomous behaviour is suspended.
	Frozen = donburi.NewTag().SetName("Frozen")
)

// Resolv tags for physics collision
const (
	ResolvSolid        = "solid"
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvPlunger      = "Plunger"
	ResolvStuckPlunger = "StuckPlunger"
	ResolvShot         = "Shot"
)
