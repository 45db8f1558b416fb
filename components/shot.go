package components

import (
	"github.com/automoto/plunger/shared/timer"
	"github.com/yohamta/donburi"
)

// ShotData is a turret projectile. Shots pass through ground.
type ShotData struct {
	Damage   int
	Lifetime timer.Timer
}

var Shot = donburi.NewComponentType[ShotData]()
