package components

import (
	"github.com/yohamta/donburi"
)

type PlungerState int

const (
	PlungerFlying PlungerState = iota
	PlungerStuckOnSurface
	PlungerStuckOnEnemy
	PlungerDestroyed
)

func (s PlungerState) String() string {
	switch s {
	case PlungerFlying:
		return "Flying"
	case PlungerStuckOnSurface:
		return "StuckOnSurface"
	case PlungerStuckOnEnemy:
		return "StuckOnEnemy"
	case PlungerDestroyed:
		return "Destroyed"
	}
	return "Unknown"
}

type PlungerData struct {
	State PlungerState
	Owner *donburi.Entry

	// AttachedTo is the enemy carrying this plunger, set only while
	// StuckOnEnemy. OffsetX/OffsetY place the plunger relative to it.
	AttachedTo       *donburi.Entry
	OffsetX, OffsetY float64

	Angle     float64 // radians
	HitRadius float64

	// Launch point, for the flight distance limit.
	StartX, StartY float64
}

func (p *PlungerData) Stuck() bool {
	return p.State == PlungerStuckOnSurface || p.State == PlungerStuckOnEnemy
}

var Plunger = donburi.NewComponentType[PlungerData]()
