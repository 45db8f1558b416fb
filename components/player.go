package components

import (
	"github.com/automoto/plunger/shared/timer"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // -1 or 1

	// Effective stats: base config plus upgrades.
	MoveSpeed     float64
	JumpSpeed     float64
	RetrieveRange float64

	Plungers    int
	MaxPlungers int
	// InFlight counts fired plungers that have not landed yet. They are
	// reserved: Plungers is only decremented when they land or hit.
	InFlight int
	Points   int

	Invincibility timer.Timer
	Knockback     timer.Timer
	Coyote        timer.Timer

	Dead bool

	// Highlighted holds the retrievable plungers in range as of the last tick.
	Highlighted map[donburi.Entity]struct{}
}

// Available returns how many plungers can be fired right now.
func (p *PlayerData) Available() int {
	return p.Plungers - p.InFlight
}

var Player = donburi.NewComponentType[PlayerData]()
