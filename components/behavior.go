package components

import (
	"github.com/automoto/plunger/shared/timer"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Behavior selects the autonomous movement and attack of an enemy.
type Behavior int

const (
	BehaviorNone Behavior = iota
	BehaviorPatrol
	BehaviorOscillate
	BehaviorShooter
)

func (b Behavior) String() string {
	switch b {
	case BehaviorPatrol:
		return "Patrol"
	case BehaviorOscillate:
		return "Oscillate"
	case BehaviorShooter:
		return "Shooter"
	}
	return "None"
}

type PatrolData struct {
	Direction float64 // -1 or 1
}

type OscillateData struct {
	OriginX, OriginY float64
	Vertical         bool
	Tween            *gween.Sequence
}

type ShooterData struct {
	Cooldown timer.Timer
	Detected bool
}

var Patrol = donburi.NewComponentType[PatrolData]()
var Oscillate = donburi.NewComponentType[OscillateData]()
var Shooter = donburi.NewComponentType[ShooterData]()
