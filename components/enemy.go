package components

import (
	"github.com/automoto/plunger/config"
	"github.com/yohamta/donburi"
)

type EnemyState int

const (
	EnemyAlive EnemyState = iota
	EnemyParalyzed
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyAlive:
		return "Alive"
	case EnemyParalyzed:
		return "Paralyzed"
	case EnemyDead:
		return "Dead"
	}
	return "Unknown"
}

type EnemyData struct {
	TypeName   string                  // "Goomba", "Fly", "Turret"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Behavior   Behavior
	State      EnemyState
	Points     int

	// Plunger is the projectile that paralyzed this enemy. It is owned by
	// the plunger lifecycle; the enemy only reads it.
	Plunger *donburi.Entry
	// Scorer receives Points when the enemy dies. Resolved at spawn.
	Scorer *donburi.Entry
}

var Enemy = donburi.NewComponentType[EnemyData]()
