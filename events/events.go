// Package events defines the state-change notifications published by the
// gameplay transitions. Events are queued when published and delivered to
// subscribers once per tick by ProcessAll.
package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// DestroyReason says why a plunger was destroyed.
type DestroyReason int

const (
	ReasonRetrieved DestroyReason = iota
	ReasonOutOfBounds
	ReasonCascade
	ReasonLost
)

func (r DestroyReason) String() string {
	switch r {
	case ReasonRetrieved:
		return "Retrieved"
	case ReasonOutOfBounds:
		return "OutOfBounds"
	case ReasonCascade:
		return "Cascade"
	case ReasonLost:
		return "Lost"
	}
	return "Unknown"
}

type EnemyParalyzed struct {
	Enemy   *donburi.Entry
	Plunger *donburi.Entry
}

type EnemyDamaged struct {
	Enemy   *donburi.Entry
	Amount  int
	Current int
	Max     int
}

// EnemyKilled is published after the enemy has been removed, so it carries
// values rather than a live entry.
type EnemyKilled struct {
	Enemy    donburi.Entity
	TypeName string
	Points   int
	X, Y     float64
}

type PlungerFired struct {
	Plunger *donburi.Entry
	Owner   *donburi.Entry
}

type PlungerStuck struct {
	Plunger *donburi.Entry
	Enemy   *donburi.Entry // nil when stuck on a surface
	X, Y    float64
	Angle   float64
}

type PlungerDestroyed struct {
	Plunger  donburi.Entity
	Reason   DestroyReason
	Credited bool
}

// PlungerHighlighted fires when a retrievable plunger enters or leaves the
// player's retrieve range. A plunger leaving range may already be gone, so
// it is identified by entity rather than entry.
type PlungerHighlighted struct {
	Plunger donburi.Entity
	InRange bool
}

type PlayerDamaged struct {
	Player     *donburi.Entry
	Amount     int
	Health     int
	MaxHealth  int
	KnockbackX float64
	KnockbackY float64
}

type PlayerDied struct {
	Player *donburi.Entry
	Points int
}

type InvincibilityEnded struct {
	Player *donburi.Entry
}

type InventoryChanged struct {
	Current int
	Max     int
}

type HealthChanged struct {
	Current int
	Max     int
}

type PointsChanged struct {
	Total int
	Delta int
}

// TimeChanged carries the session's survival time in seconds.
type TimeChanged struct {
	Elapsed float64
}

var (
	EnemyParalyzedEvent     = devents.NewEventType[EnemyParalyzed]()
	EnemyDamagedEvent       = devents.NewEventType[EnemyDamaged]()
	EnemyKilledEvent        = devents.NewEventType[EnemyKilled]()
	PlungerFiredEvent       = devents.NewEventType[PlungerFired]()
	PlungerStuckEvent       = devents.NewEventType[PlungerStuck]()
	PlungerDestroyedEvent   = devents.NewEventType[PlungerDestroyed]()
	PlungerHighlightedEvent = devents.NewEventType[PlungerHighlighted]()
	PlayerDamagedEvent      = devents.NewEventType[PlayerDamaged]()
	PlayerDiedEvent         = devents.NewEventType[PlayerDied]()
	InvincibilityEndedEvent = devents.NewEventType[InvincibilityEnded]()
	InventoryChangedEvent   = devents.NewEventType[InventoryChanged]()
	HealthChangedEvent      = devents.NewEventType[HealthChanged]()
	PointsChangedEvent      = devents.NewEventType[PointsChanged]()
	TimeChangedEvent        = devents.NewEventType[TimeChanged]()
)

// ProcessAll delivers every queued event to its subscribers.
func ProcessAll(w donburi.World) {
	devents.ProcessAllEvents(w)
}
