package systems

import (
	"log"

	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/events"
	"github.com/automoto/plunger/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterSubscribers wires the gameplay reactions that run when queued
// events are processed, outside of any system's iteration.
func RegisterSubscribers(e *ecs.ECS) {
	events.EnemyParalyzedEvent.Subscribe(e.World, func(w donburi.World, ev events.EnemyParalyzed) {
		if !valid(ev.Enemy) || EnemyState(ev.Enemy) != components.EnemyParalyzed {
			return
		}
		if !ev.Enemy.HasComponent(tags.Frozen) {
			ev.Enemy.AddComponent(tags.Frozen)
		}
		if ev.Enemy.HasComponent(components.Physics) {
			components.Physics.Get(ev.Enemy).SpeedX = 0
		}
	})

	events.PlayerDiedEvent.Subscribe(e.World, func(w donburi.World, ev events.PlayerDied) {
		StopSession(e)
		log.Printf("Run over: %d points", ev.Points)
	})
}
