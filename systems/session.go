package systems

import (
	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/events"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession advances the survival clock until the run ends.
func UpdateSession(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry)
	if session.Stopped {
		return
	}
	session.Elapsed += cfg.TickSeconds()
	events.TimeChangedEvent.Publish(e.World, events.TimeChanged{Elapsed: session.Elapsed})
}

// StopSession freezes the survival clock.
func StopSession(e *ecs.ECS) bool {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return false
	}
	session := components.Session.Get(entry)
	return tryTransition("Session.Stop", !session.Stopped, func() {
		session.Stopped = true
	})
}
