package systems

import (
	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/events"
	"github.com/automoto/plunger/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHighlights tracks which retrievable plungers are within the player's
// retrieve range and announces the ones that entered or left it.
func UpdateHighlights(e *ecs.ECS) {
	ctx := factory.Context(e.World)
	entry := playerOf(e.World)
	if !valid(entry) {
		return
	}
	player := components.Player.Get(entry)

	current := map[donburi.Entity]struct{}{}
	if !player.Dead && ctx.Proximity != nil {
		cx, cy := components.Object.Get(entry).Center()
		for _, c := range ctx.Proximity.RetrievablePlungersWithin(cx, cy, player.RetrieveRange) {
			current[c.Entry.Entity()] = struct{}{}
		}
	}

	for p := range player.Highlighted {
		if _, ok := current[p]; !ok {
			events.PlungerHighlightedEvent.Publish(e.World, events.PlungerHighlighted{Plunger: p, InRange: false})
		}
	}
	for p := range current {
		if _, ok := player.Highlighted[p]; !ok {
			events.PlungerHighlightedEvent.Publish(e.World, events.PlungerHighlighted{Plunger: p, InRange: true})
		}
	}
	player.Highlighted = current
}
