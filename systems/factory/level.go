package factory

import (
	"github.com/automoto/plunger/archetypes"
	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the entity describing the loaded map's extent.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Name:   level.Name,
		Width:  float64(level.MapWidth),
		Height: float64(level.MapHeight),
	})
	return entry
}

// CreateSession spawns the run's clock and input holder.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{})
	return entry
}
