package factory

import (
	"github.com/automoto/plunger/archetypes"
	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/proximity"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorldContext spawns the singleton holding shared collaborators. The
// proximity coordinator is built on the given space entry; pass nil to run
// without spatial queries.
func CreateWorldContext(ecs *ecs.ECS, space *donburi.Entry) *donburi.Entry {
	ctx := archetypes.WorldContext.Spawn(ecs)
	data := components.WorldContextData{Space: space}
	if space != nil {
		oracle := proximity.NewResolvOracle(components.Space.Get(space))
		data.Proximity = proximity.NewCoordinator(oracle, cfg.Proximity.LegacyOrder)
	}
	components.WorldContext.SetValue(ctx, data)
	return ctx
}

// Context returns the world's context, or an empty one when none was created.
func Context(w donburi.World) *components.WorldContextData {
	if e, ok := components.WorldContext.First(w); ok {
		return components.WorldContext.Get(e)
	}
	return &components.WorldContextData{}
}
