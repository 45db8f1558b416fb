package factory

import (
	"github.com/automoto/plunger/archetypes"
	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlunger spawns a Flying plunger centered on (x, y).
func CreatePlunger(ecs *ecs.ECS, owner *donburi.Entry, x, y, velX, velY float64) *donburi.Entry {
	p := archetypes.Plunger.Spawn(ecs)

	size := cfg.Plunger.Size
	obj := resolv.NewObject(x-size/2, y-size/2, size, size, tags.ResolvPlunger)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Physics.Set(p, &components.PhysicsData{
		SpeedX:       velX,
		SpeedY:       velY,
		Gravity:      cfg.Plunger.Gravity,
		MaxFallSpeed: cfg.Plunger.Speed * 2,
	})
	components.Plunger.Set(p, &components.PlungerData{
		State:     components.PlungerFlying,
		Owner:     owner,
		HitRadius: cfg.Plunger.HitRadius,
		StartX:    x,
		StartY:    y,
	})

	return p
}
