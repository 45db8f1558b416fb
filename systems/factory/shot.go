package factory

import (
	"github.com/automoto/plunger/archetypes"
	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/shared/gamemath"
	"github.com/automoto/plunger/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShot spawns a turret shot aimed at the target position.
func CreateShot(ecs *ecs.ECS, owner *donburi.Entry, targetX, targetY float64) *donburi.Entry {
	s := archetypes.Shot.Spawn(ecs)
	enemy := components.Enemy.Get(owner)
	typeConfig := enemy.TypeConfig

	// Start position (center of enemy)
	startX, startY := components.Object.Get(owner).Center()

	size := typeConfig.ShotSize
	obj := resolv.NewObject(startX-size/2, startY-size/2, size, size, tags.ResolvShot)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = s
	components.Object.Set(s, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	velX, velY := gamemath.VelocityToward(startX, startY, targetX, targetY, typeConfig.ShotSpeed)
	components.Physics.Set(s, &components.PhysicsData{
		SpeedX: velX,
		SpeedY: velY,
	})

	shot := &components.ShotData{
		Damage: typeConfig.ShotDamage,
	}
	shot.Lifetime.Start(typeConfig.ShotLifetime)
	components.Shot.Set(s, shot)

	return s
}
