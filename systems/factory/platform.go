package factory

import (
	"github.com/automoto/plunger/archetypes"
	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround spawns a solid surface plungers stick to and characters stand on.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ground
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ground
}
