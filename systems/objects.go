package systems

import (
	"github.com/automoto/plunger/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every collision object's cells with its position.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
