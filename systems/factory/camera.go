package factory

import (
	"github.com/automoto/plunger/archetypes"
	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(x, y),
		Width:    float64(cfg.C.Width),
		Height:   float64(cfg.C.Height),
	})
	Context(ecs.World).Camera = camera
	return camera
}
