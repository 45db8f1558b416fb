package systems

import (
	"math"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, keeping the view inside
// the level.
func UpdateCamera(e *ecs.ECS) {
	ctx := factory.Context(e.World)
	if !valid(ctx.Camera) {
		return
	}
	camera := components.Camera.Get(ctx.Camera)

	if !valid(ctx.Player) || components.Player.Get(ctx.Player).Dead {
		return // no player to follow, hold position
	}
	targetX, targetY := components.Object.Get(ctx.Player).Center()

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		targetX = clampAxis(targetX, camera.Width, level.Width)
		targetY = clampAxis(targetY, camera.Height, level.Height)
	}

	camera.Position.X += (targetX - camera.Position.X) * cfg.Camera.FollowLerp
	camera.Position.Y += (targetY - camera.Position.Y) * cfg.Camera.FollowLerp
}

// clampAxis keeps a view of size view centered at v inside [0, extent].
// Levels smaller than the view are centered.
func clampAxis(v, view, extent float64) float64 {
	if extent <= view {
		return extent / 2
	}
	return math.Max(view/2, math.Min(extent-view/2, v))
}
