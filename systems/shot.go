package systems

import (
	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Shots this far outside the level are discarded.
const shotLevelMargin = 100

// UpdateShots moves turret shots and resolves their hits on the player.
// A hit knocks the player away from the shot.
func UpdateShots(e *ecs.ECS) {
	dt := cfg.TickSeconds()
	oracle := oracleOf(e.World)

	var bounds *components.LevelData
	if levelEntry, ok := components.Level.First(e.World); ok {
		bounds = components.Level.Get(levelEntry)
	}

	var toRemove []*donburi.Entry
	components.Shot.Each(e.World, func(entry *donburi.Entry) {
		shot := components.Shot.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		obj.Update()

		if shot.Lifetime.Tick(dt) || outsideLevel(bounds, obj) {
			toRemove = append(toRemove, entry)
			return
		}
		if oracle == nil {
			return
		}

		for _, hit := range oracle.QueryRect(obj.X, obj.Y, obj.W, obj.H, tags.ResolvPlayer) {
			target, ok := hit.Data.(*donburi.Entry)
			if !ok || !valid(target) {
				continue
			}
			player := components.Player.Get(target)
			// Invincible players are not hit at all; the shot flies on.
			if player.Dead || player.Invincibility.Active() {
				continue
			}
			px, py := components.Object.Get(target).Center()
			sx, sy := obj.Center()
			DamagePlayer(e.World, target, shot.Damage, px-sx, py-sy)
			toRemove = append(toRemove, entry)
			return
		}
	})

	for _, entry := range toRemove {
		removeEntity(e.World, entry)
	}
}

func outsideLevel(level *components.LevelData, obj *components.ObjectData) bool {
	if level == nil {
		return false
	}
	return obj.X+obj.W < -shotLevelMargin || obj.X > level.Width+shotLevelMargin ||
		obj.Y+obj.H < -shotLevelMargin || obj.Y > level.Height+shotLevelMargin
}
