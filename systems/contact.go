package systems

import (
	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContactDamage hurts the player when they touch a harmful enemy.
// Invincibility suspends enemy hit detection entirely.
func UpdateContactDamage(e *ecs.ECS) {
	entry := playerOf(e.World)
	if !valid(entry) {
		return
	}
	player := components.Player.Get(entry)
	if player.Dead || player.Invincibility.Active() {
		return
	}
	oracle := oracleOf(e.World)
	if oracle == nil {
		return
	}

	obj := components.Object.Get(entry)
	px, py := obj.Center()
	for _, hit := range oracle.QueryRect(obj.X, obj.Y, obj.W, obj.H, tags.ResolvEnemy) {
		enemyEntry, ok := hit.Data.(*donburi.Entry)
		if !ok || !valid(enemyEntry) {
			continue
		}
		enemy := components.Enemy.Get(enemyEntry)
		if enemy.State == components.EnemyDead || enemy.TypeConfig == nil || enemy.TypeConfig.ContactDamage <= 0 {
			continue
		}
		ex, ey := components.Object.Get(enemyEntry).Center()
		DamagePlayer(e.World, entry, enemy.TypeConfig.ContactDamage, px-ex, py-ey)
		return
	}
}
