package systems

import (
	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/events"
	"github.com/automoto/plunger/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Paralyze moves an Alive enemy to Paralyzed and records the plunger that
// hit it. Paralyzed or Dead enemies are left alone.
func Paralyze(w donburi.World, enemy, plunger *donburi.Entry) bool {
	if !valid(enemy) {
		return false
	}
	data := components.Enemy.Get(enemy)
	return tryTransition("enemy.paralyze", data.State == components.EnemyAlive, func() {
		data.State = components.EnemyParalyzed
		data.Plunger = plunger
		events.EnemyParalyzedEvent.Publish(w, events.EnemyParalyzed{Enemy: enemy, Plunger: plunger})
	})
}

// DamageEnemy lowers an enemy's health, clamped at zero. It never kills:
// enemies only die through plunger retrieval.
func DamageEnemy(w donburi.World, enemy *donburi.Entry, amount int) bool {
	if !valid(enemy) {
		return false
	}
	data := components.Enemy.Get(enemy)
	return tryTransition("enemy.damage", data.State != components.EnemyDead && amount >= 0, func() {
		health := components.Health.Get(enemy)
		health.Current = gamemath.ClampInt(health.Current-amount, 0, health.Max)
		events.EnemyDamagedEvent.Publish(w, events.EnemyDamaged{
			Enemy:   enemy,
			Amount:  amount,
			Current: health.Current,
			Max:     health.Max,
		})
	})
}

// OnPlungerRetrieved drains the enemy's health and kills it.
func OnPlungerRetrieved(w donburi.World, enemy *donburi.Entry) bool {
	if !valid(enemy) {
		return false
	}
	data := components.Enemy.Get(enemy)
	return tryTransition("enemy.retrieved", data.State != components.EnemyDead, func() {
		components.Health.Get(enemy).Current = 0
		KillEnemy(w, enemy)
	})
}

// KillEnemy is idempotent. It destroys the attached plunger, pays the enemy's
// points to its scorer and removes the enemy from the world.
func KillEnemy(w donburi.World, enemy *donburi.Entry) bool {
	if !valid(enemy) {
		return false
	}
	data := components.Enemy.Get(enemy)
	return tryTransition("enemy.kill", data.State != components.EnemyDead, func() {
		data.State = components.EnemyDead

		data.Plunger = nil
		for _, p := range plungersOn(w, enemy) {
			DestroyPlunger(w, p, events.ReasonCascade, false)
		}

		if valid(data.Scorer) && data.Scorer.HasComponent(components.Player) {
			AddPoints(w, data.Scorer, data.Points)
		} else {
			warnOnce("enemy.scorer", "no scorer wired for %s, points not awarded", data.TypeName)
		}

		killed := events.EnemyKilled{
			Enemy:    enemy.Entity(),
			TypeName: data.TypeName,
			Points:   data.Points,
		}
		killed.X, killed.Y = components.Object.Get(enemy).Center()

		removeEntity(w, enemy)
		events.EnemyKilledEvent.Publish(w, killed)
	})
}

// EnemyState returns the state of e, treating removed entities as Dead.
func EnemyState(e *donburi.Entry) components.EnemyState {
	if !valid(e) {
		return components.EnemyDead
	}
	return components.Enemy.Get(e).State
}

// plungersOn returns every plunger attached to enemy.
func plungersOn(w donburi.World, enemy *donburi.Entry) []*donburi.Entry {
	var attached []*donburi.Entry
	components.Plunger.Each(w, func(p *donburi.Entry) {
		if components.Plunger.Get(p).AttachedTo == enemy {
			attached = append(attached, p)
		}
	})
	return attached
}
