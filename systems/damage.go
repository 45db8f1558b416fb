package systems

import (
	"log"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/events"
	"github.com/automoto/plunger/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DamagePlayer applies damage unless the player is invincible or dead.
// A lethal hit kills without knockback or invincibility; any other hit
// knocks the player along (dirX, dirY) and starts both timers.
func DamagePlayer(w donburi.World, entry *donburi.Entry, amount int, dirX, dirY float64) bool {
	if !valid(entry) {
		return false
	}
	player := components.Player.Get(entry)
	guard := !player.Dead && !player.Invincibility.Active() && amount > 0

	return tryTransition("player.damage", guard, func() {
		health := components.Health.Get(entry)
		health.Current = gamemath.ClampInt(health.Current-amount, 0, health.Max)
		publishHealth(w, health)

		if health.Current == 0 {
			events.PlayerDamagedEvent.Publish(w, events.PlayerDamaged{
				Player: entry, Amount: amount, Health: 0, MaxHealth: health.Max,
			})
			KillPlayer(w, entry)
			return
		}

		nx, ny := gamemath.Normalize(dirX, dirY)
		physics := components.Physics.Get(entry)
		physics.SpeedX = nx * cfg.Player.KnockbackForce
		physics.SpeedY = ny * cfg.Player.KnockbackForce
		player.Knockback.Start(cfg.Player.KnockbackDuration)
		player.Invincibility.Start(cfg.Player.InvincibilityDuration)

		events.PlayerDamagedEvent.Publish(w, events.PlayerDamaged{
			Player:     entry,
			Amount:     amount,
			Health:     health.Current,
			MaxHealth:  health.Max,
			KnockbackX: physics.SpeedX,
			KnockbackY: physics.SpeedY,
		})
	})
}

// KillPlayer is terminal. The player stays in the world for presentation
// but leaves the collision space and is skipped by every system.
func KillPlayer(w donburi.World, entry *donburi.Entry) bool {
	if !valid(entry) {
		return false
	}
	player := components.Player.Get(entry)
	return tryTransition("player.kill", !player.Dead, func() {
		player.Dead = true
		player.Invincibility.Stop()
		player.Knockback.Stop()
		player.Coyote.Stop()

		physics := components.Physics.Get(entry)
		physics.SpeedX, physics.SpeedY = 0, 0
		physics.OnGround = nil

		if obj := components.Object.Get(entry); obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}

		log.Printf("Player died with %d points", player.Points)
		events.PlayerDiedEvent.Publish(w, events.PlayerDied{Player: entry, Points: player.Points})
	})
}

// HealPlayer restores health up to the maximum.
func HealPlayer(w donburi.World, entry *donburi.Entry, amount int) bool {
	if !valid(entry) {
		return false
	}
	player := components.Player.Get(entry)
	return tryTransition("player.heal", !player.Dead && amount > 0, func() {
		health := components.Health.Get(entry)
		health.Current = gamemath.ClampInt(health.Current+amount, 0, health.Max)
		publishHealth(w, health)
	})
}

// AddPoints adds to the player's score. Negative amounts are rejected.
func AddPoints(w donburi.World, entry *donburi.Entry, amount int) bool {
	if !valid(entry) {
		return false
	}
	player := components.Player.Get(entry)
	return tryTransition("player.points", amount >= 0, func() {
		player.Points += amount
		events.PointsChangedEvent.Publish(w, events.PointsChanged{Total: player.Points, Delta: amount})
	})
}

// ApplyUpgrades recomputes the player's stats as base config plus u.
// Raised maxima are filled; lowered maxima clamp the current values.
func ApplyUpgrades(w donburi.World, entry *donburi.Entry, u cfg.UpgradeConfig) bool {
	if !valid(entry) {
		return false
	}
	player := components.Player.Get(entry)
	maxHealth := cfg.Player.MaxHealth + u.HealthBonus
	maxPlungers := cfg.Player.MaxPlungers + u.PlungerBonus

	return tryTransition("player.upgrade", !player.Dead && maxHealth > 0 && maxPlungers > 0, func() {
		player.MoveSpeed = cfg.Player.MoveSpeed + u.SpeedBonus
		player.JumpSpeed = cfg.Player.JumpSpeed + u.JumpBonus

		health := components.Health.Get(entry)
		if grow := maxHealth - health.Max; grow > 0 {
			health.Current += grow
		}
		health.Max = maxHealth
		health.Current = gamemath.ClampInt(health.Current, 0, health.Max)

		if grow := maxPlungers - player.MaxPlungers; grow > 0 {
			player.Plungers += grow
		}
		player.MaxPlungers = maxPlungers
		player.Plungers = gamemath.ClampInt(player.Plungers, 0, player.MaxPlungers)

		publishHealth(w, health)
		publishInventory(w, player)
	})
}

// ReturnPlungerToPlayer credits one plunger, clamped at the maximum.
func ReturnPlungerToPlayer(w donburi.World, entry *donburi.Entry) bool {
	if !valid(entry) {
		warnOnce("player.return", "no player to return plunger to")
		return false
	}
	player := components.Player.Get(entry)
	if player.Plungers >= player.MaxPlungers {
		log.Printf("Plunger inventory full (%d/%d)", player.Plungers, player.MaxPlungers)
		return false
	}
	player.Plungers++
	publishInventory(w, player)
	return true
}

// PublishPlayerState announces the player's current resources, for sinks
// bound after the player was created.
func PublishPlayerState(w donburi.World, entry *donburi.Entry) {
	if !valid(entry) {
		return
	}
	player := components.Player.Get(entry)
	publishHealth(w, components.Health.Get(entry))
	publishInventory(w, player)
	events.PointsChangedEvent.Publish(w, events.PointsChanged{Total: player.Points})
}

func publishHealth(w donburi.World, h *components.HealthData) {
	events.HealthChangedEvent.Publish(w, events.HealthChanged{Current: h.Current, Max: h.Max})
}

// publishInventory reports plungers available to fire.
func publishInventory(w donburi.World, p *components.PlayerData) {
	events.InventoryChangedEvent.Publish(w, events.InventoryChanged{Current: p.Available(), Max: p.MaxPlungers})
}
