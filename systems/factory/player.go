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

// CreatePlayer spawns the player from base stats plus the configured
// upgrades, with full health and a full plunger inventory.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	addToSpace(ecs, obj)

	maxHealth := cfg.Player.MaxHealth + cfg.Upgrades.HealthBonus
	maxPlungers := cfg.Player.MaxPlungers + cfg.Upgrades.PlungerBonus

	components.Player.SetValue(player, components.PlayerData{
		Facing:        cfg.DirectionRight,
		MoveSpeed:     cfg.Player.MoveSpeed + cfg.Upgrades.SpeedBonus,
		JumpSpeed:     cfg.Player.JumpSpeed + cfg.Upgrades.JumpBonus,
		RetrieveRange: cfg.Player.RetrieveRange,
		Plungers:      maxPlungers,
		MaxPlungers:   maxPlungers,
		Highlighted:   map[donburi.Entity]struct{}{},
	})
	components.Health.SetValue(player, components.HealthData{
		Current: maxHealth,
		Max:     maxHealth,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})

	Context(ecs.World).Player = player
	return player
}
