package systems

import (
	"testing"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShotHitsPlayer(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 200)
	turret := spawnEnemy(t, e, cfg.KindShooter, 300, floorY-16)
	px, py := components.Object.Get(player).Center()
	shot := factory.CreateShot(e, turret, px, py)

	for i := 0; i < 60 && shot.Valid(); i++ {
		UpdateShots(e)
	}
	assert.False(t, shot.Valid())
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Enemy.Shooter.ShotDamage, components.Health.Get(player).Current)
	assert.Less(t, components.Physics.Get(player).SpeedX, 0.0, "knocked away from the shot")
}

func TestShotKnocksPlayerAwayFromImpact(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 200)
	turret := spawnEnemy(t, e, cfg.KindShooter, 300, floorY-16)
	_, py := components.Object.Get(player).Center()
	shot := factory.CreateShot(e, turret, 0, py)

	// Grazing the player's left side while flying left
	size := cfg.Enemy.Shooter.ShotSize
	moveTo(shot, 201, py-size/2)
	physics := components.Physics.Get(shot)
	physics.SpeedX, physics.SpeedY = -1, 0

	UpdateShots(e)
	require.False(t, shot.Valid())
	knockback := components.Physics.Get(player)
	assert.InDelta(t, cfg.Player.KnockbackForce, knockback.SpeedX, 1e-9)
	assert.InDelta(t, 0, knockback.SpeedY, 1e-9)
}

func TestShotPassesInvinciblePlayer(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 200)
	turret := spawnEnemy(t, e, cfg.KindShooter, 300, floorY-16)
	components.Player.Get(player).Invincibility.Start(10)
	px, py := components.Object.Get(player).Center()
	shot := factory.CreateShot(e, turret, px, py)

	tick(e, UpdateShots, 40)
	assert.True(t, shot.Valid())
	assert.Equal(t, cfg.Player.MaxHealth, components.Health.Get(player).Current)
}

func TestShotExpires(t *testing.T) {
	e := newWorldWithCamera(t)
	cfg.Enemy.Shooter.ShotSpeed = 0
	turret := spawnEnemy(t, e, cfg.KindShooter, 300, floorY-16)
	shot := factory.CreateShot(e, turret, 0, 0)

	tick(e, UpdateShots, ticksFor(cfg.Enemy.Shooter.ShotLifetime)-2)
	require.True(t, shot.Valid())
	tick(e, UpdateShots, 3)
	assert.False(t, shot.Valid())
}
