package systems

import (
	"testing"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactDamage(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 100)
	spawnEnemy(t, e, cfg.KindPatrol, 110, floorY-16)
	health := components.Health.Get(player)

	UpdateContactDamage(e)
	assert.Equal(t, cfg.Player.MaxHealth-1, health.Current)
	assert.True(t, components.Player.Get(player).Invincibility.Active())
	// Enemy is right of the player, so knockback pushes left
	assert.Less(t, components.Physics.Get(player).SpeedX, 0.0)

	UpdateContactDamage(e)
	assert.Equal(t, cfg.Player.MaxHealth-1, health.Current, "invincible")
}

func TestContactDamageSkipsHarmlessEnemies(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 100)
	// Turrets deal no contact damage
	spawnEnemy(t, e, cfg.KindShooter, 104, floorY-16)

	UpdateContactDamage(e)
	assert.Equal(t, cfg.Player.MaxHealth, components.Health.Get(player).Current)
}

func TestContactDamageFromParalyzedEnemy(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 100)
	enemy := spawnEnemy(t, e, cfg.KindPatrol, 110, floorY-16)
	require.True(t, Paralyze(e.World, enemy, nil))

	UpdateContactDamage(e)
	assert.Equal(t, cfg.Player.MaxHealth-1, components.Health.Get(player).Current)
}
