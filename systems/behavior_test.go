package systems

import (
	"math"
	"testing"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPatrolTurnsAtLedges(t *testing.T) {
	e := newWorldWithCamera(t)
	// A short platform floating above the floor
	factory.CreateGround(e, 100, 200, 100, 16)
	enemy := spawnEnemy(t, e, cfg.KindPatrol, 140, 200-16)
	components.Patrol.Get(enemy).Direction = cfg.DirectionRight
	obj := components.Object.Get(enemy)

	turned := false
	for i := 0; i < 300; i++ {
		UpdateBehaviors(e)
		UpdatePhysics(e)
		require.Equal(t, 200-16.0, obj.Y, "tick %d: fell off the platform", i)
		require.GreaterOrEqual(t, obj.X, 100.0-obj.W/2)
		require.LessOrEqual(t, obj.X+obj.W, 200.0+obj.W/2)
		if components.Patrol.Get(enemy).Direction == cfg.DirectionLeft {
			turned = true
		}
	}
	assert.True(t, turned)
}

func TestPatrolTurnsAtWalls(t *testing.T) {
	e := newWorldWithCamera(t)
	createWall(e, 200)
	enemy := spawnEnemy(t, e, cfg.KindPatrol, 170, floorY-16)
	components.Patrol.Get(enemy).Direction = cfg.DirectionRight

	for i := 0; i < 40; i++ {
		UpdateBehaviors(e)
		UpdatePhysics(e)
	}
	assert.Equal(t, cfg.DirectionLeft, components.Patrol.Get(enemy).Direction)
	assert.Less(t, components.Object.Get(enemy).X+16, 200.0)
}

func TestOscillateStaysInRange(t *testing.T) {
	tests := []struct {
		name     string
		vertical bool
	}{
		{"horizontal", false},
		{"vertical", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newWorldWithCamera(t)
			enemy, err := factory.CreateEnemy(e, cfg.KindOscillate, 300, 100, factory.EnemyOptions{Vertical: tt.vertical})
			require.NoError(t, err)
			obj := components.Object.Get(enemy)
			moveRange := cfg.Enemy.Oscillate.MoveRange

			maxOffset := 0.0
			// Several full passes, so the tween is rebuilt at least once
			for i := 0; i < ticksFor(cfg.Enemy.Oscillate.LegDuration*5); i++ {
				UpdateBehaviors(e)
				UpdatePhysics(e)

				offset := obj.X - 300
				other := obj.Y - 100
				if tt.vertical {
					offset, other = other, offset
				}
				require.LessOrEqual(t, math.Abs(offset), moveRange+1e-3)
				require.InDelta(t, 0, other, 1e-9)
				maxOffset = math.Max(maxOffset, math.Abs(offset))
			}
			assert.Greater(t, maxOffset, moveRange*0.9)
		})
	}
}

func TestShooterFiresWhilePlayerInRange(t *testing.T) {
	e := newWorldWithCamera(t)
	spawnPlayer(e, 200)
	turret := spawnEnemy(t, e, cfg.KindShooter, 300, floorY-16)

	shotsAfter := func(ticks int) int {
		tick(e, UpdateBehaviors, ticks)
		return countShots(e)
	}

	// Detection starts the timer; the first shot comes one interval later
	assert.Equal(t, 0, shotsAfter(ticksFor(cfg.Enemy.Shooter.TimeBetweenShots)-2))
	assert.Equal(t, 1, shotsAfter(3))

	var shot *donburi.Entry
	components.Shot.Each(e.World, func(entry *donburi.Entry) { shot = entry })
	require.NotNil(t, shot)
	tx, ty := components.Object.Get(turret).Center()
	sx, sy := components.Object.Get(shot).Center()
	assert.InDelta(t, tx, sx, 1e-9, "fired from the turret")
	assert.InDelta(t, ty, sy, 1e-9)
	assert.Less(t, components.Physics.Get(shot).SpeedX, 0.0, "aimed at the player on the left")
}

func TestShooterIgnoresDistantPlayer(t *testing.T) {
	e := newWorldWithCamera(t)
	spawnPlayer(e, 20)
	spawnEnemy(t, e, cfg.KindShooter, 500, floorY-16)

	tick(e, UpdateBehaviors, ticksFor(cfg.Enemy.Shooter.TimeBetweenShots*3))
	assert.Equal(t, 0, countShots(e))
}

func TestShooterStopsWhenPlayerDies(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 200)
	spawnEnemy(t, e, cfg.KindShooter, 300, floorY-16)
	require.True(t, KillPlayer(e.World, player))

	tick(e, UpdateBehaviors, ticksFor(cfg.Enemy.Shooter.TimeBetweenShots*2))
	assert.Equal(t, 0, countShots(e))
}

func countShots(e *ecs.ECS) int {
	n := 0
	components.Shot.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
