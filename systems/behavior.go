package systems

import (
	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/systems/factory"
	"github.com/automoto/plunger/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBehaviors runs the autonomous movement and attacks of every enemy
// that is Alive and not frozen.
func UpdateBehaviors(ecs *ecs.ECS) {
	dt := cfg.TickSeconds()

	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		if behaving(e) {
			updatePatrol(ecs.World, e)
		}
	})

	components.Oscillate.Each(ecs.World, func(e *donburi.Entry) {
		if behaving(e) {
			updateOscillate(e, dt)
		}
	})

	type shot struct {
		shooter          *donburi.Entry
		targetX, targetY float64
	}
	var shots []shot
	components.Shooter.Each(ecs.World, func(e *donburi.Entry) {
		if !behaving(e) {
			return
		}
		if tx, ty, fire := updateShooter(ecs.World, e, dt); fire {
			shots = append(shots, shot{e, tx, ty})
		}
	})
	for _, s := range shots {
		factory.CreateShot(ecs, s.shooter, s.targetX, s.targetY)
	}
}

func behaving(e *donburi.Entry) bool {
	return EnemyState(e) == components.EnemyAlive && !e.HasComponent(tags.Frozen)
}

// updatePatrol walks the enemy and turns it around at ledges and walls.
func updatePatrol(w donburi.World, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	patrol := components.Patrol.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	typeConfig := enemy.TypeConfig

	if oracle := oracleOf(w); oracle != nil && physics.OnGround != nil {
		front := obj.X
		if patrol.Direction > 0 {
			front = obj.X + obj.W
		}
		probeX := front + patrol.Direction*typeConfig.EdgeProbeDistance
		bottom := obj.Y + obj.H

		_, ground := oracle.Raycast(probeX, bottom-1, 0, 1, typeConfig.EdgeProbeDistance+1, tags.ResolvSolid)
		wall := oracle.QueryBox(obj.X+patrol.Direction*typeConfig.PatrolSpeed, obj.Y, obj.W, obj.H, tags.ResolvSolid)
		if !ground || wall {
			patrol.Direction = -patrol.Direction
		}
	}

	physics.SpeedX = patrol.Direction * typeConfig.PatrolSpeed
}

// updateOscillate moves the enemy along its tween about the spawn point.
func updateOscillate(e *donburi.Entry, dt float64) {
	osc := components.Oscillate.Get(e)
	obj := components.Object.Get(e)
	typeConfig := components.Enemy.Get(e).TypeConfig

	offset, _, done := osc.Tween.Update(float32(dt))
	if osc.Vertical {
		obj.Y = osc.OriginY + float64(offset)
	} else {
		obj.X = osc.OriginX + float64(offset)
	}
	if done {
		osc.Tween = factory.NewOscillateTween(typeConfig.MoveRange, typeConfig.LegDuration)
	}
}

// updateShooter reports whether the turret fires this tick, and at what.
// The shot timer only runs while the player is within detection range.
func updateShooter(w donburi.World, e *donburi.Entry, dt float64) (float64, float64, bool) {
	shooter := components.Shooter.Get(e)
	typeConfig := components.Enemy.Get(e).TypeConfig

	target := playerOf(w)
	oracle := oracleOf(w)
	if !valid(target) || components.Player.Get(target).Dead || oracle == nil {
		shooter.Detected = false
		shooter.Cooldown.Stop()
		return 0, 0, false
	}

	cx, cy := components.Object.Get(e).Center()
	if len(oracle.QueryCircle(cx, cy, typeConfig.DetectionRadius, tags.ResolvPlayer)) == 0 {
		shooter.Detected = false
		shooter.Cooldown.Stop()
		return 0, 0, false
	}

	if !shooter.Detected {
		shooter.Detected = true
		shooter.Cooldown.Start(typeConfig.TimeBetweenShots)
		return 0, 0, false
	}
	if !shooter.Cooldown.Tick(dt) {
		return 0, 0, false
	}
	shooter.Cooldown.Start(typeConfig.TimeBetweenShots)

	tx, ty := components.Object.Get(target).Center()
	return tx, ty, true
}
