package factory

import (
	"fmt"

	"github.com/automoto/plunger/archetypes"
	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyOptions overrides per-spawn values from the level file. Zero values
// keep the type's defaults.
type EnemyOptions struct {
	MaxHealth int
	Points    int
	Vertical  bool // oscillate along y instead of x
}

// CreateEnemy spawns an enemy of the given kind (see cfg.KindPatrol etc.).
// The scorer is resolved from the world context at spawn time.
func CreateEnemy(ecs *ecs.ECS, kind string, x, y float64, opts EnemyOptions) (*donburi.Entry, error) {
	enemyType, ok := cfg.Enemy.Type(kind)
	if !ok {
		return nil, fmt.Errorf("unknown enemy kind %q", kind)
	}
	typeConfig := *enemyType

	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := typeConfig.CollisionWidth, typeConfig.CollisionHeight
	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	addToSpace(ecs, obj)

	maxHealth := typeConfig.MaxHealth
	if opts.MaxHealth > 0 {
		maxHealth = opts.MaxHealth
	}
	points := typeConfig.Points
	if opts.Points > 0 {
		points = opts.Points
	}

	enemyData := components.EnemyData{
		TypeName:   typeConfig.Name,
		TypeConfig: &typeConfig,
		State:      components.EnemyAlive,
		Points:     points,
		Scorer:     Context(ecs.World).Player,
	}

	switch kind {
	case cfg.KindPatrol:
		enemyData.Behavior = components.BehaviorPatrol
		donburi.Add(enemy, components.Patrol, &components.PatrolData{Direction: cfg.DirectionLeft})
	case cfg.KindOscillate:
		enemyData.Behavior = components.BehaviorOscillate
		donburi.Add(enemy, components.Oscillate, &components.OscillateData{
			OriginX:  x,
			OriginY:  y,
			Vertical: opts.Vertical,
			Tween:    NewOscillateTween(typeConfig.MoveRange, typeConfig.LegDuration),
		})
	case cfg.KindShooter:
		enemyData.Behavior = components.BehaviorShooter
		donburi.Add(enemy, components.Shooter, &components.ShooterData{})
	}

	components.Enemy.SetValue(enemy, enemyData)
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      typeConfig.Gravity,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: maxHealth,
		Max:     maxHealth,
	})

	return enemy, nil
}

// NewOscillateTween moves an offset out to +moveRange, across to -moveRange
// and back to zero. One pass takes two legs.
func NewOscillateTween(moveRange, legDuration float64) *gween.Sequence {
	r := float32(moveRange)
	d := float32(legDuration)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, r, d/2, ease.InOutSine),
		gween.New(r, -r, d, ease.InOutSine),
		gween.New(-r, 0, d/2, ease.InOutSine),
	)
	return tw
}
