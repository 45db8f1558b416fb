// Package game assembles a playable world from a level and drives it one
// fixed tick at a time.
package game

import (
	"fmt"
	"log"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/events"
	"github.com/automoto/plunger/input"
	"github.com/automoto/plunger/shared/leveldata"
	"github.com/automoto/plunger/systems"
	"github.com/automoto/plunger/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type Game struct {
	ecs   *ecs.ECS
	level *leveldata.Level
	ticks int
}

// New builds the world for level: collision space, context, camera, ground,
// player and enemies, with the gameplay systems registered in tick order.
func New(level *leveldata.Level) (*Game, error) {
	if level == nil {
		return nil, fmt.Errorf("new game: nil level")
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateSession)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateBehaviors)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdatePlungers)
	ecs.AddSystem(systems.UpdateShots)
	ecs.AddSystem(systems.UpdateContactDamage)
	ecs.AddSystem(systems.UpdateHighlights)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateObjects)

	factory.CreateLevel(ecs, level)

	// Now create the space for collision detection using the level's dimensions.
	cell := cfg.Proximity.CellSize
	spaceEntry := factory.CreateSpace(ecs, level.MapWidth, level.MapHeight, cell, cell)
	factory.CreateWorldContext(ecs, spaceEntry)
	factory.CreateSession(ecs)

	for _, r := range level.Ground {
		factory.CreateGround(ecs, r.X, r.Y, r.W, r.H)
	}

	// The player must exist before enemies so they can resolve their scorer.
	player := factory.CreatePlayer(ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y)
	px, py := components.Object.Get(player).Center()
	factory.CreateCamera(ecs, px, py)

	for _, spawn := range level.Enemies {
		_, err := factory.CreateEnemy(ecs, spawn.Kind, spawn.X, spawn.Y, factory.EnemyOptions{
			MaxHealth: spawn.MaxHealth,
			Points:    spawn.Points,
			Vertical:  spawn.Vertical,
		})
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", level.Name, err)
		}
	}

	systems.RegisterSubscribers(ecs)
	systems.PublishPlayerState(ecs.World, player)

	log.Printf("Level %s ready: %d ground, %d enemies", level.Name, len(level.Ground), len(level.Enemies))

	return &Game{ecs: ecs, level: level}, nil
}

// Update runs one tick with the given input, then delivers the
// notifications published during it.
func (g *Game) Update(frame input.Frame) {
	systems.SetFrame(g.ecs.World, frame)
	g.ecs.Update()
	events.ProcessAll(g.ecs.World)
	g.ticks++
}

func (g *Game) ECS() *ecs.ECS {
	return g.ecs
}

func (g *Game) World() donburi.World {
	return g.ecs.World
}

func (g *Game) Level() *leveldata.Level {
	return g.level
}

// Ticks returns how many ticks have run.
func (g *Game) Ticks() int {
	return g.ticks
}

// Player returns the player entry. It stays valid after death.
func (g *Game) Player() *donburi.Entry {
	return factory.Context(g.ecs.World).Player
}

// Over reports whether the player has died.
func (g *Game) Over() bool {
	p := g.Player()
	return p == nil || !p.Valid() || components.Player.Get(p).Dead
}

// Elapsed returns the survival time in seconds.
func (g *Game) Elapsed() float64 {
	if e, ok := components.Session.First(g.ecs.World); ok {
		return components.Session.Get(e).Elapsed
	}
	return 0
}

func (g *Game) Enemies() []*donburi.Entry {
	return collect(g.ecs.World, components.Enemy)
}

func (g *Game) Plungers() []*donburi.Entry {
	return collect(g.ecs.World, components.Plunger)
}

func (g *Game) Shots() []*donburi.Entry {
	return collect(g.ecs.World, components.Shot)
}

func collect[T any](w donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var out []*donburi.Entry
	c.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
