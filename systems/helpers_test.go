package systems

import (
	"testing"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/events"
	"github.com/automoto/plunger/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	floorY     = 336.0
	worldW     = 640
	worldH     = 368
	playerSize = 24.0
)

// newWorld builds a world with a collision space, context, session and a
// floor spanning the width of the space. Config is reset to defaults.
func newWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()

	e := ecs.NewECS(donburi.NewWorld())
	space := factory.CreateSpace(e, worldW, worldH, cfg.Proximity.CellSize, cfg.Proximity.CellSize)
	factory.CreateWorldContext(e, space)
	factory.CreateSession(e)
	factory.CreateGround(e, 0, floorY, worldW, 32)
	return e
}

// newWorldWithCamera adds a camera showing the whole space.
func newWorldWithCamera(t *testing.T) *ecs.ECS {
	t.Helper()
	e := newWorld(t)
	factory.CreateCamera(e, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
	return e
}

// spawnPlayer places the player standing on the floor at x.
func spawnPlayer(e *ecs.ECS, x float64) *donburi.Entry {
	return factory.CreatePlayer(e, x, floorY-playerSize)
}

func spawnEnemy(t *testing.T, e *ecs.ECS, kind string, x, y float64) *donburi.Entry {
	t.Helper()
	enemy, err := factory.CreateEnemy(e, kind, x, y, factory.EnemyOptions{})
	require.NoError(t, err)
	return enemy
}

// recorder collects events delivered by events.ProcessAll.
type recorder struct {
	paralyzed   []events.EnemyParalyzed
	killed      []events.EnemyKilled
	stuck       []events.PlungerStuck
	destroyed   []events.PlungerDestroyed
	highlighted []events.PlungerHighlighted
	damaged     []events.PlayerDamaged
	died        []events.PlayerDied
	invEnded    []events.InvincibilityEnded
	inventory   []events.InventoryChanged
	points      []events.PointsChanged
}

func record(w donburi.World) *recorder {
	r := &recorder{}
	events.EnemyParalyzedEvent.Subscribe(w, func(_ donburi.World, ev events.EnemyParalyzed) {
		r.paralyzed = append(r.paralyzed, ev)
	})
	events.EnemyKilledEvent.Subscribe(w, func(_ donburi.World, ev events.EnemyKilled) {
		r.killed = append(r.killed, ev)
	})
	events.PlungerStuckEvent.Subscribe(w, func(_ donburi.World, ev events.PlungerStuck) {
		r.stuck = append(r.stuck, ev)
	})
	events.PlungerDestroyedEvent.Subscribe(w, func(_ donburi.World, ev events.PlungerDestroyed) {
		r.destroyed = append(r.destroyed, ev)
	})
	events.PlungerHighlightedEvent.Subscribe(w, func(_ donburi.World, ev events.PlungerHighlighted) {
		r.highlighted = append(r.highlighted, ev)
	})
	events.PlayerDamagedEvent.Subscribe(w, func(_ donburi.World, ev events.PlayerDamaged) {
		r.damaged = append(r.damaged, ev)
	})
	events.PlayerDiedEvent.Subscribe(w, func(_ donburi.World, ev events.PlayerDied) {
		r.died = append(r.died, ev)
	})
	events.InvincibilityEndedEvent.Subscribe(w, func(_ donburi.World, ev events.InvincibilityEnded) {
		r.invEnded = append(r.invEnded, ev)
	})
	events.InventoryChangedEvent.Subscribe(w, func(_ donburi.World, ev events.InventoryChanged) {
		r.inventory = append(r.inventory, ev)
	})
	events.PointsChangedEvent.Subscribe(w, func(_ donburi.World, ev events.PointsChanged) {
		r.points = append(r.points, ev)
	})
	return r
}

// flyUntilSettled updates plungers until p leaves Flying, for at most n ticks.
func flyUntilSettled(t *testing.T, e *ecs.ECS, p *donburi.Entry, n int) components.PlungerState {
	t.Helper()
	for i := 0; i < n; i++ {
		if !p.Valid() {
			return components.PlungerDestroyed
		}
		if s := components.Plunger.Get(p).State; s != components.PlungerFlying {
			return s
		}
		UpdatePlungers(e)
	}
	if !p.Valid() {
		return components.PlungerDestroyed
	}
	return components.Plunger.Get(p).State
}

func moveTo(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	obj.X, obj.Y = x, y
	obj.Update()
}

func tick(e *ecs.ECS, system func(*ecs.ECS), n int) {
	for i := 0; i < n; i++ {
		system(e)
	}
}

// ticksFor returns the number of ticks covering d seconds.
func ticksFor(d float64) int {
	return int(d*float64(cfg.C.TickRate)) + 1
}

// createWall places a full-height solid whose left edge is at x.
func createWall(e *ecs.ECS, x float64) *donburi.Entry {
	return factory.CreateGround(e, x, 0, 16, floorY)
}

// testingWorld is a world holding a player and one patrol enemy.
type testingWorld struct {
	*ecs.ECS
	player *donburi.Entry
	enemy  *donburi.Entry
}

func newTestingWorld(t *testing.T) *testingWorld {
	t.Helper()
	e := newWorldWithCamera(t)
	w := &testingWorld{ECS: e}
	w.player = spawnPlayer(e, 100)
	w.enemy = spawnEnemy(t, e, cfg.KindPatrol, 300, floorY-16)
	return w
}

func createEnemy(e *ecs.ECS, kind string) (*donburi.Entry, error) {
	return factory.CreateEnemy(e, kind, 0, 0, factory.EnemyOptions{})
}
