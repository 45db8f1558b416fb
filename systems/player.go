package systems

import (
	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/events"
	"github.com/automoto/plunger/input"
	"github.com/automoto/plunger/shared/gamemath"
	"github.com/automoto/plunger/systems/factory"
	"github.com/automoto/plunger/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry := playerOf(ecs.World)
	if !valid(playerEntry) {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Dead {
		return
	}

	frame := CurrentFrame(ecs.World)
	updatePlayerTimers(ecs.World, playerEntry, player)
	handleMovement(playerEntry, player, frame)

	if frame.FirePressed {
		aimX, aimY := aimDirection(ecs.World, playerEntry, player, frame)
		FirePlunger(ecs, playerEntry, aimX, aimY)
	}
	if frame.RetrievePressed {
		TryRetrievePlunger(ecs.World, playerEntry)
	}
}

// updatePlayerTimers counts down the timed effects. Each effect ends
// exactly once, on the tick its timer runs out.
func updatePlayerTimers(w donburi.World, entry *donburi.Entry, player *components.PlayerData) {
	dt := cfg.TickSeconds()

	if player.Invincibility.Tick(dt) {
		events.InvincibilityEndedEvent.Publish(w, events.InvincibilityEnded{Player: entry})
	}
	if player.Knockback.Tick(dt) {
		components.Physics.Get(entry).SpeedX = 0
	}
	player.Coyote.Tick(dt)
}

func handleMovement(entry *donburi.Entry, player *components.PlayerData, frame input.Frame) {
	physics := components.Physics.Get(entry)

	// Knockback drives velocity until it expires
	if player.Knockback.Active() {
		return
	}

	physics.SpeedX = frame.Horizontal * player.MoveSpeed
	if frame.Horizontal > 0 {
		player.Facing = cfg.DirectionRight
	} else if frame.Horizontal < 0 {
		player.Facing = cfg.DirectionLeft
	}

	if physics.OnGround != nil {
		player.Coyote.Start(cfg.Player.CoyoteTime)
	}

	if frame.JumpPressed && (physics.OnGround != nil || player.Coyote.Active()) {
		physics.SpeedY = -player.JumpSpeed
		physics.OnGround = nil
		player.Coyote.Stop()
	}

	// Releasing jump early cuts the rise short
	if frame.JumpReleased && physics.SpeedY < 0 {
		physics.SpeedY *= cfg.Player.JumpCutMultiplier
	}
}

// aimDirection resolves the fire direction from the cursor, an explicit
// aim vector, or the player's facing, in that order.
func aimDirection(w donburi.World, entry *donburi.Entry, player *components.PlayerData, frame input.Frame) (float64, float64) {
	cx, cy := components.Object.Get(entry).Center()

	if frame.HasCursor {
		if camera := factory.Context(w).Camera; valid(camera) {
			wx, wy := components.Camera.Get(camera).ToWorld(frame.CursorX, frame.CursorY)
			if dx, dy := gamemath.Normalize(wx-cx, wy-cy); dx != 0 || dy != 0 {
				return dx, dy
			}
		}
	}
	if dx, dy := gamemath.Normalize(frame.AimX, frame.AimY); dx != 0 || dy != 0 {
		return dx, dy
	}
	return player.Facing, 0
}

// FirePlunger launches a plunger along (aimX, aimY) when one is available.
// The plunger is reserved until it lands.
func FirePlunger(ecs *ecs.ECS, entry *donburi.Entry, aimX, aimY float64) *donburi.Entry {
	if !valid(entry) {
		return nil
	}
	player := components.Player.Get(entry)

	var plunger *donburi.Entry
	tryTransition("player.fire", !player.Dead && player.Available() > 0, func() {
		dx, dy := gamemath.Normalize(aimX, aimY)
		if dx == 0 && dy == 0 {
			dx = player.Facing
		}
		cx, cy := components.Object.Get(entry).Center()
		offset := cfg.Plunger.SpawnOffset

		plunger = factory.CreatePlunger(ecs, entry,
			cx+dx*offset, cy+dy*offset,
			dx*cfg.Plunger.Speed, dy*cfg.Plunger.Speed)
		player.InFlight++

		events.PlungerFiredEvent.Publish(ecs.World, events.PlungerFired{Plunger: plunger, Owner: entry})
		publishInventory(ecs.World, player)
	})
	return plunger
}

// TryRetrievePlunger retrieves the nearest stuck plunger within range and
// credits it. This is the only way a paralyzed enemy dies.
func TryRetrievePlunger(w donburi.World, entry *donburi.Entry) bool {
	if !valid(entry) {
		return false
	}
	player := components.Player.Get(entry)

	retrieved := false
	tryTransition("player.retrieve", !player.Dead && player.Plungers < player.MaxPlungers, func() {
		retrieved = retrieveNearest(w, entry, player)
	})
	return retrieved
}

func retrieveNearest(w donburi.World, entry *donburi.Entry, player *components.PlayerData) bool {
	coordinator := factory.Context(w).Proximity
	if coordinator == nil {
		warnOnce("player.proximity", "no proximity coordinator wired, retrieval disabled")
		return false
	}

	cx, cy := components.Object.Get(entry).Center()
	for _, c := range coordinator.RetrievablePlungersWithin(cx, cy, player.RetrieveRange) {
		if RetrievePlunger(w, c.Entry) {
			ReturnPlungerToPlayer(w, entry)
			return true
		}
	}
	return false
}

// playerOf returns the player from the world context, falling back to a
// tag lookup.
func playerOf(w donburi.World) *donburi.Entry {
	if p := factory.Context(w).Player; valid(p) {
		return p
	}
	if p, ok := tags.Player.First(w); ok {
		return p
	}
	return nil
}
