package systems

import (
	"math"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/events"
	"github.com/automoto/plunger/proximity"
	"github.com/automoto/plunger/shared/gamemath"
	"github.com/automoto/plunger/systems/factory"
	"github.com/automoto/plunger/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type boundsResult int

const (
	inBounds boundsResult = iota
	outOfView
	tooFar
)

// UpdatePlungers advances every plunger. A Flying plunger is checked, in
// order, against the expanded viewport, nearby enemies and the ground; the
// first condition met decides its fate for this tick.
func UpdatePlungers(e *ecs.ECS) {
	ctx := factory.Context(e.World)

	var toReturn, toLose, orphaned []*donburi.Entry

	components.Plunger.Each(e.World, func(entry *donburi.Entry) {
		p := components.Plunger.Get(entry)

		switch p.State {
		case components.PlungerFlying:
			switch checkBounds(ctx, entry, p) {
			case outOfView:
				toReturn = append(toReturn, entry)
				return
			case tooFar:
				toLose = append(toLose, entry)
				return
			}
			if hitEnemy(e.World, ctx, entry, p) {
				return
			}
			flyAndLand(e.World, ctx, entry, p)

		case components.PlungerStuckOnEnemy:
			if !followEnemy(entry, p) {
				orphaned = append(orphaned, entry)
			}
		}
	})

	for _, entry := range toReturn {
		ReturnToPlayer(e.World, entry, true)
	}
	for _, entry := range toLose {
		DestroyPlunger(e.World, entry, events.ReasonLost, false)
	}
	for _, entry := range orphaned {
		DestroyPlunger(e.World, entry, events.ReasonCascade, false)
	}
}

func checkBounds(ctx *components.WorldContextData, entry *donburi.Entry, p *components.PlungerData) boundsResult {
	cx, cy := components.Object.Get(entry).Center()

	if valid(ctx.Camera) {
		view := components.Camera.Get(ctx.Camera).Viewport().Expand(cfg.Plunger.ViewportMargin)
		if !view.Contains(cx, cy) {
			return outOfView
		}
		return inBounds
	}

	warnOnce("plunger.viewport", "no camera wired, plungers use the flight distance limit")
	if math.Hypot(cx-p.StartX, cy-p.StartY) > cfg.Plunger.MaxFlightDistance {
		return tooFar
	}
	return inBounds
}

// hitEnemy sticks the plunger to the nearest living enemy within its hit
// radius. A Paralyzed enemy takes the plunger too; only Dead ones are skipped.
func hitEnemy(w donburi.World, ctx *components.WorldContextData, entry *donburi.Entry, p *components.PlungerData) bool {
	if ctx.Proximity == nil {
		warnOnce("plunger.proximity", "no proximity coordinator wired, plungers cannot hit enemies")
		return false
	}
	cx, cy := components.Object.Get(entry).Center()
	for _, c := range ctx.Proximity.EnemiesWithin(cx, cy, p.HitRadius) {
		if EnemyState(c.Entry) == components.EnemyDead {
			continue
		}
		stickToEnemy(w, entry, p, c)
		return true
	}
	return false
}

func stickToEnemy(w donburi.World, entry *donburi.Entry, p *components.PlungerData, target proximity.Candidate) {
	obj := components.Object.Get(entry)

	Paralyze(w, target.Entry, entry)

	p.State = components.PlungerStuckOnEnemy
	p.AttachedTo = target.Entry
	p.OffsetX = obj.X - target.Object.X
	p.OffsetY = obj.Y - target.Object.Y
	stopAndMarkRetrievable(entry)

	consumePlunger(w, p.Owner)
	events.PlungerStuckEvent.Publish(w, events.PlungerStuck{
		Plunger: entry,
		Enemy:   target.Entry,
		X:       obj.X,
		Y:       obj.Y,
		Angle:   p.Angle,
	})
}

// flyAndLand integrates gravity and moves the plunger one axis at a time.
// Touching ground sticks it at the last free position.
func flyAndLand(w donburi.World, ctx *components.WorldContextData, entry *donburi.Entry, p *components.PlungerData) {
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	physics.SpeedY = math.Min(physics.SpeedY+physics.Gravity, physics.MaxFallSpeed)
	p.Angle = math.Atan2(physics.SpeedY, physics.SpeedX)

	var oracle proximity.Oracle
	if ctx.Proximity != nil {
		oracle = ctx.Proximity.Oracle()
	}

	if physics.SpeedX != 0 {
		if oracle != nil && oracle.QueryBox(obj.X+physics.SpeedX, obj.Y, obj.W, obj.H, tags.ResolvSolid) {
			landOnSurface(w, entry, p, -sign(physics.SpeedX), 0)
			return
		}
		obj.X += physics.SpeedX
	}
	if physics.SpeedY != 0 {
		if oracle != nil && oracle.QueryBox(obj.X, obj.Y+physics.SpeedY, obj.W, obj.H, tags.ResolvSolid) {
			landOnSurface(w, entry, p, 0, -sign(physics.SpeedY))
			return
		}
		obj.Y += physics.SpeedY
	}
	obj.Update()
}

func landOnSurface(w donburi.World, entry *donburi.Entry, p *components.PlungerData, nx, ny float64) {
	obj := components.Object.Get(entry)

	p.State = components.PlungerStuckOnSurface
	p.Angle = gamemath.SurfaceAngle(nx, ny)
	stopAndMarkRetrievable(entry)

	consumePlunger(w, p.Owner)
	events.PlungerStuckEvent.Publish(w, events.PlungerStuck{
		Plunger: entry,
		X:       obj.X,
		Y:       obj.Y,
		Angle:   p.Angle,
	})
}

func stopAndMarkRetrievable(entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	physics.SpeedX, physics.SpeedY, physics.Gravity = 0, 0, 0

	obj := components.Object.Get(entry)
	obj.AddTags(tags.ResolvStuckPlunger)
	obj.Update()
}

// followEnemy keeps a StuckOnEnemy plunger at its offset from the enemy.
func followEnemy(entry *donburi.Entry, p *components.PlungerData) bool {
	if !valid(p.AttachedTo) {
		return false
	}
	enemyObj := components.Object.Get(p.AttachedTo)
	obj := components.Object.Get(entry)
	obj.X = enemyObj.X + p.OffsetX
	obj.Y = enemyObj.Y + p.OffsetY
	obj.Update()
	return true
}

// RetrievePlunger destroys a stuck plunger. A plunger stuck on an enemy
// kills that enemy first. Inventory is not credited here; that is the
// caller's job.
func RetrievePlunger(w donburi.World, entry *donburi.Entry) bool {
	if !valid(entry) {
		return false
	}
	p := components.Plunger.Get(entry)
	return tryTransition("plunger.retrieve", p.Stuck(), func() {
		if p.State == components.PlungerStuckOnEnemy {
			enemy := p.AttachedTo
			p.AttachedTo = nil
			if valid(enemy) {
				if data := components.Enemy.Get(enemy); data.Plunger == entry {
					data.Plunger = nil
				}
				OnPlungerRetrieved(w, enemy)
			}
		}
		DestroyPlunger(w, entry, events.ReasonRetrieved, false)
	})
}

// ReturnToPlayer destroys a plunger that left the screen. With credit set,
// the owner gets a plunger back even though nothing was retrieved.
func ReturnToPlayer(w donburi.World, entry *donburi.Entry, credit bool) bool {
	return DestroyPlunger(w, entry, events.ReasonOutOfBounds, credit)
}

// DestroyPlunger is idempotent. It releases the owner's in-flight
// reservation, detaches from any enemy and removes the plunger.
func DestroyPlunger(w donburi.World, entry *donburi.Entry, reason events.DestroyReason, credit bool) bool {
	if !valid(entry) {
		return false
	}
	p := components.Plunger.Get(entry)
	return tryTransition("plunger.destroy", p.State != components.PlungerDestroyed, func() {
		wasFlying := p.State == components.PlungerFlying
		p.State = components.PlungerDestroyed

		if valid(p.AttachedTo) {
			if data := components.Enemy.Get(p.AttachedTo); data.Plunger == entry {
				data.Plunger = nil
			}
		}
		p.AttachedTo = nil

		owner := p.Owner
		if wasFlying && valid(owner) {
			player := components.Player.Get(owner)
			player.InFlight = gamemath.ClampInt(player.InFlight-1, 0, player.InFlight)
			publishInventory(w, player)
		}

		removeEntity(w, entry)
		if credit {
			ReturnPlungerToPlayer(w, owner)
		}

		events.PlungerDestroyedEvent.Publish(w, events.PlungerDestroyed{
			Plunger:  entry.Entity(),
			Reason:   reason,
			Credited: credit,
		})
	})
}

// consumePlunger settles a landed plunger against its owner's inventory.
func consumePlunger(w donburi.World, owner *donburi.Entry) {
	if !valid(owner) {
		warnOnce("plunger.owner", "plunger has no owner, inventory not updated")
		return
	}
	player := components.Player.Get(owner)
	player.InFlight = gamemath.ClampInt(player.InFlight-1, 0, player.InFlight)
	player.Plungers = gamemath.ClampInt(player.Plungers-1, 0, player.MaxPlungers)
	publishInventory(w, player)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
