package systems

import (
	"math"

	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/proximity"
	"github.com/automoto/plunger/systems/factory"
	"github.com/automoto/plunger/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// bodies are the characters moved by UpdatePhysics. Plungers and shots run
// their own movement.
var bodies = query.NewQuery(filter.And(
	filter.Contains(components.Physics, components.Object),
	filter.Not(filter.Contains(components.Plunger)),
	filter.Not(filter.Contains(components.Shot)),
))

func UpdatePhysics(ecs *ecs.ECS) {
	oracle := oracleOf(ecs.World)

	bodies.Each(ecs.World, func(e *donburi.Entry) {
		// Dead players are frozen in place
		if e.HasComponent(components.Player) && components.Player.Get(e).Dead {
			return
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.SpeedY = math.Min(physics.SpeedY+physics.Gravity, physics.MaxFallSpeed)

		moveX(oracle, obj, physics)
		moveY(oracle, obj, physics)
		physics.OnGround = groundUnder(oracle, obj)
		obj.Update()
	})
}

func moveX(oracle proximity.Oracle, obj *components.ObjectData, physics *components.PhysicsData) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}
	if oracle == nil {
		obj.X += dx
		return
	}

	hits := oracle.QueryRect(obj.X+dx, obj.Y, obj.W, obj.H, tags.ResolvSolid)
	if len(hits) == 0 {
		obj.X += dx
		return
	}
	if dx > 0 {
		left := math.Inf(1)
		for _, h := range hits {
			left = math.Min(left, h.X)
		}
		obj.X = left - obj.W
	} else {
		right := math.Inf(-1)
		for _, h := range hits {
			right = math.Max(right, h.X+h.W)
		}
		obj.X = right
	}
	physics.SpeedX = 0
}

func moveY(oracle proximity.Oracle, obj *components.ObjectData, physics *components.PhysicsData) {
	dy := physics.SpeedY
	if dy == 0 {
		return
	}
	if oracle == nil {
		obj.Y += dy
		return
	}

	hits := oracle.QueryRect(obj.X, obj.Y+dy, obj.W, obj.H, tags.ResolvSolid)
	if len(hits) == 0 {
		obj.Y += dy
		return
	}
	if dy > 0 {
		top := math.Inf(1)
		for _, h := range hits {
			top = math.Min(top, h.Y)
		}
		obj.Y = top - obj.H
	} else {
		bottom := math.Inf(-1)
		for _, h := range hits {
			bottom = math.Max(bottom, h.Y+h.H)
		}
		obj.Y = bottom
	}
	physics.SpeedY = 0
}

// groundUnder returns the solid directly below obj's feet.
func groundUnder(oracle proximity.Oracle, obj *components.ObjectData) *resolv.Object {
	if oracle == nil {
		return nil
	}
	if hits := oracle.QueryRect(obj.X, obj.Y+obj.H, obj.W, 1, tags.ResolvSolid); len(hits) > 0 {
		return hits[0]
	}
	return nil
}

func oracleOf(w donburi.World) proximity.Oracle {
	if c := factory.Context(w).Proximity; c != nil {
		return c.Oracle()
	}
	return nil
}
