// Package proximity answers the spatial questions the gameplay systems ask:
// which enemies a flying plunger touches, which stuck plungers a player can
// reach, whether there is ground under a pair of feet.
package proximity

import (
	"math"

	"github.com/automoto/plunger/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Hit is the first object struck by a ray.
type Hit struct {
	Object   *resolv.Object
	X, Y     float64
	Distance float64
}

// Oracle is the collision backend consumed by the coordinator.
type Oracle interface {
	// QueryCircle returns objects carrying any of tags whose bounds touch the circle.
	QueryCircle(x, y, radius float64, tags ...string) []*resolv.Object
	// QueryRect returns objects carrying any of tags that overlap the rectangle.
	QueryRect(x, y, w, h float64, tags ...string) []*resolv.Object
	// QueryBox reports whether QueryRect would return anything.
	QueryBox(x, y, w, h float64, tags ...string) bool
	// Raycast returns the nearest object hit within dist along (dirX, dirY).
	Raycast(x, y, dirX, dirY, dist float64, tags ...string) (Hit, bool)
}

// ResolvOracle implements Oracle on a resolv space. resolv's Check is a
// cell-level broadphase, so every query filters its results exactly.
type ResolvOracle struct {
	Space *resolv.Space
}

func NewResolvOracle(space *resolv.Space) *ResolvOracle {
	return &ResolvOracle{Space: space}
}

// broadphase returns the objects sharing a cell with the given bounds.
func (o *ResolvOracle) broadphase(x, y, w, h float64, tags []string) []*resolv.Object {
	if o.Space == nil {
		return nil
	}
	probe := resolv.NewObject(x, y, math.Max(w, 1), math.Max(h, 1))
	o.Space.Add(probe)
	defer o.Space.Remove(probe)

	if check := probe.Check(0, 0, tags...); check != nil {
		return check.Objects
	}
	return nil
}

func (o *ResolvOracle) QueryCircle(x, y, radius float64, tags ...string) []*resolv.Object {
	var out []*resolv.Object
	for _, obj := range o.broadphase(x-radius, y-radius, radius*2, radius*2, tags) {
		if gamemath.CircleIntersectsRect(x, y, radius, rectOf(obj)) {
			out = append(out, obj)
		}
	}
	return out
}

func (o *ResolvOracle) QueryRect(x, y, w, h float64, tags ...string) []*resolv.Object {
	area := gamemath.Rect{X: x, Y: y, W: w, H: h}
	var out []*resolv.Object
	for _, obj := range o.broadphase(x, y, w, h, tags) {
		if area.Overlaps(rectOf(obj)) {
			out = append(out, obj)
		}
	}
	return out
}

func (o *ResolvOracle) QueryBox(x, y, w, h float64, tags ...string) bool {
	return len(o.QueryRect(x, y, w, h, tags...)) > 0
}

func (o *ResolvOracle) Raycast(x, y, dirX, dirY, dist float64, tags ...string) (Hit, bool) {
	dx, dy := gamemath.Normalize(dirX, dirY)
	if dx == 0 && dy == 0 || dist <= 0 {
		return Hit{}, false
	}
	ex, ey := x+dx*dist, y+dy*dist
	minX, minY := math.Min(x, ex), math.Min(y, ey)

	var best Hit
	found := false
	for _, obj := range o.broadphase(minX, minY, math.Abs(ex-x), math.Abs(ey-y), tags) {
		t, ok := gamemath.RayRect(x, y, dx, dy, dist, rectOf(obj))
		if !ok {
			continue
		}
		if !found || t < best.Distance || t == best.Distance && before(obj, best.Object) {
			best = Hit{Object: obj, X: x + dx*t, Y: y + dy*t, Distance: t}
			found = true
		}
	}
	return best, found
}

func rectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// before orders objects by position so equal-distance results are stable.
func before(a, b *resolv.Object) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
