package gamemath

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether the two rectangles share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Expand grows the rectangle by margin times its size on every side.
func (r Rect) Expand(margin float64) Rect {
	mx, my := r.W*margin, r.H*margin
	return Rect{X: r.X - mx, Y: r.Y - my, W: r.W + 2*mx, H: r.H + 2*my}
}

// DistanceToRect returns the distance from (x, y) to the closest point of r.
// Points inside r are at distance 0.
func DistanceToRect(x, y float64, r Rect) float64 {
	dx := math.Max(math.Max(r.X-x, 0), x-r.Right())
	dy := math.Max(math.Max(r.Y-y, 0), y-r.Bottom())
	return math.Hypot(dx, dy)
}

// CircleIntersectsRect reports whether the circle touches r.
func CircleIntersectsRect(cx, cy, radius float64, r Rect) bool {
	return DistanceToRect(cx, cy, r) <= radius
}

// RayRect intersects the ray (ox, oy) + t*(dx, dy), t in [0, maxT], with r and
// returns the entry distance t. (dx, dy) need not be normalized.
func RayRect(ox, oy, dx, dy, maxT float64, r Rect) (float64, bool) {
	tMin, tMax := 0.0, maxT
	for _, axis := range [2]struct{ o, d, lo, hi float64 }{
		{ox, dx, r.X, r.Right()},
		{oy, dy, r.Y, r.Bottom()},
	} {
		if axis.d == 0 {
			if axis.o < axis.lo || axis.o > axis.hi {
				return 0, false
			}
			continue
		}
		t1 := (axis.lo - axis.o) / axis.d
		t2 := (axis.hi - axis.o) / axis.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
