package proximity

import (
	"math"
	"sort"

	"github.com/automoto/plunger/shared/gamemath"
	"github.com/automoto/plunger/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Candidate is an entity found by a proximity query.
type Candidate struct {
	Entry  *donburi.Entry
	Object *resolv.Object
	// Distance from the query point to the closest point of the object.
	Distance float64
	// CenterDistance from the query point to the object's center.
	CenterDistance float64
}

// Coordinator wraps an Oracle with the two gameplay queries. Results are
// nearest-first unless legacy ordering is requested, in which case they come
// back in the oracle's own order.
type Coordinator struct {
	oracle      Oracle
	legacyOrder bool
}

func NewCoordinator(oracle Oracle, legacyOrder bool) *Coordinator {
	return &Coordinator{oracle: oracle, legacyOrder: legacyOrder}
}

func (c *Coordinator) Oracle() Oracle {
	return c.oracle
}

// EnemiesWithin returns enemies whose bounds touch the circle.
func (c *Coordinator) EnemiesWithin(x, y, radius float64) []Candidate {
	return c.within(x, y, radius, tags.ResolvEnemy)
}

// RetrievablePlungersWithin returns stuck plungers whose bounds touch the circle.
func (c *Coordinator) RetrievablePlungersWithin(x, y, radius float64) []Candidate {
	return c.within(x, y, radius, tags.ResolvStuckPlunger)
}

func (c *Coordinator) within(x, y, radius float64, tag string) []Candidate {
	if c == nil || c.oracle == nil {
		return nil
	}
	objects := c.oracle.QueryCircle(x, y, radius, tag)
	out := make([]Candidate, 0, len(objects))
	for _, obj := range objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		r := rectOf(obj)
		cx, cy := r.Center()
		out = append(out, Candidate{
			Entry:          entry,
			Object:         obj,
			Distance:       gamemath.DistanceToRect(x, y, r),
			CenterDistance: math.Hypot(cx-x, cy-y),
		})
	}
	if !c.legacyOrder {
		sortNearest(out)
	}
	return out
}

func sortNearest(cs []Candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		a, b := cs[i], cs[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.CenterDistance != b.CenterDistance {
			return a.CenterDistance < b.CenterDistance
		}
		return before(a.Object, b.Object)
	})
}
