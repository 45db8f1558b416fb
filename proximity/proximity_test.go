package proximity

import (
	"testing"

	"github.com/automoto/plunger/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type fixture struct {
	world donburi.World
	space *resolv.Space
}

func newFixture() *fixture {
	return &fixture{
		world: donburi.NewWorld(),
		space: resolv.NewSpace(512, 512, 8, 8),
	}
}

func (f *fixture) add(x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.Data = f.world.Entry(f.world.Create())
	f.space.Add(obj)
	return obj
}

func TestQueryCircleFiltersExactly(t *testing.T) {
	f := newFixture()
	near := f.add(100, 100, 16, 16, tags.ResolvEnemy)
	// Shares a broadphase cell with the circle's bounding box but lies outside the circle.
	corner := f.add(84, 84, 4, 4, tags.ResolvEnemy)
	f.add(102, 102, 4, 4, tags.ResolvSolid)

	o := NewResolvOracle(f.space)
	got := o.QueryCircle(96, 96, 10, tags.ResolvEnemy)

	assert.Contains(t, got, near)
	assert.NotContains(t, got, corner)
	assert.Len(t, got, 1)
	assert.Equal(t, got, o.QueryCircle(96, 96, 10, tags.ResolvEnemy), "probes leave no trace")
}

func TestQueryBox(t *testing.T) {
	f := newFixture()
	f.add(0, 100, 200, 16, tags.ResolvSolid)
	o := NewResolvOracle(f.space)

	assert.True(t, o.QueryBox(10, 99, 16, 2, tags.ResolvSolid))
	assert.False(t, o.QueryBox(10, 90, 16, 8, tags.ResolvSolid))
	assert.False(t, o.QueryBox(10, 99, 16, 2, tags.ResolvEnemy))
}

func TestRaycastReturnsNearest(t *testing.T) {
	f := newFixture()
	far := f.add(100, 0, 10, 40, tags.ResolvSolid)
	near := f.add(50, 0, 10, 40, tags.ResolvSolid)
	o := NewResolvOracle(f.space)

	hit, ok := o.Raycast(0, 20, 1, 0, 200, tags.ResolvSolid)
	require.True(t, ok)
	assert.Same(t, near, hit.Object)
	assert.InDelta(t, 50.0, hit.Distance, 1e-9)
	assert.InDelta(t, 50.0, hit.X, 1e-9)

	_, ok = o.Raycast(0, 20, 1, 0, 40, tags.ResolvSolid)
	assert.False(t, ok)

	hit, ok = o.Raycast(200, 20, -1, 0, 200, tags.ResolvSolid)
	require.True(t, ok)
	assert.Same(t, far, hit.Object)
}

func TestRaycastDown(t *testing.T) {
	f := newFixture()
	ground := f.add(0, 100, 64, 16, tags.ResolvSolid)
	o := NewResolvOracle(f.space)

	hit, ok := o.Raycast(20, 90, 0, 1, 16, tags.ResolvSolid)
	require.True(t, ok)
	assert.Same(t, ground, hit.Object)
	assert.InDelta(t, 10.0, hit.Distance, 1e-9)

	_, ok = o.Raycast(80, 90, 0, 1, 16, tags.ResolvSolid)
	assert.False(t, ok, "no ground past the edge")
}

func TestCoordinatorNearestFirst(t *testing.T) {
	f := newFixture()
	a := f.add(140, 100, 10, 10, tags.ResolvEnemy)
	b := f.add(110, 100, 10, 10, tags.ResolvEnemy)
	c := f.add(90, 100, 10, 10, tags.ResolvEnemy)

	coord := NewCoordinator(NewResolvOracle(f.space), false)
	got := coord.EnemiesWithin(105, 105, 40)

	require.Len(t, got, 3)
	// b and c are both 5px away with centers 10px away, so x breaks the tie.
	assert.Same(t, c, got[0].Object)
	assert.Same(t, b, got[1].Object)
	assert.Same(t, a, got[2].Object)
	assert.Equal(t, got[0].Entry, c.Data)
}

func TestCoordinatorSkipsInvalidEntries(t *testing.T) {
	f := newFixture()
	obj := f.add(100, 100, 10, 10, tags.ResolvStuckPlunger)
	gone := f.add(110, 100, 10, 10, tags.ResolvStuckPlunger)
	f.world.Remove(gone.Data.(*donburi.Entry).Entity())
	f.add(105, 100, 10, 10, tags.ResolvEnemy)

	coord := NewCoordinator(NewResolvOracle(f.space), false)
	got := coord.RetrievablePlungersWithin(105, 105, 30)

	require.Len(t, got, 1)
	assert.Same(t, obj, got[0].Object)
}

func TestCoordinatorNilSafe(t *testing.T) {
	var c *Coordinator
	assert.Empty(t, c.EnemiesWithin(0, 0, 10))
	assert.Empty(t, NewCoordinator(nil, false).EnemiesWithin(0, 0, 10))
}
