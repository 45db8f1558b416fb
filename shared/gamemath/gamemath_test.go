package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampInt(t *testing.T) {
	tests := []struct {
		v, lo, hi, want int
	}{
		{-2, 0, 3, 0},
		{2, 0, 3, 2},
		{7, 0, 3, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampInt(tt.v, tt.lo, tt.hi))
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}), "touching edges do not overlap")
	assert.False(t, a.Overlaps(Rect{X: 20, Y: 20, W: 5, H: 5}))
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 50}.Expand(0.1)
	assert.Equal(t, Rect{X: -10, Y: -5, W: 120, H: 60}, r)
	assert.True(t, r.Contains(-9, 0))
	assert.False(t, r.Contains(-11, 0))
}

func TestDistanceToRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.Zero(t, DistanceToRect(5, 5, r))
	assert.InDelta(t, 5.0, DistanceToRect(15, 5, r), 1e-9)
	assert.InDelta(t, 5.0, DistanceToRect(13, 14, r), 1e-9)
	assert.True(t, CircleIntersectsRect(13, 14, 5, r))
	assert.False(t, CircleIntersectsRect(13, 14, 4.9, r))
}

func TestRayRect(t *testing.T) {
	r := Rect{X: 10, Y: -5, W: 10, H: 10}

	d, ok := RayRect(0, 0, 1, 0, 100, r)
	assert.True(t, ok)
	assert.InDelta(t, 10.0, d, 1e-9)

	_, ok = RayRect(0, 0, 1, 0, 5, r)
	assert.False(t, ok, "beyond max distance")

	_, ok = RayRect(0, 0, 0, 1, 100, r)
	assert.False(t, ok)

	d, ok = RayRect(15, -20, 0, 1, 100, r)
	assert.True(t, ok)
	assert.InDelta(t, 15.0, d, 1e-9)
}

func TestSurfaceAngle(t *testing.T) {
	// Floor normal points up (screen space y grows downward).
	assert.InDelta(t, -math.Pi/2-math.Pi, SurfaceAngle(0, -1), 1e-9)
	assert.InDelta(t, -math.Pi, SurfaceAngle(1, 0), 1e-9)
}

func TestVelocityToward(t *testing.T) {
	vx, vy := VelocityToward(0, 0, 3, 4, 10)
	assert.InDelta(t, 6.0, vx, 1e-9)
	assert.InDelta(t, 8.0, vy, 1e-9)

	vx, vy = VelocityToward(1, 1, 1, 1, 10)
	assert.Zero(t, vx)
	assert.Zero(t, vy)
}
