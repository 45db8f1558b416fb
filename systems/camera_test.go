package systems

import (
	"testing"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/automoto/plunger/shared/leveldata"
	"github.com/automoto/plunger/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name            string
		v, view, extent float64
		want            float64
	}{
		{"inside", 500, 200, 1000, 500},
		{"left edge", 20, 200, 1000, 100},
		{"right edge", 990, 200, 1000, 900},
		{"level smaller than view", 10, 200, 150, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampAxis(tt.v, tt.view, tt.extent))
		})
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	e := newWorldWithCamera(t)
	cfg.Camera.FollowLerp = 1
	factory.CreateLevel(e, &leveldata.Level{MapWidth: 2000, MapHeight: cfg.C.Height})

	player := spawnPlayer(e, 1000)
	UpdateCamera(e)

	camera := components.Camera.Get(factory.Context(e.World).Camera)
	px, _ := components.Object.Get(player).Center()
	assert.InDelta(t, px, camera.Position.X, 1e-9)
	assert.InDelta(t, float64(cfg.C.Height)/2, camera.Position.Y, 1e-9)
}
