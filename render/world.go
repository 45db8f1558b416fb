// Package render draws the gameplay world as debug rectangles.
package render

import (
	"image/color"

	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/systems/factory"
	"github.com/automoto/plunger/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var (
	colorSolid     = color.RGBA{100, 100, 100, 255}
	colorPlayer    = color.RGBA{0, 0, 255, 255}
	colorEnemy     = color.RGBA{255, 0, 0, 255}
	colorParalyzed = color.RGBA{255, 160, 0, 255}
	colorPlunger   = color.RGBA{0, 255, 0, 255}
	colorStuck     = color.RGBA{0, 160, 0, 255}
	colorHighlight = color.RGBA{255, 255, 0, 255}
	colorShot      = color.RGBA{255, 0, 255, 255}
	colorDefault   = color.RGBA{0, 255, 255, 255}
)

// DrawWorld fills every collision object in view. When outlines is set,
// objects are drawn as outlines instead.
func DrawWorld(w donburi.World, screen *ebiten.Image, outlines bool) {
	ctx := factory.Context(w)
	if ctx.Camera == nil || !ctx.Camera.Valid() || ctx.Space == nil {
		return
	}
	camera := components.Camera.Get(ctx.Camera)
	view := camera.Viewport()
	space := components.Space.Get(ctx.Space)

	var highlighted map[donburi.Entity]struct{}
	if ctx.Player != nil && ctx.Player.Valid() {
		highlighted = components.Player.Get(ctx.Player).Highlighted
	}

	for _, obj := range space.Objects() {
		// Cull objects outside viewport
		if obj.X+obj.W < view.X || obj.X > view.Right() || obj.Y+obj.H < view.Y || obj.Y > view.Bottom() {
			continue
		}
		x := float32(obj.X - view.X)
		y := float32(obj.Y - view.Y)
		c := colorOf(obj, highlighted)

		if !outlines {
			vector.FillRect(screen, x, y, float32(obj.W), float32(obj.H), c, false)
			continue
		}
		vector.FillRect(screen, x, y, float32(obj.W), 1, c, false)                  // Top
		vector.FillRect(screen, x, y+float32(obj.H)-1, float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, float32(obj.H), c, false)                  // Left
		vector.FillRect(screen, x+float32(obj.W)-1, y, 1, float32(obj.H), c, false) // Right
	}
}

func colorOf(obj *resolv.Object, highlighted map[donburi.Entity]struct{}) color.Color {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return colorSolid
	case obj.HasTags(tags.ResolvPlayer):
		return colorPlayer
	case obj.HasTags(tags.ResolvEnemy):
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() &&
			components.Enemy.Get(e).State == components.EnemyParalyzed {
			return colorParalyzed
		}
		return colorEnemy
	case obj.HasTags(tags.ResolvStuckPlunger):
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
			if _, lit := highlighted[e.Entity()]; lit {
				return colorHighlight
			}
		}
		return colorStuck
	case obj.HasTags(tags.ResolvPlunger):
		return colorPlunger
	case obj.HasTags(tags.ResolvShot):
		return colorShot
	}
	return colorDefault
}
