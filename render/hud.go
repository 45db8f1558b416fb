package render

import (
	"fmt"

	"github.com/automoto/plunger/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD is a hud.Sink that prints the player's state in the screen corner.
type HUD struct {
	hud.State
}

func (h *HUD) Draw(screen *ebiten.Image) {
	msg := fmt.Sprintf("HP %d/%d  Plungers %d/%d  Points %d  Time %.1fs",
		h.Health, h.MaxHealth, h.Plungers, h.MaxPlungers, h.Points, h.Seconds)
	if h.Stopped {
		msg += "\nGAME OVER"
	}
	ebitenutil.DebugPrint(screen, msg)
}
