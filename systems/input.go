package systems

import (
	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/input"
	"github.com/yohamta/donburi"
)

// SetFrame stores the input for the coming tick.
func SetFrame(w donburi.World, f input.Frame) {
	if e, ok := components.Input.First(w); ok {
		components.Input.Get(e).Frame = f.Clamp()
		return
	}
	warnOnce("input.session", "no input holder in world, input dropped")
}

// CurrentFrame returns this tick's input, or an empty frame.
func CurrentFrame(w donburi.World) input.Frame {
	if e, ok := components.Input.First(w); ok {
		return components.Input.Get(e).Frame
	}
	return input.Frame{}
}
