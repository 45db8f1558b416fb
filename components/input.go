package components

import (
	"github.com/automoto/plunger/input"
	"github.com/yohamta/donburi"
)

// InputData holds the frame consumed by this tick's systems.
type InputData struct {
	Frame input.Frame
}

var Input = donburi.NewComponentType[InputData]()
