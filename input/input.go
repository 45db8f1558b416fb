// Package input describes the per-tick input frame the simulation consumes.
package input

// Frame is the input for one simulation tick. Pressed/Released fields are
// edges, consumed once.
type Frame struct {
	Horizontal      float64 // -1..1
	JumpPressed     bool
	JumpHeld        bool
	JumpReleased    bool
	FirePressed     bool
	RetrievePressed bool

	// HasCursor means CursorX/CursorY hold a screen-space aim point.
	HasCursor        bool
	CursorX, CursorY float64

	// AimX/AimY is a direction used when there is no cursor. Zero means
	// "aim where the player faces".
	AimX, AimY float64
}

// Source produces one Frame per tick.
type Source interface {
	Next() Frame
}

// Clamp bounds the horizontal axis to -1..1.
func (f Frame) Clamp() Frame {
	if f.Horizontal > 1 {
		f.Horizontal = 1
	} else if f.Horizontal < -1 {
		f.Horizontal = -1
	}
	return f
}

// Idle is a Source that never presses anything.
type Idle struct{}

func (Idle) Next() Frame { return Frame{} }
