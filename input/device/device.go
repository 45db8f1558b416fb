// Package device polls ebiten keyboards, mice and gamepads into input frames.
package device

import (
	"math"

	"github.com/automoto/plunger/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Device is an input.Source backed by ebiten. Next must be called from the
// ebiten Update goroutine.
type Device struct {
	bindings Bindings
	current  [ActionCount]bool
	previous [ActionCount]bool

	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID

	lastCursorX, lastCursorY int
	usingGamepad             bool
}

func New(b Bindings) *Device {
	return &Device{bindings: b}
}

func (d *Device) Next() input.Frame {
	d.previous = d.current
	d.current = [ActionCount]bool{}
	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])

	for action, binding := range d.bindings.Actions {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				d.current[action] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				d.current[action] = true
			}
		}
		for _, id := range d.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					d.current[action] = true
					d.usingGamepad = true
				}
			}
		}
	}

	f := input.Frame{
		JumpPressed:     d.justPressed(ActionJump),
		JumpHeld:        d.current[ActionJump],
		JumpReleased:    d.previous[ActionJump] && !d.current[ActionJump],
		FirePressed:     d.justPressed(ActionFire),
		RetrievePressed: d.justPressed(ActionRetrieve),
	}
	if d.current[ActionMoveLeft] {
		f.Horizontal--
	}
	if d.current[ActionMoveRight] {
		f.Horizontal++
	}

	stickX, stickY, aimX, aimY := d.sticks()
	if f.Horizontal == 0 && stickX != 0 {
		f.Horizontal = stickX
	}

	cx, cy := ebiten.CursorPosition()
	if cx != d.lastCursorX || cy != d.lastCursorY {
		d.usingGamepad = false
	}
	d.lastCursorX, d.lastCursorY = cx, cy

	if d.usingGamepad {
		f.AimX, f.AimY = aimX, aimY
		if aimX == 0 && aimY == 0 {
			f.AimX, f.AimY = stickX, stickY
		}
	} else {
		f.HasCursor = true
		f.CursorX, f.CursorY = float64(cx), float64(cy)
	}
	return f.Clamp()
}

func (d *Device) justPressed(a ActionID) bool {
	return d.current[a] && !d.previous[a]
}

// sticks returns the left and right analog sticks of the first gamepad with
// input past the deadzone.
func (d *Device) sticks() (lx, ly, rx, ry float64) {
	dz := d.bindings.AnalogDeadzone
	for _, id := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		lx = deadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal), dz)
		ly = deadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical), dz)
		rx = deadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal), dz)
		ry = deadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical), dz)
		if lx != 0 || ly != 0 || rx != 0 || ry != 0 {
			d.usingGamepad = true
			return lx, ly, rx, ry
		}
	}
	return 0, 0, 0, 0
}

func deadzone(v, dz float64) float64 {
	if math.Abs(v) < dz {
		return 0
	}
	return v
}
