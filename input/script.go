package input

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Step is one entry of a scripted input sequence. Presses happen on the
// step's first tick; Move and HoldJump apply for every tick of the step.
type Step struct {
	Ticks    int     `yaml:"ticks"`
	Move     float64 `yaml:"move"`
	Jump     bool    `yaml:"jump"`
	HoldJump bool    `yaml:"holdJump"`
	Fire     bool    `yaml:"fire"`
	AimX     float64 `yaml:"aimX"`
	AimY     float64 `yaml:"aimY"`
	Retrieve bool    `yaml:"retrieve"`
}

// Script replays Steps. After the last step it behaves like Idle.
type Script struct {
	Steps []Step `yaml:"steps"`

	step     int
	tick     int
	jumpHeld bool
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script %s: %w", path, err)
	}
	defer f.Close()
	return ParseScript(f)
}

// ParseScript decodes a YAML script.
func ParseScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return nil, fmt.Errorf("script step %d: ticks must be positive", i)
		}
	}
	return &s, nil
}

// Len returns the total number of scripted ticks.
func (s *Script) Len() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

func (s *Script) Next() Frame {
	if s.step >= len(s.Steps) {
		f := Frame{JumpReleased: s.jumpHeld}
		s.jumpHeld = false
		return f
	}

	st := s.Steps[s.step]
	first := s.tick == 0
	held := st.HoldJump || (st.Jump && first)

	f := Frame{
		Horizontal:   st.Move,
		JumpHeld:     held,
		JumpReleased: s.jumpHeld && !held,
	}
	if first {
		f.JumpPressed = st.Jump
		f.FirePressed = st.Fire
		f.RetrievePressed = st.Retrieve
		f.AimX, f.AimY = st.AimX, st.AimY
	}
	s.jumpHeld = held

	s.tick++
	if s.tick >= st.Ticks {
		s.step++
		s.tick = 0
	}
	return f.Clamp()
}
