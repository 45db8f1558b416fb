// Package hud forwards gameplay notifications to a presentation layer.
package hud

import (
	"log"

	"github.com/automoto/plunger/events"
	"github.com/yohamta/donburi"
)

// Sink receives the values the player sees on screen.
type Sink interface {
	UpdateHealth(current, max int)
	UpdatePlungers(current, max int)
	UpdatePoints(total int)
	UpdateTime(seconds float64)
	StopTimer()
}

// Bind subscribes sink to the world's notifications. Binding a nil sink
// logs a warning and does nothing.
func Bind(w donburi.World, sink Sink) bool {
	if sink == nil {
		log.Printf("Warning: no HUD sink bound, player state will not be displayed")
		return false
	}

	events.HealthChangedEvent.Subscribe(w, func(w donburi.World, ev events.HealthChanged) {
		sink.UpdateHealth(ev.Current, ev.Max)
	})
	events.InventoryChangedEvent.Subscribe(w, func(w donburi.World, ev events.InventoryChanged) {
		sink.UpdatePlungers(ev.Current, ev.Max)
	})
	events.PointsChangedEvent.Subscribe(w, func(w donburi.World, ev events.PointsChanged) {
		sink.UpdatePoints(ev.Total)
	})
	events.TimeChangedEvent.Subscribe(w, func(w donburi.World, ev events.TimeChanged) {
		sink.UpdateTime(ev.Elapsed)
	})
	events.PlayerDiedEvent.Subscribe(w, func(w donburi.World, ev events.PlayerDied) {
		sink.StopTimer()
	})
	return true
}

// State is a Sink that remembers the latest values.
type State struct {
	Health, MaxHealth     int
	Plungers, MaxPlungers int
	Points                int
	Seconds               float64
	Stopped               bool
}

func (s *State) UpdateHealth(current, max int) {
	s.Health, s.MaxHealth = current, max
}

func (s *State) UpdatePlungers(current, max int) {
	s.Plungers, s.MaxPlungers = current, max
}

func (s *State) UpdatePoints(total int) {
	s.Points = total
}

func (s *State) UpdateTime(seconds float64) {
	if !s.Stopped {
		s.Seconds = seconds
	}
}

func (s *State) StopTimer() {
	s.Stopped = true
}
