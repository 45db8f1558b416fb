package components

import "github.com/yohamta/donburi"

// SessionData tracks survival time for the current run.
type SessionData struct {
	Elapsed float64 // seconds
	Stopped bool
}

var Session = donburi.NewComponentType[SessionData]()
