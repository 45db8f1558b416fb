package systems

import (
	"log"
	"sync"

	"github.com/automoto/plunger/components"
	cfg "github.com/automoto/plunger/config"
	"github.com/yohamta/donburi"
)

// tryTransition runs apply when guard holds and reports whether it ran.
// Rejected transitions are silent; several triggers may race for the same
// transition within one tick.
func tryTransition(name string, guard bool, apply func()) bool {
	if !guard {
		if cfg.Debug.TraceTransitions {
			log.Printf("transition %s rejected", name)
		}
		return false
	}
	apply()
	return true
}

var (
	warnedMu sync.Mutex
	warned   = map[string]bool{}
)

// warnOnce logs a missing-collaborator warning the first time key is seen.
func warnOnce(key, format string, args ...any) {
	warnedMu.Lock()
	defer warnedMu.Unlock()
	if warned[key] {
		return
	}
	warned[key] = true
	log.Printf("Warning: "+format, args...)
}

func valid(e *donburi.Entry) bool {
	return e != nil && e.Valid()
}

// removeEntity takes e out of the collision space and the world.
func removeEntity(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
