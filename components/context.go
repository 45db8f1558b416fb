package components

import (
	"github.com/automoto/plunger/proximity"
	"github.com/yohamta/donburi"
)

// WorldContextData holds the collaborators entities need, resolved once at
// spawn instead of searched for every tick. Any reference may be nil.
type WorldContextData struct {
	Player    *donburi.Entry
	Camera    *donburi.Entry
	Space     *donburi.Entry
	Proximity *proximity.Coordinator
}

var WorldContext = donburi.NewComponentType[WorldContextData]()
