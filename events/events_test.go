package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestEventsAreQueuedUntilProcessed(t *testing.T) {
	w := donburi.NewWorld()

	var got []PointsChanged
	PointsChangedEvent.Subscribe(w, func(_ donburi.World, e PointsChanged) {
		got = append(got, e)
	})

	PointsChangedEvent.Publish(w, PointsChanged{Total: 10, Delta: 10})
	PointsChangedEvent.Publish(w, PointsChanged{Total: 20, Delta: 10})
	assert.Empty(t, got)

	ProcessAll(w)
	assert.Equal(t, []PointsChanged{{Total: 10, Delta: 10}, {Total: 20, Delta: 10}}, got)

	ProcessAll(w)
	assert.Len(t, got, 2, "events are delivered once")
}

func TestDestroyReasonString(t *testing.T) {
	assert.Equal(t, "OutOfBounds", ReasonOutOfBounds.String())
	assert.Equal(t, "Cascade", ReasonCascade.String())
}
