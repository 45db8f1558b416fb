package systems

import (
	"testing"

	"github.com/automoto/plunger/components"
	"github.com/automoto/plunger/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightTracksPlungersInRange(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 100)
	createWall(e, 200)
	rec := record(e.World)

	p := FirePlunger(e, player, 1, 0)
	require.Equal(t, components.PlungerStuckOnSurface, flyUntilSettled(t, e, p, 30))

	moveTo(player, 40, floorY-playerSize)
	UpdateHighlights(e)
	events.ProcessAll(e.World)
	assert.Empty(t, rec.highlighted)

	moveTo(player, 160, floorY-playerSize)
	UpdateHighlights(e)
	UpdateHighlights(e)
	events.ProcessAll(e.World)
	require.Len(t, rec.highlighted, 1, "entering range is reported once")
	assert.True(t, rec.highlighted[0].InRange)
	assert.Equal(t, p.Entity(), rec.highlighted[0].Plunger)
	assert.Contains(t, components.Player.Get(player).Highlighted, p.Entity())

	moveTo(player, 40, floorY-playerSize)
	UpdateHighlights(e)
	events.ProcessAll(e.World)
	require.Len(t, rec.highlighted, 2)
	assert.False(t, rec.highlighted[1].InRange)
	assert.Empty(t, components.Player.Get(player).Highlighted)
}

func TestFlyingPlungersAreNotHighlighted(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 100)
	rec := record(e.World)

	require.NotNil(t, FirePlunger(e, player, 1, -1))
	UpdateHighlights(e)
	events.ProcessAll(e.World)
	assert.Empty(t, rec.highlighted)
}

func TestHighlightLeaveNamesTheRetrievedPlunger(t *testing.T) {
	e := newWorldWithCamera(t)
	player := spawnPlayer(e, 100)
	createWall(e, 200)
	rec := record(e.World)

	p := FirePlunger(e, player, 1, 0)
	require.Equal(t, components.PlungerStuckOnSurface, flyUntilSettled(t, e, p, 30))
	moveTo(player, 160, floorY-playerSize)
	UpdateHighlights(e)
	retrieved := p.Entity()

	// The freed entity id is recycled by the next spawn in the same tick
	require.True(t, TryRetrievePlunger(e.World, player))
	next := FirePlunger(e, player, -1, 0)
	require.NotNil(t, next)
	require.NotEqual(t, retrieved, next.Entity())

	UpdateHighlights(e)
	events.ProcessAll(e.World)
	require.Len(t, rec.highlighted, 2)
	assert.True(t, rec.highlighted[0].InRange)
	assert.False(t, rec.highlighted[1].InRange)
	assert.Equal(t, retrieved, rec.highlighted[1].Plunger)
	assert.Empty(t, components.Player.Get(player).Highlighted)
}
