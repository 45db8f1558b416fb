package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel("level1")
	require.NoError(t, err)

	assert.Equal(t, "level1", level.Name)
	assert.Equal(t, 1280, level.MapWidth)
	assert.Equal(t, 368, level.MapHeight)
	assert.Len(t, level.Ground, 7)
	assert.Len(t, level.Enemies, 6)
	assert.Equal(t, 48.0, level.PlayerSpawn.X)
}

func TestLoadLevels(t *testing.T) {
	levels, names, err := LoadLevels()
	require.NoError(t, err)
	assert.Contains(t, names, "level1")
	assert.Contains(t, levels, "level1")
}

func TestLoadLevelMissing(t *testing.T) {
	_, err := LoadLevel("nope")
	assert.Error(t, err)
}
