// Package assets embeds the bundled level files.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/plunger/shared/leveldata"
)

const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS returns the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LoadLevel loads an embedded level by name, without the .tmx suffix.
func LoadLevel(name string) (*leveldata.Level, error) {
	level, err := leveldata.Load(assetFS, LevelsDir+"/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("embedded level %q: %w", name, err)
	}
	return level, nil
}

// LoadLevels loads every embedded level, returning them by name along with
// the sorted names.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAll(assetFS, LevelsDir)
}
