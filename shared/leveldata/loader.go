package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	GroundLayer      = "Ground"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemiesGroup     = "Enemies"
)

var ErrNoPlayerSpawn = errors.New("level has no player spawn")

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles from the Ground tile layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != GroundLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Ground = append(data.Ground, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroundLayer:
			for _, o := range og.Objects {
				data.Ground = append(data.Ground, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case PlayerSpawnGroup:
			if len(og.Objects) > 0 && !spawnFound {
				data.PlayerSpawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
				spawnFound = true
			}
		case EnemiesGroup:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = o.Name
				}
				data.Enemies = append(data.Enemies, EnemySpawn{
					Kind:      kind,
					X:         o.X,
					Y:         o.Y,
					Points:    o.Properties.GetInt("points"),
					MaxHealth: o.Properties.GetInt("maxHealth"),
					Vertical:  o.Properties.GetBool("vertical"),
				})
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	// Sort spawns left-to-right for a stable spawn order
	sort.SliceStable(data.Enemies, func(i, j int) bool {
		return data.Enemies[i].X < data.Enemies[j].X
	})

	return data, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
