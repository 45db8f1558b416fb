// Package leveldata provides TMX level parsing.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

// Level holds everything the game needs to build a world from a TMX file.
type Level struct {
	Name        string
	MapWidth    int
	MapHeight   int
	Ground      []Rect
	PlayerSpawn Point
	Enemies     []EnemySpawn
}

// Rect represents a solid surface.
type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// EnemySpawn is one object of the Enemies layer. Zero Points/MaxHealth
// mean "use the kind's defaults".
type EnemySpawn struct {
	Kind      string // "patrol", "oscillate", "shooter"
	X, Y      float64
	Points    int
	MaxHealth int
	Vertical  bool
}
