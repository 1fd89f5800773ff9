// Package leveldata parses TMX level files into plain geometry.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Object group names the loader understands.
const (
	GroupPlatforms  = "Platforms"
	GroupEnemySpawn = "EnemySpawn"
	GroupExits      = "Exits"
)

// Exit sides.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// LevelData holds everything the game core needs to build a level.
type LevelData struct {
	Name      string
	Platforms []SolidRect
	EnemyZone SpawnZone
	Exits     []Exit
	MapWidth  int
	MapHeight int
}

// SolidRect represents a solid platform rectangle.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnZone is the horizontal band enemies are dropped into. Enemies spawn
// with X in [X, X+W] and their top edge at Y.
type SpawnZone struct {
	X, Y, W float64
	Count   int
}

// Exit links a level edge to a neighbouring level.
type Exit struct {
	Side   string // SideLeft or SideRight
	Target string // stem name of the destination level
}
