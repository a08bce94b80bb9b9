// Package leveldata provides TMX level parsing shared between client and server.
// It has no dependencies on donburi or resolv, pure data only.
package leveldata

// Layer and object group names read from TMX files.
const (
	SolidLayer = "solids"
	SpawnGroup = "ShooterSpawn"
)

// CollisionData holds all collision-relevant data parsed from a TMX level file.
// Coordinates are in map pixels.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a run of solid tiles on one row.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a shooter spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
