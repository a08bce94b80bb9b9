// Package assets embeds the level files shipped with the game.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var assetFS embed.FS

// LevelsDir is the directory inside Levels() holding the .tmx files.
const LevelsDir = "levels"

// Levels returns the embedded level file system.
func Levels() fs.FS {
	return assetFS
}
