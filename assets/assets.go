package assets

import (
	"embed"
	"log"

	"github.com/automoto/epicfantasy/shared/leveldata"
)

// LevelsDir is the directory inside LevelFS holding the TMX maps.
const LevelsDir = "levels"

//go:embed all:levels
var LevelFS embed.FS

// MustLoadLevels parses every embedded level and panics on failure.
func MustLoadLevels() map[string]*leveldata.LevelData {
	levels, names, err := leveldata.LoadAllLevels(LevelFS, LevelsDir)
	if err != nil {
		panic(err)
	}
	for _, name := range names {
		d := levels[name]
		log.Printf("Loaded level %s: %d platforms, %d enemies, %d exits", name, len(d.Platforms), d.EnemyZone.Count, len(d.Exits))
	}
	return levels
}
