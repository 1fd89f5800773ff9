package components

import (
	"github.com/automoto/epicfantasy/shared/core"
	"github.com/yohamta/donburi"
)

// LevelData tracks which level is on screen. Snapshot is refreshed once per
// update and is what the renderers draw.
type LevelData struct {
	Current  core.LevelID
	Snapshot core.Snapshot
}

var Level = donburi.NewComponentType[LevelData]()
