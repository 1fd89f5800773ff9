package core

import (
	"testing"

	"github.com/automoto/epicfantasy/shared/gameconfig"
	"github.com/automoto/epicfantasy/shared/gamemath"
)

// groundPlatforms mirrors the shipped maps: ten 200x50 slabs at y=550.
func groundPlatforms() []gamemath.Rect {
	var out []gamemath.Rect
	for x := 0.0; x < 2000; x += 200 {
		out = append(out, gamemath.NewRect(x, 550, 200, 50))
	}
	return out
}

func flatLevel(id LevelID, enemies []*Enemy, exits ...Exit) *Level {
	return NewLevel(id, groundPlatforms(), enemies, exits)
}

// threeLevels builds forest, earth and desert with the standard adjacency.
func threeLevels() map[LevelID]*Level {
	return map[LevelID]*Level{
		Forest: flatLevel(Forest, nil, Exit{SideRight, Earth}),
		Earth:  flatLevel(Earth, nil, Exit{SideRight, Desert}, Exit{SideLeft, Forest}),
		Desert: flatLevel(Desert, nil, Exit{SideLeft, Earth}),
	}
}

func resetConfig(t *testing.T) {
	t.Helper()
	gameconfig.Reset()
	t.Cleanup(gameconfig.Reset)
}
