package core

import (
	"math/rand/v2"
	"sort"

	"github.com/automoto/epicfantasy/shared/gamemath"
	"github.com/automoto/epicfantasy/shared/leveldata"
)

// BuildLevel turns parsed level data into a playable level. Enemies are
// dropped at a random x in [zone.X, zone.X+zone.W] with their top at zone.Y.
func BuildLevel(data *leveldata.LevelData, rng *rand.Rand) *Level {
	platforms := make([]gamemath.Rect, len(data.Platforms))
	for i, p := range data.Platforms {
		platforms[i] = gamemath.NewRect(p.X, p.Y, p.W, p.H)
	}

	zone := data.EnemyZone
	enemies := make([]*Enemy, 0, zone.Count)
	for range zone.Count {
		x := zone.X + float64(rng.IntN(int(zone.W)+1))
		enemies = append(enemies, NewEnemy(x, zone.Y))
	}

	exits := make([]Exit, len(data.Exits))
	for i, e := range data.Exits {
		exits[i] = Exit{Side: e.Side, Target: LevelID(e.Target)}
	}

	return NewLevel(LevelID(data.Name), platforms, enemies, exits)
}

// BuildLevels builds every level. Levels are built in name order so a seeded
// rng always produces the same enemy layout.
func BuildLevels(all map[string]*leveldata.LevelData, rng *rand.Rand) map[LevelID]*Level {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	levels := make(map[LevelID]*Level, len(all))
	for _, name := range names {
		levels[LevelID(name)] = BuildLevel(all[name], rng)
	}
	return levels
}
