package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevelData parses a TMX file and returns its platforms, enemy spawn zone
// and exits. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevelData(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	spawnSeen := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				data.Platforms = append(data.Platforms, SolidRect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}

		case GroupEnemySpawn:
			if len(og.Objects) == 0 {
				continue
			}
			if len(og.Objects) > 1 || spawnSeen {
				return nil, fmt.Errorf("%s: more than one enemy spawn zone", tmxPath)
			}
			o := og.Objects[0]
			count := o.Properties.GetInt("count")
			if count < 0 {
				return nil, fmt.Errorf("%s: negative enemy count %d", tmxPath, count)
			}
			data.EnemyZone = SpawnZone{X: o.X, Y: o.Y, W: o.Width, Count: count}
			spawnSeen = true

		case GroupExits:
			for _, o := range og.Objects {
				exit := Exit{Side: o.Name, Target: o.Properties.GetString("target")}
				if exit.Side != SideLeft && exit.Side != SideRight {
					return nil, fmt.Errorf("%s: exit %d has side %q", tmxPath, o.ID, exit.Side)
				}
				if exit.Target == "" {
					return nil, fmt.Errorf("%s: %s exit has no target", tmxPath, exit.Side)
				}
				data.Exits = append(data.Exits, exit)
			}
		}
	}

	if len(data.Platforms) == 0 {
		return nil, fmt.Errorf("%s: no platforms", tmxPath)
	}

	return data, nil
}

// Width returns the right edge of the rightmost platform.
func (d *LevelData) Width() float64 {
	w := 0.0
	for _, p := range d.Platforms {
		w = max(w, p.X+p.W)
	}
	return w
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
// Exit targets must name a loaded level.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevelData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	for _, name := range names {
		for _, exit := range levels[name].Exits {
			if _, ok := levels[exit.Target]; !ok {
				return nil, nil, fmt.Errorf("level %s: %s exit targets unknown level %q", name, exit.Side, exit.Target)
			}
		}
	}

	sort.Strings(names)
	return levels, names, nil
}
