package components

import (
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/yohamta/donburi"
)

// TuningData holds the optional hot-reload watcher for the tuning file.
type TuningData struct {
	Path    string
	Watcher *cfg.TuningWatcher
}

var Tuning = donburi.NewComponentType[TuningData]()
