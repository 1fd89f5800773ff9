package systems

import (
	"log"

	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning reloads the tuning file when the watcher saw it change. It runs
// on the game loop so config is never written while a frame is simulated.
func UpdateTuning(e *ecs.ECS) {
	entry, ok := components.Tuning.First(e.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(entry)
	if tuning.Watcher == nil {
		return
	}

	changed, err := tuning.Watcher.Drain()
	if err != nil {
		log.Printf("Tuning watcher error: %v", err)
	}
	if !changed {
		return
	}

	t, err := cfg.LoadTuning(tuning.Path)
	if err != nil {
		log.Printf("Tuning reload failed, keeping previous values: %v", err)
		return
	}
	t.Apply()

	if sessionEntry, ok := components.Session.First(e.World); ok {
		components.Session.Get(sessionEntry).Session.Retune()
	}
	log.Printf("Tuning reloaded from %s", tuning.Path)
}

// UpdateDebug toggles the hitbox overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowHitboxes = !cfg.Debug.ShowHitboxes
	}
}
