package systems

import (
	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the view on the player, clamped to the level.
// Must run AFTER UpdateSession.
func UpdateCamera(e *ecs.ECS) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry).Session
	camera := components.Camera.Get(entry)
	camera.X = session.CameraX(float64(cfg.C.Width))
}
