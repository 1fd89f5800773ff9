package systems

import (
	"log"
	"time"

	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/automoto/epicfantasy/shared/core"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// NewUpdateSession creates the system that drives the game session one frame
// per tick. onMenu runs when the player backs out to the menu.
func NewUpdateSession(sceneChanger SceneChanger, onMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Session.First(e.World)
		if !ok {
			return
		}
		session := components.Session.Get(entry).Session

		clock := components.Clock.Get(entry)
		clock.NowMs = time.Since(clock.Start).Milliseconds()

		input := getOrCreateInput(e)
		switch session.Update(CoreInput(input), clock.NowMs) {
		case core.SignalQuit:
			sceneChanger.Quit()
			return
		case core.SignalMenu:
			onMenu()
			return
		}

		level := components.Level.Get(entry)
		if level.Current != session.Current {
			log.Printf("Level changed: %s -> %s", level.Current, session.Current)
			level.Current = session.Current
		}
		level.Snapshot = session.Snapshot(float64(cfg.C.Width))

		health := components.Health.Get(entry)
		health.Current = session.Player.Health
		health.Max = session.Player.MaxHealth
	}
}
