package factory

import (
	"time"

	"github.com/automoto/epicfantasy/archetypes"
	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/automoto/epicfantasy/shared/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the singleton entity the world systems operate on.
// started is when the session was created; the clock must outlive the scene
// because the session keeps its cooldown timestamps across menu visits.
// watcher may be nil.
func CreateGame(ecs *ecs.ECS, session *core.Session, started time.Time, watcher *cfg.TuningWatcher) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	components.Session.SetValue(game, components.SessionData{Session: session})
	components.Clock.SetValue(game, components.ClockData{Start: started, NowMs: time.Since(started).Milliseconds()})
	components.Level.SetValue(game, components.LevelData{
		Current:  session.Current,
		Snapshot: session.Snapshot(float64(cfg.C.Width)),
	})
	components.Camera.SetValue(game, components.CameraData{X: session.CameraX(float64(cfg.C.Width))})
	components.Health.SetValue(game, components.HealthData{
		Current: session.Player.Health,
		Max:     session.Player.MaxHealth,
	})
	components.Tuning.SetValue(game, components.TuningData{
		Path:    cfg.Debug.TuningPath,
		Watcher: watcher,
	})

	return game
}
