package scenes

import (
	"image/color"
	"sync"
	"time"

	cfg "github.com/automoto/epicfantasy/config"
	"github.com/automoto/epicfantasy/shared/core"
	"github.com/automoto/epicfantasy/systems"
	"github.com/automoto/epicfantasy/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs a game session. The session outlives the scene so the
// player can leave for the menu and come back to the same state.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger systems.SceneChanger
	session      *core.Session
	started      time.Time
	watcher      *cfg.TuningWatcher
	onMenu       func()
	once         sync.Once
}

// NewWorldScene creates a scene for session. started is when the session was
// created; watcher may be nil.
func NewWorldScene(sc systems.SceneChanger, session *core.Session, started time.Time, watcher *cfg.TuningWatcher, onMenu func()) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		session:      session,
		started:      started,
		watcher:      watcher,
		onMenu:       onMenu,
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.NewUpdateSession(ws.sceneChanger, ws.onMenu))
	ecs.AddSystem(systems.UpdateCamera)

	// Fade must be drawn last
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawActors)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawFade)

	ws.ecs = ecs

	factory.CreateGame(ws.ecs, ws.session, ws.started, ws.watcher)
}
