package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/epicfantasy/assets"
	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/automoto/epicfantasy/shared/core"
	"github.com/automoto/epicfantasy/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeChanger struct {
	quit bool
}

func (f *fakeChanger) ChangeScene(scene interface{}) {}
func (f *fakeChanger) Quit() { f.quit = true }

func newTestWorld(t *testing.T) (*ecs.ECS, *core.Session) {
	t.Helper()
	levels := core.BuildLevels(assets.MustLoadLevels(), rand.New(rand.NewPCG(1, 2)))
	session, err := core.NewSession(levels, core.LevelID(cfg.StartLevel))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateGame(e, session, time.Now(), nil)
	return e, session
}

func TestUpdateSessionMovesPlayerAndMirrorsState(t *testing.T) {
	e, session := newTestWorld(t)
	changer := &fakeChanger{}
	menu := 0
	update := NewUpdateSession(changer, func() { menu++ })

	startX := session.Player.Box.X
	input := getOrCreateInput(e)
	input.Current[cfg.ActionMoveRight] = true

	update(e)
	UpdateCamera(e)

	if session.Player.Box.X <= startX {
		t.Errorf("player x = %v, want > %v", session.Player.Box.X, startX)
	}
	entry, ok := components.Level.First(e.World)
	if !ok {
		t.Fatal("no level component")
	}
	snap := components.Level.Get(entry).Snapshot
	if snap.Player.Box != session.Player.Box {
		t.Errorf("snapshot player = %+v, want %+v", snap.Player.Box, session.Player.Box)
	}
	if got := components.Level.Get(entry).Current; got != core.LevelID(cfg.StartLevel) {
		t.Errorf("current level = %s", got)
	}
	health := components.Health.Get(entry)
	if health.Current != session.Player.Health || health.Max != session.Player.MaxHealth {
		t.Errorf("health = %+v", *health)
	}
	if camera := components.Camera.Get(entry); camera.X != session.CameraX(float64(cfg.C.Width)) {
		t.Errorf("camera x = %v", camera.X)
	}
	if menu != 0 || changer.quit {
		t.Errorf("unexpected signal: menu=%d quit=%v", menu, changer.quit)
	}
}

func TestUpdateSessionSignals(t *testing.T) {
	tests := []struct {
		name     string
		set      func(*components.InputData)
		wantMenu int
		wantQuit bool
	}{
		{"escape", func(in *components.InputData) { in.Current[cfg.ActionBack] = true }, 1, false},
		{"held escape", func(in *components.InputData) {
			in.Current[cfg.ActionBack] = true
			in.Previous[cfg.ActionBack] = true
		}, 0, false},
		{"close", func(in *components.InputData) { in.CloseRequested = true }, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestWorld(t)
			changer := &fakeChanger{}
			menu := 0
			update := NewUpdateSession(changer, func() { menu++ })

			tt.set(getOrCreateInput(e))
			update(e)

			if menu != tt.wantMenu || changer.quit != tt.wantQuit {
				t.Errorf("menu=%d quit=%v, want menu=%d quit=%v", menu, changer.quit, tt.wantMenu, tt.wantQuit)
			}
		})
	}
}

func TestUpdateDebugTogglesOnPress(t *testing.T) {
	e, _ := newTestWorld(t)
	before := cfg.Debug.ShowHitboxes
	t.Cleanup(func() { cfg.Debug.ShowHitboxes = before })

	input := getOrCreateInput(e)
	input.Current[cfg.ActionDebug] = true
	UpdateDebug(e)
	if cfg.Debug.ShowHitboxes == before {
		t.Fatal("first press should toggle")
	}

	// Held key does not toggle again
	input.Previous[cfg.ActionDebug] = true
	UpdateDebug(e)
	if cfg.Debug.ShowHitboxes == before {
		t.Error("held key toggled twice")
	}
}
