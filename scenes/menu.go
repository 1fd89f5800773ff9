package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/epicfantasy/systems"
	"github.com/automoto/epicfantasy/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the main menu using ebitenui
type MenuScene struct {
	sceneChanger systems.SceneChanger
	onStart      func()
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldStart  bool
	shouldQuit   bool
}

// NewMenuScene creates a new menu scene. onStart is called once when the
// player chooses Start Game.
func NewMenuScene(sc systems.SceneChanger, onStart func()) *MenuScene {
	return &MenuScene{sceneChanger: sc, onStart: onStart}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	if ms.shouldQuit || ebiten.IsWindowBeingClosed() {
		ms.sceneChanger.Quit()
		return
	}
	if ms.shouldStart {
		ms.shouldStart = false
		log.Printf("Menu: start game")
		ms.onStart()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.menuUI = ui.NewMenuUI(
		func() { ms.shouldStart = true },
		func() { ms.shouldQuit = true },
	)
}
