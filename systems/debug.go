package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/automoto/epicfantasy/fonts"
	"github.com/automoto/epicfantasy/shared/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugPlayerColor = color.RGBA{0, 255, 255, 255}
	debugEnemyColor  = color.RGBA{255, 0, 255, 255}
	debugHitboxColor = color.RGBA{255, 255, 0, 255}
)

// DrawDebug outlines actor boxes, the attack hitbox and prints simulation state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes {
		return
	}
	entry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(entry).Session
	camX := components.Camera.Get(entry).X

	p := session.Player
	strokeBox(screen, p.Box.X-camX, p.Box.Y, p.Box.W, p.Box.H, debugPlayerColor)
	if p.SwingActive {
		hb := core.Hitbox(p)
		strokeBox(screen, hb.X-camX, hb.Y, hb.W, hb.H, debugHitboxColor)
	}
	for _, enemy := range session.Level().AliveEnemies() {
		strokeBox(screen, enemy.Box.X-camX, enemy.Box.Y, enemy.Box.W, enemy.Box.H, debugEnemyColor)
	}

	lines := []string{
		fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("level %s  x %.0f  y %.0f  vy %.1f", session.Current, p.Box.X, p.Box.Y, p.VY),
		fmt.Sprintf("ground %v  swing %v  phase %s  alpha %d", p.OnGround, p.SwingActive, session.Transition.Phase, session.Transition.Alpha),
	}
	face := fonts.Debug.Get()
	y := cfg.C.Height - len(lines)*int(cfg.UI.DebugFontSize+2)
	for _, line := range lines {
		y += int(cfg.UI.DebugFontSize + 2)
		text.Draw(screen, line, face, 8, y-4, color.White)
	}
}

func strokeBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
}
