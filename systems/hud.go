package systems

import (
	"image/color"

	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/automoto/epicfantasy/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player's health bar and the level name in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Health.First(e.World)
	if !ok {
		return
	}
	hp := components.Health.Get(entry)
	ui := cfg.UI

	if hp.Max > 0 {
		ratio := float32(hp.Current) / float32(hp.Max)
		vector.FillRect(screen,
			float32(ui.HealthBarX), float32(ui.HealthBarY),
			float32(ui.HealthBarWidth)*ratio, float32(ui.HealthBarHeight),
			ui.HealthBarFgColor, false)
	}
	vector.StrokeRect(screen,
		float32(ui.HealthBarX), float32(ui.HealthBarY),
		float32(ui.HealthBarWidth), float32(ui.HealthBarHeight),
		float32(ui.HealthBarBorder), ui.HealthBarOutline, false)

	snap := components.Level.Get(entry).Snapshot
	if theme, ok := cfg.Themes[snap.Theme]; ok {
		y := int(ui.HealthBarY + ui.HealthBarHeight + ui.HUDFontSize + 4)
		text.Draw(screen, theme.Name, fonts.HUD.Get(), int(ui.HealthBarX), y, ui.LevelNameColor)
	}
}

// DrawFade darkens the whole screen by the transition alpha. Must be the last
// world renderer.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	alpha := components.Level.Get(entry).Snapshot.FadeAlpha
	if alpha <= 0 {
		return
	}

	c := cfg.UI.FadeColor
	// vector expects premultiplied alpha
	a := uint8(min(alpha, 255))
	fade := color.RGBA{
		R: uint8(uint32(c.R) * uint32(a) / 255),
		G: uint8(uint32(c.G) * uint32(a) / 255),
		B: uint8(uint32(c.B) * uint32(a) / 255),
		A: a,
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), fade, false)
}
