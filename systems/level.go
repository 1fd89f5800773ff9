package systems

import (
	"math"

	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the sky, clouds, ground band, trees and platforms.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	snap := components.Level.Get(entry).Snapshot
	if snap.Level == "" {
		return // nothing simulated yet
	}
	camX := components.Camera.Get(entry).X

	theme, ok := cfg.Themes[snap.Theme]
	if !ok {
		theme = cfg.Themes[cfg.StartLevel]
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	sc := cfg.Scenery

	screen.Fill(theme.Sky)
	drawClouds(screen, snap.SkyPhase, width)

	groundTop := height - sc.GroundHeight
	vector.FillRect(screen, 0, float32(groundTop), float32(width), float32(sc.GroundHeight), theme.Ground, false)

	for x := sc.TreeStart; x < snap.Width; x += sc.TreeSpacing {
		tx := x - camX
		if tx <= -sc.CullMargin || tx >= width+sc.CullMargin {
			continue
		}
		trunkTop := groundTop - sc.TrunkHeight
		vector.FillRect(screen, float32(tx), float32(trunkTop), float32(sc.TrunkWidth), float32(sc.TrunkHeight), sc.TrunkColor, false)
		vector.DrawFilledCircle(screen, float32(tx+sc.TrunkWidth/2), float32(trunkTop), float32(sc.CrownRadius), theme.Tree, true)
	}

	for _, p := range snap.Platforms {
		vector.FillRect(screen, float32(p.X-camX), float32(p.Y), float32(p.W), float32(p.H), sc.PlatformColor, false)
	}
}

// drawClouds draws the drifting clouds. They wrap over a strip one cloud
// spacing wider than the screen.
func drawClouds(screen *ebiten.Image, skyPhase, width float64) {
	sc := cfg.Scenery
	span := width + sc.CloudSpacing

	for i := sc.CloudMinIndex; i <= sc.CloudMaxIndex; i++ {
		x := math.Mod(skyPhase*sc.CloudSpeed+float64(i)*sc.CloudSpacing, span)
		if x < 0 {
			x += span
		}
		x -= sc.CloudSpacing

		// Three overlapping puffs
		drawPuff(screen, x, sc.CloudY+20)
		drawPuff(screen, x+40, sc.CloudY)
		drawPuff(screen, x+80, sc.CloudY+20)
	}
}

// drawPuff fills a rounded blob inside the CloudWidth x CloudHeight box at (x, y).
func drawPuff(screen *ebiten.Image, x, y float64) {
	sc := cfg.Scenery
	r := sc.CloudHeight / 2
	cy := y + r
	left := x + r
	right := x + sc.CloudWidth - r

	vector.DrawFilledCircle(screen, float32(left), float32(cy), float32(r), sc.CloudColor, true)
	vector.DrawFilledCircle(screen, float32(right), float32(cy), float32(r), sc.CloudColor, true)
	vector.FillRect(screen, float32(left), float32(y), float32(right-left), float32(sc.CloudHeight), sc.CloudColor, false)
}
