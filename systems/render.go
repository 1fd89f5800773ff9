package systems

import (
	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawActors renders living enemies and the player with its sword.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	snap := components.Level.Get(entry).Snapshot
	if snap.Level == "" {
		return
	}
	camX := components.Camera.Get(entry).X
	style := cfg.ActorStyle

	for _, enemy := range snap.Enemies {
		b := enemy.Box
		vector.FillRect(screen, float32(b.X-camX), float32(b.Y), float32(b.W), float32(b.H), style.EnemyColor, false)
	}

	p := snap.Player.Box
	px := p.X - camX
	vector.FillRect(screen, float32(px), float32(p.Y), float32(p.W), float32(p.H), style.PlayerColor, false)
	vector.DrawFilledCircle(screen, float32(px+p.W/2), float32(p.Y+style.HeadRadius), float32(style.HeadRadius), style.PlayerHeadColor, true)

	// Sword hangs off the right side; horizontal while swinging.
	swordX := px + p.W
	swordY := p.Y + style.SwordOffsetY
	if snap.Player.Swinging {
		vector.FillRect(screen, float32(swordX), float32(swordY), float32(style.SwordSwingWidth), float32(style.SwordSwingHeight), style.SwordColor, false)
		vector.StrokeLine(screen, float32(swordX), float32(swordY), float32(swordX), float32(swordY+style.SwordSwingHeight), 3, style.SwordEdgeColor, false)
		return
	}
	vector.FillRect(screen, float32(swordX), float32(swordY), float32(style.SwordIdleWidth), float32(style.SwordIdleHeight), style.SwordColor, false)
	mid := swordX + style.SwordIdleWidth/2
	vector.StrokeLine(screen, float32(mid), float32(swordY), float32(mid), float32(swordY+style.SwordIdleHeight), 3, style.SwordEdgeColor, false)
}
