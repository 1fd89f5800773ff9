package core

import (
	"math"
	"sort"

	"github.com/automoto/epicfantasy/shared/gameconfig"
	"github.com/automoto/epicfantasy/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	tagSolid = "solid"
	tagProbe = "probe"
)

// Exit sides.
const (
	SideLeft  = "left"
	SideRight = "right"
)

// Exit links one edge of a level to a neighbour.
type Exit struct {
	Side   string // SideLeft or SideRight
	Target LevelID
}

// Level owns its platforms and enemies. Geometry is fixed after NewLevel.
type Level struct {
	ID        LevelID
	Theme     string
	Enemies   []*Enemy
	Exits     []Exit
	Width     float64
	platforms []gamemath.Rect

	// Broad phase: platforms live in a resolv space; probe is moved over the
	// swept box of each move to collect candidate platforms.
	space *resolv.Space
	probe *resolv.Object

	sky      *gween.Tween
	skyPhase float64
}

// NewLevel builds a level and its collision space. Width is the right edge of
// the rightmost platform.
func NewLevel(id LevelID, platforms []gamemath.Rect, enemies []*Enemy, exits []Exit) *Level {
	l := &Level{
		ID:        id,
		Theme:     string(id),
		Enemies:   enemies,
		Exits:     exits,
		platforms: append([]gamemath.Rect(nil), platforms...),
	}

	bottom := 0.0
	for _, p := range l.platforms {
		l.Width = max(l.Width, p.Right())
		bottom = max(bottom, p.Bottom())
	}

	cell := gameconfig.Physics.BroadPhaseCell
	l.space = resolv.NewSpace(int(math.Ceil(l.Width))+cell, int(math.Ceil(bottom))+cell, cell, cell)
	for i, p := range l.platforms {
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tagSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
		obj.Data = i
		l.space.Add(obj)
	}
	l.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	l.space.Add(l.probe)

	period := float32(gameconfig.Sky.Period)
	l.sky = gween.New(0, period, period/float32(gameconfig.Sky.DriftPerTick), ease.Linear)

	return l
}

// Platforms returns a copy of the level's platforms in declaration order.
func (l *Level) Platforms() []gamemath.Rect {
	return append([]gamemath.Rect(nil), l.platforms...)
}

// AliveEnemies returns the enemies that are still alive.
func (l *Level) AliveEnemies() []*Enemy {
	alive := make([]*Enemy, 0, len(l.Enemies))
	for _, e := range l.Enemies {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	return alive
}

// SkyPhase is the cosmetic background scroll in [0, Sky.Period).
func (l *Level) SkyPhase() float64 {
	return l.skyPhase
}

// Candidates returns the platforms sharing broad-phase cells with the swept
// box of a move from before to after, in declaration order.
func (l *Level) Candidates(before, after gamemath.Rect) []gamemath.Rect {
	swept := before.Union(after).Inset(-1)
	l.probe.X = swept.X
	l.probe.Y = swept.Y
	l.probe.W = swept.W
	l.probe.H = swept.H
	l.probe.Update()

	check := l.probe.Check(0, 0, tagSolid)
	if check == nil {
		return nil
	}

	solids := check.ObjectsByTags(tagSolid)
	idx := make([]int, 0, len(solids))
	for _, o := range solids {
		if i, ok := o.Data.(int); ok {
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)

	out := make([]gamemath.Rect, len(idx))
	for n, i := range idx {
		out[n] = l.platforms[i]
	}
	return out
}

// Update steps every enemy toward the player in insertion order, expires the
// player's swing window and advances the sky.
func (l *Level) Update(player *Player, now int64) {
	for _, e := range l.Enemies {
		StepEnemy(e, player.Box, l)
	}
	UpdateSwing(player, now)

	v, done := l.sky.Update(1)
	if done {
		l.sky.Reset()
	}
	l.skyPhase = math.Mod(float64(v), gameconfig.Sky.Period)
}
