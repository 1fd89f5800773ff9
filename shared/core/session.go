package core

import (
	"fmt"
	"log"

	"github.com/automoto/epicfantasy/shared/gameconfig"
	"github.com/automoto/epicfantasy/shared/gamemath"
)

// Signal tells the caller what the session wants after a frame.
type Signal int

const (
	SignalNone Signal = iota
	SignalMenu
	SignalQuit
)

// Session owns the player, the level registry, the current level and the
// transition state. It is driven by a single loop goroutine.
type Session struct {
	Player     *Player
	Levels     map[LevelID]*Level
	Current    LevelID
	Transition Transition
}

// NewSession creates a session starting in start.
func NewSession(levels map[LevelID]*Level, start LevelID) (*Session, error) {
	if _, ok := levels[start]; !ok {
		return nil, fmt.Errorf("start level %q not found", start)
	}
	return &Session{
		Player:  NewPlayer(),
		Levels:  levels,
		Current: start,
	}, nil
}

// Level returns the level the player is in.
func (s *Session) Level() *Level {
	return s.Levels[s.Current]
}

// Update runs one frame: quit and escape first, then the player, the attack,
// the level, the crossing check and finally the fade.
func (s *Session) Update(in Input, now int64) Signal {
	if in.Quit {
		return SignalQuit
	}
	if in.Escape {
		return SignalMenu
	}

	lvl := s.Level()
	StepPlayer(s.Player, in, lvl)

	if in.Attack {
		Attack(s.Player, lvl.Enemies, now)
	}

	lvl.Update(s.Player, now)

	if !s.Transition.Active() {
		if target, ok := Crossing(lvl, s.Player.Box); ok {
			if _, known := s.Levels[target]; known && s.Transition.Begin(target) {
				log.Printf("Transition %s -> %s", s.Current, target)
			}
		}
	}

	if target, swap := s.Transition.Tick(); swap {
		s.swap(target)
	}

	return SignalNone
}

func (s *Session) swap(target LevelID) {
	from := s.Current
	s.Current = target
	next := s.Level()
	s.Player.Box.X = ArrivalX(next, from, s.Player.Box.W)
	log.Printf("Entered %s at x=%.0f", target, s.Player.Box.X)
}

// CameraX is the horizontal scroll for a viewport of the given width.
func (s *Session) CameraX(viewport float64) float64 {
	return gamemath.CameraOffset(s.Player.Box.CenterX(), s.Level().Width, viewport)
}

// Retune re-reads player and enemy tunables from gameconfig. Positions,
// health and combat timestamps are kept.
func (s *Session) Retune() {
	s.Player.retune()
	for _, lvl := range s.Levels {
		for _, e := range lvl.Enemies {
			e.MoveSpeed = gameconfig.Enemy.MoveSpeed
		}
	}
}

// ActorView is a read-only copy of an actor for rendering.
type ActorView struct {
	Box       gamemath.Rect
	Health    int
	MaxHealth int
	Swinging  bool
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Level     LevelID
	Theme     string
	Width     float64
	Platforms []gamemath.Rect
	Player    ActorView
	Enemies   []ActorView
	CameraX   float64
	SkyPhase  float64
	Phase     Phase
	FadeAlpha int
}

// Snapshot copies the visible state. Dead enemies are left out.
func (s *Session) Snapshot(viewport float64) Snapshot {
	lvl := s.Level()
	p := s.Player

	snap := Snapshot{
		Level:     lvl.ID,
		Theme:     lvl.Theme,
		Width:     lvl.Width,
		Platforms: lvl.Platforms(),
		Player: ActorView{
			Box:       p.Box,
			Health:    p.Health,
			MaxHealth: p.MaxHealth,
			Swinging:  p.SwingActive,
		},
		CameraX:   s.CameraX(viewport),
		SkyPhase:  lvl.SkyPhase(),
		Phase:     s.Transition.Phase,
		FadeAlpha: s.Transition.Alpha,
	}
	for _, e := range lvl.AliveEnemies() {
		snap.Enemies = append(snap.Enemies, ActorView{
			Box:       e.Box,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
		})
	}
	return snap
}
