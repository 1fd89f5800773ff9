// Package core is the engine-independent game simulation: kinematics, combat,
// levels and the level transition state machine. Rendering and input polling
// live outside and talk to it through Input and Snapshot.
package core

import (
	"github.com/automoto/epicfantasy/shared/gameconfig"
	"github.com/automoto/epicfantasy/shared/gamemath"
)

// LevelID names a level. It matches the TMX file stem.
type LevelID string

const (
	Forest LevelID = "forest"
	Earth  LevelID = "earth"
	Desert LevelID = "desert"
)

// Input is one frame of player intent.
type Input struct {
	Left, Right bool
	Jump        bool
	Attack      bool // edge-triggered
	Escape      bool // edge-triggered
	Quit        bool
}

// Actor is the shared state of anything that walks, falls and can be hurt.
type Actor struct {
	Box       gamemath.Rect
	VY        float64
	OnGround  bool
	Health    int
	MaxHealth int
}

func (a *Actor) Alive() bool {
	return a.Health > 0
}

// TakeDamage subtracts amount from health, clamping at zero. Non-positive
// amounts and hits on dead actors are ignored. It reports whether this hit
// killed the actor.
func (a *Actor) TakeDamage(amount int) bool {
	if amount <= 0 || !a.Alive() {
		return false
	}
	a.Health -= amount
	if a.Health <= 0 {
		a.Health = 0
		return true
	}
	return false
}

// Player is the controllable character. It survives level swaps; only its
// position changes on arrival.
type Player struct {
	Actor

	MoveSpeed   float64
	JumpImpulse float64

	AttackDamage     int
	AttackCooldownMs int64
	LastAttackAt     int64

	SwingActive     bool
	SwingStartAt    int64
	SwingDurationMs int64
}

// NewPlayer creates a player at the configured start position.
func NewPlayer() *Player {
	cfg := gameconfig.Player
	p := &Player{
		Actor: Actor{
			Box:       gamemath.NewRect(cfg.StartX, cfg.StartY, cfg.Width, cfg.Height),
			Health:    cfg.Health,
			MaxHealth: cfg.Health,
		},
	}
	p.retune()
	// The first attack is never blocked by the cooldown.
	p.LastAttackAt = -p.AttackCooldownMs
	return p
}

func (p *Player) retune() {
	p.MoveSpeed = gameconfig.Player.MoveSpeed
	p.JumpImpulse = gameconfig.Player.JumpImpulse
	p.AttackDamage = gameconfig.Combat.Damage
	p.AttackCooldownMs = gameconfig.Combat.AttackCooldownMs
	p.SwingDurationMs = gameconfig.Combat.SwingDurationMs
}

// Enemy walks toward the player and never jumps.
type Enemy struct {
	Actor
	MoveSpeed float64
}

// NewEnemy creates an enemy with its top-left corner at (x, y).
func NewEnemy(x, y float64) *Enemy {
	cfg := gameconfig.Enemy
	return &Enemy{
		Actor: Actor{
			Box:       gamemath.NewRect(x, y, cfg.Width, cfg.Height),
			Health:    cfg.Health,
			MaxHealth: cfg.Health,
		},
		MoveSpeed: cfg.MoveSpeed,
	}
}

// TakeDamage applies the hit and parks the enemy off screen once it dies so
// it never collides or renders again.
func (e *Enemy) TakeDamage(amount int) bool {
	died := e.Actor.TakeDamage(amount)
	if died {
		e.Box.X = gameconfig.Enemy.DeadX
		e.Box.Y = gameconfig.Enemy.DeadY
		e.VY = 0
	}
	return died
}
