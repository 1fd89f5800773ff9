// Package gameconfig holds the gameplay tunables read by shared/core. It must
// have zero dependencies on ebiten or any graphics library so the core stays
// testable headless. Presentation settings live in the client config package.
package gameconfig

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity          float64 // added to vertical velocity every tick
	TerminalVelocity float64 // max downward speed
	BroadPhaseCell   int     // resolv space cell size in pixels
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	StartX, StartY float64
	Width, Height  float64
	MoveSpeed      float64
	JumpImpulse    float64 // negative = up
	Health         int
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Width, Height float64
	Health        int
	MoveSpeed     float64

	// Dead enemies are parked here
	DeadX, DeadY float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	Damage           int
	AttackCooldownMs int64
	SwingDurationMs  int64
	HitboxWidth      float64
	HitboxHeight     float64
}

// TransitionConfig contains level transition configuration
type TransitionConfig struct {
	FadeStep      int     // alpha change per tick
	EdgeThreshold float64 // distance from a level edge that triggers an exit

	// When set, a player walking back into a level arrives at the edge
	// they came through instead of always at x = 0.
	DirectionalArrival bool
}

// SkyConfig drives the cosmetic sky scroll
type SkyConfig struct {
	Period       float64 // the phase loops over [0, Period)
	DriftPerTick float64
}

// Global configuration instances
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Transition TransitionConfig
var Sky SkyConfig

func init() {
	Reset()
}

// Reset restores every tunable to its default. Tests call it to undo overrides.
func Reset() {
	Physics = PhysicsConfig{
		Gravity:          1,
		TerminalVelocity: 10,
		BroadPhaseCell:   16,
	}

	Player = PlayerConfig{
		StartX:      100,
		StartY:      490,
		Width:       40,
		Height:      60,
		MoveSpeed:   5,
		JumpImpulse: -15,
		Health:      100,
	}

	Enemy = EnemyConfig{
		Width:     40,
		Height:    50,
		Health:    50,
		MoveSpeed: 2,
		DeadX:     -100,
		DeadY:     -100,
	}

	Combat = CombatConfig{
		Damage:           25,
		AttackCooldownMs: 300,
		SwingDurationMs:  200,
		HitboxWidth:      50,
		HitboxHeight:     40,
	}

	Transition = TransitionConfig{
		FadeStep:      5,
		EdgeThreshold: 10,
	}

	Sky = SkyConfig{
		Period:       800,
		DriftPerTick: 0.1,
	}
}
