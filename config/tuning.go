package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/epicfantasy/shared/gameconfig"
	"gopkg.in/yaml.v3"
)

// Tuning is an optional override file for gameplay values. Every field is a
// pointer so that only the keys present in the file are applied.
type Tuning struct {
	Physics    *PhysicsTuning    `yaml:"physics"`
	Player     *PlayerTuning     `yaml:"player"`
	Enemy      *EnemyTuning      `yaml:"enemy"`
	Combat     *CombatTuning     `yaml:"combat"`
	Transition *TransitionTuning `yaml:"transition"`
	Debug      *DebugTuning      `yaml:"debug"`
}

type PhysicsTuning struct {
	Gravity          *float64 `yaml:"gravity"`
	TerminalVelocity *float64 `yaml:"terminalVelocity"`
}

type PlayerTuning struct {
	MoveSpeed   *float64 `yaml:"moveSpeed"`
	JumpImpulse *float64 `yaml:"jumpImpulse"` // negative = up
	Health      *int     `yaml:"health"`
}

type EnemyTuning struct {
	MoveSpeed *float64 `yaml:"moveSpeed"`
	Health    *int     `yaml:"health"`
}

type CombatTuning struct {
	Damage           *int     `yaml:"damage"`
	AttackCooldownMs *int64   `yaml:"attackCooldownMs"`
	SwingDurationMs  *int64   `yaml:"swingDurationMs"`
	HitboxWidth      *float64 `yaml:"hitboxWidth"`
	HitboxHeight     *float64 `yaml:"hitboxHeight"`
}

type TransitionTuning struct {
	FadeStep           *int     `yaml:"fadeStep"`
	EdgeThreshold      *float64 `yaml:"edgeThreshold"`
	DirectionalArrival *bool    `yaml:"directionalArrival"`
}

type DebugTuning struct {
	ShowHitboxes *bool `yaml:"showHitboxes"`
}

// LoadTuning reads and validates a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", path, err)
	}

	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes and validates tuning YAML.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return &t, nil
}

// Validate rejects values the simulation cannot run with.
func (t *Tuning) Validate() error {
	var errs []error
	positive := func(name string, v *float64) {
		if v != nil && *v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, *v))
		}
	}
	positiveInt := func(name string, v *int) {
		if v != nil && *v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, *v))
		}
	}
	nonNegativeMs := func(name string, v *int64) {
		if v != nil && *v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, *v))
		}
	}

	if p := t.Physics; p != nil {
		positive("physics.gravity", p.Gravity)
		positive("physics.terminalVelocity", p.TerminalVelocity)
	}
	if p := t.Player; p != nil {
		positive("player.moveSpeed", p.MoveSpeed)
		positiveInt("player.health", p.Health)
		if p.JumpImpulse != nil && *p.JumpImpulse >= 0 {
			errs = append(errs, fmt.Errorf("player.jumpImpulse must be negative, got %v", *p.JumpImpulse))
		}
	}
	if e := t.Enemy; e != nil {
		positive("enemy.moveSpeed", e.MoveSpeed)
		positiveInt("enemy.health", e.Health)
	}
	if c := t.Combat; c != nil {
		positiveInt("combat.damage", c.Damage)
		nonNegativeMs("combat.attackCooldownMs", c.AttackCooldownMs)
		nonNegativeMs("combat.swingDurationMs", c.SwingDurationMs)
		positive("combat.hitboxWidth", c.HitboxWidth)
		positive("combat.hitboxHeight", c.HitboxHeight)
	}
	if tr := t.Transition; tr != nil {
		if tr.FadeStep != nil && (*tr.FadeStep < 1 || *tr.FadeStep > 255) {
			errs = append(errs, fmt.Errorf("transition.fadeStep must be in [1, 255], got %d", *tr.FadeStep))
		}
		if tr.EdgeThreshold != nil && *tr.EdgeThreshold < 0 {
			errs = append(errs, fmt.Errorf("transition.edgeThreshold must not be negative, got %v", *tr.EdgeThreshold))
		}
	}

	return errors.Join(errs...)
}

// Apply writes the present keys into the global configuration.
func (t *Tuning) Apply() {
	if p := t.Physics; p != nil {
		set(&gameconfig.Physics.Gravity, p.Gravity)
		set(&gameconfig.Physics.TerminalVelocity, p.TerminalVelocity)
	}
	if p := t.Player; p != nil {
		set(&gameconfig.Player.MoveSpeed, p.MoveSpeed)
		set(&gameconfig.Player.JumpImpulse, p.JumpImpulse)
		set(&gameconfig.Player.Health, p.Health)
	}
	if e := t.Enemy; e != nil {
		set(&gameconfig.Enemy.MoveSpeed, e.MoveSpeed)
		set(&gameconfig.Enemy.Health, e.Health)
	}
	if c := t.Combat; c != nil {
		set(&gameconfig.Combat.Damage, c.Damage)
		set(&gameconfig.Combat.AttackCooldownMs, c.AttackCooldownMs)
		set(&gameconfig.Combat.SwingDurationMs, c.SwingDurationMs)
		set(&gameconfig.Combat.HitboxWidth, c.HitboxWidth)
		set(&gameconfig.Combat.HitboxHeight, c.HitboxHeight)
	}
	if tr := t.Transition; tr != nil {
		set(&gameconfig.Transition.FadeStep, tr.FadeStep)
		set(&gameconfig.Transition.EdgeThreshold, tr.EdgeThreshold)
		set(&gameconfig.Transition.DirectionalArrival, tr.DirectionalArrival)
	}
	if d := t.Debug; d != nil {
		set(&Debug.ShowHitboxes, d.ShowHitboxes)
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
