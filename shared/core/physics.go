package core

import (
	"github.com/automoto/epicfantasy/shared/gameconfig"
	"github.com/automoto/epicfantasy/shared/gamemath"
)

// StepPlayer advances the player by one tick: horizontal intent, gravity,
// jump, then axis-separated movement against the level's platforms.
func StepPlayer(p *Player, in Input, lvl *Level) {
	dx := 0.0
	if in.Left {
		dx = -p.MoveSpeed
	}
	// Right wins when both are held.
	if in.Right {
		dx = p.MoveSpeed
	}

	applyGravity(&p.Actor)

	if in.Jump {
		Jump(p)
	}

	moveActor(&p.Actor, dx, lvl)
}

// Jump launches the player if it is standing on something. It reports whether
// the jump happened; airborne calls leave the velocity untouched.
func Jump(p *Player) bool {
	if !p.OnGround {
		return false
	}
	p.VY = p.JumpImpulse
	p.OnGround = false
	return true
}

// StepEnemy walks a living enemy toward the target's centre at constant speed.
func StepEnemy(e *Enemy, target gamemath.Rect, lvl *Level) {
	if !e.Alive() {
		return
	}

	dx := 0.0
	switch {
	case target.CenterX() > e.Box.CenterX():
		dx = e.MoveSpeed
	case target.CenterX() < e.Box.CenterX():
		dx = -e.MoveSpeed
	}

	applyGravity(&e.Actor)
	moveActor(&e.Actor, dx, lvl)
}

func applyGravity(a *Actor) {
	a.VY += gameconfig.Physics.Gravity
	if a.VY > gameconfig.Physics.TerminalVelocity {
		a.VY = gameconfig.Physics.TerminalVelocity
	}
}

// moveActor resolves x first, then y. OnGround is only set by a downward snap
// in this tick.
func moveActor(a *Actor, dx float64, lvl *Level) {
	// --- Horizontal ---
	before := a.Box
	a.Box.X += dx
	a.Box = gamemath.ClampToBounds(a.Box, 0, lvl.Width)
	if dx != 0 {
		a.Box, _ = gamemath.ResolveAxis(a.Box, lvl.Candidates(before, a.Box), gamemath.AxisX, dx)
	}

	// --- Vertical ---
	dy := a.VY
	before = a.Box
	a.Box.Y += dy
	box, hit := gamemath.ResolveAxis(a.Box, lvl.Candidates(before, a.Box), gamemath.AxisY, dy)
	a.Box = box
	a.OnGround = hit && dy > 0
	if hit {
		a.VY = 0
	}
}
