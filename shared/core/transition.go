package core

import (
	"github.com/automoto/epicfantasy/shared/gameconfig"
	"github.com/automoto/epicfantasy/shared/gamemath"
)

// Phase is the state of the level transition machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseFadingIn
)

func (p Phase) String() string {
	switch p {
	case PhaseFadingOut:
		return "fading_out"
	case PhaseFadingIn:
		return "fading_in"
	default:
		return "idle"
	}
}

// Transition sequences fade-out, level swap and fade-in. Target is only
// meaningful while fading out.
type Transition struct {
	Phase  Phase
	Target LevelID
	Alpha  int
}

// Active reports whether a transition is running.
func (t *Transition) Active() bool {
	return t.Phase != PhaseIdle
}

// Begin starts fading out toward target. It only succeeds from Idle, so a
// running transition can never be retargeted or restarted.
func (t *Transition) Begin(target LevelID) bool {
	if t.Phase != PhaseIdle {
		return false
	}
	t.Phase = PhaseFadingOut
	t.Target = target
	t.Alpha = 0
	return true
}

// Tick advances the fade by one step. It returns the level to swap to exactly
// once, on the tick where the fade-out reaches full opacity.
func (t *Transition) Tick() (LevelID, bool) {
	step := gameconfig.Transition.FadeStep

	switch t.Phase {
	case PhaseFadingOut:
		t.Alpha += step
		if t.Alpha >= 255 {
			t.Alpha = 255
			t.Phase = PhaseFadingIn
			target := t.Target
			t.Target = ""
			return target, true
		}
	case PhaseFadingIn:
		t.Alpha -= step
		if t.Alpha <= 0 {
			t.Alpha = 0
			t.Phase = PhaseIdle
		}
	}
	t.Alpha = gamemath.ClampInt(t.Alpha, 0, 255)
	return "", false
}

// Crossing reports the level the box is leaving to, if any. Exits are
// evaluated in the level's order; a right exit fires when the box's right
// edge passes within the threshold of the level end, a left exit when its
// left edge is within the threshold of zero.
func Crossing(lvl *Level, box gamemath.Rect) (LevelID, bool) {
	threshold := gameconfig.Transition.EdgeThreshold
	for _, exit := range lvl.Exits {
		switch exit.Side {
		case SideRight:
			if box.Right() > lvl.Width-threshold {
				return exit.Target, true
			}
		case SideLeft:
			if box.X < threshold {
				return exit.Target, true
			}
		}
	}
	return "", false
}

// ArrivalX returns where the player's left edge goes when entering to from
// from. Every level is entered at its left edge.
//
// With Transition.DirectionalArrival set, a player entering through the
// right-hand exit of to (walking back) lands just inside that edge instead.
func ArrivalX(to *Level, from LevelID, width float64) float64 {
	if !gameconfig.Transition.DirectionalArrival {
		return 0
	}

	threshold := gameconfig.Transition.EdgeThreshold
	for _, exit := range to.Exits {
		if exit.Target != from {
			continue
		}
		if exit.Side == SideRight {
			return max(0, to.Width-threshold-width)
		}
		return threshold
	}
	return 0
}
