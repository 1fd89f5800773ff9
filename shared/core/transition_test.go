package core

import (
	"testing"

	"github.com/automoto/epicfantasy/shared/gameconfig"
	"github.com/automoto/epicfantasy/shared/gamemath"
)

func TestTransitionSequence(t *testing.T) {
	resetConfig(t)
	var tr Transition

	if _, swap := tr.Tick(); swap || tr.Alpha != 0 || tr.Active() {
		t.Fatal("idle tick changed state")
	}
	if !tr.Begin(Earth) {
		t.Fatal("Begin from idle failed")
	}

	swaps := 0
	ticks := 0
	for tr.Active() {
		ticks++
		if target, swap := tr.Tick(); swap {
			swaps++
			if target != Earth {
				t.Errorf("swap target = %s, want earth", target)
			}
			if tr.Alpha != 255 || tr.Phase != PhaseFadingIn {
				t.Errorf("at swap alpha = %d phase = %s", tr.Alpha, tr.Phase)
			}
		}
		if tr.Alpha < 0 || tr.Alpha > 255 {
			t.Fatalf("alpha %d out of range", tr.Alpha)
		}
		if ticks > 1000 {
			t.Fatal("transition never finished")
		}
	}

	if swaps != 1 {
		t.Errorf("swaps = %d, want 1", swaps)
	}
	if ticks != 102 {
		t.Errorf("ticks = %d, want 102", ticks)
	}
	if tr.Alpha != 0 || tr.Phase != PhaseIdle {
		t.Errorf("end state alpha = %d phase = %s", tr.Alpha, tr.Phase)
	}
}

func TestTransitionAlphaClampsWithOddStep(t *testing.T) {
	resetConfig(t)
	gameconfig.Transition.FadeStep = 40
	var tr Transition
	tr.Begin(Desert)

	for i := 0; i < 6; i++ {
		tr.Tick()
	}
	if tr.Alpha != 240 {
		t.Fatalf("alpha = %d, want 240", tr.Alpha)
	}
	if _, swap := tr.Tick(); !swap || tr.Alpha != 255 {
		t.Errorf("alpha = %d, want clamp to 255 with swap", tr.Alpha)
	}
}

func TestBeginGuard(t *testing.T) {
	resetConfig(t)
	var tr Transition
	tr.Begin(Earth)
	tr.Tick()
	tr.Tick()

	if tr.Begin(Forest) {
		t.Error("Begin succeeded during a running transition")
	}
	if tr.Target != Earth || tr.Alpha != 10 {
		t.Errorf("target = %s alpha = %d; want earth, 10", tr.Target, tr.Alpha)
	}
}

func TestCrossing(t *testing.T) {
	resetConfig(t)
	levels := threeLevels()

	tests := []struct {
		name   string
		level  LevelID
		x      float64
		want   LevelID
		exited bool
	}{
		{"forest right edge", Forest, 1951, Earth, true},
		{"forest right at threshold", Forest, 1950, "", false},
		{"forest left edge has no exit", Forest, 0, "", false},
		{"earth right edge", Earth, 1960, Desert, true},
		{"earth left edge", Earth, 9, Forest, true},
		{"earth left at threshold", Earth, 10, "", false},
		{"desert left edge", Desert, 0, Earth, true},
		{"desert right edge has no exit", Desert, 1960, "", false},
		{"middle", Earth, 1000, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := gamemath.NewRect(tt.x, 490, 40, 60)
			got, ok := Crossing(levels[tt.level], box)
			if got != tt.want || ok != tt.exited {
				t.Errorf("Crossing = %q, %v; want %q, %v", got, ok, tt.want, tt.exited)
			}
		})
	}
}

func TestArrivalX(t *testing.T) {
	resetConfig(t)
	levels := threeLevels()

	tests := []struct {
		name        string
		to, from    LevelID
		directional bool
		want        float64
	}{
		{"forest from earth", Forest, Earth, false, 0},
		{"earth from forest", Earth, Forest, false, 0},
		{"earth from desert", Earth, Desert, false, 0},
		{"desert from earth", Desert, Earth, false, 0},
		{"directional earth from desert", Earth, Desert, true, 1950},
		{"directional earth from forest", Earth, Forest, true, 10},
		{"directional desert from earth", Desert, Earth, true, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gameconfig.Transition.DirectionalArrival = tt.directional
			if got := ArrivalX(levels[tt.to], tt.from, 40); got != tt.want {
				t.Errorf("ArrivalX = %v, want %v", got, tt.want)
			}
		})
	}
}
