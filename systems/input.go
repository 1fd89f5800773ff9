package systems

import (
	"github.com/automoto/epicfantasy/components"
	cfg "github.com/automoto/epicfantasy/config"
	"github.com/automoto/epicfantasy/shared/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	left, right := getAnalogStickState(gamepadIDs)
	if left {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if right {
		input.Current[cfg.ActionMoveRight] = true
	}

	// A mouse click shorter than one tick still counts as an attack.
	for _, btn := range cfg.Input.Bindings[cfg.ActionAttack].MouseButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			input.Current[cfg.ActionAttack] = true
		}
	}

	input.CloseRequested = ebiten.IsWindowBeingClosed()
}

// getAnalogStickState reads the horizontal left stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// CoreInput converts the polled actions into one frame of core input.
// Movement and jump are held; attack and back are edge-triggered.
func CoreInput(input *components.InputData) core.Input {
	return core.Input{
		Left:   GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right:  GetAction(input, cfg.ActionMoveRight).Pressed,
		Jump:   GetAction(input, cfg.ActionJump).Pressed,
		Attack: GetAction(input, cfg.ActionAttack).JustPressed,
		Escape: GetAction(input, cfg.ActionBack).JustPressed,
		Quit:   input.CloseRequested,
	}
}
