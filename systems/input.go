package systems

import (
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for key edge events to avoid allocations
var (
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
)

// UpdateInput applies this frame's key-down and key-up events to the held
// key set and derives the action state from it.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	for _, k := range releasedKeys {
		ReleaseKey(input, k)
	}
	for _, k := range pressedKeys {
		PressKey(input, k)
	}

	RefreshActions(input)
}

// PressKey records a key-down event.
func PressKey(input *components.InputData, key ebiten.Key) {
	if input.Held == nil {
		input.Held = make(map[ebiten.Key]bool)
	}
	input.Held[key] = true
}

// ReleaseKey records a key-up event.
func ReleaseKey(input *components.InputData, key ebiten.Key) {
	delete(input.Held, key)
}

// RefreshActions rolls the action buffers and sets every action whose keys
// are held.
func RefreshActions(input *components.InputData) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if input.Held[key] {
				input.Current[actionID] = true
			}
		}
	}
}

// ClearInput forgets every held key and action.
func ClearInput(input *components.InputData) {
	clear(input.Held)
	input.Current = [cfg.ActionCount]bool{}
	input.Previous = [cfg.ActionCount]bool{}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{Held: make(map[ebiten.Key]bool)})
	}
	return components.Input.Get(entry)
}

// GetInput returns the singleton input state.
func GetInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreateInput(ecs)
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
