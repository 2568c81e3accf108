package components

import (
	cfg "github.com/automoto/lab-escape/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData keeps the set of held keys, maintained from key-down and
// key-up events, and the actions derived from it for the current and the
// previous tick.
type InputData struct {
	Held     map[ebiten.Key]bool
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
