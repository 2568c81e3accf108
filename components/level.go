package components

import (
	"github.com/automoto/lab-escape/assets"
	"github.com/yohamta/donburi"
)

// LevelData records where the current layout came from so it can be
// rebuilt for a new viewport. Source is nil for the built-in code layouts.
type LevelData struct {
	Source  *assets.Level
	Current assets.Level // layout in world pixels
}

var Level = donburi.NewComponentType[LevelData]()
