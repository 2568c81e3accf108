package components

import "github.com/yohamta/donburi"

// WorldData holds the dimensions of the playfield and of the viewport that
// looks at it. World height always equals viewport height.
type WorldData struct {
	Width      float64
	Height     float64
	Gravity    float64
	ViewWidth  float64
	ViewHeight float64
}

var World = donburi.NewComponentType[WorldData]()
