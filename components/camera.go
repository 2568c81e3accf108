package components

import "github.com/yohamta/donburi"

// CameraData is the top-left corner of the viewport in world pixels.
type CameraData struct {
	X, Y int
}

var Camera = donburi.NewComponentType[CameraData]()
