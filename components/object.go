package components

import (
	"github.com/automoto/lab-escape/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData places an entity in the collision space. Position and size
// live on the resolv object; everything else reads them from here.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounding box.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()
