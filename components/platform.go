package components

import "github.com/yohamta/donburi"

type PlatformData struct {
	Kind       string
	Decorative bool
	Index      int // position in the level list; collision runs in this order
}

var Platform = donburi.NewComponentType[PlatformData]()
