package components

import "github.com/yohamta/donburi"

type PickupData struct {
	ID        int
	Collected bool
	Bob       float64 // vertical draw offset from the bobbing tween
}

var Pickup = donburi.NewComponentType[PickupData]()
