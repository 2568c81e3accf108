package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround *resolv.Object // platform landed on this tick, nil while airborne
}

var Physics = donburi.NewComponentType[PhysicsData]()
