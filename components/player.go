package components

import (
	cfg "github.com/automoto/lab-escape/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing       cfg.Facing
	ShieldActive bool
	ShieldHits   int // hits absorbed by the active shield
}

var Player = donburi.NewComponentType[PlayerData]()
