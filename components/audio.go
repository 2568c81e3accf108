package components

import (
	cfg "github.com/automoto/lab-escape/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a tick; the audio system
// plays and clears them.
type AudioData struct {
	PendingSFX []cfg.SoundID
	RunLoopOn  bool
}

var Audio = donburi.NewComponentType[AudioData]()
