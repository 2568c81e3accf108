package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/lab-escape/assets"
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/tags"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across restarts
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalAudioFS      fs.FS
	globalRunLoop      *audio.Player
	globalRunLoopLost  bool // the loop file could not be loaded; stop retrying
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
	missingSFX         = map[cfg.SoundID]bool{}
)

// SetAudioSource sets where sound files are read from. Must be called
// before the first tick; a nil fsys keeps the game silent.
func SetAudioSource(fsys fs.FS) {
	globalAudioFS = fsys
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, globalAudioFS)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for id, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			missingSFX[id] = true
			log.Debug("sound effect unavailable", "path", path, "err", err)
		}
	}
}

// UpdateAudio plays queued effects and keeps the running loop in step with
// the player's animation.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	want := WantsRunLoop(e)
	if want == audioData.RunLoopOn {
		return
	}
	audioData.RunLoopOn = want
	if want {
		startRunLoop()
	} else {
		stopRunLoop()
	}
}

// WantsRunLoop reports whether the running sound should be playing: the
// run is in progress, the player runs and sound is on.
func WantsRunLoop(e *ecs.ECS) bool {
	if globalMuted || !IsPlaying(e) {
		return false
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	return components.Animation.Get(playerEntry).Mode == cfg.AnimRunning
}

func startRunLoop() {
	if globalRunLoop == nil {
		if globalRunLoopLost {
			return
		}
		player, err := globalAudioLoader.LoadLoop(cfg.Sound.RunLoop)
		if err != nil {
			globalRunLoopLost = true
			log.Warn("running sound unavailable", "path", cfg.Sound.RunLoop, "err", err)
			return
		}
		globalRunLoop = player
	}
	globalRunLoop.SetVolume(cfg.Audio.RunLoopVol)
	globalRunLoop.Play()
}

func stopRunLoop() {
	if globalRunLoop == nil {
		return
	}
	globalRunLoop.Pause()
	_ = globalRunLoop.Rewind()
}

func playSFX(soundID cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 || missingSFX[soundID] {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		missingSFX[soundID] = true
		log.Debug("sound effect unavailable", "path", path, "err", err)
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// SetMuted silences or restores every sound.
func SetMuted(muted bool) {
	globalMuted = muted
	if muted {
		stopRunLoop()
	}
}

// QueueSFX queues a sound effect to be played by UpdateAudio
func QueueSFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
