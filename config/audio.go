package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundJump
	SoundPickup
	SoundPotion
	SoundShield
	SoundShieldBreak
	SoundWin
	SoundLose
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `yaml:"sampleRate"`
	DefaultSFXVol float64 `yaml:"sfxVolume"`
	RunLoopVol    float64 `yaml:"runLoopVolume"`
}

// SoundConfig maps sound IDs to file paths relative to the assets directory
type SoundConfig struct {
	RunLoop           string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		RunLoopVol:    0.6,
	}

	Sound = SoundConfig{
		RunLoop: "audio/run.ogg",
		SFXPaths: map[SoundID]string{
			SoundJump:        "audio/jump.wav",
			SoundPickup:      "audio/pickup.wav",
			SoundPotion:      "audio/potion.wav",
			SoundShield:      "audio/shield.wav",
			SoundShieldBreak: "audio/shield_break.wav",
			SoundWin:         "audio/win.wav",
			SoundLose:        "audio/lose.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundPickup: 0.8,
		},
	}
}
