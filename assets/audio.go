package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrUnsupportedAudio is returned for files that are neither ogg nor wav.
var ErrUnsupportedAudio = errors.New("unsupported audio format")

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // decoded PCM per path
	context  *audio.Context
}

// NewAudioLoader creates a loader reading from fsys. A nil fsys makes every
// load fail with fs.ErrNotExist.
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

func (l *AudioLoader) read(name string) ([]byte, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("read audio file %s: %w", name, fs.ErrNotExist)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read audio file %s: %w", name, err)
	}
	return data, nil
}

// decodePCM decodes an ogg or wav file to PCM at the given sample rate.
func decodePCM(sampleRate int, name string, data []byte) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAudio, name)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}
	data, err := l.read(name)
	if err != nil {
		return err
	}
	decoded, err := decodePCM(l.context.SampleRate(), name, data)
	if err != nil {
		return err
	}
	l.sfxCache[name] = decoded
	return nil
}

// LoadSFX returns a new player for a cached sound effect, decoding it first
// if needed.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	if err := l.PreloadSFX(name); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[name]))
}

// LoadLoop returns a player that repeats an ogg file forever.
func (l *AudioLoader) LoadLoop(name string) (*audio.Player, error) {
	data, err := l.read(name)
	if err != nil {
		return nil, err
	}
	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode loop %s: %w", name, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}
