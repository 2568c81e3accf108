package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	cfg "github.com/automoto/lab-escape/config"
	"github.com/lafriks/go-tiled"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// BuiltinLevelPrefix marks a level path that refers to an embedded map,
// e.g. "builtin:lab".
const BuiltinLevelPrefix = "builtin:"

// Level is a playfield layout in its own coordinate space. Maps loaded from
// Tiled use map pixels; code layouts use screen pixels.
type Level struct {
	Name        string
	Width       float64
	Height      float64
	Platforms   []PlatformSpawn
	Pickups     []PickupSpawn
	Endpoint    *EndpointSpawn
	PlayerSpawn *PlayerSpawn
}

type PlatformSpawn struct {
	X, Y, Width, Height float64
	Kind                string
}

// Decorative reports whether the platform is scenery without collision.
func (p PlatformSpawn) Decorative() bool {
	return cfg.IsDecorative(p.Kind)
}

type PickupSpawn struct {
	X, Y, Width, Height float64
	ID                  int
}

type EndpointSpawn struct {
	X, Y, Width, Height float64
	Label               string
}

type PlayerSpawn struct {
	X, Y float64
}

// ErrNoPlatforms is returned for maps without any solid platform.
var ErrNoPlatforms = errors.New("level has no solid platforms")

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// BuiltinLevels lists the names of the embedded maps.
func BuiltinLevels() []string {
	entries, err := fs.ReadDir(levelFS, "levels")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(e.Name(), ".tmx"))
		}
	}
	return names
}

// LoadLevel loads a Tiled map. A "builtin:" path selects an embedded map,
// anything else is read from disk.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	var (
		m   *tiled.Map
		err error
	)
	if name, ok := strings.CutPrefix(levelPath, BuiltinLevelPrefix); ok {
		m, err = tiled.LoadFile(path.Join("levels", name+".tmx"), tiled.WithFileSystem(levelFS))
	} else {
		m, err = tiled.LoadFile(levelPath)
	}
	if err != nil {
		return Level{}, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level, err := levelFromMap(m, levelPath)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", levelPath, err)
	}
	return level, nil
}

func levelFromMap(m *tiled.Map, name string) (Level, error) {
	level := Level{
		Name:   name,
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, PlatformSpawn{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Kind:   objectKind(o),
				})
			}
		case "Pickups":
			for _, o := range og.Objects {
				level.Pickups = append(level.Pickups, PickupSpawn{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					ID:     o.Properties.GetInt("id"),
				})
			}
			sort.SliceStable(level.Pickups, func(i, j int) bool {
				return level.Pickups[i].ID < level.Pickups[j].ID
			})
		case "Endpoint":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			label := o.Properties.GetString("label")
			if label == "" {
				label = "LAB"
			}
			level.Endpoint = &EndpointSpawn{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height, Label: label}
		case "PlayerSpawn":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			level.PlayerSpawn = &PlayerSpawn{X: o.X, Y: o.Y}
		}
	}

	solid := 0
	for _, p := range level.Platforms {
		if !p.Decorative() {
			solid++
		}
	}
	if solid == 0 {
		return Level{}, ErrNoPlatforms
	}
	return level, nil
}

// objectKind returns the object's class, falling back to the legacy type
// attribute older maps use.
func objectKind(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}
