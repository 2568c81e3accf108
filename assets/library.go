package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"sync"
	"sync/atomic"

	cfg "github.com/automoto/lab-escape/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// Group is a set of images that is loaded together and becomes usable as a
// unit.
type Group string

const (
	GroupBackground Group = "background"
	GroupIdle       Group = "idle"
	GroupRunning    Group = "running"
	GroupPlatforms  Group = "platforms"
	GroupPickup     Group = "pickup"
)

// Groups lists every image group with the asset names it contains.
var Groups = map[Group][]string{
	GroupBackground: {"background"},
	GroupIdle:       cfg.PlayerAnimations[cfg.AnimIdle].Frames,
	GroupRunning:    cfg.PlayerAnimations[cfg.AnimRunning].Frames,
	GroupPlatforms:  {"road-1", "road-kanban", "road-2", "house-1"},
	GroupPickup:     {"hp-logo"},
}

// imageExtensions are tried in order for every asset name.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// ErrAssetMissing is reported for an asset that has no readable file.
var ErrAssetMissing = errors.New("asset missing")

type group struct {
	names   []string
	decoded map[string]image.Image // written by the loader before ready is set
	missing []string
	ready   atomic.Bool
}

// Library loads image groups from a file system in the background. Loading
// never blocks the game loop: renderers poll Ready or Image and draw a
// placeholder until the group is in.
type Library struct {
	fsys   fs.FS
	dir    string
	groups map[Group]*group
	byName map[string]Group

	mu     sync.Mutex // guards images; only the main thread converts
	images map[string]*ebiten.Image
	once   sync.Once
	done   chan struct{}
	err    error
}

// NewLibrary creates a library reading "<dir>/<name>.<ext>" from fsys.
// A nil fsys yields a library where every group is ready and empty.
func NewLibrary(fsys fs.FS, dir string) *Library {
	l := &Library{
		fsys:   fsys,
		dir:    dir,
		groups: make(map[Group]*group, len(Groups)),
		byName: make(map[string]Group),
		images: make(map[string]*ebiten.Image),
		done:   make(chan struct{}),
	}
	for g, names := range Groups {
		l.groups[g] = &group{names: names, decoded: make(map[string]image.Image)}
		for _, n := range names {
			l.byName[n] = g
		}
	}
	return l
}

// LoadAsync starts loading every group and returns immediately.
func (l *Library) LoadAsync(ctx context.Context) {
	go func() {
		if err := l.Load(ctx); err != nil {
			log.Warn("asset loading stopped", "err", err)
		}
	}()
}

// Load decodes every group concurrently and returns once all of them have
// finished. Missing or broken files are logged and leave their group ready
// without that image; only cancellation is returned as an error. Later calls
// wait for the first load and return its result.
func (l *Library) Load(ctx context.Context) error {
	l.once.Do(func() {
		g, ctx := errgroup.WithContext(ctx)
		for name, grp := range l.groups {
			g.Go(func() error {
				return l.loadGroup(ctx, name, grp)
			})
		}
		l.err = g.Wait()
		close(l.done)
	})
	<-l.done
	return l.err
}

// Done is closed when Load has returned.
func (l *Library) Done() <-chan struct{} {
	return l.done
}

func (l *Library) loadGroup(ctx context.Context, name Group, grp *group) error {
	for _, asset := range grp.names {
		if err := ctx.Err(); err != nil {
			return err
		}
		img, err := l.decode(asset)
		if err != nil {
			grp.missing = append(grp.missing, asset)
			log.Warn("using placeholder for image", "group", name, "asset", asset, "err", err)
			continue
		}
		grp.decoded[asset] = img
	}
	grp.ready.Store(true)
	log.Debug("image group loaded", "group", name, "images", len(grp.decoded), "missing", len(grp.missing))
	return nil
}

func (l *Library) decode(asset string) (image.Image, error) {
	if l.fsys == nil {
		return nil, ErrAssetMissing
	}
	for _, ext := range imageExtensions {
		f, err := l.fsys.Open(path.Join(l.dir, asset+ext))
		if err != nil {
			continue
		}
		img, _, err := image.Decode(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s%s: %w", asset, ext, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrAssetMissing, asset)
}

// Ready reports whether a group has finished loading.
func (l *Library) Ready(g Group) bool {
	grp, ok := l.groups[g]
	return ok && grp.ready.Load()
}

// Decoded returns the decoded image for an asset once its group is ready.
func (l *Library) Decoded(asset string) (image.Image, bool) {
	grp, ok := l.groupOf(asset)
	if !ok || !grp.ready.Load() {
		return nil, false
	}
	img, ok := grp.decoded[asset]
	return img, ok
}

// Missing lists the assets of a ready group that could not be loaded.
func (l *Library) Missing(g Group) []string {
	grp, ok := l.groups[g]
	if !ok || !grp.ready.Load() {
		return nil
	}
	return grp.missing
}

// Image returns the GPU image for an asset, or nil while it is not
// available. Must be called from the game loop.
func (l *Library) Image(asset string) *ebiten.Image {
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.images[asset]; ok {
		return img
	}
	src, ok := l.Decoded(asset)
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	l.images[asset] = img
	return img
}

func (l *Library) groupOf(asset string) (*group, bool) {
	g, ok := l.byName[asset]
	if !ok {
		return nil, false
	}
	return l.groups[g], true
}
