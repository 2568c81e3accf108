package scenes

import (
	"image/color"
	"math"
	"sync"

	"github.com/automoto/lab-escape/assets"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/systems"
	"github.com/automoto/lab-escape/systems/factory"
	"github.com/automoto/lab-escape/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options selects what a scene plays.
type Options struct {
	Variant cfg.VariantID
	// Level is a loaded Tiled map; nil uses the variant's built-in layout.
	Level *assets.Level
	// Saved are the persisted user settings, nil when none were found.
	Saved *systems.SavedSettings
}

// PlatformerScene owns the ECS world of a run and drives it one tick per
// Update.
type PlatformerScene struct {
	ecs     *ecs.ECS
	opts    Options
	once    sync.Once
	story   *ui.StoryUI
	ending  *ui.EndingUI
	screenW int
	screenH int
	viewW   float64
	viewH   float64
}

func NewPlatformerScene(opts Options) *PlatformerScene {
	return &PlatformerScene{opts: opts}
}

// SetScreenSize is called with the window size on every layout. A change
// re-lays-out the level for the new viewport; collected pickups stay
// collected.
func (ps *PlatformerScene) SetScreenSize(w, h int) {
	if w == ps.screenW && h == ps.screenH {
		return
	}
	ps.screenW, ps.screenH = w, h
	ps.viewW, ps.viewH = ViewportSize(w, h)
	if ps.ecs == nil {
		return
	}
	factory.Relayout(ps.ecs, ps.viewW, ps.viewH, true)
	log.Debug("viewport resized", "width", ps.viewW, "height", ps.viewH)
}

// ViewportSize returns the game viewport for a window: the full width and
// the top share of the height, the HUD strip takes the rest.
func ViewportSize(w, h int) (float64, float64) {
	// the epsilon absorbs rounding in ratios like 513/749
	return float64(w), math.Floor(float64(h)*cfg.World.ViewportRatio + 1e-9)
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	if systems.QuitRequested(ps.ecs) {
		return systems.ErrQuit
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	// Clock and input run first so every system sees the same tick
	ps.ecs.AddSystem(systems.UpdateClock)
	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.UpdateSettings)
	ps.ecs.AddSystem(systems.UpdateStory)
	ps.ecs.AddSystem(ps.updateOverlays)

	// Simulation step, only while playing
	ps.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateInventory))
	ps.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdatePlayer))
	ps.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateCamera))
	ps.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateCollisions))
	ps.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdateEndpoint))
	ps.ecs.AddSystem(systems.WithPlayingCheck(systems.UpdatePickups))

	ps.ecs.AddSystem(systems.UpdateEnding)
	ps.ecs.AddSystem(systems.UpdateHUD)
	ps.ecs.AddSystem(systems.UpdateAudio)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPlatforms)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPickups)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawEndpoint)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ps.ecs.AddRenderer(cfg.Default, ps.drawOverlays)

	if ps.viewW == 0 || ps.viewH == 0 {
		ps.viewW, ps.viewH = ViewportSize(ebiten.WindowSize())
	}
	factory.BuildLevel(ps.ecs, ps.opts.Level, ps.opts.Variant, ps.viewW, ps.viewH, systems.Now())
	systems.ApplySavedSettings(ps.ecs, ps.opts.Saved)

	var err error
	if ps.story, err = ui.NewStoryUI(func() { systems.AdvanceStory(ps.ecs) }); err != nil {
		log.Warn("story modal unavailable, use Enter to continue", "err", err)
	}
	if ps.ending, err = ui.NewEndingUI(func() { systems.Restart(ps.ecs) }); err != nil {
		log.Warn("ending modal unavailable, use Enter to restart", "err", err)
	}

	log.Info("run started", "variant", ps.opts.Variant, "viewport", []float64{ps.viewW, ps.viewH})
}

// updateOverlays feeds mouse input to the modal of the current state.
func (ps *PlatformerScene) updateOverlays(e *ecs.ECS) {
	game := systems.GetGame(e)
	if game == nil {
		return
	}
	switch game.State {
	case cfg.GameStateStory:
		if ps.story != nil {
			ps.story.SetPage(game.StoryPage)
			ps.story.Update()
		}
	case cfg.GameStateEnded:
		if ps.ending != nil {
			ps.ending.SetResult(game.Outcome, game.CollectedPickups, game.TotalPickups)
			ps.ending.Update()
		}
	}
}

func (ps *PlatformerScene) drawOverlays(e *ecs.ECS, screen *ebiten.Image) {
	game := systems.GetGame(e)
	if game == nil {
		return
	}
	switch game.State {
	case cfg.GameStateStory:
		if ps.story != nil {
			ps.story.SetPage(game.StoryPage)
			ps.story.Draw(screen)
		}
	case cfg.GameStateEnded:
		if ps.ending != nil {
			ps.ending.SetResult(game.Outcome, game.CollectedPickups, game.TotalPickups)
			ps.ending.Draw(screen, systems.GetOrCreateHUD(e).EndingAlpha)
		}
	}
}
