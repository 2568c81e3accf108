// lab-escape is a side-scrolling platformer: run through the city, dodge
// the fall, and reach the lab.
//
// Usage:
//
//	lab-escape                      - play the story variant
//	lab-escape --variant pickup     - collect the hp logos instead
//	lab-escape --level builtin:lab  - play a Tiled map
//	lab-escape levels               - list the built-in maps
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/lab-escape/assets"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/fonts"
	"github.com/automoto/lab-escape/scenes"
	"github.com/automoto/lab-escape/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

const (
	defaultWindowWidth  = 1024
	defaultWindowHeight = 749
)

var (
	flagVariant string
	flagAssets  string
	flagConfig  string
	flagLevel   string
	flagDebug   bool
	flagWidth   int
	flagHeight  int
)

type Game struct {
	scene *scenes.PlatformerScene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout uses the window size as the screen size so the viewport follows
// resizes.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.SetScreenSize(width, height)
	return width, height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lab-escape",
	Short: "Run through the city and reach the lab",
	Long: `Lab Escape is a side-scrolling platformer.

Controls:
  Left/Right  - Run
  Space       - Jump
  H           - Drink a health potion
  S           - Raise a shield
  Enter       - Next story page / play again
  M           - Mute
  F           - Fullscreen
  F3          - Debug overlay
  Esc         - Quit`,
	SilenceUsage: true,
	RunE:         runGame,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in Tiled maps",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range assets.BuiltinLevels() {
			fmt.Fprintln(cmd.OutOrStdout(), assets.BuiltinLevelPrefix+name)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagVariant, "variant", "story", "Game variant: story or pickup")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with images and audio (placeholders when empty)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML file overriding tunables")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Tiled map to play, a .tmx path or builtin:<name>")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging and collision overlay")
	rootCmd.Flags().IntVar(&flagWidth, "width", defaultWindowWidth, "Initial window width")
	rootCmd.Flags().IntVar(&flagHeight, "height", defaultWindowHeight, "Initial window height")

	rootCmd.AddCommand(levelsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	if flagDebug {
		log.SetLevel(log.DebugLevel)
	}

	if flagConfig != "" {
		if err := cfg.LoadFile(flagConfig); err != nil {
			return err
		}
	}
	if flagDebug {
		cfg.Debug.Enabled = true
	}

	variant, err := cfg.ParseVariant(flagVariant)
	if err != nil {
		return err
	}

	var level *assets.Level
	if flagLevel != "" {
		l, err := assets.NewLevelLoader().LoadLevel(flagLevel)
		if err != nil {
			return err
		}
		level = &l
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	var assetFS fs.FS
	if flagAssets != "" {
		assetFS = os.DirFS(flagAssets)
	}
	lib := assets.NewLibrary(assetFS, ".")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	lib.LoadAsync(ctx)
	systems.SetImageLibrary(lib)

	systems.SetAudioSource(assetFS)
	systems.PreloadAllSFX()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("settings will not be saved", "err", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Warn("ignoring saved settings", "err", err)
		saved = nil
	}

	ebiten.SetWindowTitle("Lab Escape")
	ebiten.SetWindowSize(flagWidth, flagHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{scene: scenes.NewPlatformerScene(scenes.Options{
		Variant: variant,
		Level:   level,
		Saved:   saved,
	})}
	log.Info("starting", "variant", variant, "level", flagLevel, "assets", flagAssets)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, systems.ErrQuit) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
