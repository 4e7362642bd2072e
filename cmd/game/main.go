// game is a minimal Ebitengine app that opens on a main menu.
//
// Usage:
//
//	game                 - Open the window on the main menu
//	game replay <file>   - Run a recorded session headless and print the result
//
// Global flags:
//
//	--config <dir>       - Directory holding app.yaml (default: embedded config)
//	--debug              - Show the world inspector overlay
//	--web                - Behave as the browser build (no Quit button)
//	--log-level <level>  - debug, info, warn, error
//
// Keys while running: F11 toggles fullscreen, M toggles sound.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/spf13/cobra"

	"github.com/younwookim/gamemenu/internal/application/game"
	"github.com/younwookim/gamemenu/internal/application/replay"
	"github.com/younwookim/gamemenu/internal/application/system"
	"github.com/younwookim/gamemenu/internal/infrastructure/audio"
	"github.com/younwookim/gamemenu/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagDebug     bool
	flagWeb       bool
	flagLogLevel  string

	flagRecord string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Open the main menu",
	Long: `Opens a window on the main menu.

Start enters the game, Help is not built yet, and Quit closes the window
(Quit is hidden in the browser build).

Examples:
  game
  game --debug
  game --config ./configs --log-level debug
  game --record session.json
  game replay session.json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Directory holding app.yaml (empty = embedded)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Show the world inspector overlay")
	rootCmd.PersistentFlags().BoolVar(&flagWeb, "web", false, "Behave as the browser build")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record pointer input to file (e.g., --record replay.json)")

	rootCmd.AddCommand(replayCmd)
}

func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gamemenu",
	})
}

// loadConfig reads app.yaml from --config or the embedded copy and applies
// environment and flag overrides.
func loadConfig(cmd *cobra.Command, logger *log.Logger) (*config.AppConfig, error) {
	var loader *config.Loader
	if flagConfigDir != "" {
		loader = config.NewLoader(flagConfigDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Features.Debug = flagDebug
	}
	if flags.Changed("web") {
		cfg.Features.ForceWeb = flagWeb
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger.SetLevel(level)

	return cfg, nil
}

func runGame(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}
	target := cfg.ResolveTarget()

	store := config.OpenSettingsStore(cfg.Storage.AppName, logger)
	settings := store.Settings()

	clearColor, err := config.ParseHexColor(cfg.Window.ClearColor)
	if err != nil {
		return err
	}
	source, err := system.LoadFontSource(cfg.Assets.Font)
	if err != nil {
		logger.Warn("font unavailable, using bundled font", "path", cfg.Assets.Font, "error", err)
		if source, err = system.LoadFontSource(""); err != nil {
			return err
		}
	}

	sound := audio.NewManager(ebaudio.NewContext(audio.SampleRate), settings, logger)

	var recorder *replay.Recorder
	opts := game.Options{
		ScreenW:   cfg.Window.Width,
		ScreenH:   cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
		Target:    target,
		Input:     system.NewInputSystem(),
		Renderer:  system.NewRenderer(source, clearColor),
		Clicker:   sound,
		Logger:    logger,
	}
	if flagRecord != "" {
		recorder = replay.NewRecorder(cfg.Window.Width, cfg.Window.Height, target.Web)
		opts.Recorder = recorder
		logger.Info("recording enabled", "file", flagRecord)
	}

	g := game.New(opts)
	r := newRunner(g, store, logger)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetVsyncEnabled(cfg.Window.VSync)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetFullscreen(settings.Fullscreen)

	runErr := ebiten.RunGame(r)

	if err := store.Save(); err != nil {
		logger.Error("failed to save settings", "error", err)
	}
	if recorder != nil {
		if err := recorder.Save(flagRecord); err != nil {
			logger.Error("failed to save recording", "error", err)
		} else {
			logger.Info("recording saved", "file", flagRecord, "frames", len(recorder.Data().Frames))
		}
	}

	if runErr != nil {
		logger.Fatal("game stopped", "error", runErr)
	}
	logger.Info("bye")
	return nil
}
