package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/gamemenu/internal/application/game"
	"github.com/younwookim/gamemenu/internal/application/replay"
	"github.com/younwookim/gamemenu/internal/infrastructure/config"
)

var flagFrames int

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a recorded session headless",
	Long: `Feeds a recording made with --record through the game without opening
a window and prints where the session ended up.

Examples:
  game replay session.json
  game replay session.json --frames 600`,
	Args: cobra.ExactArgs(1),
	RunE: runReplayCmd,
}

func init() {
	replayCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frames to run (0 = length of the recording)")
}

// ReplayResult summarizes a headless run
type ReplayResult struct {
	State        string
	Frames       int
	ExitRequests int
	Terminated   bool
	Buttons      int
	Meshes       int
}

func (r ReplayResult) print(w io.Writer) {
	fmt.Fprintf(w, "state:      %s\n", r.State)
	fmt.Fprintf(w, "frames:     %d\n", r.Frames)
	fmt.Fprintf(w, "terminated: %t (exit requests %d)\n", r.Terminated, r.ExitRequests)
	fmt.Fprintf(w, "buttons:    %d\n", r.Buttons)
	fmt.Fprintf(w, "meshes:     %d\n", r.Meshes)
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	logger.Info("replaying", "file", args[0], "frames", len(data.Frames))

	target := cfg.ResolveTarget()
	target.Web = target.Web || data.Web

	result, err := runReplay(*data, target, flagFrames, logger)
	if err != nil {
		return err
	}
	result.print(cmd.OutOrStdout())
	return nil
}

// runReplay drives a game headless with recorded input. Each frame is laid
// out at the screen size it was recorded at. frames <= 0 runs the whole
// recording.
func runReplay(data replay.ReplayData, target config.Target, frames int, logger *log.Logger) (ReplayResult, error) {
	if frames <= 0 {
		frames = len(data.Frames)
	}
	if data.Width <= 0 || data.Height <= 0 {
		data.Width, data.Height = config.Default().Window.Width, config.Default().Window.Height
	}
	replayer := replay.NewReplayer(data)
	w, h := replayer.NextSize()

	g := game.New(game.Options{
		ScreenW:   w,
		ScreenH:   h,
		Resizable: true,
		Target:    target,
		Input:     replayer,
		Logger:    logger,
	})

	var result ReplayResult
	for i := 0; i < frames; i++ {
		g.Layout(replayer.NextSize())
		if err := g.Update(); err != nil {
			if !errors.Is(err, ebiten.Termination) {
				return ReplayResult{}, err
			}
			result.Terminated = true
			break
		}
	}

	world := g.World()
	result.State = g.Machine().Current().String()
	result.Frames = g.Frame()
	result.ExitRequests = g.ExitRequests()
	result.Buttons = len(world.Buttons())
	result.Meshes = len(world.Meshes())
	return result, nil
}
