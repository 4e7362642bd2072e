// Package game provides the main game loop that drives the state machine.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamemenu/internal/application/scene"
	"github.com/younwookim/gamemenu/internal/application/scene/mainmenu"
	"github.com/younwookim/gamemenu/internal/application/scene/playing"
	"github.com/younwookim/gamemenu/internal/application/state"
	"github.com/younwookim/gamemenu/internal/application/system"
	"github.com/younwookim/gamemenu/internal/ecs"
	"github.com/younwookim/gamemenu/internal/infrastructure/config"
)

// FrameRecorder receives the pointer state of every frame and the
// logical screen size it was sampled against
type FrameRecorder interface {
	RecordFrame(c ecs.Cursor, screenW, screenH int)
}

// Options configures a Game
type Options struct {
	ScreenW   int
	ScreenH   int
	Resizable bool
	Target    config.Target

	Input    system.PointerSource // required
	Renderer *system.Renderer     // nil runs headless
	Clicker  mainmenu.Clicker     // nil plays no sound
	Recorder FrameRecorder        // nil records nothing
	Logger   *log.Logger
}

// Game implements ebiten.Game.
// Scenes attach to the state machine; the game only feeds it input and time.
type Game struct {
	world     *ecs.World
	machine   *state.Machine
	input     system.PointerSource
	renderer  *system.Renderer
	inspector *system.Inspector
	recorder  FrameRecorder
	logger    *log.Logger

	screenW   int
	screenH   int
	resizable bool
	frame     int

	exitRequests int
	exit         bool
}

// New creates a new Game, registers the scenes and enters the initial state.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		world:     ecs.NewWorld(),
		machine:   state.NewMachine(logger),
		input:     opts.Input,
		renderer:  opts.Renderer,
		recorder:  opts.Recorder,
		logger:    logger,
		screenW:   opts.ScreenW,
		screenH:   opts.ScreenH,
		resizable: opts.Resizable,
	}
	if opts.Target.InspectorEnabled() {
		g.inspector = system.NewInspector()
	}

	scenes := []scene.Scene{
		mainmenu.New(g.world, g, opts.Clicker, opts.Target, logger),
		playing.New(g.world, logger),
	}
	for _, s := range scenes {
		s.Register(g.machine)
	}

	g.world.CreateCamera()
	g.machine.Start()
	g.layoutUI()

	logger.Info("game ready", "state", g.machine.Current(), "web", opts.Target.Web, "debug", opts.Target.Debug)
	return g
}

// Update runs one frame: input, interaction, state systems, layout.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.exit {
		return ebiten.Termination
	}

	cursor := g.input.Poll()
	if g.recorder != nil {
		g.recorder.RecordFrame(cursor, g.screenW, g.screenH)
	}

	g.layoutUI()
	ecs.UpdateInteraction(g.world, cursor)

	if err := g.machine.Update(); err != nil {
		return fmt.Errorf("frame %d in %s: %w", g.frame, g.machine.Current(), err)
	}

	g.layoutUI()
	g.world.ClearChanged()
	g.frame++
	return nil
}

func (g *Game) layoutUI() {
	var measure ecs.TextMeasurer
	if g.renderer != nil {
		measure = g.renderer.Measure
	}
	ecs.UpdateLayout(g.world, float64(g.screenW), float64(g.screenH), measure)
}

// Draw renders the world and the optional inspector.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer != nil {
		g.renderer.Draw(screen, g.world)
	}
	if g.inspector != nil {
		g.inspector.Draw(screen, g.world, g.machine.Current())
	}
}

// Layout returns the game's logical screen dimensions.
// A resizable window follows the outside size.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resizable && outsideWidth > 0 && outsideHeight > 0 {
		g.screenW, g.screenH = outsideWidth, outsideHeight
	}
	return g.screenW, g.screenH
}

// RequestExit asks the loop to stop; the next Update returns ebiten.Termination.
func (g *Game) RequestExit() {
	g.exitRequests++
	g.exit = true
	g.logger.Info("exit requested")
}

// ExitRequests returns how many times an exit was requested
func (g *Game) ExitRequests() int {
	return g.exitRequests
}

// World returns the ECS world
func (g *Game) World() *ecs.World {
	return g.world
}

// Machine returns the application state machine
func (g *Game) Machine() *state.Machine {
	return g.machine
}

// ScreenSize returns the current logical screen size
func (g *Game) ScreenSize() (int, int) {
	return g.screenW, g.screenH
}

// Frame returns the number of completed frames
func (g *Game) Frame() int {
	return g.frame
}

// InspectorEnabled reports whether the debug overlay is drawn
func (g *Game) InspectorEnabled() bool {
	return g.inspector != nil
}
