package game

import (
	"image/color"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gamemenu/internal/application/replay"
	"github.com/younwookim/gamemenu/internal/application/scene/mainmenu"
	"github.com/younwookim/gamemenu/internal/application/scene/playing"
	"github.com/younwookim/gamemenu/internal/application/state"
	"github.com/younwookim/gamemenu/internal/application/system"
	"github.com/younwookim/gamemenu/internal/ecs"
	"github.com/younwookim/gamemenu/internal/infrastructure/config"
)

// Button centers for an 800x600 screen
var (
	startCenter = ecs.Cursor{X: 400, Y: 210}
	helpCenter  = ecs.Cursor{X: 400, Y: 300}
	quitCenter  = ecs.Cursor{X: 400, Y: 390}
	outside     = ecs.Cursor{X: 10, Y: 10}
)

// scriptedPointer is a test double for system.PointerSource
type scriptedPointer struct {
	cursor ecs.Cursor
	polls  int
}

func (p *scriptedPointer) Poll() ecs.Cursor {
	p.polls++
	c := p.cursor
	p.cursor.JustPressed = false
	return c
}

func (p *scriptedPointer) moveTo(c ecs.Cursor) { p.cursor.X, p.cursor.Y = c.X, c.Y }
func (p *scriptedPointer) press()              { p.cursor.Down, p.cursor.JustPressed = true, true }
func (p *scriptedPointer) release()            { p.cursor.Down, p.cursor.JustPressed = false, false }

type mockClicker struct{ calls int }

func (m *mockClicker) PlayClick() { m.calls++ }

type mockRecorder struct {
	frames []ecs.Cursor
	sizes  [][2]int
}

func (m *mockRecorder) RecordFrame(c ecs.Cursor, screenW, screenH int) {
	m.frames = append(m.frames, c)
	m.sizes = append(m.sizes, [2]int{screenW, screenH})
}

func newTestGame(t *testing.T, target config.Target) (*Game, *scriptedPointer) {
	t.Helper()
	pointer := &scriptedPointer{}
	g := New(Options{
		ScreenW: 800,
		ScreenH: 600,
		Target:  target,
		Input:   pointer,
		Logger:  log.New(io.Discard),
	})
	return g, pointer
}

func menuButtonColor(t *testing.T, g *Game, kind ecs.MenuButton) color.RGBA {
	t.Helper()
	id, ok := g.World().FindMenuButton(kind)
	require.True(t, ok)
	return g.World().Style[id].Background
}

func TestNew_FreshStart(t *testing.T) {
	g, _ := newTestGame(t, config.Target{})
	w := g.World()

	assert.Equal(t, state.MainMenu, g.Machine().Current())
	assert.Len(t, w.Buttons(), 3)
	assert.Empty(t, w.Meshes())
	assert.NotZero(t, w.CameraID)
	assert.False(t, g.InspectorEnabled())

	for _, id := range w.Buttons() {
		assert.Equal(t, ecs.InteractionNone, w.Interaction[id])
		assert.Equal(t, mainmenu.ButtonColor, w.Style[id].Background)
		_, laidOut := w.Rect[id]
		assert.True(t, laidOut, "buttons are laid out before the first frame")
	}
}

func TestNew_WebHasNoQuit(t *testing.T) {
	g, _ := newTestGame(t, config.Target{Web: true, Debug: true})

	assert.Len(t, g.World().Buttons(), 2)
	_, ok := g.World().FindMenuButton(ecs.MenuButtonQuit)
	assert.False(t, ok)
	assert.False(t, g.InspectorEnabled(), "no inspector in the browser")
}

func TestNew_DebugEnablesInspector(t *testing.T) {
	g, _ := newTestGame(t, config.Target{Debug: true})
	assert.True(t, g.InspectorEnabled())
}

func TestGame_Update_IdleStaysInMenu(t *testing.T) {
	g, pointer := newTestGame(t, config.Target{})

	for i := 0; i < 30; i++ {
		require.NoError(t, g.Update())
	}

	assert.Equal(t, state.MainMenu, g.Machine().Current())
	assert.Equal(t, 30, pointer.polls)
	assert.Equal(t, 30, g.Frame())
	assert.Len(t, g.World().Buttons(), 3)
}

func TestGame_HoverThenUnhoverStart(t *testing.T) {
	g, pointer := newTestGame(t, config.Target{})

	pointer.moveTo(startCenter)
	require.NoError(t, g.Update())
	assert.Equal(t, mainmenu.ButtonHoverColor, menuButtonColor(t, g, ecs.MenuButtonStart))
	assert.Equal(t, mainmenu.ButtonColor, menuButtonColor(t, g, ecs.MenuButtonHelp))

	pointer.moveTo(outside)
	require.NoError(t, g.Update())
	assert.Equal(t, mainmenu.ButtonColor, menuButtonColor(t, g, ecs.MenuButtonStart))
	assert.Equal(t, state.MainMenu, g.Machine().Current())
}

func TestGame_PressStart_EntersInGame(t *testing.T) {
	clicker := &mockClicker{}
	pointer := &scriptedPointer{}
	g := New(Options{
		ScreenW: 800, ScreenH: 600,
		Input:   pointer,
		Clicker: clicker,
		Logger:  log.New(io.Discard),
	})

	pointer.moveTo(startCenter)
	require.NoError(t, g.Update())

	pointer.press()
	require.NoError(t, g.Update())
	assert.Equal(t, state.MainMenu, g.Machine().Current(), "transition applies next frame")
	next, pending := g.Machine().Pending()
	require.True(t, pending)
	assert.Equal(t, state.InGame, next)

	// Holding the button does not re-fire
	require.NoError(t, g.Update())
	pointer.release()
	require.NoError(t, g.Update())

	w := g.World()
	assert.Equal(t, state.InGame, g.Machine().Current())
	assert.Equal(t, 1, clicker.calls)
	assert.Empty(t, w.Buttons())
	assert.Zero(t, w.CountUI(), "menu is gone")
	require.Len(t, w.Meshes(), 1)
	assert.Equal(t, playing.PlaceholderColor, w.Mesh[w.Meshes()[0]].Color)
	assert.Equal(t, 0, g.ExitRequests())
}

func TestGame_PressQuit_Terminates(t *testing.T) {
	g, pointer := newTestGame(t, config.Target{})

	pointer.moveTo(quitCenter)
	require.NoError(t, g.Update())
	pointer.press()
	require.NoError(t, g.Update())

	assert.Equal(t, 1, g.ExitRequests())
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 1, g.ExitRequests())
}

func TestGame_PressHelp_ReturnsError(t *testing.T) {
	g, pointer := newTestGame(t, config.Target{})

	pointer.moveTo(helpCenter)
	require.NoError(t, g.Update())
	pointer.press()
	err := g.Update()

	require.Error(t, err)
	assert.ErrorIs(t, err, mainmenu.ErrNotImplemented)
	assert.NotErrorIs(t, err, ebiten.Termination)
	assert.Equal(t, state.MainMenu, g.Machine().Current())
}

func TestGame_PressOutsideThenDragOntoButton(t *testing.T) {
	g, pointer := newTestGame(t, config.Target{})

	pointer.moveTo(outside)
	pointer.press()
	require.NoError(t, g.Update())
	pointer.moveTo(startCenter)
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	_, pending := g.Machine().Pending()
	assert.False(t, pending, "only a press edge over the button activates it")
}

func TestGame_RecordsEveryFrame(t *testing.T) {
	rec := &mockRecorder{}
	pointer := &scriptedPointer{}
	g := New(Options{ScreenW: 800, ScreenH: 600, Input: pointer, Recorder: rec, Logger: log.New(io.Discard)})

	pointer.moveTo(startCenter)
	require.NoError(t, g.Update())
	pointer.press()
	require.NoError(t, g.Update())

	require.Len(t, rec.frames, 2)
	assert.Equal(t, ecs.Cursor{X: 400, Y: 210}, rec.frames[0])
	assert.Equal(t, ecs.Cursor{X: 400, Y: 210, Down: true, JustPressed: true}, rec.frames[1])
	assert.Equal(t, [][2]int{{800, 600}, {800, 600}}, rec.sizes)
}

func TestGame_RecordsSizeAfterResize(t *testing.T) {
	rec := &mockRecorder{}
	g := New(Options{
		ScreenW: 800, ScreenH: 600,
		Resizable: true,
		Input:     system.StaticPointer{},
		Recorder:  rec,
		Logger:    log.New(io.Discard),
	})

	require.NoError(t, g.Update())
	g.Layout(1920, 1080)
	require.NoError(t, g.Update())

	assert.Equal(t, [][2]int{{800, 600}, {1920, 1080}}, rec.sizes)
	w, h := g.ScreenSize()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
}

func TestGame_ReplayStartClick(t *testing.T) {
	data := replay.CreateTestReplayData(5, 10, 10)
	data.Click(400, 210)
	replayer := replay.NewReplayer(data)

	g := New(Options{ScreenW: data.Width, ScreenH: data.Height, Input: replayer, Logger: log.New(io.Discard)})
	for !replayer.Done() {
		require.NoError(t, g.Update())
	}
	require.NoError(t, g.Update())

	assert.Equal(t, state.InGame, g.Machine().Current())
	assert.Len(t, g.World().Meshes(), 1)
}

func TestGame_Layout(t *testing.T) {
	g, _ := newTestGame(t, config.Target{})

	w, h := g.Layout(1024, 768)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestGame_Layout_Resizable(t *testing.T) {
	g := New(Options{
		ScreenW: 800, ScreenH: 600,
		Resizable: true,
		Input:     system.StaticPointer{},
		Logger:    log.New(io.Discard),
	})

	w, h := g.Layout(1024, 768)
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	require.NoError(t, g.Update())
	root := g.World().UIRoots()[0]
	assert.Equal(t, ecs.Rect{W: 1024, H: 768}, g.World().Rect[root])
}
