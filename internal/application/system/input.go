package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/gamemenu/internal/ecs"
)

// PointerSource yields the cursor state once per frame
type PointerSource interface {
	Poll() ecs.Cursor
}

// InputSystem reads the live mouse and touch state from Ebitengine
type InputSystem struct {
	touches []ebiten.TouchID
	touchID ebiten.TouchID
	touchX  int
	touchY  int
	touched bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Poll reads the current pointer state.
// An active touch takes precedence over the mouse.
func (s *InputSystem) Poll() ecs.Cursor {
	if c, ok := s.pollTouch(); ok {
		return c
	}

	mx, my := ebiten.CursorPosition()
	return ecs.Cursor{
		X:           float64(mx),
		Y:           float64(my),
		Down:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// pollTouch tracks the first finger down until it is lifted
func (s *InputSystem) pollTouch() (ecs.Cursor, bool) {
	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	if !s.touched && len(s.touches) > 0 {
		s.touchID = s.touches[0]
		s.touched = true
		s.touchX, s.touchY = ebiten.TouchPosition(s.touchID)
		return ecs.Cursor{X: float64(s.touchX), Y: float64(s.touchY), Down: true, JustPressed: true}, true
	}

	if !s.touched {
		return ecs.Cursor{}, false
	}

	if inpututil.IsTouchJustReleased(s.touchID) {
		s.touched = false
		// Release where the finger was last seen
		return ecs.Cursor{X: float64(s.touchX), Y: float64(s.touchY)}, true
	}

	s.touchX, s.touchY = ebiten.TouchPosition(s.touchID)
	return ecs.Cursor{X: float64(s.touchX), Y: float64(s.touchY), Down: true}, true
}

// StaticPointer is a PointerSource that always reports the same cursor
type StaticPointer ecs.Cursor

// Poll returns the fixed cursor
func (p StaticPointer) Poll() ecs.Cursor {
	return ecs.Cursor(p)
}
