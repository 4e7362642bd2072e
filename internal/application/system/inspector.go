package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/gamemenu/internal/application/state"
	"github.com/younwookim/gamemenu/internal/ecs"
)

// Inspector is a debug overlay listing world and state details
type Inspector struct {
	x, y int
}

// NewInspector creates an overlay anchored at the top-left corner
func NewInspector() *Inspector {
	return &Inspector{x: 4, y: 4}
}

// Draw prints the inspector lines over the frame
func (in *Inspector) Draw(screen *ebiten.Image, w *ecs.World, current state.AppState) {
	for i, line := range InspectorLines(w, current, ebiten.ActualTPS()) {
		ebitenutil.DebugPrintAt(screen, line, in.x, in.y+i*16)
	}
}

// InspectorLines formats the overlay content
func InspectorLines(w *ecs.World, current state.AppState, tps float64) []string {
	lines := []string{
		fmt.Sprintf("state: %s", current),
		fmt.Sprintf("tps: %.1f", tps),
		fmt.Sprintf("entities: %d (ui %d, meshes %d)", w.CountEntities(), w.CountUI(), len(w.Mesh)),
	}
	for _, id := range w.Buttons() {
		label := "button"
		if kind, ok := w.MenuButton[id]; ok {
			label = kind.String()
		}
		lines = append(lines, fmt.Sprintf("  #%d %s: %s", id, label, w.Interaction[id]))
	}
	return lines
}
