// Package playing provides the in-game scene.
package playing

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/younwookim/gamemenu/internal/application/state"
	"github.com/younwookim/gamemenu/internal/ecs"
)

// Placeholder rectangle parameters
var (
	PlaceholderColor = color.RGBA{128, 0, 128, 255} // purple
	PlaceholderScale = 128.0
)

// Scene spawns the gameplay placeholder when InGame is entered
type Scene struct {
	world  *ecs.World
	logger *log.Logger
}

// New creates the in-game scene
func New(w *ecs.World, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.Default()
	}
	return &Scene{world: w, logger: logger}
}

// Register implements scene.Scene
func (s *Scene) Register(m *state.Machine) {
	m.OnEnter(state.InGame, s.setup)
}

func (s *Scene) setup() {
	id := s.world.CreateMesh(
		ecs.Transform{ScaleX: PlaceholderScale, ScaleY: PlaceholderScale},
		ecs.Mesh{Width: 1, Height: 1, Color: PlaceholderColor},
	)
	s.logger.Debug("placeholder spawned", "entity", id)
}
